// Package pbxmod opens Xcode project bundles, applies modification
// descriptors to them and saves the result.
//
// A typical session:
//
//	p, err := pbxmod.Open("build/ios")
//	if err != nil {
//		return err
//	}
//	ds, err := mod.LoadAll(afero.NewOsFs(), "Assets")
//	if err != nil {
//		return err
//	}
//	for _, d := range ds {
//		if _, err := p.Apply(d); err != nil {
//			return err
//		}
//	}
//	return p.Save()
//
// Decoding lives in package parse, the object graph in package pbx and
// mutations in package edit.  Project ties them to a file on disk.
package pbxmod
