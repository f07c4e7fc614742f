// Package parse decodes project files into IR nodes.
//
// The accepted text is the old-style property list dialect used by
// project.pbxproj files:
//
//	// !$*UTF8*$!
//	{
//		archiveVersion = 1;
//		objects = {
//			0A1B2C3D4E5F607182930A1B /* main.m */ = {isa = PBXFileReference; path = main.m; };
//		};
//		rootObject = 0A1B2C3D4E5F607182930A1C;
//	}
//
// Dictionaries are `{ key = value; }`, lists are `( a, b, )` with an
// optional trailing comma, and scalars are bare tokens or double-quoted
// strings.  Comments are discarded.  A bare token that is the canonical
// base 10 form of an int64 decodes to an integer, every other scalar to a
// string.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    var perr *parse.Error
//	    if errors.As(err, &perr) {
//	        fmt.Println(perr.Line, perr.Column)
//	    }
//	    return err
//	}
package parse
