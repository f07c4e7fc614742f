package mod

import (
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Find returns the descriptor files under root, in lexical order.
func Find(fs afero.Fs, root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	iofs := afero.NewIOFS(afero.NewBasePathFs(fs, root))
	matches, err := doublestar.Glob(iofs, "**/*"+Suffix)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(matches))
	for i, m := range matches {
		res[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	slices.Sort(res)
	return res, nil
}

// LoadAll loads every descriptor under root.
func LoadAll(fs afero.Fs, root string) ([]*Descriptor, error) {
	files, err := Find(fs, root)
	if err != nil {
		return nil, err
	}
	res := make([]*Descriptor, 0, len(files))
	for _, f := range files {
		d, err := Load(fs, f)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}
