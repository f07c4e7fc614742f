package pbx

type SourceTree int

const (
	TreeAbsolute SourceTree = iota
	TreeGroup
	TreeSourceRoot
	TreeSDKRoot
	TreeBuildProductsDir
	TreeDeveloperDir
)

var sourceTreeNames = map[SourceTree]string{
	TreeAbsolute:         "<absolute>",
	TreeGroup:            "<group>",
	TreeSourceRoot:       "SOURCE_ROOT",
	TreeSDKRoot:          "SDKROOT",
	TreeBuildProductsDir: "BUILT_PRODUCTS_DIR",
	TreeDeveloperDir:     "DEVELOPER_DIR",
}

// ParseSourceTree accepts the value stored in project files, and GROUP or
// ABSOLUTE for the two bracketed trees.
func ParseSourceTree(v string) (SourceTree, error) {
	for t, name := range sourceTreeNames {
		if v == name {
			return t, nil
		}
	}
	switch v {
	case "GROUP":
		return TreeGroup, nil
	case "ABSOLUTE":
		return TreeAbsolute, nil
	}
	return 0, MutationErr("unknown source tree %q", v)
}

// Valid reports whether t is one of the named source trees.
func (t SourceTree) Valid() bool {
	_, ok := sourceTreeNames[t]
	return ok
}

func (t SourceTree) String() string {
	if s, ok := sourceTreeNames[t]; ok {
		return s
	}
	return "<unknown source tree>"
}

func (t SourceTree) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *SourceTree) UnmarshalText(d []byte) error {
	st, err := ParseSourceTree(string(d))
	if err != nil {
		return err
	}
	*t = st
	return nil
}

// ProjectRelative reports whether paths in this tree are stored relative
// to the project root.
func (t SourceTree) ProjectRelative() bool {
	return t == TreeSourceRoot || t == TreeGroup
}
