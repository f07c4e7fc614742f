package mod

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// Suffix is the conventional extension of descriptor files.
const Suffix = ".projmods"

// Entry is a library or framework name with its weak link flag.
type Entry struct {
	Name string
	Weak bool
}

func (e Entry) String() string {
	if e.Weak {
		return e.Name + ":weak"
	}
	return e.Name
}

// ParseEntry parses "name" or "name:weak".
func ParseEntry(v string) (Entry, error) {
	name, suffix, found := strings.Cut(v, ":")
	if name == "" {
		return Entry{}, fmt.Errorf("%w: empty name in %q", ErrEntry, v)
	}
	if !found {
		return Entry{Name: name}, nil
	}
	if suffix != "weak" {
		return Entry{}, fmt.Errorf("%w: unknown suffix %q in %q", ErrEntry, suffix, v)
	}
	return Entry{Name: name, Weak: true}, nil
}

type BuildSettings struct {
	OtherLinkerFlags        []string
	GccEnableCppExceptions  string
	GccEnableObjcExceptions string
}

type Descriptor struct {
	// Name is the file name of the descriptor without its extension.
	Name string
	// Path is the directory relative entries resolve against.
	Path          string
	Group         string
	Libs          []Entry
	Frameworks    []Entry
	Files         []string
	Folders       []string
	Excludes      []string
	HeaderPaths   []string
	BuildSettings BuildSettings
}

// Empty reports whether applying d would change nothing.
func (d *Descriptor) Empty() bool {
	bs := d.BuildSettings
	return len(d.Libs) == 0 && len(d.Frameworks) == 0 && len(d.Files) == 0 &&
		len(d.Folders) == 0 && len(d.HeaderPaths) == 0 && len(bs.OtherLinkerFlags) == 0 &&
		bs.GccEnableCppExceptions == "" && bs.GccEnableObjcExceptions == ""
}

type rawBuildSettings struct {
	OtherLinkerFlags        []string `yaml:"OTHER_LDFLAGS"`
	GccEnableCppExceptions  string   `yaml:"GCC_ENABLE_CPP_EXCEPTIONS"`
	GccEnableObjcExceptions string   `yaml:"GCC_ENABLE_OBJC_EXCEPTIONS"`
}

type rawDescriptor struct {
	Group         string           `yaml:"group"`
	Libs          []string         `yaml:"libs"`
	Frameworks    []string         `yaml:"frameworks"`
	Files         []string         `yaml:"files"`
	Folders       []string         `yaml:"folders"`
	Excludes      []string         `yaml:"excludes"`
	HeaderPaths   []string         `yaml:"headerpaths"`
	BuildSettings rawBuildSettings `yaml:"buildSettings"`
}

// Parse decodes a JSON or YAML descriptor whose relative entries resolve
// against basePath.
func Parse(basePath string, data []byte) (*Descriptor, error) {
	raw := &rawDescriptor{}
	if err := yaml.Unmarshal(data, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDescriptor, err)
	}
	d := &Descriptor{
		Path:        basePath,
		Group:       raw.Group,
		Files:       nonNil(raw.Files),
		Folders:     nonNil(raw.Folders),
		Excludes:    nonNil(raw.Excludes),
		HeaderPaths: nonNil(raw.HeaderPaths),
		BuildSettings: BuildSettings{
			OtherLinkerFlags:        nonNil(raw.BuildSettings.OtherLinkerFlags),
			GccEnableCppExceptions:  raw.BuildSettings.GccEnableCppExceptions,
			GccEnableObjcExceptions: raw.BuildSettings.GccEnableObjcExceptions,
		},
	}
	var err error
	if d.Libs, err = parseEntries(raw.Libs); err != nil {
		return nil, fmt.Errorf("%w: libs: %w", ErrDescriptor, err)
	}
	if d.Frameworks, err = parseEntries(raw.Frameworks); err != nil {
		return nil, fmt.Errorf("%w: frameworks: %w", ErrDescriptor, err)
	}
	return d, nil
}

func parseEntries(vs []string) ([]Entry, error) {
	res := make([]Entry, 0, len(vs))
	for _, v := range vs {
		e, err := ParseEntry(v)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

func nonNil(vs []string) []string {
	if vs == nil {
		return []string{}
	}
	return vs
}

// Load reads and parses the descriptor file.  Its directory becomes the
// descriptor's Path.
func Load(fs afero.Fs, file string) (*Descriptor, error) {
	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, err
	}
	d, err := Parse(filepath.Dir(file), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	d.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return d, nil
}
