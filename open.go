package pbxmod

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/signadot/pbxmod/edit"
	"github.com/signadot/pbxmod/parse"
	"github.com/signadot/pbxmod/pbx"
	"github.com/spf13/afero"
)

const (
	BundleSuffix = ".xcodeproj"
	ProjectFile  = "project.pbxproj"
	BackupFile   = "project.backup.pbxproj"
)

type openOpts struct {
	fs      afero.Fs
	log     *slog.Logger
	baseDir string
}

type Option func(*openOpts)

// WithFS sets the filesystem the project and imported files are read from.
func WithFS(fs afero.Fs) Option {
	return func(o *openOpts) { o.fs = fs }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *openOpts) { o.log = l }
}

// WithBaseDir sets the directory relative descriptor paths resolve
// against.  It defaults to the directory containing the bundle.
func WithBaseDir(dir string) Option {
	return func(o *openOpts) { o.baseDir = dir }
}

// Open loads the project at p, which is a bundle directory, a directory
// holding exactly one bundle, or a project.pbxproj file.
func Open(p string, opts ...Option) (*Project, error) {
	o := &openOpts{}
	for _, f := range opts {
		f(o)
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.log == nil {
		o.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	file, err := FindProject(o.fs, p)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(o.fs, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	node, err := parse.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	g, err := pbx.FromNode(node)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	root := filepath.Dir(filepath.Dir(file))
	baseDir := o.baseDir
	if baseDir == "" {
		baseDir = root
	}
	o.log.Info("opened project", "file", file, "objects", len(g.Objects().Fields))
	return &Project{
		fs:   o.fs,
		log:  o.log,
		file: file,
		orig: data,
		g:    g,
		ed: edit.New(g,
			edit.WithFS(o.fs),
			edit.WithLogger(o.log),
			edit.WithProjectRoot(root),
			edit.WithBaseDir(baseDir)),
	}, nil
}

// FindProject returns the project.pbxproj file designated by p.
func FindProject(fs afero.Fs, p string) (string, error) {
	p, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPath, err)
	}
	info, err := fs.Stat(p)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found", ErrPath, p)
	}
	switch {
	case !info.IsDir():
		if filepath.Base(p) != ProjectFile {
			return "", fmt.Errorf("%w: %s is not a %s file", ErrPath, p, ProjectFile)
		}
		return p, nil
	case filepath.Ext(p) == BundleSuffix:
		return filepath.Join(p, ProjectFile), nil
	}
	bundles, err := findBundles(fs, p)
	if err != nil {
		return "", err
	}
	switch len(bundles) {
	case 0:
		return "", fmt.Errorf("%w: no %s bundle found in %s", ErrPath, BundleSuffix, p)
	case 1:
		return filepath.Join(bundles[0], ProjectFile), nil
	default:
		return "", fmt.Errorf("%w: ambiguous, %d %s bundles in %s", ErrPath, len(bundles), BundleSuffix, p)
	}
}

func findBundles(fs afero.Fs, dir string) ([]string, error) {
	iofs := afero.NewIOFS(afero.NewBasePathFs(fs, dir))
	matches, err := doublestar.Glob(iofs, "*"+BundleSuffix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	var res []string
	for _, m := range matches {
		full := filepath.Join(dir, m)
		if ok, _ := afero.IsDir(fs, full); ok {
			res = append(res, full)
		}
	}
	slices.Sort(res)
	return res, nil
}
