package edit

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/signadot/pbxmod/debug"
	"github.com/signadot/pbxmod/pbx"
	"github.com/spf13/afero"
)

type Editor struct {
	g           *pbx.Graph
	fs          afero.Fs
	log         *slog.Logger
	projectRoot string
	baseDir     string
}

type Option func(*Editor)

// WithFS sets the filesystem imports are read from.
func WithFS(fs afero.Fs) Option {
	return func(e *Editor) { e.fs = fs }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithProjectRoot sets the directory stored paths are relative to.
func WithProjectRoot(dir string) Option {
	return func(e *Editor) { e.projectRoot = dir }
}

// WithBaseDir sets the directory relative input paths resolve against.  It
// defaults to the project root.
func WithBaseDir(dir string) Option {
	return func(e *Editor) { e.baseDir = dir }
}

func New(g *pbx.Graph, opts ...Option) *Editor {
	e := &Editor{g: g}
	for _, opt := range opts {
		opt(e)
	}
	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.projectRoot == "" {
		e.projectRoot = "."
	}
	if e.baseDir == "" {
		e.baseDir = e.projectRoot
	}
	return e
}

func (e *Editor) Graph() *pbx.Graph { return e.g }

func (e *Editor) abs(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(e.baseDir, p)
}

func (e *Editor) tracef(format string, args ...any) {
	if debug.Edit() {
		debug.Logf("edit: "+format+"\n", args...)
	}
}
