package pbxmod

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/signadot/pbxmod/edit"
	"github.com/signadot/pbxmod/libdiff"
	"github.com/signadot/pbxmod/mod"
	"github.com/signadot/pbxmod/pbx"
	"github.com/spf13/afero"
)

// Project is an opened project file and its object graph.
type Project struct {
	fs   afero.Fs
	log  *slog.Logger
	file string
	orig []byte
	g    *pbx.Graph
	ed   *edit.Editor
}

// File returns the path of the project.pbxproj file.
func (p *Project) File() string { return p.file }

// Root returns the directory containing the bundle.  Stored source paths
// are relative to it.
func (p *Project) Root() string { return filepath.Dir(filepath.Dir(p.file)) }

func (p *Project) Graph() *pbx.Graph { return p.g }

func (p *Project) Editor() *edit.Editor { return p.ed }

// Apply applies the descriptor d.
func (p *Project) Apply(d *mod.Descriptor) (*edit.Report, error) {
	rep, err := p.ed.ApplyMod(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	return rep, nil
}

// Encode consolidates the graph and returns its text.
func (p *Project) Encode() ([]byte, error) {
	if p.g.State() == pbx.Draft {
		p.g.Consolidate()
	}
	buf := &bytes.Buffer{}
	if err := p.g.Encode(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the project back to its file.  The file on disk is first
// copied to project.backup.pbxproj next to it; when that fails the
// project file is not written.
func (p *Project) Save() error {
	data, err := p.Encode()
	if err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if info, err := p.fs.Stat(p.file); err == nil {
		mode = info.Mode().Perm()
	}
	cur, err := afero.ReadFile(p.fs, p.file)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	backup := filepath.Join(filepath.Dir(p.file), BackupFile)
	if err := afero.WriteFile(p.fs, backup, cur, mode); err != nil {
		return fmt.Errorf("%w: backup: %w", ErrIO, err)
	}
	if err := afero.WriteFile(p.fs, p.file, data, mode); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	p.log.Info("saved project", "file", p.file, "backup", backup)
	p.orig = data
	return nil
}

// Diff returns the line diff between the text last read or saved and the
// current encoding.
func (p *Project) Diff() ([]libdiff.Line, error) {
	data, err := p.Encode()
	if err != nil {
		return nil, err
	}
	return libdiff.Lines(string(p.orig), string(data)), nil
}
