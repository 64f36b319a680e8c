// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package build

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/treefab/treefab/internal/vfs"
)

// Op is a single build tree operation.
type Op interface {
	run(ctx *Context) error
}

// callerOrigin returns the construction site of an operation as provenance
// for the nodes it creates.
func callerOrigin() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}

	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// DirOp creates a directory at the current directory and evaluates its
// children inside it.
type DirOp struct {
	Name     string
	Mode     vfs.Mode
	Children []Op

	// Origin is stamped onto the created node and used in diagnostics.
	Origin string
}

// Dir returns a [DirOp] with the caller as origin.
func Dir(name string, mode vfs.Mode, children ...Op) *DirOp {
	return &DirOp{
		Name:     name,
		Mode:     mode,
		Children: children,
		Origin:   callerOrigin(),
	}
}

func (op *DirOp) run(ctx *Context) error {
	parent, err := ctx.Shell.ResolveDir(false, op.Origin)
	if err != nil {
		return err
	}

	_, existed := parent.Child(op.Name)

	node := vfs.NewDirectory(op.Origin)

	entry, created, err := vfs.Apply(parent, op.Name, node, op.Mode)
	if err != nil {
		return fmt.Errorf("at %s: %w", ctx.Shell.Current(), err)
	}

	phys := ctx.Shell.PhysCWD(op.Name)

	switch {
	case created:
		if existed {
			err = ctx.Mirror.RemoveIfPresent(phys)
			if err != nil {
				return err
			}
		}

		err = ctx.Mirror.Mkdir(phys)
		if err != nil {
			return err
		}

		slog.Debug("Created directory",
			slog.String("path", phys),
			slog.String("origin", op.Origin))
	case entry.IsDir():
		// Placid reuse: the directory stays, its children still need
		// visiting.
		err = ctx.Mirror.EnsureDir(phys)
		if err != nil {
			return err
		}
	default:
		// Placid skip over a non-directory: the whole subtree is skipped.
		slog.Debug("Skipping directory over existing entry",
			slog.String("path", phys),
			slog.String("existing", entry.String()))

		return nil
	}

	scope := vfs.NewScope(ctx.Shell)
	defer scope.Exit()

	err = scope.Enter(vfs.Rel(op.Name), false, op.Origin)
	if err != nil {
		return err
	}

	return ctx.eval(op.Children)
}

// FileOp creates a file at the current directory with content produced by
// its text sources.
type FileOp struct {
	Name string
	Mode vfs.Mode
	Text []Text

	Origin string
}

// File returns a [FileOp] with the caller as origin.
func File(name string, mode vfs.Mode, text ...Text) *FileOp {
	return &FileOp{
		Name:   name,
		Mode:   mode,
		Text:   text,
		Origin: callerOrigin(),
	}
}

func (op *FileOp) run(ctx *Context) error {
	parent, err := ctx.Shell.ResolveDir(false, op.Origin)
	if err != nil {
		return err
	}

	if _, existed := parent.Child(op.Name); existed && op.Mode == vfs.Placid {
		// Skip without rendering the text sources.
		slog.Debug("Skipping file over existing entry",
			slog.String("path", ctx.Shell.PhysCWD(op.Name)))

		return nil
	}

	_, _, err = vfs.Apply(parent, op.Name, vfs.NewFile(op.Origin), op.Mode)
	if err != nil {
		return fmt.Errorf("at %s: %w", ctx.Shell.Current(), err)
	}

	content, err := renderText(ctx, op.Text)
	if err != nil {
		return fmt.Errorf("render %s: %w", op.Name, err)
	}

	phys := ctx.Shell.PhysCWD(op.Name)

	err = ctx.Mirror.RemoveIfPresent(phys)
	if err != nil {
		return err
	}

	err = ctx.Mirror.WriteTextFile(phys, content)
	if err != nil {
		return err
	}

	slog.Debug("Wrote file",
		slog.String("path", phys),
		slog.String("origin", op.Origin))

	return nil
}

// SymlinkOp creates a symlink at the current directory. The target is
// folded against the current directory and stored absolute.
type SymlinkOp struct {
	Name   string
	Target vfs.Path
	Mode   vfs.Mode

	Origin string
}

// Symlink returns a [SymlinkOp] with the caller as origin.
func Symlink(name string, target vfs.Path, mode vfs.Mode) *SymlinkOp {
	return &SymlinkOp{
		Name:   name,
		Target: target,
		Mode:   mode,
		Origin: callerOrigin(),
	}
}

func (op *SymlinkOp) run(ctx *Context) error {
	parent, err := ctx.Shell.ResolveDir(false, op.Origin)
	if err != nil {
		return err
	}

	target, err := ctx.absNames(op.Target)
	if err != nil {
		return fmt.Errorf("symlink %s: %w", op.Name, err)
	}

	if _, existed := parent.Child(op.Name); existed && op.Mode == vfs.Placid {
		slog.Debug("Skipping symlink over existing entry",
			slog.String("path", ctx.Shell.PhysCWD(op.Name)))

		return nil
	}

	_, _, err = vfs.Apply(parent, op.Name, vfs.NewSymlink(target, op.Origin), op.Mode)
	if err != nil {
		return fmt.Errorf("at %s: %w", ctx.Shell.Current(), err)
	}

	phys := ctx.Shell.PhysCWD(op.Name)

	err = ctx.Mirror.RemoveIfPresent(phys)
	if err != nil {
		return err
	}

	targetPhys := ctx.Shell.Phys(target...)
	if ctx.Mirror.Exists(targetPhys) {
		return ctx.Mirror.Symlink(phys, targetPhys)
	}

	// The target is not on physical storage yet. Link once the walk is
	// done and the target had a chance to appear.
	ctx.deferLink(pendingLink{
		path:   phys,
		target: targetPhys,
		origin: op.Origin,
	})

	return nil
}

// CdOp changes the current directory for its children and restores the
// prior one afterwards, whatever the outcome.
type CdOp struct {
	Path     vfs.Path
	Create   bool
	Children []Op

	Origin string
}

// Cd returns a [CdOp] with the caller as origin.
func Cd(path vfs.Path, create bool, children ...Op) *CdOp {
	return &CdOp{
		Path:     path,
		Create:   create,
		Children: children,
		Origin:   callerOrigin(),
	}
}

func (op *CdOp) run(ctx *Context) error {
	scope := vfs.NewScope(ctx.Shell)
	defer scope.Exit()

	err := scope.Enter(op.Path, op.Create, op.Origin)
	if err != nil {
		return err
	}

	if op.Create {
		err = ctx.Mirror.EnsureDir(ctx.Shell.Phys(ctx.Shell.CWD()...))
		if err != nil {
			return err
		}
	}

	return ctx.eval(op.Children)
}
