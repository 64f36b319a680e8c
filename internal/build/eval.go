// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package build

import (
	"errors"
	"fmt"

	"github.com/treefab/treefab/internal/mirror"
	"github.com/treefab/treefab/internal/vfs"
)

// ErrLinkTargetMissing is returned if a symlink's target never appeared on
// physical storage during the build.
var ErrLinkTargetMissing = errors.New("symlink target missing")

// pendingLink is a physical symlink whose target was not present when the
// symlink operation ran.
type pendingLink struct {
	path   string
	target string
	origin string
}

// Context is the single evaluation cursor. It owns the shell, the physical
// mirror, and the diagnostics sink for one build tree evaluation.
type Context struct {
	Shell  *vfs.Shell
	Mirror mirror.Mirror
	Diag   *Diagnostics

	deferred []pendingLink
}

// NewContext returns a context for one evaluation. A nil diag discards
// diagnostics.
func NewContext(shell *vfs.Shell, m mirror.Mirror, diag *Diagnostics) *Context {
	if diag == nil {
		diag = NewDiagnostics(nil)
	}

	return &Context{
		Shell:  shell,
		Mirror: m,
		Diag:   diag,
	}
}

// Eval evaluates the operations in declared order and then creates the
// symlinks whose targets were still pending. The first failure is reported
// to the diagnostics sink once and halts the evaluation; no further
// operations run.
func Eval(ctx *Context, ops ...Op) error {
	err := ctx.eval(ops)
	if err == nil {
		err = ctx.flushLinks()
	}

	if err != nil {
		ctx.Diag.Report(err)
		return err
	}

	return nil
}

func (ctx *Context) eval(ops []Op) error {
	for _, op := range ops {
		err := op.run(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

func (ctx *Context) deferLink(link pendingLink) {
	ctx.deferred = append(ctx.deferred, link)
}

// flushLinks creates the deferred symlinks. Every target must be observably
// present by now.
func (ctx *Context) flushLinks() error {
	for _, link := range ctx.deferred {
		if !ctx.Mirror.Exists(link.target) {
			return fmt.Errorf(
				"symlink %s (created at %s): %w: %s",
				link.path, link.origin, ErrLinkTargetMissing, link.target,
			)
		}

		err := ctx.Mirror.Symlink(link.path, link.target)
		if err != nil {
			return err
		}
	}

	ctx.deferred = nil

	return nil
}

// absNames folds a path against the current directory into absolute names,
// applying the same up-level arithmetic as a scope entry.
func (ctx *Context) absNames(path vfs.Path) ([]string, error) {
	names := ctx.Shell.CWD()
	if path.IsAbs() {
		names = names[:0]
	}

	for consumed := 0; consumed < path.Up(); consumed++ {
		if len(names) == 0 {
			return nil, &vfs.WalkError{
				Op:   "resolve target",
				Path: path.String(),
				From: ctx.Shell.Current().String(),
				Err: fmt.Errorf(
					"%w: %d levels up requested, %d available",
					vfs.ErrEscapedRoot, path.Up(), consumed,
				),
			}
		}

		names = names[:len(names)-1]
	}

	return append(names, path.Names()...), nil
}
