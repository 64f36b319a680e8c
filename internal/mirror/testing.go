// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package mirror

import (
	"fmt"
	"strings"
)

var _ Mirror = (*Recorder)(nil)

// Recorder is a [Mirror] that records every call instead of touching
// storage. It backs tests and the dry-run plan output.
type Recorder struct {
	// Calls lists every mutating call in order, one line each.
	Calls []string

	// Files maps written file paths to their latest content.
	Files map[string]string

	present map[string]bool
}

// NewRecorder returns an empty recording mirror.
func NewRecorder() *Recorder {
	return &Recorder{
		Files:   make(map[string]string),
		present: make(map[string]bool),
	}
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

// Mkdir records a directory creation.
func (r *Recorder) Mkdir(path string) error {
	r.record("mkdir %s", path)
	r.present[path] = true

	return nil
}

// EnsureDir records an idempotent directory creation.
func (r *Recorder) EnsureDir(path string) error {
	r.record("ensuredir %s", path)
	r.present[path] = true

	return nil
}

// RemoveIfPresent records a removal and forgets the entry and everything
// below it.
func (r *Recorder) RemoveIfPresent(path string) error {
	r.record("remove %s", path)

	prefix := path + "/"

	for name := range r.present {
		if name == path || strings.HasPrefix(name, prefix) {
			delete(r.present, name)
			delete(r.Files, name)
		}
	}

	return nil
}

// WriteTextFile records a file write and keeps the content.
func (r *Recorder) WriteTextFile(path string, content string) error {
	r.record("write %s", path)
	r.present[path] = true
	r.Files[path] = content

	return nil
}

// Symlink records a link creation.
func (r *Recorder) Symlink(path string, target string) error {
	r.record("symlink %s -> %s", path, target)
	r.present[path] = true

	return nil
}

// Exists reports whether a prior call created the entry.
func (r *Recorder) Exists(path string) bool {
	return r.present[path]
}
