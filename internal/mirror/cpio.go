// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package mirror

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cavaliergopher/cpio"
)

const numLinks = 2

type archiveKind int

const (
	archiveDir archiveKind = iota
	archiveFile
	archiveSymlink
)

type archiveEntry struct {
	kind    archiveKind
	path    string
	content string
	target  string
}

var _ Mirror = (*Archive)(nil)

// Archive is a [Mirror] that stages entries in declared order and writes
// them out as a cpio archive. It lets a build target an archive instead of
// a directory without the engine knowing the difference.
type Archive struct {
	entries []string
	staged  map[string]*archiveEntry
}

// NewArchive returns an empty archive mirror.
func NewArchive() *Archive {
	return &Archive{
		staged: make(map[string]*archiveEntry),
	}
}

// normalize strips leading separators and cleans the path so staged names
// are mount-relative archive member names.
func normalize(path string) string {
	path = filepath.ToSlash(filepath.Clean(path))
	path = strings.TrimPrefix(path, "/")

	if path == "." {
		return ""
	}

	return path
}

func (a *Archive) stage(entry *archiveEntry) {
	if _, exists := a.staged[entry.path]; !exists {
		a.entries = append(a.entries, entry.path)
	}

	a.staged[entry.path] = entry
}

// Mkdir stages an empty directory.
func (a *Archive) Mkdir(path string) error {
	a.stage(&archiveEntry{
		kind: archiveDir,
		path: normalize(path),
	})

	return nil
}

// EnsureDir stages the directory along with any missing parents.
func (a *Archive) EnsureDir(path string) error {
	cleaned := normalize(path)
	if cleaned == "" {
		return nil
	}

	parent := filepath.Dir(cleaned)
	if parent != "." {
		err := a.EnsureDir(parent)
		if err != nil {
			return err
		}
	}

	if _, exists := a.staged[cleaned]; !exists {
		return a.Mkdir(cleaned)
	}

	return nil
}

// RemoveIfPresent drops the entry and everything staged below it.
func (a *Archive) RemoveIfPresent(path string) error {
	cleaned := normalize(path)
	prefix := cleaned + "/"

	kept := a.entries[:0]

	for _, name := range a.entries {
		if name == cleaned || strings.HasPrefix(name, prefix) {
			delete(a.staged, name)
			continue
		}

		kept = append(kept, name)
	}

	a.entries = kept

	return nil
}

// WriteTextFile stages a regular file with the given content.
func (a *Archive) WriteTextFile(path string, content string) error {
	a.stage(&archiveEntry{
		kind:    archiveFile,
		path:    normalize(path),
		content: content,
	})

	return nil
}

// Symlink stages a symbolic link. The target is stored verbatim as the
// link body.
func (a *Archive) Symlink(path string, target string) error {
	a.stage(&archiveEntry{
		kind:   archiveSymlink,
		path:   normalize(path),
		target: target,
	})

	return nil
}

// Exists reports whether an entry is staged at path.
func (a *Archive) Exists(path string) bool {
	_, exists := a.staged[normalize(path)]
	return exists
}

// WriteTo writes all staged entries to w in staging order.
func (a *Archive) WriteTo(w io.Writer) error {
	writer := cpio.NewWriter(w)

	for _, name := range a.entries {
		err := a.writeEntry(writer, a.staged[name])
		if err != nil {
			return err
		}
	}

	err := writer.Close()
	if err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}

func (a *Archive) writeEntry(writer *cpio.Writer, entry *archiveEntry) error {
	header := &cpio.Header{
		Name: entry.path,
	}

	var body string

	switch entry.kind {
	case archiveDir:
		header.Mode = cpio.TypeDir | cpio.ModePerm
		header.Links = numLinks
	case archiveFile:
		header.Mode = cpio.TypeReg | cpio.ModePerm
		header.Size = int64(len(entry.content))
		body = entry.content
	case archiveSymlink:
		// Body of a link is the path of the target file.
		header.Mode = cpio.TypeSymlink | cpio.ModePerm
		header.Size = int64(len(entry.target))
		body = entry.target
	}

	err := writer.WriteHeader(header)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", entry.path, err)
	}

	if body != "" {
		_, err = writer.Write([]byte(body))
		if err != nil {
			return fmt.Errorf("write body for %s: %w", entry.path, err)
		}
	}

	return nil
}
