// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package mirror_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/cavaliergopher/cpio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treefab/treefab/internal/mirror"
)

func readArchive(t *testing.T, archive *mirror.Archive) []*cpio.Header {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, archive.WriteTo(&buf))

	var headers []*cpio.Header

	reader := cpio.NewReader(&buf)

	for {
		hdr, err := reader.Next()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)
		headers = append(headers, hdr)
	}

	return headers
}

func TestArchiveWriteTo(t *testing.T) {
	archive := mirror.NewArchive()

	require.NoError(t, archive.Mkdir("recipes"))
	require.NoError(t, archive.WriteTextFile("recipes/index.md", "hello"))
	require.NoError(t, archive.Symlink("recipes/latest", "/recipes/dessert"))

	headers := readArchive(t, archive)
	require.Len(t, headers, 3)

	assert.Equal(t, "recipes", headers[0].Name)
	assert.EqualValues(t, cpio.TypeDir|cpio.ModePerm, headers[0].Mode)

	assert.Equal(t, "recipes/index.md", headers[1].Name)
	assert.EqualValues(t, int64(len("hello")), headers[1].Size)

	assert.Equal(t, "recipes/latest", headers[2].Name)
	assert.EqualValues(t, cpio.TypeSymlink|cpio.ModePerm, headers[2].Mode)
}

func TestArchiveStagingOrder(t *testing.T) {
	archive := mirror.NewArchive()

	require.NoError(t, archive.Mkdir("z"))
	require.NoError(t, archive.Mkdir("a"))
	require.NoError(t, archive.WriteTextFile("z/file", "x"))

	headers := readArchive(t, archive)
	require.Len(t, headers, 3)
	assert.Equal(t, "z", headers[0].Name)
	assert.Equal(t, "a", headers[1].Name)
	assert.Equal(t, "z/file", headers[2].Name)
}

func TestArchiveEnsureDirCreatesParents(t *testing.T) {
	archive := mirror.NewArchive()

	require.NoError(t, archive.EnsureDir("a/b/c"))
	require.NoError(t, archive.EnsureDir("a/b/c"))

	headers := readArchive(t, archive)
	require.Len(t, headers, 3)
	assert.Equal(t, "a", headers[0].Name)
	assert.Equal(t, "a/b", headers[1].Name)
	assert.Equal(t, "a/b/c", headers[2].Name)
}

func TestArchiveRemoveIfPresent(t *testing.T) {
	archive := mirror.NewArchive()

	require.NoError(t, archive.Mkdir("dir"))
	require.NoError(t, archive.WriteTextFile("dir/file", "x"))
	require.NoError(t, archive.WriteTextFile("keep", "y"))

	require.NoError(t, archive.RemoveIfPresent("dir"))

	assert.False(t, archive.Exists("dir"))
	assert.False(t, archive.Exists("dir/file"))
	assert.True(t, archive.Exists("keep"))

	headers := readArchive(t, archive)
	require.Len(t, headers, 1)
	assert.Equal(t, "keep", headers[0].Name)
}

func TestArchiveOverwriteKeepsOnePosition(t *testing.T) {
	archive := mirror.NewArchive()

	require.NoError(t, archive.WriteTextFile("file", "old"))
	require.NoError(t, archive.Mkdir("dir"))
	require.NoError(t, archive.WriteTextFile("file", "new"))

	headers := readArchive(t, archive)
	require.Len(t, headers, 2)
	assert.Equal(t, "file", headers[0].Name)
	assert.EqualValues(t, int64(len("new")), headers[0].Size)
}

func TestArchiveMountRelativeNames(t *testing.T) {
	archive := mirror.NewArchive()

	require.NoError(t, archive.Mkdir("/out/dir"))
	assert.True(t, archive.Exists("out/dir"))
	assert.True(t, archive.Exists("/out/dir"))
}
