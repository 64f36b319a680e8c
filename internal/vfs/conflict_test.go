// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFreshName(t *testing.T) {
	for _, mode := range []Mode{Timid, Placid, Assertive} {
		t.Run(mode.String(), func(t *testing.T) {
			parent := NewDirectory("test")
			node := NewFile("fresh")

			result, created, err := Apply(parent, "name", node, mode)
			require.NoError(t, err)
			assert.True(t, created)
			assert.Equal(t, node, result)

			child, exists := parent.Child("name")
			require.True(t, exists)
			assert.Equal(t, node, child)
		})
	}
}

func TestApplyTimidConflict(t *testing.T) {
	parent := NewDirectory("test")
	first := NewFile("first origin")
	parent.put("name", first)

	_, _, err := Apply(parent, "name", NewFile("second"), Timid)
	require.ErrorIs(t, err, ErrNameConflict)

	var walkErr *WalkError
	require.ErrorAs(t, err, &walkErr)
	assert.Equal(t, "first origin", walkErr.Origin)

	// The first entry is untouched.
	child, exists := parent.Child("name")
	require.True(t, exists)
	assert.Equal(t, first, child)
}

func TestApplyPlacidSkips(t *testing.T) {
	parent := NewDirectory("test")
	first := NewFile("first")
	parent.put("name", first)

	result, created, err := Apply(parent, "name", NewFile("second"), Placid)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, result)
}

func TestApplyAssertiveReplaces(t *testing.T) {
	parent := NewDirectory("test")
	parent.put("name", NewDirectory("old dir"))

	replacement := NewFile("new file")

	result, created, err := Apply(parent, "name", replacement, Assertive)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, replacement, result)

	// Kind mismatch is fine: the file replaced a directory.
	child, _ := parent.Child("name")
	assert.Equal(t, KindFile, child.Kind)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"", Timid},
		{"timid", Timid},
		{"placid", Placid},
		{"assertive", Assertive},
	}

	for _, tt := range tests {
		mode, err := ParseMode(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, mode, tt.input)
	}

	_, err := ParseMode("bold")
	require.ErrorIs(t, err, ErrInvalidMode)
}
