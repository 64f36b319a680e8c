// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package build

import "strings"

// Text produces a fragment of a file's content. Fragments are rendered only
// when the file is actually created, so a placid skip never evaluates them.
type Text interface {
	Render(ctx *Context) (string, error)
}

var (
	_ Text = Lit("")
	_ Text = TextFunc(nil)
)

// Lit is a literal text fragment.
type Lit string

// Render returns the literal.
func (l Lit) Render(*Context) (string, error) {
	return string(l), nil
}

// TextFunc is a deferred text fragment.
type TextFunc func(ctx *Context) (string, error)

// Render calls the function.
func (f TextFunc) Render(ctx *Context) (string, error) {
	return f(ctx)
}

func renderText(ctx *Context, parts []Text) (string, error) {
	var sb strings.Builder

	for _, part := range parts {
		fragment, err := part.Render(ctx)
		if err != nil {
			return "", err
		}

		sb.WriteString(fragment)
	}

	return sb.String(), nil
}
