// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

// Package manifest loads declarative build trees from HCL files.
//
// A manifest nests dir, file, symlink and cd blocks arbitrarily:
//
//	dir "recipes" {
//	  file "index.md" {
//	    content = "These are good recipes."
//	  }
//	  dir "dessert" {
//	    mode = "placid"
//	  }
//	  symlink "latest" {
//	    target = "/recipes/dessert"
//	  }
//	  cd "/recipes/breakfast" {
//	    create = true
//	  }
//	}
//
// Sibling blocks evaluate in declared order. Each block's source range
// becomes the provenance of the nodes it creates.
package manifest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/treefab/treefab/internal/build"
	"github.com/treefab/treefab/internal/vfs"
)

var (
	// ErrManifestInvalid is returned for a structurally invalid manifest.
	ErrManifestInvalid = errors.New("invalid manifest")

	// ErrUnknownBlock is returned for a block type the schema does not
	// know.
	ErrUnknownBlock = errors.New("unknown block type")
)

// Load parses the manifest file and returns the build operations it
// declares, in declared order.
func Load(path string) ([]build.Op, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse manifest %s: %w", path, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%w: %s: not native HCL syntax",
			ErrManifestInvalid, path)
	}

	return decodeBody(body)
}

func decodeBody(body *hclsyntax.Body) ([]build.Op, error) {
	for name, attr := range body.Attributes {
		return nil, fmt.Errorf("%w: %s: unexpected attribute %q",
			ErrManifestInvalid, attr.SrcRange.String(), name)
	}

	ops := make([]build.Op, 0, len(body.Blocks))

	for _, block := range body.Blocks {
		op, err := decodeBlock(block)
		if err != nil {
			return nil, err
		}

		ops = append(ops, op)
	}

	return ops, nil
}

func decodeBlock(block *hclsyntax.Block) (build.Op, error) {
	switch block.Type {
	case "dir":
		return decodeDir(block)
	case "file":
		return decodeFile(block)
	case "symlink":
		return decodeSymlink(block)
	case "cd":
		return decodeCd(block)
	default:
		return nil, fmt.Errorf("%w: %s: %q",
			ErrUnknownBlock, block.DefRange().String(), block.Type)
	}
}

func decodeDir(block *hclsyntax.Block) (build.Op, error) {
	name, err := blockLabel(block)
	if err != nil {
		return nil, err
	}

	mode, err := modeAttr(block)
	if err != nil {
		return nil, err
	}

	err = allowAttrs(block, "mode")
	if err != nil {
		return nil, err
	}

	children, err := childOps(block)
	if err != nil {
		return nil, err
	}

	return &build.DirOp{
		Name:     name,
		Mode:     mode,
		Children: children,
		Origin:   block.DefRange().String(),
	}, nil
}

func decodeFile(block *hclsyntax.Block) (build.Op, error) {
	name, err := blockLabel(block)
	if err != nil {
		return nil, err
	}

	mode, err := modeAttr(block)
	if err != nil {
		return nil, err
	}

	err = allowAttrs(block, "mode", "content")
	if err != nil {
		return nil, err
	}

	if len(block.Body.Blocks) > 0 {
		nested := block.Body.Blocks[0]
		return nil, fmt.Errorf("%w: %s: file blocks cannot nest blocks",
			ErrManifestInvalid, nested.DefRange().String())
	}

	content, _, err := stringAttr(block, "content")
	if err != nil {
		return nil, err
	}

	return &build.FileOp{
		Name:   name,
		Mode:   mode,
		Text:   []build.Text{build.Lit(content)},
		Origin: block.DefRange().String(),
	}, nil
}

func decodeSymlink(block *hclsyntax.Block) (build.Op, error) {
	name, err := blockLabel(block)
	if err != nil {
		return nil, err
	}

	mode, err := modeAttr(block)
	if err != nil {
		return nil, err
	}

	err = allowAttrs(block, "mode", "target")
	if err != nil {
		return nil, err
	}

	target, exists, err := stringAttr(block, "target")
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, fmt.Errorf("%w: %s: symlink requires a target",
			ErrManifestInvalid, block.DefRange().String())
	}

	return &build.SymlinkOp{
		Name:   name,
		Target: vfs.ParsePath(target),
		Mode:   mode,
		Origin: block.DefRange().String(),
	}, nil
}

func decodeCd(block *hclsyntax.Block) (build.Op, error) {
	path, err := blockLabel(block)
	if err != nil {
		return nil, err
	}

	err = allowAttrs(block, "create")
	if err != nil {
		return nil, err
	}

	create, _, err := boolAttr(block, "create")
	if err != nil {
		return nil, err
	}

	children, err := childOps(block)
	if err != nil {
		return nil, err
	}

	return &build.CdOp{
		Path:     vfs.ParsePath(path),
		Create:   create,
		Children: children,
		Origin:   block.DefRange().String(),
	}, nil
}

func childOps(block *hclsyntax.Block) ([]build.Op, error) {
	ops := make([]build.Op, 0, len(block.Body.Blocks))

	for _, nested := range block.Body.Blocks {
		op, err := decodeBlock(nested)
		if err != nil {
			return nil, err
		}

		ops = append(ops, op)
	}

	return ops, nil
}

func blockLabel(block *hclsyntax.Block) (string, error) {
	if len(block.Labels) != 1 {
		return "", fmt.Errorf("%w: %s: %s requires exactly one label",
			ErrManifestInvalid, block.DefRange().String(), block.Type)
	}

	return block.Labels[0], nil
}

func modeAttr(block *hclsyntax.Block) (vfs.Mode, error) {
	name, _, err := stringAttr(block, "mode")
	if err != nil {
		return vfs.Timid, err
	}

	mode, err := vfs.ParseMode(name)
	if err != nil {
		return vfs.Timid, fmt.Errorf("%s: %w",
			block.DefRange().String(), err)
	}

	return mode, nil
}

func allowAttrs(block *hclsyntax.Block, allowed ...string) error {
	for name, attr := range block.Body.Attributes {
		if !slices.Contains(allowed, name) {
			return fmt.Errorf("%w: %s: unexpected attribute %q on %s",
				ErrManifestInvalid, attr.SrcRange.String(), name, block.Type)
		}
	}

	return nil
}

func stringAttr(block *hclsyntax.Block, name string) (string, bool, error) {
	value, exists, err := attrValue(block, name)
	if err != nil || !exists {
		return "", exists, err
	}

	if value.Type() != cty.String {
		return "", false, fmt.Errorf("%w: %s: %s must be a string",
			ErrManifestInvalid, block.DefRange().String(), name)
	}

	return value.AsString(), true, nil
}

func boolAttr(block *hclsyntax.Block, name string) (bool, bool, error) {
	value, exists, err := attrValue(block, name)
	if err != nil || !exists {
		return false, exists, err
	}

	if value.Type() != cty.Bool {
		return false, false, fmt.Errorf("%w: %s: %s must be a bool",
			ErrManifestInvalid, block.DefRange().String(), name)
	}

	return value.True(), true, nil
}

func attrValue(
	block *hclsyntax.Block,
	name string,
) (cty.Value, bool, error) {
	attr, exists := block.Body.Attributes[name]
	if !exists {
		return cty.NilVal, false, nil
	}

	value, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() {
		return cty.NilVal, false, fmt.Errorf("evaluate %s: %w", name, diags)
	}

	return value, true, nil
}
