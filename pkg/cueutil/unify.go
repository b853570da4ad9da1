// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Unify compiles schema and data, unifies data with the definition at
// schemaPath (e.g. "#Config") and validates the result.
//
// Schema failures are reported as internal errors; data failures are
// formatted with FormatError.
func Unify(schema, data []byte, schemaPath string, opts ...Option) (cue.Value, error) {
	o := applyOptions(opts)
	return unify(schema, data, schemaPath, o)
}

func unify(schema, data []byte, schemaPath string, o options) (cue.Value, error) {
	filename := o.filename

	if err := CheckFileSize(data, o.maxFileSize, filename); err != nil {
		return cue.Value{}, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return cue.Value{}, FormatError(userValue.Err(), filename)
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return cue.Value{}, FormatError(err, filename)
	}

	return unified, nil
}

// DecodeMap unifies like Unify and decodes the result into a generic map,
// the shape viper merges.
func DecodeMap(schema, data []byte, schemaPath string, opts ...Option) (map[string]any, error) {
	o := applyOptions(opts)
	unified, err := unify(schema, data, schemaPath, o)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := unified.Decode(&m); err != nil {
		return nil, FormatError(err, o.filename)
	}
	return m, nil
}
