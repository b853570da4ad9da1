// SPDX-License-Identifier: MPL-2.0

// Package cueutil compiles user CUE documents against an embedded schema and
// formats CUE errors with JSON-path prefixes.
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	unified, err := cueutil.Unify(schema, data, "#Config", cueutil.WithFilename(path))
//	if err != nil {
//	    return err // includes the offending field path
//	}
package cueutil
