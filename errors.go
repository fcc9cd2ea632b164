// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import "errors"

var (
	// ErrReadPolicyFile is returned when policy file loading fails.
	ErrReadPolicyFile = errors.New("read policy file")
	// ErrDecodePolicy is returned when policy YAML decoding fails.
	ErrDecodePolicy = errors.New("decode policy")
	// ErrInvalidPolicy is returned when policy validation fails.
	ErrInvalidPolicy = errors.New("invalid policy")
	// ErrInvalidSource is returned when extraction source is missing root, marker or serializer.
	ErrInvalidSource = errors.New("invalid source")
	// ErrUnknownType is returned when policy references a type absent from the namespace graph.
	ErrUnknownType = errors.New("unknown type")
	// ErrUnknownNamespace is returned when policy references a namespace absent from the namespace graph.
	ErrUnknownNamespace = errors.New("unknown namespace")
	// ErrInstantiateType is returned when a discovered type constructor yields no instance.
	ErrInstantiateType = errors.New("instantiate type")
	// ErrSerializeType is returned when the serializer fails for a discovered type.
	ErrSerializeType = errors.New("serialize type")
	// ErrDecodeType is returned when serialized output is not a JSON object.
	ErrDecodeType = errors.New("decode serialized type")
	// ErrMissingLabel is returned when serialized output carries no string schema label.
	ErrMissingLabel = errors.New("missing schema label")
	// ErrDuplicateLabel is returned when two discovered types serialize the same schema label.
	ErrDuplicateLabel = errors.New("duplicate schema label")
	// ErrPropertyNotFound is returned by documentation resolvers when the accessor shape does not exist.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrUnknownSnapshotFormat is returned when snapshot format is not supported.
	ErrUnknownSnapshotFormat = errors.New("unknown snapshot format")
	// ErrEncodeSnapshot is returned when model snapshot encoding fails.
	ErrEncodeSnapshot = errors.New("encode snapshot")
)
