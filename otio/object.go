// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package otio

// Labeled is implemented by every value carrying a schema label.
type Labeled interface {
	SchemaName() string
	SchemaVersion() int
}

// SerializableObject is the marker interface of reference types in the model.
// Only types embedding Object implement it.
type SerializableObject interface {
	Labeled
	serializableObject()
}

// Object is the root of all serializable reference types.
type Object struct{}

func (*Object) serializableObject() {}

// SchemaName implements Labeled.
func (*Object) SchemaName() string { return "SerializableObject" }

// SchemaVersion implements Labeled.
func (*Object) SchemaVersion() int { return 1 }

// ObjectWithMetadata adds name and free-form metadata.
type ObjectWithMetadata struct {
	Object

	Name     string         `json:"name" doc:"Name of the object."`
	Metadata map[string]any `json:"metadata" doc:"Metadata dictionary."`
}

// SchemaName implements Labeled.
func (*ObjectWithMetadata) SchemaName() string { return "SerializableObjectWithMetadata" }

// SchemaVersion implements Labeled.
func (*ObjectWithMetadata) SchemaVersion() int { return 1 }

// newObjectWithMetadata returns base value with empty metadata.
func newObjectWithMetadata() ObjectWithMetadata {
	return ObjectWithMetadata{Metadata: map[string]any{}}
}

// UnknownSchema carries payloads whose schema is not registered.
type UnknownSchema struct {
	Object

	OriginalSchemaName    string `json:"original_schema_name"`
	OriginalSchemaVersion int    `json:"original_schema_version"`
}

// SchemaName implements Labeled.
func (*UnknownSchema) SchemaName() string { return "UnknownSchema" }

// SchemaVersion implements Labeled.
func (*UnknownSchema) SchemaVersion() int { return 1 }

// TestObject exists for serialization round-trip tests only.
type TestObject struct {
	ObjectWithMetadata
}

// SchemaName implements Labeled.
func (*TestObject) SchemaName() string { return "Test" }

// SchemaVersion implements Labeled.
func (*TestObject) SchemaVersion() int { return 1 }
