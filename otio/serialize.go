// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package otio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// SchemaKey is the serialized key holding the schema label.
const SchemaKey = "OTIO_SCHEMA"

// ErrUnlabeled is returned when serializing a value without a schema label.
var ErrUnlabeled = errors.New("value has no schema label")

// SchemaLabel returns "<name>.<version>" for value.
func SchemaLabel(value Labeled) string {
	return value.SchemaName() + "." + strconv.Itoa(value.SchemaVersion())
}

// Serialize encodes value as a JSON object carrying its schema label.
func Serialize(value any) ([]byte, error) {
	labeled, ok := value.(Labeled)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnlabeled, value)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", value, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("marshal %T: not an object: %w", value, err)
	}

	if fields == nil {
		return nil, fmt.Errorf("marshal %T: not an object", value)
	}

	label, err := json.Marshal(SchemaLabel(labeled))
	if err != nil {
		return nil, err
	}

	fields[SchemaKey] = label
	return json.Marshal(fields)
}

// WriteToString encodes value as JSON text.
func WriteToString(value any) (string, error) {
	data, err := Serialize(value)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
