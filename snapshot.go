// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// SnapshotFormatJSON encodes model snapshot as indented JSON.
	SnapshotFormatJSON SnapshotFormat = "json"
	// SnapshotFormatYAML encodes model snapshot as YAML with type documentation comments.
	SnapshotFormatYAML SnapshotFormat = "yaml"
)

// SnapshotFormat configures model snapshot encoding.
type SnapshotFormat string

// snapshotEntry is one type in a model snapshot.
type snapshotEntry struct {
	Namespace string            `json:"namespace"`
	Path      string            `json:"path"`
	Fields    map[string]string `json:"fields"`

	doc string
}

// EncodeSnapshot serializes model as a machine-readable map keyed by schema label,
// suitable for diffing schema changes between runs.
func EncodeSnapshot(model *Model, format SnapshotFormat) ([]byte, error) {
	format, err := normalizeSnapshotFormat(format)
	if err != nil {
		return nil, err
	}

	entries := buildSnapshot(model)

	var data []byte
	switch format {
	case SnapshotFormatYAML:
		data, err = marshalSnapshotYAML(entries)
	default:
		data, err = marshalSnapshotJSON(entries)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeSnapshot, err)
	}

	return data, nil
}

// normalizeSnapshotFormat validates snapshot format and applies default JSON format.
func normalizeSnapshotFormat(format SnapshotFormat) (SnapshotFormat, error) {
	format = SnapshotFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch format {
	case "":
		return SnapshotFormatJSON, nil
	case SnapshotFormatJSON, SnapshotFormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSnapshotFormat, format)
	}
}

// buildSnapshot converts model into label-keyed entries.
func buildSnapshot(model *Model) map[string]snapshotEntry {
	out := make(map[string]snapshotEntry, model.Len())
	for _, tm := range model.types {
		namespace := model.EffectiveNamespace(tm.Type)
		entry := snapshotEntry{
			Namespace: namespace,
			Path:      appendPath(namespace, tm.Type.Name),
			Fields:    make(map[string]string),
			doc:       tm.Type.Doc,
		}

		for _, field := range tm.Fields() {
			entry.Fields[field.Key] = sanitizeText(field.Doc)
		}

		out[tm.Label] = entry
	}

	return out
}

// marshalSnapshotJSON serializes snapshot as pretty JSON.
func marshalSnapshotJSON(entries map[string]snapshotEntry) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(entries); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalSnapshotYAML serializes snapshot as YAML with type docs as head comments.
func marshalSnapshotYAML(entries map[string]snapshotEntry) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, label := range sortedKeys(entries) {
		entry := entries[label]

		keyNode := yamlScalarNode("!!str", label)
		keyNode.HeadComment = normalizeYAMLComment(entry.doc)

		fields := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range sortedKeys(entry.Fields) {
			fields.Content = append(fields.Content, yamlScalarNode("!!str", key), yamlScalarNode("!!str", entry.Fields[key]))
		}

		value := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		value.Content = append(value.Content,
			yamlScalarNode("!!str", "namespace"), yamlScalarNode("!!str", entry.Namespace),
			yamlScalarNode("!!str", "path"), yamlScalarNode("!!str", entry.Path),
			yamlScalarNode("!!str", "fields"), fields,
		)

		root.Content = append(root.Content, keyNode, value)
	}

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{root},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// normalizeYAMLComment drops blank lines from comment body.
func normalizeYAMLComment(comment string) string {
	lines := strings.Split(normalizeLineEndings(comment), "\n")
	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}

		normalized = append(normalized, line)
	}

	return strings.Join(normalized, "\n")
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// sortedKeys returns deterministic sorted map keys.
func sortedKeys[V any](values map[string]V) []string {
	out := make([]string, 0, len(values))
	for key := range values {
		out = append(out, key)
	}

	sort.Strings(out)
	return out
}
