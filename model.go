// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"fmt"
	"sort"
)

// FieldEntry is one serialized field of a type.
type FieldEntry struct {
	// Key is the serialized field key, unique within its type.
	Key string
	// Doc is the resolved documentation text, possibly empty.
	Doc string
	// Resolved is false when no documentation resolver matched the key.
	Resolved bool
	// Bookkeeping marks the stashed schema label entry, which is never rendered.
	Bookkeeping bool
}

// TypeModel is the extraction result for one type.
type TypeModel struct {
	Type *Type
	// Label is the schema label read from the serialized format-tag key.
	Label string
	// Entries holds every field entry sorted by key, bookkeeping entries included.
	Entries []FieldEntry
}

// Fields returns field entries without bookkeeping keys.
func (tm *TypeModel) Fields() []FieldEntry {
	out := make([]FieldEntry, 0, len(tm.Entries))
	for _, entry := range tm.Entries {
		if entry.Bookkeeping {
			continue
		}

		out = append(out, entry)
	}

	return out
}

// Field returns one entry by key.
func (tm *TypeModel) Field(key string) (FieldEntry, bool) {
	for _, entry := range tm.Entries {
		if entry.Key == key {
			return entry, true
		}
	}

	return FieldEntry{}, false
}

// sortEntries orders entries by key.
func (tm *TypeModel) sortEntries() {
	sort.Slice(tm.Entries, func(i, j int) bool {
		return tm.Entries[i].Key < tm.Entries[j].Key
	})
}

// Model is the aggregate result of one extraction run. It is not safe for concurrent use.
type Model struct {
	types   []*TypeModel
	byType  map[*Type]*TypeModel
	byLabel map[string]*TypeModel
	visited map[*Namespace]struct{}
	visits  []string

	opaque    []*Namespace
	canonical []*Namespace
	effective map[*Type]string
}

// newModel allocates empty model with remapping configuration.
func newModel(opaque, canonical []*Namespace) *Model {
	return &Model{
		byType:    make(map[*Type]*TypeModel),
		byLabel:   make(map[string]*TypeModel),
		visited:   make(map[*Namespace]struct{}),
		opaque:    opaque,
		canonical: canonical,
		effective: make(map[*Type]string),
	}
}

// Types returns type models in discovery order.
func (m *Model) Types() []*TypeModel {
	out := make([]*TypeModel, len(m.types))
	copy(out, m.types)
	return out
}

// Len returns number of extracted types.
func (m *Model) Len() int {
	return len(m.types)
}

// Lookup returns extraction result for one type.
func (m *Model) Lookup(t *Type) (*TypeModel, bool) {
	tm, ok := m.byType[t]
	return tm, ok
}

// ByLabel returns extraction result for one schema label.
func (m *Model) ByLabel(label string) (*TypeModel, bool) {
	tm, ok := m.byLabel[label]
	return tm, ok
}

// VisitedNamespaces returns traversed namespace paths in visit order.
func (m *Model) VisitedNamespaces() []string {
	out := make([]string, len(m.visits))
	copy(out, m.visits)
	return out
}

// markVisited records namespace and reports whether it was new.
func (m *Model) markVisited(ns *Namespace) bool {
	if _, ok := m.visited[ns]; ok {
		return false
	}

	m.visited[ns] = struct{}{}
	m.visits = append(m.visits, ns.Path)
	return true
}

// has reports whether type was already recorded.
func (m *Model) has(t *Type) bool {
	_, ok := m.byType[t]
	return ok
}

// add records one type model; labels must be unique across the model.
func (m *Model) add(tm *TypeModel) error {
	if prev, ok := m.byLabel[tm.Label]; ok {
		return fmt.Errorf("%w %q: %s and %s", ErrDuplicateLabel, tm.Label, prev.Type.QualifiedName(), tm.Type.QualifiedName())
	}

	m.types = append(m.types, tm)
	m.byType[tm.Type] = tm
	m.byLabel[tm.Label] = tm
	return nil
}
