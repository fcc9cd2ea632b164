// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
)

// ExtractOptions configures one extraction run.
type ExtractOptions struct {
	// Policy selects skipped keys, types and namespaces.
	Policy Policy
	// Resolvers is the ordered documentation lookup chain; DefaultResolvers when empty.
	Resolvers []DocResolver
	// Diagnostics receives non-fatal lookup errors; discarded when nil.
	Diagnostics io.Writer
}

// extractor holds state shared by recursive namespace visits.
type extractor struct {
	source      Source
	policy      Policy
	resolvers   []DocResolver
	diagnostics io.Writer
	skipTypes   map[*Type]struct{}
	allowTypes  map[*Type]struct{}
	model       *Model
}

// Extract walks the namespace graph from src.Root and returns every serializable
// type with its serialized field set and field documentation.
//
// A type that fails to instantiate, serialize or decode aborts the run.
func Extract(src Source, opt ExtractOptions) (*Model, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}

	if err := opt.Policy.Validate(); err != nil {
		return nil, err
	}

	skipTypes, err := resolveTypes(src.Root, opt.Policy.SkipTypes)
	if err != nil {
		return nil, err
	}

	allowTypes, err := resolveTypes(src.Root, opt.Policy.AllowTypes)
	if err != nil {
		return nil, err
	}

	opaque, err := resolveNamespaces(src.Root, opt.Policy.OpaqueNamespaces)
	if err != nil {
		return nil, err
	}

	canonical, err := resolveNamespaces(src.Root, opt.Policy.CanonicalNamespaces)
	if err != nil {
		return nil, err
	}

	resolvers := opt.Resolvers
	if len(resolvers) == 0 {
		resolvers = DefaultResolvers()
	}

	diagnostics := opt.Diagnostics
	if diagnostics == nil {
		diagnostics = io.Discard
	}

	ex := &extractor{
		source:      src,
		policy:      opt.Policy,
		resolvers:   resolvers,
		diagnostics: diagnostics,
		skipTypes:   toSet(skipTypes),
		allowTypes:  toSet(allowTypes),
		model:       newModel(opaque, canonical),
	}

	if err := ex.visit(src.Root); err != nil {
		return nil, err
	}

	return ex.model, nil
}

// visit extracts local candidates and recurses into unvisited child namespaces.
func (ex *extractor) visit(ns *Namespace) error {
	ex.model.markVisited(ns)

	for _, t := range ns.types {
		if !ex.isCandidate(t) {
			continue
		}

		tm, err := ex.extractType(t)
		if err != nil {
			return err
		}

		if err := ex.model.add(tm); err != nil {
			return err
		}
	}

	next := make([]*Namespace, 0, len(ns.children))
	for _, child := range ns.children {
		if _, seen := ex.model.visited[child]; seen {
			continue
		}

		if ex.policy.skipsNamespace(child.Path) {
			continue
		}

		next = append(next, child)
	}

	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Path < next[j].Path
	})

	for _, child := range next {
		// a sibling subtree may have reached it already
		if _, seen := ex.model.visited[child]; seen {
			continue
		}

		if err := ex.visit(child); err != nil {
			return err
		}
	}

	return nil
}

// isCandidate applies discovery filter: concrete, new, not denied, marker or allow-listed.
func (ex *extractor) isCandidate(t *Type) bool {
	if !t.Concrete() || ex.model.has(t) {
		return false
	}

	if _, denied := ex.skipTypes[t]; denied {
		return false
	}

	if _, allowed := ex.allowTypes[t]; allowed {
		return true
	}

	return ex.implementsMarker(t)
}

// implementsMarker reports whether default instance implements source marker interface.
func (ex *extractor) implementsMarker(t *Type) bool {
	instance := t.New()
	if instance == nil {
		return false
	}

	return reflect.TypeOf(instance).Implements(ex.source.Marker)
}

// extractType round-trips one default instance through serializer and resolves field docs.
func (ex *extractor) extractType(t *Type) (*TypeModel, error) {
	fields, err := ex.serializedFields(t)
	if err != nil {
		return nil, err
	}

	label, ok := fields[ex.policy.LabelKey].(string)
	if !ok || label == "" {
		return nil, fmt.Errorf("%w %q in %s", ErrMissingLabel, ex.policy.LabelKey, t.QualifiedName())
	}

	tm := &TypeModel{
		Type:    t,
		Label:   label,
		Entries: make([]FieldEntry, 0, len(fields)),
	}

	for key := range fields {
		if ex.policy.skipsKey(key) {
			continue
		}

		tm.Entries = append(tm.Entries, ex.resolveField(t, key))
	}

	tm.Entries = append(tm.Entries, FieldEntry{
		Key:         ex.policy.LabelKey,
		Doc:         label,
		Resolved:    true,
		Bookkeeping: true,
	})

	tm.sortEntries()
	return tm, nil
}

// serializedFields instantiates, serializes and decodes one type into a key map.
func (ex *extractor) serializedFields(t *Type) (map[string]any, error) {
	instance := t.New()
	if instance == nil {
		return nil, fmt.Errorf("%w %s: constructor returned nil", ErrInstantiateType, t.QualifiedName())
	}

	data, err := ex.source.Serialize(instance)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSerializeType, t.QualifiedName(), err)
	}

	var fields map[string]any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecodeType, t.QualifiedName(), err)
	}

	if fields == nil {
		return nil, fmt.Errorf("%w %s: serialized value is not an object", ErrDecodeType, t.QualifiedName())
	}

	return fields, nil
}

// resolveField runs resolver chain; first resolver not reporting ErrPropertyNotFound wins.
func (ex *extractor) resolveField(t *Type, key string) FieldEntry {
	for _, resolve := range ex.resolvers {
		doc, err := resolve(t, key)
		if errors.Is(err, ErrPropertyNotFound) {
			continue
		}

		if err != nil {
			_, _ = fmt.Fprintf(ex.diagnostics, "warning: %s.%s: %v\n", t.QualifiedName(), key, err)
			continue
		}

		return FieldEntry{Key: key, Doc: doc, Resolved: true}
	}

	_, _ = fmt.Fprintf(ex.diagnostics, "ERROR: could not fetch property: %s.%s\n", t.QualifiedName(), key)
	return FieldEntry{Key: key}
}

// validateSource checks extraction source collaborators.
func validateSource(src Source) error {
	switch {
	case src.Root == nil:
		return fmt.Errorf("%w: root namespace is nil", ErrInvalidSource)
	case src.Serialize == nil:
		return fmt.Errorf("%w: serializer is nil", ErrInvalidSource)
	case src.Marker == nil || src.Marker.Kind() != reflect.Interface:
		return fmt.Errorf("%w: marker must be an interface type", ErrInvalidSource)
	}

	return nil
}

// resolveTypes maps qualified names to registered types.
func resolveTypes(root *Namespace, names []string) ([]*Type, error) {
	out := make([]*Type, 0, len(names))
	for _, name := range names {
		t := root.FindType(name)
		if t == nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownType, name)
		}

		out = append(out, t)
	}

	return out, nil
}

// resolveNamespaces maps namespace paths to registered namespaces.
func resolveNamespaces(root *Namespace, paths []string) ([]*Namespace, error) {
	out := make([]*Namespace, 0, len(paths))
	for _, path := range paths {
		ns := root.Find(path)
		if ns == nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownNamespace, path)
		}

		out = append(out, ns)
	}

	return out, nil
}

// toSet builds identity set from type list.
func toSet(types []*Type) map[*Type]struct{} {
	out := make(map[*Type]struct{}, len(types))
	for _, t := range types {
		out[t] = struct{}{}
	}

	return out
}
