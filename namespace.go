// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"fmt"
	"reflect"
	"strings"
)

// SerializeFunc converts one object model instance into JSON text.
type SerializeFunc func(instance any) ([]byte, error)

// Source describes the object model consumed by Extract.
type Source struct {
	// Root is the namespace traversal starts from.
	Root *Namespace
	// Marker is the interface type every serializable type implements.
	Marker reflect.Type
	// Serialize is the serialization engine used to recover field sets.
	Serialize SerializeFunc
}

// Property is one accessor registered on a type.
type Property struct {
	// Doc is the accessor documentation string.
	Doc string
	// Method marks accessors that exist but are not properties; they document as empty text.
	Method bool
}

// Type is one object model type registered in the namespace graph.
// Identity is the pointer value.
type Type struct {
	// Name is the local type name.
	Name string
	// Doc is the type documentation string.
	Doc string
	// New returns a default-constructed instance; nil marks an abstract type.
	New func() any
	// Properties lists accessors keyed by accessor name.
	Properties map[string]Property

	declaredIn *Namespace
}

// Concrete reports whether the type can be default-constructed.
func (t *Type) Concrete() bool {
	return t != nil && t.New != nil
}

// Namespace returns raw declaring namespace path.
func (t *Type) Namespace() string {
	if t == nil || t.declaredIn == nil {
		return ""
	}

	return t.declaredIn.Path
}

// QualifiedName returns declaring namespace path joined with local name.
func (t *Type) QualifiedName() string {
	return appendPath(t.Namespace(), t.Name)
}

// String implements fmt.Stringer.
func (t *Type) String() string {
	return t.QualifiedName()
}

// Namespace is one node of the namespace graph. Members keep registration order.
type Namespace struct {
	// Path is the dotted namespace path.
	Path string
	// Doc is optional namespace documentation.
	Doc string

	types    []*Type
	children []*Namespace
}

// NewNamespace allocates an empty namespace.
func NewNamespace(path string) *Namespace {
	return &Namespace{Path: strings.TrimSpace(path)}
}

// Declare registers types as declared by this namespace.
func (n *Namespace) Declare(types ...*Type) *Namespace {
	for _, t := range types {
		if t.declaredIn != nil && t.declaredIn != n {
			panic(fmt.Sprintf("serialdoc: type %s already declared in %s", t.Name, t.declaredIn.Path))
		}

		t.declaredIn = n
		n.addType(t)
	}

	return n
}

// Export registers types re-exported by this namespace without changing their declaring namespace.
func (n *Namespace) Export(types ...*Type) *Namespace {
	for _, t := range types {
		n.addType(t)
	}

	return n
}

// Include adds child namespace edges. Shared children and back-references are allowed.
func (n *Namespace) Include(children ...*Namespace) *Namespace {
	for _, child := range children {
		if child == nil || n.hasChild(child) {
			continue
		}

		n.children = append(n.children, child)
	}

	return n
}

// Types returns a copy of type members.
func (n *Namespace) Types() []*Type {
	out := make([]*Type, len(n.types))
	copy(out, n.types)
	return out
}

// Namespaces returns a copy of child namespace members.
func (n *Namespace) Namespaces() []*Namespace {
	out := make([]*Namespace, len(n.children))
	copy(out, n.children)
	return out
}

// Contains reports direct membership of type in this namespace.
func (n *Namespace) Contains(t *Type) bool {
	for _, member := range n.types {
		if member == t {
			return true
		}
	}

	return false
}

// Find returns the namespace with path reachable from n, or nil.
func (n *Namespace) Find(path string) *Namespace {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	var found *Namespace
	n.walk(make(map[*Namespace]struct{}), func(ns *Namespace) bool {
		if ns.Path == path {
			found = ns
			return false
		}

		return true
	})

	return found
}

// FindType returns the type with qualified name reachable from n, or nil.
func (n *Namespace) FindType(qualifiedName string) *Type {
	qualifiedName = strings.TrimSpace(qualifiedName)
	if qualifiedName == "" {
		return nil
	}

	var found *Type
	n.walk(make(map[*Namespace]struct{}), func(ns *Namespace) bool {
		for _, t := range ns.types {
			if t.QualifiedName() == qualifiedName {
				found = t
				return false
			}
		}

		return true
	})

	return found
}

// walk visits namespaces depth-first, each at most once, until visit returns false.
func (n *Namespace) walk(seen map[*Namespace]struct{}, visit func(*Namespace) bool) bool {
	if _, ok := seen[n]; ok {
		return true
	}

	seen[n] = struct{}{}
	if !visit(n) {
		return false
	}

	for _, child := range n.children {
		if !child.walk(seen, visit) {
			return false
		}
	}

	return true
}

func (n *Namespace) addType(t *Type) {
	if t == nil || n.Contains(t) {
		return
	}

	n.types = append(n.types, t)
}

func (n *Namespace) hasChild(child *Namespace) bool {
	for _, member := range n.children {
		if member == child {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (n *Namespace) String() string {
	return n.Path
}

// appendPath joins path segments with a dot while preserving empty root prefix.
func appendPath(base, segment string) string {
	base = strings.TrimSpace(base)
	segment = strings.TrimSpace(segment)
	if base == "" {
		return segment
	}

	if segment == "" {
		return base
	}

	return base + "." + segment
}
