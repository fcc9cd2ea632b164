// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"encoding/json"
	"fmt"
	"reflect"
)

const fixtureLabelKey = "OTIO_SCHEMA"

// fixtureLabeled is implemented by every fixture value the serializer accepts.
type fixtureLabeled interface {
	label() string
}

// fixtureObject is the marker interface of fixture reference types.
type fixtureObject interface {
	fixtureLabeled
	object()
}

type fooObject struct {
	Name     string `json:"name" doc:"Instance name."`
	Children []any  `json:"children"`
}

func (*fooObject) label() string { return "Foo.1" }
func (*fooObject) object() {}

type barObject struct {
	Value int `json:"value" doc:"Bar value."`
	Size  int `json:"size"`
}

func (*barObject) label() string { return "Bar.1" }
func (*barObject) object() {}

type hiddenObject struct {
	Secret string `json:"secret"`
}

func (*hiddenObject) label() string { return "Hidden.1" }
func (*hiddenObject) object() {}

// pointValue is serializable but does not implement the marker.
type pointValue struct {
	X float64 `json:"x" doc:"Horizontal coordinate."`
	Y float64 `json:"y" doc:"Vertical coordinate."`
}

func (pointValue) label() string { return "Point.1" }

// fixtureGraph is a small cyclic namespace graph:
//
//	pkg -> pkg._impl, pkg.core, pkg.schema, pkg.util
//	pkg.core -> pkg._impl, pkg.schema
//	pkg.schema -> pkg.core, pkg
type fixtureGraph struct {
	root   *Namespace
	impl   *Namespace
	core   *Namespace
	schema *Namespace
	util   *Namespace

	foo      *Type
	bar      *Type
	hidden   *Type
	point    *Type
	abstract *Type
}

func newFixtureGraph() *fixtureGraph {
	g := &fixtureGraph{
		foo: &Type{
			Name:       "Foo",
			Doc:        "Foo is the first fixture type.\n\nIt has a name.",
			New:        func() any { return &fooObject{Name: "x", Children: []any{}} },
			Properties: map[string]Property{"name": {Doc: "Name of the object."}},
		},
		bar: &Type{
			Name: "Bar",
			Doc:  "Bar holds numbers.",
			New:  func() any { return &barObject{} },
			Properties: map[string]Property{
				"_value": {Doc: "Private value accessor."},
				"size":   {Method: true},
			},
		},
		hidden: &Type{
			Name: "Hidden",
			New:  func() any { return &hiddenObject{} },
		},
		point: &Type{
			Name: "Point",
			Doc:  "Point in plane.",
			New:  func() any { return pointValue{} },
		},
		abstract: &Type{Name: "Abstract", Doc: "Cannot be constructed."},
	}

	g.impl = NewNamespace("pkg._impl").Declare(g.foo, g.bar, g.hidden, g.point, g.abstract)
	g.core = NewNamespace("pkg.core").Export(g.foo, g.abstract, g.hidden).Include(g.impl)
	g.schema = NewNamespace("pkg.schema").Export(g.bar)
	g.util = NewNamespace("pkg.util").Export(g.point)
	g.root = NewNamespace("pkg").Include(g.impl, g.core, g.schema, g.util)

	g.core.Include(g.schema)
	g.schema.Include(g.core, g.root)

	return g
}

// source wires fixture graph into extraction.
func (g *fixtureGraph) source() Source {
	return Source{
		Root:      g.root,
		Marker:    reflect.TypeFor[fixtureObject](),
		Serialize: fixtureSerialize,
	}
}

// fixturePolicy returns policy matching fixture graph.
func fixturePolicy() Policy {
	return Policy{
		LabelKey:            fixtureLabelKey,
		SkipKeys:            []string{fixtureLabelKey, "children"},
		SkipTypes:           []string{"pkg._impl.Hidden"},
		AllowTypes:          []string{"pkg._impl.Point"},
		SkipNamespaces:      []string{"pkg._impl"},
		OpaqueNamespaces:    []string{"pkg._impl"},
		CanonicalNamespaces: []string{"pkg.schema", "pkg.core", "pkg.util"},
	}
}

// fixtureSerialize encodes labeled fixture values as JSON objects carrying the label key.
func fixtureSerialize(instance any) ([]byte, error) {
	labeled, ok := instance.(fixtureLabeled)
	if !ok {
		return nil, fmt.Errorf("unlabeled fixture value %T", instance)
	}

	data, err := json.Marshal(instance)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	fields[fixtureLabelKey] = labeled.label()
	return json.Marshal(fields)
}

// extractFixture runs extraction over a fresh fixture graph.
func extractFixture(policy Policy) (*fixtureGraph, *Model, error) {
	g := newFixtureGraph()
	model, err := Extract(g.source(), ExtractOptions{Policy: policy})
	return g, model, err
}
