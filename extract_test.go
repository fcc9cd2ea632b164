// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVisitsEachNamespaceOnce(t *testing.T) {
	t.Parallel()

	_, model, err := extractFixture(fixturePolicy())
	require.NoError(t, err)

	visits := model.VisitedNamespaces()
	assert.Equal(t, []string{"pkg", "pkg.core", "pkg.schema", "pkg.util"}, visits, spew.Sdump(visits))
}

func TestExtractDiscoversConcreteMarkerAndAllowedTypes(t *testing.T) {
	t.Parallel()

	g, model, err := extractFixture(fixturePolicy())
	require.NoError(t, err)

	labels := make([]string, 0, model.Len())
	for _, tm := range model.Types() {
		labels = append(labels, tm.Label)
	}

	assert.Equal(t, []string{"Foo.1", "Bar.1", "Point.1"}, labels)

	_, ok := model.Lookup(g.abstract)
	assert.False(t, ok, "abstract type must not be extracted")

	_, ok = model.Lookup(g.hidden)
	assert.False(t, ok, "denylisted type must not be extracted")

	_, ok = model.ByLabel("Hidden.1")
	assert.False(t, ok)
}

func TestExtractWithoutAllowListSkipsValueTypes(t *testing.T) {
	t.Parallel()

	policy := fixturePolicy()
	policy.AllowTypes = nil

	g, model, err := extractFixture(policy)
	require.NoError(t, err)

	_, ok := model.Lookup(g.point)
	assert.False(t, ok, "value type without marker must need allow-listing")
	assert.Equal(t, 2, model.Len())
}

func TestExtractFieldSetIsSerializedKeysMinusSkipKeys(t *testing.T) {
	t.Parallel()

	g, model, err := extractFixture(fixturePolicy())
	require.NoError(t, err)

	cases := map[*Type][]string{
		g.foo:   {"name"},
		g.bar:   {"size", "value"},
		g.point: {"x", "y"},
	}

	for typ, want := range cases {
		tm, ok := model.Lookup(typ)
		require.True(t, ok, "type %s not extracted", typ)

		got := make([]string, 0, len(want))
		for _, field := range tm.Fields() {
			got = append(got, field.Key)
		}

		assert.Equal(t, want, got, "fields of %s", typ)
	}
}

func TestExtractStashesLabelAsBookkeepingEntry(t *testing.T) {
	t.Parallel()

	g, model, err := extractFixture(fixturePolicy())
	require.NoError(t, err)

	tm, ok := model.Lookup(g.foo)
	require.True(t, ok)

	entry, ok := tm.Field(fixtureLabelKey)
	require.True(t, ok)
	assert.True(t, entry.Bookkeeping)
	assert.Equal(t, "Foo.1", entry.Doc)
	assert.Len(t, tm.Entries, 2)
	assert.Len(t, tm.Fields(), 1)

	_, ok = tm.Field("children")
	assert.False(t, ok, "skip key must not produce an entry")
}

func TestExtractResolvesFieldDocsThroughChain(t *testing.T) {
	t.Parallel()

	g, model, err := extractFixture(fixturePolicy())
	require.NoError(t, err)

	foo, _ := model.Lookup(g.foo)
	bar, _ := model.Lookup(g.bar)
	point, _ := model.Lookup(g.point)

	name, _ := foo.Field("name")
	value, _ := bar.Field("value")
	size, _ := bar.Field("size")
	x, _ := point.Field("x")

	assert.Equal(t, FieldEntry{Key: "name", Doc: "Name of the object.", Resolved: true}, name)
	assert.Equal(t, FieldEntry{Key: "value", Doc: "Private value accessor.", Resolved: true}, value)
	assert.Equal(t, FieldEntry{Key: "size", Doc: "", Resolved: true}, size)
	assert.Equal(t, FieldEntry{Key: "x", Doc: "Horizontal coordinate.", Resolved: true}, x)
}

func TestExtractEndToEndSingleType(t *testing.T) {
	t.Parallel()

	foo := &Type{
		Name:       "Foo",
		Doc:        "Foo type.",
		New:        func() any { return &fooObject{Name: "x", Children: []any{}} },
		Properties: map[string]Property{"name": {Doc: "Name of the object."}},
	}

	src := Source{
		Root:      NewNamespace("solo").Declare(foo),
		Marker:    reflect.TypeFor[fixtureObject](),
		Serialize: fixtureSerialize,
	}

	data, err := src.Serialize(foo.New())
	require.NoError(t, err)
	assert.JSONEq(t, `{"OTIO_SCHEMA": "Foo.1", "name": "x", "children": []}`, string(data))

	model, err := Extract(src, ExtractOptions{Policy: minimalPolicy()})
	require.NoError(t, err)
	require.Equal(t, 1, model.Len())

	tm := model.Types()[0]
	assert.Equal(t, []FieldEntry{{Key: "name", Doc: "Name of the object.", Resolved: true}}, tm.Fields())

	docs, err := Render(model, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, docs.Full, "### Foo")
	assert.Contains(t, docs.Full, "- *name*: Name of the object.")
	assert.Contains(t, docs.FieldsOnly, "### Foo")
	assert.Contains(t, docs.FieldsOnly, "- *name*\n")
	assert.NotContains(t, docs.Full, "children")
	assert.NotContains(t, docs.FieldsOnly, "children")
}

func TestExtractReportsUnresolvedFields(t *testing.T) {
	t.Parallel()

	var diagnostics bytes.Buffer
	g := newFixtureGraph()
	model, err := Extract(g.source(), ExtractOptions{
		Policy:      fixturePolicy(),
		Resolvers:   []DocResolver{ResolveProperty},
		Diagnostics: &diagnostics,
	})
	require.NoError(t, err)

	assert.Contains(t, diagnostics.String(), "ERROR: could not fetch property: pkg._impl.Bar.value\n")
	assert.Contains(t, diagnostics.String(), "ERROR: could not fetch property: pkg._impl.Point.x\n")
	assert.NotContains(t, diagnostics.String(), "Foo.name")

	bar, _ := model.Lookup(g.bar)
	value, ok := bar.Field("value")
	require.True(t, ok, "unresolved field must stay in the model")
	assert.False(t, value.Resolved)
	assert.Empty(t, value.Doc)

	docs, err := Render(model, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, docs.Full, "- *value*:\n")
}

func TestExtractWarnsOnResolverErrorAndContinues(t *testing.T) {
	t.Parallel()

	failing := func(_ *Type, key string) (string, error) {
		if key == "name" {
			return "", errors.New("accessor raised")
		}

		return "", ErrPropertyNotFound
	}

	var diagnostics bytes.Buffer
	g := newFixtureGraph()
	model, err := Extract(g.source(), ExtractOptions{
		Policy:      fixturePolicy(),
		Resolvers:   append([]DocResolver{failing}, DefaultResolvers()...),
		Diagnostics: &diagnostics,
	})
	require.NoError(t, err)

	assert.Equal(t, "warning: pkg._impl.Foo.name: accessor raised\n", diagnostics.String())

	foo, _ := model.Lookup(g.foo)
	name, _ := foo.Field("name")
	assert.Equal(t, "Name of the object.", name.Doc)
}

func TestExtractFailsRunOnBrokenType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		newFunc   func() any
		serialize SerializeFunc
		want      error
	}{
		{
			name:      "nil instance",
			newFunc:   func() any { return nil },
			serialize: fixtureSerialize,
			want:      ErrInstantiateType,
		},
		{
			name:    "serializer error",
			newFunc: func() any { return &barObject{} },
			serialize: func(any) ([]byte, error) {
				return nil, errors.New("no encoder")
			},
			want: ErrSerializeType,
		},
		{
			name:      "not an object",
			newFunc:   func() any { return &barObject{} },
			serialize: func(any) ([]byte, error) { return []byte(`[1, 2]`), nil },
			want:      ErrDecodeType,
		},
		{
			name:      "null output",
			newFunc:   func() any { return &barObject{} },
			serialize: func(any) ([]byte, error) { return []byte(`null`), nil },
			want:      ErrDecodeType,
		},
		{
			name:      "missing label",
			newFunc:   func() any { return &barObject{} },
			serialize: func(any) ([]byte, error) { return []byte(`{"value": 1}`), nil },
			want:      ErrMissingLabel,
		},
		{
			name:      "non-string label",
			newFunc:   func() any { return &barObject{} },
			serialize: func(any) ([]byte, error) { return []byte(`{"OTIO_SCHEMA": 7}`), nil },
			want:      ErrMissingLabel,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			broken := &Type{Name: "Broken", New: tc.newFunc}
			policy := minimalPolicy()
			policy.AllowTypes = []string{"solo.Broken"}

			_, err := Extract(Source{
				Root:      NewNamespace("solo").Declare(broken),
				Marker:    reflect.TypeFor[fixtureObject](),
				Serialize: tc.serialize,
			}, ExtractOptions{Policy: policy})

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "solo.Broken")
		})
	}
}

func TestExtractFailsOnDuplicateLabel(t *testing.T) {
	t.Parallel()

	relabel := func(instance any) ([]byte, error) {
		if _, ok := instance.(*barObject); ok {
			return []byte(`{"OTIO_SCHEMA": "Foo.1", "value": 0}`), nil
		}

		return fixtureSerialize(instance)
	}

	g := newFixtureGraph()
	src := g.source()
	src.Serialize = relabel

	_, err := Extract(src, ExtractOptions{Policy: fixturePolicy()})
	require.ErrorIs(t, err, ErrDuplicateLabel)
	assert.Contains(t, err.Error(), `"Foo.1"`)
	assert.Contains(t, err.Error(), "pkg._impl.Foo and pkg._impl.Bar")
}

func TestExtractRejectsUnknownPolicyReferences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Policy)
		want   error
	}{
		{
			name:   "skip type",
			mutate: func(p *Policy) { p.SkipTypes = []string{"pkg.Missing"} },
			want:   ErrUnknownType,
		},
		{
			name:   "allow type",
			mutate: func(p *Policy) { p.AllowTypes = []string{"pkg.core.Foo"} },
			want:   ErrUnknownType,
		},
		{
			name:   "opaque namespace",
			mutate: func(p *Policy) { p.OpaqueNamespaces = []string{"pkg.gone"} },
			want:   ErrUnknownNamespace,
		},
		{
			name:   "canonical namespace",
			mutate: func(p *Policy) { p.CanonicalNamespaces = append(p.CanonicalNamespaces, "other") },
			want:   ErrUnknownNamespace,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			policy := fixturePolicy()
			tc.mutate(&policy)

			_, _, err := extractFixture(policy)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestExtractRejectsInvalidSource(t *testing.T) {
	t.Parallel()

	g := newFixtureGraph()
	cases := map[string]Source{
		"nil root":       {Marker: reflect.TypeFor[fixtureObject](), Serialize: fixtureSerialize},
		"nil serializer": {Root: g.root, Marker: reflect.TypeFor[fixtureObject]()},
		"struct marker":  {Root: g.root, Marker: reflect.TypeFor[fooObject](), Serialize: fixtureSerialize},
	}

	for name, src := range cases {
		_, err := Extract(src, ExtractOptions{Policy: fixturePolicy()})
		assert.ErrorIs(t, err, ErrInvalidSource, name)
	}
}

func TestExtractRejectsInvalidPolicy(t *testing.T) {
	t.Parallel()

	_, _, err := extractFixture(Policy{})
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestExtractIsDeterministic(t *testing.T) {
	t.Parallel()

	first := renderFixture(t)
	for range 5 {
		next := renderFixture(t)
		if !assert.Equal(t, first, next) {
			t.Log(spew.Sdump(strings.Split(next.Full, "\n")))
			return
		}
	}
}

// minimalPolicy skips only the label key.
func minimalPolicy() Policy {
	return Policy{
		LabelKey: fixtureLabelKey,
		SkipKeys: []string{fixtureLabelKey, "children"},
	}
}

// renderFixture extracts and renders a fresh fixture graph.
func renderFixture(t *testing.T) Documents {
	t.Helper()

	_, model, err := extractFixture(fixturePolicy())
	require.NoError(t, err)

	docs, err := Render(model, RenderOptions{Project: "fixture", Command: "fixturegen"})
	require.NoError(t, err)

	return docs
}
