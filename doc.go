// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

/*
Package serialdoc documents the serialized data model of an object model.

It walks a statically declared namespace graph, instantiates every
serializable type, serializes the default instance to recover the fields
that are actually written, looks up documentation for each field and renders
two deterministic markdown catalogues: one with documentation strings and one
with field names only. Running it in tests against a committed copy of the
output detects schema drift.

Declare the namespace graph:

	clip := &serialdoc.Type{
		Name: "Clip",
		Doc:  "A segment of editable media.",
		New:  func() any { return NewClip() },
		Properties: map[string]serialdoc.Property{
			"name": {Doc: "Clip name."},
		},
	}

	root := serialdoc.NewNamespace("timeline")
	schema := serialdoc.NewNamespace("timeline.schema").Declare(clip)
	root.Include(schema)

Extract the model:

	model, err := serialdoc.Extract(serialdoc.Source{
		Root:      root,
		Marker:    reflect.TypeFor[Serializable](),
		Serialize: json.Marshal,
	}, serialdoc.ExtractOptions{
		Policy:      policy,
		Diagnostics: os.Stderr,
	})
	if err != nil {
		return err
	}

Render both documents:

	docs, err := serialdoc.Render(model, serialdoc.RenderOptions{
		Project: "Timeline",
		Command: "go run ./cmd/serialdoc",
	})
	if err != nil {
		return err
	}

	fmt.Println(docs.Full)

Load a policy from YAML:

	policy, err := serialdoc.LoadPolicyFile("policy.yaml")
	if err != nil {
		return err
	}

Dump a machine-readable snapshot:

	data, err := serialdoc.EncodeSnapshot(model, serialdoc.SnapshotFormatYAML)
	if err != nil {
		return err
	}

	fmt.Println(string(data))
*/
package serialdoc
