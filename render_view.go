// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"sort"
	"strings"
)

// buildDocumentView groups model types by effective namespace and orders everything deterministically.
func buildDocumentView(model *Model, opt RenderOptions) documentView {
	project := sanitizeText(opt.Project)
	if project == "" {
		project = defaultProject
	}

	command := sanitizeText(opt.Command)
	if command == "" {
		command = defaultCommand
	}

	view := documentView{
		Project: project,
		Command: command,
	}

	groups := make(map[string][]*TypeModel)
	for _, tm := range model.types {
		path := model.EffectiveNamespace(tm.Type)
		groups[path] = append(groups[path], tm)
	}

	paths := make([]string, 0, len(groups))
	for path := range groups {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	for _, path := range paths {
		heading := namespaceHeading(path)
		if len(view.Sections) == 0 || view.Sections[len(view.Sections)-1].Heading != heading {
			view.Sections = append(view.Sections, sectionView{Heading: heading})
		}

		section := &view.Sections[len(view.Sections)-1]
		for _, tm := range sortedTypeModels(groups[path]) {
			section.Types = append(section.Types, buildTypeView(tm, path))
		}
	}

	return view
}

// buildTypeView prepares one type section.
func buildTypeView(tm *TypeModel, effectiveNamespace string) typeView {
	fields := tm.Fields()
	doc := strings.TrimSpace(normalizeLineEndings(tm.Type.Doc))
	out := typeView{
		Label:  tm.Label,
		Path:   appendPath(effectiveNamespace, tm.Type.Name),
		Doc:    doc,
		Fence:  docFence(doc),
		Fields: make([]fieldView, 0, len(fields)),
	}

	for _, field := range fields {
		out.Fields = append(out.Fields, fieldView{
			Name: field.Key,
			Doc:  sanitizeText(field.Doc),
		})
	}

	return out
}

// sortedTypeModels orders types by qualified display name.
func sortedTypeModels(types []*TypeModel) []*TypeModel {
	out := make([]*TypeModel, len(types))
	copy(out, types)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Type.QualifiedName() < out[j].Type.QualifiedName()
	})

	return out
}

// namespaceHeading keeps the leading segments of a namespace path used for module headings.
func namespaceHeading(path string) string {
	parts := strings.Split(path, ".")
	if len(parts) > namespaceHeadingDepth {
		parts = parts[:namespaceHeadingDepth]
	}

	return strings.Join(parts, ".")
}
