// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"fmt"
	"strings"
	"text/template"
)

const (
	// defaultProject names the documented object model in document preambles.
	defaultProject = "object model"
	// defaultCommand is quoted in document preambles when caller does not provide one.
	defaultCommand = "serialdoc"
	// namespaceHeadingDepth is the number of leading path segments keying module headings.
	namespaceHeadingDepth = 2
)

// RenderOptions configures document preambles.
type RenderOptions struct {
	// Project names the documented object model.
	Project string
	// Command is the command line that regenerates the documents.
	Command string
}

// Documents holds both rendered variants.
type Documents struct {
	// Full lists every type with documentation strings.
	Full string
	// FieldsOnly lists type and field names only.
	FieldsOnly string
}

// documentView is the root view model passed to markdown templates.
type documentView struct {
	Project  string
	Command  string
	Sections []sectionView
}

// sectionView is one coarse namespace heading with its types.
type sectionView struct {
	Heading string
	Types   []typeView
}

// typeView represents one type section.
type typeView struct {
	Label  string
	Path   string
	Doc    string
	Fence  string
	Fields []fieldView
}

// fieldView is one rendered field bullet.
type fieldView struct {
	Name string
	Doc  string
}

// Render converts an extracted model into full and fields-only markdown documents.
// Output is a pure function of the model and options.
func Render(model *Model, opt RenderOptions) (Documents, error) {
	view := buildDocumentView(model, opt)

	full, err := executeTemplate(templateFullName, view)
	if err != nil {
		return Documents{}, err
	}

	fieldsOnly, err := executeTemplate(templateFieldsName, view)
	if err != nil {
		return Documents{}, err
	}

	return Documents{Full: full, FieldsOnly: fieldsOnly}, nil
}

// executeTemplate renders one built-in template and normalizes output.
func executeTemplate(name string, view documentView) (string, error) {
	markdownTemplate, err := builtinTemplate(name)
	if err != nil {
		return "", err
	}

	return renderTemplate(markdownTemplate, view)
}

// renderTemplate executes parsed template into normalized markdown.
func renderTemplate(markdownTemplate *template.Template, view documentView) (string, error) {
	var out strings.Builder
	if err := markdownTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}
