// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"embed"
	"fmt"
	"text/template"
)

// templateFS stores built-in markdown templates embedded into the package.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

const (
	templateFullName   = "full"
	templateFieldsName = "fields"
)

// builtInTemplateFiles maps template names to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateFullName:   "templates/full.md.gotmpl",
	templateFieldsName: "templates/fields.md.gotmpl",
}

// builtinTemplate loads and parses one embedded template.
func builtinTemplate(name string) (*template.Template, error) {
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return nil, fmt.Errorf("%w %q: not registered", ErrParseBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, name, err)
	}

	parsed, err := template.New(name).Funcs(templateFuncs()).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, name, err)
	}

	return parsed, nil
}

// templateFuncs provides utility functions available inside markdown templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"inline": escapeInline,
	}
}
