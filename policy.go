// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Policy configures what the extractor skips, allows and remaps.
type Policy struct {
	// LabelKey is the serialized format-tag key holding the schema label.
	LabelKey string `yaml:"label_key" validate:"required"`
	// SkipKeys are serialized keys never reported as fields.
	SkipKeys []string `yaml:"skip_keys" validate:"unique,dive,required"`
	// SkipTypes are qualified type names excluded from the model.
	SkipTypes []string `yaml:"skip_types" validate:"unique,dive,required"`
	// AllowTypes are qualified names of value types documented without implementing the marker.
	AllowTypes []string `yaml:"allow_types" validate:"unique,dive,required"`
	// SkipNamespaces are namespace path prefixes never traversed.
	SkipNamespaces []string `yaml:"skip_namespaces" validate:"unique,dive,required"`
	// OpaqueNamespaces are implementation namespaces whose types are remapped for rendering.
	OpaqueNamespaces []string `yaml:"opaque_namespaces" validate:"unique,dive,required"`
	// CanonicalNamespaces are public namespaces searched, in order, when remapping.
	CanonicalNamespaces []string `yaml:"canonical_namespaces" validate:"unique,dive,required"`
}

// policyValidator validates decoded policies; validator.Validate is safe for concurrent use.
var policyValidator = newPolicyValidator()

// LoadPolicyFile reads, decodes and validates one YAML policy file.
func LoadPolicyFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("%w: %w", ErrReadPolicyFile, err)
	}

	return ParsePolicy(data)
}

// ParsePolicy decodes and validates YAML policy bytes. Unknown keys are rejected.
func ParsePolicy(data []byte) (Policy, error) {
	var policy Policy

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&policy); err != nil {
		return Policy{}, fmt.Errorf("%w: %w", ErrDecodePolicy, err)
	}

	if err := policy.Validate(); err != nil {
		return Policy{}, err
	}

	return policy, nil
}

// Validate checks required values and cross-field constraints.
func (p Policy) Validate() error {
	if err := policyValidator.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
	}

	return nil
}

// skipsKey reports whether serialized key is excluded from field entries.
func (p Policy) skipsKey(key string) bool {
	return slices.Contains(p.SkipKeys, key)
}

// skipsNamespace reports whether namespace path matches one skip prefix.
func (p Policy) skipsNamespace(path string) bool {
	for _, prefix := range p.SkipNamespaces {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// newPolicyValidator builds validator reporting YAML key names.
func newPolicyValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		policy, ok := sl.Current().Interface().(Policy)
		if !ok || policy.LabelKey == "" {
			return
		}

		if !policy.skipsKey(policy.LabelKey) {
			sl.ReportError(policy.LabelKey, "label_key", "LabelKey", "in_skip_keys", "")
		}
	}, Policy{})

	return v
}
