// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPolicyYAML = `
label_key: OTIO_SCHEMA
skip_keys: [OTIO_SCHEMA, children]
skip_types: [pkg._impl.Hidden]
allow_types: [pkg._impl.Point]
skip_namespaces: [pkg._impl]
opaque_namespaces: [pkg._impl]
canonical_namespaces: [pkg.schema, pkg.core, pkg.util]
`

func TestParsePolicyDecodesAllKeys(t *testing.T) {
	t.Parallel()

	policy, err := ParsePolicy([]byte(validPolicyYAML))
	require.NoError(t, err)
	assert.Equal(t, fixturePolicy(), policy)
}

func TestParsePolicyRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := ParsePolicy([]byte(validPolicyYAML + "skip_modules: [a]\n"))
	require.ErrorIs(t, err, ErrDecodePolicy)
	assert.Contains(t, err.Error(), "skip_modules")
}

func TestParsePolicyRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := ParsePolicy([]byte("label_key: [unterminated\n"))
	assert.ErrorIs(t, err, ErrDecodePolicy)
}

func TestPolicyValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Policy)
		field  string
	}{
		{
			name:   "missing label key",
			mutate: func(p *Policy) { p.LabelKey = "" },
			field:  "label_key",
		},
		{
			name:   "label key not skipped",
			mutate: func(p *Policy) { p.SkipKeys = []string{"children"} },
			field:  "in_skip_keys",
		},
		{
			name:   "duplicate skip key",
			mutate: func(p *Policy) { p.SkipKeys = append(p.SkipKeys, "children") },
			field:  "skip_keys",
		},
		{
			name:   "empty canonical namespace",
			mutate: func(p *Policy) { p.CanonicalNamespaces = []string{""} },
			field:  "canonical_namespaces",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			policy := fixturePolicy()
			tc.mutate(&policy)

			err := policy.Validate()
			require.ErrorIs(t, err, ErrInvalidPolicy)
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	assert.NoError(t, fixturePolicy().Validate())
	assert.NoError(t, minimalPolicy().Validate())
}

func TestLoadPolicyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validPolicyYAML), 0o600))

	policy, err := LoadPolicyFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixtureLabelKey, policy.LabelKey)

	_, err = LoadPolicyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrReadPolicyFile)
}

func TestPolicySkipsNamespaceByPrefix(t *testing.T) {
	t.Parallel()

	policy := fixturePolicy()

	assert.True(t, policy.skipsNamespace("pkg._impl"))
	assert.True(t, policy.skipsNamespace("pkg._impl.sub"))
	assert.False(t, policy.skipsNamespace("pkg.core"))
}
