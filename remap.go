// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package serialdoc

// EffectiveNamespace returns the namespace path a type should be documented under.
//
// Types declared in an opaque namespace are looked up in canonical namespaces,
// in policy order; the first one containing the type, directly or through
// descendants, wins. Without a match, and for every other type, the raw
// declaring namespace is returned. Results are cached per model.
func (m *Model) EffectiveNamespace(t *Type) string {
	if path, ok := m.effective[t]; ok {
		return path
	}

	path := m.remap(t)
	m.effective[t] = path
	return path
}

// remap computes effective namespace without caching.
func (m *Model) remap(t *Type) string {
	raw := t.Namespace()
	if !m.isOpaque(t) {
		return raw
	}

	// one set for all canonical roots; opaque namespaces are never searched
	searched := make(map[*Namespace]struct{}, len(m.opaque))
	for _, ns := range m.opaque {
		searched[ns] = struct{}{}
	}

	for _, ns := range m.canonical {
		if path, ok := searchNamespace(t, ns, searched); ok {
			return path
		}
	}

	return raw
}

// isOpaque reports whether type is declared in an opaque namespace.
func (m *Model) isOpaque(t *Type) bool {
	for _, ns := range m.opaque {
		if t.declaredIn == ns {
			return true
		}
	}

	return false
}

// searchNamespace finds the first namespace under ns containing t by identity.
func searchNamespace(t *Type, ns *Namespace, searched map[*Namespace]struct{}) (string, bool) {
	if ns.Contains(t) {
		return ns.Path, true
	}

	for _, child := range ns.children {
		if _, ok := searched[child]; ok {
			continue
		}

		searched[child] = struct{}{}
		if path, ok := searchNamespace(t, child, searched); ok {
			return path, true
		}
	}

	return "", false
}
