// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package otio

import (
	_ "embed"

	"github.com/woozymasta/serialdoc"
)

// ProjectName is the display name of the object model in generated documents.
const ProjectName = "OpenTimelineIO"

//go:embed policy.yaml
var policyYAML []byte

// Policy returns the default documentation policy of the object model.
func Policy() (serialdoc.Policy, error) {
	return serialdoc.ParsePolicy(policyYAML)
}

// PolicyYAML returns the embedded default policy document.
func PolicyYAML() []byte {
	out := make([]byte, len(policyYAML))
	copy(out, policyYAML)
	return out
}
