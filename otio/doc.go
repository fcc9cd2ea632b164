// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

// Package otio is the timeline object model documented by serialdoc.
//
// Types are plain Go structs serialized with encoding/json plus an
// OTIO_SCHEMA label. Root declares where each type lives: compiled types in
// the opaque _otio and _opentime namespaces, re-exported under core, schema
// and opentime.
package otio
