// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package otio

import (
	"maps"
	"reflect"
	"sync"

	"github.com/woozymasta/serialdoc"
)

// Namespace paths of the object model.
const (
	NamespaceRoot           = "opentimelineio"
	NamespaceCore           = "opentimelineio.core"
	NamespaceSchema         = "opentimelineio.schema"
	NamespaceSchemaDef      = "opentimelineio.schema.schemadef"
	NamespaceOpentime       = "opentimelineio.opentime"
	NamespaceAdapters       = "opentimelineio.adapters"
	NamespaceAdaptersJSON   = "opentimelineio.adapters.otio_json"
	NamespacePlugins        = "opentimelineio.schemadef"
	NamespaceCompiled       = "opentimelineio._otio"
	NamespaceCompiledTiming = "opentimelineio._opentime"
)

// graph builds the namespace graph once; types keep identity across calls.
var graph = sync.OnceValue(buildGraph)

// Root returns the root namespace of the object model.
func Root() *serialdoc.Namespace {
	return graph()
}

// Source wires the object model into serialdoc extraction.
func Source() serialdoc.Source {
	return serialdoc.Source{
		Root:      Root(),
		Marker:    reflect.TypeFor[SerializableObject](),
		Serialize: Serialize,
	}
}

var metadataProperties = map[string]serialdoc.Property{
	"name":     {Doc: "Name of the object; not required to be unique."},
	"metadata": {Doc: "Dictionary of free-form metadata preserved through serialization."},
}

var itemProperties = map[string]serialdoc.Property{
	"source_range":  {Doc: "Trimmed range of the item, or null to use the full available range."},
	"visible_range": {Doc: "Range of the item including adjacent transitions.", Method: true},
}

var effectProperties = map[string]serialdoc.Property{
	"effect_name": {Doc: "Name of the effect as understood by the authoring application."},
	"enabled":     {Doc: "If false, the effect is ignored during playback."},
}

var mediaReferenceProperties = map[string]serialdoc.Property{
	"available_range":        {Doc: "Range of media available at the reference, or null."},
	"available_image_bounds": {Doc: "Spatial bounds of the image in canonical coordinates, or null."},
	"is_missing_reference":   {Doc: "True when the reference is a MissingReference.", Method: true},
}

// properties merges accessor tables; later tables win.
func properties(tables ...map[string]serialdoc.Property) map[string]serialdoc.Property {
	out := make(map[string]serialdoc.Property)
	for _, table := range tables {
		maps.Copy(out, table)
	}

	return out
}

// buildGraph declares every type and wires namespace edges.
func buildGraph() *serialdoc.Namespace {
	object := &serialdoc.Type{
		Name: "SerializableObject",
		Doc:  "Superclass for all classes whose instances can be serialized.",
		New:  func() any { return &Object{} },
	}
	objectWithMetadata := &serialdoc.Type{
		Name:       "SerializableObjectWithMetadata",
		Doc:        "Serializable object carrying a name and a metadata dictionary.",
		New:        func() any { v := newObjectWithMetadata(); return &v },
		Properties: properties(metadataProperties),
	}
	composable := &serialdoc.Type{
		Name:       "Composable",
		Doc:        "An object that can be composed within a Composition (such as Track or Stack).",
		New:        func() any { return &Composable{ObjectWithMetadata: newObjectWithMetadata()} },
		Properties: properties(metadataProperties),
	}
	item := &serialdoc.Type{
		Name:       "Item",
		Doc:        "A composable with a source range, effects and markers.",
		New:        func() any { v := newItem(); return &v },
		Properties: properties(metadataProperties, itemProperties),
	}
	composition := &serialdoc.Type{
		Name:       "Composition",
		Doc:        "Base class for an Item that contains Composables.\n\nShould be subclassed (for example by Track and Stack), not used directly.",
		New:        func() any { v := newComposition(); return &v },
		Properties: properties(metadataProperties, itemProperties),
	}
	clip := &serialdoc.Type{
		Name: "Clip",
		Doc:  "A Clip is a segment of editable media (usually audio or video).\n\nContains a MediaReference and a trim on that media reference.",
		New:  func() any { return NewClip() },
		Properties: properties(metadataProperties, itemProperties, map[string]serialdoc.Property{
			"media_references":            {Method: true},
			"_active_media_reference_key": {Doc: "Key of the media reference currently used for playback."},
		}),
	}
	gap := &serialdoc.Type{
		Name:       "Gap",
		Doc:        "Empty space within a Track.",
		New:        func() any { return NewGap() },
		Properties: properties(metadataProperties, itemProperties),
	}
	track := &serialdoc.Type{
		Name: "Track",
		Doc:  "A sequential composition of Composables played one after another.",
		New:  func() any { return NewTrack() },
		Properties: properties(metadataProperties, itemProperties, map[string]serialdoc.Property{
			"kind": {Doc: "Kind of media the track holds, such as Video or Audio."},
		}),
	}
	stack := &serialdoc.Type{
		Name:       "Stack",
		Doc:        "A composition whose children are layered and play at the same time.",
		New:        func() any { return NewStack() },
		Properties: properties(metadataProperties, itemProperties),
	}
	timeline := &serialdoc.Type{
		Name: "Timeline",
		Doc:  "Top level container of an edit: a Stack of Tracks with a global start time.",
		New:  func() any { return NewTimeline() },
		Properties: properties(metadataProperties, map[string]serialdoc.Property{
			"global_start_time": {Doc: "Time of the first frame of the timeline, or null."},
			"tracks":            {Doc: "Stack of tracks contained in the timeline."},
		}),
	}
	transition := &serialdoc.Type{
		Name: "Transition",
		Doc:  "Represents a transition between the two adjacent items in a Track.\n\nFor example, a cross dissolve or wipe.",
		New:  func() any { return NewTransition() },
		Properties: properties(metadataProperties, map[string]serialdoc.Property{
			"transition_type": {Doc: "Kind of transition, such as SMPTE_Dissolve or Custom_Transition."},
			"in_offset":       {Doc: "Amount of the previous item consumed by the transition."},
			"out_offset":      {Doc: "Amount of the next item consumed by the transition."},
		}),
	}
	marker := &serialdoc.Type{
		Name: "Marker",
		Doc:  "A marker indicates a marked range of time on an item in a timeline, usually with a name, color or other metadata.",
		New:  func() any { return NewMarker() },
		Properties: properties(metadataProperties, map[string]serialdoc.Property{
			"marked_range": {Doc: "Range this marker applies to, relative to the Item it is attached to."},
			"color":        {Doc: "Color string for this marker, for example RED or GREEN."},
			"comment":      {Doc: "Optional comment for this marker."},
		}),
	}
	effect := &serialdoc.Type{
		Name:       "Effect",
		Doc:        "A named processing step applied to an item.",
		New:        func() any { return NewEffect() },
		Properties: properties(metadataProperties, effectProperties),
	}
	timeEffect := &serialdoc.Type{
		Name:       "TimeEffect",
		Doc:        "Base class for all effects that alter the timing of an item.",
		New:        func() any { return NewTimeEffect() },
		Properties: properties(metadataProperties, effectProperties),
	}
	linearTimeWarp := &serialdoc.Type{
		Name: "LinearTimeWarp",
		Doc:  "A time warp that applies a linear speed up or slow down across the entire clip.",
		New:  func() any { return NewLinearTimeWarp() },
		Properties: properties(metadataProperties, effectProperties, map[string]serialdoc.Property{
			"time_scalar": {Doc: "Linear time scalar applied to clip. 2.0 means double speed."},
		}),
	}
	freezeFrame := &serialdoc.Type{
		Name: "FreezeFrame",
		Doc:  "Hold the first frame of the clip for the duration of the clip.",
		New:  func() any { return NewFreezeFrame() },
		Properties: properties(metadataProperties, effectProperties, map[string]serialdoc.Property{
			"time_scalar": {Doc: "Always zero for a freeze frame."},
		}),
	}
	mediaReference := &serialdoc.Type{
		Name:       "MediaReference",
		Doc:        "Base class for references to media.",
		New:        func() any { v := newMediaReference(); return &v },
		Properties: properties(metadataProperties, mediaReferenceProperties),
	}
	externalReference := &serialdoc.Type{
		Name: "ExternalReference",
		Doc:  "Reference to media via a URL.",
		New:  func() any { return NewExternalReference() },
		Properties: properties(metadataProperties, mediaReferenceProperties, map[string]serialdoc.Property{
			"target_url": {Doc: "URL at which this media lives. For local references, use the file:// format."},
		}),
	}
	missingReference := &serialdoc.Type{
		Name:       "MissingReference",
		Doc:        "Represents media for which a concrete reference is missing.\n\nNote that a MissingReference may have useful metadata, even if the location of the media is not known.",
		New:        func() any { return NewMissingReference() },
		Properties: properties(metadataProperties, mediaReferenceProperties),
	}
	generatorReference := &serialdoc.Type{
		Name: "GeneratorReference",
		Doc:  "Base class for media that is generated rather than loaded, such as color bars or solids.",
		New:  func() any { return NewGeneratorReference() },
		Properties: properties(metadataProperties, mediaReferenceProperties, map[string]serialdoc.Property{
			"generator_kind": {Doc: "Kind of generator, for example SMPTEBars or Solid."},
			"parameters":     {Doc: "Dictionary of parameters for the generator."},
		}),
	}
	imageSequenceReference := &serialdoc.Type{
		Name: "ImageSequenceReference",
		Doc:  "Reference to an image sequence.\n\nImage sequence references are built from a URL base, a name prefix and suffix, and frame numbering rules.",
		New:  func() any { return NewImageSequenceReference() },
		Properties: properties(metadataProperties, mediaReferenceProperties, map[string]serialdoc.Property{
			"target_url_base":       {Doc: "Everything leading up to the file name in the target URL."},
			"name_prefix":           {Doc: "Everything in the file name leading up to the frame number."},
			"name_suffix":           {Doc: "Everything after the frame number in the file name."},
			"start_frame":           {Doc: "The first frame number used in file names."},
			"frame_step":            {Doc: "Step between frame numbers in file names."},
			"rate":                  {Doc: "Frame rate if every frame in the sequence were played back."},
			"frame_zero_padding":    {Doc: "Number of digits to pad zeros out to in frame numbers."},
			"_missing_frame_policy": {Doc: "Directive for how frames in sequence not found during playback or rendering should be handled."},
		}),
	}
	collection := &serialdoc.Type{
		Name:       "SerializableCollection",
		Doc:        "A container which can hold an ordered list of any serializable objects.\n\nThis is not a Composition nor is it Composable.",
		New:        func() any { return NewSerializableCollection() },
		Properties: properties(metadataProperties),
	}
	unknownSchema := &serialdoc.Type{
		Name: "UnknownSchema",
		Doc:  "Placeholder for payloads whose schema is not registered.",
		New:  func() any { return &UnknownSchema{} },
	}
	testObject := &serialdoc.Type{
		Name: "TestObject",
		Doc:  "Serialization round-trip test type.",
		New:  func() any { return &TestObject{ObjectWithMetadata: newObjectWithMetadata()} },
	}

	rationalTime := &serialdoc.Type{
		Name: "RationalTime",
		Doc:  "Represents an instantaneous point in time, value * (1/rate) seconds from time 0 seconds.",
		New:  func() any { return RationalTime{Rate: 1} },
	}
	timeRange := &serialdoc.Type{
		Name: "TimeRange",
		Doc:  "A time range encodes a start time and a duration, meaning the duration indicates the end time is exclusive.",
		New:  func() any { return TimeRange{StartTime: RationalTime{Rate: 1}, Duration: RationalTime{Rate: 1}} },
	}
	timeTransform := &serialdoc.Type{
		Name: "TimeTransform",
		Doc:  "1D transform for RationalTime. Has offset and scale.",
		New:  func() any { return NewTimeTransform() },
	}

	schemaDef := &serialdoc.Type{
		Name:       "SchemaDef",
		Doc:        "Runtime registration of an additional schema.",
		New:        func() any { return &SchemaDef{ObjectWithMetadata: newObjectWithMetadata()} },
		Properties: properties(metadataProperties),
	}
	exampleSchemaDef := &serialdoc.Type{
		Name: "ExampleSchemaDef",
		Doc:  "Sample plugin schema.",
		New:  func() any { return &ExampleSchemaDef{ObjectWithMetadata: newObjectWithMetadata()} },
		Properties: properties(metadataProperties, map[string]serialdoc.Property{
			"foo": {Doc: "Plugin payload."},
		}),
	}

	compiled := serialdoc.NewNamespace(NamespaceCompiled).Declare(
		object, objectWithMetadata, composable, item, composition,
		clip, gap, track, stack, timeline, transition, marker,
		effect, timeEffect, linearTimeWarp, freezeFrame,
		mediaReference, externalReference, missingReference, generatorReference, imageSequenceReference,
		collection, unknownSchema, testObject,
	)
	compiledTiming := serialdoc.NewNamespace(NamespaceCompiledTiming).Declare(rationalTime, timeRange, timeTransform)

	core := serialdoc.NewNamespace(NamespaceCore).
		Export(object, objectWithMetadata, composable, item, composition, mediaReference, unknownSchema).
		Include(compiled)
	opentime := serialdoc.NewNamespace(NamespaceOpentime).
		Export(rationalTime, timeRange, timeTransform).
		Include(compiledTiming)
	schemaDefs := serialdoc.NewNamespace(NamespaceSchemaDef).Declare(schemaDef)
	schema := serialdoc.NewNamespace(NamespaceSchema).
		Export(
			clip, gap, track, stack, timeline, transition, marker,
			effect, timeEffect, linearTimeWarp, freezeFrame,
			externalReference, missingReference, generatorReference, imageSequenceReference,
			collection, schemaDef,
		).
		Include(schemaDefs, opentime, compiled)
	adapters := serialdoc.NewNamespace(NamespaceAdapters).
		Include(serialdoc.NewNamespace(NamespaceAdaptersJSON))
	plugins := serialdoc.NewNamespace(NamespacePlugins).Declare(exampleSchemaDef)

	root := serialdoc.NewNamespace(NamespaceRoot)
	root.Include(compiled, compiledTiming, core, schema, opentime, adapters, plugins)

	// submodules importing the package root
	opentime.Include(root)
	schemaDefs.Include(schema, root)

	return root
}
