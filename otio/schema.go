// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package otio

// Composable is an object that can be placed in a composition.
type Composable struct {
	ObjectWithMetadata
}

// SchemaName implements Labeled.
func (*Composable) SchemaName() string { return "Composable" }

// SchemaVersion implements Labeled.
func (*Composable) SchemaVersion() int { return 1 }

// Item is a composable with a range, effects and markers.
type Item struct {
	Composable

	SourceRange *TimeRange           `json:"source_range"`
	Effects     []SerializableObject `json:"effects" doc:"List of effects applied to the item."`
	Markers     []*Marker            `json:"markers" doc:"List of markers on the item."`
	Enabled     bool                 `json:"enabled" doc:"If false, the item is treated as a gap of the same duration."`
}

// SchemaName implements Labeled.
func (*Item) SchemaName() string { return "Item" }

// SchemaVersion implements Labeled.
func (*Item) SchemaVersion() int { return 1 }

func newItem() Item {
	return Item{
		Composable: Composable{ObjectWithMetadata: newObjectWithMetadata()},
		Effects:    []SerializableObject{},
		Markers:    []*Marker{},
		Enabled:    true,
	}
}

// Composition is an item holding ordered children.
type Composition struct {
	Item

	Children []SerializableObject `json:"children"`
}

// SchemaName implements Labeled.
func (*Composition) SchemaName() string { return "Composition" }

// SchemaVersion implements Labeled.
func (*Composition) SchemaVersion() int { return 1 }

func newComposition() Composition {
	return Composition{Item: newItem(), Children: []SerializableObject{}}
}

// Clip is a segment of editable media.
type Clip struct {
	Item

	MediaReferences         map[string]SerializableObject `json:"media_references"`
	ActiveMediaReferenceKey string                        `json:"active_media_reference_key"`
}

// SchemaName implements Labeled.
func (*Clip) SchemaName() string { return "Clip" }

// SchemaVersion implements Labeled.
func (*Clip) SchemaVersion() int { return 2 }

// DefaultMediaKey is the media reference key of new clips.
const DefaultMediaKey = "DEFAULT_MEDIA"

// NewClip returns clip referencing missing media.
func NewClip() *Clip {
	return &Clip{
		Item:                    newItem(),
		MediaReferences:         map[string]SerializableObject{DefaultMediaKey: NewMissingReference()},
		ActiveMediaReferenceKey: DefaultMediaKey,
	}
}

// Gap is empty space in a track.
type Gap struct {
	Item
}

// SchemaName implements Labeled.
func (*Gap) SchemaName() string { return "Gap" }

// SchemaVersion implements Labeled.
func (*Gap) SchemaVersion() int { return 1 }

// NewGap returns empty gap.
func NewGap() *Gap {
	return &Gap{Item: newItem()}
}

// Track kinds.
const (
	TrackKindVideo = "Video"
	TrackKindAudio = "Audio"
)

// Track is a sequential composition.
type Track struct {
	Composition

	Kind string `json:"kind"`
}

// SchemaName implements Labeled.
func (*Track) SchemaName() string { return "Track" }

// SchemaVersion implements Labeled.
func (*Track) SchemaVersion() int { return 1 }

// NewTrack returns empty video track.
func NewTrack() *Track {
	return &Track{Composition: newComposition(), Kind: TrackKindVideo}
}

// Stack is a composition whose children play in parallel.
type Stack struct {
	Composition
}

// SchemaName implements Labeled.
func (*Stack) SchemaName() string { return "Stack" }

// SchemaVersion implements Labeled.
func (*Stack) SchemaVersion() int { return 1 }

// NewStack returns empty stack.
func NewStack() *Stack {
	return &Stack{Composition: newComposition()}
}

// Timeline is the top level of an edit.
type Timeline struct {
	ObjectWithMetadata

	GlobalStartTime *RationalTime `json:"global_start_time"`
	Tracks          *Stack        `json:"tracks"`
}

// SchemaName implements Labeled.
func (*Timeline) SchemaName() string { return "Timeline" }

// SchemaVersion implements Labeled.
func (*Timeline) SchemaVersion() int { return 1 }

// NewTimeline returns timeline with an empty track stack.
func NewTimeline() *Timeline {
	return &Timeline{ObjectWithMetadata: newObjectWithMetadata(), Tracks: NewStack()}
}

// Transition types.
const (
	TransitionSMPTEDissolve = "SMPTE_Dissolve"
	TransitionCustom        = "Custom_Transition"
)

// Transition blends two adjacent items.
type Transition struct {
	Composable

	TransitionType string       `json:"transition_type"`
	InOffset       RationalTime `json:"in_offset"`
	OutOffset      RationalTime `json:"out_offset"`
}

// SchemaName implements Labeled.
func (*Transition) SchemaName() string { return "Transition" }

// SchemaVersion implements Labeled.
func (*Transition) SchemaVersion() int { return 1 }

// NewTransition returns zero-length transition.
func NewTransition() *Transition {
	return &Transition{
		Composable: Composable{ObjectWithMetadata: newObjectWithMetadata()},
		InOffset:   RationalTime{Rate: 1},
		OutOffset:  RationalTime{Rate: 1},
	}
}

// Marker colors.
const (
	MarkerColorRed   = "RED"
	MarkerColorGreen = "GREEN"
)

// Marker annotates a range of an item.
type Marker struct {
	ObjectWithMetadata

	MarkedRange TimeRange `json:"marked_range"`
	Color       string    `json:"color"`
	Comment     string    `json:"comment"`
}

// SchemaName implements Labeled.
func (*Marker) SchemaName() string { return "Marker" }

// SchemaVersion implements Labeled.
func (*Marker) SchemaVersion() int { return 2 }

// NewMarker returns red marker over an empty range.
func NewMarker() *Marker {
	return &Marker{ObjectWithMetadata: newObjectWithMetadata(), Color: MarkerColorRed}
}

// Effect is a named processing step applied to an item.
type Effect struct {
	ObjectWithMetadata

	EffectName string `json:"effect_name"`
	Enabled    bool   `json:"enabled"`
}

// SchemaName implements Labeled.
func (*Effect) SchemaName() string { return "Effect" }

// SchemaVersion implements Labeled.
func (*Effect) SchemaVersion() int { return 1 }

func newEffect() Effect {
	return Effect{ObjectWithMetadata: newObjectWithMetadata(), Enabled: true}
}

// NewEffect returns enabled unnamed effect.
func NewEffect() *Effect {
	e := newEffect()
	return &e
}

// TimeEffect is an effect that alters timing.
type TimeEffect struct {
	Effect
}

// SchemaName implements Labeled.
func (*TimeEffect) SchemaName() string { return "TimeEffect" }

// SchemaVersion implements Labeled.
func (*TimeEffect) SchemaVersion() int { return 1 }

// NewTimeEffect returns enabled time effect.
func NewTimeEffect() *TimeEffect {
	return &TimeEffect{Effect: newEffect()}
}

// LinearTimeWarp scales playback speed by a constant.
type LinearTimeWarp struct {
	TimeEffect

	TimeScalar float64 `json:"time_scalar"`
}

// SchemaName implements Labeled.
func (*LinearTimeWarp) SchemaName() string { return "LinearTimeWarp" }

// SchemaVersion implements Labeled.
func (*LinearTimeWarp) SchemaVersion() int { return 1 }

// NewLinearTimeWarp returns identity time warp.
func NewLinearTimeWarp() *LinearTimeWarp {
	return &LinearTimeWarp{TimeEffect: TimeEffect{Effect: newEffect()}, TimeScalar: 1}
}

// FreezeFrame holds the first frame of an item.
type FreezeFrame struct {
	LinearTimeWarp
}

// SchemaName implements Labeled.
func (*FreezeFrame) SchemaName() string { return "FreezeFrame" }

// SchemaVersion implements Labeled.
func (*FreezeFrame) SchemaVersion() int { return 1 }

// NewFreezeFrame returns freeze frame with zero time scalar.
func NewFreezeFrame() *FreezeFrame {
	f := &FreezeFrame{LinearTimeWarp: *NewLinearTimeWarp()}
	f.EffectName = "FreezeFrame"
	f.TimeScalar = 0
	return f
}

// MediaReference locates media for a clip.
type MediaReference struct {
	ObjectWithMetadata

	AvailableRange       *TimeRange `json:"available_range"`
	AvailableImageBounds *Box2d     `json:"available_image_bounds"`
}

// SchemaName implements Labeled.
func (*MediaReference) SchemaName() string { return "MediaReference" }

// SchemaVersion implements Labeled.
func (*MediaReference) SchemaVersion() int { return 1 }

func newMediaReference() MediaReference {
	return MediaReference{ObjectWithMetadata: newObjectWithMetadata()}
}

// Box2d is an axis-aligned rectangle.
type Box2d struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
}

// ExternalReference points at media by URL.
type ExternalReference struct {
	MediaReference

	TargetURL string `json:"target_url"`
}

// SchemaName implements Labeled.
func (*ExternalReference) SchemaName() string { return "ExternalReference" }

// SchemaVersion implements Labeled.
func (*ExternalReference) SchemaVersion() int { return 1 }

// NewExternalReference returns reference without URL.
func NewExternalReference() *ExternalReference {
	return &ExternalReference{MediaReference: newMediaReference()}
}

// MissingReference marks media that could not be located.
type MissingReference struct {
	MediaReference
}

// SchemaName implements Labeled.
func (*MissingReference) SchemaName() string { return "MissingReference" }

// SchemaVersion implements Labeled.
func (*MissingReference) SchemaVersion() int { return 1 }

// NewMissingReference returns missing reference.
func NewMissingReference() *MissingReference {
	return &MissingReference{MediaReference: newMediaReference()}
}

// GeneratorReference describes media synthesized by a generator.
type GeneratorReference struct {
	MediaReference

	GeneratorKind string         `json:"generator_kind"`
	Parameters    map[string]any `json:"parameters"`
}

// SchemaName implements Labeled.
func (*GeneratorReference) SchemaName() string { return "GeneratorReference" }

// SchemaVersion implements Labeled.
func (*GeneratorReference) SchemaVersion() int { return 1 }

// NewGeneratorReference returns generator reference without parameters.
func NewGeneratorReference() *GeneratorReference {
	return &GeneratorReference{MediaReference: newMediaReference(), Parameters: map[string]any{}}
}

// Missing frame policies.
const (
	MissingFrameError = "error"
	MissingFrameHold  = "hold"
	MissingFrameBlack = "black"
)

// ImageSequenceReference points at numbered image files.
type ImageSequenceReference struct {
	MediaReference

	TargetURLBase      string  `json:"target_url_base"`
	NamePrefix         string  `json:"name_prefix"`
	NameSuffix         string  `json:"name_suffix"`
	StartFrame         int     `json:"start_frame"`
	FrameStep          int     `json:"frame_step"`
	Rate               float64 `json:"rate"`
	FrameZeroPadding   int     `json:"frame_zero_padding"`
	MissingFramePolicy string  `json:"missing_frame_policy"`
}

// SchemaName implements Labeled.
func (*ImageSequenceReference) SchemaName() string { return "ImageSequenceReference" }

// SchemaVersion implements Labeled.
func (*ImageSequenceReference) SchemaVersion() int { return 1 }

// NewImageSequenceReference returns single-step sequence at rate 1.
func NewImageSequenceReference() *ImageSequenceReference {
	return &ImageSequenceReference{
		MediaReference:     newMediaReference(),
		StartFrame:         1,
		FrameStep:          1,
		Rate:               1,
		MissingFramePolicy: MissingFrameError,
	}
}

// SerializableCollection is an unordered bag of objects.
type SerializableCollection struct {
	ObjectWithMetadata

	Children []SerializableObject `json:"children"`
}

// SchemaName implements Labeled.
func (*SerializableCollection) SchemaName() string { return "SerializableCollection" }

// SchemaVersion implements Labeled.
func (*SerializableCollection) SchemaVersion() int { return 1 }

// NewSerializableCollection returns empty collection.
func NewSerializableCollection() *SerializableCollection {
	return &SerializableCollection{ObjectWithMetadata: newObjectWithMetadata(), Children: []SerializableObject{}}
}

// SchemaDef registers an additional schema at runtime.
type SchemaDef struct {
	ObjectWithMetadata
}

// SchemaName implements Labeled.
func (*SchemaDef) SchemaName() string { return "SchemaDef" }

// SchemaVersion implements Labeled.
func (*SchemaDef) SchemaVersion() int { return 1 }

// ExampleSchemaDef is a sample plugin schema.
type ExampleSchemaDef struct {
	ObjectWithMetadata

	Foo string `json:"foo"`
}

// SchemaName implements Labeled.
func (*ExampleSchemaDef) SchemaName() string { return "example_schemadef" }

// SchemaVersion implements Labeled.
func (*ExampleSchemaDef) SchemaVersion() int { return 1 }
