// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/serialdoc

package otio

// RationalTime is a point in time expressed as value at rate.
type RationalTime struct {
	Value float64 `json:"value" doc:"Time value, measured in units of rate."`
	Rate  float64 `json:"rate" doc:"Units per second."`
}

// SchemaName implements Labeled.
func (RationalTime) SchemaName() string { return "RationalTime" }

// SchemaVersion implements Labeled.
func (RationalTime) SchemaVersion() int { return 1 }

// TimeRange is a half-open span of time.
type TimeRange struct {
	StartTime RationalTime `json:"start_time" doc:"Start of the range."`
	Duration  RationalTime `json:"duration" doc:"Length of the range."`
}

// SchemaName implements Labeled.
func (TimeRange) SchemaName() string { return "TimeRange" }

// SchemaVersion implements Labeled.
func (TimeRange) SchemaVersion() int { return 1 }

// TimeTransform maps times through offset, scale and rate.
type TimeTransform struct {
	Offset RationalTime `json:"offset" doc:"Offset added after scaling."`
	Scale  float64      `json:"scale" doc:"Scale applied to input time."`
	Rate   float64      `json:"rate" doc:"Rate of the output time, or -1 to keep input rate."`
}

// SchemaName implements Labeled.
func (TimeTransform) SchemaName() string { return "TimeTransform" }

// SchemaVersion implements Labeled.
func (TimeTransform) SchemaVersion() int { return 1 }

// NewTimeTransform returns identity transform.
func NewTimeTransform() TimeTransform {
	return TimeTransform{Scale: 1, Rate: -1}
}
