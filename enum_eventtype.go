package checksums

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// EventType indicates the type of an Event.
type EventType byte

const (
	// FeaturesDetectedEvent indicates that a Dispatcher has obtained the
	// processor FeatureSet it will select engines from.
	FeaturesDetectedEvent EventType = iota

	// EngineSelectedEvent indicates that a Dispatcher has chosen the Engine
	// for one Kind.
	EngineSelectedEvent

	// OverrideIgnoredEvent indicates that a requested Engine could not be
	// used for one Kind, and the normal preference order was used instead.
	OverrideIgnoredEvent

	// FallbackEvent indicates that no accelerated Engine was usable for one
	// Kind, and PortableEngine was chosen.
	FallbackEvent
)

var eventTypeData = []enumhelper.EnumData{
	{GoName: "FeaturesDetectedEvent", Name: "features-detected"},
	{GoName: "EngineSelectedEvent", Name: "engine-selected"},
	{GoName: "OverrideIgnoredEvent", Name: "override-ignored"},
	{GoName: "FallbackEvent", Name: "fallback"},
}

// GoString returns the Go string representation of this EventType constant.
func (e EventType) GoString() string {
	return enumhelper.DereferenceEnumData("EventType", eventTypeData, uint(e)).GoName
}

// String returns the string representation of this EventType constant.
func (e EventType) String() string {
	return enumhelper.DereferenceEnumData("EventType", eventTypeData, uint(e)).Name
}

// MarshalJSON returns the JSON representation of this EventType constant.
func (e EventType) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("EventType", eventTypeData, uint(e))
}

var _ fmt.GoStringer = EventType(0)
var _ fmt.Stringer = EventType(0)
