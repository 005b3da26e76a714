package checksums

import (
	"github.com/chronos-tachyon/assert"
	"github.com/rs/zerolog"
)

// Tracer is an interface which callers can implement in order to receive
// Events.  Events describe how a Dispatcher chose its engines.
type Tracer interface {
	OnEvent(Event)
}

// Event is a collection of fields that describe one step of engine
// selection.  Events are provided to Tracers registered with a Dispatcher.
type Event struct {
	Type      EventType
	Kind      Kind
	Engine    Engine
	Requested Engine
	Features  *FeatureSet
}

// type NoOpTracer {{{

// NoOpTracer is an implementation of Tracer that does nothing.
type NoOpTracer struct{}

// OnEvent fulfills Tracer.
func (NoOpTracer) OnEvent(event Event) {}

var _ Tracer = NoOpTracer{}

// }}}

// type TracerFunc {{{

// TracerFunc is an implementation of Tracer that calls a function.
type TracerFunc func(Event)

// OnEvent fulfills Tracer.
func (tr TracerFunc) OnEvent(event Event) {
	tr(event)
}

var _ Tracer = TracerFunc(nil)

// }}}

// type captureSelectionTracer {{{

// CaptureSelections returns a Tracer implementation which records the
// Engine chosen for each Kind into the pointed-to map.
func CaptureSelections(ptr *map[Kind]Engine) Tracer {
	assert.NotNil(&ptr)
	if *ptr == nil {
		*ptr = make(map[Kind]Engine, numKinds)
	}
	return captureSelectionTracer{ptr: ptr}
}

type captureSelectionTracer struct {
	ptr *map[Kind]Engine
}

// OnEvent fulfills Tracer.
func (tr captureSelectionTracer) OnEvent(event Event) {
	if event.Type == EngineSelectedEvent {
		(*tr.ptr)[event.Kind] = event.Engine
	}
}

var _ Tracer = captureSelectionTracer{}

// }}}

// type logTracer {{{

// Log returns a Tracer implementation which will log each Event at Trace
// priority, except OverrideIgnoredEvent which is logged at Warn priority.
func Log(logger zerolog.Logger) Tracer {
	return logTracer{logger: logger}
}

type logTracer struct {
	logger zerolog.Logger
}

// OnEvent fulfills Tracer.
func (tr logTracer) OnEvent(event Event) {
	e := tr.logger.Trace()
	if event.Type == OverrideIgnoredEvent {
		e = tr.logger.Warn()
	}
	e.Interface("event", event).
		Msg("OnEvent")
}

var _ Tracer = logTracer{}

// }}}
