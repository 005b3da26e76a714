package checksums

import (
	"github.com/chronos-tachyon/assert"
)

// EnvEngine names the environment variable that overrides engine selection
// for dispatchers built WithEnvironment(true), including Default().  Its
// value is parsed like Engine.Parse; "portable" forces the table-driven
// path.
const EnvEngine = "CHECKSUMS_ENGINE"

// Option represents a configuration option for NewDispatcher.
type Option func(*options)

type options struct {
	engine  Engine
	mask    *FeatureSet
	tracers []Tracer
	useEnv  bool
}

func (o *options) reset() {
	*o = options{
		engine:  AutoEngine,
		mask:    nil,
		tracers: nil,
		useEnv:  false,
	}
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithEngine requests a specific Engine instead of the fastest available
// one.  For any Kind the requested Engine cannot serve, the Dispatcher
// falls back to the normal preference order.  AutoEngine restores the
// default behavior.
func WithEngine(engine Engine) Option {
	assert.Assertf(engine.IsValid(), "invalid Engine %d", uint(engine))
	return func(o *options) { o.engine = engine }
}

// WithFeatureMask restricts the processor features the Dispatcher may rely
// on to those present in both mask and the detected FeatureSet.  A feature
// can be hidden this way but never added.  The mask decides which Engine is
// chosen; it does not reach inside an Engine, so CLMULEngine still uses
// AVX-512 folding on hardware that has it.
func WithFeatureMask(mask FeatureSet) Option {
	return func(o *options) {
		tmp := mask
		o.mask = &tmp
	}
}

// WithEnvironment controls whether EnvEngine is consulted.  An explicit
// WithEngine takes precedence over the environment.
func WithEnvironment(enabled bool) Option {
	return func(o *options) { o.useEnv = enabled }
}

// WithTracers specifies the list of Tracer instances which will receive
// Events as the Dispatcher selects engines.  Completely replaces any
// previous list.
func WithTracers(tracers ...Tracer) Option {
	for _, tr := range tracers {
		assert.NotNil(&tr)
	}
	if len(tracers) == 0 {
		tracers = nil
	} else {
		tmp := make([]Tracer, len(tracers))
		copy(tmp, tracers)
		tracers = tmp
	}
	return func(o *options) { o.tracers = tracers }
}
