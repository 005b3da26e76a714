package checksums

import (
	"os"
	"sync"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/checksums/internal/cpu"
	"github.com/chronos-tachyon/checksums/internal/crc32"
)

// FeatureSet records the processor features relevant to CRC acceleration.
type FeatureSet = cpu.FeatureSet

// DetectFeatures returns the FeatureSet of the running processor.  The
// probe runs once per process; later calls return the cached result.
func DetectFeatures() FeatureSet {
	return cpu.Detect()
}

// Dispatcher maps each Kind to the Engine that computes it.  The mapping
// is resolved once, in NewDispatcher, and never changes afterward, so a
// Dispatcher is safe for concurrent use without locking.
type Dispatcher struct {
	features  FeatureSet
	requested Engine
	selected  [numKinds]Engine
	kernels   [numKinds]crc32.Kernel
}

var (
	gDefaultOnce sync.Once
	gDefault     *Dispatcher
	gNewDefault  = func() *Dispatcher { return NewDispatcher(WithEnvironment(true)) }
)

// Default returns the process-wide Dispatcher used by CRC32, CRC32C, and
// Update.  It is built on first use, honoring EnvEngine.
func Default() *Dispatcher {
	gDefaultOnce.Do(func() {
		gDefault = gNewDefault()
	})
	return gDefault
}

// NewDispatcher resolves an Engine for every Kind and returns the result.
// Resolution never fails: PortableEngine is always available.
func NewDispatcher(opts ...Option) *Dispatcher {
	var o options
	o.reset()
	o.apply(opts)

	features := cpu.Detect()
	if o.mask != nil {
		features = features.Intersect(*o.mask)
	}

	requested := o.engine
	if o.useEnv && requested == AutoEngine {
		requested = engineFromEnv()
	}

	d := &Dispatcher{
		features:  features,
		requested: requested,
	}

	emit := func(event Event) {
		for _, tr := range o.tracers {
			tr.OnEvent(event)
		}
	}

	emit(Event{Type: FeaturesDetectedEvent, Features: &features})
	for _, kind := range Kinds() {
		engine := d.resolve(kind, emit)
		d.selected[kind] = engine
		d.kernels[kind] = engine.kernel()
		emit(Event{Type: EngineSelectedEvent, Kind: kind, Engine: engine, Requested: requested})
	}
	return d
}

func engineFromEnv() Engine {
	str, found := os.LookupEnv(EnvEngine)
	if !found || str == "" {
		return AutoEngine
	}
	var engine Engine
	if err := engine.Parse(str); err != nil {
		return AutoEngine
	}
	return engine
}

func (d *Dispatcher) resolve(kind Kind, emit func(Event)) Engine {
	poly := crc32.Polynomial(kind.Polynomial())
	if d.requested != AutoEngine {
		if d.requested.kernel().Supports(poly, d.features) {
			return d.requested
		}
		emit(Event{Type: OverrideIgnoredEvent, Kind: kind, Requested: d.requested})
	}
	for _, k := range crc32.Preference() {
		if !k.Supports(poly, d.features) {
			continue
		}
		engine := engineForKernel(k)
		if engine == PortableEngine {
			emit(Event{Type: FallbackEvent, Kind: kind, Engine: engine})
		}
		return engine
	}
	assert.Raisef("%v missing from preference list", crc32.KernelPortable)
	return PortableEngine
}

// Features returns the FeatureSet this Dispatcher selected engines from.
func (d *Dispatcher) Features() FeatureSet {
	return d.features
}

// Select returns the Engine used for kind.
func (d *Dispatcher) Select(kind Kind) Engine {
	assert.Assertf(kind.IsValid(), "invalid Kind %d", uint(kind))
	return d.selected[kind]
}

// Engines returns every Engine this Dispatcher could use for kind, fastest
// first.  The last element is always PortableEngine.
func (d *Dispatcher) Engines(kind Kind) []Engine {
	assert.Assertf(kind.IsValid(), "invalid Kind %d", uint(kind))
	poly := crc32.Polynomial(kind.Polynomial())
	pref := crc32.Preference()
	out := make([]Engine, 0, len(pref))
	for _, k := range pref {
		if k.Supports(poly, d.features) {
			out = append(out, engineForKernel(k))
		}
	}
	return out
}

// Update returns the checksum of p appended to the data summarized by prev.
func (d *Dispatcher) Update(kind Kind, prev uint32, p []byte) uint32 {
	assert.Assertf(kind.IsValid(), "invalid Kind %d", uint(kind))
	return d.kernels[kind].Update(kind.table(), prev, p)
}

// Compute returns the checksum of the length bytes of buf starting at
// offset, appended to the data summarized by prev.  A range outside buf
// yields a RangeError and no byte is read.
func (d *Dispatcher) Compute(kind Kind, buf Buffer, offset, length int, prev uint32) (uint32, error) {
	p, err := buf.Slice(offset, length)
	if err != nil {
		return 0, err
	}
	return d.Update(kind, prev, p), nil
}

// String returns a summary such as "crc32=clmul crc32c=sse42".
func (d *Dispatcher) String() string {
	sb := takeStringsBuilder()
	defer giveStringsBuilder(sb)
	for i, kind := range Kinds() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(kind.String())
		sb.WriteByte('=')
		sb.WriteString(d.selected[kind].String())
	}
	return sb.String()
}
