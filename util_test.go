package checksums

import (
	"encoding/hex"
	"math/rand"
)

func mustDecodeHex(str string) []byte {
	raw, err := hex.DecodeString(str)
	if err != nil {
		panic(err)
	}
	return raw
}

func randomBytes(seed int64, n int) []byte {
	rng := rand.New(rand.NewSource(seed))
	p := make([]byte, n)
	rng.Read(p)
	return p
}

// dispatchersUnderTest returns one Dispatcher per Engine available for
// kind, each forced to that Engine.
func dispatchersUnderTest(kind Kind) map[Engine]*Dispatcher {
	out := make(map[Engine]*Dispatcher)
	for _, engine := range Default().Engines(kind) {
		out[engine] = NewDispatcher(WithEngine(engine))
	}
	return out
}
