package checksums

import (
	"math/rand"

	"github.com/chronos-tachyon/assert"
	"github.com/hashicorp/go-multierror"

	"github.com/chronos-tachyon/checksums/internal/crc32"
)

// SelfTestLengths lists the input lengths SelfTest exercises.  They
// straddle the block sizes of every accelerated kernel.
var SelfTestLengths = []int{0, 1, 3, 15, 16, 17, 63, 64, 65, 503, 504, 1023, 1024, 1<<20 + 7}

var checkInput = []byte("123456789")

var checkValues = [numKinds]uint32{
	CRC32Kind:  0xcbf43926,
	CRC32CKind: 0xe3069283,
}

// SelfTest verifies every Engine available to d against the standard check
// values and against PortableEngine on pseudo-random inputs, whole and
// split in two.  It returns nil, or a *multierror.Error of MismatchError.
func SelfTest(d *Dispatcher) error {
	assert.NotNil(&d)

	var maxLen int
	for _, n := range SelfTestLengths {
		if n > maxLen {
			maxLen = n
		}
	}
	rng := rand.New(rand.NewSource(0x5eed))
	data := make([]byte, maxLen)
	rng.Read(data)
	seeds := [...]uint32{0, 0xffffffff, rng.Uint32()}

	var result *multierror.Error
	for _, kind := range Kinds() {
		tab := kind.table()
		for _, engine := range d.Engines(kind) {
			k := engine.kernel()
			mismatch := func(length int, seed, expect, actual uint32) {
				result = multierror.Append(result, MismatchError{
					Kind:   kind,
					Engine: engine,
					Length: length,
					Seed:   Checksum32(seed),
					Expect: Checksum32(expect),
					Actual: Checksum32(actual),
				})
			}

			if actual := k.Update(tab, 0, checkInput); actual != checkValues[kind] {
				mismatch(len(checkInput), 0, checkValues[kind], actual)
			}

			for _, length := range SelfTestLengths {
				p := data[:length]
				for _, seed := range seeds {
					expect := crc32.Portable(tab, seed, p)
					if actual := k.Update(tab, seed, p); actual != expect {
						mismatch(length, seed, expect, actual)
					}
					half := length / 2
					if actual := k.Update(tab, k.Update(tab, seed, p[:half]), p[half:]); actual != expect {
						mismatch(length, seed, expect, actual)
					}
				}
			}
		}
	}
	return result.ErrorOrNil()
}
