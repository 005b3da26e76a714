package checksums

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"

	"github.com/chronos-tachyon/checksums/internal/crc32"
)

// Engine identifies one implementation of the CRC computation.  Which
// engines can actually run depends on the architecture the program was
// built for and on the features of the processor it is running on.
type Engine byte

const (
	// AutoEngine requests that the Dispatcher pick the fastest Engine
	// available.  It is never returned by Dispatcher.Select.
	AutoEngine Engine = iota

	// PortableEngine is the table-driven implementation.  It is available
	// everywhere.
	PortableEngine

	// SSE42Engine uses the x86 SSE4.2 CRC32 instruction.  CRC-32C only.
	SSE42Engine

	// CLMULEngine uses x86 carry-less multiplication (PCLMULQDQ, or
	// VPCLMULQDQ on AVX-512 hardware) for CRC-32, and three interleaved
	// SSE4.2 streams for CRC-32C.
	CLMULEngine

	// ARMv8Engine uses the ARMv8 CRC32 and CRC32C instructions.
	ARMv8Engine

	// VXEngine uses the IBM z vector facility.
	VXEngine

	// VPMSUMEngine uses the POWER8 vector polynomial multiply-sum
	// instructions.
	VPMSUMEngine
)

var engineData = []enumhelper.EnumData{
	{GoName: "AutoEngine", Name: "auto", Aliases: []string{strDefault}},
	{GoName: "PortableEngine", Name: "portable", Aliases: []string{"generic", "software"}},
	{GoName: "SSE42Engine", Name: "sse42", Aliases: []string{"sse4.2"}},
	{GoName: "CLMULEngine", Name: "clmul", Aliases: []string{"pclmulqdq"}},
	{GoName: "ARMv8Engine", Name: "armv8-crc", Aliases: []string{"arm-crc", "armv8"}},
	{GoName: "VXEngine", Name: "vx"},
	{GoName: "VPMSUMEngine", Name: "vpmsum", Aliases: []string{"power8"}},
}

// IsValid returns true if e is a valid Engine constant.
func (e Engine) IsValid() bool {
	return e >= AutoEngine && e <= VPMSUMEngine
}

func (e Engine) kernel() crc32.Kernel {
	return crc32.Kernel(e - PortableEngine)
}

func engineForKernel(k crc32.Kernel) Engine {
	return Engine(k) + PortableEngine
}

// GoString returns the Go string representation of this Engine constant.
func (e Engine) GoString() string {
	return enumhelper.DereferenceEnumData("Engine", engineData, uint(e)).GoName
}

// String returns the string representation of this Engine constant.
func (e Engine) String() string {
	return enumhelper.DereferenceEnumData("Engine", engineData, uint(e)).Name
}

// MarshalJSON returns the JSON representation of this Engine constant.
func (e Engine) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("Engine", engineData, uint(e))
}

// Parse parses a string representation of an Engine constant.
func (e *Engine) Parse(str string) error {
	value, err := enumhelper.ParseEnum("Engine", engineData, str)
	*e = Engine(value)
	return err
}

var _ fmt.GoStringer = Engine(0)
var _ fmt.Stringer = Engine(0)
