package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA names the instruction set the kernel table was chosen for.
type ISA uint8

const (
	// Generic is the portable word-at-a-time table.
	Generic ISA = iota
	// POPCNT is x86-64 with a hardware population count.
	POPCNT
	// NEON is ARM64 with Advanced SIMD, whose CNT instruction backs bits.OnesCount64.
	NEON
)

func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case POPCNT:
		return "popcnt"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "popcnt":
		return POPCNT, true
	case "neon":
		return NEON, true
	default:
		return Generic, false
	}
}

// EnvOverride names the environment variable that forces a specific ISA.
const EnvOverride = "BITVEC_SIMD"

// Set once by the platform init, before any kernel runs.
var (
	activeISA   ISA
	hasOverride bool

	hasPOPCNT bool // x86-64
	hasASIMD  bool // arm64
)

// initCapabilities picks the ISA after the platform init has filled the
// feature flags. An override naming an unavailable ISA is ignored.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				activeISA = isa
				return
			}
		}
	}
	activeISA = selectBestISA(runtime.GOARCH, hasPOPCNT, hasASIMD)
}

// setISA switches the kernel table. Only tests call it after init.
func setISA(isa ISA) {
	activeISA = isa
	selectKernels(isa)
}

// SetISAForTesting switches the kernel table and returns a function that
// restores the previous one. Callers must not run kernels concurrently.
func SetISAForTesting(isa ISA) (restore func()) {
	prev := activeISA
	setISA(isa)
	return func() { setISA(prev) }
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case POPCNT:
		return hasPOPCNT
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

// selectBestISA maps the detected features of goarch to an ISA.
func selectBestISA(goarch string, popcnt, asimd bool) ISA {
	switch {
	case goarch == "amd64" && popcnt:
		return POPCNT
	case goarch == "arm64" && asimd:
		return NEON
	default:
		return Generic
	}
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if BITVEC_SIMD was set.
func IsOverridden() bool {
	return hasOverride
}

// HasPOPCNT returns true if x86-64 POPCNT is available.
func HasPOPCNT() bool {
	return hasPOPCNT
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
