// Package hyperdrive probes the host CPU for the instruction set extensions
// the hashing backends can exploit.
package hyperdrive

import (
	"runtime"
	"sort"
	"sync"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// Features is the subset of CPU capabilities relevant to SHA-1 hashing.
type Features struct {
	ARM64SHA1  bool // SHA1C, SHA1P, SHA1M, SHA1H, SHA1SU0, SHA1SU1
	ARM64ASIMD bool
	X86SHA     bool // SHA-NI
	X86SSSE3   bool
	X86SSE41   bool
	X86AVX2    bool
}

var detect = sync.OnceValue(detectCPUFeatures)

// Detect returns the host's features. The probe runs once per process and
// the result is immutable afterwards.
func Detect() Features {
	return detect()
}

// detectCPUFeatures reads the feature bits the Go runtime already collected.
// golang.org/x/sys/cpu takes care of OS support checks (XGETBV, HWCAP), so a
// bit is only set when the instructions can actually run.
func detectCPUFeatures() Features {
	var f Features
	switch runtime.GOARCH {
	case "arm64":
		f.ARM64SHA1 = cpu.ARM64.HasSHA1
		f.ARM64ASIMD = cpu.ARM64.HasASIMD
	case "amd64", "386":
		f.X86SHA = x86HasSHA()
		f.X86SSSE3 = cpu.X86.HasSSSE3
		f.X86SSE41 = cpu.X86.HasSSE41
		f.X86AVX2 = cpu.X86.HasAVX2
	}
	return f
}

// x86HasSHA consults cpuid since golang.org/x/sys/cpu does not export the
// SHA extension bit on x86.
func x86HasSHA() bool {
	return cpuid.CPU.Supports(cpuid.SHA, cpuid.SSSE3, cpuid.SSE4)
}

// Report describes the host processor for diagnostics.
type Report struct {
	Platform  string
	Brand     string
	Vendor    string
	Cores     int
	Features  Features
	Supported []string
}

// Describe gathers a Report. It is meant for display only; dispatch decisions
// use Detect.
func Describe() Report {
	r := Report{
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Brand:    cpuid.CPU.BrandName,
		Vendor:   cpuid.CPU.VendorString,
		Cores:    runtime.NumCPU(),
		Features: Detect(),
	}
	if r.Brand == "" {
		r.Brand = "unknown"
	}
	if r.Vendor == "" {
		r.Vendor = "unknown"
	}
	for _, name := range cpuid.CPU.FeatureSet() {
		if relevantFeature[name] {
			r.Supported = append(r.Supported, name)
		}
	}
	sort.Strings(r.Supported)
	return r
}

var relevantFeature = map[string]bool{
	"SHA":   true,
	"SHA1":  true,
	"SHA2":  true,
	"ASIMD": true,
	"SSSE3": true,
	"SSE4":  true,
	"AVX":   true,
	"AVX2":  true,
	"BMI2":  true,
}
