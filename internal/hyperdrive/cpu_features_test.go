package hyperdrive

import (
	"runtime"
	"sync"
	"testing"
)

func TestDetectIsStable(t *testing.T) {
	want := Detect()

	var wg sync.WaitGroup
	results := make([]Features, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Detect()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("goroutine %d: Detect() = %+v, want %+v", i, got, want)
		}
	}
}

func TestDetectMatchesArchitecture(t *testing.T) {
	f := Detect()
	switch runtime.GOARCH {
	case "arm64":
		if f.X86SHA || f.X86SSSE3 || f.X86SSE41 || f.X86AVX2 {
			t.Errorf("x86 features reported on arm64: %+v", f)
		}
	case "amd64", "386":
		if f.ARM64SHA1 || f.ARM64ASIMD {
			t.Errorf("arm64 features reported on %s: %+v", runtime.GOARCH, f)
		}
	default:
		if f != (Features{}) {
			t.Errorf("features reported on %s: %+v", runtime.GOARCH, f)
		}
	}
}

func TestDescribe(t *testing.T) {
	r := Describe()

	if want := runtime.GOOS + "/" + runtime.GOARCH; r.Platform != want {
		t.Errorf("Platform = %q, want %q", r.Platform, want)
	}
	if r.Cores != runtime.NumCPU() {
		t.Errorf("Cores = %d, want %d", r.Cores, runtime.NumCPU())
	}
	if r.Brand == "" || r.Vendor == "" {
		t.Errorf("empty brand or vendor: %+v", r)
	}
	if r.Features != Detect() {
		t.Errorf("Features = %+v, want %+v", r.Features, Detect())
	}
	for _, name := range r.Supported {
		if !relevantFeature[name] {
			t.Errorf("unexpected feature %q in report", name)
		}
	}
}
