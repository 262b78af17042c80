package service

import (
	"regexp"
	"sync"
	"testing"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
)

func TestGenerateTransactTime(t *testing.T) {
	s := newTestService(t, Options{})

	got, err := s.GenerateTransactTime("D+1:ns=0")
	if err != nil {
		t.Fatalf("GenerateTransactTime() error = %v", err)
	}
	if got.String() != "2017-05-31T14:00:23" {
		t.Errorf("GenerateTransactTime() = %v, want 2017-05-31T14:00:23", got)
	}
}

func TestGenerateClOrdID(t *testing.T) {
	s := newTestService(t, Options{})

	// testNow is 1496152823439 ms; the sequence starts at 1
	for _, want := range []string{"1496152823440", "1496152823441", "1496152823442"} {
		if got := s.GenerateClOrdID(); got != want {
			t.Errorf("GenerateClOrdID() = %s, want %s", got, want)
		}
	}

	// a second service has its own sequence
	other := newTestService(t, Options{})
	if got := other.GenerateClOrdID(); got != "1496152823440" {
		t.Errorf("GenerateClOrdID() on a new service = %s, want 1496152823440", got)
	}
}

func TestGenerateClOrdIDConcurrent(t *testing.T) {
	s := newTestService(t, Options{})

	const n = 64
	var (
		mu   sync.Mutex
		seen = make(map[string]bool, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := s.GenerateClOrdID()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Errorf("got %d distinct ids from %d calls", len(seen), n)
	}
}

func TestGenerateHexString(t *testing.T) {
	s := newTestService(t, Options{})
	hex := regexp.MustCompile(`^[0-9a-f]{1,16}$`)

	for i := 0; i < 100; i++ {
		if got := s.GenerateHexString(); !hex.MatchString(got) {
			t.Fatalf("GenerateHexString() = %q, want up to 16 hex digits", got)
		}
	}
}

func TestGenerateInteger(t *testing.T) {
	s := newTestService(t, Options{})

	tests := []struct {
		name  string
		bound int64
		code  mdwerror.Code
	}{
		{"single value", 1, ""},
		{"small bound", 10, ""},
		{"large bound", 1 << 40, ""},
		{"zero bound", 0, mdwerror.CodeInvalidInput},
		{"negative bound", -5, mdwerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				got, err := s.GenerateInteger(tt.bound)
				if tt.code != "" {
					if !mdwerror.HasCode(err, tt.code) {
						t.Fatalf("GenerateInteger(%d) error = %v, want code %s", tt.bound, err, tt.code)
					}
					return
				}
				if err != nil {
					t.Fatalf("GenerateInteger(%d) error = %v", tt.bound, err)
				}
				if got < 0 || got >= tt.bound {
					t.Fatalf("GenerateInteger(%d) = %d, out of range", tt.bound, got)
				}
			}
		})
	}
}
