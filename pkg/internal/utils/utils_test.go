package utils_test

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

func TestGenerateUniqueHash(t *testing.T) {
	a := utils.GenerateUniqueHash()
	b := utils.GenerateUniqueHash()
	if len(a) != 64 || a == b {
		t.Fatalf("expected distinct 64-char hashes, got %q and %q", a, b)
	}
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		K float64 `json:"k"`
	}
	if err := utils.DecodeJSON(strings.NewReader(`{"k": 2.5}`), &out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if out.K != 2.5 {
		t.Fatalf("expected 2.5, got %v", out.K)
	}
}

func TestEnvOr(t *testing.T) {
	const key = "ACOUSTOFIELD_TEST_ENV_OR"
	_ = os.Unsetenv(key)
	if got := utils.EnvOr(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv(key, `"  value  "`)
	if got := utils.EnvOr(key, "fallback"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestEnvIntOrAndFloatOr(t *testing.T) {
	const key = "ACOUSTOFIELD_TEST_ENV_NUM"
	t.Setenv(key, "12")
	if got := utils.EnvIntOr(key, 7); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	if got := utils.EnvFloatOr(key, 1.5); got != 12 {
		t.Fatalf("expected 12, got %v", got)
	}

	t.Setenv(key, "not-a-number")
	if got := utils.EnvIntOr(key, 7); got != 7 {
		t.Fatalf("expected default on bad int, got %d", got)
	}
	if got := utils.EnvFloatOr(key, 1.5); got != 1.5 {
		t.Fatalf("expected default on bad float, got %v", got)
	}
}

func TestLinspace(t *testing.T) {
	got := utils.Linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if utils.Linspace(0, 1, 0) != nil {
		t.Fatalf("expected nil for n=0")
	}
	if one := utils.Linspace(3, 9, 1); len(one) != 1 || one[0] != 3 {
		t.Fatalf("expected [3], got %v", one)
	}
}

func TestMinMaxSkipsNaN(t *testing.T) {
	lo, hi := utils.MinMax([]float64{math.NaN(), 3, -2, math.Inf(1)})
	if lo != -2 || hi != 3 {
		t.Fatalf("expected (-2, 3), got (%v, %v)", lo, hi)
	}
	lo, _ = utils.MinMax([]float64{math.NaN()})
	if !math.IsNaN(lo) {
		t.Fatalf("expected NaN for empty finite set")
	}
}
