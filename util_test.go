package draft

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func nearFloat(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func assertNear2(t *testing.T, got, want Vector2, epsilon float64) {
	t.Helper()
	if d := want.Sub(got).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertNear3(t *testing.T, got, want Vector3, epsilon float64) {
	t.Helper()
	if d := want.Sub(got).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}
