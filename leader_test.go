package draft

import (
	"math"
	"testing"
)

func TestNewLeaderValidation(t *testing.T) {
	if _, err := NewLeader([]Vector2{V2(0, 0)}); err == nil {
		t.Error("expected a single-vertex leader to be rejected")
	}
}

func TestLeaderTransform(t *testing.T) {
	const epsilon = 1e-9
	l, err := NewLeader([]Vector2{V2(0, 0), V2(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	l.Offset = V2(1, 0)

	if err := l.TransformBy(RotationZ(math.Pi/2), V3(0, 3, 0)); err != nil {
		t.Fatal(err)
	}
	assertNear2(t, l.Vertexes[0], V2(0, 3), epsilon)
	assertNear2(t, l.Vertexes[1], V2(0, 5), epsilon)
	// The annotation offset is a displacement and ignores the translation.
	assertNear2(t, l.Offset, V2(0, 1), epsilon)
}

func TestLeaderStyleScalars(t *testing.T) {
	const epsilon = 1e-12
	l, err := NewLeader([]Vector2{V2(0, 0), V2(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	nearFloat(t, l.ArrowSize(), 0.18, epsilon)
	l.Overrides[DimScale] = 10.0
	nearFloat(t, l.ArrowSize(), 1.8, epsilon)
	nearFloat(t, l.TextOffset(), 0.9, epsilon)
}

func TestLeaderAnnotationResolution(t *testing.T) {
	l, err := NewLeader([]Vector2{V2(0, 0), V2(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	reg := NewReactorRegistry()
	l.Annotation = "text-1"
	reg.Attach("text-1", "leader-1", l)

	deps := reg.Dependents("text-1")
	if len(deps) != 1 || deps[0] != Entity(l) {
		t.Fatalf("got %v, expected the leader attached to its annotation", deps)
	}

	reg.Detach("text-1", "leader-1")
	if deps := reg.Dependents("text-1"); deps != nil {
		t.Fatalf("got %v after detach, expected none", deps)
	}
}
