package draft

import "testing"

func TestColorSymbolic(t *testing.T) {
	if !ColorByLayer().IsByLayer() {
		t.Error("ColorByLayer should report by-layer")
	}
	if !ColorByBlock().IsByBlock() {
		t.Error("ColorByBlock should report by-block")
	}
	if ColorByLayer().IsTrueColor() {
		t.Error("a symbolic color should not report true color")
	}
}

func TestNewColorIndex(t *testing.T) {
	if _, err := NewColorIndex(0); err == nil {
		t.Error("expected index 0 to be rejected")
	}
	if _, err := NewColorIndex(256); err == nil {
		t.Error("expected index 256 to be rejected")
	}

	red, err := NewColorIndex(1)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := red.RGB()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("got rgb(%d, %d, %d) for index 1, expected red", r, g, b)
	}

	white, err := NewColorIndex(7)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b = white.RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("got rgb(%d, %d, %d) for index 7, expected white", r, g, b)
	}
}

func TestNewColorRGBNearestIndex(t *testing.T) {
	// Exact palette entries map to their own index.
	if got := NewColorRGB(255, 0, 0).Index(); got != 1 {
		t.Errorf("got index %d for pure red, expected 1", got)
	}
	if got := NewColorRGB(0, 0, 255).Index(); got != 5 {
		t.Errorf("got index %d for pure blue, expected 5", got)
	}
	// A near-red maps to the red entry as well.
	if got := NewColorRGB(250, 5, 5).Index(); got != 1 {
		t.Errorf("got index %d for near red, expected 1", got)
	}
}

func TestColorBlend(t *testing.T) {
	mid := NewColorRGB(0, 0, 0).Blend(NewColorRGB(255, 255, 255), 0.5)
	if !mid.IsTrueColor() {
		t.Fatal("a blended color should be a true color")
	}
	r, g, b := mid.RGB()
	if r != g || g != b {
		t.Errorf("got rgb(%d, %d, %d), expected a gray", r, g, b)
	}
	if r < 100 || r > 155 {
		t.Errorf("got gray level %d, expected a mid gray", r)
	}

	// The end points of the blend reproduce the inputs.
	r, g, b = NewColorRGB(10, 20, 30).Blend(NewColorRGB(200, 100, 0), 0).RGB()
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("got rgb(%d, %d, %d) at t=0, expected the first color", r, g, b)
	}
}

func TestColorString(t *testing.T) {
	if got := ColorByLayer().String(); got != "ByLayer" {
		t.Errorf("got %q", got)
	}
	if got := NewColorRGB(255, 0, 128).String(); got != "#ff0080" {
		t.Errorf("got %q", got)
	}
}
