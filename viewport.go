package draft

// Viewport frames a rectangular view of model space on a paper space layout.
type Viewport struct {
	entity
	// Center is the viewport's center on the layout, in WCS.
	Center Vector3
	width  float64
	height float64
	// ViewTarget and ViewDirection aim the camera at model space.
	ViewTarget    Vector3
	ViewDirection Vector3
	// ClippingBoundary optionally replaces the rectangular frame; the
	// viewport propagates its transforms to it.
	ClippingBoundary *Polyline2D
}

// NewViewport returns a viewport centered on a WCS point with the given frame
// size. Both dimensions must be positive.
func NewViewport(center Vector3, width, height float64) (*Viewport, error) {
	v := &Viewport{
		entity:        newEntity(),
		Center:        center,
		ViewDirection: UnitZ,
	}
	if err := v.SetSize(width, height); err != nil {
		return nil, err
	}
	return v, nil
}

// Width returns the frame width.
func (v *Viewport) Width() float64 { return v.width }

// Height returns the frame height.
func (v *Viewport) Height() float64 { return v.height }

// SetSize assigns the frame size; both dimensions must be positive.
func (v *Viewport) SetSize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return ErrNonPositive
	}
	v.width = width
	v.height = height
	return nil
}

// TransformBy applies an affine map to the viewport frame. The width and
// height are re-derived from the transformed local axis directions; values
// collapsed to zero are substituted with a small positive epsilon. The
// clipping boundary, when present, receives the same map synchronously.
func (v *Viewport) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, v.normal)
	transOW := ArbitraryAxis(v.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()

	widthDir := transformOCSDirection(m, transOW, transWO, UnitX.Mul(v.width))
	heightDir := transformOCSDirection(m, transOW, transWO, UnitY.Mul(v.height))
	newWidth := widthDir.Hypot()
	if isZero(newWidth) {
		newWidth = Epsilon
	}
	newHeight := heightDir.Hypot()
	if isZero(newHeight) {
		newHeight = Epsilon
	}

	if v.ClippingBoundary != nil {
		if err := v.ClippingBoundary.TransformBy(m, translation); err != nil {
			return err
		}
	}

	v.Center = m.MulVec(v.Center).Add(translation)
	v.width = newWidth
	v.height = newHeight
	v.ViewTarget = m.MulVec(v.ViewTarget).Add(translation)
	if d := m.MulVec(v.ViewDirection); !d.IsZero() {
		v.ViewDirection = d.Normalize()
	}
	v.normal = newNormal
	return nil
}
