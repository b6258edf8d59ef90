package draft

import (
	"errors"
	"math"
)

// Legal ranges of constrained entity scalars. Transforms clamp into these
// ranges silently (format-mandated lossy behavior); constructors and setters
// reject values outside them.
const (
	MinWidthFactor = 0.01
	MaxWidthFactor = 100.0

	MaxObliqueAngle = 85.0 // degrees, symmetric about zero
)

// DefaultPrecision is the tessellation density used when a caller does not
// supply one, mirroring the drawing-level setting of a full document.
const DefaultPrecision = 16

// MirrorTextDefault controls how reflected text entities respond when no
// owning document supplies the drawing-level mirror-text flag: false flips the
// text's orientation, true mirrors its glyphs by toggling the backward flag.
const MirrorTextDefault = false

// Errors shared by entity constructors, setters and transforms.
var (
	ErrZeroNormal          = errors.New("entity normal cannot be the zero vector")
	ErrNonPositive         = errors.New("value must be greater than zero")
	ErrWidthFactorRange    = errors.New("width factor must be in [0.01, 100]")
	ErrObliqueRange        = errors.New("oblique angle must be in [-85, 85] degrees")
	ErrDegenerateTransform = errors.New("transformation degenerates the entity's reference directions")
)

// Entity is any drawable carrying an OCS-defining normal that can re-express
// itself under an affine map.
//
// TransformBy applies the affine map given by the linear part m and the
// translation to the entity in place, re-deriving any constrained scalars and
// clamping them into their legal ranges. A single call is atomic: when an
// error is returned the entity is unchanged.
type Entity interface {
	Normal() Vector3
	SetNormal(normal Vector3) error
	TransformBy(m Matrix3, translation Vector3) error
}

// Transform applies a 4×4 affine map to an entity by decomposing it into its
// linear part and translation.
func Transform(e Entity, m Matrix4) error {
	return e.TransformBy(m.Linear(), m.Translation())
}

// Tessellator is implemented by entities whose curved outline can be
// approximated as a polygonal vertex sequence.
type Tessellator interface {
	// PolygonalVertices approximates the entity's outline, in its local
	// plane, with the given number of samples.
	PolygonalVertices(precision int) ([]Vector2, error)
}

// Exploder is implemented by compound or curved entities that can decompose
// themselves into simpler primitives.
type Exploder interface {
	Explode() []Entity
}

// entity carries the state common to all entities.
type entity struct {
	normal        Vector3
	linetypeScale float64
	color         Color
}

func newEntity() entity {
	return entity{
		normal:        UnitZ,
		linetypeScale: 1,
		color:         ColorByLayer(),
	}
}

// Normal returns the unit normal defining the entity's OCS.
func (e *entity) Normal() Vector3 {
	return e.normal
}

// SetNormal assigns the entity's normal. The vector is normalized on
// assignment; the zero vector is rejected.
func (e *entity) SetNormal(normal Vector3) error {
	if normal.IsZero() {
		return ErrZeroNormal
	}
	e.normal = normal.Normalize()
	return nil
}

// LinetypeScale returns the entity's linetype pattern scale.
func (e *entity) LinetypeScale() float64 {
	return e.linetypeScale
}

// SetLinetypeScale assigns the linetype pattern scale, which must be positive.
func (e *entity) SetLinetypeScale(scale float64) error {
	if scale <= 0 {
		return ErrNonPositive
	}
	e.linetypeScale = scale
	return nil
}

// Color returns the entity's color.
func (e *entity) Color() Color {
	return e.color
}

// SetColor assigns the entity's color.
func (e *entity) SetColor(c Color) {
	e.color = c
}

// transformedNormal maps a normal through the linear part of a transform. When
// the result is numerically zero the prior normal is kept; a degenerate map
// must not destroy the entity's frame.
func transformedNormal(m Matrix3, normal Vector3) Vector3 {
	n := m.MulVec(normal)
	if n.IsZero() {
		return normal
	}
	return n.Normalize()
}

// clampWidthFactor clamps a derived width factor into its legal range.
func clampWidthFactor(w float64) float64 {
	return math.Min(math.Max(w, MinWidthFactor), MaxWidthFactor)
}

// clampObliqueAngle clamps a derived oblique angle (degrees) into its legal
// range.
func clampObliqueAngle(deg float64) float64 {
	return math.Min(math.Max(deg, -MaxObliqueAngle), MaxObliqueAngle)
}

// textFrame is the pair of local reference directions from which text-like
// entities re-derive their constrained scalars: a width direction along local
// X scaled by widthFactor·height, and a height direction scaled by height and
// sheared by the oblique angle. Angles are in degrees.
type textFrame struct {
	Rotation    float64
	Height      float64
	WidthFactor float64
	Oblique     float64
}

// transformTextFrame pushes a text frame through an affine map's linear part.
//
// Both reference directions are lifted from the old OCS to WCS, mapped, and
// projected into the new OCS. The returned frame has its scalars re-derived
// and clamped; mirrored reports whether the map reflects the entity's local
// plane (the transformed directions changed handedness).
func transformTextFrame(m Matrix3, oldNormal, newNormal Vector3, f textFrame) (out textFrame, mirrored bool) {
	transOW := ArbitraryAxis(oldNormal)
	transWO := ArbitraryAxis(newNormal).Transpose()

	rotation := DegToRad(f.Rotation)
	oblique := DegToRad(f.Oblique)

	widthDir := V2FromAngle(rotation).Mul(f.WidthFactor * f.Height)
	heightDir := V2(math.Tan(oblique)*f.Height, f.Height).Rotate(rotation)

	wv := transWO.MulVec(m.MulVec(transOW.MulVec(V3FromXY(widthDir, 0)))).XY()
	hv := transWO.MulVec(m.MulVec(transOW.MulVec(V3FromXY(heightDir, 0)))).XY()

	newRotation := wv.Angle()
	newOblique := newRotation + math.Pi/2 - hv.Angle()
	// Fold into (-90°, 90°] before clamping.
	if newOblique > math.Pi/2 {
		newOblique -= math.Pi
	} else if newOblique < -math.Pi/2 {
		newOblique += math.Pi
	}
	obliqueDeg := clampObliqueAngle(RadToDeg(newOblique))

	newHeight := hv.Hypot() * math.Cos(DegToRad(obliqueDeg))
	if isZero(newHeight) {
		// A size of exactly zero is illegal; keep the entity drawable.
		newHeight = Epsilon
	}

	out = textFrame{
		Rotation:    NormalizeAngle(RadToDeg(newRotation)),
		Height:      newHeight,
		WidthFactor: clampWidthFactor(wv.Hypot() / newHeight),
		Oblique:     obliqueDeg,
	}
	return out, wv.Cross(hv) < 0
}

// transformOCSPoint lifts a local point to WCS via the old frame, applies the
// affine map, and projects it into the new frame.
func transformOCSPoint(m Matrix3, translation Vector3, transOW, transWO Matrix3, p Vector3) Vector3 {
	return transWO.MulVec(m.MulVec(transOW.MulVec(p)).Add(translation))
}

// transformOCSDirection is like transformOCSPoint for pure directions, which
// do not translate.
func transformOCSDirection(m Matrix3, transOW, transWO Matrix3, d Vector3) Vector3 {
	return transWO.MulVec(m.MulVec(transOW.MulVec(d)))
}

// referenceScale measures the uniform scale an affine map applies to distances
// in an entity's local plane, by pushing the local X direction through the
// map. Entities with many per-vertex scalar distances (multiline offsets,
// polyline widths) apply this single factor to all of them.
func referenceScale(m Matrix3, oldNormal, newNormal Vector3) float64 {
	transOW := ArbitraryAxis(oldNormal)
	transWO := ArbitraryAxis(newNormal).Transpose()
	return transformOCSDirection(m, transOW, transWO, UnitX).Hypot()
}
