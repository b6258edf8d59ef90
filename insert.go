package draft

import "errors"

// Insert places a named block at a position, with per-axis scaling and a
// rotation in its OCS plane. It owns the attribute entities stamped from the
// block's attribute definitions.
type Insert struct {
	entity
	BlockName string
	// Position is the insertion point in WCS.
	Position Vector3
	scaleX   float64
	scaleY   float64
	scaleZ   float64
	// Rotation is in degrees, measured counterclockwise in the OCS plane.
	Rotation   float64
	Attributes []*Attribute
}

// NewInsert returns an insert of the named block at a WCS position with unit
// scale.
func NewInsert(blockName string, position Vector3) (*Insert, error) {
	if blockName == "" {
		return nil, errors.New("insert requires a block name")
	}
	return &Insert{
		entity:    newEntity(),
		BlockName: blockName,
		Position:  position,
		scaleX:    1,
		scaleY:    1,
		scaleZ:    1,
	}, nil
}

// Scale returns the per-axis scale factors. Negative factors mirror the block
// along that axis.
func (ins *Insert) Scale() (x, y, z float64) {
	return ins.scaleX, ins.scaleY, ins.scaleZ
}

// SetScale assigns the per-axis scale factors, none of which may be zero.
func (ins *Insert) SetScale(x, y, z float64) error {
	if isZero(x) || isZero(y) || isZero(z) {
		return errors.New("insert scale factors cannot be zero")
	}
	ins.scaleX, ins.scaleY, ins.scaleZ = x, y, z
	return nil
}

// TransformBy applies an affine map to the insert. Rotation and scale factors
// are re-derived from the transformed local axis directions; a map that
// reflects the block's plane is expressed as a negative Y scale. The same map
// is propagated synchronously to every owned attribute.
func (ins *Insert) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, ins.normal)
	transOW := ArbitraryAxis(ins.normal)
	transWO := ArbitraryAxis(newNormal).Transpose()

	rot := DegToRad(ins.Rotation)
	u := transformOCSDirection(m, transOW, transWO,
		V3FromXY(V2FromAngle(rot).Mul(ins.scaleX), 0)).XY()
	v := transformOCSDirection(m, transOW, transWO,
		V3FromXY(V2FromAngle(rot).Perpendicular().Mul(ins.scaleY), 0)).XY()
	w := transformOCSDirection(m, transOW, transWO, UnitZ.Mul(ins.scaleZ))

	newScaleX := u.Hypot()
	if isZero(newScaleX) {
		newScaleX = Epsilon
	}
	newScaleY := v.Hypot()
	if isZero(newScaleY) {
		newScaleY = Epsilon
	}
	if u.Cross(v) < 0 {
		newScaleY = -newScaleY
	}
	newScaleZ := w.Hypot()
	if isZero(newScaleZ) {
		newScaleZ = Epsilon
	}

	for _, attr := range ins.Attributes {
		if err := attr.TransformBy(m, translation); err != nil {
			return err
		}
	}

	ins.Position = m.MulVec(ins.Position).Add(translation)
	ins.Rotation = NormalizeAngle(RadToDeg(u.Angle()))
	ins.scaleX, ins.scaleY, ins.scaleZ = newScaleX, newScaleY, newScaleZ
	ins.normal = newNormal
	return nil
}
