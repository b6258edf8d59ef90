package draft

import "errors"

// Line is a straight segment between two WCS points.
type Line struct {
	entity
	Start     Vector3
	End       Vector3
	Thickness float64
}

// NewLine returns a line between two WCS points.
func NewLine(start, end Vector3) *Line {
	return &Line{
		entity: newEntity(),
		Start:  start,
		End:    end,
	}
}

// Direction returns the line's direction, not normalized.
func (l *Line) Direction() Vector3 {
	return l.End.Sub(l.Start)
}

// TransformBy applies an affine map to both end points.
func (l *Line) TransformBy(m Matrix3, translation Vector3) error {
	l.Start = m.MulVec(l.Start).Add(translation)
	l.End = m.MulVec(l.End).Add(translation)
	l.normal = transformedNormal(m, l.normal)
	return nil
}

// Ray is a half-infinite line: an origin and a direction.
type Ray struct {
	entity
	Origin    Vector3
	direction Vector3
}

// NewRay returns a ray from origin along direction. The direction cannot be
// the zero vector; it is normalized on assignment.
func NewRay(origin, direction Vector3) (*Ray, error) {
	r := &Ray{entity: newEntity(), Origin: origin}
	if err := r.SetDirection(direction); err != nil {
		return nil, err
	}
	return r, nil
}

// Direction returns the ray's unit direction.
func (r *Ray) Direction() Vector3 {
	return r.direction
}

// SetDirection assigns the ray's direction, rejecting the zero vector.
func (r *Ray) SetDirection(direction Vector3) error {
	if direction.IsZero() {
		return errors.New("ray direction cannot be the zero vector")
	}
	r.direction = direction.Normalize()
	return nil
}

// TransformBy applies an affine map to the ray. The direction transforms
// without translation; a direction collapsed to zero by a degenerate map is
// kept unchanged.
func (r *Ray) TransformBy(m Matrix3, translation Vector3) error {
	r.Origin = m.MulVec(r.Origin).Add(translation)
	if d := m.MulVec(r.direction); !d.IsZero() {
		r.direction = d.Normalize()
	}
	r.normal = transformedNormal(m, r.normal)
	return nil
}

// XLine is an infinite construction line through a point.
type XLine struct {
	entity
	Origin    Vector3
	direction Vector3
}

// NewXLine returns a construction line through origin along direction. The
// direction cannot be the zero vector; it is normalized on assignment.
func NewXLine(origin, direction Vector3) (*XLine, error) {
	x := &XLine{entity: newEntity(), Origin: origin}
	if err := x.SetDirection(direction); err != nil {
		return nil, err
	}
	return x, nil
}

// Direction returns the line's unit direction.
func (x *XLine) Direction() Vector3 {
	return x.direction
}

// SetDirection assigns the line's direction, rejecting the zero vector.
func (x *XLine) SetDirection(direction Vector3) error {
	if direction.IsZero() {
		return errors.New("xline direction cannot be the zero vector")
	}
	x.direction = direction.Normalize()
	return nil
}

// TransformBy applies an affine map to the construction line.
func (x *XLine) TransformBy(m Matrix3, translation Vector3) error {
	x.Origin = m.MulVec(x.Origin).Add(translation)
	if d := m.MulVec(x.direction); !d.IsZero() {
		x.direction = d.Normalize()
	}
	x.normal = transformedNormal(m, x.normal)
	return nil
}
