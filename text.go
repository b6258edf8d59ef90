package draft

// TextAlignment places a text entity relative to its insertion point.
type TextAlignment int

const (
	AlignBaselineLeft TextAlignment = iota
	AlignBaselineCenter
	AlignBaselineRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
	AlignMiddleLeft
	AlignMiddleCenter
	AlignMiddleRight
	AlignTopLeft
	AlignTopCenter
	AlignTopRight
	AlignFit
	AlignAligned
	AlignMiddle
)

// mirror returns the alignment's left/right mirror pair. Center, baseline-
// center and fitted alignments are their own pair.
func (a TextAlignment) mirror() TextAlignment {
	switch a {
	case AlignBaselineLeft:
		return AlignBaselineRight
	case AlignBaselineRight:
		return AlignBaselineLeft
	case AlignBottomLeft:
		return AlignBottomRight
	case AlignBottomRight:
		return AlignBottomLeft
	case AlignMiddleLeft:
		return AlignMiddleRight
	case AlignMiddleRight:
		return AlignMiddleLeft
	case AlignTopLeft:
		return AlignTopRight
	case AlignTopRight:
		return AlignTopLeft
	default:
		return a
	}
}

// symmetric reports whether the alignment reads the same in both horizontal
// directions.
func (a TextAlignment) symmetric() bool {
	return a == a.mirror()
}

// Text is a single-line text entity.
type Text struct {
	entity
	Value string
	// Position is the insertion point in WCS.
	Position     Vector3
	height       float64
	widthFactor  float64
	obliqueAngle float64
	// Rotation is in degrees, measured counterclockwise in the OCS plane.
	Rotation     float64
	Alignment    TextAlignment
	IsBackward   bool
	IsUpsideDown bool
	Style        *TextStyle
	// MirrorGlyphs selects how the text responds when a transform reflects
	// its plane: true mirrors the glyphs by toggling IsBackward, false flips
	// the orientation instead. An owning document sets this from its
	// drawing-level mirror-text flag; without a document it defaults to
	// [MirrorTextDefault].
	MirrorGlyphs bool
}

// NewText returns a text entity with the given value, WCS insertion point and
// height. The height must be positive.
func NewText(value string, position Vector3, height float64) (*Text, error) {
	t := &Text{
		entity:       newEntity(),
		Value:        value,
		Position:     position,
		widthFactor:  1,
		Style:        DefaultTextStyle(),
		MirrorGlyphs: MirrorTextDefault,
	}
	if err := t.SetHeight(height); err != nil {
		return nil, err
	}
	return t, nil
}

// Height returns the text height.
func (t *Text) Height() float64 { return t.height }

// SetHeight assigns the text height, which must be positive.
func (t *Text) SetHeight(height float64) error {
	if height <= 0 {
		return ErrNonPositive
	}
	t.height = height
	return nil
}

// WidthFactor returns the glyph width factor.
func (t *Text) WidthFactor() float64 { return t.widthFactor }

// SetWidthFactor assigns the glyph width factor, which must be in
// [0.01, 100].
func (t *Text) SetWidthFactor(w float64) error {
	if w < MinWidthFactor || w > MaxWidthFactor {
		return ErrWidthFactorRange
	}
	t.widthFactor = w
	return nil
}

// ObliqueAngle returns the glyph slant in degrees.
func (t *Text) ObliqueAngle() float64 { return t.obliqueAngle }

// SetObliqueAngle assigns the glyph slant, which must be in [-85°, 85°].
func (t *Text) SetObliqueAngle(deg float64) error {
	if deg < -MaxObliqueAngle || deg > MaxObliqueAngle {
		return ErrObliqueRange
	}
	t.obliqueAngle = deg
	return nil
}

// TransformBy applies an affine map to the text. Rotation, height, width
// factor and oblique angle are re-derived from the transformed reference
// directions and clamped into their legal ranges. When the map reflects the
// text's plane, the response depends on MirrorGlyphs: either the backward
// flag toggles, or the alignment is remapped to its mirror pair and
// non-symmetric alignments are turned half a revolution.
func (t *Text) TransformBy(m Matrix3, translation Vector3) error {
	newNormal := transformedNormal(m, t.normal)
	frame, mirrored := transformTextFrame(m, t.normal, newNormal, textFrame{
		Rotation:    t.Rotation,
		Height:      t.height,
		WidthFactor: t.widthFactor,
		Oblique:     t.obliqueAngle,
	})
	if mirrored {
		if t.MirrorGlyphs {
			t.IsBackward = !t.IsBackward
		} else {
			t.Alignment = t.Alignment.mirror()
			if !t.Alignment.symmetric() {
				frame.Rotation = NormalizeAngle(frame.Rotation + 180)
			}
		}
	}

	t.Position = m.MulVec(t.Position).Add(translation)
	t.Rotation = frame.Rotation
	t.height = frame.Height
	t.widthFactor = frame.WidthFactor
	t.obliqueAngle = frame.Oblique
	t.normal = newNormal
	return nil
}

// Attribute is a tagged text value owned by an insert.
type Attribute struct {
	Text
	Tag       string
	IsVisible bool
}

// NewAttribute returns an attribute with the given tag, value, WCS position
// and height.
func NewAttribute(tag, value string, position Vector3, height float64) (*Attribute, error) {
	t, err := NewText(value, position, height)
	if err != nil {
		return nil, err
	}
	return &Attribute{Text: *t, Tag: tag, IsVisible: true}, nil
}

// AttributeDefinition is the template inside a block from which inserts stamp
// their attributes.
type AttributeDefinition struct {
	Text
	Tag    string
	Prompt string
}

// NewAttributeDefinition returns an attribute definition with the given tag,
// default value, WCS position and height.
func NewAttributeDefinition(tag, value string, position Vector3, height float64) (*AttributeDefinition, error) {
	t, err := NewText(value, position, height)
	if err != nil {
		return nil, err
	}
	return &AttributeDefinition{Text: *t, Tag: tag}, nil
}
