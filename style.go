package draft

import "fmt"

// TextStyle supplies the scalar defaults of text-like entities.
type TextStyle struct {
	Name string
	// FixedHeight is used when a text entity does not carry its own height;
	// zero means the height is always per-entity.
	FixedHeight  float64
	WidthFactor  float64
	ObliqueAngle float64
	IsBackward   bool
	IsUpsideDown bool
}

// DefaultTextStyle returns the stock "Standard" text style.
func DefaultTextStyle() *TextStyle {
	return &TextStyle{
		Name:        "Standard",
		WidthFactor: 1,
	}
}

// DimensionStyle supplies the scalar defaults of dimension, leader and
// tolerance entities.
type DimensionStyle struct {
	Name string
	// TextOffset is the gap between the dimension line and its text.
	TextOffset float64
	// TextHeight is the dimension text height.
	TextHeight float64
	// ArrowSize is the length of the dimension's arrow heads.
	ArrowSize float64
	// ExtensionLineOffset is the gap between the measured point and the start
	// of its extension line.
	ExtensionLineOffset float64
	// ExtensionLineExtend is how far the extension line runs past the
	// dimension line.
	ExtensionLineExtend float64
	// Scale multiplies all of the above.
	Scale float64
	// DecimalPlaces formats the measurement text.
	DecimalPlaces int
}

// DefaultDimensionStyle returns the stock "Standard" dimension style.
func DefaultDimensionStyle() *DimensionStyle {
	return &DimensionStyle{
		Name:                "Standard",
		TextOffset:          0.09,
		TextHeight:          0.18,
		ArrowSize:           0.18,
		ExtensionLineOffset: 0.0625,
		ExtensionLineExtend: 0.18,
		Scale:               1,
		DecimalPlaces:       2,
	}
}

// DimStyleOverrideKey names a dimension style scalar that an individual
// entity may override.
type DimStyleOverrideKey int

const (
	DimTextOffset DimStyleOverrideKey = iota
	DimTextHeight
	DimArrowSize
	DimExtensionLineOffset
	DimExtensionLineExtend
	DimScale
	DimDecimalPlaces
)

// DimStyleOverrides is a per-entity key→value map consulted before the style
// default. A value of the wrong dynamic type is ignored in favor of the
// default.
type DimStyleOverrides map[DimStyleOverrideKey]any

// resolveDimFloat is the single place where "look up the override, else use
// the style default" happens for scalar dimension values. Every computation
// on dimensions, leaders and tolerances goes through it.
func resolveDimFloat(style *DimensionStyle, overrides DimStyleOverrides, key DimStyleOverrideKey) float64 {
	if v, ok := overrides[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	switch key {
	case DimTextOffset:
		return style.TextOffset
	case DimTextHeight:
		return style.TextHeight
	case DimArrowSize:
		return style.ArrowSize
	case DimExtensionLineOffset:
		return style.ExtensionLineOffset
	case DimExtensionLineExtend:
		return style.ExtensionLineExtend
	case DimScale:
		return style.Scale
	default:
		panic(fmt.Sprintf("unhandled dimension style key %d", key))
	}
}

// resolveDimInt is the integer counterpart of resolveDimFloat.
func resolveDimInt(style *DimensionStyle, overrides DimStyleOverrides, key DimStyleOverrideKey) int {
	if v, ok := overrides[key]; ok {
		if i, ok := v.(int); ok {
			return i
		}
	}
	switch key {
	case DimDecimalPlaces:
		return style.DecimalPlaces
	default:
		panic(fmt.Sprintf("unhandled dimension style key %d", key))
	}
}
