package transform

import (
	"fmt"

	"github.com/go-tabular/tabular"
)

// TruncateTransform maps a source value to a fixed-width prefix: the first Width
// bytes of a string or binary value, or an integral value rounded down to a
// multiple of Width.
type TruncateTransform struct {
	width int
}

// Truncate is a factory for TruncateTransforms
func Truncate(width int) TruncateTransform {
	return TruncateTransform{width: width}
}

// Width returns the truncation width of this TruncateTransform
func (t TruncateTransform) Width() int { return t.width }

// Name returns the name of a TruncateTransform
func (t TruncateTransform) Name() string { return "truncate" }

// AppliesTo returns true iff fieldType has a meaningful fixed-width prefix
func (t TruncateTransform) AppliesTo(fieldType tabular.Type) bool {
	switch fieldType.ID() {
	case tabular.IntTypeID, tabular.LongTypeID, tabular.DecimalTypeID,
		tabular.StringTypeID, tabular.BinaryTypeID:
		return true
	default:
		return false
	}
}

// String returns the serialized form of a TruncateTransform
func (t TruncateTransform) String() string {
	return fmt.Sprintf("truncate[%d]", t.width)
}

// ApplyString truncates a string value to at most Width bytes
func (t TruncateTransform) ApplyString(v string) string {
	if len(v) <= t.width {
		return v
	}
	return v[:t.width]
}

// ApplyInt rounds an integral value down to a multiple of Width
func (t TruncateTransform) ApplyInt(v int64) int64 {
	r := v % int64(t.width)
	if r < 0 {
		r += int64(t.width)
	}
	return v - r
}
