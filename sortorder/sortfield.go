// Package sortorder models how a table's data files are physically sorted: an
// ordered list of transformed field references, each with a direction and null
// placement. Sort fields reference schema fields by stable ID, resolved from
// names exactly once when an order is built, so later renames never invalidate
// an order. The package also answers the planner's compatibility questions:
// whether data sorted one way can be consumed as if sorted another.
package sortorder

import (
	"fmt"

	"github.com/go-tabular/tabular"
)

// SortField is a single sort rule: a transform applied to a source field,
// ordered in a direction with an explicit null placement.
type SortField struct {
	sourceID  int
	transform tabular.Transform
	direction tabular.SortDirection
	nullOrder tabular.NullOrder
}

// NewSortField is a factory for SortFields
func NewSortField(sourceID int, t tabular.Transform, direction tabular.SortDirection, nullOrder tabular.NullOrder) SortField {
	return SortField{sourceID: sourceID, transform: t, direction: direction, nullOrder: nullOrder}
}

// SourceID returns the stable ID of the schema field this rule sorts by
func (f SortField) SourceID() int { return f.sourceID }

// Transform returns the transform applied to the source field before comparison
func (f SortField) Transform() tabular.Transform { return f.transform }

// Direction returns the sort direction of this rule
func (f SortField) Direction() tabular.SortDirection { return f.direction }

// NullOrder returns the null placement of this rule
func (f SortField) NullOrder() tabular.NullOrder { return f.nullOrder }

// Equals returns true iff this and another SortField reference the same source
// field with the same transform, direction and null placement
func (f SortField) Equals(other SortField) bool {
	return f.sourceID == other.sourceID &&
		f.direction == other.direction &&
		f.nullOrder == other.nullOrder &&
		tabular.SameTransform(f.transform, other.transform)
}

// String returns a textual representation of this SortField
func (f SortField) String() string {
	return fmt.Sprintf("%s(%d) %s %s", f.transform, f.sourceID, f.direction, f.nullOrder)
}
