package sortorder

import (
	"fmt"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
)

// Rebind translates a SortOrder built against oldSchema into one valid under
// newSchema, replacing each rule's source ID by re-resolving the field's path
// by name. Used at table creation, when a user builds an order against a
// transient schema before the table assigns its canonical field IDs. Rebind is
// pure: it touches neither schema and returns a new order carrying the same
// order ID, transforms, directions and null placements.
func Rebind(order SortOrder, oldSchema tabular.Schema, newSchema tabular.Schema) (SortOrder, error) {
	if order.IsUnsorted() {
		return order, nil
	}

	fields := make([]SortField, 0, len(order.fields))
	for _, f := range order.fields {
		path, err := oldSchema.PathByID(f.SourceID())
		if err != nil {
			return SortOrder{}, errors.ValidationError{Message: fmt.Sprintf(
				"Cannot find source column: %d", f.SourceID())}
		}
		sourceID, err := newSchema.FieldID(path)
		if err != nil {
			return SortOrder{}, errors.ValidationError{Message: fmt.Sprintf(
				"Cannot find column '%s' in the new schema", path)}
		}
		field, err := newSchema.FindFieldByID(sourceID)
		if err != nil {
			return SortOrder{}, errors.ValidationError{Message: err.Error()}
		}
		if !f.Transform().AppliesTo(field.Type) {
			return SortOrder{}, errors.ValidationError{Message: fmt.Sprintf(
				"Invalid sort transform: %s cannot be applied to %s (%s)", f.Transform(), path, field.Type)}
		}
		fields = append(fields, NewSortField(sourceID, f.Transform(), f.Direction(), f.NullOrder()))
	}
	return SortOrder{orderID: order.orderID, fields: fields}, nil
}

// WithOrderID returns a copy of order carrying the given order ID. The unsorted
// order is fixed at ID 0 and a sorted order may not claim it.
func WithOrderID(order SortOrder, orderID int) (SortOrder, error) {
	if order.IsUnsorted() {
		if orderID != UnsortedOrderID {
			return SortOrder{}, errors.InvalidArgumentError{Reason: "order ID must be 0 for the unsorted order"}
		}
		return order, nil
	}
	if orderID == UnsortedOrderID {
		return SortOrder{}, errors.InvalidArgumentError{Reason: "order ID 0 is reserved for unsorted order"}
	}
	return SortOrder{orderID: orderID, fields: order.fields}, nil
}
