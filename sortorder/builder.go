package sortorder

import (
	"fmt"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
)

// Builder accumulates sort rules against a bound Schema snapshot. Each rule's
// field path is resolved to a stable ID at the Asc/Desc call, never later, so
// structural changes to other Schema instances cannot retroactively affect an
// order built here. The first resolution or validation failure is remembered
// and returned from Build.
type Builder struct {
	schema     tabular.Schema
	fields     []SortField
	orderID    int
	orderIDSet bool
	err        error
}

// BuilderFor returns a Builder bound to the given Schema snapshot
func BuilderFor(s tabular.Schema) *Builder {
	return &Builder{schema: s, orderID: UnassignedOrderID}
}

// WithOrderID requests an explicit order ID for the built order. Without it,
// a sorted order is built with UnassignedOrderID and the table metadata mints
// the real table-scoped ID on attach.
func (b *Builder) WithOrderID(id int) *Builder {
	b.orderID = id
	b.orderIDSet = true
	return b
}

// Asc appends an ascending sort rule. term is a dotted field path or a Term;
// null placement defaults to nulls-first unless overridden.
func (b *Builder) Asc(term interface{}, nullOrder ...tabular.NullOrder) *Builder {
	return b.sortBy(term, tabular.Ascending, nullOrder)
}

// Desc appends a descending sort rule. term is a dotted field path or a Term;
// null placement defaults to nulls-last unless overridden.
func (b *Builder) Desc(term interface{}, nullOrder ...tabular.NullOrder) *Builder {
	return b.sortBy(term, tabular.Descending, nullOrder)
}

func (b *Builder) sortBy(term interface{}, direction tabular.SortDirection, nullOrder []tabular.NullOrder) *Builder {
	if b.err != nil {
		return b
	}

	var t Term
	switch term := term.(type) {
	case string:
		t = Ref(term)
	case Term:
		t = term
	default:
		b.err = errors.InvalidArgumentError{Reason: fmt.Sprintf("cannot sort by %T, expected a field path or Term", term)}
		return b
	}

	sourceID, err := b.schema.FieldID(t.Path())
	if err != nil {
		b.err = err
		return b
	}
	field, err := b.schema.FindFieldByID(sourceID)
	if err != nil {
		b.err = err
		return b
	}
	if !t.Transform().AppliesTo(field.Type) {
		b.err = errors.ValidationError{Message: fmt.Sprintf(
			"Invalid sort transform: %s cannot be applied to %s (%s)", t.Transform(), t.Path(), field.Type)}
		return b
	}

	placement := tabular.DefaultNullOrder(direction)
	if len(nullOrder) > 0 {
		placement = nullOrder[0]
	}
	b.fields = append(b.fields, NewSortField(sourceID, t.Transform(), direction, placement))
	return b
}

// Build validates the accumulated rules and returns the immutable SortOrder.
// Order ID 0 is reserved for the unsorted order: requesting it alongside any
// sort rule fails, as does requesting any other ID for an order with no rules.
func (b *Builder) Build() (SortOrder, error) {
	if b.err != nil {
		return SortOrder{}, b.err
	}
	if len(b.fields) == 0 {
		if b.orderIDSet && b.orderID != UnsortedOrderID {
			return SortOrder{}, errors.InvalidArgumentError{Reason: "order ID must be 0 for the unsorted order"}
		}
		return Unsorted(), nil
	}
	if b.orderIDSet && b.orderID == UnsortedOrderID {
		return SortOrder{}, errors.InvalidArgumentError{Reason: "order ID 0 is reserved for unsorted order"}
	}
	fields := make([]SortField, len(b.fields))
	copy(fields, b.fields)
	return SortOrder{orderID: b.orderID, fields: fields}, nil
}
