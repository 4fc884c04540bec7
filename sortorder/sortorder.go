package sortorder

import (
	"strings"
)

const (
	// UnsortedOrderID is the order ID reserved for the unsorted order. No sorted
	// order may carry it, and the unsorted order may carry no other.
	UnsortedOrderID = 0
	// UnassignedOrderID marks an order built without an explicit ID. The table
	// metadata mints the real table-scoped ID when the order is attached.
	UnassignedOrderID = -1
)

// SortOrder is an immutable, self-contained description of a physical sort: an
// ordered sequence of SortFields plus a table-scoped order ID. It holds no
// reference to the Schema it was built against; field identity lives entirely
// in the SortFields' stable source IDs.
type SortOrder struct {
	orderID int
	fields  []SortField
}

// Unsorted returns the sentinel order describing data with no ordering
// guarantee. It always has order ID 0 and no fields.
func Unsorted() SortOrder {
	return SortOrder{orderID: UnsortedOrderID}
}

// OrderID returns the table-scoped ID of this SortOrder
func (o SortOrder) OrderID() int { return o.orderID }

// Fields returns the sort rules of this SortOrder, most significant first
func (o SortOrder) Fields() []SortField {
	fields := make([]SortField, len(o.fields))
	copy(fields, o.fields)
	return fields
}

// NumFields returns the number of sort rules in this SortOrder
func (o SortOrder) NumFields() int { return len(o.fields) }

// IsUnsorted returns true iff this SortOrder guarantees no ordering
func (o SortOrder) IsUnsorted() bool { return len(o.fields) == 0 }

// IsSorted returns true iff this SortOrder has at least one sort rule
func (o SortOrder) IsSorted() bool { return len(o.fields) > 0 }

// Equals returns true iff this and another SortOrder are structurally
// identical, including their order IDs. Use SameOrder for logical equivalence.
func (o SortOrder) Equals(other SortOrder) bool {
	return o.orderID == other.orderID && o.SameOrder(other)
}

// SameOrder returns true iff this and another SortOrder have element-wise equal
// field lists, ignoring their order IDs entirely. Two differently-numbered
// orders with the same fields are interchangeable everywhere except registry
// lookup.
func (o SortOrder) SameOrder(other SortOrder) bool {
	if len(o.fields) != len(other.fields) {
		return false
	}
	for i, f := range o.fields {
		if !f.Equals(other.fields[i]) {
			return false
		}
	}
	return true
}

// Satisfies returns true iff data laid out under this SortOrder can be consumed
// wherever data laid out under required is expected, without re-sorting. Every
// order satisfies the unsorted order; the unsorted order satisfies only itself.
// Otherwise required's fields must be a prefix of this order's fields, so a
// more specific order satisfies any less specific prefix of itself.
func (o SortOrder) Satisfies(required SortOrder) bool {
	if required.IsUnsorted() {
		return true
	}
	if len(o.fields) < len(required.fields) {
		return false
	}
	for i, f := range required.fields {
		if !o.fields[i].Equals(f) {
			return false
		}
	}
	return true
}

// String returns a textual representation of this SortOrder
func (o SortOrder) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, f := range o.fields {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  " + f.String())
	}
	sb.WriteString("]")
	return sb.String()
}
