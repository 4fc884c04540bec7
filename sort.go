package tabular

// SortDirection indicates whether a sort rule orders values ascending or descending
type SortDirection int

const (
	// Ascending indicates that a sort rule orders values smallest-first
	Ascending SortDirection = iota
	// Descending indicates that a sort rule orders values largest-first
	Descending
)

// String returns the serialized form of a SortDirection
func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// NullOrder indicates where a sort rule places null values relative to non-null values
type NullOrder int

const (
	// NullsFirst indicates that null values sort before all non-null values
	NullsFirst NullOrder = iota
	// NullsLast indicates that null values sort after all non-null values
	NullsLast
)

// String returns the serialized form of a NullOrder
func (n NullOrder) String() string {
	if n == NullsLast {
		return "nulls-last"
	}
	return "nulls-first"
}

// DefaultNullOrder returns the SQL-convention null placement for a sort direction:
// ascending sorts default to nulls-first, descending sorts to nulls-last.
func DefaultNullOrder(d SortDirection) NullOrder {
	if d == Descending {
		return NullsLast
	}
	return NullsFirst
}
