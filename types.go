package tabular

import (
	"fmt"
)

// TypeID identifies a kind of value type, independent of any type parameters.
type TypeID int

const (
	// BooleanTypeID indicates the ID of a boolean Type
	BooleanTypeID TypeID = iota
	// IntTypeID indicates the ID of a 32-bit integer Type
	IntTypeID
	// LongTypeID indicates the ID of a 64-bit integer Type
	LongTypeID
	// FloatTypeID indicates the ID of a 32-bit floating point Type
	FloatTypeID
	// DoubleTypeID indicates the ID of a 64-bit floating point Type
	DoubleTypeID
	// DateTypeID indicates the ID of a calendar date Type
	DateTypeID
	// TimestampTypeID indicates the ID of a microsecond-precision timestamp Type
	TimestampTypeID
	// StringTypeID indicates the ID of a UTF-8 string Type
	StringTypeID
	// UUIDTypeID indicates the ID of a universally unique identifier Type
	UUIDTypeID
	// BinaryTypeID indicates the ID of an arbitrary-length byte sequence Type
	BinaryTypeID
	// FixedTypeID indicates the ID of a fixed-length byte sequence Type
	FixedTypeID
	// DecimalTypeID indicates the ID of a fixed-precision decimal Type
	DecimalTypeID
	// StructTypeID indicates the ID of a struct Type
	StructTypeID
	// ListTypeID indicates the ID of a list Type
	ListTypeID
	// MapTypeID indicates the ID of a map Type
	MapTypeID
)

// Type describes the value type of a schema field. Tabular provides primitive
// types in this package as empty structs, and nested types (struct, list, map)
// which carry their own uniquely-identified children.
type Type interface {
	ID() TypeID     // returns the TypeID of this Type
	String() string // produces the canonical string representation of this Type
}

// IsNested returns true iff t is a struct, list or map Type
func IsNested(t Type) bool {
	switch t.ID() {
	case StructTypeID, ListTypeID, MapTypeID:
		return true
	default:
		return false
	}
}

// IsPrimitive returns true iff t is not a nested Type
func IsPrimitive(t Type) bool {
	return !IsNested(t)
}

// BooleanType is the type of true/false values
type BooleanType struct{}

// ID returns the TypeID of a BooleanType
func (t BooleanType) ID() TypeID { return BooleanTypeID }

// String returns the canonical representation of a BooleanType
func (t BooleanType) String() string { return "boolean" }

// IntType is the type of 32-bit signed integers
type IntType struct{}

// ID returns the TypeID of an IntType
func (t IntType) ID() TypeID { return IntTypeID }

// String returns the canonical representation of an IntType
func (t IntType) String() string { return "int" }

// LongType is the type of 64-bit signed integers
type LongType struct{}

// ID returns the TypeID of a LongType
func (t LongType) ID() TypeID { return LongTypeID }

// String returns the canonical representation of a LongType
func (t LongType) String() string { return "long" }

// FloatType is the type of 32-bit floating point values
type FloatType struct{}

// ID returns the TypeID of a FloatType
func (t FloatType) ID() TypeID { return FloatTypeID }

// String returns the canonical representation of a FloatType
func (t FloatType) String() string { return "float" }

// DoubleType is the type of 64-bit floating point values
type DoubleType struct{}

// ID returns the TypeID of a DoubleType
func (t DoubleType) ID() TypeID { return DoubleTypeID }

// String returns the canonical representation of a DoubleType
func (t DoubleType) String() string { return "double" }

// DateType is the type of calendar dates without a time or timezone
type DateType struct{}

// ID returns the TypeID of a DateType
func (t DateType) ID() TypeID { return DateTypeID }

// String returns the canonical representation of a DateType
func (t DateType) String() string { return "date" }

// TimestampType is the type of microsecond-precision timestamps
type TimestampType struct{}

// ID returns the TypeID of a TimestampType
func (t TimestampType) ID() TypeID { return TimestampTypeID }

// String returns the canonical representation of a TimestampType
func (t TimestampType) String() string { return "timestamp" }

// StringType is the type of UTF-8 character sequences
type StringType struct{}

// ID returns the TypeID of a StringType
func (t StringType) ID() TypeID { return StringTypeID }

// String returns the canonical representation of a StringType
func (t StringType) String() string { return "string" }

// UUIDType is the type of universally unique identifiers
type UUIDType struct{}

// ID returns the TypeID of a UUIDType
func (t UUIDType) ID() TypeID { return UUIDTypeID }

// String returns the canonical representation of a UUIDType
func (t UUIDType) String() string { return "uuid" }

// BinaryType is the type of arbitrary-length byte sequences
type BinaryType struct{}

// ID returns the TypeID of a BinaryType
func (t BinaryType) ID() TypeID { return BinaryTypeID }

// String returns the canonical representation of a BinaryType
func (t BinaryType) String() string { return "binary" }

// FixedType is the type of fixed-length byte sequences
type FixedType struct {
	Length int
}

// ID returns the TypeID of a FixedType
func (t FixedType) ID() TypeID { return FixedTypeID }

// String returns the canonical representation of a FixedType
func (t FixedType) String() string { return fmt.Sprintf("fixed[%d]", t.Length) }

// DecimalType is the type of fixed-precision, fixed-scale decimal numbers
type DecimalType struct {
	Precision int
	Scale     int
}

// ID returns the TypeID of a DecimalType
func (t DecimalType) ID() TypeID { return DecimalTypeID }

// String returns the canonical representation of a DecimalType
func (t DecimalType) String() string {
	return fmt.Sprintf("decimal(%d, %d)", t.Precision, t.Scale)
}

// SameType returns true iff two Types are identical, including type parameters
// and, for nested types, child field identity.
func SameType(a Type, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
