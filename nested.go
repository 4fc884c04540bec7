package tabular

import (
	"fmt"
	"strings"
)

// NestedField is a single named, typed field within a StructType or Schema. Its ID is
// its stable identity: unique within a schema, permanent for the life of the field,
// unaffected by renames and never reused after the field is dropped.
type NestedField struct {
	ID       int
	Name     string
	Type     Type
	Required bool
}

// RequiredField returns a NestedField which may not hold null values
func RequiredField(id int, name string, fieldType Type) NestedField {
	return NestedField{ID: id, Name: name, Type: fieldType, Required: true}
}

// OptionalField returns a NestedField which may hold null values
func OptionalField(id int, name string, fieldType Type) NestedField {
	return NestedField{ID: id, Name: name, Type: fieldType, Required: false}
}

// Equals returns true iff this and another NestedField have the same identity,
// name, requiredness and type
func (f NestedField) Equals(other NestedField) bool {
	return f.ID == other.ID &&
		f.Name == other.Name &&
		f.Required == other.Required &&
		SameType(f.Type, other.Type)
}

// String returns a textual representation of this NestedField
func (f NestedField) String() string {
	req := "optional"
	if f.Required {
		req = "required"
	}
	return fmt.Sprintf("%d: %s: %s %s", f.ID, f.Name, req, f.Type)
}

// StructType is a nested Type holding an ordered sequence of NestedFields with
// unique names and IDs.
type StructType struct {
	FieldList []NestedField
}

// StructOf is a factory for StructTypes
func StructOf(fields ...NestedField) StructType {
	return StructType{FieldList: fields}
}

// ID returns the TypeID of a StructType
func (t StructType) ID() TypeID { return StructTypeID }

// Fields returns the NestedFields of this StructType, in definition order
func (t StructType) Fields() []NestedField { return t.FieldList }

// FieldByName returns the child NestedField with the given name, if one exists
func (t StructType) FieldByName(name string) (NestedField, bool) {
	for _, f := range t.FieldList {
		if f.Name == name {
			return f, true
		}
	}
	return NestedField{}, false
}

// String returns the canonical representation of a StructType
func (t StructType) String() string {
	var sb strings.Builder
	sb.WriteString("struct<")
	for i, f := range t.FieldList {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%d: %s: %s", f.ID, f.Name, f.Type))
	}
	sb.WriteString(">")
	return sb.String()
}

// ListType is a nested Type holding a sequence of identically-typed elements. The
// element slot carries its own stable ID, drawn from the same ID space as fields.
type ListType struct {
	ElementID       int
	Element         Type
	ElementRequired bool
}

// ListOfRequired returns a ListType whose elements may not be null
func ListOfRequired(elementID int, element Type) ListType {
	return ListType{ElementID: elementID, Element: element, ElementRequired: true}
}

// ListOfOptional returns a ListType whose elements may be null
func ListOfOptional(elementID int, element Type) ListType {
	return ListType{ElementID: elementID, Element: element, ElementRequired: false}
}

// ID returns the TypeID of a ListType
func (t ListType) ID() TypeID { return ListTypeID }

// String returns the canonical representation of a ListType
func (t ListType) String() string {
	return fmt.Sprintf("list<%d: %s>", t.ElementID, t.Element)
}

// MapType is a nested Type holding key/value pairs. Key and value slots carry their
// own stable IDs, drawn from the same ID space as fields.
type MapType struct {
	KeyID         int
	Key           Type
	ValueID       int
	Value         Type
	ValueRequired bool
}

// ID returns the TypeID of a MapType
func (t MapType) ID() TypeID { return MapTypeID }

// String returns the canonical representation of a MapType
func (t MapType) String() string {
	return fmt.Sprintf("map<%d: %s, %d: %s>", t.KeyID, t.Key, t.ValueID, t.Value)
}
