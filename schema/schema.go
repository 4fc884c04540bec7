package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
)

// schema is an index over a tree of NestedFields. It resolves dotted paths
// to stable field IDs and IDs back to fields and paths. A schema is never
// modified after construction; the evolution methods return new schemas.
type schema struct {
	fields    []tabular.NestedField
	highestID int
	idToField map[int]tabular.NestedField
	idToPath  map[int]string
	pathToID  map[string]int
}

// CreateSchema is a factory for Schemas. Field IDs must be unique across the
// whole tree (including list element and map key/value IDs) and names must be
// unique among siblings, or an InvalidArgumentError is returned.
func CreateSchema(fields ...tabular.NestedField) (tabular.Schema, error) {
	return newSchema(fields, 0)
}

// newSchema builds and indexes a schema. floor raises the ID high-water mark
// above the largest ID present in the tree, so dropped IDs are never reused.
func newSchema(fields []tabular.NestedField, floor int) (*schema, error) {
	s := &schema{
		fields:    fields,
		idToField: make(map[int]tabular.NestedField),
		idToPath:  make(map[int]string),
		pathToID:  make(map[string]int),
	}
	if err := s.indexFields("", fields); err != nil {
		return nil, err
	}
	if floor > s.highestID {
		s.highestID = floor
	}
	return s, nil
}

func (s *schema) indexFields(prefix string, fields []tabular.NestedField) error {
	for _, f := range fields {
		path := joinPath(prefix, f.Name)
		if _, exists := s.pathToID[path]; exists {
			return errors.InvalidArgumentError{Reason: fmt.Sprintf("duplicate field name: %s", path)}
		}
		if _, exists := s.idToField[f.ID]; exists {
			return errors.InvalidArgumentError{Reason: fmt.Sprintf("duplicate field id: %d", f.ID)}
		}
		s.pathToID[path] = f.ID
		s.idToField[f.ID] = f
		s.idToPath[f.ID] = path
		if f.ID > s.highestID {
			s.highestID = f.ID
		}
		if err := s.indexType(path, f.Type); err != nil {
			return err
		}
	}
	return nil
}

// indexType indexes the children of nested types. Children of a list element
// struct (or map value struct) are addressed with the short path, skipping the
// synthetic element level: "s.b.i", not "s.b.element.i".
func (s *schema) indexType(path string, t tabular.Type) error {
	switch t := t.(type) {
	case tabular.StructType:
		return s.indexFields(path, t.FieldList)
	case tabular.ListType:
		s.trackSlotID(t.ElementID)
		return s.indexType(path, t.Element)
	case tabular.MapType:
		s.trackSlotID(t.KeyID)
		s.trackSlotID(t.ValueID)
		if err := s.indexType(path, t.Key); err != nil {
			return err
		}
		return s.indexType(path, t.Value)
	}
	return nil
}

// trackSlotID counts a list element or map key/value slot ID toward the
// high-water mark without giving it an addressable path.
func (s *schema) trackSlotID(id int) {
	if id > s.highestID {
		s.highestID = id
	}
}

// Fields returns the top-level fields of this Schema, in definition order
func (s *schema) Fields() []tabular.NestedField {
	fields := make([]tabular.NestedField, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// NumFields returns the number of fields in the whole tree, including nested ones
func (s *schema) NumFields() int {
	return len(s.idToField)
}

// HighestFieldID returns the ID high-water mark of this Schema
func (s *schema) HighestFieldID() int {
	return s.highestID
}

// HasField returns true iff the dotted path resolves to a field
func (s *schema) HasField(path string) bool {
	_, ok := s.pathToID[path]
	return ok
}

// FindField resolves a dotted path to a NestedField
func (s *schema) FindField(path string) (tabular.NestedField, error) {
	id, ok := s.pathToID[path]
	if !ok {
		return tabular.NestedField{}, errors.NotFoundError{Path: path}
	}
	return s.idToField[id], nil
}

// FieldID resolves a dotted path to a stable field ID
func (s *schema) FieldID(path string) (int, error) {
	id, ok := s.pathToID[path]
	if !ok {
		return 0, errors.NotFoundError{Path: path}
	}
	return id, nil
}

// FindFieldByID returns the field carrying the given stable ID
func (s *schema) FindFieldByID(id int) (tabular.NestedField, error) {
	f, ok := s.idToField[id]
	if !ok {
		return tabular.NestedField{}, errors.NotFoundError{Path: strconv.Itoa(id)}
	}
	return f, nil
}

// PathByID returns the dotted path of the field carrying the given stable ID
func (s *schema) PathByID(id int) (string, error) {
	path, ok := s.idToPath[id]
	if !ok {
		return "", errors.NotFoundError{Path: strconv.Itoa(id)}
	}
	return path, nil
}

// Equals returns true iff this and another Schema hold identical field trees
func (s *schema) Equals(other tabular.Schema) bool {
	if other == nil {
		return false
	}
	otherFields := other.Fields()
	if len(s.fields) != len(otherFields) {
		return false
	}
	for i, f := range s.fields {
		if !f.Equals(otherFields[i]) {
			return false
		}
	}
	return true
}

// String returns a textual representation of this Schema
func (s *schema) String() string {
	var sb strings.Builder
	sb.WriteString("table {")
	for _, f := range s.fields {
		sb.WriteString("\n  ")
		sb.WriteString(f.String())
	}
	sb.WriteString("\n}")
	return sb.String()
}

func joinPath(prefix string, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
