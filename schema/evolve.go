package schema

import (
	"fmt"
	"strings"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
)

// AddColumn returns a new Schema with a field named name appended to the struct at
// parent ("" for the top level). The new field, and every child nested inside its
// type, is assigned a fresh ID above the schema's high-water mark.
func (s *schema) AddColumn(parent string, name string, fieldType tabular.Type, required bool) (tabular.Schema, error) {
	if s.HasField(joinPath(parent, name)) {
		return nil, errors.InvalidArgumentError{Reason: fmt.Sprintf("cannot add column, name already exists: %s", joinPath(parent, name))}
	}

	next := s.highestID
	nextID := func() int {
		next++
		return next
	}
	added := tabular.NestedField{
		ID:       nextID(),
		Name:     name,
		Type:     freshType(fieldType, nextID),
		Required: required,
	}

	if parent == "" {
		fields := append(s.Fields(), added)
		return newSchema(fields, next)
	}

	parentField, err := s.FindField(parent)
	if err != nil {
		return nil, err
	}
	if _, ok := structOf(parentField.Type); !ok {
		return nil, errors.InvalidArgumentError{Reason: fmt.Sprintf("cannot add column to non-struct field: %s", parent)}
	}

	fields, err := rewriteFields(s.fields, "", func(path string, f tabular.NestedField) (*tabular.NestedField, error) {
		if path != parent {
			return &f, nil
		}
		appended := appendToStruct(f, added)
		return &appended, nil
	})
	if err != nil {
		return nil, err
	}
	return newSchema(fields, next)
}

// RenameColumn returns a new Schema with the field at path renamed to newName. The
// field keeps its stable ID, so sort orders and partition specs referencing it are
// unaffected. Fails if newName collides with a sibling.
func (s *schema) RenameColumn(path string, newName string) (tabular.Schema, error) {
	if _, err := s.FindField(path); err != nil {
		return nil, err
	}
	if s.HasField(joinPath(parentPath(path), newName)) {
		return nil, errors.InvalidArgumentError{Reason: fmt.Sprintf("cannot rename column, name already exists: %s", joinPath(parentPath(path), newName))}
	}

	fields, err := rewriteFields(s.fields, "", func(p string, f tabular.NestedField) (*tabular.NestedField, error) {
		if p == path {
			f.Name = newName
		}
		return &f, nil
	})
	if err != nil {
		return nil, err
	}
	return newSchema(fields, s.highestID)
}

// DropColumn returns a new Schema without the field at path. The dropped field's ID
// (and the IDs of everything nested under it) stay above the high-water mark and are
// never minted again. The schema itself does not know about sort orders; rejecting
// drops of referenced fields is the table metadata's job.
func (s *schema) DropColumn(path string) (tabular.Schema, error) {
	if _, err := s.FindField(path); err != nil {
		return nil, err
	}

	fields, err := rewriteFields(s.fields, "", func(p string, f tabular.NestedField) (*tabular.NestedField, error) {
		if p == path {
			return nil, nil
		}
		return &f, nil
	})
	if err != nil {
		return nil, err
	}
	return newSchema(fields, s.highestID)
}

// rewriteFields rebuilds a field tree, applying fn to every addressable field.
// fn may replace a field or drop it by returning nil; dropped fields are not
// descended into.
func rewriteFields(fields []tabular.NestedField, prefix string, fn func(path string, f tabular.NestedField) (*tabular.NestedField, error)) ([]tabular.NestedField, error) {
	out := make([]tabular.NestedField, 0, len(fields))
	for _, f := range fields {
		path := joinPath(prefix, f.Name)
		rf, err := fn(path, f)
		if err != nil {
			return nil, err
		}
		if rf == nil {
			continue
		}
		nf := *rf
		rewritten, err := rewriteType(nf.Type, path, fn)
		if err != nil {
			return nil, err
		}
		nf.Type = rewritten
		out = append(out, nf)
	}
	return out, nil
}

func rewriteType(t tabular.Type, path string, fn func(path string, f tabular.NestedField) (*tabular.NestedField, error)) (tabular.Type, error) {
	switch t := t.(type) {
	case tabular.StructType:
		children, err := rewriteFields(t.FieldList, path, fn)
		if err != nil {
			return nil, err
		}
		return tabular.StructType{FieldList: children}, nil
	case tabular.ListType:
		element, err := rewriteType(t.Element, path, fn)
		if err != nil {
			return nil, err
		}
		t.Element = element
		return t, nil
	case tabular.MapType:
		value, err := rewriteType(t.Value, path, fn)
		if err != nil {
			return nil, err
		}
		t.Value = value
		return t, nil
	}
	return t, nil
}

// structOf unwraps a field type to the struct its children live in, traversing
// list element and map value levels.
func structOf(t tabular.Type) (tabular.StructType, bool) {
	switch t := t.(type) {
	case tabular.StructType:
		return t, true
	case tabular.ListType:
		return structOf(t.Element)
	case tabular.MapType:
		return structOf(t.Value)
	}
	return tabular.StructType{}, false
}

// appendToStruct returns a copy of f with added appended to its child struct.
func appendToStruct(f tabular.NestedField, added tabular.NestedField) tabular.NestedField {
	f.Type = appendToStructType(f.Type, added)
	return f
}

func appendToStructType(t tabular.Type, added tabular.NestedField) tabular.Type {
	switch t := t.(type) {
	case tabular.StructType:
		fields := make([]tabular.NestedField, len(t.FieldList), len(t.FieldList)+1)
		copy(fields, t.FieldList)
		return tabular.StructType{FieldList: append(fields, added)}
	case tabular.ListType:
		t.Element = appendToStructType(t.Element, added)
		return t
	case tabular.MapType:
		t.Value = appendToStructType(t.Value, added)
		return t
	}
	return t
}

func parentPath(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}
