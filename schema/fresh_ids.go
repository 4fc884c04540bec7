package schema

import (
	"github.com/go-tabular/tabular"
)

// AssignFreshIDs returns a copy of s whose fields carry IDs minted by nextID. IDs are
// assigned to all fields of a struct before descending into any of them, so the
// top-level fields of a table always take the lowest IDs. Used at table creation to
// replace the transient IDs of a user-built schema with the table's canonical ones.
func AssignFreshIDs(s tabular.Schema, nextID func() int) (tabular.Schema, error) {
	return CreateSchema(freshFields(s.Fields(), nextID)...)
}

func freshFields(fields []tabular.NestedField, nextID func() int) []tabular.NestedField {
	ids := make([]int, len(fields))
	for i := range fields {
		ids[i] = nextID()
	}
	out := make([]tabular.NestedField, len(fields))
	for i, f := range fields {
		out[i] = tabular.NestedField{
			ID:       ids[i],
			Name:     f.Name,
			Type:     freshType(f.Type, nextID),
			Required: f.Required,
		}
	}
	return out
}

func freshType(t tabular.Type, nextID func() int) tabular.Type {
	switch t := t.(type) {
	case tabular.StructType:
		return tabular.StructType{FieldList: freshFields(t.FieldList, nextID)}
	case tabular.ListType:
		t.ElementID = nextID()
		t.Element = freshType(t.Element, nextID)
		return t
	case tabular.MapType:
		t.KeyID = nextID()
		t.ValueID = nextID()
		t.Key = freshType(t.Key, nextID)
		t.Value = freshType(t.Value, nextID)
		return t
	}
	return t
}
