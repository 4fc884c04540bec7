// Package partition models how a table's data files are split into partitions:
// a list of transformed field references, each producing one partition key
// column. Spec IDs and partition field IDs live in their own table-scoped
// namespaces, independent of schema field IDs and of sort order IDs.
package partition

import (
	"fmt"
	"strings"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
)

const (
	// UnpartitionedSpecID is the spec ID of the unpartitioned sentinel and the
	// first ID minted in a table's spec namespace.
	UnpartitionedSpecID = 0
	// InitialFieldID is the ID of the first partition key column. Partition
	// field IDs start high so they never collide with schema field IDs in
	// persisted column metadata.
	InitialFieldID = 1000
)

// Field is a single partition rule: a transform applied to a source schema
// field, producing a named partition key column with its own ID.
type Field struct {
	sourceID  int
	fieldID   int
	name      string
	transform tabular.Transform
}

// SourceID returns the stable schema field ID this rule partitions by
func (f Field) SourceID() int { return f.sourceID }

// FieldID returns the ID of the partition key column this rule produces
func (f Field) FieldID() int { return f.fieldID }

// Name returns the name of the partition key column this rule produces
func (f Field) Name() string { return f.name }

// Transform returns the transform applied to the source field
func (f Field) Transform() tabular.Transform { return f.transform }

// Equals returns true iff this and another Field are identical
func (f Field) Equals(other Field) bool {
	return f.sourceID == other.sourceID &&
		f.fieldID == other.fieldID &&
		f.name == other.name &&
		tabular.SameTransform(f.transform, other.transform)
}

// String returns a textual representation of this Field
func (f Field) String() string {
	return fmt.Sprintf("%d: %s: %s(%d)", f.fieldID, f.name, f.transform, f.sourceID)
}

// Spec is an immutable partition specification: an ordered list of partition
// rules plus a table-scoped spec ID.
type Spec struct {
	specID int
	fields []Field
}

// Unpartitioned returns the sentinel Spec describing a table with a single
// partition holding all data
func Unpartitioned() Spec {
	return Spec{specID: UnpartitionedSpecID}
}

// SpecID returns the table-scoped ID of this Spec
func (s Spec) SpecID() int { return s.specID }

// Fields returns the partition rules of this Spec, in definition order
func (s Spec) Fields() []Field {
	fields := make([]Field, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// IsUnpartitioned returns true iff this Spec produces a single partition
func (s Spec) IsUnpartitioned() bool { return len(s.fields) == 0 }

// SamePartitioning returns true iff this and another Spec partition data the
// same way, ignoring their spec IDs
func (s Spec) SamePartitioning(other Spec) bool {
	if len(s.fields) != len(other.fields) {
		return false
	}
	for i, f := range s.fields {
		if !f.Equals(other.fields[i]) {
			return false
		}
	}
	return true
}

// Equals returns true iff this and another Spec are structurally identical,
// including their spec IDs
func (s Spec) Equals(other Spec) bool {
	return s.specID == other.specID && s.SamePartitioning(other)
}

// String returns a textual representation of this Spec
func (s Spec) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, f := range s.fields {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  " + f.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// Rebind translates a Spec built against oldSchema into one valid under
// newSchema, re-resolving each rule's source field by path. Partition key
// column IDs are re-minted from InitialFieldID; the spec ID is preserved.
func Rebind(spec Spec, oldSchema tabular.Schema, newSchema tabular.Schema) (Spec, error) {
	if spec.IsUnpartitioned() {
		return spec, nil
	}

	fields := make([]Field, 0, len(spec.fields))
	for i, f := range spec.fields {
		path, err := oldSchema.PathByID(f.sourceID)
		if err != nil {
			return Spec{}, errors.ValidationError{Message: fmt.Sprintf(
				"Cannot find source column: %d", f.sourceID)}
		}
		sourceID, err := newSchema.FieldID(path)
		if err != nil {
			return Spec{}, errors.ValidationError{Message: fmt.Sprintf(
				"Cannot find column '%s' in the new schema", path)}
		}
		fields = append(fields, Field{
			sourceID:  sourceID,
			fieldID:   InitialFieldID + i,
			name:      f.name,
			transform: f.transform,
		})
	}
	return Spec{specID: spec.specID, fields: fields}, nil
}

// WithSpecID returns a copy of spec carrying the given spec ID
func WithSpecID(spec Spec, specID int) Spec {
	return Spec{specID: specID, fields: spec.fields}
}
