package partition

import (
	"fmt"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
	"github.com/go-tabular/tabular/transform"
)

// Builder accumulates partition rules against a bound Schema snapshot, resolving
// each source field path to its stable ID at the call, in the same eager style
// as the sort order builder. Partition key column IDs are assigned from
// InitialFieldID in rule order.
type Builder struct {
	schema tabular.Schema
	fields []Field
	specID int
	names  map[string]bool
	err    error
}

// BuilderFor returns a Builder bound to the given Schema snapshot
func BuilderFor(s tabular.Schema) *Builder {
	return &Builder{schema: s, specID: UnpartitionedSpecID, names: make(map[string]bool)}
}

// WithSpecID requests an explicit spec ID for the built Spec
func (b *Builder) WithSpecID(id int) *Builder {
	b.specID = id
	return b
}

// Identity appends a rule partitioning by a field's untransformed value. The
// partition key column keeps the source field's name.
func (b *Builder) Identity(path string) *Builder {
	return b.add(path, lastPathPart(path), transform.Identity())
}

// Truncate appends a rule partitioning by a fixed-width prefix of a field's value
func (b *Builder) Truncate(path string, width int) *Builder {
	return b.add(path, fmt.Sprintf("%s_trunc", lastPathPart(path)), transform.Truncate(width))
}

// Bucket appends a rule partitioning by the bucket number of a field's value
func (b *Builder) Bucket(path string, buckets int) *Builder {
	return b.add(path, fmt.Sprintf("%s_bucket", lastPathPart(path)), transform.Bucket(buckets))
}

func (b *Builder) add(path string, name string, t tabular.Transform) *Builder {
	if b.err != nil {
		return b
	}
	sourceID, err := b.schema.FieldID(path)
	if err != nil {
		b.err = err
		return b
	}
	field, err := b.schema.FindFieldByID(sourceID)
	if err != nil {
		b.err = err
		return b
	}
	if !t.AppliesTo(field.Type) {
		b.err = errors.ValidationError{Message: fmt.Sprintf(
			"Invalid partition transform: %s cannot be applied to %s (%s)", t, path, field.Type)}
		return b
	}
	if b.names[name] {
		b.err = errors.InvalidArgumentError{Reason: fmt.Sprintf("duplicate partition name: %s", name)}
		return b
	}
	b.names[name] = true
	b.fields = append(b.fields, Field{
		sourceID:  sourceID,
		fieldID:   InitialFieldID + len(b.fields),
		name:      name,
		transform: t,
	})
	return b
}

// Build returns the immutable Spec described by the accumulated rules
func (b *Builder) Build() (Spec, error) {
	if b.err != nil {
		return Spec{}, b.err
	}
	if len(b.fields) == 0 {
		return Spec{specID: b.specID}, nil
	}
	fields := make([]Field, len(b.fields))
	copy(fields, b.fields)
	return Spec{specID: b.specID, fields: fields}, nil
}

func lastPathPart(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return path
}
