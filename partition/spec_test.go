package partition

import (
	"testing"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
	"github.com/go-tabular/tabular/schema"
	"github.com/stretchr/testify/require"
)

func createTestSchema(t *testing.T) tabular.Schema {
	s, err := schema.CreateSchema(
		tabular.RequiredField(10, "id", tabular.IntType{}),
		tabular.RequiredField(11, "data", tabular.StringType{}),
		tabular.RequiredField(12, "ts", tabular.TimestampType{}),
	)
	require.Nil(t, err)
	return s
}

func TestSpecBuilder(t *testing.T) {
	s := createTestSchema(t)

	spec, err := BuilderFor(s).
		WithSpecID(5).
		Identity("data").
		Bucket("id", 16).
		Build()
	require.Nil(t, err)

	require.Equal(t, 5, spec.SpecID())
	fields := spec.Fields()
	require.Equal(t, 2, len(fields))

	// partition field IDs live in their own namespace, starting at 1000
	require.Equal(t, 1000, fields[0].FieldID())
	require.Equal(t, 11, fields[0].SourceID())
	require.Equal(t, "data", fields[0].Name())
	require.Equal(t, 1001, fields[1].FieldID())
	require.Equal(t, "id_bucket", fields[1].Name())
	require.Equal(t, "bucket[16]", fields[1].Transform().String())
}

func TestSpecBuilderErrors(t *testing.T) {
	s := createTestSchema(t)

	_, err := BuilderFor(s).Identity("missing").Build()
	require.True(t, errors.IsNotFound(err))

	_, err = BuilderFor(s).Bucket("data", 8).Bucket("data", 4).Build()
	require.True(t, errors.IsInvalidArgument(err))

	_, err = BuilderFor(s).Truncate("ts", 10).Build()
	require.True(t, errors.IsValidation(err))
}

func TestUnpartitioned(t *testing.T) {
	spec := Unpartitioned()
	require.True(t, spec.IsUnpartitioned())
	require.Equal(t, UnpartitionedSpecID, spec.SpecID())

	built, err := BuilderFor(createTestSchema(t)).Build()
	require.Nil(t, err)
	require.True(t, built.Equals(spec))
}

func TestSamePartitioningIgnoresSpecID(t *testing.T) {
	s := createTestSchema(t)

	a, err := BuilderFor(s).WithSpecID(1).Identity("data").Build()
	require.Nil(t, err)
	b, err := BuilderFor(s).WithSpecID(2).Identity("data").Build()
	require.Nil(t, err)

	require.True(t, a.SamePartitioning(b))
	require.False(t, a.Equals(b))
}

func TestSpecRebind(t *testing.T) {
	oldSchema := createTestSchema(t)
	newSchema, err := schema.CreateSchema(
		tabular.RequiredField(1, "id", tabular.IntType{}),
		tabular.RequiredField(2, "data", tabular.StringType{}),
	)
	require.Nil(t, err)

	spec, err := BuilderFor(oldSchema).WithSpecID(5).Identity("data").Build()
	require.Nil(t, err)

	bound, err := Rebind(spec, oldSchema, newSchema)
	require.Nil(t, err)
	require.Equal(t, 5, bound.SpecID())
	require.Equal(t, 2, bound.Fields()[0].SourceID())
	require.Equal(t, 1000, bound.Fields()[0].FieldID())

	// a spec referencing a column the new schema lacks cannot be rebound
	badSpec, err := BuilderFor(oldSchema).Identity("ts").Build()
	require.Nil(t, err)
	_, err = Rebind(badSpec, oldSchema, newSchema)
	require.True(t, errors.IsValidation(err))
}
