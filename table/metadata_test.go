package table

import (
	"testing"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
	"github.com/go-tabular/tabular/partition"
	"github.com/go-tabular/tabular/schema"
	"github.com/go-tabular/tabular/sortorder"
	"github.com/stretchr/testify/require"
)

// column IDs will be reassigned during table creation
func createUserSchema(t *testing.T) tabular.Schema {
	s, err := schema.CreateSchema(
		tabular.RequiredField(10, "id", tabular.IntType{}),
		tabular.RequiredField(11, "data", tabular.StringType{}),
		tabular.OptionalField(12, "s", tabular.StructOf(
			tabular.RequiredField(17, "id", tabular.IntType{}),
			tabular.OptionalField(18, "b", tabular.ListOfOptional(3, tabular.StructOf(
				tabular.OptionalField(19, "i", tabular.IntType{}),
				tabular.OptionalField(20, "s", tabular.StringType{}),
			))),
		)),
		tabular.RequiredField(30, "ext", tabular.StringType{}),
	)
	require.Nil(t, err)
	return s
}

func TestDefaultOrder(t *testing.T) {
	userSchema := createUserSchema(t)

	m, err := NewMetadata(userSchema, partition.Unpartitioned(), sortorder.Unsorted())
	require.Nil(t, err)

	require.Equal(t, 1, len(m.SortOrders()))
	actual := m.SortOrder()
	require.Equal(t, sortorder.UnsortedOrderID, actual.OrderID())
	require.True(t, actual.IsUnsorted())
}

func TestFreshIDs(t *testing.T) {
	userSchema := createUserSchema(t)

	spec, err := partition.BuilderFor(userSchema).
		WithSpecID(5).
		Identity("data").
		Build()
	require.Nil(t, err)

	order, err := sortorder.BuilderFor(userSchema).
		WithOrderID(10).
		Asc("s.id", tabular.NullsLast).
		Desc(sortorder.Truncated("data", 10), tabular.NullsFirst).
		Build()
	require.Nil(t, err)

	m, err := NewMetadata(userSchema, spec, order)
	require.Nil(t, err)

	require.Equal(t, 1, len(m.SortOrders()))
	_, ok := m.SortOrderByID(InitialSortOrderID)
	require.True(t, ok)

	actual := m.SortOrder()
	require.Equal(t, InitialSortOrderID, actual.OrderID())
	require.Equal(t, 2, actual.NumFields())
	// source IDs follow the table's canonical schema, not the user's
	require.Equal(t, 5, actual.Fields()[0].SourceID())
	require.Equal(t, 2, actual.Fields()[1].SourceID())

	// the partition spec is rebound the same way
	require.Equal(t, 2, m.Spec().Fields()[0].SourceID())
	require.Equal(t, 9, m.LastColumnID())
}

func TestFreshIDsUnresolvableOrder(t *testing.T) {
	userSchema := createUserSchema(t)

	order, err := sortorder.BuilderFor(userSchema).Asc("ext").Build()
	require.Nil(t, err)

	// the order references a column the table's schema no longer has
	trimmed, err := userSchema.DropColumn("ext")
	require.Nil(t, err)

	_, err = NewMetadata(trimmed, partition.Unpartitioned(), order)
	require.NotNil(t, err)
	require.True(t, errors.IsValidation(err))
}

func TestAttachSortOrder(t *testing.T) {
	userSchema := createUserSchema(t)

	m, err := NewMetadata(userSchema, partition.Unpartitioned(), sortorder.Unsorted())
	require.Nil(t, err)

	order, err := sortorder.BuilderFor(m.Schema()).Asc("s.id").Build()
	require.Nil(t, err)

	m2, orderID, err := m.AttachSortOrder(order)
	require.Nil(t, err)
	require.Equal(t, InitialSortOrderID, orderID)
	require.Equal(t, 2, len(m2.SortOrders()))
	require.Equal(t, orderID, m2.SortOrder().OrderID())

	// the base snapshot is untouched
	require.Equal(t, 1, len(m.SortOrders()))
	require.True(t, m.SortOrder().IsUnsorted())

	// attaching an equivalent order reuses the registered entry
	same, err := sortorder.BuilderFor(m2.Schema()).WithOrderID(99).Asc("s.id").Build()
	require.Nil(t, err)
	m3, sameID, err := m2.AttachSortOrder(same)
	require.Nil(t, err)
	require.Equal(t, orderID, sameID)
	require.Equal(t, 2, len(m3.SortOrders()))

	// a distinct order takes the next ID in the namespace
	other, err := sortorder.BuilderFor(m2.Schema()).Desc("data").Build()
	require.Nil(t, err)
	m4, otherID, err := m3.AttachSortOrder(other)
	require.Nil(t, err)
	require.Equal(t, InitialSortOrderID+1, otherID)
	require.Equal(t, 3, len(m4.SortOrders()))

	// flipping back to unsorted reuses the reserved entry
	m5, unsortedID, err := m4.AttachSortOrder(sortorder.Unsorted())
	require.Nil(t, err)
	require.Equal(t, sortorder.UnsortedOrderID, unsortedID)
	require.True(t, m5.SortOrder().IsUnsorted())

	// historical orders stay reachable by ID
	historical, ok := m5.SortOrderByID(otherID)
	require.True(t, ok)
	require.True(t, historical.SameOrder(other))
}

func TestAttachSortOrderUnknownColumn(t *testing.T) {
	userSchema := createUserSchema(t)

	m, err := NewMetadata(userSchema, partition.Unpartitioned(), sortorder.Unsorted())
	require.Nil(t, err)

	// built against the user schema, so its IDs mean nothing to the table
	order, err := sortorder.BuilderFor(userSchema).Asc("ext").Build()
	require.Nil(t, err)

	// ext resolves to 30 in the user schema; the canonical schema tops out at 9
	_, _, err = m.AttachSortOrder(order)
	require.NotNil(t, err)
	require.True(t, errors.IsValidation(err))
	require.Contains(t, err.Error(), "Cannot find source column")
}

func TestSchemaEvolutionWithSortOrder(t *testing.T) {
	userSchema := createUserSchema(t)

	order, err := sortorder.BuilderFor(userSchema).
		WithOrderID(10).
		Asc("s.id").
		Desc(sortorder.Truncated("data", 10)).
		Build()
	require.Nil(t, err)

	m, err := NewMetadata(userSchema, partition.Unpartitioned(), order)
	require.Nil(t, err)

	m2, err := m.RenameColumn("s.id", "id2")
	require.Nil(t, err)

	// the order still references the renamed column by its stable ID
	actual := m2.SortOrder()
	require.Equal(t, InitialSortOrderID, actual.OrderID())
	require.Equal(t, 2, actual.NumFields())
	require.Equal(t, 5, actual.Fields()[0].SourceID())
	require.Equal(t, 2, actual.Fields()[1].SourceID())

	id, err := m2.Schema().FieldID("s.id2")
	require.Nil(t, err)
	require.Equal(t, 5, id)
}

func TestIncompatibleSchemaEvolutionWithSortOrder(t *testing.T) {
	userSchema := createUserSchema(t)

	order, err := sortorder.BuilderFor(userSchema).
		WithOrderID(10).
		Asc("s.id").
		Desc(sortorder.Truncated("data", 10)).
		Build()
	require.Nil(t, err)

	m, err := NewMetadata(userSchema, partition.Unpartitioned(), order)
	require.Nil(t, err)

	_, err = m.DropColumns("s.id")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Cannot find source column")

	// nothing was committed
	require.True(t, m.Schema().HasField("s.id"))

	// a column no order references can be dropped
	m2, err := m.DropColumns("ext")
	require.Nil(t, err)
	require.False(t, m2.Schema().HasField("ext"))
	require.True(t, m.Schema().HasField("ext"))
}

func TestDropRejectedForPartitionSource(t *testing.T) {
	userSchema := createUserSchema(t)

	spec, err := partition.BuilderFor(userSchema).Identity("data").Build()
	require.Nil(t, err)

	m, err := NewMetadata(userSchema, spec, sortorder.Unsorted())
	require.Nil(t, err)

	_, err = m.DropColumns("data")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "partition field")
}

func TestDropChecksOnlyCurrentOrder(t *testing.T) {
	userSchema := createUserSchema(t)

	order, err := sortorder.BuilderFor(userSchema).Asc("ext").Build()
	require.Nil(t, err)

	m, err := NewMetadata(userSchema, partition.Unpartitioned(), order)
	require.Nil(t, err)

	// make a different order current; the ext order becomes historical
	replacement, err := sortorder.BuilderFor(m.Schema()).Asc("id").Build()
	require.Nil(t, err)
	m2, _, err := m.AttachSortOrder(replacement)
	require.Nil(t, err)

	// ext is only referenced by the historical order, so the drop commits
	m3, err := m2.DropColumns("ext")
	require.Nil(t, err)
	require.False(t, m3.Schema().HasField("ext"))
}

func TestDropCollectsAllViolations(t *testing.T) {
	userSchema := createUserSchema(t)

	order, err := sortorder.BuilderFor(userSchema).Asc("id").Desc("data").Build()
	require.Nil(t, err)

	m, err := NewMetadata(userSchema, partition.Unpartitioned(), order)
	require.Nil(t, err)

	_, err = m.DropColumns("id", "data")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "2 errors occurred")
}

func TestMetadataUUIDIsStablePerTable(t *testing.T) {
	userSchema := createUserSchema(t)

	m, err := NewMetadata(userSchema, partition.Unpartitioned(), sortorder.Unsorted())
	require.Nil(t, err)

	m2, err := m.RenameColumn("data", "payload")
	require.Nil(t, err)
	require.Equal(t, m.UUID(), m2.UUID())

	other, err := NewMetadata(createUserSchema(t), partition.Unpartitioned(), sortorder.Unsorted())
	require.Nil(t, err)
	require.NotEqual(t, m.UUID(), other.UUID())
}
