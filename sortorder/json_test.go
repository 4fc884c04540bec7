package sortorder

import (
	"testing"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
	"github.com/stretchr/testify/require"
)

func TestSortOrderJSONRoundTrip(t *testing.T) {
	s := createTestSchema(t)

	order, err := BuilderFor(s).WithOrderID(3).
		Asc("s.id", tabular.NullsLast).
		Desc(Truncated("data", 10), tabular.NullsFirst).
		Build()
	require.Nil(t, err)

	data, err := ToJSON(order)
	require.Nil(t, err)

	parsed, err := FromJSON(data)
	require.Nil(t, err)
	require.True(t, order.Equals(parsed))
}

func TestSortOrderJSONUnsorted(t *testing.T) {
	data, err := ToJSON(Unsorted())
	require.Nil(t, err)
	require.JSONEq(t, `{"order-id": 0, "fields": []}`, string(data))

	parsed, err := FromJSON(data)
	require.Nil(t, err)
	require.True(t, parsed.Equals(Unsorted()))
}

func TestSortOrderJSONFixedDocument(t *testing.T) {
	doc := `{
		"order-id": 2,
		"fields": [
			{"source-id": 5, "transform": "identity", "direction": "asc", "null-order": "nulls-last"},
			{"source-id": 2, "transform": "truncate[10]", "direction": "desc", "null-order": "nulls-first"}
		]
	}`
	parsed, err := FromJSON([]byte(doc))
	require.Nil(t, err)

	require.Equal(t, 2, parsed.OrderID())
	fields := parsed.Fields()
	require.Equal(t, 5, fields[0].SourceID())
	require.Equal(t, tabular.Ascending, fields[0].Direction())
	require.Equal(t, tabular.NullsLast, fields[0].NullOrder())
	require.Equal(t, "truncate[10]", fields[1].Transform().String())
}

func TestSortOrderJSONSentinelRules(t *testing.T) {
	// sorted order may not claim ID 0
	_, err := FromJSON([]byte(`{"order-id": 0, "fields": [
		{"source-id": 1, "transform": "identity", "direction": "asc", "null-order": "nulls-first"}]}`))
	require.True(t, errors.IsInvalidArgument(err))

	// unsorted order may not carry another ID
	_, err = FromJSON([]byte(`{"order-id": 7, "fields": []}`))
	require.True(t, errors.IsInvalidArgument(err))
}

func TestSortOrderJSONMalformed(t *testing.T) {
	_, err := FromJSON([]byte("{nope"))
	require.True(t, errors.IsInvalidArgument(err))

	_, err = FromJSON([]byte(`{"fields": []}`))
	require.True(t, errors.IsInvalidArgument(err))

	_, err = FromJSON([]byte(`{"order-id": 1, "fields": [
		{"source-id": 1, "transform": "identity", "direction": "sideways", "null-order": "nulls-first"}]}`))
	require.True(t, errors.IsInvalidArgument(err))

	_, err = FromJSON([]byte(`{"order-id": 1, "fields": [
		{"source-id": 1, "transform": "shuffle", "direction": "asc", "null-order": "nulls-first"}]}`))
	require.True(t, errors.IsInvalidArgument(err))
}
