package schema

import (
	"testing"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
	"github.com/stretchr/testify/require"
)

func TestSchemaJSONRoundTrip(t *testing.T) {
	s := createTestSchema(t)

	data, err := ToJSON(s)
	require.Nil(t, err)

	parsed, err := FromJSON(data)
	require.Nil(t, err)
	require.True(t, s.Equals(parsed))

	// stable IDs survive the round trip
	id, err := parsed.FieldID("s.b.i")
	require.Nil(t, err)
	require.Equal(t, 19, id)
}

func TestSchemaJSONParameterizedTypes(t *testing.T) {
	s, err := CreateSchema(
		tabular.RequiredField(1, "f", tabular.FixedType{Length: 16}),
		tabular.RequiredField(2, "d", tabular.DecimalType{Precision: 9, Scale: 2}),
	)
	require.Nil(t, err)

	data, err := ToJSON(s)
	require.Nil(t, err)
	parsed, err := FromJSON(data)
	require.Nil(t, err)
	require.True(t, s.Equals(parsed))
}

func TestSchemaJSONMalformed(t *testing.T) {
	_, err := FromJSON([]byte("{nope"))
	require.True(t, errors.IsInvalidArgument(err))

	_, err = FromJSON([]byte(`"int"`))
	require.True(t, errors.IsInvalidArgument(err))

	_, err = FromJSON([]byte(`{"type":"struct","fields":[{"id":1,"name":"a","required":true,"type":"wat"}]}`))
	require.True(t, errors.IsInvalidArgument(err))
}
