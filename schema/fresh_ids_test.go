package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignFreshIDsTopLevelFirst(t *testing.T) {
	s := createTestSchema(t)

	next := 0
	fresh, err := AssignFreshIDs(s, func() int {
		next++
		return next
	})
	require.Nil(t, err)

	// all fields of a struct take IDs before any of their children
	expected := map[string]int{
		"id":    1,
		"data":  2,
		"s":     3,
		"ext":   4,
		"s.id":  5,
		"s.b":   6,
		"s.b.i": 8, // 7 went to the list element slot
		"s.b.s": 9,
	}
	for path, want := range expected {
		id, err := fresh.FieldID(path)
		require.Nil(t, err)
		require.Equal(t, want, id, "wrong fresh ID for %s", path)
	}
	require.Equal(t, 9, next)
	require.Equal(t, 9, fresh.HighestFieldID())
}

func TestAssignFreshIDsPreservesShape(t *testing.T) {
	s := createTestSchema(t)

	next := 100
	fresh, err := AssignFreshIDs(s, func() int {
		next++
		return next
	})
	require.Nil(t, err)

	require.Equal(t, s.NumFields(), fresh.NumFields())
	f, err := fresh.FindField("s.id")
	require.Nil(t, err)
	require.Equal(t, "id", f.Name)
	require.True(t, f.Required)
}
