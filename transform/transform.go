// Package transform provides the built-in Transforms used by sort orders and
// partition specs: identity, truncation, bucketing and the void transform. A
// Transform is identified by its serialized form, so two Truncate(10) instances
// are the same transform wherever they appear.
package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
)

// IdentityTransform passes source values through unmodified. It applies to any
// primitive type.
type IdentityTransform struct{}

// Identity is a factory for IdentityTransforms
func Identity() IdentityTransform {
	return IdentityTransform{}
}

// Name returns the name of an IdentityTransform
func (t IdentityTransform) Name() string { return "identity" }

// AppliesTo returns true iff fieldType is a primitive type
func (t IdentityTransform) AppliesTo(fieldType tabular.Type) bool {
	return tabular.IsPrimitive(fieldType)
}

// String returns the serialized form of an IdentityTransform
func (t IdentityTransform) String() string { return "identity" }

// VoidTransform maps every source value to null. It applies to any type, and is
// used to retire a partition field without renumbering its successors.
type VoidTransform struct{}

// Void is a factory for VoidTransforms
func Void() VoidTransform {
	return VoidTransform{}
}

// Name returns the name of a VoidTransform
func (t VoidTransform) Name() string { return "void" }

// AppliesTo always returns true
func (t VoidTransform) AppliesTo(fieldType tabular.Type) bool { return true }

// String returns the serialized form of a VoidTransform
func (t VoidTransform) String() string { return "void" }

// FromString parses the serialized form of a Transform, e.g. "identity",
// "truncate[10]" or "bucket[16]".
func FromString(s string) (tabular.Transform, error) {
	switch s {
	case "identity":
		return Identity(), nil
	case "void":
		return Void(), nil
	}
	if width, ok := parseParam(s, "truncate"); ok {
		return Truncate(width), nil
	}
	if buckets, ok := parseParam(s, "bucket"); ok {
		return Bucket(buckets), nil
	}
	return nil, errors.InvalidArgumentError{Reason: fmt.Sprintf("unknown transform: %s", s)}
}

func parseParam(s string, name string) (int, bool) {
	if !strings.HasPrefix(s, name+"[") || !strings.HasSuffix(s, "]") {
		return 0, false
	}
	param, err := strconv.Atoi(s[len(name)+1 : len(s)-1])
	if err != nil || param <= 0 {
		return 0, false
	}
	return param, true
}
