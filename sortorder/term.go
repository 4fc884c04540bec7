package sortorder

import (
	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/transform"
)

// Term is a user-facing sort expression: a dotted field path with a transform
// applied to it. Terms are resolved against a Schema by the Builder; they never
// appear in a built SortOrder.
type Term struct {
	path      string
	transform tabular.Transform
}

// Ref returns a Term sorting by a field's untransformed value
func Ref(path string) Term {
	return Term{path: path, transform: transform.Identity()}
}

// Truncated returns a Term sorting by a fixed-width prefix of a field's value
func Truncated(path string, width int) Term {
	return Term{path: path, transform: transform.Truncate(width)}
}

// Bucketed returns a Term sorting by the bucket number of a field's value
func Bucketed(path string, buckets int) Term {
	return Term{path: path, transform: transform.Bucket(buckets)}
}

// Apply returns a Term sorting by an arbitrary transform of a field's value
func Apply(path string, t tabular.Transform) Term {
	return Term{path: path, transform: t}
}

// Path returns the dotted field path of this Term
func (t Term) Path() string { return t.path }

// Transform returns the transform of this Term
func (t Term) Transform() tabular.Transform { return t.transform }
