package tabular

// Transform is a named, parameterized function mapping a field's value to a derived
// sort or partition key. The metadata core treats transforms as opaque beyond type
// applicability and identity: two Transforms are the same transform iff their String
// representations (which include any parameters) are equal. Tabular provides built-in
// Transforms in the transform package.
type Transform interface {
	Name() string          // returns the parameterless name of this Transform, e.g. "truncate"
	AppliesTo(t Type) bool // returns true iff this Transform can be applied to values of the given Type
	String() string        // produces the serialized form of this Transform, e.g. "truncate[10]"
}

// SameTransform returns true iff two Transforms are the same function with the
// same parameters
func SameTransform(a Transform, b Transform) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
