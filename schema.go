package tabular

// Schema is an immutable tree of uniquely, stably identified typed fields. It allows
// one to resolve dotted field paths to stable IDs, look fields up by ID, and derive
// evolved Schemas. Field IDs are minted above a schema-wide high-water mark on every
// addition, including additions nested inside structs, lists and maps, so an ID is
// unique across the whole tree and is never reused once its field is dropped. The
// mutator methods never modify the receiver; they return a new Schema.
type Schema interface {
	Fields() []NestedField     // top-level fields, in definition order
	NumFields() int            // number of fields in the whole tree, including nested ones
	HighestFieldID() int       // the ID high-water mark; new fields are assigned IDs above it
	HasField(path string) bool // returns true iff the dotted path resolves to a field
	FindField(path string) (NestedField, error)
	FieldID(path string) (int, error) // resolves a dotted path to a stable field ID
	FindFieldByID(id int) (NestedField, error)
	PathByID(id int) (string, error) // inverse of FieldID
	AddColumn(parent string, name string, fieldType Type, required bool) (Schema, error)
	RenameColumn(path string, newName string) (Schema, error)
	DropColumn(path string) (Schema, error)
	Equals(other Schema) bool
	String() string
}
