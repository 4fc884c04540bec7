// Package tabular contains the core metadata components of Tabular, a library which
// describes how the data files of a lake table are sorted and partitioned, and which
// keeps that description valid as the table's schema evolves. This root package defines
// the types shared by every subsystem - the value type system, stable field identity,
// sort direction and null ordering, and the Transform and Schema contracts - and is a
// good overview of Tabular's key concepts.
package tabular
