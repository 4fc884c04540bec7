// Package table holds the table-level metadata slice tying a schema, a
// partition spec and the sort order registry together. A Metadata value is an
// immutable snapshot: every change produces a brand-new snapshot, so concurrent
// readers of an old one are never affected. Order IDs, spec IDs and schema
// field IDs are independent namespaces, each with its own monotonic counter
// carried in the snapshot.
package table

import (
	uuid "github.com/gofrs/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/partition"
	"github.com/go-tabular/tabular/schema"
	"github.com/go-tabular/tabular/sortorder"
)

// InitialSortOrderID is the first table-scoped ID minted for a sorted order.
// ID 0 is reserved for the unsorted order.
const InitialSortOrderID = 1

// Metadata is one immutable table metadata snapshot.
type Metadata struct {
	tableUUID          uuid.UUID
	schema             tabular.Schema
	lastColumnID       int
	defaultSpec        partition.Spec
	sortOrders         map[int]sortorder.SortOrder
	currentSortOrderID int
	lastSortOrderID    int
}

// NewMetadata creates the initial metadata snapshot for a table. The user's
// schema is re-issued canonical field IDs starting at 1, and the given spec and
// order (usually built against that transient user schema) are rebound to the
// canonical IDs by name. A sorted order is registered under InitialSortOrderID
// regardless of any ID the builder carried; without one the registry holds
// exactly the unsorted order at ID 0.
func NewMetadata(userSchema tabular.Schema, spec partition.Spec, order sortorder.SortOrder) (*Metadata, error) {
	tableUUID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	next := 0
	canonical, err := schema.AssignFreshIDs(userSchema, func() int {
		next++
		return next
	})
	if err != nil {
		return nil, err
	}

	boundSpec, err := partition.Rebind(spec, userSchema, canonical)
	if err != nil {
		return nil, err
	}

	m := &Metadata{
		tableUUID:    tableUUID,
		schema:       canonical,
		lastColumnID: next,
		defaultSpec:  boundSpec,
		sortOrders:   map[int]sortorder.SortOrder{},
	}

	if order.IsUnsorted() {
		m.sortOrders[sortorder.UnsortedOrderID] = sortorder.Unsorted()
		m.currentSortOrderID = sortorder.UnsortedOrderID
	} else {
		bound, err := sortorder.Rebind(order, userSchema, canonical)
		if err != nil {
			return nil, err
		}
		bound, err = sortorder.WithOrderID(bound, InitialSortOrderID)
		if err != nil {
			return nil, err
		}
		m.sortOrders[InitialSortOrderID] = bound
		m.currentSortOrderID = InitialSortOrderID
		m.lastSortOrderID = InitialSortOrderID
	}

	log.Debugf("created table %s with %d columns, sort order %d", tableUUID, next, m.currentSortOrderID)
	return m, nil
}

// UUID returns the table's permanent identifier
func (m *Metadata) UUID() uuid.UUID { return m.tableUUID }

// Schema returns the table's current schema
func (m *Metadata) Schema() tabular.Schema { return m.schema }

// LastColumnID returns the highest schema field ID ever assigned by this table
func (m *Metadata) LastColumnID() int { return m.lastColumnID }

// Spec returns the table's default partition spec
func (m *Metadata) Spec() partition.Spec { return m.defaultSpec }

// SortOrder returns the table's current sort order
func (m *Metadata) SortOrder() sortorder.SortOrder {
	return m.sortOrders[m.currentSortOrderID]
}

// SortOrderByID returns a registered sort order, current or historical
func (m *Metadata) SortOrderByID(orderID int) (sortorder.SortOrder, bool) {
	order, ok := m.sortOrders[orderID]
	return order, ok
}

// SortOrders returns every registered sort order, keyed by order ID
func (m *Metadata) SortOrders() map[int]sortorder.SortOrder {
	orders := make(map[int]sortorder.SortOrder, len(m.sortOrders))
	for id, order := range m.sortOrders {
		orders[id] = order
	}
	return orders
}

// AttachSortOrder registers an order built against the table's current schema
// and makes it the current order, returning the new snapshot and the order's
// table-scoped ID. An order equivalent to an already-registered one (SameOrder,
// ignoring IDs) reuses the existing entry instead of growing the registry; a
// new sorted order is assigned the next ID in the order namespace.
func (m *Metadata) AttachSortOrder(order sortorder.SortOrder) (*Metadata, int, error) {
	if err := checkOrderReferences(order, m.schema); err != nil {
		return nil, 0, err
	}

	for id, existing := range m.sortOrders {
		if existing.SameOrder(order) {
			if id == m.currentSortOrderID {
				return m, id, nil
			}
			next := m.clone()
			next.currentSortOrderID = id
			return next, id, nil
		}
	}

	next := m.clone()
	if order.IsUnsorted() {
		next.sortOrders[sortorder.UnsortedOrderID] = sortorder.Unsorted()
		next.currentSortOrderID = sortorder.UnsortedOrderID
		return next, sortorder.UnsortedOrderID, nil
	}

	orderID := m.lastSortOrderID + 1
	assigned, err := sortorder.WithOrderID(order, orderID)
	if err != nil {
		return nil, 0, err
	}
	next.sortOrders[orderID] = assigned
	next.currentSortOrderID = orderID
	next.lastSortOrderID = orderID
	log.Debugf("attached sort order %d to table %s", orderID, m.tableUUID)
	return next, orderID, nil
}

// RenameColumn returns a new snapshot with the field at path renamed. Sort
// orders and partition specs reference fields by stable ID, so a rename never
// touches them and is always safe to commit.
func (m *Metadata) RenameColumn(path string, newName string) (*Metadata, error) {
	evolved, err := m.schema.RenameColumn(path, newName)
	if err != nil {
		return nil, err
	}
	next := m.clone()
	next.schema = evolved
	return next, nil
}

// DropColumns returns a new snapshot without the fields at the given paths. The
// drop is rejected with a ValidationError when any dropped field is referenced
// by the current sort order or the default partition spec; violations for all
// requested paths are reported together. Dropped field IDs stay above the
// schema's high-water mark and are never reused.
func (m *Metadata) DropColumns(paths ...string) (*Metadata, error) {
	dropped := make(map[int]bool, len(paths))
	for _, path := range paths {
		id, err := m.schema.FieldID(path)
		if err != nil {
			return nil, err
		}
		dropped[id] = true
	}

	if err := checkDroppedReferences(m.SortOrder(), m.defaultSpec, dropped); err != nil {
		log.Debugf("rejected column drop on table %s: %v", m.tableUUID, err)
		return nil, err
	}

	evolved := m.schema
	for _, path := range paths {
		var err error
		evolved, err = evolved.DropColumn(path)
		if err != nil {
			return nil, err
		}
	}
	next := m.clone()
	next.schema = evolved
	return next, nil
}

func (m *Metadata) clone() *Metadata {
	next := *m
	next.sortOrders = make(map[int]sortorder.SortOrder, len(m.sortOrders))
	for id, order := range m.sortOrders {
		next.sortOrders[id] = order
	}
	return &next
}
