package sortorder

import (
	"encoding/json"
	"fmt"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
	"github.com/go-tabular/tabular/transform"
	"github.com/tidwall/gjson"
)

type sortFieldJSON struct {
	SourceID  int    `json:"source-id"`
	Transform string `json:"transform"`
	Direction string `json:"direction"`
	NullOrder string `json:"null-order"`
}

type sortOrderJSON struct {
	OrderID int             `json:"order-id"`
	Fields  []sortFieldJSON `json:"fields"`
}

// ToJSON serializes a SortOrder in its persisted form: the order ID and a field
// list of source IDs, transforms, directions and null placements. The unsorted
// order serializes with order-id 0 and an empty field list.
func ToJSON(order SortOrder) ([]byte, error) {
	doc := sortOrderJSON{OrderID: order.OrderID(), Fields: make([]sortFieldJSON, 0, len(order.fields))}
	for _, f := range order.fields {
		doc.Fields = append(doc.Fields, sortFieldJSON{
			SourceID:  f.SourceID(),
			Transform: f.Transform().String(),
			Direction: f.Direction().String(),
			NullOrder: f.NullOrder().String(),
		})
	}
	return json.Marshal(doc)
}

// FromJSON parses a SortOrder from its persisted form, enforcing the unsorted
// sentinel rules: order-id 0 carries no fields and no sorted order carries
// order-id 0.
func FromJSON(data []byte) (SortOrder, error) {
	if !gjson.ValidBytes(data) {
		return SortOrder{}, errors.InvalidArgumentError{Reason: "malformed sort order JSON"}
	}
	doc := gjson.ParseBytes(data)
	idRes := doc.Get("order-id")
	if !idRes.Exists() {
		return SortOrder{}, errors.InvalidArgumentError{Reason: "sort order JSON is missing order-id"}
	}
	orderID := int(idRes.Int())

	var fields []SortField
	for _, fres := range doc.Get("fields").Array() {
		f, err := sortFieldFromJSON(fres)
		if err != nil {
			return SortOrder{}, err
		}
		fields = append(fields, f)
	}

	if len(fields) == 0 {
		if orderID != UnsortedOrderID {
			return SortOrder{}, errors.InvalidArgumentError{Reason: "order ID must be 0 for the unsorted order"}
		}
		return Unsorted(), nil
	}
	if orderID == UnsortedOrderID {
		return SortOrder{}, errors.InvalidArgumentError{Reason: "order ID 0 is reserved for unsorted order"}
	}
	return SortOrder{orderID: orderID, fields: fields}, nil
}

func sortFieldFromJSON(res gjson.Result) (SortField, error) {
	srcRes := res.Get("source-id")
	if !srcRes.Exists() {
		return SortField{}, errors.InvalidArgumentError{Reason: "sort field JSON is missing source-id"}
	}
	t, err := transform.FromString(res.Get("transform").String())
	if err != nil {
		return SortField{}, err
	}

	var direction tabular.SortDirection
	switch d := res.Get("direction").String(); d {
	case "asc":
		direction = tabular.Ascending
	case "desc":
		direction = tabular.Descending
	default:
		return SortField{}, errors.InvalidArgumentError{Reason: fmt.Sprintf("unknown sort direction: %s", d)}
	}

	var nullOrder tabular.NullOrder
	switch n := res.Get("null-order").String(); n {
	case "nulls-first":
		nullOrder = tabular.NullsFirst
	case "nulls-last":
		nullOrder = tabular.NullsLast
	default:
		return SortField{}, errors.InvalidArgumentError{Reason: fmt.Sprintf("unknown null order: %s", n)}
	}

	return NewSortField(int(srcRes.Int()), t, direction, nullOrder), nil
}
