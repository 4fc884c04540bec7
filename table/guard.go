package table

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
	"github.com/go-tabular/tabular/partition"
	"github.com/go-tabular/tabular/sortorder"
)

// checkOrderReferences verifies that every sort rule of order resolves against
// s and that each transform still applies to its field's type.
func checkOrderReferences(order sortorder.SortOrder, s tabular.Schema) error {
	for _, f := range order.Fields() {
		field, err := s.FindFieldByID(f.SourceID())
		if err != nil {
			return errors.ValidationError{Message: fmt.Sprintf(
				"Cannot find source column: %d", f.SourceID())}
		}
		if !f.Transform().AppliesTo(field.Type) {
			return errors.ValidationError{Message: fmt.Sprintf(
				"Invalid sort transform: %s cannot be applied to %s (%s)", f.Transform(), field.Name, field.Type)}
		}
	}
	return nil
}

// checkDroppedReferences rejects a column drop that would orphan a field
// reference in the current sort order or the default partition spec. Checking
// is limited to the current order: a field referenced only by a historical
// order may be dropped. All violations are collected before returning.
func checkDroppedReferences(order sortorder.SortOrder, spec partition.Spec, dropped map[int]bool) error {
	var result *multierror.Error
	for _, f := range order.Fields() {
		if dropped[f.SourceID()] {
			result = multierror.Append(result, errors.ValidationError{Message: fmt.Sprintf(
				"Cannot find source column for sort field: %d", f.SourceID())})
		}
	}
	for _, f := range spec.Fields() {
		if dropped[f.SourceID()] {
			result = multierror.Append(result, errors.ValidationError{Message: fmt.Sprintf(
				"Cannot find source column for partition field %s: %d", f.Name(), f.SourceID())})
		}
	}
	return result.ErrorOrNil()
}
