package schema

import (
	"encoding/json"
	"fmt"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
	"github.com/tidwall/gjson"
)

// ToJSON serializes a Schema as a struct type document, preserving stable field IDs
// so a parsed schema is identical to the one written.
func ToJSON(s tabular.Schema) ([]byte, error) {
	return json.Marshal(typeToJSON(tabular.StructOf(s.Fields()...)))
}

// FromJSON parses a Schema from its JSON document form.
func FromJSON(data []byte) (tabular.Schema, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.InvalidArgumentError{Reason: "malformed schema JSON"}
	}
	parsed, err := typeFromJSON(gjson.ParseBytes(data))
	if err != nil {
		return nil, err
	}
	st, ok := parsed.(tabular.StructType)
	if !ok {
		return nil, errors.InvalidArgumentError{Reason: "schema JSON must be a struct type"}
	}
	return CreateSchema(st.FieldList...)
}

func typeToJSON(t tabular.Type) interface{} {
	switch t := t.(type) {
	case tabular.StructType:
		fields := make([]interface{}, len(t.FieldList))
		for i, f := range t.FieldList {
			fields[i] = map[string]interface{}{
				"id":       f.ID,
				"name":     f.Name,
				"required": f.Required,
				"type":     typeToJSON(f.Type),
			}
		}
		return map[string]interface{}{"type": "struct", "fields": fields}
	case tabular.ListType:
		return map[string]interface{}{
			"type":             "list",
			"element-id":       t.ElementID,
			"element":          typeToJSON(t.Element),
			"element-required": t.ElementRequired,
		}
	case tabular.MapType:
		return map[string]interface{}{
			"type":           "map",
			"key-id":         t.KeyID,
			"key":            typeToJSON(t.Key),
			"value-id":       t.ValueID,
			"value":          typeToJSON(t.Value),
			"value-required": t.ValueRequired,
		}
	}
	return t.String()
}

func typeFromJSON(res gjson.Result) (tabular.Type, error) {
	if res.Type == gjson.String {
		return primitiveFromString(res.String())
	}
	if !res.IsObject() {
		return nil, errors.InvalidArgumentError{Reason: fmt.Sprintf("cannot parse type from: %s", res.Raw)}
	}
	switch kind := res.Get("type").String(); kind {
	case "struct":
		var fields []tabular.NestedField
		for _, fres := range res.Get("fields").Array() {
			ftype, err := typeFromJSON(fres.Get("type"))
			if err != nil {
				return nil, err
			}
			fields = append(fields, tabular.NestedField{
				ID:       int(fres.Get("id").Int()),
				Name:     fres.Get("name").String(),
				Type:     ftype,
				Required: fres.Get("required").Bool(),
			})
		}
		return tabular.StructOf(fields...), nil
	case "list":
		element, err := typeFromJSON(res.Get("element"))
		if err != nil {
			return nil, err
		}
		return tabular.ListType{
			ElementID:       int(res.Get("element-id").Int()),
			Element:         element,
			ElementRequired: res.Get("element-required").Bool(),
		}, nil
	case "map":
		key, err := typeFromJSON(res.Get("key"))
		if err != nil {
			return nil, err
		}
		value, err := typeFromJSON(res.Get("value"))
		if err != nil {
			return nil, err
		}
		return tabular.MapType{
			KeyID:         int(res.Get("key-id").Int()),
			Key:           key,
			ValueID:       int(res.Get("value-id").Int()),
			Value:         value,
			ValueRequired: res.Get("value-required").Bool(),
		}, nil
	default:
		return nil, errors.InvalidArgumentError{Reason: fmt.Sprintf("unknown nested type: %s", kind)}
	}
}

func primitiveFromString(s string) (tabular.Type, error) {
	switch s {
	case "boolean":
		return tabular.BooleanType{}, nil
	case "int":
		return tabular.IntType{}, nil
	case "long":
		return tabular.LongType{}, nil
	case "float":
		return tabular.FloatType{}, nil
	case "double":
		return tabular.DoubleType{}, nil
	case "date":
		return tabular.DateType{}, nil
	case "timestamp":
		return tabular.TimestampType{}, nil
	case "string":
		return tabular.StringType{}, nil
	case "uuid":
		return tabular.UUIDType{}, nil
	case "binary":
		return tabular.BinaryType{}, nil
	}
	var length int
	if n, err := fmt.Sscanf(s, "fixed[%d]", &length); n == 1 && err == nil {
		return tabular.FixedType{Length: length}, nil
	}
	var precision, scale int
	if n, err := fmt.Sscanf(s, "decimal(%d, %d)", &precision, &scale); n == 2 && err == nil {
		return tabular.DecimalType{Precision: precision, Scale: scale}, nil
	}
	return nil, errors.InvalidArgumentError{Reason: fmt.Sprintf("unknown type: %s", s)}
}
