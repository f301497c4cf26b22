package utils

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
)

var (
	decimalType  = reflect.TypeOf(decimal.Decimal{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// GetSchemaFromConfig reflects config into a JSON schema. Decimals and durations are
// written as strings and optional.Option fields as their nullable element type.
func GetSchemaFromConfig(config any) (string, error) {
	reflector := &jsonschema.Reflector{Mapper: schemaMapper}
	schema := reflector.Reflect(config)

	jsonSchemaBytes, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}

	return string(jsonSchemaBytes), nil
}

func schemaMapper(t reflect.Type) *jsonschema.Schema {
	switch {
	case t == decimalType:
		return &jsonschema.Schema{Type: "string", Pattern: `^-?[0-9]+(\.[0-9]+)?$`}
	case t == durationType:
		return &jsonschema.Schema{Type: "string", Description: "Go duration such as 10s or 1m"}
	case t.Kind() == reflect.Slice && strings.HasPrefix(t.Name(), "Option["):
		inner := schemaMapper(t.Elem())
		if inner == nil {
			inner = (&jsonschema.Reflector{DoNotReference: true, Mapper: schemaMapper}).ReflectFromType(t.Elem())
			inner.Version = ""
			inner.ID = ""
		}

		return &jsonschema.Schema{OneOf: []*jsonschema.Schema{inner, {Type: "null"}}}
	}

	return nil
}
