package voyage

import (
	"encoding/json"
	"reflect"
	"strings"
)

// SchemaBuilder provides a fluent API for constructing JSON Schema objects
// from Go structs. Use SchemaFrom[T]() to create a builder from a struct type.
//
// Field definitions are seeded from struct tags:
//
//	FlightID string `json:"flight_id" desc:"Unique flight identifier." required:"true"`
//	Pace     string `json:"pace" desc:"Travel pace." enum:"slow,balanced,fast"`
//
// and can be refined with the fluent methods before calling Build.
type SchemaBuilder struct {
	description   string
	strict        bool
	properties    map[string]*propertyDef
	required      []string
	propertyOrder []string
}

// propertyDef holds the definition of a single property.
type propertyDef struct {
	Type        string         `json:"type"`
	Description string         `json:"description,omitempty"`
	Enum        []any          `json:"enum,omitempty"`
	Items       *propertyDef   `json:"items,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
	Required    []string       `json:"required,omitempty"`
}

// SchemaFrom creates a SchemaBuilder by reflecting on the given struct type.
// Field names are taken from json tags, types are mapped to JSON Schema types,
// and desc/required/enum tags populate descriptions, the required list, and
// enum constraints.
func SchemaFrom[T any]() *SchemaBuilder {
	var zero T
	t := reflect.TypeOf(zero)

	// Handle pointer types
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return &SchemaBuilder{
			properties:    make(map[string]*propertyDef),
			propertyOrder: make([]string, 0),
		}
	}

	return buildFromStruct(t)
}

// SchemaFor generates a JSON Schema directly from a struct type T.
// Returns an error if T is not a struct type.
func SchemaFor[T any]() (json.RawMessage, error) {
	return SchemaFrom[T]().Build(), nil
}

// MustSchemaFor is like SchemaFor but panics on error.
func MustSchemaFor[T any]() json.RawMessage {
	schema, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return schema
}

func buildFromStruct(t reflect.Type) *SchemaBuilder {
	sb := &SchemaBuilder{
		properties:    make(map[string]*propertyDef),
		propertyOrder: make([]string, 0),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Skip unexported fields
		if !field.IsExported() {
			continue
		}

		// Get JSON field name
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name := strings.Split(jsonTag, ",")[0]
		if name == "" {
			name = field.Name
		}

		prop := typeToPropertyDef(field.Type)
		if desc := field.Tag.Get("desc"); desc != "" {
			prop.Description = desc
		}
		if enum := field.Tag.Get("enum"); enum != "" {
			for _, v := range strings.Split(enum, ",") {
				prop.Enum = append(prop.Enum, v)
			}
		}
		sb.properties[name] = prop
		sb.propertyOrder = append(sb.propertyOrder, name)

		if field.Tag.Get("required") == "true" {
			sb.required = append(sb.required, name)
		}
	}

	return sb
}

func typeToPropertyDef(t reflect.Type) *propertyDef {
	// Handle pointer types
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return &propertyDef{Type: "string"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &propertyDef{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &propertyDef{Type: "number"}

	case reflect.Bool:
		return &propertyDef{Type: "boolean"}

	case reflect.Slice, reflect.Array:
		items := typeToPropertyDef(t.Elem())
		return &propertyDef{Type: "array", Items: items}

	case reflect.Struct:
		nested := buildFromStruct(t)
		props := make(map[string]any)
		for _, name := range nested.propertyOrder {
			props[name] = nested.properties[name].toMap()
		}
		prop := &propertyDef{Type: "object", Properties: props}
		if len(nested.required) > 0 {
			prop.Required = nested.required
		}
		return prop

	case reflect.Map:
		// Maps become objects with no defined properties
		return &propertyDef{Type: "object"}

	default:
		return &propertyDef{Type: "string"}
	}
}

// Describe sets the top-level description for the schema.
func (s *SchemaBuilder) Describe(description string) *SchemaBuilder {
	s.description = description
	return s
}

// Strict disallows properties not declared in the schema
// (additionalProperties: false).
func (s *SchemaBuilder) Strict() *SchemaBuilder {
	s.strict = true
	return s
}

// Desc sets the description for a field, overriding any desc tag.
func (s *SchemaBuilder) Desc(field, description string) *SchemaBuilder {
	if prop, ok := s.properties[field]; ok {
		prop.Description = description
	}
	return s
}

// Required marks the specified fields as required.
func (s *SchemaBuilder) Required(fields ...string) *SchemaBuilder {
	for _, field := range fields {
		if _, ok := s.properties[field]; ok {
			// Avoid duplicates
			found := false
			for _, r := range s.required {
				if r == field {
					found = true
					break
				}
			}
			if !found {
				s.required = append(s.required, field)
			}
		}
	}
	return s
}

// Enum sets the allowed values for a string field, overriding any enum tag.
func (s *SchemaBuilder) Enum(field string, values ...string) *SchemaBuilder {
	if prop, ok := s.properties[field]; ok {
		prop.Enum = make([]any, len(values))
		for i, v := range values {
			prop.Enum[i] = v
		}
	}
	return s
}

// Build generates the JSON Schema as json.RawMessage.
func (s *SchemaBuilder) Build() json.RawMessage {
	schema := s.toMap()
	data, err := json.Marshal(schema)
	if err != nil {
		// This should never happen with valid Go types
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return data
}

func (s *SchemaBuilder) toMap() map[string]any {
	result := map[string]any{
		"type": "object",
	}

	if s.description != "" {
		result["description"] = s.description
	}

	if len(s.properties) > 0 {
		props := make(map[string]any)
		for _, name := range s.propertyOrder {
			props[name] = s.properties[name].toMap()
		}
		result["properties"] = props
	} else {
		result["properties"] = map[string]any{}
	}

	if len(s.required) > 0 {
		result["required"] = s.required
	}

	if s.strict {
		result["additionalProperties"] = false
	}

	return result
}

func (p *propertyDef) toMap() map[string]any {
	result := map[string]any{
		"type": p.Type,
	}

	if p.Description != "" {
		result["description"] = p.Description
	}

	if len(p.Enum) > 0 {
		result["enum"] = p.Enum
	}

	if p.Items != nil {
		result["items"] = p.Items.toMap()
	}

	if p.Properties != nil {
		result["properties"] = p.Properties
	}

	if len(p.Required) > 0 {
		result["required"] = p.Required
	}

	return result
}
