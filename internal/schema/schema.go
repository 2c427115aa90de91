package schema

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Property types of the OpenAPI v3 schema dialect.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Schema represents a property in an OpenAPI schema.
// Field order is the order in which keys are emitted.
type Schema struct {
	Type        string     `yaml:"type"`
	Format      string     `yaml:"format,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Enum        []string   `yaml:"enum,omitempty"`
	Minimum     *float64   `yaml:"minimum,omitempty"`
	Maximum     *float64   `yaml:"maximum,omitempty"`
	Items       *Schema    `yaml:"items,omitempty"`
	Properties  Properties `yaml:"properties,omitempty"`
	Required    []string   `yaml:"required,omitempty"`
}

// Property is a named entry of an object schema.
type Property struct {
	Name   string
	Schema Schema
}

// Properties is an insertion ordered property map.
type Properties []Property

// DeepCopy returns a copy of the schema sharing no memory with s.
func (s Schema) DeepCopy() Schema {
	out := s
	out.Enum = slices.Clone(s.Enum)
	out.Required = slices.Clone(s.Required)
	if s.Minimum != nil {
		v := *s.Minimum
		out.Minimum = &v
	}
	if s.Maximum != nil {
		v := *s.Maximum
		out.Maximum = &v
	}
	if s.Items != nil {
		items := s.Items.DeepCopy()
		out.Items = &items
	}
	out.Properties = s.Properties.DeepCopy()
	return out
}

// DeepCopy returns a copy of the properties sharing no memory with p.
func (p Properties) DeepCopy() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for i, prop := range p {
		out[i] = Property{Name: prop.Name, Schema: prop.Schema.DeepCopy()}
	}
	return out
}

// Get returns the schema of the named property.
func (p Properties) Get(name string) (Schema, bool) {
	if i := p.index(name); i >= 0 {
		return p[i].Schema, true
	}
	return Schema{}, false
}

// Has reports whether the named property exists.
func (p Properties) Has(name string) bool {
	return p.index(name) >= 0
}

// Names returns the property names in insertion order.
func (p Properties) Names() []string {
	names := make([]string, len(p))
	for i, prop := range p {
		names[i] = prop.Name
	}
	return names
}

// Set stores a copy of s under name. An existing entry keeps its position and gets its value replaced.
func (p *Properties) Set(name string, s Schema) {
	if i := p.index(name); i >= 0 {
		(*p)[i].Schema = s.DeepCopy()
		return
	}
	*p = append(*p, Property{Name: name, Schema: s.DeepCopy()})
}

// Merge sets every property of other, in order.
func (p *Properties) Merge(other Properties) {
	for _, prop := range other {
		p.Set(prop.Name, prop.Schema)
	}
}

func (p Properties) index(name string) int {
	return slices.IndexFunc(p, func(prop Property) bool { return prop.Name == name })
}

// MarshalYAML emits the properties as a mapping, keeping insertion order.
func (p Properties) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, prop := range p {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: prop.Name}
		value := &yaml.Node{}
		if err := value.Encode(prop.Schema); err != nil {
			return nil, fmt.Errorf("error encoding property %q: %w", prop.Name, err)
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// CheckRequired verifies that every required name of s, and of every nested object schema,
// names a property of the object declaring it.
func CheckRequired(path string, s Schema) []error {
	var errs []error
	for _, name := range s.Required {
		if !s.Properties.Has(name) {
			errs = append(errs, fmt.Errorf("%s: required property %q is not defined", path, name))
		}
	}
	for _, prop := range s.Properties {
		errs = append(errs, CheckRequired(path+"."+prop.Name, prop.Schema)...)
	}
	if s.Items != nil {
		errs = append(errs, CheckRequired(path+"[]", *s.Items)...)
	}
	return errs
}
