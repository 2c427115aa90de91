// Package crd turns catalog entities into CustomResourceDefinition documents.
package crd

import (
	k8sschema "k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/hass-crds/crd-gen/internal/catalog"
	"github.com/hass-crds/crd-gen/internal/schema"
)

// GroupVersion of all generated resources.
var GroupVersion = k8sschema.GroupVersion{Group: "mqtt.home-assistant.io", Version: "v1alpha1"}

const (
	apiextensionsVersion = "apiextensions.k8s.io/v1"
	crdKind              = "CustomResourceDefinition"
	controllerGenVersion = "v0.14.0"
	appName              = "hass-crds"
	appComponent         = "crds"
	scopeNamespaced      = "Namespaced"
)

// Categories every resource is listed under.
var Categories = []string{"hass", "mqtt"}

// Name returns the CRD object name of the entity.
func Name(e catalog.Entity) string {
	return e.Plural + "." + GroupVersion.Group
}

// SpecSchema merges the entity properties with the common properties into the spec schema.
// Utility entities get their own properties only.
func SpecSchema(e catalog.Entity) schema.Schema {
	var props schema.Properties
	for _, prop := range e.Properties {
		props.Set(prop.Name, prop.Schema)
	}

	if !e.IsUtility() {
		props.Merge(schema.CommonProperties())
	}

	s := schema.Schema{
		Type:       schema.TypeObject,
		Properties: props,
	}
	if len(e.Required) > 0 {
		s.Required = append([]string(nil), e.Required...)
	}
	return s
}

// PrinterColumns returns the columns shown by kubectl get.
func PrinterColumns() []PrinterColumn {
	return []PrinterColumn{
		{
			Name:        "Name",
			Type:        "string",
			Description: "Display name in Home Assistant",
			JSONPath:    ".spec.name",
		},
		{
			Name:        "Published",
			Type:        "string",
			Description: "Whether discovery has been published",
			JSONPath:    ".status.conditions[?(@.type=='Published')].status",
		},
		{
			Name:        "Last Published",
			Type:        "date",
			Description: "When discovery was last published",
			JSONPath:    ".status.lastPublished",
		},
		{
			Name:     "Age",
			Type:     "date",
			JSONPath: ".metadata.creationTimestamp",
		},
	}
}

// Build returns the complete CRD of the entity.
func Build(e catalog.Entity) *CustomResourceDefinition {
	names := Names{
		Kind:       e.Kind,
		ListKind:   e.Kind + "List",
		Plural:     e.Plural,
		Singular:   e.Singular,
		Categories: append([]string(nil), Categories...),
	}
	if len(e.ShortNames) > 0 {
		names.ShortNames = append([]string(nil), e.ShortNames...)
	}

	return &CustomResourceDefinition{
		APIVersion: apiextensionsVersion,
		Kind:       crdKind,
		Metadata: ObjectMeta{
			Name:        Name(e),
			Annotations: Annotations{ControllerGenVersion: controllerGenVersion},
			Labels:      Labels{Name: appName, Component: appComponent},
		},
		Spec: Spec{
			Group: GroupVersion.Group,
			Names: names,
			Scope: scopeNamespaced,
			Versions: []Version{{
				Name:                     GroupVersion.Version,
				Served:                   true,
				Storage:                  true,
				AdditionalPrinterColumns: PrinterColumns(),
				Schema:                   Validation{OpenAPIV3Schema: rootSchema(e)},
				Subresources:             Subresources{Status: map[string]any{}},
			}},
		},
	}
}

func rootSchema(e catalog.Entity) schema.Schema {
	return schema.Schema{
		Type:        schema.TypeObject,
		Description: e.Description,
		Properties: schema.Properties{
			{Name: "apiVersion", Schema: schema.String(
				"APIVersion defines the versioned schema of this representation of an object")},
			{Name: "kind", Schema: schema.String(
				"Kind is a string value representing the REST resource this object represents")},
			{Name: "metadata", Schema: schema.Schema{Type: schema.TypeObject}},
			{Name: "spec", Schema: SpecSchema(e)},
			{Name: "status", Schema: schema.Status()},
		},
	}
}
