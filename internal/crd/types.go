package crd

import "github.com/hass-crds/crd-gen/internal/schema"

// CustomResourceDefinition represents a simplified K8s CRD structure.
// Field order is the order in which keys are emitted.
type CustomResourceDefinition struct {
	APIVersion string     `yaml:"apiVersion"`
	Kind       string     `yaml:"kind"`
	Metadata   ObjectMeta `yaml:"metadata"`
	Spec       Spec       `yaml:"spec"`
}

type ObjectMeta struct {
	Name        string      `yaml:"name"`
	Annotations Annotations `yaml:"annotations"`
	Labels      Labels      `yaml:"labels"`
}

type Annotations struct {
	ControllerGenVersion string `yaml:"controller-gen.kubebuilder.io/version"`
}

type Labels struct {
	Name      string `yaml:"app.kubernetes.io/name"`
	Component string `yaml:"app.kubernetes.io/component"`
}

type Spec struct {
	Group    string    `yaml:"group"`
	Names    Names     `yaml:"names"`
	Scope    string    `yaml:"scope"`
	Versions []Version `yaml:"versions"`
}

type Names struct {
	Kind       string   `yaml:"kind"`
	ListKind   string   `yaml:"listKind"`
	Plural     string   `yaml:"plural"`
	Singular   string   `yaml:"singular"`
	ShortNames []string `yaml:"shortNames,omitempty"`
	Categories []string `yaml:"categories"`
}

type Version struct {
	Name                     string          `yaml:"name"`
	Served                   bool            `yaml:"served"`
	Storage                  bool            `yaml:"storage"`
	AdditionalPrinterColumns []PrinterColumn `yaml:"additionalPrinterColumns"`
	Schema                   Validation      `yaml:"schema"`
	Subresources             Subresources    `yaml:"subresources"`
}

type PrinterColumn struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
	JSONPath    string `yaml:"jsonPath"`
}

type Validation struct {
	OpenAPIV3Schema schema.Schema `yaml:"openAPIV3Schema"`
}

type Subresources struct {
	Status map[string]any `yaml:"status"`
}
