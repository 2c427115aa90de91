package openapi

import (
	"fmt"

	"k8s.io/apiextensions-apiserver/pkg/apis/apiextensions"
	apiv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	structuralschema "k8s.io/apiextensions-apiserver/pkg/apiserver/schema"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/apimachinery/pkg/util/yaml"
)

// Parse reads a single CRD manifest.
func Parse(crdData []byte) (*apiv1.CustomResourceDefinition, error) {
	var crd apiv1.CustomResourceDefinition
	if err := yaml.Unmarshal(crdData, &crd); err != nil {
		return nil, err
	}
	return &crd, nil
}

// Validate checks the parsed CRD against the expected name and verifies the storage version schema is structural.
func Validate(crd *apiv1.CustomResourceDefinition, group string) error {
	var errs field.ErrorList

	if want := crd.Spec.Names.Plural + "." + group; crd.Name != want {
		errs = append(errs, field.Invalid(field.NewPath("metadata", "name"), crd.Name,
			fmt.Sprintf("must be %q", want)))
	}
	if crd.Spec.Group != group {
		errs = append(errs, field.Invalid(field.NewPath("spec", "group"), crd.Spec.Group,
			fmt.Sprintf("must be %q", group)))
	}

	schema, version, err := extractSchemas(crd, "")
	if err != nil {
		return err
	}

	var internal apiextensions.JSONSchemaProps
	if err := apiv1.Convert_v1_JSONSchemaProps_To_apiextensions_JSONSchemaProps(schema, &internal, nil); err != nil {
		return fmt.Errorf("error converting schema of version %s: %w", version, err)
	}
	structural, err := structuralschema.NewStructural(&internal)
	if err != nil {
		return fmt.Errorf("schema of version %s is not structural: %w", version, err)
	}

	fldPath := field.NewPath("spec", "versions").Key(version).Child("schema", "openAPIV3Schema")
	errs = append(errs, structuralschema.ValidateStructural(fldPath, structural)...)

	return errs.ToAggregate()
}

// Extract schemas from CRD.
func extractSchemas(
	crd *apiv1.CustomResourceDefinition,
	desiredVersion string,
) (schema *apiv1.JSONSchemaProps, version string, err error) {
	for _, v := range crd.Spec.Versions {
		if v.Storage && (desiredVersion == "" || desiredVersion == v.Name) {
			if v.Schema == nil || v.Schema.OpenAPIV3Schema == nil {
				return nil, "", fmt.Errorf("version %q in CRD %s has no schema", v.Name, crd.Name)
			}
			return v.Schema.OpenAPIV3Schema, v.Name, nil
		}
	}

	return nil, "", fmt.Errorf("could not find desired version %q in CRD %s", desiredVersion, crd.Name)
}
