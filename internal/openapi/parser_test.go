package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hass-crds/crd-gen/internal/catalog"
	"github.com/hass-crds/crd-gen/internal/crd"
	"github.com/hass-crds/crd-gen/internal/render"
)

const group = "mqtt.home-assistant.io"

func parseGenerated(t *testing.T, name string) []byte {
	t.Helper()
	e, ok := catalog.Lookup(name)
	require.True(t, ok)
	data, err := render.Marshal(crd.Build(e))
	require.NoError(t, err)
	return data
}

func TestParseAndValidateAll(t *testing.T) {
	for _, e := range catalog.All() {
		t.Run(e.Kind, func(t *testing.T) {
			cr, err := Parse(parseGenerated(t, e.Kind))
			require.NoError(t, err)

			assert.Equal(t, e.Plural+"."+group, cr.Name)
			assert.Equal(t, e.Kind, cr.Spec.Names.Kind)
			assert.Equal(t, e.Kind+"List", cr.Spec.Names.ListKind)
			assert.Equal(t, []string{"hass", "mqtt"}, cr.Spec.Names.Categories)
			require.NoError(t, Validate(cr, group))
		})
	}
}

func TestParseButton(t *testing.T) {
	cr, err := Parse(parseGenerated(t, "mqttbutton"))
	require.NoError(t, err)

	assert.Equal(t, []string{"btn"}, cr.Spec.Names.ShortNames)
	assert.Equal(t, "hass-crds", cr.Labels["app.kubernetes.io/name"])

	schema, version, err := extractSchemas(cr, "")
	require.NoError(t, err)
	assert.Equal(t, "v1alpha1", version)

	spec := schema.Properties["spec"]
	assert.Equal(t, []string{"commandTopic"}, spec.Required)
	assert.Contains(t, spec.Properties, "commandTopic")
	assert.Contains(t, spec.Properties, "rediscoverInterval")

	qos := spec.Properties["qos"]
	require.NotNil(t, qos.Minimum)
	require.NotNil(t, qos.Maximum)
	assert.InDelta(t, 0.0, *qos.Minimum, 0)
	assert.InDelta(t, 2.0, *qos.Maximum, 0)

	conditions := schema.Properties["status"].Properties["conditions"]
	require.NotNil(t, conditions.Items)
	require.NotNil(t, conditions.Items.Schema)
	assert.Equal(t, []string{"type", "status"}, conditions.Items.Schema.Required)
	assert.Len(t, conditions.Items.Schema.Properties["status"].Enum, 3)

	require.NotNil(t, cr.Spec.Versions[0].Subresources)
	assert.NotNil(t, cr.Spec.Versions[0].Subresources.Status)
	assert.Len(t, cr.Spec.Versions[0].AdditionalPrinterColumns, 4)
}

func TestParseShortNamesOmitted(t *testing.T) {
	cr, err := Parse(parseGenerated(t, "mqttswitch"))
	require.NoError(t, err)
	assert.Nil(t, cr.Spec.Names.ShortNames)
}

func TestValidateWrongName(t *testing.T) {
	cr, err := Parse(parseGenerated(t, "mqttsensor"))
	require.NoError(t, err)

	cr.Name = "sensors.example.com"
	err = Validate(cr, group)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata.name")
}

func TestValidateNotStructural(t *testing.T) {
	cr, err := Parse(parseGenerated(t, "mqttsensor"))
	require.NoError(t, err)

	root := cr.Spec.Versions[0].Schema.OpenAPIV3Schema
	spec := root.Properties["spec"]
	unit := spec.Properties["unitOfMeasurement"]
	unit.Type = ""
	spec.Properties["unitOfMeasurement"] = unit
	root.Properties["spec"] = spec

	err = Validate(cr, group)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unitOfMeasurement")
}

func TestValidateNoStorageVersion(t *testing.T) {
	cr, err := Parse(parseGenerated(t, "mqtttag"))
	require.NoError(t, err)

	cr.Spec.Versions[0].Storage = false
	err = Validate(cr, group)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find desired version")
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("spec: ["))
	require.Error(t, err)
}
