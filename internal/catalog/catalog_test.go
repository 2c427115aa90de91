package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	entities := All()
	require.Len(t, entities, 29)
	assert.Equal(t, "MQTTDevice", entities[0].Kind)
	assert.Equal(t, "MQTTButton", entities[1].Kind)
	assert.Equal(t, "MQTTEvent", entities[len(entities)-1].Kind)

	var utility []string
	for _, e := range entities {
		if e.IsUtility() {
			utility = append(utility, e.Kind)
		}
	}
	assert.Equal(t, []string{"MQTTDevice"}, utility)
}

func TestAllReturnsFreshValues(t *testing.T) {
	a := All()
	a[1].Properties[0].Schema.Description = "changed"
	a[1].Required[0] = "changed"

	b := All()
	assert.Equal(t, "Topic to publish when button is pressed", b[1].Properties[0].Schema.Description)
	assert.Equal(t, "commandTopic", b[1].Required[0])
}

func TestCatalogIsValid(t *testing.T) {
	assert.NoError(t, Validate(All()))
}

func TestRequiredResolves(t *testing.T) {
	for _, e := range All() {
		for _, r := range e.Required {
			assert.True(t, e.Properties.Has(r), "%s: required %q is not a property", e.Kind, r)
		}
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name       string
		entities   []Entity
		wantErrMsg []string
	}{
		{
			name: "duplicate_plural",
			entities: []Entity{
				{Kind: "A", Singular: "a", Plural: "as"},
				{Kind: "B", Singular: "b", Plural: "as"},
			},
			wantErrMsg: []string{`entity #1: plural "as" already used by entity #0`},
		},
		{
			name: "duplicate_kind_and_singular",
			entities: []Entity{
				{Kind: "A", Singular: "a", Plural: "as"},
				{Kind: "A", Singular: "a", Plural: "bs"},
			},
			wantErrMsg: []string{`kind "A" already used`, `singular "a" already used`},
		},
		{
			name: "duplicate_short_name",
			entities: []Entity{
				{Kind: "A", Singular: "a", Plural: "as", ShortNames: []string{"x"}},
				{Kind: "B", Singular: "b", Plural: "bs", ShortNames: []string{"x"}},
			},
			wantErrMsg: []string{`B: short name "x" already used by A`},
		},
		{
			name:       "empty_plural",
			entities:   []Entity{{Kind: "A", Singular: "a"}},
			wantErrMsg: []string{"entity #0: kind, singular and plural must be set"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.entities)
			require.Error(t, err)
			for _, msg := range tc.wantErrMsg {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"MQTTClimate", "mqttclimate", "mqttclimates"} {
		e, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "MQTTClimate", e.Kind)
		assert.Equal(t, []string{"hvac"}, e.ShortNames)
		assert.Equal(t, "climate", e.Component)
	}

	_, ok := Lookup("mqttunknown")
	assert.False(t, ok)
}
