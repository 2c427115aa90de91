// Package catalog holds the MQTT entity types a CRD is generated for.
package catalog

import (
	"errors"
	"fmt"

	"github.com/hass-crds/crd-gen/internal/schema"
)

// Entity describes one MQTT entity kind.
type Entity struct {
	Kind       string
	Singular   string
	Plural     string
	ShortNames []string
	// Component is the Home Assistant MQTT component. Empty for utility resources.
	Component   string
	Description string
	Properties  schema.Properties
	Required    []string
}

// IsUtility reports whether the entity is a utility resource without a Home Assistant component.
func (e Entity) IsUtility() bool {
	return e.Component == ""
}

func p(name string, s schema.Schema) schema.Property {
	return schema.Property{Name: name, Schema: s}
}

// All returns every entity in declaration order. Each call returns fresh values.
func All() []Entity {
	return []Entity{
		mqttDevice(),
		mqttButton(),

		mqttSwitch(),
		mqttSensor(),
		mqttBinarySensor(),
		mqttNumber(),
		mqttSelect(),
		mqttText(),
		mqttScene(),
		mqttTag(),

		mqttLight(),
		mqttCover(),
		mqttLock(),
		mqttValve(),
		mqttFan(),
		mqttSiren(),
		mqttCamera(),
		mqttImage(),
		mqttNotify(),
		mqttUpdate(),

		mqttClimate(),
		mqttHumidifier(),
		mqttWaterHeater(),
		mqttVacuum(),
		mqttLawnMower(),
		mqttAlarmControlPanel(),
		mqttDeviceTracker(),
		mqttDeviceTrigger(),
		mqttEvent(),
	}
}

// Lookup returns the entity with the given kind, singular or plural name.
func Lookup(name string) (Entity, bool) {
	for _, e := range All() {
		if e.Kind == name || e.Singular == name || e.Plural == name {
			return e, true
		}
	}
	return Entity{}, false
}

// Validate checks that names are set and that kinds, singulars, plurals and short names are unique.
func Validate(entities []Entity) error {
	var errs []error
	kinds := make(map[string]int)
	singulars := make(map[string]int)
	plurals := make(map[string]int)
	shortNames := make(map[string]string)

	for i, e := range entities {
		if e.Kind == "" || e.Singular == "" || e.Plural == "" {
			errs = append(errs, fmt.Errorf("entity #%d: kind, singular and plural must be set", i))
			continue
		}
		errs = append(errs,
			unique(kinds, "kind", e.Kind, i),
			unique(singulars, "singular", e.Singular, i),
			unique(plurals, "plural", e.Plural, i),
		)
		for _, sn := range e.ShortNames {
			if other, ok := shortNames[sn]; ok {
				errs = append(errs, fmt.Errorf("%s: short name %q already used by %s", e.Kind, sn, other))
				continue
			}
			shortNames[sn] = e.Kind
		}
	}
	return errors.Join(errs...)
}

func unique(seen map[string]int, field, value string, idx int) error {
	if other, ok := seen[value]; ok {
		return fmt.Errorf("entity #%d: %s %q already used by entity #%d", idx, field, value, other)
	}
	seen[value] = idx
	return nil
}
