package catalog

import "github.com/hass-crds/crd-gen/internal/schema"

func mqttDevice() Entity {
	return Entity{
		Kind:        "MQTTDevice",
		Singular:    "mqttdevice",
		Plural:      "mqttdevices",
		ShortNames:  []string{"dev"},
		Description: "Shared device definition for multiple MQTT entities",
		Properties:  schema.DeviceProperties(),
	}
}

func mqttButton() Entity {
	return Entity{
		Kind:        "MQTTButton",
		Singular:    "mqttbutton",
		Plural:      "mqttbuttons",
		ShortNames:  []string{"btn"},
		Component:   "button",
		Description: "Stateless button entity - publishes to command topic when pressed",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish when button is pressed")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("payloadPress", schema.String("Payload sent when button is pressed (default: PRESS)")),
			p("deviceClass", schema.Enum("Button device class", "identify", "restart", "update")),
		},
		Required: []string{"commandTopic"},
	}
}
