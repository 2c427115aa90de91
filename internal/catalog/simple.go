package catalog

import "github.com/hass-crds/crd-gen/internal/schema"

func mqttSwitch() Entity {
	return Entity{
		Kind:        "MQTTSwitch",
		Singular:    "mqttswitch",
		Plural:      "mqttswitches",
		Component:   "switch",
		Description: "On/off toggle entity with state feedback",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish on/off commands")),
			p("stateTopic", schema.String("Topic to read current state")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("payloadOn", schema.String("Payload representing on (default: ON)")),
			p("payloadOff", schema.String("Payload representing off (default: OFF)")),
			p("stateOn", schema.String("State value that means on (if different from payloadOn)")),
			p("stateOff", schema.String("State value that means off (if different from payloadOff)")),
			p("deviceClass", schema.Enum("Switch device class", "outlet", "switch")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
		Required: []string{"commandTopic"},
	}
}

func mqttSensor() Entity {
	return Entity{
		Kind:        "MQTTSensor",
		Singular:    "mqttsensor",
		Plural:      "mqttsensors",
		Component:   "sensor",
		Description: "Read-only sensor that reports a value from an MQTT topic",
		Properties: schema.Properties{
			p("stateTopic", schema.String("Topic to read sensor value")),
			p("valueTemplate", schema.String("Template to extract value from payload")),
			p("unitOfMeasurement", schema.String("Unit displayed in HA (e.g. °C, %, W)")),
			p("deviceClass", schema.String("HA device class (e.g. temperature, humidity, power, energy, battery)")),
			p("stateClass", schema.Enum("State class for statistics", "measurement", "total", "total_increasing")),
			p("expireAfter", schema.Integer("Seconds after which the sensor value expires")),
			p("forceUpdate", schema.Boolean("Update HA state even if the value hasn't changed")),
			p("lastResetValueTemplate", schema.String("Template for the last reset timestamp")),
			p("suggestedDisplayPrecision", schema.Integer("Number of decimal places to display")),
		},
		Required: []string{"stateTopic"},
	}
}

func mqttBinarySensor() Entity {
	return Entity{
		Kind:        "MQTTBinarySensor",
		Singular:    "mqttbinarysensor",
		Plural:      "mqttbinarysensors",
		Component:   "binary_sensor",
		Description: "Read-only on/off sensor (e.g. motion detector, door contact)",
		Properties: schema.Properties{
			p("stateTopic", schema.String("Topic to read sensor state")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("payloadOn", schema.String("Payload representing on/detected (default: ON)")),
			p("payloadOff", schema.String("Payload representing off/clear (default: OFF)")),
			p("deviceClass", schema.String("HA device class (e.g. motion, door, window, moisture, smoke, occupancy)")),
			p("expireAfter", schema.Integer("Seconds after which the state expires")),
			p("forceUpdate", schema.Boolean("Update state even if unchanged")),
			p("offDelay", schema.Integer("Seconds after which the sensor auto-resets to off")),
		},
		Required: []string{"stateTopic"},
	}
}

func mqttNumber() Entity {
	return Entity{
		Kind:        "MQTTNumber",
		Singular:    "mqttnumber",
		Plural:      "mqttnumbers",
		Component:   "number",
		Description: "Numeric input entity with min/max bounds and step size",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish number value")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("stateTopic", schema.String("Topic to read current value")),
			p("valueTemplate", schema.String("Template to extract value from payload")),
			p("min", schema.Number("Minimum value (default: 1)")),
			p("max", schema.Number("Maximum value (default: 100)")),
			p("step", schema.Number("Step size (default: 1)")),
			p("mode", schema.Enum("UI mode", "auto", "box", "slider")),
			p("unitOfMeasurement", schema.String("Unit displayed in HA")),
			p("deviceClass", schema.String("HA device class (e.g. temperature, humidity, power_factor)")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
		Required: []string{"commandTopic"},
	}
}

func mqttSelect() Entity {
	return Entity{
		Kind:        "MQTTSelect",
		Singular:    "mqttselect",
		Plural:      "mqttselects",
		Component:   "select",
		Description: "Dropdown selection entity with a fixed list of options",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish selected option")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("stateTopic", schema.String("Topic to read current selection")),
			p("valueTemplate", schema.String("Template to extract value from payload")),
			p("options", schema.StringList("List of selectable options")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
		Required: []string{"commandTopic", "options"},
	}
}

func mqttText() Entity {
	return Entity{
		Kind:        "MQTTText",
		Singular:    "mqtttext",
		Plural:      "mqtttexts",
		Component:   "text",
		Description: "Free-text input entity",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish text value")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("stateTopic", schema.String("Topic to read current value")),
			p("valueTemplate", schema.String("Template to extract value from payload")),
			p("min", schema.Integer("Minimum text length (default: 0)")),
			p("max", schema.Integer("Maximum text length (default: 255)")),
			p("pattern", schema.String("Regex pattern for validation")),
			p("mode", schema.Enum("Input mode", "text", "password")),
		},
		Required: []string{"commandTopic"},
	}
}

func mqttScene() Entity {
	return Entity{
		Kind:        "MQTTScene",
		Singular:    "mqttscene",
		Plural:      "mqttscenes",
		Component:   "scene",
		Description: "Scene entity that can be activated via MQTT",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish when scene is activated")),
			p("payloadOn", schema.String("Payload sent when scene is activated (default: ON)")),
		},
		Required: []string{"commandTopic"},
	}
}

func mqttTag() Entity {
	return Entity{
		Kind:        "MQTTTag",
		Singular:    "mqtttag",
		Plural:      "mqtttags",
		Component:   "tag",
		Description: "Tag scanner entity for NFC, RFID, or QR code scanning",
		Properties: schema.Properties{
			p("topic", schema.String("Topic to subscribe to for tag scans")),
			p("valueTemplate", schema.String("Template to extract tag ID from payload")),
		},
		Required: []string{"topic"},
	}
}
