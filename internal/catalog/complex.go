package catalog

import "github.com/hass-crds/crd-gen/internal/schema"

func mqttClimate() Entity {
	return Entity{
		Kind:        "MQTTClimate",
		Singular:    "mqttclimate",
		Plural:      "mqttclimates",
		ShortNames:  []string{"hvac"},
		Component:   "climate",
		Description: "Thermostat/HVAC entity with temperature control, modes, and fan speed",
		Properties: schema.Properties{
			p("temperatureCommandTopic", schema.String("Topic to set target temperature")),
			p("temperatureStateTopic", schema.String("Topic to read target temperature")),
			p("temperatureCommandTemplate", schema.String("Template for temperature command")),
			p("temperatureStateTemplate", schema.String("Template to extract target temp")),
			p("currentTemperatureTopic", schema.String("Topic to read current temperature")),
			p("currentTemperatureTemplate", schema.String("Template to extract current temp")),
			p("modeCommandTopic", schema.String("Topic to set HVAC mode")),
			p("modeStateTopic", schema.String("Topic to read HVAC mode")),
			p("modeCommandTemplate", schema.String("Template for mode command")),
			p("modeStateTemplate", schema.String("Template to extract mode")),
			p("modes", schema.StringList("Supported HVAC modes")),
			p("fanModeCommandTopic", schema.String("Topic to set fan mode")),
			p("fanModeStateTopic", schema.String("Topic to read fan mode")),
			p("fanModeCommandTemplate", schema.String("Template for fan mode command")),
			p("fanModeStateTemplate", schema.String("Template to extract fan mode")),
			p("fanModes", schema.StringList("Supported fan modes")),
			p("swingModeCommandTopic", schema.String("Topic to set swing mode")),
			p("swingModeStateTopic", schema.String("Topic to read swing mode")),
			p("swingModes", schema.StringList("Supported swing modes")),
			p("presetModeCommandTopic", schema.String("Topic to set preset mode")),
			p("presetModeStateTopic", schema.String("Topic to read preset mode")),
			p("presetModes", schema.StringList("Supported preset modes (e.g. away, eco, boost)")),
			p("actionTopic", schema.String("Topic to read current HVAC action")),
			p("actionTemplate", schema.String("Template to extract action")),
			p("tempStep", schema.Number("Step size for temperature adjustments (default: 1)")),
			p("minTemp", schema.Number("Minimum setpoint temperature")),
			p("maxTemp", schema.Number("Maximum setpoint temperature")),
			p("temperatureUnit", schema.Enum("Temperature unit", "C", "F")),
			p("precision", schema.Number("Temperature precision (default: 0.1)")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
	}
}

func mqttHumidifier() Entity {
	return Entity{
		Kind:        "MQTTHumidifier",
		Singular:    "mqtthumidifier",
		Plural:      "mqtthumidifiers",
		Component:   "humidifier",
		Description: "Humidifier entity with target humidity and mode support",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish on/off commands")),
			p("stateTopic", schema.String("Topic to read current on/off state")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("payloadOn", schema.String("Payload for on (default: ON)")),
			p("payloadOff", schema.String("Payload for off (default: OFF)")),
			p("targetHumidityCommandTopic", schema.String("Topic to set target humidity")),
			p("targetHumidityStateTopic", schema.String("Topic to read target humidity")),
			p("targetHumidityCommandTemplate", schema.String("Template for target humidity command")),
			p("targetHumidityStateTemplate", schema.String("Template to extract target humidity")),
			p("currentHumidityTopic", schema.String("Topic to read current humidity")),
			p("currentHumidityTemplate", schema.String("Template to extract current humidity")),
			p("modeCommandTopic", schema.String("Topic to set mode")),
			p("modeStateTopic", schema.String("Topic to read current mode")),
			p("modeCommandTemplate", schema.String("Template for mode command")),
			p("modeStateTemplate", schema.String("Template to extract mode")),
			p("modes", schema.StringList("Supported modes (e.g. normal, eco, boost, sleep)")),
			p("actionTopic", schema.String("Topic to read current action")),
			p("actionTemplate", schema.String("Template to extract action")),
			p("minHumidity", schema.Number("Minimum target humidity (default: 0)")),
			p("maxHumidity", schema.Number("Maximum target humidity (default: 100)")),
			p("deviceClass", schema.Enum("Humidifier device class", "humidifier", "dehumidifier")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
		Required: []string{"commandTopic", "targetHumidityCommandTopic"},
	}
}

func mqttWaterHeater() Entity {
	return Entity{
		Kind:        "MQTTWaterHeater",
		Singular:    "mqttwaterheater",
		Plural:      "mqttwaterheaters",
		Component:   "water_heater",
		Description: "Water heater entity with temperature control and operation modes",
		Properties: schema.Properties{
			p("temperatureCommandTopic", schema.String("Topic to set target temperature")),
			p("temperatureStateTopic", schema.String("Topic to read target temperature")),
			p("temperatureCommandTemplate", schema.String("Template for temperature command")),
			p("temperatureStateTemplate", schema.String("Template to extract target temp")),
			p("currentTemperatureTopic", schema.String("Topic to read current temperature")),
			p("currentTemperatureTemplate", schema.String("Template to extract current temp")),
			p("modeCommandTopic", schema.String("Topic to set operation mode")),
			p("modeStateTopic", schema.String("Topic to read operation mode")),
			p("modeCommandTemplate", schema.String("Template for mode command")),
			p("modeStateTemplate", schema.String("Template to extract mode")),
			p("modes", schema.StringList("Supported modes (e.g. off, eco, electric, gas, heat_pump, high_demand, performance)")),
			p("powerCommandTopic", schema.String("Topic to publish on/off commands")),
			p("payloadOn", schema.String("Payload for on (default: ON)")),
			p("payloadOff", schema.String("Payload for off (default: OFF)")),
			p("minTemp", schema.Number("Minimum target temperature (default: 110)")),
			p("maxTemp", schema.Number("Maximum target temperature (default: 140)")),
			p("temperatureUnit", schema.Enum("Temperature unit", "C", "F")),
			p("precision", schema.Number("Temperature precision (default: 0.1)")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
	}
}

func mqttVacuum() Entity {
	return Entity{
		Kind:        "MQTTVacuum",
		Singular:    "mqttvacuum",
		Plural:      "mqttvacuums",
		Component:   "vacuum",
		Description: "Robot vacuum entity with start, stop, pause, return to base, and cleaning features",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic for basic commands (start, stop, return_to_base, etc.)")),
			p("stateTopic", schema.String("Topic to read vacuum state")),
			p("sendCommandTopic", schema.String("Topic for custom commands")),
			p("setFanSpeedTopic", schema.String("Topic for fan speed commands")),
			p("fanSpeedList", schema.StringList("List of supported fan speeds")),
			p("payloadStart", schema.String("Payload for start command (default: start)")),
			p("payloadStop", schema.String("Payload for stop command (default: stop)")),
			p("payloadPause", schema.String("Payload for pause command (default: pause)")),
			p("payloadReturnToBase", schema.String("Payload for return to base command (default: return_to_base)")),
			p("payloadCleanSpot", schema.String("Payload for clean spot command (default: clean_spot)")),
			p("payloadLocate", schema.String("Payload for locate command (default: locate)")),
			p("supportedFeatures", schema.StringList("Supported features (e.g. start, stop, pause, return_home, fan_speed, send_command, locate, clean_spot)")),
			p("schema", schema.Enum("Vacuum schema", "legacy", "state")),
		},
	}
}

func mqttLawnMower() Entity {
	return Entity{
		Kind:        "MQTTLawnMower",
		Singular:    "mqttlawnmower",
		Plural:      "mqttlawnmowers",
		Component:   "lawn_mower",
		Description: "Robot lawn mower entity with start mowing, pause, and dock commands",
		Properties: schema.Properties{
			p("activityStateTopic", schema.String("Topic to read mower activity state")),
			p("activityValueTemplate", schema.String("Template to extract activity from payload")),
			p("dockCommandTopic", schema.String("Topic to publish dock command")),
			p("dockCommandTemplate", schema.String("Template for dock command payload")),
			p("pauseCommandTopic", schema.String("Topic to publish pause command")),
			p("pauseCommandTemplate", schema.String("Template for pause command payload")),
			p("startMowingCommandTopic", schema.String("Topic to publish start mowing command")),
			p("startMowingCommandTemplate", schema.String("Template for start mowing command payload")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
	}
}

func mqttAlarmControlPanel() Entity {
	return Entity{
		Kind:        "MQTTAlarmControlPanel",
		Singular:    "mqttalarmcontrolpanel",
		Plural:      "mqttalarmcontrolpanels",
		Component:   "alarm_control_panel",
		Description: "Alarm control panel entity with arm/disarm modes and optional code support",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish arm/disarm commands")),
			p("stateTopic", schema.String("Topic to read alarm state")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("payloadArmHome", schema.String("Payload for arm home (default: ARM_HOME)")),
			p("payloadArmAway", schema.String("Payload for arm away (default: ARM_AWAY)")),
			p("payloadArmNight", schema.String("Payload for arm night (default: ARM_NIGHT)")),
			p("payloadArmVacation", schema.String("Payload for arm vacation (default: ARM_VACATION)")),
			p("payloadArmCustomBypass", schema.String("Payload for arm custom bypass (default: ARM_CUSTOM_BYPASS)")),
			p("payloadDisarm", schema.String("Payload for disarm (default: DISARM)")),
			p("payloadTrigger", schema.String("Payload for trigger")),
			p("codeArmRequired", schema.Boolean("Whether code is required to arm (default: true)")),
			p("codeDisarmRequired", schema.Boolean("Whether code is required to disarm (default: true)")),
			p("codeTriggerRequired", schema.Boolean("Whether code is required to trigger (default: true)")),
			p("codeFormat", schema.Enum("Code format", "number", "text")),
			p("supportedFeatures", schema.StringList("Supported features (e.g. arm_home, arm_away, arm_night, trigger)")),
		},
		Required: []string{"commandTopic", "stateTopic"},
	}
}

func mqttDeviceTracker() Entity {
	return Entity{
		Kind:        "MQTTDeviceTracker",
		Singular:    "mqttdevicetracker",
		Plural:      "mqttdevicetrackers",
		Component:   "device_tracker",
		Description: "Device tracker entity for presence detection and location tracking via MQTT",
		Properties: schema.Properties{
			p("stateTopic", schema.String("Topic to read tracker state (home/not_home or zone name)")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("payloadHome", schema.String("Payload representing home (default: home)")),
			p("payloadNotHome", schema.String("Payload representing not home (default: not_home)")),
			p("payloadReset", schema.String("Payload that resets the tracker to unknown")),
			p("sourceType", schema.String("Source type (e.g. gps, router, bluetooth, bluetooth_le)")),
		},
		Required: []string{"stateTopic"},
	}
}

func mqttDeviceTrigger() Entity {
	return Entity{
		Kind:        "MQTTDeviceTrigger",
		Singular:    "mqttdevicetrigger",
		Plural:      "mqttdevicetriggers",
		Component:   "device_automation",
		Description: "Device automation trigger that fires when a specific MQTT message is received",
		Properties: schema.Properties{
			p("topic", schema.String("MQTT topic to subscribe to for trigger events")),
			p("payload", schema.String("Specific payload that triggers the automation")),
			p("valueTemplate", schema.String("Template to extract value from payload")),
			p("type", schema.String("Trigger type (e.g. button_short_press, button_long_press)")),
			p("subtype", schema.String("Trigger subtype (e.g. button_1, turn_on)")),
			p("automationType", schema.String("Automation type (always trigger)")),
		},
		Required: []string{"topic", "type", "subtype"},
	}
}

func mqttEvent() Entity {
	return Entity{
		Kind:        "MQTTEvent",
		Singular:    "mqttevent",
		Plural:      "mqttevents",
		Component:   "event",
		Description: "Event entity for stateless events such as button presses or doorbell rings",
		Properties: schema.Properties{
			p("stateTopic", schema.String("Topic to subscribe to for events")),
			p("valueTemplate", schema.String("Template to extract event type from payload")),
			p("eventTypes", schema.StringList("List of supported event types")),
			p("deviceClass", schema.Enum("Event device class", "button", "doorbell", "motion")),
		},
		Required: []string{"stateTopic", "eventTypes"},
	}
}
