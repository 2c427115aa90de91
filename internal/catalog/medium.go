package catalog

import "github.com/hass-crds/crd-gen/internal/schema"

func mqttLight() Entity {
	return Entity{
		Kind:        "MQTTLight",
		Singular:    "mqttlight",
		Plural:      "mqttlights",
		Component:   "light",
		Description: "Light entity with optional brightness, color temperature, and RGB color support",
		Properties: schema.Properties{
			p("schema", schema.Enum("Light schema mode", "default", "json", "template")),
			p("commandTopic", schema.String("Topic to publish on/off commands")),
			p("stateTopic", schema.String("Topic to read current state")),
			p("payloadOn", schema.String("Payload for on (default: ON)")),
			p("payloadOff", schema.String("Payload for off (default: OFF)")),
			p("brightnessCommandTopic", schema.String("Topic for brightness commands")),
			p("brightnessStateTopic", schema.String("Topic for brightness state")),
			p("brightnessScale", schema.Integer("Max brightness value (default: 255)")),
			p("brightnessValueTemplate", schema.String("Template to extract brightness")),
			p("colorTempCommandTopic", schema.String("Topic for color temperature commands")),
			p("colorTempStateTopic", schema.String("Topic for color temperature state")),
			p("colorTempValueTemplate", schema.String("Template to extract color temp")),
			p("rgbCommandTopic", schema.String("Topic for RGB color commands")),
			p("rgbStateTopic", schema.String("Topic for RGB color state")),
			p("rgbCommandTemplate", schema.String("Template for RGB command payload")),
			p("rgbValueTemplate", schema.String("Template to extract RGB state")),
			p("effectCommandTopic", schema.String("Topic for effect commands")),
			p("effectStateTopic", schema.String("Topic for effect state")),
			p("effectList", schema.StringList("List of supported effects")),
			p("effectValueTemplate", schema.String("Template to extract effect")),
			p("minMireds", schema.Integer("Minimum color temp in mireds")),
			p("maxMireds", schema.Integer("Maximum color temp in mireds")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
			p("onCommandType", schema.Enum("On command type", "last", "first", "brightness")),
			p("brightness", schema.Boolean("Enable brightness support (JSON schema)")),
			p("colorTemp", schema.Boolean("Enable color temperature (JSON schema)")),
			p("effect", schema.Boolean("Enable effects (JSON schema)")),
			p("supportedColorModes", schema.StringList("Supported color modes (e.g. rgb, xy, hs, color_temp)")),
			p("commandOnTemplate", schema.String("Template for on command (template schema)")),
			p("commandOffTemplate", schema.String("Template for off command (template schema)")),
			p("stateTemplate", schema.String("Template to extract state (template schema)")),
			p("brightnessTemplate", schema.String("Template to extract brightness (template schema)")),
			p("colorTempTemplate", schema.String("Template to extract color temp (template schema)")),
			p("redTemplate", schema.String("Template to extract red value (template schema)")),
			p("greenTemplate", schema.String("Template to extract green value (template schema)")),
			p("blueTemplate", schema.String("Template to extract blue value (template schema)")),
		},
		Required: []string{"commandTopic"},
	}
}

func mqttCover() Entity {
	return Entity{
		Kind:        "MQTTCover",
		Singular:    "mqttcover",
		Plural:      "mqttcovers",
		Component:   "cover",
		Description: "Cover entity for garage doors, blinds, shutters, and similar devices",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic for open/close/stop commands")),
			p("stateTopic", schema.String("Topic to read cover state")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("positionTopic", schema.String("Topic to read current position")),
			p("setPositionTopic", schema.String("Topic to publish position commands")),
			p("setPositionTemplate", schema.String("Template for position command payload")),
			p("positionTemplate", schema.String("Template to extract position from payload")),
			p("tiltCommandTopic", schema.String("Topic for tilt commands")),
			p("tiltStatusTopic", schema.String("Topic to read tilt position")),
			p("tiltStatusTemplate", schema.String("Template to extract tilt from payload")),
			p("payloadOpen", schema.String("Payload for open command (default: OPEN)")),
			p("payloadClose", schema.String("Payload for close command (default: CLOSE)")),
			p("payloadStop", schema.String("Payload for stop command (default: STOP)")),
			p("stateOpen", schema.String("State value meaning open (default: open)")),
			p("stateClosed", schema.String("State value meaning closed (default: closed)")),
			p("stateOpening", schema.String("State value meaning opening (default: opening)")),
			p("stateClosing", schema.String("State value meaning closing (default: closing)")),
			p("stateStopped", schema.String("State value meaning stopped (default: stopped)")),
			p("positionOpen", schema.Integer("Position value for fully open (default: 100)")),
			p("positionClosed", schema.Integer("Position value for fully closed (default: 0)")),
			p("tiltMin", schema.Integer("Minimum tilt value (default: 0)")),
			p("tiltMax", schema.Integer("Maximum tilt value (default: 100)")),
			p("deviceClass", schema.Enum("Cover device class", "awning", "blind", "curtain", "damper", "door", "garage", "gate", "shade", "shutter", "window")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
	}
}

func mqttLock() Entity {
	return Entity{
		Kind:        "MQTTLock",
		Singular:    "mqttlock",
		Plural:      "mqttlocks",
		Component:   "lock",
		Description: "Lock entity with optional code support",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish lock/unlock commands")),
			p("stateTopic", schema.String("Topic to read current lock state")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("payloadLock", schema.String("Payload for lock command (default: LOCK)")),
			p("payloadUnlock", schema.String("Payload for unlock command (default: UNLOCK)")),
			p("payloadOpen", schema.String("Payload for open command (unlatch)")),
			p("stateLocked", schema.String("State value meaning locked (default: LOCKED)")),
			p("stateUnlocked", schema.String("State value meaning unlocked (default: UNLOCKED)")),
			p("stateLocking", schema.String("State value meaning locking (default: LOCKING)")),
			p("stateUnlocking", schema.String("State value meaning unlocking (default: UNLOCKING)")),
			p("stateJammed", schema.String("State value meaning jammed (default: JAMMED)")),
			p("codeFormat", schema.String("Regex for valid codes (e.g. ^\\d{4}$)")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
		Required: []string{"commandTopic"},
	}
}

func mqttValve() Entity {
	return Entity{
		Kind:        "MQTTValve",
		Singular:    "mqttvalve",
		Plural:      "mqttvalves",
		Component:   "valve",
		Description: "Valve entity for controlling water, gas, or irrigation valves",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish open/close commands")),
			p("stateTopic", schema.String("Topic to read current valve state")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("positionTopic", schema.String("Topic to read current position")),
			p("setPositionTopic", schema.String("Topic to publish position commands")),
			p("setPositionTemplate", schema.String("Template for position command payload")),
			p("positionTemplate", schema.String("Template to extract position from payload")),
			p("payloadOpen", schema.String("Payload for open command (default: OPEN)")),
			p("payloadClose", schema.String("Payload for close command (default: CLOSE)")),
			p("payloadStop", schema.String("Payload for stop command (default: STOP)")),
			p("stateOpen", schema.String("State value meaning open (default: open)")),
			p("stateClosed", schema.String("State value meaning closed (default: closed)")),
			p("stateOpening", schema.String("State value meaning opening (default: opening)")),
			p("stateClosing", schema.String("State value meaning closing (default: closing)")),
			p("deviceClass", schema.Enum("Valve device class", "water", "gas")),
			p("reportsPosition", schema.Boolean("Whether the valve reports position")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
	}
}

func mqttFan() Entity {
	return Entity{
		Kind:        "MQTTFan",
		Singular:    "mqttfan",
		Plural:      "mqttfans",
		Component:   "fan",
		Description: "Fan entity with speed, direction, oscillation, and preset mode support",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish on/off commands")),
			p("stateTopic", schema.String("Topic to read current on/off state")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("payloadOn", schema.String("Payload for on (default: ON)")),
			p("payloadOff", schema.String("Payload for off (default: OFF)")),
			p("percentageCommandTopic", schema.String("Topic for speed percentage commands")),
			p("percentageStateTopic", schema.String("Topic to read speed percentage")),
			p("percentageCommandTemplate", schema.String("Template for percentage command")),
			p("percentageValueTemplate", schema.String("Template to extract percentage")),
			p("speedRangeMin", schema.Integer("Minimum speed value (default: 1)")),
			p("speedRangeMax", schema.Integer("Maximum speed value (default: 100)")),
			p("presetModeCommandTopic", schema.String("Topic for preset mode commands")),
			p("presetModeStateTopic", schema.String("Topic to read preset mode")),
			p("presetModeCommandTemplate", schema.String("Template for preset mode command")),
			p("presetModeValueTemplate", schema.String("Template to extract preset mode")),
			p("presetModes", schema.StringList("List of supported preset modes")),
			p("oscillationCommandTopic", schema.String("Topic for oscillation commands")),
			p("oscillationStateTopic", schema.String("Topic to read oscillation state")),
			p("oscillationCommandTemplate", schema.String("Template for oscillation command")),
			p("oscillationValueTemplate", schema.String("Template to extract oscillation state")),
			p("payloadOscillationOn", schema.String("Payload for oscillation on (default: oscillate_on)")),
			p("payloadOscillationOff", schema.String("Payload for oscillation off (default: oscillate_off)")),
			p("directionCommandTopic", schema.String("Topic for direction commands")),
			p("directionStateTopic", schema.String("Topic to read direction state")),
			p("directionValueTemplate", schema.String("Template to extract direction")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
		Required: []string{"commandTopic"},
	}
}

func mqttSiren() Entity {
	return Entity{
		Kind:        "MQTTSiren",
		Singular:    "mqttsiren",
		Plural:      "mqttsirens",
		Component:   "siren",
		Description: "Siren entity with optional tone, volume, and duration support",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish on/off commands")),
			p("stateTopic", schema.String("Topic to read current state")),
			p("commandTemplate", schema.String("Template for the command payload")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("payloadOn", schema.String("Payload for on (default: ON)")),
			p("payloadOff", schema.String("Payload for off (default: OFF)")),
			p("stateOn", schema.String("State value meaning on (default: ON)")),
			p("stateOff", schema.String("State value meaning off (default: OFF)")),
			p("availableTones", schema.StringList("List of supported tones")),
			p("supportTurnOn", schema.Boolean("Whether the siren supports turn on (default: true)")),
			p("supportTurnOff", schema.Boolean("Whether the siren supports turn off (default: true)")),
			p("supportDuration", schema.Boolean("Whether duration is supported (default: true)")),
			p("supportVolumeSet", schema.Boolean("Whether volume level is supported (default: true)")),
			p("optimistic", schema.Boolean("Assume state changes immediately")),
		},
		Required: []string{"commandTopic"},
	}
}

func mqttCamera() Entity {
	return Entity{
		Kind:        "MQTTCamera",
		Singular:    "mqttcamera",
		Plural:      "mqttcameras",
		Component:   "camera",
		Description: "Camera entity that receives images via MQTT",
		Properties: schema.Properties{
			p("topic", schema.String("MQTT topic to subscribe to for image data")),
			p("imageEncoding", schema.String("Image encoding (b64 for base64-encoded images)")),
			p("stateClass", schema.Enum("State class for statistics", "measurement", "total", "total_increasing")),
			p("expireAfter", schema.IntegerMin("Seconds after which the image expires", 0)),
		},
		Required: []string{"topic"},
	}
}

func mqttImage() Entity {
	return Entity{
		Kind:        "MQTTImage",
		Singular:    "mqttimage",
		Plural:      "mqttimages",
		Component:   "image",
		Description: "Image entity that displays a static image from an MQTT topic or URL",
		Properties: schema.Properties{
			p("imageTopic", schema.String("Topic to receive raw image data")),
			p("imageEncoding", schema.String("Image encoding (b64 for base64-encoded images)")),
			p("urlTopic", schema.String("Topic to receive image URL")),
			p("urlTemplate", schema.String("Template to extract URL from payload")),
			p("contentType", schema.String("Image MIME type (default: image/png)")),
		},
	}
}

func mqttNotify() Entity {
	return Entity{
		Kind:        "MQTTNotify",
		Singular:    "mqttnotify",
		Plural:      "mqttnotifys",
		Component:   "notify",
		Description: "Notification service entity that sends messages to a device via MQTT",
		Properties: schema.Properties{
			p("commandTopic", schema.String("Topic to publish notification messages")),
			p("commandTemplate", schema.String("Template for the notification payload")),
		},
		Required: []string{"commandTopic"},
	}
}

func mqttUpdate() Entity {
	return Entity{
		Kind:        "MQTTUpdate",
		Singular:    "mqttupdate",
		Plural:      "mqttupdates",
		Component:   "update",
		Description: "Firmware/software update entity that tracks available updates via MQTT",
		Properties: schema.Properties{
			p("stateTopic", schema.String("Topic with JSON payload containing update info")),
			p("valueTemplate", schema.String("Template to extract state from payload")),
			p("commandTopic", schema.String("Topic to trigger update installation")),
			p("payloadInstall", schema.String("Payload to trigger installation (default: INSTALL)")),
			p("latestVersionTopic", schema.String("Topic to read latest available version")),
			p("latestVersionTemplate", schema.String("Template to extract latest version")),
			p("deviceClass", schema.Enum("Update device class", "firmware")),
			p("entityPicture", schema.String("URL to an image for the update entity")),
			p("releaseUrl", schema.String("URL to release notes")),
			p("releaseSummary", schema.String("Summary of the release")),
			p("title", schema.String("Title of the software/firmware")),
		},
		Required: []string{"stateTopic"},
	}
}
