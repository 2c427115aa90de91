package schema

// Group is a named set of property schemas shared by entity types.
type Group struct {
	Name       string
	Properties Properties
}

func ptr(v float64) *float64 {
	return &v
}

// String returns a string property.
func String(desc string) Schema { return Schema{Type: TypeString, Description: desc} }

// Enum returns a string property restricted to values.
func Enum(desc string, values ...string) Schema {
	return Schema{Type: TypeString, Description: desc, Enum: values}
}

// Integer returns an integer property.
func Integer(desc string) Schema { return Schema{Type: TypeInteger, Description: desc} }

// IntegerMin returns an integer property with a lower bound.
func IntegerMin(desc string, minimum float64) Schema {
	return Schema{Type: TypeInteger, Description: desc, Minimum: ptr(minimum)}
}

// Number returns a number property.
func Number(desc string) Schema { return Schema{Type: TypeNumber, Description: desc} }

// Boolean returns a boolean property.
func Boolean(desc string) Schema { return Schema{Type: TypeBoolean, Description: desc} }

// StringList returns an array of strings.
func StringList(desc string) Schema {
	return Schema{Type: TypeArray, Description: desc, Items: &Schema{Type: TypeString}}
}

// StringPairs returns an array of string arrays.
func StringPairs(desc string) Schema {
	return Schema{
		Type:        TypeArray,
		Description: desc,
		Items:       &Schema{Type: TypeArray, Items: &Schema{Type: TypeString}},
	}
}

// DeviceProperties are the properties of a device registry entry,
// used both by the inline device block and the MQTTDevice kind.
func DeviceProperties() Properties {
	return Properties{
		{"name", String("Device display name")},
		{"identifiers", StringList("List of identifiers (at least one of identifiers or connections is needed)")},
		{"connections", StringPairs("List of [type, value] pairs (e.g. [[mac, aa:bb:cc:dd:ee:ff]])")},
		{"manufacturer", String("Device manufacturer")},
		{"model", String("Device model")},
		{"modelId", String("Device model identifier")},
		{"serialNumber", String("Device serial number")},
		{"hwVersion", String("Hardware version")},
		{"swVersion", String("Software version")},
		{"suggestedArea", String("Suggested area in Home Assistant (e.g. Living Room)")},
		{"configurationUrl", String("URL for device configuration")},
		{"viaDevice", String("Identifier of device that routes messages")},
	}
}

// EntityMetadata are the entity registry fields.
func EntityMetadata() Group {
	return Group{Name: "entity metadata", Properties: Properties{
		{"name", String("Display name in Home Assistant")},
		{"uniqueId", String("Unique identifier for HA entity registry (defaults to <namespace>-<name>)")},
		{"icon", String("MDI icon (e.g. mdi:thermometer)")},
		{"entityCategory", Enum("Entity category", "config", "diagnostic")},
		{"enabledByDefault", Boolean("Whether the entity is enabled when first discovered")},
		{"objectId", String("Override for HA entity ID generation")},
	}}
}

// DeviceBlock is the inline device definition.
func DeviceBlock() Group {
	return Group{Name: "device block", Properties: Properties{
		{"device", Schema{
			Type:        TypeObject,
			Description: "Device configuration for Home Assistant device registry",
			Properties:  DeviceProperties(),
		}},
	}}
}

// DeviceRef references an MQTTDevice resource.
func DeviceRef() Group {
	return Group{Name: "device reference", Properties: Properties{
		{"deviceRef", Schema{
			Type:        TypeObject,
			Description: "Reference to an MQTTDevice resource instead of inline device block",
			Properties: Properties{
				{"name", String("Name of an MQTTDevice resource in the same namespace")},
			},
			Required: []string{"name"},
		}},
	}}
}

// Availability holds the availability topics.
func Availability() Group {
	return Group{Name: "availability", Properties: Properties{
		{"availability", Schema{
			Type:        TypeArray,
			Description: "List of availability topics",
			Items: &Schema{
				Type: TypeObject,
				Properties: Properties{
					{"topic", String("MQTT topic for availability")},
					{"payloadAvailable", String("Payload indicating available (default: online)")},
					{"payloadNotAvailable", String("Payload indicating unavailable (default: offline)")},
					{"valueTemplate", String("Template to extract availability from payload")},
				},
				Required: []string{"topic"},
			},
		}},
		{"availabilityMode", Enum("How to combine multiple availability topics", "all", "any", "latest")},
	}}
}

// MQTTOptions are the transport options.
func MQTTOptions() Group {
	return Group{Name: "transport options", Properties: Properties{
		{"qos", Schema{Type: TypeInteger, Description: "MQTT QoS level", Minimum: ptr(0), Maximum: ptr(2)}},
		{"retain", Boolean("Whether to retain messages on command/state topics")},
		{"encoding", String("Payload encoding (default: utf-8)")},
	}}
}

// JSONAttributes configure the attribute topic.
func JSONAttributes() Group {
	return Group{Name: "json attributes", Properties: Properties{
		{"jsonAttributesTopic", String("MQTT topic for JSON attributes")},
		{"jsonAttributesTemplate", String("Template to extract attributes from payload")},
	}}
}

// Rediscovery is read by the controller only.
func Rediscovery() Group {
	return Group{Name: "rediscovery interval", Properties: Properties{
		{"rediscoverInterval", String("How often to re-publish the discovery config payload (e.g. 5m, 1h)")},
	}}
}

// CommonGroups returns the common groups in merge order.
func CommonGroups() []Group {
	return []Group{
		EntityMetadata(),
		DeviceBlock(),
		DeviceRef(),
		Availability(),
		MQTTOptions(),
		JSONAttributes(),
		Rediscovery(),
	}
}

// CommonProperties returns all common groups merged together. Later groups win on name collisions.
func CommonProperties() Properties {
	var props Properties
	for _, g := range CommonGroups() {
		props.Merge(g.Properties)
	}
	return props
}

// Status is the schema of the status subresource.
func Status() Schema {
	return Schema{
		Type: TypeObject,
		Properties: Properties{
			{"lastPublished", Schema{Type: TypeString, Format: "date-time", Description: "Timestamp of last discovery publish"}},
			{"discoveryTopic", String("MQTT discovery topic path")},
			{"conditions", Schema{
				Type: TypeArray,
				Items: &Schema{
					Type: TypeObject,
					Properties: Properties{
						{"type", String("Condition type (Published, MQTTConnected)")},
						{"status", Schema{Type: TypeString, Enum: []string{"True", "False", "Unknown"}}},
						{"lastTransitionTime", Schema{Type: TypeString, Format: "date-time"}},
						{"reason", Schema{Type: TypeString}},
						{"message", Schema{Type: TypeString}},
					},
					Required: []string{"type", "status"},
				},
			}},
		},
	}
}
