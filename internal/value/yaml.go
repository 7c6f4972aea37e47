package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML tags produced and understood by the YAML conversion.
const (
	yamlTagNull  = "!!null"
	yamlTagBool  = "!!bool"
	yamlTagInt   = "!!int"
	yamlTagFloat = "!!float"
	yamlTagStr   = "!!str"
	yamlTagMerge = "!!merge"
)

// ErrUnsupportedYAMLNode indicates a YAML node kind that has no Value counterpart.
var ErrUnsupportedYAMLNode = errors.New("unsupported YAML node")

// ParseYAML decodes YAML text into a Value, preserving mapping key order.
// Since YAML is a superset of JSON, JSON text is accepted as well.
// Empty input yields null.
func ParseYAML(data []byte) (Value, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return Null(), fmt.Errorf("failed to parse YAML: %w", err)
	}

	return fromNode(&document)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := fromNode(node)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler. Map keys keep their insertion order.
func (v Value) MarshalYAML() (any, error) {
	return v.toNode(), nil
}

func fromNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case 0:
		return Null(), nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}

		return fromNode(node.Content[0])
	case yaml.AliasNode:
		return fromNode(node.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))

		for _, child := range node.Content {
			item, err := fromNode(child)
			if err != nil {
				return Null(), err
			}

			items = append(items, item)
		}

		return List(items...), nil
	case yaml.MappingNode:
		return fromMappingNode(node)
	case yaml.ScalarNode:
		return fromScalarNode(node)
	default:
		return Null(), fmt.Errorf("%w: kind %d", ErrUnsupportedYAMLNode, node.Kind)
	}
}

func fromMappingNode(node *yaml.Node) (Value, error) {
	result := Map()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		// "<<: *anchor" merges the referenced mapping without overriding explicit keys.
		if keyNode.Tag == yamlTagMerge {
			merged, err := fromNode(valueNode)
			if err != nil {
				return Null(), err
			}

			for _, field := range merged.Fields() {
				if _, exists := result.fields[field.Key]; !exists {
					result.set(field.Key, field.Value)
				}
			}

			continue
		}

		item, err := fromNode(valueNode)
		if err != nil {
			return Null(), err
		}

		result.set(keyNode.Value, item)
	}

	return result, nil
}

func fromScalarNode(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case yamlTagNull:
		return Null(), nil
	case yamlTagBool:
		var b bool
		if err := node.Decode(&b); err != nil {
			return Null(), err
		}

		return Bool(b), nil
	case yamlTagInt:
		var i int64
		if err := node.Decode(&i); err != nil {
			return Null(), err
		}

		return Int(i), nil
	case yamlTagFloat:
		var f float64
		if err := node.Decode(&f); err != nil {
			return Null(), err
		}

		return Float(f), nil
	default:
		return String(node.Value), nil
	}
}

func (v Value) toNode() *yaml.Node {
	switch v.kind {
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlTagBool, Value: strconv.FormatBool(v.boolean)}
	case KindNumber:
		tag := yamlTagInt
		if strings.ContainsAny(v.text, ".eE") {
			tag = yamlTagFloat
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.text}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlTagStr, Value: v.text}
	case KindList:
		node := &yaml.Node{Kind: yaml.SequenceNode, Content: make([]*yaml.Node, 0, len(v.items))}
		for _, item := range v.items {
			node.Content = append(node.Content, item.toNode())
		}

		return node
	case KindMap:
		node := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, 2*len(v.keys))}
		for _, key := range v.keys {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlTagStr, Value: key},
				v.fields[key].toNode(),
			)
		}

		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlTagNull, Value: "null"}
	}
}
