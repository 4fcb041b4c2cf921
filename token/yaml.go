package token

import (
	"fmt"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAML represents a YAML document node
type YAML struct {
	node *yaml.Node
	*options
}

// Node returns underlying node
func (y *YAML) Node() *yaml.Node {
	return y.node
}

// Get returns child node located by mapping keys or sequence indexes
func (y *YAML) Get(keys ...string) (*YAML, error) {
	node := y.node
	for _, key := range keys {
		child, err := childNode(node, key)
		if err != nil {
			return nil, err
		}
		node = child
	}
	return &YAML{node: node, options: y.options}, nil
}

func childNode(node *yaml.Node, key string) (*yaml.Node, error) {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				return node.Content[i+1], nil
			}
		}
		return nil, fmt.Errorf("key %q not found", key)
	case yaml.SequenceNode:
		index, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid sequence index %q: %w", key, err)
		}
		if index < 0 || index >= len(node.Content) {
			return nil, fmt.Errorf("sequence index %v out of range [0, %v)", index, len(node.Content))
		}
		return node.Content[index], nil
	case yaml.AliasNode:
		return childNode(node.Alias, key)
	}
	return nil, fmt.Errorf("failed to get %q: expected mapping or sequence, got %v", key, node.Tag)
}

// ExtractAs returns node value as target type
func (y *YAML) ExtractAs(target reflect.Type) (interface{}, error) {
	if target == nil {
		return nil, fmt.Errorf("target type was nil")
	}
	node := y.node
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return extractNull(target)
	}
	result := reflect.New(target)
	err := node.Decode(result.Interface())
	if err == nil {
		return result.Elem().Interface(), nil
	}
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("failed to extract %v as %v: %w", node.ShortTag(), target, err)
	}
	return y.registry.ConvertValue(node.Value, target)
}

// NewYAML creates YAML token for node
func NewYAML(node *yaml.Node, opts ...Option) *YAML {
	return &YAML{node: node, options: newOptions(opts)}
}

// ParseYAML parses YAML document into its root node, see WithRegistry for the conversion registry in use
func ParseYAML(data []byte, opts ...Option) (*YAML, error) {
	node := &yaml.Node{}
	if err := yaml.Unmarshal(data, node); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return nil, fmt.Errorf("failed to parse YAML: empty document")
	}
	return NewYAML(node, opts...), nil
}
