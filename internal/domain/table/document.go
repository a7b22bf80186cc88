package table

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a table, shared by the embedded resource,
// exports and snapshots.
type Document struct {
	Model      string         `yaml:"model" json:"model"`
	Source     string         `yaml:"source" json:"source"`
	Version    string         `yaml:"version" json:"version"`
	Parameters []ParameterDoc `yaml:"parameters" json:"parameters"`
}

// ParameterDoc is one parameter of a Document.
type ParameterDoc struct {
	Name     string   `yaml:"name" json:"name"`
	Units    string   `yaml:"units" json:"units"`
	Analyses Analyses `yaml:"analyses" json:"analyses"`
}

// EstimateDoc is one estimate of a ParameterDoc. Limits68 must hold exactly
// two values; New rejects anything else.
type EstimateDoc struct {
	Value    float64   `yaml:"value" json:"value"`
	Limits68 []float64 `yaml:"limits68" json:"limits68"`
}

// Analyses maps analysis-variant keys to estimates. It encodes in canonical
// variant order rather than lexical order.
type Analyses map[string]EstimateDoc

// MarshalYAML emits one flow-style line per variant, matching the layout of
// the embedded resource.
func (a Analyses) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range orderedVariants(a) {
		var val yaml.Node
		if err := val.Encode(a[key]); err != nil {
			return nil, err
		}
		val.Style = yaml.FlowStyle
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key, Style: yaml.DoubleQuotedStyle},
			&val,
		)
	}
	return node, nil
}

// MarshalJSON emits keys in canonical variant order.
func (a Analyses) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range orderedVariants(a) {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(a[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
