package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	amperrors "github.com/amp-labs/amp-fp/errors"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes r as a JSON object with keys in insertion order.
func (r *Record[V]) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("record key %q: %w", k, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping keys in document order. Existing
// contents are replaced. A JSON null leaves r empty.
func (r *Record[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	r.keys = nil
	r.values = make(map[string]V)

	if tok == nil {
		return nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: record expects a JSON object, got %v", amperrors.ErrUnsupportedValue, tok)
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: record key %v is not a string", amperrors.ErrUnsupportedValue, tok)
		}

		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("record key %q: %w", key, err)
		}

		r.Set(key, value)
	}

	_, err = dec.Token()

	return err
}

// MarshalYAML encodes r as a YAML mapping with keys in insertion order.
func (r *Record[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for k, v := range r.All() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(k); err != nil {
			return nil, err
		}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(v); err != nil {
			return nil, fmt.Errorf("record key %q: %w", k, err)
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, keeping keys in document order. Existing
// contents are replaced. A YAML null leaves r empty.
func (r *Record[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	r.keys = nil
	r.values = make(map[string]V)

	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: record expects a YAML mapping at line %d", amperrors.ErrUnsupportedValue, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("record key at line %d: %w", node.Content[i].Line, err)
		}

		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("record key %q: %w", key, err)
		}

		r.Set(key, value)
	}

	return nil
}
