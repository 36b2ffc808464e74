package driver

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"quill/compiler-go/pkg/ast"
)

// Quill sources reach the checker as serialized, already-parsed syntax
// trees (".ast.yml"). Each file holds one module node; the decoder rebuilds
// the ast.Node tree and rejects unknown kinds and stray fields.

type fixtureNode struct {
	Kind     string         `yaml:"kind"`
	Value    string         `yaml:"value,omitempty"`
	Line     int            `yaml:"line,omitempty"`
	Col      int            `yaml:"col,omitempty"`
	Children []*fixtureNode `yaml:"children,omitempty"`
}

// DecodeModule parses a serialized module tree.
func DecodeModule(data []byte) (*ast.Node, error) {
	var raw fixtureNode
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("fixture: parse module: %w", err)
	}
	node, err := raw.toNode()
	if err != nil {
		return nil, err
	}
	if node.Kind != ast.KindModule {
		return nil, fmt.Errorf("fixture: top-level node is %s, want module", node.Kind)
	}
	return node, nil
}

func (f *fixtureNode) toNode() (*ast.Node, error) {
	if f == nil {
		return ast.New(ast.KindNone), nil
	}
	kind, ok := ast.KindFromName(f.Kind)
	if !ok {
		return nil, fmt.Errorf("fixture: unknown node kind %q", f.Kind)
	}
	node := ast.New(kind)
	node.Value = f.Value
	node.Span = ast.Span{Line: f.Line, Column: f.Col}
	for _, child := range f.Children {
		decoded, err := child.toNode()
		if err != nil {
			return nil, err
		}
		node.Add(decoded)
	}
	return node, nil
}

// EncodeModule serializes a module tree back to the fixture format. Used by
// tooling that round-trips trees between implementations.
func EncodeModule(node *ast.Node) ([]byte, error) {
	if node == nil {
		return nil, fmt.Errorf("fixture: nil module")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fromNode(node)); err != nil {
		return nil, fmt.Errorf("fixture: marshal module: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("fixture: encoder close: %w", err)
	}
	return buf.Bytes(), nil
}

func fromNode(node *ast.Node) *fixtureNode {
	f := &fixtureNode{
		Kind:  node.Kind.String(),
		Value: node.Value,
		Line:  node.Span.Line,
		Col:   node.Span.Column,
	}
	for _, child := range node.Children {
		f.Children = append(f.Children, fromNode(child))
	}
	return f
}
