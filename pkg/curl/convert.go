package curl

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// ToNode converts a ParsedRequest to an AST ObjectNode:
//
//	{ "type": "curl", "url": "...", "method": "POST",
//	  "name": "Example — POST /items",
//	  "headers": [{"key": "Content-Type", "value": "application/json"}, ...],
//	  "body": "..." }
//
// Headers are sorted by name; "body" is present only when the request has
// one.
func ToNode(req *ParsedRequest) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("curl", zeroPos),
		"url":     ast.NewLiteralNode(req.URL, zeroPos),
		"method":  ast.NewLiteralNode(req.Method, zeroPos),
		"name":    ast.NewLiteralNode(req.SuggestedName, zeroPos),
		"headers": headersToNode(req.Headers),
	}
	if req.Body != nil {
		props["body"] = ast.NewLiteralNode(*req.Body, zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// FromNode converts an AST ObjectNode produced by ToNode back to a
// ParsedRequest. The url and method properties are required.
func FromNode(node ast.SchemaNode) (*ParsedRequest, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("curl: FromNode: expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if typ := literalString(props["type"]); typ != "curl" {
		return nil, fmt.Errorf("curl: FromNode: unknown node type %q", typ)
	}

	req := &ParsedRequest{
		URL:           literalString(props["url"]),
		Method:        literalString(props["method"]),
		SuggestedName: literalString(props["name"]),
		Headers:       Headers{},
	}
	if req.URL == "" {
		return nil, fmt.Errorf("curl: FromNode: missing 'url' property")
	}
	if req.Method == "" {
		return nil, fmt.Errorf("curl: FromNode: missing 'method' property")
	}

	if v, ok := props["body"]; ok {
		lit, ok := v.(*ast.LiteralNode)
		if !ok {
			return nil, fmt.Errorf("curl: FromNode: 'body' is not a literal")
		}
		body, _ := lit.Value().(string)
		req.Body = &body
	}

	if v, ok := props["headers"]; ok {
		if err := nodeToHeaders(v, req.Headers); err != nil {
			return nil, fmt.Errorf("curl: FromNode: %w", err)
		}
	}
	return req, nil
}

// ToMap returns the ToNode form of req as plain values (map[string]any,
// []any and string), ready for a JSON or YAML encoder.
func ToMap(req *ParsedRequest) map[string]any {
	m, _ := nodeValue(ToNode(req)).(map[string]any)
	return m
}

// FromMap is the inverse of ToMap. It accepts the generic values a JSON or
// YAML decoder produces.
func FromMap(m map[string]any) (*ParsedRequest, error) {
	node, err := valueNode(m)
	if err != nil {
		return nil, fmt.Errorf("curl: FromMap: %w", err)
	}
	return FromNode(node)
}

func nodeValue(node ast.SchemaNode) any {
	switch n := node.(type) {
	case *ast.ObjectNode:
		out := make(map[string]any, len(n.Properties()))
		for name, child := range n.Properties() {
			out[name] = nodeValue(child)
		}
		return out
	case *ast.ArrayDataNode:
		out := make([]any, 0, len(n.Elements()))
		for _, child := range n.Elements() {
			out = append(out, nodeValue(child))
		}
		return out
	case *ast.LiteralNode:
		return n.Value()
	}
	return nil
}

func valueNode(v any) (ast.SchemaNode, error) {
	switch v := v.(type) {
	case map[string]any:
		props := make(map[string]ast.SchemaNode, len(v))
		for name, child := range v {
			node, err := valueNode(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			props[name] = node
		}
		return ast.NewObjectNode(props, zeroPos), nil
	case []any:
		elements := make([]ast.SchemaNode, len(v))
		for i, child := range v {
			node, err := valueNode(child)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			elements[i] = node
		}
		return ast.NewArrayDataNode(elements, zeroPos), nil
	case string:
		return ast.NewLiteralNode(v, zeroPos), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

func headersToNode(headers Headers) ast.SchemaNode {
	names := headers.Names()
	elements := make([]ast.SchemaNode, len(names))
	for i, name := range names {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(name, zeroPos),
			"value": ast.NewLiteralNode(headers[name], zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

func nodeToHeaders(node ast.SchemaNode, into Headers) error {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}
	for _, elem := range arr.Elements() {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		into[literalString(props["key"])] = literalString(props["value"])
	}
	return nil
}

// literalString returns the string value of a literal node, or "".
func literalString(node ast.SchemaNode) string {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}
