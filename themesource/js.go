/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package themesource

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ErrNoThemeObject is returned when a script source contains no
// recognizable theme object literal.
var ErrNoThemeObject = errors.New("no theme object literal found")

// ParseScript parses a JS/TS theme module and converts its exported theme
// object literal into a raw token tree. Recognized shapes, in preference
// order: a default export object, module.exports assignment, an exported
// const whose name mentions theme or tokens, any exported const object,
// and finally any top-level const object. Non-literal members (spreads,
// function calls, identifiers) are skipped as non-classifiable.
func ParseScript(source []byte, path string) (map[string]any, error) {
	parser := ts.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(ts.NewLanguage(grammarFor(path))); err != nil {
		return nil, err
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, errors.New("parser returned nil tree")
	}
	defer tree.Close()

	obj := findThemeObject(tree.RootNode(), source)
	if obj == nil {
		return nil, ErrNoThemeObject
	}
	return objectToMap(obj, source), nil
}

// grammarFor selects the tree-sitter grammar by file extension.
func grammarFor(path string) unsafe.Pointer {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return ts_typescript.LanguageTypescript()
	case ".tsx":
		return ts_typescript.LanguageTSX()
	default:
		return ts_javascript.Language()
	}
}

// findThemeObject locates the theme object literal in a parsed module.
func findThemeObject(root *ts.Node, source []byte) *ts.Node {
	var exportedNamed, exported, topLevel *ts.Node

	for i := uint(0); i < root.NamedChildCount(); i++ {
		statement := root.NamedChild(i)
		switch statement.Kind() {
		case "export_statement":
			// export default {...}
			if value := statement.ChildByFieldName("value"); value != nil {
				if obj := unwrapObject(value); obj != nil {
					return obj
				}
			}
			if decl := statement.ChildByFieldName("declaration"); decl != nil {
				name, obj := declaredObject(decl, source)
				if obj == nil {
					continue
				}
				if exportedNamed == nil && mentionsTheme(name) {
					exportedNamed = obj
				}
				if exported == nil {
					exported = obj
				}
			}
		case "expression_statement":
			// module.exports = {...}
			if obj := moduleExportsObject(statement, source); obj != nil {
				return obj
			}
		case "lexical_declaration", "variable_declaration":
			name, obj := declaredObject(statement, source)
			if obj == nil {
				continue
			}
			if topLevel == nil || mentionsTheme(name) {
				topLevel = obj
			}
		}
	}

	if exportedNamed != nil {
		return exportedNamed
	}
	if exported != nil {
		return exported
	}
	return topLevel
}

// declaredObject returns the name and object value of the first
// variable declarator in a declaration node whose value is an object
// literal, or nil when there is none.
func declaredObject(decl *ts.Node, source []byte) (string, *ts.Node) {
	for i := uint(0); i < decl.NamedChildCount(); i++ {
		child := decl.NamedChild(i)
		if child.Kind() != "variable_declarator" {
			continue
		}
		value := child.ChildByFieldName("value")
		obj := unwrapObject(value)
		if obj == nil {
			continue
		}
		name := ""
		if nameNode := child.ChildByFieldName("name"); nameNode != nil {
			name = nameNode.Utf8Text(source)
		}
		return name, obj
	}
	return "", nil
}

// moduleExportsObject recognizes a module.exports = {...} assignment.
func moduleExportsObject(statement *ts.Node, source []byte) *ts.Node {
	expr := statement.NamedChild(0)
	if expr == nil || expr.Kind() != "assignment_expression" {
		return nil
	}
	left := expr.ChildByFieldName("left")
	if left == nil || left.Utf8Text(source) != "module.exports" {
		return nil
	}
	return unwrapObject(expr.ChildByFieldName("right"))
}

func mentionsTheme(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "theme") || strings.Contains(lower, "token")
}

// unwrapObject strips parentheses and TypeScript as/satisfies wrappers
// and returns the node when it is an object literal.
func unwrapObject(node *ts.Node) *ts.Node {
	for node != nil {
		switch node.Kind() {
		case "object":
			return node
		case "parenthesized_expression", "as_expression", "satisfies_expression", "non_null_expression":
			node = node.NamedChild(0)
		default:
			return nil
		}
	}
	return nil
}

// objectToMap converts an object literal node into a raw token tree.
func objectToMap(obj *ts.Node, source []byte) map[string]any {
	result := make(map[string]any)
	for i := uint(0); i < obj.NamedChildCount(); i++ {
		pair := obj.NamedChild(i)
		if pair.Kind() != "pair" {
			continue
		}
		key, ok := pairKey(pair.ChildByFieldName("key"), source)
		if !ok {
			continue
		}
		value, ok := literalValue(pair.ChildByFieldName("value"), source)
		if !ok {
			continue
		}
		result[key] = value
	}
	return result
}

// pairKey extracts an object member key; computed keys are skipped.
func pairKey(key *ts.Node, source []byte) (string, bool) {
	if key == nil {
		return "", false
	}
	switch key.Kind() {
	case "property_identifier", "number":
		return key.Utf8Text(source), true
	case "string":
		return unquote(key.Utf8Text(source)), true
	default:
		return "", false
	}
}

// literalValue converts a value node into a Go value. Non-literal values
// report false and are skipped by the caller.
func literalValue(value *ts.Node, source []byte) (any, bool) {
	value = unwrapExpr(value)
	if value == nil {
		return nil, false
	}
	switch value.Kind() {
	case "object":
		return objectToMap(value, source), true
	case "string", "template_string":
		return unquote(value.Utf8Text(source)), true
	case "number", "unary_expression":
		return parseNumber(value.Utf8Text(source))
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return nil, false
	}
}

// unwrapExpr strips parentheses and TypeScript expression wrappers.
func unwrapExpr(node *ts.Node) *ts.Node {
	for node != nil {
		switch node.Kind() {
		case "parenthesized_expression", "as_expression", "satisfies_expression", "non_null_expression":
			node = node.NamedChild(0)
		default:
			return node
		}
	}
	return nil
}

func parseNumber(text string) (any, bool) {
	text = strings.ReplaceAll(text, "_", "")
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f, true
	}
	// Hex and binary literals
	if n, err := strconv.ParseInt(text, 0, 64); err == nil {
		return float64(n), true
	}
	return nil, false
}

func unquote(text string) string {
	if len(text) >= 2 {
		switch text[0] {
		case '"', '\'', '`':
			if text[len(text)-1] == text[0] {
				return text[1 : len(text)-1]
			}
		}
	}
	return text
}
