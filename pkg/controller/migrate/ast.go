package migrate

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/corscheck/pkg/config"
)

// parseConfigAST migrates every document of the YAML content and returns the result.
func parseConfigAST(logE *logrus.Entry, content []byte) (string, error) {
	file, err := parser.ParseBytes(content, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("parse a configuration file as YAML: %w", err)
	}
	for _, doc := range file.Docs {
		if err := parseDocAST(logE, doc); err != nil {
			return "", err
		}
	}
	return file.String(), nil
}

func parseDocAST(logE *logrus.Entry, doc *ast.DocumentNode) error {
	var body *ast.MappingNode
	switch b := doc.Body.(type) {
	case nil:
		// empty document
		return nil
	case *ast.MappingNode:
		body = b
	case *ast.MappingValueNode:
		body = ast.Mapping(b.GetToken(), false, b)
		doc.Body = body
	default:
		return errors.New("document body must be a mapping")
	}
	if err := migrateExtensions(logE, body); err != nil {
		return fmt.Errorf("migrate extensions: %w", err)
	}
	if err := migrateVersion(body); err != nil {
		return fmt.Errorf("migrate version: %w", err)
	}
	return nil
}

// migrateExtensions renames extensions to suffixes.
func migrateExtensions(logE *logrus.Entry, body *ast.MappingNode) error {
	extensionsNode := findNodeByKey(body.Values, "extensions")
	if extensionsNode == nil {
		return nil
	}
	if findNodeByKey(body.Values, "suffixes") != nil {
		return errors.New("both extensions and suffixes are set")
	}
	k, ok := extensionsNode.Key.(*ast.StringNode)
	if !ok {
		return errors.New("the key extensions must be a string")
	}
	k.Value = "suffixes"
	k.Token.Value = "suffixes"
	logE.Debug("renamed extensions to suffixes")
	return nil
}

func migrateVersion(body *ast.MappingNode) error {
	versionNode := findNodeByKey(body.Values, "version")
	if versionNode == nil {
		node, err := yaml.ValueToNode(map[string]any{
			"version": config.CurrentVersion,
		})
		if err != nil {
			return fmt.Errorf("convert version to node: %w", err)
		}
		body.Merge(node.(*ast.MappingNode)) //nolint:forcetypeassert
		return nil
	}

	switch v := versionNode.Value.(type) {
	case *ast.IntegerNode:
		v.Token.Value = "1"
		v.Value = config.CurrentVersion
		return nil
	default:
		return errors.New("version must be a number")
	}
}

func findNodeByKey(values []*ast.MappingValueNode, key string) *ast.MappingValueNode {
	for _, value := range values {
		k, ok := value.Key.(*ast.StringNode)
		if !ok {
			continue
		}
		if k.Value == key {
			return value
		}
	}
	return nil
}
