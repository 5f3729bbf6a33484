package core

import (
	"encoding/xml"
	"fmt"
)

// ConfigModule is one node of a rule-configuration tree. The analyzer's
// config format is a recursive <module> element carrying name-value
// properties, with the scaffold modules Checker and TreeWalker at the top.
type ConfigModule struct {
	XMLName    xml.Name         `xml:"module"`
	Name       string           `xml:"name,attr"`
	Properties []ModuleProperty `xml:"property"`
	Children   []ConfigModule   `xml:"module"`
}

// ModuleProperty is a single name-value property on a module.
type ModuleProperty struct {
	XMLName xml.Name `xml:"property"`
	Name    string   `xml:"name,attr"`
	Value   string   `xml:"value,attr"`
}

// Scaffold module names. Everything else in a configuration tree is a rule.
const (
	CheckerModuleName    = "Checker"
	TreeWalkerModuleName = "TreeWalker"
)

// FindModule walks the tree depth-first and returns the first module with
// the given name, or nil.
func FindModule(root *ConfigModule, name string) *ConfigModule {
	if root.Name == name {
		return root
	}
	for i := range root.Children {
		if found := FindModule(&root.Children[i], name); found != nil {
			return found
		}
	}
	return nil
}

// TargetModule locates the rule module a configuration exists to exercise:
// the first non-scaffold module found under Checker (descending through
// TreeWalker when present). Returns nil for a configuration containing only
// scaffolding.
func TargetModule(root *ConfigModule) *ConfigModule {
	if root.Name != CheckerModuleName && root.Name != TreeWalkerModuleName {
		return root
	}
	for i := range root.Children {
		if found := TargetModule(&root.Children[i]); found != nil {
			return found
		}
	}
	return nil
}

// SetProperty sets or overwrites a property on the module, keeping existing
// properties in their original order.
func (m *ConfigModule) SetProperty(name, value string) {
	for i := range m.Properties {
		if m.Properties[i].Name == name {
			m.Properties[i].Value = value
			return
		}
	}
	m.Properties = append(m.Properties, ModuleProperty{Name: name, Value: value})
}

// Property returns the value of the named property and whether it exists.
func (m *ConfigModule) Property(name string) (string, bool) {
	for _, p := range m.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// configDoctype is the document prolog the analyzer requires on every
// standalone rule-config file.
const configDoctype = `<?xml version="1.0"?>
<!DOCTYPE module PUBLIC
    "-//Checkstyle//DTD Checkstyle Configuration 1.3//EN"
    "https://checkstyle.org/dtds/configuration_1_3.dtd">
`

// ParseConfig parses a configuration tree from XML. The root must be the
// Checker scaffold.
func ParseConfig(data []byte) (*ConfigModule, error) {
	var root ConfigModule
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid configuration XML: %w", err)
	}
	if root.Name != CheckerModuleName {
		return nil, fmt.Errorf("configuration root is '%s', expected '%s'", root.Name, CheckerModuleName)
	}
	return &root, nil
}

// MarshalConfig serializes a configuration tree back to standalone XML with
// the required prolog.
func MarshalConfig(root *ConfigModule) ([]byte, error) {
	body, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize configuration: %w", err)
	}
	return append([]byte(configDoctype), append(body, '\n')...), nil
}
