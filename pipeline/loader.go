package pipeline

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/Frebklin/haystack/component"
)

// Definition is a YAML-loadable pipeline description. It is an opt-in
// convenience layer over the programmatic API: component instances are
// resolved against a factory registry, connections are wired with the
// same resolution rules as Connect.
type Definition struct {
	// Name is the pipeline identifier.
	Name string `yaml:"name"`
	// MaxLoopsAllowed bounds loop-group re-executions (0 = default).
	MaxLoopsAllowed int `yaml:"max_loops_allowed,omitempty"`
	// Components lists the component instances to create.
	Components []ComponentDef `yaml:"components"`
	// Connections lists the wires between component sockets.
	Connections []ConnectionDef `yaml:"connections,omitempty"`
}

// ComponentDef defines one component instance within a definition.
type ComponentDef struct {
	// Name is the instance name, unique within the pipeline.
	Name string `yaml:"name"`
	// Uses is the registry lookup key for the component factory.
	Uses string `yaml:"uses"`
	// Params is passed to the factory verbatim.
	Params map[string]any `yaml:"params,omitempty"`
}

// ConnectionDef defines one connection, in "component" or
// "component.socket" path form on both ends.
type ConnectionDef struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// ParseDefinition decodes a YAML pipeline definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("pipeline: parsing definition: %w", err)
	}
	return &def, nil
}

// LoadDefinition reads and decodes a YAML pipeline definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: reading definition %s: %w", path, err)
	}
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", path, err)
	}
	return def, nil
}

// Build resolves the definition into an executable pipeline using the
// given registry. Extra options are applied after the definition's own.
func (d *Definition) Build(registry *component.Registry, opts ...Option) (*Pipeline, error) {
	base := []Option{WithMaxLoops(d.MaxLoopsAllowed)}
	if d.Name != "" {
		base = append(base, WithName(d.Name))
	}
	p := New(append(base, opts...)...)

	for _, cd := range d.Components {
		comp, err := registry.Build(cd.Uses, cd.Params)
		if err != nil {
			return nil, fmt.Errorf("pipeline: component %q: %w", cd.Name, err)
		}
		if err := p.AddComponent(cd.Name, comp); err != nil {
			return nil, err
		}
	}
	for _, cd := range d.Connections {
		if err := p.Connect(cd.From, cd.To); err != nil {
			return nil, err
		}
	}
	return p, nil
}
