package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sections maps each top-level YAML key to a setter that decodes a node
// into a fresh value and stores it on c.
func sections(c *Config) map[string]func(*yaml.Node) error {
	return map[string]func(*yaml.Node) error{
		"api":     func(n *yaml.Node) error { return replace(n, &c.API) },
		"ui":      func(n *yaml.Node) error { return replace(n, &c.UI) },
		"output":  func(n *yaml.Node) error { return replace(n, &c.Output) },
		"logging": func(n *yaml.Node) error { return replace(n, &c.Logging) },
	}
}

func replace[T any](n *yaml.Node, dst *T) error {
	var v T
	if err := n.Decode(&v); err != nil {
		return err
	}
	*dst = v
	return nil
}

// ShallowMergeYAML applies the overlay file at overlayPath to target. Each
// top-level section in the overlay replaces the matching section whole;
// sections it omits are untouched and unknown keys are ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("merging overlay: nil target")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay %s: %w", overlayPath, err)
	}

	setters := sections(target)
	for key, node := range overlay {
		set, ok := setters[key]
		if !ok {
			continue
		}
		if err = set(&node); err != nil {
			return fmt.Errorf("applying overlay section %q from %s: %w", key, overlayPath, err)
		}
	}
	return nil
}
