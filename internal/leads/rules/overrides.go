package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override adjusts one named rule. Nil fields leave the default untouched.
type Override struct {
	Points *int  `yaml:"points"`
	Active *bool `yaml:"active"`
}

type overrideFile struct {
	Rules map[string]Override `yaml:"rules"`
}

// LoadOverrides applies a YAML override file to the registry. A missing path
// is not an error; the defaults stand.
func LoadOverrides(r *Registry, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read rule overrides: %w", err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse rule overrides: %w", err)
	}

	return ApplyOverrides(r, file.Rules)
}

// ApplyOverrides mutates the registry in place. Unknown rule names error so a
// typo in the file cannot silently do nothing.
func ApplyOverrides(r *Registry, overrides map[string]Override) error {
	for name, o := range overrides {
		found := false
		for i := range r.rules {
			if r.rules[i].Name != name {
				continue
			}
			found = true
			if o.Points != nil {
				r.rules[i].Points = *o.Points
			}
			if o.Active != nil {
				r.rules[i].Active = *o.Active
			}
		}
		if !found {
			return fmt.Errorf("rule override references unknown rule %q", name)
		}
	}
	return nil
}
