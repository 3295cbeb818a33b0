package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
)

// fileRule is the YAML representation of a Rule.
type fileRule struct {
	Type            string   `yaml:"type"`
	Primary         []string `yaml:"primary"`
	Secondary       []string `yaml:"secondary"`
	WeightPrimary   float64  `yaml:"weight_primary"`
	WeightSecondary float64  `yaml:"weight_secondary"`
}

type fileTable struct {
	Rules []fileRule `yaml:"rules"`
}

// Load reads a rule table from a YAML file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Table{}, fmt.Errorf("read rules %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Table{}, fmt.Errorf("rules %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML rule table. Rule order in the document is preserved.
func Parse(data []byte) (Table, error) {
	var ft fileTable
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return Table{}, fmt.Errorf("parse rules: %w", err)
	}

	rs := make([]Rule, 0, len(ft.Rules))
	for i, fr := range ft.Rules {
		t, err := itsm.Parse(fr.Type)
		if err != nil {
			return Table{}, fmt.Errorf("rule %d: %w", i, err)
		}
		r, err := NewRule(t, fr.Primary, fr.Secondary, fr.WeightPrimary, fr.WeightSecondary)
		if err != nil {
			return Table{}, fmt.Errorf("rule %d: %w", i, err)
		}
		rs = append(rs, r)
	}
	return NewTable(rs...)
}
