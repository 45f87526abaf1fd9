// Package rules holds the keyword tables driving transaction classification.
// Tables are static configuration loaded once at startup and read-only after.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ruleset holds every keyword table the classifiers evaluate.
// Slice order is evaluation priority; overlapping keywords rely on it.
type Ruleset struct {
	RawMaterial []string `yaml:"raw_material"`
	Consumable  []string `yaml:"consumable"`
	Equipment   []string `yaml:"equipment"`

	AbsoluteExclude []string `yaml:"absolute_exclude"`

	// AmbiguousExcludes maps an exclude keyword that also appears inside
	// legitimate bakery terms to the context phrases that suppress it.
	AmbiguousExcludes map[string][]string `yaml:"ambiguous_excludes"`

	BusinessSoftware []string `yaml:"business_software"`
	PossiblyRelated  []string `yaml:"possibly_related"`

	Bank BankRules `yaml:"bank"`
}

// BankRules holds the keyword lists for the bank-statement classifier.
type BankRules struct {
	BusinessExpense  []string `yaml:"business_expense"`
	Personal         []string `yaml:"personal"`
	Supermarket      []string `yaml:"supermarket"`
	PossibleSupplier []string `yaml:"possible_supplier"`
	Refund           []string `yaml:"refund"`
	Government       []string `yaml:"government"`
}

// Load reads a keyword override file. Sections present in the file replace
// the built-in table; absent sections keep their defaults. A missing file
// returns the defaults unchanged.
func Load(path string) (*Ruleset, error) {
	rs := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rs, nil
		}
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	if err := yaml.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	return rs, nil
}

// Save writes a Ruleset to a YAML file.
func Save(path string, rs *Ruleset) error {
	data, err := yaml.Marshal(rs)
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}
