// SPDX-License-Identifier: MIT
// Package: qlattice/rewrite
//
// rules.go: rule model, YAML loading and validation.

package rewrite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoAction indicates a rule without synonyms, delete or boosts.
	ErrNoAction = errors.New("rewrite: rule has no action")

	// ErrEmptyInput indicates a rule whose input has no terms.
	ErrEmptyInput = errors.New("rewrite: rule input is empty")

	// ErrEmptySynonym indicates a synonym with no terms.
	ErrEmptySynonym = errors.New("rewrite: synonym is empty")

	// ErrEmptyBoost indicates a boost query with no terms.
	ErrEmptyBoost = errors.New("rewrite: boost query is empty")

	// ErrInvalidRules wraps struct-level validation failures.
	ErrInvalidRules = errors.New("rewrite: invalid rules")
)

// ruleValidate is shared by every RuleSet; validator caches struct metadata.
var ruleValidate = validator.New()

// Boost is an additional query scored up (positive weight) or down
// (negative weight) when its rule matches.
type Boost struct {
	Query  string  `yaml:"query" validate:"required"`
	Weight float64 `yaml:"weight" validate:"ne=0"`
}

// Rule maps an input term sequence to actions.
type Rule struct {
	Input    string   `yaml:"input" validate:"required"`
	Synonyms []string `yaml:"synonyms,omitempty" validate:"dive,required"`
	Delete   bool     `yaml:"delete,omitempty"`
	Boosts   []Boost  `yaml:"boosts,omitempty" validate:"dive"`
}

// Actions lists the action kinds the rule carries, for logs and metrics.
func (r *Rule) Actions() []string {
	var out []string
	if len(r.Synonyms) > 0 {
		out = append(out, actionSynonym)
	}
	if r.Delete {
		out = append(out, actionDelete)
	}
	if len(r.Boosts) > 0 {
		out = append(out, actionBoost)
	}

	return out
}

// RuleSet is the root of a rules file.
type RuleSet struct {
	Rules []Rule `yaml:"rules" validate:"dive"`
}

// LoadRules decodes and validates a YAML rule set. Unknown keys are rejected.
func LoadRules(r io.Reader) (*RuleSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	rs := &RuleSet{}
	if err := dec.Decode(rs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("rewrite: decode rules: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	return rs, nil
}

// LoadRulesFile opens path and calls LoadRules.
func LoadRulesFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rewrite: open rules: %w", err)
	}
	defer f.Close()

	rs, err := LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rs, nil
}

// Validate checks struct tags and rule semantics and reports every problem.
func (rs *RuleSet) Validate() error {
	var result *multierror.Error

	// 1. Tag-level checks.
	if err := ruleValidate.Struct(rs); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				result = multierror.Append(result, fmt.Errorf("%s: failed %q: %w", fe.Namespace(), fe.Tag(), ErrInvalidRules))
			}
		} else {
			result = multierror.Append(result, fmt.Errorf("%v: %w", err, ErrInvalidRules))
		}
	}

	// 2. Semantic checks per rule.
	for i := range rs.Rules {
		r := &rs.Rules[i]
		if strings.TrimSpace(r.Input) == "" {
			result = multierror.Append(result, fmt.Errorf("rules[%d]: %w", i, ErrEmptyInput))
			continue
		}
		if len(r.Actions()) == 0 {
			result = multierror.Append(result, fmt.Errorf("rules[%d] %q: %w", i, r.Input, ErrNoAction))
		}
		for j, syn := range r.Synonyms {
			if len(splitTerms(syn, false)) == 0 {
				result = multierror.Append(result, fmt.Errorf("rules[%d].synonyms[%d] %q: %w", i, j, syn, ErrEmptySynonym))
			}
		}
		for j, b := range r.Boosts {
			if strings.TrimSpace(b.Query) == "" {
				result = multierror.Append(result, fmt.Errorf("rules[%d].boosts[%d] %q: %w", i, j, b.Query, ErrEmptyBoost))
			}
		}
	}

	return result.ErrorOrNil()
}
