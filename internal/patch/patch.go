// Package patch applies exact literal string replacements to text
// files in place. Rules are declared in TOML; a built-in rule set is
// embedded in the binary and used when no rules file is given.
package patch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/inkstone-cli/inkstone/internal/logger"
	"github.com/inkstone-cli/inkstone/internal/patch/rules"
)

var (
	// ErrPatternNotFound is reported when the target file does not
	// contain a rule's find pattern. Callers typically treat this as
	// a status to print, not a failure.
	ErrPatternNotFound = errors.New("pattern not found")

	// ErrNoRules indicates a rules file parsed cleanly but declared
	// no rules.
	ErrNoRules = errors.New("no rules defined")
)

// Rule is a single literal replacement: every occurrence of Find is
// replaced with Replace. No regular expressions, no normalisation -
// the match must be byte-exact.
type Rule struct {
	Name    string `toml:"name"`
	Find    string `toml:"find"`
	Replace string `toml:"replace"`
}

// ruleFile is the on-disk shape of a rules file.
type ruleFile struct {
	Rules []Rule `toml:"rule"`
}

// Result records the outcome of one rule against one file.
type Result struct {
	Rule    Rule
	Applied bool
}

// ParseRules decodes a TOML rule set.
func ParseRules(data []byte) ([]Rule, error) {
	var rf ruleFile
	if err := toml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if len(rf.Rules) == 0 {
		return nil, ErrNoRules
	}
	for i, r := range rf.Rules {
		if r.Find == "" {
			return nil, fmt.Errorf("rule %d (%s): empty find pattern", i+1, r.Name)
		}
	}
	return rf.Rules, nil
}

// LoadRules reads and parses a TOML rules file.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return ParseRules(data)
}

// DefaultRules returns the rule set embedded in the binary.
func DefaultRules() ([]Rule, error) {
	return ParseRules(rules.Default)
}

// Apply replaces every occurrence of the rule's pattern in text.
// The second return reports whether the pattern was present.
func Apply(text string, rule Rule) (string, bool) {
	if !strings.Contains(text, rule.Find) {
		return text, false
	}
	return strings.ReplaceAll(text, rule.Find, rule.Replace), true
}

// ApplyFile applies all rules to the file at path, rewriting it in
// place only when at least one rule matched. A file lacking every
// pattern is left untouched; the per-rule outcome is in the results.
// The file's permission bits are preserved on rewrite.
func ApplyFile(path string, ruleSet []Rule) ([]Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat target file: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target file: %w", err)
	}

	text := string(content)
	results := make([]Result, 0, len(ruleSet))
	changed := false

	for _, rule := range ruleSet {
		next, applied := Apply(text, rule)
		if applied {
			logger.Debug("rule %q matched in %s", rule.Name, path)
			text = next
			changed = true
		} else {
			logger.Debug("rule %q not found in %s", rule.Name, path)
		}
		results = append(results, Result{Rule: rule, Applied: applied})
	}

	if !changed {
		return results, nil
	}

	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("failed to write target file: %w", err)
	}
	logger.Info("rewrote %s (%d bytes)", path, len(text))

	return results, nil
}
