// Package classifier implements the legal-domain query gate.
// A query is accepted when any pattern in the table matches; the table
// covers four legal domains in English plus transliterated Hindi and
// Marathi variants. This is a literal keyword filter, not a learned
// model: queries that avoid every keyword are rejected regardless of
// meaning.
package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Legal domains covered by the pattern table.
const (
	DomainConstitutional = "constitutional"
	DomainCriminal       = "criminal"
	DomainCivil          = "civil"
	DomainProperty       = "property"
)

// Pattern is one entry of the data-driven pattern table.
// Expr is a regular expression fragment; entries must carry their own
// word-boundary anchors (e.g. `\bwill\b`) so that substrings such as
// "willing" do not match. Matching is case-insensitive.
type Pattern struct {
	Expr   string `json:"pattern"`
	Domain string `json:"domain"`
}

type compiledPattern struct {
	re     *regexp.Regexp
	domain string
}

// Result describes a successful classification.
type Result struct {
	Domain string
}

// Classifier evaluates queries against a compiled pattern table.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	patterns []compiledPattern
}

// New compiles a pattern table into a Classifier.
// Returns an error if any expression fails to compile.
func New(patterns []Pattern) (*Classifier, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p.Expr)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", p.Expr, err)
		}
		compiled = append(compiled, compiledPattern{re: re, domain: p.Domain})
	}
	return &Classifier{patterns: compiled}, nil
}

// Default returns a Classifier built from the built-in pattern table.
func Default() *Classifier {
	c, err := New(DefaultPatterns())
	if err != nil {
		// The built-in table is static and covered by tests.
		panic(fmt.Sprintf("classifier: invalid built-in pattern: %v", err))
	}
	return c
}

// LoadFile reads a JSON pattern table from disk.
// The file is an array of {"pattern": ..., "domain": ...} objects.
func LoadFile(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}

	var patterns []Pattern
	if err := json.Unmarshal(data, &patterns); err != nil {
		return nil, fmt.Errorf("parse pattern file: %w", err)
	}

	return patterns, nil
}

// IsLegalQuery reports whether the text matches any pattern.
// An empty table rejects everything. Callers are responsible for
// length validation before invoking the classifier.
func (c *Classifier) IsLegalQuery(text string) bool {
	_, ok := c.Classify(text)
	return ok
}

// Classify returns the domain of the first matching pattern.
// Pattern order only affects which domain tag is reported, never the
// accept/reject outcome.
func (c *Classifier) Classify(text string) (Result, bool) {
	for _, p := range c.patterns {
		if p.re.MatchString(text) {
			return Result{Domain: p.domain}, true
		}
	}
	return Result{}, false
}

// Size returns the number of compiled patterns.
func (c *Classifier) Size() int {
	return len(c.patterns)
}
