// Package importer parses exported statement files into transaction records.
// Statement exports are messy: parsers skip boilerplate and malformed lines
// rather than failing the run.
package importer

import (
	"io"
	"strings"

	"github.com/bakeledger-dev/bakeledger/internal/model"
)

// BankParser converts a bank CSV file into BankTransactions.
type BankParser interface {
	Parse(r io.Reader) ([]model.BankTransaction, error)
	Format() string
}

// Registry holds named bank parsers.
type Registry struct {
	parsers map[string]BankParser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]BankParser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p BankParser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) BankParser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in bank parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CBAParser{})
	return r
}
