package mocks

import (
	"fmt"

	"github.com/mcoot/wordtiles/internal/dependencies/ids"
)

// MockIDs returns predictable identifiers: prefix-1, prefix-2, ...
type MockIDs struct {
	Prefix string
	next   int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a MockIDs with the given prefix
func NewMockIDs(prefix string) *MockIDs {
	return &MockIDs{Prefix: prefix}
}

// NewID returns the next identifier in sequence
func (m *MockIDs) NewID() string {
	m.next++
	return fmt.Sprintf("%s-%d", m.Prefix, m.next)
}
