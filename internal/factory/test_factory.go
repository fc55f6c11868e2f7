package factory

import (
	"time"

	"github.com/mcoot/wordtiles/internal/dependencies/mocks"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	"github.com/mcoot/wordtiles/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIDs    *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// With no queued random values every draw takes the first tile in the bag.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewMockIDs("game")

	app := newWithDependencies(store, mockClock, mockRandom, mockIDs, 0, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIDs:    mockIDs,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"aa", "ab", "ad", "ae", "ag", "ah", "ai", "al", "am", "an", "ar", "as", "at", "aw", "ax", "ay",
		"be", "by", "do", "go", "he", "hi", "if", "in", "is", "it", "me", "my", "no", "of", "on", "or",
		"so", "to", "up", "us", "we",
		// 3-letter words
		"act", "ant", "art", "ate", "bat", "cat", "cot", "cut", "dog", "eat", "hat", "mat", "net",
		"not", "oat", "pat", "rat", "sat", "set", "tan", "tar", "tea", "ten", "toe", "ton", "zag",
		// 4-letter words
		"cats", "coat", "east", "eats", "rate", "seat", "star", "tact", "tear", "zeta",
		// 5-letter words
		"react", "stare", "tears", "trace",
		// 7-letter words
		"players", "realist", "retains", "station",
	}
	return t.DictionaryService.LoadWords(words)
}
