package dictionary

import (
	"bufio"
	"context"
	_ "embed"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage"
)

// MinWordLength is the shortest string the dictionary will accept
const MinWordLength = 2

//go:embed words.txt
var embeddedWords string

// Service is an in-memory word oracle backed by storage
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new dictionary Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line) and
// saves them to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return s.LoadFromReader(ctx, file)
}

// LoadFromReader loads words from r (one word per line, # starts a comment)
// and saves them to storage
func (s *Service) LoadFromReader(ctx context.Context, r io.Reader) error {
	words, err := readWords(r)
	if err != nil {
		return err
	}

	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadEmbedded loads the word list compiled into the binary
func (s *Service) LoadEmbedded(ctx context.Context) error {
	return s.LoadFromReader(ctx, strings.NewReader(embeddedWords))
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[normalize(word)] = struct{}{}
	}

	s.mu.Lock()
	s.words = set
	s.loaded = true
	s.mu.Unlock()

	s.logger.Debug("dictionary loaded", "words", len(set))
	return nil
}

// Contains reports whether word is in the dictionary, ignoring case.
// Strings shorter than MinWordLength are never words.
func (s *Service) Contains(word string) bool {
	if len([]rune(word)) < MinWordLength {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[normalize(word)]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// normalize case-folds a word for lookup. A Caser holds state, so each call
// gets its own.
func normalize(word string) string {
	return cases.Fold().String(strings.TrimSpace(word))
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ServiceInterface is the dictionary surface used by the rest of the app
type ServiceInterface interface {
	Contains(word string) bool
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadFromReader(ctx context.Context, r io.Reader) error
	LoadEmbedded(ctx context.Context) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
