package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Remote is a word oracle that asks a word service over HTTP.
// GET {baseURL}/validate/{word} answers 200 for words and 404 otherwise.
// Answers are cached for the life of the Remote.
type Remote struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	timeout time.Duration

	mu    sync.RWMutex
	cache map[string]bool
}

// NewRemote creates a Remote oracle for the word service at baseURL
func NewRemote(baseURL string, logger *slog.Logger) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		logger:  logger,
		timeout: 5 * time.Second,
		cache:   make(map[string]bool),
	}
}

// Contains reports whether the word service knows word. Lookup failures are
// logged and treated as unknown words.
func (r *Remote) Contains(word string) bool {
	if len([]rune(word)) < MinWordLength {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	ok, err := r.Lookup(ctx, word)
	if err != nil {
		r.logger.Warn("word lookup failed", "word", word, "error", err)
		return false
	}
	return ok
}

// Lookup asks the word service about word
func (r *Remote) Lookup(ctx context.Context, word string) (bool, error) {
	key := normalize(word)

	r.mu.RLock()
	cached, hit := r.cache[key]
	r.mu.RUnlock()
	if hit {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/validate/%s", r.baseURL, url.PathEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var ok bool
	switch resp.StatusCode {
	case http.StatusOK:
		ok = true
	case http.StatusNotFound:
		ok = false
	default:
		return false, fmt.Errorf("word service returned %s", resp.Status)
	}

	r.mu.Lock()
	r.cache[key] = ok
	r.mu.Unlock()
	return ok, nil
}
