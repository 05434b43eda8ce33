// Package search provides a simple, deterministic, concurrency-safe
// in-memory index over idea titles and descriptions. It is rebuilt from a
// session-cache snapshot on demand and is immutable afterwards, so a
// handler can query it without locking.
//
// Tokenization is Unicode-aware and accent-folding ("qualità" matches
// "qualita"); scoring uses Jaccard similarity between the query token set
// and each idea's token set, with stable ordering for ties.
package search

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
)

// Result is a ranked idea id with its similarity score.
type Result struct {
	IdeaID string
	Score  float64
}

// Index is the minimal query interface.
type Index interface {
	TopK(query string, k int) []Result
}

// Option configures index construction.
type Option func(*config)

type config struct {
	minTokenRunes int
	stopwords     map[string]struct{}
}

func defaultConfig() config {
	return config{minTokenRunes: 2}
}

// WithMinTokenRunes drops tokens shorter than n runes. n < 1 keeps all.
func WithMinTokenRunes(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.minTokenRunes = n
		}
	}
}

// WithStopwords removes the given lowercase words from every token set.
func WithStopwords(words ...string) Option {
	return func(c *config) {
		if c.stopwords == nil {
			c.stopwords = make(map[string]struct{}, len(words))
		}
		for _, w := range words {
			c.stopwords[strings.ToLower(w)] = struct{}{}
		}
	}
}

type entry struct {
	ideaID string
	tokens map[string]struct{}
}

type ideaIndex struct {
	cfg     config
	entries []entry
}

// NewIdeaIndex builds an immutable index over the given ideas.
func NewIdeaIndex(ideas []domain.Idea, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	idx := &ideaIndex{cfg: cfg}
	for _, i := range ideas {
		toks := tokenize(i.Title+" "+i.Description, cfg)
		if len(toks) == 0 {
			continue
		}
		idx.entries = append(idx.entries, entry{ideaID: i.ID, tokens: toks})
	}
	return idx
}

// TopK returns up to k ideas ranked by Jaccard similarity to the query,
// highest first, skipping zero-score entries. Ties keep insertion order.
func (x *ideaIndex) TopK(query string, k int) []Result {
	if k <= 0 {
		return nil
	}
	q := tokenize(query, x.cfg)
	if len(q) == 0 {
		return nil
	}

	results := make([]Result, 0, len(x.entries))
	for _, e := range x.entries {
		if s := jaccard(q, e.tokens); s > 0 {
			results = append(results, Result{IdeaID: e.ideaID, Score: s})
		}
	}
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	if len(results) > k {
		results = results[:k]
	}
	return results
}

// foldAccents strips combining marks after NFD decomposition, then
// recomposes. Input that fails to transform is returned unchanged.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(foldAccents, s)
	if err != nil {
		return s
	}
	return out
}

func tokenize(s string, cfg config) map[string]struct{} {
	s = strings.ToLower(fold(s))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < cfg.minTokenRunes {
			continue
		}
		if _, stop := cfg.stopwords[f]; stop {
			continue
		}
		set[f] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	inter := 0
	for t := range small {
		if _, ok := large[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
