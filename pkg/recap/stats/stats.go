// Package stats computes the behavioral metrics behind a chat recap:
// activity rhythms, conversation flow, lexical habits, and the synthesized
// group vibe. Every function takes user messages (system entries already
// filtered out by the caller) and returns deterministic rankings: ties are
// broken by first appearance in the input, so repeated runs over the same
// transcript produce identical output. Empty input yields empty results,
// never an error.
package stats

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/cognicore/recap/pkg/recap/chatlog"
)

// NameCount is one row of a count ranking.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// counter tallies keys while remembering first-seen order, so rankings break
// count ties by insertion order.
type counter struct {
	counts map[string]int
	order  map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int), order: make(map[string]int)}
}

func (c *counter) add(key string, n int) {
	if _, seen := c.order[key]; !seen {
		c.order[key] = len(c.order)
	}
	c.counts[key] += n
}

func (c *counter) get(key string) int { return c.counts[key] }

func (c *counter) len() int { return len(c.counts) }

// entries returns all keys sorted by count descending, first-seen ascending.
func (c *counter) entries() []NameCount {
	out := make([]NameCount, 0, len(c.counts))
	for k, v := range c.counts {
		out = append(out, NameCount{Name: k, Count: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return c.order[out[i].Name] < c.order[out[j].Name]
	})
	return out
}

func (c *counter) top(n int) []NameCount {
	e := c.entries()
	if len(e) > n {
		e = e[:n]
	}
	return e
}

// keysInOrder returns the keys in first-seen order.
func (c *counter) keysInOrder() []string {
	out := make([]string, 0, len(c.order))
	for k := range c.order {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return c.order[out[i]] < c.order[out[j]] })
	return out
}

// FormatDuration renders seconds as "42s", "3m 10s" or "2h 5m".
func FormatDuration(seconds float64) string {
	s := int(seconds)
	switch {
	case s < 60:
		return fmt.Sprintf("%ds", s)
	case s < 3600:
		return fmt.Sprintf("%dm %ds", s/60, s%60)
	default:
		return fmt.Sprintf("%dh %dm", s/3600, (s%3600)/60)
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

// sortedByTime returns a stable timestamp-ordered copy.
func sortedByTime(msgs []chatlog.Message) []chatlog.Message {
	out := append([]chatlog.Message(nil), msgs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// nameParts collects lowercased sender-name tokens longer than 2 chars, used
// to keep participant names out of word rankings.
func nameParts(msgs []chatlog.Message) map[string]struct{} {
	parts := make(map[string]struct{})
	for _, m := range msgs {
		for _, p := range strings.Fields(strings.ToLower(m.Sender)) {
			if len(p) > 2 {
				parts[p] = struct{}{}
			}
		}
	}
	return parts
}

var (
	htmlTagRe = regexp.MustCompile(`<[^>]+>`)
	mentionRe = regexp.MustCompile(`@\S+`)
	wordRe    = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

// cleanBody strips markup remnants and @-mentions before word extraction.
func cleanBody(text string) string {
	clean := htmlTagRe.ReplaceAllString(text, "")
	return mentionRe.ReplaceAllString(clean, "")
}
