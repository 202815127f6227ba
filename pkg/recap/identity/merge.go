// Package identity normalizes sender identities: it merges renamed contact
// variants into one canonical name and separates group system identities
// from real participants.
package identity

import (
	"strings"

	"github.com/cognicore/recap/pkg/recap/chatlog"
	"github.com/cognicore/recap/pkg/recap/lexicon"
)

// MergeSimilar collapses sender names that look like renamed variants of the
// same contact. Two heuristics apply, checked pairwise in first-seen order:
//
//   - one name is a case-insensitive prefix of the other; the shorter raw
//     name becomes canonical
//   - same first name (longer than 3 chars), exactly one side carries an
//     institution suffix, and the suffix-free name's words are a subset of
//     the other's; the suffix-free name becomes canonical
//
// The pass is single and non-transitive: a name already mapped away is never
// reconsidered, so chains do not collapse further. Returns the rewritten
// messages and the old-to-canonical mapping.
func MergeSimilar(msgs []chatlog.Message, lex lexicon.Set) ([]chatlog.Message, map[string]string) {
	senders := uniqueSenders(msgs)
	mapping := make(map[string]string)

	for i, name1 := range senders {
		if _, mapped := mapping[name1]; mapped {
			continue
		}
		for _, name2 := range senders[i+1:] {
			if _, mapped := mapping[name2]; mapped {
				continue
			}

			n1 := strings.TrimSpace(strings.ToLower(name1))
			n2 := strings.TrimSpace(strings.ToLower(name2))

			if strings.HasPrefix(n1, n2) || strings.HasPrefix(n2, n1) {
				if len(name1) <= len(name2) {
					mapping[name2] = name1
				} else {
					mapping[name1] = name2
				}
				continue
			}

			w1 := strings.Fields(n1)
			w2 := strings.Fields(n2)
			if len(w1) == 0 || len(w2) == 0 || w1[0] != w2[0] || len(w1[0]) <= 3 {
				continue
			}

			inst1 := hasInstitutionToken(w1, lex)
			inst2 := hasInstitutionToken(w2, lex)
			if inst1 == inst2 {
				continue
			}

			canonical, old := name1, name2
			if inst1 {
				canonical, old = name2, name1
			}
			if wordsSubset(strings.Fields(strings.ToLower(canonical)), strings.Fields(strings.ToLower(old))) {
				mapping[old] = canonical
			}
		}
	}

	if len(mapping) == 0 {
		return msgs, mapping
	}

	out := make([]chatlog.Message, len(msgs))
	for i, m := range msgs {
		if canonical, ok := mapping[m.Sender]; ok {
			m.Sender = canonical
		}
		out[i] = m
	}
	return out, mapping
}

func uniqueSenders(msgs []chatlog.Message) []string {
	seen := make(map[string]struct{}, 16)
	var senders []string
	for _, m := range msgs {
		if _, ok := seen[m.Sender]; !ok {
			seen[m.Sender] = struct{}{}
			senders = append(senders, m.Sender)
		}
	}
	return senders
}

func hasInstitutionToken(words []string, lex lexicon.Set) bool {
	for _, w := range words {
		if lex.IsInstitutionToken(w) {
			return true
		}
	}
	return false
}

func wordsSubset(sub, super []string) bool {
	set := make(map[string]struct{}, len(super))
	for _, w := range super {
		set[w] = struct{}{}
	}
	for _, w := range sub {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
