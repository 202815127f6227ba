// Package lexicon provides the static classification tables the recap
// pipeline relies on: stop words, system-event phrases, media placeholder
// markers, and the emoji mood groups used for vibe synthesis.
package lexicon

import "strings"

// MediaKind labels the attachment type detected from an export placeholder.
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaVideo    MediaKind = "video"
	MediaAudio    MediaKind = "audio"
	MediaSticker  MediaKind = "sticker"
	MediaGIF      MediaKind = "gif"
	MediaDocument MediaKind = "document"
	MediaContact  MediaKind = "contact"
	MediaLocation MediaKind = "location"
)

// MediaMarker pairs a placeholder substring with the media kind it signals.
type MediaMarker struct {
	Kind   MediaKind
	Marker string
}

// Set is an immutable bundle of classification tables. Build one with
// Default, optionally extended through the config package. Methods never
// mutate state, so a single Set is safe for concurrent use.
type Set struct {
	stopWords      map[string]struct{}
	topicStopWords map[string]struct{}
	systemPhrases  []string
	groupPhrases   []string // lowercased
	ignoredSenders map[string]struct{}
	mediaMarkers   []MediaMarker
	instTokens     map[string]struct{}
	genericPhrases map[string]struct{}
	laughWords     map[string]struct{}
}

// Default returns a Set backed by the built-in tables.
func Default() Set {
	s := Set{
		stopWords:      toSet(defaultStopWords),
		topicStopWords: toSet(defaultStopWords),
		systemPhrases:  append([]string(nil), defaultSystemPhrases...),
		ignoredSenders: toSet(defaultIgnoredSenders),
		mediaMarkers:   append([]MediaMarker(nil), defaultMediaMarkers...),
		instTokens:     toSet(defaultInstitutionTokens),
		genericPhrases: toSet(defaultGenericPhrases),
		laughWords:     toSet(defaultLaughTokens),
	}
	for _, w := range defaultTopicOnlyStopWords {
		s.topicStopWords[w] = struct{}{}
	}
	s.groupPhrases = make([]string, len(defaultGroupSystemPhrases))
	for i, p := range defaultGroupSystemPhrases {
		s.groupPhrases[i] = strings.ToLower(p)
	}
	return s
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// IsStopWord reports whether the lowercased word is excluded from lexical
// statistics.
func (s Set) IsStopWord(word string) bool {
	_, ok := s.stopWords[word]
	return ok
}

// IsTopicStopWord reports whether the lowercased word is excluded from topic
// extraction. The topic list is a superset of the stop-word list.
func (s Set) IsTopicStopWord(word string) bool {
	_, ok := s.topicStopWords[word]
	return ok
}

// IsSystemText reports whether the message body contains a platform system
// phrase.
func (s Set) IsSystemText(body string) bool {
	for _, p := range s.systemPhrases {
		if strings.Contains(body, p) {
			return true
		}
	}
	return false
}

// IsGroupSystemText reports whether the body matches a group-attributed
// system event. Matching is case-insensitive.
func (s Set) IsGroupSystemText(body string) bool {
	lower := strings.ToLower(body)
	for _, p := range s.groupPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// IsIgnoredSender reports whether the sender is a known bot or platform
// identity.
func (s Set) IsIgnoredSender(sender string) bool {
	_, ok := s.ignoredSenders[strings.TrimSpace(sender)]
	return ok
}

// MediaKindFor returns the media kind for the first placeholder marker found
// in the body, or "" when the body carries no attachment placeholder.
func (s Set) MediaKindFor(body string) MediaKind {
	for _, m := range s.mediaMarkers {
		if strings.Contains(body, m.Marker) {
			return m.Kind
		}
	}
	return ""
}

// IsInstitutionToken reports whether the lowercased token is a known
// department or section code.
func (s Set) IsInstitutionToken(tok string) bool {
	_, ok := s.instTokens[tok]
	return ok
}

// IsGenericPhrase reports whether the lowercased n-gram is too common to be a
// personal catchphrase.
func (s Set) IsGenericPhrase(phrase string) bool {
	_, ok := s.genericPhrases[phrase]
	return ok
}

// IsLaughWord reports whether the lowercased token is a textual laugh marker.
func (s Set) IsLaughWord(tok string) bool {
	_, ok := s.laughWords[tok]
	return ok
}

// LaughEmojis returns the laugh emoji runes counted alongside laugh words.
func (s Set) LaughEmojis() []rune {
	return append([]rune(nil), laughEmojis...)
}

// MoodEmojis returns the emoji groups used to pick a dominant group mood,
// in evaluation order: humor, dramatic, wholesome, hype.
func (s Set) MoodEmojis() map[string][]string {
	return map[string][]string{
		"humor":     append([]string(nil), humorEmojis...),
		"dramatic":  append([]string(nil), dramaticEmojis...),
		"wholesome": append([]string(nil), wholesomeEmojis...),
		"hype":      append([]string(nil), hypeEmojis...),
	}
}

// WithStopWords returns a copy of the Set with extra stop words added. The
// words are added to both the base and topic lists.
func (s Set) WithStopWords(words []string) Set {
	c := s.clone()
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		c.stopWords[w] = struct{}{}
		c.topicStopWords[w] = struct{}{}
	}
	return c
}

// WithSystemPhrases returns a copy of the Set with extra system phrases.
func (s Set) WithSystemPhrases(phrases []string) Set {
	c := s.clone()
	for _, p := range phrases {
		if p = strings.TrimSpace(p); p != "" {
			c.systemPhrases = append(c.systemPhrases, p)
		}
	}
	return c
}

// WithMediaMarkers returns a copy of the Set with extra media markers
// appended after the built-in ones, so built-in markers keep priority.
func (s Set) WithMediaMarkers(markers []MediaMarker) Set {
	c := s.clone()
	for _, m := range markers {
		if m.Marker != "" && m.Kind != "" {
			c.mediaMarkers = append(c.mediaMarkers, m)
		}
	}
	return c
}

// WithIgnoredSenders returns a copy of the Set with extra ignored senders.
func (s Set) WithIgnoredSenders(senders []string) Set {
	c := s.clone()
	for _, v := range senders {
		if v = strings.TrimSpace(v); v != "" {
			c.ignoredSenders[v] = struct{}{}
		}
	}
	return c
}

func (s Set) clone() Set {
	c := Set{
		stopWords:      make(map[string]struct{}, len(s.stopWords)),
		topicStopWords: make(map[string]struct{}, len(s.topicStopWords)),
		systemPhrases:  append([]string(nil), s.systemPhrases...),
		groupPhrases:   append([]string(nil), s.groupPhrases...),
		ignoredSenders: make(map[string]struct{}, len(s.ignoredSenders)),
		mediaMarkers:   append([]MediaMarker(nil), s.mediaMarkers...),
		instTokens:     s.instTokens,
		genericPhrases: s.genericPhrases,
		laughWords:     s.laughWords,
	}
	for w := range s.stopWords {
		c.stopWords[w] = struct{}{}
	}
	for w := range s.topicStopWords {
		c.topicStopWords[w] = struct{}{}
	}
	for v := range s.ignoredSenders {
		c.ignoredSenders[v] = struct{}{}
	}
	return c
}
