// Package config loads optional YAML overrides for the built-in lexicon.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/recap/pkg/recap/lexicon"
)

// StopWords is the stopword override file.
type StopWords struct {
	Terms []string `yaml:"terms"`
}

// SystemPhrases is the system-event phrase override file.
type SystemPhrases struct {
	Phrases []string `yaml:"phrases"`
}

// MediaMarkers is the media placeholder override file. Entries are appended
// after the built-in markers, so built-in classification wins on overlap.
type MediaMarkers struct {
	Markers []MediaMarker `yaml:"markers"`
}

// MediaMarker is one placeholder-to-kind mapping.
type MediaMarker struct {
	Kind   string `yaml:"kind"`
	Marker string `yaml:"marker"`
}

// IgnoredSenders is the ignored-sender override file.
type IgnoredSenders struct {
	Senders []string `yaml:"senders"`
}

// LoadStopWords reads a stopword override file.
func LoadStopWords(path string) (*StopWords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sw StopWords
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, err
	}
	return &sw, nil
}

// LoadSystemPhrases reads a system-phrase override file.
func LoadSystemPhrases(path string) (*SystemPhrases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sp SystemPhrases
	if err := yaml.Unmarshal(data, &sp); err != nil {
		return nil, err
	}
	return &sp, nil
}

// LoadMediaMarkers reads a media-marker override file.
func LoadMediaMarkers(path string) (*MediaMarkers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mm MediaMarkers
	if err := yaml.Unmarshal(data, &mm); err != nil {
		return nil, err
	}
	return &mm, nil
}

// LoadIgnoredSenders reads an ignored-sender override file.
func LoadIgnoredSenders(path string) (*IgnoredSenders, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var is IgnoredSenders
	if err := yaml.Unmarshal(data, &is); err != nil {
		return nil, err
	}
	return &is, nil
}

// Loader points at optional override files. Empty paths fall back to the
// built-in tables.
type Loader struct {
	StopWordsPath      string
	SystemPhrasesPath  string
	MediaMarkersPath   string
	IgnoredSendersPath string
}

// Load merges the override files into the default lexicon and returns the
// effective set.
func (l *Loader) Load() (lexicon.Set, error) {
	lex := lexicon.Default()

	if l.StopWordsPath != "" {
		sw, err := LoadStopWords(l.StopWordsPath)
		if err != nil {
			return lexicon.Set{}, fmt.Errorf("load stop words: %w", err)
		}
		lex = lex.WithStopWords(sw.Terms)
	}

	if l.SystemPhrasesPath != "" {
		sp, err := LoadSystemPhrases(l.SystemPhrasesPath)
		if err != nil {
			return lexicon.Set{}, fmt.Errorf("load system phrases: %w", err)
		}
		lex = lex.WithSystemPhrases(sp.Phrases)
	}

	if l.MediaMarkersPath != "" {
		mm, err := LoadMediaMarkers(l.MediaMarkersPath)
		if err != nil {
			return lexicon.Set{}, fmt.Errorf("load media markers: %w", err)
		}
		markers := make([]lexicon.MediaMarker, len(mm.Markers))
		for i, m := range mm.Markers {
			markers[i] = lexicon.MediaMarker{Kind: lexicon.MediaKind(m.Kind), Marker: m.Marker}
		}
		lex = lex.WithMediaMarkers(markers)
	}

	if l.IgnoredSendersPath != "" {
		is, err := LoadIgnoredSenders(l.IgnoredSendersPath)
		if err != nil {
			return lexicon.Set{}, fmt.Errorf("load ignored senders: %w", err)
		}
		lex = lex.WithIgnoredSenders(is.Senders)
	}

	return lex, nil
}
