package stats

import (
	"fmt"
	"strings"

	"github.com/cognicore/recap/pkg/recap/chatlog"
	"github.com/cognicore/recap/pkg/recap/lexicon"
)

// Vibe is the synthesized personality of the whole group.
type Vibe struct {
	Energy      string   `json:"energy"`
	Topics      []string `json:"topics"`
	Personality []string `json:"personality"`
	PeakTime    string   `json:"peak_time,omitempty"`
	Description string   `json:"description"`
}

// GroupVibe derives the group's energy from message volume per day, its peak
// period from hourly activity, a mood trait from the dominant emoji, and the
// topic list (30 topics in full mode, 15 otherwise).
func GroupVibe(msgs []chatlog.Message, emojis []EmojiCount, hourly map[int]int, lex lexicon.Set, full bool) Vibe {
	vibe := Vibe{Energy: "medium"}
	if len(msgs) == 0 {
		return vibe
	}

	basic, _ := BasicStats(msgs)
	rangeDays := basic.DateRangeDays
	if rangeDays == 0 {
		rangeDays = 1
	}
	perDay := float64(basic.TotalMessages) / float64(rangeDays)

	switch {
	case perDay > 50:
		vibe.Energy = "hyperactive"
		vibe.Personality = append(vibe.Personality, "chaotic")
	case perDay > 20:
		vibe.Energy = "high"
		vibe.Personality = append(vibe.Personality, "active")
	case perDay > 5:
		vibe.Energy = "medium"
		vibe.Personality = append(vibe.Personality, "steady")
	default:
		vibe.Energy = "chill"
		vibe.Personality = append(vibe.Personality, "relaxed")
	}

	if len(hourly) > 0 {
		peak, best := 0, -1
		for h := 0; h < 24; h++ {
			if n, ok := hourly[h]; ok && n > best {
				peak, best = h, n
			}
		}
		switch {
		case peak < 6:
			vibe.PeakTime = "late night degenerates"
			vibe.Personality = append(vibe.Personality, "nocturnal")
		case peak < 12:
			vibe.PeakTime = "morning people"
			vibe.Personality = append(vibe.Personality, "productive")
		case peak < 18:
			vibe.PeakTime = "afternoon chatters"
			vibe.Personality = append(vibe.Personality, "casual")
		default:
			vibe.PeakTime = "evening squad"
			vibe.Personality = append(vibe.Personality, "social")
		}
	}

	topN := 15
	if full {
		topN = 30
	}
	vibe.Topics = Topics(msgs, lex, topN)

	if len(emojis) > 0 {
		if mood := moodFor(emojis[0].Emoji, lex); mood != "" {
			vibe.Personality = append(vibe.Personality, mood)
		}
	}

	traits := vibe.Personality
	if len(traits) > 3 {
		traits = traits[:3]
	}
	topicsStr := "everything and nothing"
	if len(vibe.Topics) > 0 {
		n := len(vibe.Topics)
		if n > 5 {
			n = 5
		}
		topicsStr = strings.Join(vibe.Topics[:n], ", ")
	}
	vibe.Description = fmt.Sprintf("A %s energy group of %s folks who mostly talk about %s.",
		vibe.Energy, strings.Join(traits, ", "), topicsStr)

	return vibe
}

// moodFor maps the group's dominant emoji to a personality trait.
func moodFor(top string, lex lexicon.Set) string {
	for _, mood := range []struct{ key, trait string }{
		{"humor", "humor-driven"},
		{"dramatic", "dramatic"},
		{"wholesome", "wholesome"},
		{"hype", "hype"},
	} {
		for _, e := range lex.MoodEmojis()[mood.key] {
			if top == e {
				return mood.trait
			}
		}
	}
	return ""
}
