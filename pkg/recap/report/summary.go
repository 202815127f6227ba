package report

import (
	"math/rand"
	"strings"

	"github.com/cognicore/recap/pkg/recap/persona"
	"github.com/cognicore/recap/pkg/recap/stats"
)

// FeatureSummary is the condensed view of a chat handed to the roast
// collaborator: enough signal to be funny, small enough to fit a prompt.
type FeatureSummary struct {
	GroupName         string                          `json:"group_name,omitempty"`
	Year              int                             `json:"year"`
	TotalMessages     int                             `json:"total_messages"`
	TotalParticipants int                             `json:"total_participants"`
	PeakHour          int                             `json:"peak_hour"`
	Topics            []string                        `json:"topics,omitempty"`
	TopWords          []stats.NameCount               `json:"top_words,omitempty"`
	TopChatters       []stats.NameCount               `json:"top_chatters,omitempty"`
	SignatureWords    map[string][]stats.SignatureWord `json:"signature_words,omitempty"`
	Tags              map[string][]persona.Tag        `json:"personality_tags,omitempty"`
	EmojiBySender     []stats.SenderEmojis            `json:"emoji_by_sender,omitempty"`
	NightOwls         []stats.NameCount               `json:"night_owls,omitempty"`
	EarlyBirds        []stats.NameCount               `json:"early_birds,omitempty"`
	DoubleTexters     []stats.NameCount               `json:"double_texters,omitempty"`
	ResponseTimes     []stats.ResponseTime            `json:"response_times,omitempty"`
	CapsUsers         []stats.CapsStat                `json:"caps_users,omitempty"`
	QuestionAskers    []stats.QuestionStat            `json:"question_askers,omitempty"`
	OneWorders        []stats.OneWordStat             `json:"one_worders,omitempty"`
	SampleMessages    map[string][]string             `json:"sample_messages,omitempty"`
}

// Summarize condenses the compiled input for the roast collaborator: top-30
// words, the ten most active members, and up to ten sampled messages per
// member drawn with rng, so a fixed seed yields a fixed summary.
func Summarize(in Input, rng *rand.Rand) FeatureSummary {
	words := in.Words
	if len(words) > 30 {
		words = words[:30]
	}
	chatters := in.TopChatters
	if len(chatters) > 10 {
		chatters = chatters[:10]
	}

	peak := -1
	if len(in.Hourly) > 0 {
		peak = peakHour(in.Hourly)
	}

	return FeatureSummary{
		GroupName:         in.GroupName,
		Year:              in.Year,
		TotalMessages:     in.Basic.TotalMessages,
		TotalParticipants: in.Basic.TotalParticipants,
		PeakHour:          peak,
		Topics:            in.Topics,
		TopWords:          words,
		TopChatters:       chatters,
		SignatureWords:    in.SignatureWords,
		Tags:              in.Tags,
		EmojiBySender:     in.EmojiBySender,
		NightOwls:         in.NightOwls,
		EarlyBirds:        in.EarlyBirds,
		DoubleTexters:     in.DoubleTexters,
		ResponseTimes:     in.ResponseTimes,
		CapsUsers:         in.CapsUsers,
		QuestionAskers:    in.QuestionAskers,
		OneWorders:        in.OneWorders,
		SampleMessages:    sampleMessages(in, chatters, rng),
	}
}

// sampleMessages picks up to ten interesting text messages per member:
// between 6 and 29 words, not a bare link.
func sampleMessages(in Input, chatters []stats.NameCount, rng *rand.Rand) map[string][]string {
	byPerson := make(map[string][]string, len(chatters))
	wanted := make(map[string]struct{}, len(chatters))
	for _, c := range chatters {
		wanted[c.Name] = struct{}{}
	}

	for _, m := range in.UserMessages {
		if m.Media != "" {
			continue
		}
		if _, ok := wanted[m.Sender]; !ok {
			continue
		}
		n := len(strings.Fields(m.Text))
		if n <= 5 || n >= 30 || strings.HasPrefix(m.Text, "http") {
			continue
		}
		byPerson[m.Sender] = append(byPerson[m.Sender], m.Text)
	}

	out := make(map[string][]string, len(byPerson))
	for _, c := range chatters {
		msgs, ok := byPerson[c.Name]
		if !ok {
			continue
		}
		if len(msgs) > 10 {
			msgs = sampleN(msgs, 10, rng)
		}
		out[c.Name] = msgs
	}
	return out
}

// sampleN draws n items without replacement via partial Fisher-Yates.
func sampleN(items []string, n int, rng *rand.Rand) []string {
	pool := append([]string(nil), items...)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
