package persona

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/cognicore/recap/pkg/recap/chatlog"
	"github.com/cognicore/recap/pkg/recap/stats"
)

func msgsFor(counts map[string]int) []chatlog.Message {
	var out []chatlog.Message
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for _, name := range []string{"Arjun", "Bala", "Chitra"} {
		for i := 0; i < counts[name]; i++ {
			out = append(out, chatlog.Message{
				Timestamp: base.Add(time.Duration(len(out)) * time.Minute),
				Sender:    name,
			})
		}
	}
	return out
}

func tagNames(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.Name
	}
	return out
}

func hasTag(tags []Tag, name string) bool {
	for _, t := range tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

func TestAssignTagsActivity(t *testing.T) {
	msgs := msgsFor(map[string]int{"Arjun": 100, "Bala": 50, "Chitra": 3})
	b := Bundle{
		TopChatters: []stats.NameCount{{Name: "Arjun", Count: 100}, {Name: "Bala", Count: 50}, {Name: "Chitra", Count: 3}},
	}

	tags := AssignTags(msgs, b)

	if !hasTag(tags["Arjun"], "chatterbox") {
		t.Errorf("Arjun tags = %v, want chatterbox", tagNames(tags["Arjun"]))
	}
	if tags["Arjun"][0].Detail != "#1 with 100 messages" {
		t.Errorf("chatterbox detail = %q", tags["Arjun"][0].Detail)
	}
	if !hasTag(tags["Bala"], "active_member") {
		t.Errorf("Bala tags = %v, want active_member", tagNames(tags["Bala"]))
	}
	if _, ok := tags["Chitra"]; ok {
		t.Error("sender with under 5 messages should get no tags")
	}
}

func TestAssignTagsLurker(t *testing.T) {
	// Bala: 12 of 300 messages = 4%, above 10 msgs -> lurker
	msgs := msgsFor(map[string]int{"Arjun": 288, "Bala": 12})
	b := Bundle{
		TopChatters: []stats.NameCount{{Name: "Arjun", Count: 288}, {Name: "Bala", Count: 12}},
	}

	tags := AssignTags(msgs, b)
	if !hasTag(tags["Bala"], "lurker") {
		t.Fatalf("Bala tags = %v, want lurker", tagNames(tags["Bala"]))
	}
	for _, tag := range tags["Bala"] {
		if tag.Name == "lurker" && tag.Detail != "Only 4.0% of messages" {
			t.Errorf("lurker detail = %q", tag.Detail)
		}
	}
}

func TestAssignTagsTimingExclusive(t *testing.T) {
	msgs := msgsFor(map[string]int{"Arjun": 50})

	cases := []struct {
		name    string
		night   int
		morning int
		want    string
	}{
		{"night dominant", 40, 5, "night_owl"},
		{"morning dominant", 5, 30, "early_bird"},
		{"close call night larger", 25, 20, "night_owl"},
		{"close call morning larger", 18, 22, "early_bird"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Bundle{
				NightOwls:  []stats.NameCount{{Name: "Arjun", Count: tc.night}},
				EarlyBirds: []stats.NameCount{{Name: "Arjun", Count: tc.morning}},
			}
			tags := AssignTags(msgs, b)
			if !hasTag(tags["Arjun"], tc.want) {
				t.Errorf("tags = %v, want %s", tagNames(tags["Arjun"]), tc.want)
			}
			other := "early_bird"
			if tc.want == "early_bird" {
				other = "night_owl"
			}
			if hasTag(tags["Arjun"], other) {
				t.Errorf("both timing tags assigned: %v", tagNames(tags["Arjun"]))
			}
		})
	}
}

func TestAssignTagsThresholdEdges(t *testing.T) {
	msgs := msgsFor(map[string]int{"Arjun": 50})
	b := Bundle{
		Starters:      []stats.NameCount{{Name: "Arjun", Count: 10}}, // not > 10
		DoubleTexters: []stats.NameCount{{Name: "Arjun", Count: 20}}, // not > 20
		Killers:       []stats.KillerStat{{Name: "Arjun", Kills: 6, Rate: 10}},
		ResponseTimes: []stats.ResponseTime{{Name: "Arjun", AvgSeconds: 30}},
	}

	tags := AssignTags(msgs, b)
	for _, banned := range []string{"conversation_starter", "double_texter", "conversation_killer", "speed_demon", "ghost"} {
		if hasTag(tags["Arjun"], banned) {
			t.Errorf("boundary value wrongly passed threshold for %s: %v", banned, tagNames(tags["Arjun"]))
		}
	}
}

func TestAssignTagsStyleAndContent(t *testing.T) {
	msgs := msgsFor(map[string]int{"Arjun": 50})
	b := Bundle{
		ResponseTimes:  []stats.ResponseTime{{Name: "Arjun", AvgSeconds: 400}},
		LongestAvg:     []stats.NameAvg{{Name: "Arjun", Average: 150.7}},
		OneWorders:     []stats.OneWordStat{{Name: "Arjun", Rate: 45.2}},
		CapsUsers:      []stats.CapsStat{{Name: "Arjun", CapsMessages: 12}},
		QuestionAskers: []stats.QuestionStat{{Name: "Arjun", Questions: 25}},
		LinkSharers:    []stats.NameCount{{Name: "Arjun", Count: 15}},
		Monologuers:    []stats.Monologue{{Name: "Arjun", Longest: 9}},
		LaughStats:     []stats.NameCount{{Name: "Arjun", Count: 35}},
		Media:          stats.MediaSummary{Total: 30, TopSharers: []stats.NameCount{{Name: "Arjun", Count: 25}}},
		EmojiBySender:  []stats.SenderEmojis{{Name: "Arjun", Total: 60}},
	}

	tags := AssignTags(msgs, b)
	want := []string{
		"ghost", "essay_writer", "one_worder", "caps_lock", "question_asker",
		"link_dropper", "monologuer", "lol_addict", "media_king", "emoji_spammer",
	}
	got := tagNames(tags["Arjun"])
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag %d = %s, want %s (rule order matters)", i, got[i], want[i])
		}
	}
	for _, tag := range tags["Arjun"] {
		if tag.Name == "ghost" && tag.Detail != "Avg 6min response" {
			t.Errorf("ghost detail = %q", tag.Detail)
		}
	}
}

func TestTemplateRoastDeterministic(t *testing.T) {
	tags := []Tag{{Name: "chatterbox"}, {Name: "night_owl"}, {Name: "one_worder"}, {Name: "ghost"}}
	sig := []stats.SignatureWord{{Word: "macha"}}
	phrases := []stats.Catchphrase{{Phrase: "trust me bro"}}

	a := TemplateRoast("Arjun Kumar", tags, sig, phrases, rand.New(rand.NewSource(7)))
	b := TemplateRoast("Arjun Kumar", tags, sig, phrases, rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same seed produced different roasts:\n%s\n%s", a, b)
	}
	if !strings.HasPrefix(a, "Arjun ") {
		t.Errorf("roast should open with the first name: %q", a)
	}
}

func TestTemplateRoastEmpty(t *testing.T) {
	if r := TemplateRoast("Arjun", nil, nil, nil, rand.New(rand.NewSource(1))); r != "" {
		t.Errorf("no tags should produce no roast, got %q", r)
	}
}
