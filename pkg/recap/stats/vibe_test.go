package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/cognicore/recap/pkg/recap/chatlog"
)

func TestGroupVibeEnergy(t *testing.T) {
	// 60 messages over 1 day = hyperactive
	var msgs []chatlog.Message
	for i := 0; i < 60; i++ {
		msgs = append(msgs, chatlog.Message{
			Timestamp: at(1, 20, 0).Add(time.Duration(i) * time.Minute),
			Sender:    "A",
			Text:      "hi",
		})
	}

	vibe := GroupVibe(msgs, nil, HourlyActivity(msgs), lex, false)
	if vibe.Energy != "hyperactive" {
		t.Errorf("energy = %q, want hyperactive", vibe.Energy)
	}
	if len(vibe.Personality) == 0 || vibe.Personality[0] != "chaotic" {
		t.Errorf("personality = %v", vibe.Personality)
	}
	if vibe.PeakTime != "evening squad" {
		t.Errorf("peak time = %q, want evening squad", vibe.PeakTime)
	}
	if !strings.HasPrefix(vibe.Description, "A hyperactive energy group of ") {
		t.Errorf("description = %q", vibe.Description)
	}
	if !strings.Contains(vibe.Description, "everything and nothing") {
		t.Errorf("no-topics fallback missing: %q", vibe.Description)
	}
}

func TestGroupVibeChill(t *testing.T) {
	msgs := []chatlog.Message{
		{Timestamp: at(1, 9, 0), Sender: "A", Text: "hi"},
		{Timestamp: at(20, 9, 0), Sender: "B", Text: "yo"},
	}

	vibe := GroupVibe(msgs, nil, HourlyActivity(msgs), lex, false)
	if vibe.Energy != "chill" {
		t.Errorf("energy = %q, want chill", vibe.Energy)
	}
	if vibe.PeakTime != "morning people" {
		t.Errorf("peak time = %q", vibe.PeakTime)
	}
}

func TestGroupVibeMood(t *testing.T) {
	msgs := []chatlog.Message{{Timestamp: at(1, 14, 0), Sender: "A", Text: "ok"}}
	emojis := []EmojiCount{{Emoji: "😂", Count: 40}, {Emoji: "🔥", Count: 10}}

	vibe := GroupVibe(msgs, emojis, HourlyActivity(msgs), lex, false)
	found := false
	for _, p := range vibe.Personality {
		if p == "humor-driven" {
			found = true
		}
	}
	if !found {
		t.Errorf("dominant laugh emoji should add humor-driven: %v", vibe.Personality)
	}
}

func TestGroupVibeEmpty(t *testing.T) {
	vibe := GroupVibe(nil, nil, nil, lex, false)
	if vibe.Energy != "medium" || vibe.Description != "" {
		t.Errorf("empty vibe = %+v", vibe)
	}
}

func TestEmojiStats(t *testing.T) {
	msgs := []chatlog.Message{
		{Timestamp: at(1, 10, 0), Sender: "A", Text: "😂😂🔥"},
		{Timestamp: at(1, 10, 1), Sender: "B", Text: "😂 nice"},
	}

	got := EmojiStats(msgs, 15)
	if len(got) != 2 || got[0].Emoji != "😂" || got[0].Count != 3 {
		t.Errorf("emoji stats = %v", got)
	}
}

func TestEmojiStatsBySender(t *testing.T) {
	msgs := []chatlog.Message{
		{Timestamp: at(1, 10, 0), Sender: "A", Text: "😂😂🔥🔥🔥"},
		{Timestamp: at(1, 10, 1), Sender: "B", Text: "❤️"},
		{Timestamp: at(1, 10, 2), Sender: "C", Text: "no emoji"},
	}

	got := EmojiStatsBySender(msgs, 5)
	if len(got) != 2 {
		t.Fatalf("by sender = %v, want A and B only", got)
	}
	if got[0].Name != "A" || got[0].Total != 5 {
		t.Errorf("top sender = %+v", got[0])
	}
	if got[0].Top[0].Emoji != "🔥" || got[0].Top[0].Count != 3 {
		t.Errorf("favorite = %+v", got[0].Top[0])
	}
}

func TestMediaStats(t *testing.T) {
	msgs := []chatlog.Message{
		{Timestamp: at(1, 10, 0), Sender: "A", Media: "image"},
		{Timestamp: at(1, 10, 1), Sender: "A", Media: "image"},
		{Timestamp: at(1, 10, 2), Sender: "B", Media: "video"},
		{Timestamp: at(1, 10, 3), Sender: "B", Text: "plain"},
	}

	got := MediaStats(msgs)
	if got.Total != 3 {
		t.Errorf("total = %d, want 3", got.Total)
	}
	if got.ByType[0].Name != "image" || got.ByType[0].Count != 2 {
		t.Errorf("by type = %v", got.ByType)
	}
	if got.TopSharers[0].Name != "A" || got.TopSharers[0].Count != 2 {
		t.Errorf("top sharers = %v", got.TopSharers)
	}

	if empty := MediaStats(nil); empty.Total != 0 || empty.ByType != nil {
		t.Errorf("empty media = %+v", empty)
	}
}
