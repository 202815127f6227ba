package identity

import (
	"testing"
	"time"

	"github.com/cognicore/recap/pkg/recap/chatlog"
	"github.com/cognicore/recap/pkg/recap/lexicon"
)

var lex = lexicon.Default()

func at(min int) time.Time {
	return time.Date(2024, 5, 12, 10, min, 0, 0, time.UTC)
}

func msg(sender, text string, min int) chatlog.Message {
	return chatlog.Message{Timestamp: at(min), Sender: sender, Text: text}
}

func TestMergeSimilarPrefix(t *testing.T) {
	msgs := []chatlog.Message{
		msg("Sanjjit S CSE", "hi", 0),
		msg("Sanjjit S", "yo", 1),
	}

	merged, mapping := MergeSimilar(msgs, lex)
	if mapping["Sanjjit S CSE"] != "Sanjjit S" {
		t.Fatalf("mapping = %v, want longer name mapped to shorter", mapping)
	}
	for _, m := range merged {
		if m.Sender != "Sanjjit S" {
			t.Errorf("sender %q not rewritten", m.Sender)
		}
	}
}

func TestMergeSimilarInstitutionSuffix(t *testing.T) {
	// Not a prefix pair ("ravi kumar" vs "ravi cse kumar g2"), but same first
	// name, one side has institution tokens, and the clean name's words are a
	// subset of the suffixed one.
	msgs := []chatlog.Message{
		msg("ravi cse kumar g2", "a", 0),
		msg("ravi kumar", "b", 1),
	}

	_, mapping := MergeSimilar(msgs, lex)
	if mapping["ravi cse kumar g2"] != "ravi kumar" {
		t.Fatalf("mapping = %v, want suffixed name mapped to clean name", mapping)
	}
}

func TestMergeSimilarRejections(t *testing.T) {
	cases := []struct {
		name   string
		a, b   string
		reason string
	}{
		{"short first name", "ram cse", "ram kumar", "first token <= 3 chars and not a prefix pair"},
		{"both have inst tokens", "ravi kumar cse", "ravi anand g2", "institution marker on both sides"},
		{"not a subset", "sanjay kumar", "sanjay ram cse", "clean words not a subset"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msgs := []chatlog.Message{msg(tc.a, "a", 0), msg(tc.b, "b", 1)}
			_, mapping := MergeSimilar(msgs, lex)
			if len(mapping) != 0 {
				t.Errorf("merged %v (%s)", mapping, tc.reason)
			}
		})
	}
}

func TestMergeSimilarIdempotent(t *testing.T) {
	msgs := []chatlog.Message{
		msg("Sanjjit S CSE G2", "a", 0),
		msg("Sanjjit S", "b", 1),
		msg("Bala", "c", 2),
	}

	once, m1 := MergeSimilar(msgs, lex)
	twice, m2 := MergeSimilar(once, lex)

	if len(m1) == 0 {
		t.Fatal("first pass merged nothing")
	}
	if len(m2) != 0 {
		t.Errorf("second pass remapped again: %v", m2)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("message %d changed on second pass", i)
		}
	}
}

func TestDetectGroupRenameHistory(t *testing.T) {
	msgs := []chatlog.Message{
		msg("the boys", "Arjun created group “og squad”", 0),
		msg("the boys", "Arjun changed the group name to “the boys”", 5),
		msg("Arjun", "hello", 6),
		msg("Bala", "hi", 7),
	}

	out, info := DetectGroup(msgs, lex)

	if info.Name != "the boys" {
		t.Errorf("current name = %q, want %q", info.Name, "the boys")
	}
	if len(info.History) != 2 {
		t.Fatalf("history len = %d, want 2", len(info.History))
	}
	if info.History[0].Name != "og squad" || info.History[1].Name != "the boys" {
		t.Errorf("history order wrong: %+v", info.History)
	}
	if len(info.SystemSenders) != 1 || info.SystemSenders[0] != "the boys" {
		t.Errorf("system senders = %v", info.SystemSenders)
	}
	for _, m := range out {
		if m.Sender == "the boys" && !m.IsSystem {
			t.Error("group sender message not marked system")
		}
		if m.Sender == "Arjun" && m.IsSystem {
			t.Error("real participant marked system")
		}
	}
}

func TestDetectGroupStraightQuotes(t *testing.T) {
	msgs := []chatlog.Message{
		msg("chat", `Arjun changed the group name to "plain quotes"`, 0),
		msg("Bala", "hi", 1),
	}

	_, info := DetectGroup(msgs, lex)
	if info.Name != "plain quotes" {
		t.Errorf("name = %q, want %q", info.Name, "plain quotes")
	}
}

func TestDetectGroupMixedSenderStaysUser(t *testing.T) {
	// A sender with one real message must not be treated as the group even
	// if its other messages look like system events.
	msgs := []chatlog.Message{
		msg("Arjun", "Bala joined using this group's invite link", 0),
		msg("Arjun", "anyway what's the plan", 1),
	}

	out, info := DetectGroup(msgs, lex)
	if len(info.SystemSenders) != 0 {
		t.Errorf("system senders = %v, want none", info.SystemSenders)
	}
	for _, m := range out {
		if m.IsSystem {
			t.Error("real participant's messages were marked system")
		}
	}
}

func TestDetectGroupGenericSenders(t *testing.T) {
	msgs := []chatlog.Message{
		msg("You", "did something", 0),
		msg("admin", "notice", 1),
		msg("Bala", "hi", 2),
	}

	out, info := DetectGroup(msgs, lex)
	if len(info.SystemSenders) != 2 {
		t.Fatalf("system senders = %v, want You and admin", info.SystemSenders)
	}
	for _, m := range out {
		switch m.Sender {
		case "You", "admin":
			if !m.IsSystem {
				t.Errorf("%q not marked system", m.Sender)
			}
		case "Bala":
			if m.IsSystem {
				t.Error("Bala marked system")
			}
		}
	}
}

func TestDetectGroupEmpty(t *testing.T) {
	out, info := DetectGroup(nil, lex)
	if len(out) != 0 || info.Name != "" || len(info.History) != 0 {
		t.Errorf("empty input produced %v / %+v", out, info)
	}
}
