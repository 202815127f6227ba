// Package llm calls an OpenAI-compatible chat completion endpoint to
// generate roasts from a chat feature summary.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cognicore/recap/pkg/recap/report"
	"github.com/cognicore/recap/pkg/recap/stats"
)

const systemPrompt = `you are a brutal unhinged genz roast master. your job is to absolutely destroy friend groups and individuals based on their chat export data.

rules:
- be BRUTAL and SAVAGE no mercy no holding back
- write in full lowercase like how gen z types casually
- DO NOT use emojis at all
- DO NOT use fancy punctuation, keep it raw and human typed
- DO NOT include any numbers or statistics in roasts, no message counts, no percentages, just vibes
- keep roasts SHORT, max 2-3 lines each, punchy and devastating
- use genz slang naturally: fr fr, no cap, lowkey, highkey, deadass, npc energy, delulu, sus, mid, based, cringe, touch grass, brainrot, rizz, cooked, its giving, chronically online
- IMPORTANT: base your roasts primarily on their TOP WORDS and SIGNATURE WORDS they actually use in chat, not on generic personality tags
- reference specific words they say, topics they discuss, names that come up in their chats
- if its a 2 person chat, roast whos clearly carrying the convo and whos down bad
- no slurs, no actually harmful content, just savage humor
- each roast should be UNIQUE and specific to that person/group based on their actual chat content

output ONLY valid JSON, no other text.`

// Client calls an OpenAI-compatible chat completion endpoint.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string

	HTTPClient *http.Client
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateRoasts asks the model for a brainrot score, a group roast, and one
// roast per member, grounded in the feature summary.
func (c *Client) GenerateRoasts(ctx context.Context, sum report.FeatureSummary) (report.RoastResult, error) {
	content, err := c.chat(ctx, systemPrompt, buildUserPrompt(sum))
	if err != nil {
		return report.RoastResult{}, err
	}
	return parseRoasts(content)
}

func (c *Client) chat(ctx context.Context, system, user string) (string, error) {
	if c.BaseURL == "" || c.Model == "" {
		return "", fmt.Errorf("llm: base URL and model required")
	}

	reqBody, err := json.Marshal(chatRequest{
		Model:          c.Model,
		Messages:       []chatMessage{{Role: "system", Content: system}, {Role: "user", Content: user}},
		Temperature:    0.9,
		MaxTokens:      2000,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.Error != nil {
		return "", fmt.Errorf("llm error: %s", payload.Error.Message)
	}
	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("llm: empty response")
	}
	return payload.Choices[0].Message.Content, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}

func buildUserPrompt(sum report.FeatureSummary) string {
	var buf bytes.Buffer

	groupName := sum.GroupName
	if groupName == "" {
		groupName = "unnamed group"
	}

	chatType := "large group chat"
	switch {
	case sum.TotalParticipants == 2:
		a, b := "Person1", "Person2"
		if len(sum.TopChatters) >= 2 {
			a, b = sum.TopChatters[0].Name, sum.TopChatters[1].Name
		}
		chatType = fmt.Sprintf("2 PERSON PRIVATE CHAT between %s and %s, roast whos more down bad, whos carrying the convo, whos clearly trying harder", a, b)
	case sum.TotalParticipants <= 5:
		chatType = "small friend group chat"
	}

	fmt.Fprintf(&buf, "analyze this group chat data and generate brutal genz roasts.\n\n")
	fmt.Fprintf(&buf, "GROUP INFO:\n")
	fmt.Fprintf(&buf, "- name: %s\n", groupName)
	fmt.Fprintf(&buf, "- year: %d\n", sum.Year)
	fmt.Fprintf(&buf, "- total messages: %d\n", sum.TotalMessages)
	fmt.Fprintf(&buf, "- total participants: %d\n", sum.TotalParticipants)
	fmt.Fprintf(&buf, "- chat type: %s\n\n", chatType)

	fmt.Fprintf(&buf, "TOP WORDS USED IN CHAT (USE THESE FOR ROASTING):\n%s\n\n", topWordsLine(sum.TopWords))
	fmt.Fprintf(&buf, "MEMBER STATS:\n%s\n\n", memberStats(sum))

	fmt.Fprintf(&buf, "GROUP VIBES:\n")
	if sum.PeakHour >= 0 {
		fmt.Fprintf(&buf, "- peak hour: %d:00\n", sum.PeakHour)
	} else {
		fmt.Fprintf(&buf, "- peak hour: unknown\n")
	}
	fmt.Fprintf(&buf, "- topics they talk about: %s\n\n", topicsLine(sum.Topics))

	fmt.Fprintf(&buf, `generate a JSON response:
1. "brainrot_score": number 0-100 rating how chronically online this group is
2. "group_roast": ONE single string, max 2-3 lines, brutal roast about the group/chat. use their actual words and topics against them.
3. "individual_roasts": object with each persons name as key, value is ONE single string, max 2-3 lines. USE THEIR SIGNATURE WORDS against them.

IMPORTANT:
- no emojis ever
- all lowercase
- NO NUMBERS OR STATS in roasts
- keep it SHORT, max 2-3 lines per roast
- base roasts on their TOP WORDS and SIGNATURE WORDS not generic personality traits
`)
	return buf.String()
}

func topWordsLine(words []stats.NameCount) string {
	if len(words) == 0 {
		return "none"
	}
	if len(words) > 30 {
		words = words[:30]
	}
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%s(%d)", w.Name, w.Count)
	}
	return strings.Join(parts, ", ")
}

func topicsLine(topics []string) string {
	if len(topics) == 0 {
		return "random chaos"
	}
	if len(topics) > 4 {
		topics = topics[:4]
	}
	return strings.Join(topics, ", ")
}

// memberStats renders one block per member with whatever signal is available.
func memberStats(sum report.FeatureSummary) string {
	var buf bytes.Buffer

	nightOwls := countByName(sum.NightOwls)
	earlyBirds := countByName(sum.EarlyBirds)
	doubleTexters := countByName(sum.DoubleTexters)

	for i, c := range sum.TopChatters {
		fmt.Fprintf(&buf, "\n%d. %s:\n", i+1, c.Name)
		fmt.Fprintf(&buf, "   - Messages: %d (#%d in group)\n", c.Count, i+1)

		if words := sum.SignatureWords[c.Name]; len(words) > 0 {
			names := make([]string, 0, 5)
			for _, w := range words {
				names = append(names, w.Word)
				if len(names) == 5 {
					break
				}
			}
			fmt.Fprintf(&buf, "   - Signature words: %s\n", strings.Join(names, ", "))
		}

		if tags := sum.Tags[c.Name]; len(tags) > 0 {
			names := make([]string, 0, 4)
			for _, t := range tags {
				names = append(names, t.Name)
				if len(names) == 4 {
					break
				}
			}
			fmt.Fprintf(&buf, "   - Personality: %s\n", strings.Join(names, ", "))
		}

		for _, se := range sum.EmojiBySender {
			if se.Name != c.Name || len(se.Top) == 0 {
				continue
			}
			emojis := make([]string, 0, 3)
			for _, e := range se.Top {
				emojis = append(emojis, e.Emoji)
				if len(emojis) == 3 {
					break
				}
			}
			fmt.Fprintf(&buf, "   - Fav emojis: %s\n", strings.Join(emojis, " "))
			break
		}

		if n := nightOwls[c.Name]; n > 10 {
			fmt.Fprintf(&buf, "   - Night owl: %d late night msgs\n", n)
		} else if n := earlyBirds[c.Name]; n > 5 {
			fmt.Fprintf(&buf, "   - Early bird: %d morning msgs\n", n)
		}

		if n := doubleTexters[c.Name]; n > 10 {
			fmt.Fprintf(&buf, "   - Double texter: %d times\n", n)
		}

		for _, rt := range sum.ResponseTimes {
			if rt.Name != c.Name {
				continue
			}
			switch avg := rt.AvgSeconds; {
			case avg < 60:
				fmt.Fprintf(&buf, "   - Replies in: ~%ds (instant)\n", int(avg))
			case avg < 300:
				fmt.Fprintf(&buf, "   - Replies in: ~%dmin\n", int(avg/60))
			default:
				fmt.Fprintf(&buf, "   - Replies in: ~%dmin (slow)\n", int(avg/60))
			}
			break
		}

		for _, cs := range sum.CapsUsers {
			if cs.Name == c.Name && cs.CapsMessages > 5 {
				fmt.Fprintf(&buf, "   - CAPS LOCK USER: %d shouty msgs\n", cs.CapsMessages)
			}
		}
		for _, qa := range sum.QuestionAskers {
			if qa.Name == c.Name && qa.Questions > 10 {
				fmt.Fprintf(&buf, "   - Question asker: %d questions\n", qa.Questions)
			}
		}
		for _, ow := range sum.OneWorders {
			if ow.Name == c.Name && ow.Rate > 20 {
				fmt.Fprintf(&buf, "   - One-word replies: %.1f%% of msgs\n", ow.Rate)
			}
		}

		if msgs := sum.SampleMessages[c.Name]; len(msgs) > 0 {
			fmt.Fprintf(&buf, "   - Sample messages they sent:\n")
			for i, m := range msgs {
				if i == 8 {
					break
				}
				fmt.Fprintf(&buf, "     %q\n", m)
			}
		}
	}
	return buf.String()
}

func countByName(entries []stats.NameCount) map[string]int {
	m := make(map[string]int, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Count
	}
	return m
}

// parseRoasts decodes the model payload, coercing loosely typed fields: the
// score may arrive as a number or string, roasts as a string or a list of
// lines.
func parseRoasts(content string) (report.RoastResult, error) {
	var payload struct {
		BrainrotScore    json.RawMessage            `json:"brainrot_score"`
		GroupRoast       json.RawMessage            `json:"group_roast"`
		IndividualRoasts map[string]json.RawMessage `json:"individual_roasts"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return report.RoastResult{}, fmt.Errorf("parse roast payload: %w", err)
	}

	result := report.RoastResult{
		BrainrotScore:    69,
		GroupRoast:       "this group is too mid to roast fr",
		IndividualRoasts: make(map[string]string, len(payload.IndividualRoasts)),
	}

	if len(payload.BrainrotScore) > 0 {
		if n, ok := coerceInt(payload.BrainrotScore); ok {
			result.BrainrotScore = n
		}
	}
	if len(payload.GroupRoast) > 0 {
		if s, ok := coerceString(payload.GroupRoast); ok {
			result.GroupRoast = s
		}
	}
	for person, raw := range payload.IndividualRoasts {
		if s, ok := coerceString(raw); ok {
			result.IndividualRoasts[person] = s
		}
	}
	return result, nil
}

func coerceInt(raw json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func coerceString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, " "), true
	}
	return "", false
}
