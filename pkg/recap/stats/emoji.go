package stats

import (
	"sort"

	"github.com/cognicore/recap/pkg/recap/chatlog"
)

// EmojiCount is one row of an emoji ranking.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// EmojiStats ranks the topN most used emojis across all messages.
func EmojiStats(msgs []chatlog.Message, topN int) []EmojiCount {
	c := newCounter()
	for _, m := range msgs {
		for _, e := range chatlog.ExtractEmojis(m.Text) {
			c.add(e, 1)
		}
	}

	ranked := c.top(topN)
	out := make([]EmojiCount, len(ranked))
	for i, e := range ranked {
		out[i] = EmojiCount{Emoji: e.Name, Count: e.Count}
	}
	return out
}

// SenderEmojis summarizes one sender's emoji usage.
type SenderEmojis struct {
	Name  string       `json:"name"`
	Total int          `json:"total"`
	Top   []EmojiCount `json:"top"`
}

// EmojiStatsBySender returns per-sender emoji totals with each sender's
// three favorites, ranked by total usage. Senders without emojis are
// dropped.
func EmojiStatsBySender(msgs []chatlog.Message, topN int) []SenderEmojis {
	perSender := make(map[string]*counter)
	order := newCounter()

	for _, m := range msgs {
		emojis := chatlog.ExtractEmojis(m.Text)
		if len(emojis) == 0 {
			continue
		}
		order.add(m.Sender, len(emojis))
		pc, ok := perSender[m.Sender]
		if !ok {
			pc = newCounter()
			perSender[m.Sender] = pc
		}
		for _, e := range emojis {
			pc.add(e, 1)
		}
	}

	out := make([]SenderEmojis, 0, len(perSender))
	for _, name := range order.keysInOrder() {
		top := perSender[name].top(3)
		favorites := make([]EmojiCount, len(top))
		for i, e := range top {
			favorites[i] = EmojiCount{Emoji: e.Name, Count: e.Count}
		}
		out = append(out, SenderEmojis{Name: name, Total: order.get(name), Top: favorites})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// MediaSummary aggregates attachment counts.
type MediaSummary struct {
	Total      int         `json:"total"`
	ByType     []NameCount `json:"by_type,omitempty"`
	TopSharers []NameCount `json:"top_sharers,omitempty"`
}

// MediaStats counts attachments by type and by sender (top five sharers).
func MediaStats(msgs []chatlog.Message) MediaSummary {
	byType := newCounter()
	bySender := newCounter()
	total := 0

	for _, m := range msgs {
		if m.Media == "" {
			continue
		}
		total++
		byType.add(string(m.Media), 1)
		bySender.add(m.Sender, 1)
	}

	if total == 0 {
		return MediaSummary{}
	}
	return MediaSummary{
		Total:      total,
		ByType:     byType.entries(),
		TopSharers: bySender.top(5),
	}
}
