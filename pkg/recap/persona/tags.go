// Package persona turns per-sender metrics into personality tags and, when
// no external roast collaborator is available, deterministic template roasts.
package persona

import (
	"fmt"

	"github.com/cognicore/recap/pkg/recap/chatlog"
	"github.com/cognicore/recap/pkg/recap/stats"
)

// Tag is one personality label with its supporting detail.
type Tag struct {
	Name   string `json:"tag"`
	Detail string `json:"detail"`
}

// Bundle carries the pre-computed metrics the tag rules read. The engine
// fills it from stats it has already calculated, so tagging adds no extra
// passes over the transcript.
type Bundle struct {
	TopChatters    []stats.NameCount
	Starters       []stats.NameCount
	NightOwls      []stats.NameCount
	EarlyBirds     []stats.NameCount
	DoubleTexters  []stats.NameCount
	Killers        []stats.KillerStat
	ResponseTimes  []stats.ResponseTime
	CapsUsers      []stats.CapsStat
	QuestionAskers []stats.QuestionStat
	LinkSharers    []stats.NameCount
	OneWorders     []stats.OneWordStat
	Monologuers    []stats.Monologue
	LaughStats     []stats.NameCount
	LongestAvg     []stats.NameAvg
	Media          stats.MediaSummary
	EmojiBySender  []stats.SenderEmojis
}

// AssignTags evaluates the threshold rules for every sender with at least
// five messages. Rules run in a fixed order, so the first tag in a sender's
// list is always the strongest activity claim. The timing rules are
// exclusive: a sender is a night owl or an early bird, never both, with a
// 1.5x dominance band deciding close calls.
func AssignTags(userMsgs []chatlog.Message, b Bundle) map[string][]Tag {
	msgCounts := make(map[string]int)
	var senders []string
	for _, m := range userMsgs {
		if _, seen := msgCounts[m.Sender]; !seen {
			senders = append(senders, m.Sender)
		}
		msgCounts[m.Sender]++
	}
	totalMsgs := len(userMsgs)

	chatterRank := make(map[string]int, len(b.TopChatters))
	for i, e := range b.TopChatters {
		chatterRank[e.Name] = i + 1
	}
	starters := countIndex(b.Starters)
	nights := countIndex(b.NightOwls)
	mornings := countIndex(b.EarlyBirds)
	doubles := countIndex(b.DoubleTexters)
	links := countIndex(b.LinkSharers)
	laughs := countIndex(b.LaughStats)
	mediaShares := countIndex(b.Media.TopSharers)

	killers := make(map[string]stats.KillerStat)
	for _, k := range b.Killers {
		killers[k.Name] = k
	}
	responses := make(map[string]stats.ResponseTime)
	for _, r := range b.ResponseTimes {
		responses[r.Name] = r
	}
	caps := make(map[string]stats.CapsStat)
	for _, c := range b.CapsUsers {
		caps[c.Name] = c
	}
	questions := make(map[string]stats.QuestionStat)
	for _, q := range b.QuestionAskers {
		questions[q.Name] = q
	}
	oneWords := make(map[string]stats.OneWordStat)
	for _, o := range b.OneWorders {
		oneWords[o.Name] = o
	}
	monologues := make(map[string]stats.Monologue)
	for _, m := range b.Monologuers {
		monologues[m.Name] = m
	}
	avgLens := make(map[string]float64)
	for _, a := range b.LongestAvg {
		avgLens[a.Name] = a.Average
	}
	emojiTotals := make(map[string]int)
	for _, e := range b.EmojiBySender {
		emojiTotals[e.Name] = e.Total
	}

	out := make(map[string][]Tag)
	for _, sender := range senders {
		msgCount := msgCounts[sender]
		if msgCount < 5 {
			continue
		}

		var tags []Tag
		add := func(name, detail string) {
			tags = append(tags, Tag{Name: name, Detail: detail})
		}

		if rank, ok := chatterRank[sender]; ok {
			if rank == 1 {
				add("chatterbox", fmt.Sprintf("#1 with %d messages", msgCount))
			} else if rank <= 3 {
				add("active_member", fmt.Sprintf("#%d most active", rank))
			}
		}

		share := float64(msgCount) / float64(totalMsgs) * 100
		if share < 5 && msgCount > 10 {
			add("lurker", fmt.Sprintf("Only %.1f%% of messages", share))
		}

		night := nights[sender]
		morning := mornings[sender]
		if night > 20 || morning > 10 {
			switch {
			case float64(night) > float64(morning)*1.5:
				add("night_owl", fmt.Sprintf("%d late night msgs", night))
			case float64(morning) > float64(night)*1.5:
				add("early_bird", fmt.Sprintf("%d early msgs", morning))
			case night > morning:
				add("night_owl", fmt.Sprintf("%d late night msgs", night))
			case morning > 0:
				add("early_bird", fmt.Sprintf("%d early msgs", morning))
			}
		}

		if starts := starters[sender]; starts > 10 {
			add("conversation_starter", fmt.Sprintf("Started %d convos", starts))
		}
		if k, ok := killers[sender]; ok && k.Kills > 5 && k.Rate > 10 {
			add("conversation_killer", fmt.Sprintf("%.1f%% kill rate", k.Rate))
		}

		if r, ok := responses[sender]; ok {
			if r.AvgSeconds < 30 {
				add("speed_demon", fmt.Sprintf("Avg %ds response", int(r.AvgSeconds)))
			} else if r.AvgSeconds > 300 {
				add("ghost", fmt.Sprintf("Avg %dmin response", int(r.AvgSeconds)/60))
			}
		}
		if d := doubles[sender]; d > 20 {
			add("double_texter", fmt.Sprintf("%d double texts", d))
		}

		if avg := avgLens[sender]; avg > 100 {
			add("essay_writer", fmt.Sprintf("~%d chars avg", int(avg)))
		}
		if o, ok := oneWords[sender]; ok && o.Rate > 30 {
			add("one_worder", fmt.Sprintf("%.1f%% one-word msgs", o.Rate))
		}
		if c, ok := caps[sender]; ok && c.CapsMessages > 10 {
			add("caps_lock", fmt.Sprintf("%d SHOUTY msgs", c.CapsMessages))
		}

		if q, ok := questions[sender]; ok && q.Questions > 20 {
			add("question_asker", fmt.Sprintf("%d questions", q.Questions))
		}
		if l := links[sender]; l > 10 {
			add("link_dropper", fmt.Sprintf("%d links shared", l))
		}
		if m, ok := monologues[sender]; ok && m.Longest > 8 {
			add("monologuer", fmt.Sprintf("Longest streak: %d", m.Longest))
		}
		if l := laughs[sender]; l > 30 {
			add("lol_addict", fmt.Sprintf("%d laughs", l))
		}

		if m := mediaShares[sender]; m > 20 {
			add("media_king", fmt.Sprintf("%d media shared", m))
		}
		if e := emojiTotals[sender]; e > 50 {
			add("emoji_spammer", fmt.Sprintf("%d emojis used", e))
		}

		if len(tags) > 0 {
			out[sender] = tags
		}
	}
	return out
}

func countIndex(entries []stats.NameCount) map[string]int {
	m := make(map[string]int, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Count
	}
	return m
}
