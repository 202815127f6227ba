package stats

import (
	"sort"
	"time"

	"github.com/cognicore/recap/pkg/recap/chatlog"
)

// Basic summarizes the overall shape of the chat.
type Basic struct {
	TotalMessages     int       `json:"total_messages"`
	TotalParticipants int       `json:"total_participants"`
	DateRangeDays     int       `json:"date_range_days"`
	FirstMessage      time.Time `json:"first_message"`
	LastMessage       time.Time `json:"last_message"`
	TotalWords        int       `json:"total_words"`
	TotalCharacters   int       `json:"total_characters"`
}

// BasicStats computes the overview block. ok is false for empty input.
func BasicStats(msgs []chatlog.Message) (Basic, bool) {
	if len(msgs) == 0 {
		return Basic{}, false
	}

	b := Basic{TotalMessages: len(msgs)}
	senders := make(map[string]struct{})
	first, last := msgs[0].Timestamp, msgs[0].Timestamp

	for _, m := range msgs {
		senders[m.Sender] = struct{}{}
		if m.Timestamp.Before(first) {
			first = m.Timestamp
		}
		if m.Timestamp.After(last) {
			last = m.Timestamp
		}
		b.TotalWords += m.WordCount
		b.TotalCharacters += m.CharCount
	}

	b.TotalParticipants = len(senders)
	b.FirstMessage = first
	b.LastMessage = last
	b.DateRangeDays = int(dateOnly(last).Sub(dateOnly(first)).Hours() / 24)
	return b, true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TopChatters ranks senders by message count.
func TopChatters(msgs []chatlog.Message, topN int) []NameCount {
	c := newCounter()
	for _, m := range msgs {
		c.add(m.Sender, 1)
	}
	return c.top(topN)
}

// HourlyActivity returns message counts per hour of day. Hours with no
// messages are absent.
func HourlyActivity(msgs []chatlog.Message) map[int]int {
	out := make(map[int]int)
	for _, m := range msgs {
		out[m.Hour()]++
	}
	return out
}

// DailyActivity returns counts per weekday in fixed Monday-first order,
// including zero entries.
func DailyActivity(msgs []chatlog.Message) []NameCount {
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[m.Weekday()]++
	}

	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	out := make([]NameCount, len(days))
	for i, d := range days {
		out[i] = NameCount{Name: d, Count: counts[d]}
	}
	return out
}

// ConversationStarters counts messages that open a conversation: the first
// message overall, or any message after more than an hour of silence.
func ConversationStarters(msgs []chatlog.Message) []NameCount {
	sorted := sortedByTime(msgs)
	if len(sorted) < 2 {
		return nil
	}

	c := newCounter()
	for i, m := range sorted {
		if i == 0 || m.Timestamp.Sub(sorted[i-1].Timestamp) > time.Hour {
			c.add(m.Sender, 1)
		}
	}
	return c.top(10)
}

// NightOwls ranks senders by messages sent between midnight and 5am.
func NightOwls(msgs []chatlog.Message) []NameCount {
	c := newCounter()
	for _, m := range msgs {
		if h := m.Hour(); h >= 0 && h < 5 {
			c.add(m.Sender, 1)
		}
	}
	return c.top(5)
}

// EarlyBirds ranks senders by messages sent between 5am and 8am.
func EarlyBirds(msgs []chatlog.Message) []NameCount {
	c := newCounter()
	for _, m := range msgs {
		if h := m.Hour(); h >= 5 && h < 8 {
			c.add(m.Sender, 1)
		}
	}
	return c.top(5)
}

// NameAvg is one row of an average-value ranking.
type NameAvg struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

// LongestMessages ranks senders by mean character count of their text
// messages.
func LongestMessages(msgs []chatlog.Message, topN int) []NameAvg {
	totals := newCounter()
	counts := newCounter()
	for _, m := range chatlog.TextMessages(msgs) {
		totals.add(m.Sender, m.CharCount)
		counts.add(m.Sender, 1)
	}

	out := make([]NameAvg, 0, totals.len())
	for _, name := range totals.keysInOrder() {
		out = append(out, NameAvg{Name: name, Average: float64(totals.get(name)) / float64(counts.get(name))})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Average > out[j].Average })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// DateCount is a per-calendar-day message count.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// BusiestDates returns the topN most active calendar days.
func BusiestDates(msgs []chatlog.Message, topN int) []DateCount {
	c := newCounter()
	for _, m := range msgs {
		c.add(m.Day(), 1)
	}

	ranked := c.top(topN)
	out := make([]DateCount, len(ranked))
	for i, e := range ranked {
		out[i] = DateCount{Date: e.Name, Count: e.Count}
	}
	return out
}

// Streaks describes runs of consecutive active calendar days.
type Streaks struct {
	Longest         int `json:"longest_streak"`
	Current         int `json:"current_streak"`
	TotalActiveDays int `json:"total_active_days"`
}

// StreakStats computes the longest and the trailing run of consecutive days
// with at least one message.
func StreakStats(msgs []chatlog.Message) Streaks {
	daySet := make(map[string]struct{})
	for _, m := range msgs {
		daySet[m.Day()] = struct{}{}
	}
	if len(daySet) == 0 {
		return Streaks{}
	}

	days := make([]string, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Strings(days)

	if len(days) < 2 {
		return Streaks{Longest: 1, Current: 1, TotalActiveDays: 1}
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse("2006-01-02", days[i-1])
		cur, _ := time.Parse("2006-01-02", days[i])
		if cur.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return Streaks{Longest: longest, Current: run, TotalActiveDays: len(days)}
}
