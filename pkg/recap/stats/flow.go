package stats

import (
	"sort"
	"time"

	"github.com/cognicore/recap/pkg/recap/chatlog"
)

// PairCount counts how often To replied to From within the reply window.
type PairCount struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// ResponsePairs finds who replies to whom: a reply is the next message from a
// different sender within five minutes.
func ResponsePairs(msgs []chatlog.Message) []PairCount {
	sorted := sortedByTime(msgs)
	if len(sorted) < 2 {
		return nil
	}

	c := newCounter()
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Sender == prev.Sender {
			continue
		}
		if cur.Timestamp.Sub(prev.Timestamp) > 5*time.Minute {
			continue
		}
		c.add(prev.Sender+"\x00"+cur.Sender, 1)
	}

	ranked := c.top(10)
	out := make([]PairCount, len(ranked))
	for i, e := range ranked {
		from, to := splitPairKey(e.Name)
		out[i] = PairCount{From: from, To: to, Count: e.Count}
	}
	return out
}

func splitPairKey(key string) (string, string) {
	for i := 0; i < len(key); i++ {
		if key[i] == 0 {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}

// DoubleTexters counts follow-up messages sent before anyone replied: a run
// of k consecutive messages from one sender contributes k-1.
func DoubleTexters(msgs []chatlog.Message) []NameCount {
	sorted := sortedByTime(msgs)
	if len(sorted) < 2 {
		return nil
	}

	c := newCounter()
	runLen := 1
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i].Sender == sorted[i-1].Sender {
			runLen++
			continue
		}
		if runLen > 1 {
			c.add(sorted[i-1].Sender, runLen-1)
		}
		runLen = 1
	}
	return c.top(10)
}

// KillerStat describes a sender whose messages tend to end conversations.
type KillerStat struct {
	Name  string  `json:"name"`
	Kills int     `json:"kills"`
	Total int     `json:"total"`
	Rate  float64 `json:"rate"`
}

// ConversationKillers ranks senders whose messages are followed by more than
// thirty minutes of silence. Only senders with more than ten messages
// qualify; the top five by kill count are returned.
func ConversationKillers(msgs []chatlog.Message) []KillerStat {
	sorted := sortedByTime(msgs)
	if len(sorted) < 2 {
		return nil
	}

	totals := newCounter()
	kills := newCounter()
	for i, m := range sorted {
		totals.add(m.Sender, 1)
		if i+1 < len(sorted) && sorted[i+1].Timestamp.Sub(m.Timestamp) > 30*time.Minute {
			kills.add(m.Sender, 1)
		}
	}

	out := make([]KillerStat, 0, kills.len())
	for _, name := range kills.keysInOrder() {
		total := totals.get(name)
		if total <= 10 {
			continue
		}
		k := kills.get(name)
		out = append(out, KillerStat{
			Name:  name,
			Kills: k,
			Total: total,
			Rate:  round1(float64(k) / float64(total) * 100),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kills > out[j].Kills })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// ResponseTime summarizes how fast a sender replies to others.
type ResponseTime struct {
	Name         string  `json:"name"`
	AvgSeconds   float64 `json:"avg_seconds"`
	AvgFormatted string  `json:"avg_formatted"`
	Responses    int     `json:"response_count"`
}

// ResponseTimes computes average reply latency per sender over replies to a
// different sender within an hour. Senders with fewer than five replies are
// skipped; the ten fastest are returned.
func ResponseTimes(msgs []chatlog.Message) []ResponseTime {
	sorted := sortedByTime(msgs)
	if len(sorted) < 2 {
		return nil
	}

	sums := make(map[string]float64)
	counts := newCounter()
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Sender == prev.Sender {
			continue
		}
		gap := cur.Timestamp.Sub(prev.Timestamp).Seconds()
		if gap <= 0 || gap >= 3600 {
			continue
		}
		sums[cur.Sender] += gap
		counts.add(cur.Sender, 1)
	}

	out := make([]ResponseTime, 0, counts.len())
	for _, name := range counts.keysInOrder() {
		n := counts.get(name)
		if n < 5 {
			continue
		}
		avg := sums[name] / float64(n)
		out = append(out, ResponseTime{
			Name:         name,
			AvgSeconds:   round1(avg),
			AvgFormatted: FormatDuration(avg),
			Responses:    n,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgSeconds < out[j].AvgSeconds })
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

// Monologue describes a sender's habit of posting long uninterrupted runs.
type Monologue struct {
	Name      string  `json:"name"`
	Longest   int     `json:"longest"`
	Total     int     `json:"total_monologues"`
	AvgLength float64 `json:"avg_length"`
}

// Monologuers finds runs of five or more consecutive messages from the same
// sender and ranks the top five senders by their longest run.
func Monologuers(msgs []chatlog.Message) []Monologue {
	const minRun = 5

	sorted := sortedByTime(msgs)
	if len(sorted) < minRun {
		return nil
	}

	totals := newCounter()
	longest := make(map[string]int)
	runSums := make(map[string]int)

	record := func(sender string, runLen int) {
		if runLen < minRun {
			return
		}
		totals.add(sender, 1)
		runSums[sender] += runLen
		if runLen > longest[sender] {
			longest[sender] = runLen
		}
	}

	runLen := 1
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i].Sender == sorted[i-1].Sender {
			runLen++
			continue
		}
		record(sorted[i-1].Sender, runLen)
		runLen = 1
	}

	out := make([]Monologue, 0, totals.len())
	for _, name := range totals.keysInOrder() {
		out = append(out, Monologue{
			Name:      name,
			Longest:   longest[name],
			Total:     totals.get(name),
			AvgLength: round1(float64(runSums[name]) / float64(totals.get(name))),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Longest > out[j].Longest })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}
