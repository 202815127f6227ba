package stats

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/cognicore/recap/pkg/recap/chatlog"
	"github.com/cognicore/recap/pkg/recap/lexicon"
)

// WordStats ranks the most used words across all text messages, with stop
// words and participant-name tokens removed.
func WordStats(msgs []chatlog.Message, lex lexicon.Set, topN int) []NameCount {
	text := chatlog.TextMessages(msgs)
	names := nameParts(text)

	c := newCounter()
	for _, m := range text {
		for _, w := range extractWords(m.Text, lex, names) {
			c.add(w, 1)
		}
	}
	return c.top(topN)
}

func extractWords(body string, lex lexicon.Set, names map[string]struct{}) []string {
	var out []string
	for _, w := range wordRe.FindAllString(strings.ToLower(cleanBody(body)), -1) {
		if lex.IsStopWord(w) {
			continue
		}
		if _, isName := names[w]; isName {
			continue
		}
		out = append(out, w)
	}
	return out
}

var (
	letterRe = regexp.MustCompile(`[a-zA-Z]`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	urlRe    = regexp.MustCompile(`https?://\S+`)
)

// CapsStat describes a sender who shouts.
type CapsStat struct {
	Name         string  `json:"name"`
	CapsMessages int     `json:"caps_messages"`
	Rate         float64 `json:"rate"`
}

// CapsUsers finds senders who type in all caps. A message counts when at
// least five letters are present and over 70% of them are uppercase; senders
// need more than ten qualifying messages. Top five by caps-message count.
func CapsUsers(msgs []chatlog.Message) []CapsStat {
	totals := newCounter()
	caps := newCounter()
	for _, m := range chatlog.TextMessages(msgs) {
		letters := letterRe.FindAllString(m.Text, -1)
		if len(letters) < 5 {
			continue
		}
		totals.add(m.Sender, 1)
		upper := len(upperRe.FindAllString(m.Text, -1))
		if float64(upper)/float64(len(letters)) > 0.7 {
			caps.add(m.Sender, 1)
		}
	}

	out := make([]CapsStat, 0, caps.len())
	for _, name := range caps.keysInOrder() {
		total := totals.get(name)
		if total <= 10 {
			continue
		}
		n := caps.get(name)
		out = append(out, CapsStat{
			Name:         name,
			CapsMessages: n,
			Rate:         round1(float64(n) / float64(total) * 100),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CapsMessages > out[j].CapsMessages })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// QuestionStat describes a sender's question habit.
type QuestionStat struct {
	Name      string  `json:"name"`
	Questions int     `json:"questions"`
	Rate      float64 `json:"rate"`
}

// QuestionAskers ranks senders by messages containing a question mark.
// Senders need more than ten text messages; top five by question count.
func QuestionAskers(msgs []chatlog.Message) []QuestionStat {
	totals := newCounter()
	questions := newCounter()
	for _, m := range chatlog.TextMessages(msgs) {
		totals.add(m.Sender, 1)
		if strings.Contains(m.Text, "?") {
			questions.add(m.Sender, 1)
		}
	}

	out := make([]QuestionStat, 0, questions.len())
	for _, name := range questions.keysInOrder() {
		total := totals.get(name)
		if total <= 10 {
			continue
		}
		q := questions.get(name)
		out = append(out, QuestionStat{
			Name:      name,
			Questions: q,
			Rate:      round1(float64(q) / float64(total) * 100),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Questions > out[j].Questions })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// LinkSharers ranks senders by how many URLs they posted. Top five, zero
// counts dropped.
func LinkSharers(msgs []chatlog.Message) []NameCount {
	c := newCounter()
	for _, m := range chatlog.TextMessages(msgs) {
		if n := len(urlRe.FindAllString(m.Text, -1)); n > 0 {
			c.add(m.Sender, n)
		}
	}
	return c.top(5)
}

// OneWordStat describes a sender's dry-reply habit.
type OneWordStat struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"`
}

// OneWorders ranks senders by the share of their messages that are a single
// word. Senders need more than twenty text messages; top five by rate.
func OneWorders(msgs []chatlog.Message) []OneWordStat {
	totals := newCounter()
	ones := newCounter()
	for _, m := range chatlog.TextMessages(msgs) {
		totals.add(m.Sender, 1)
		if len(strings.Fields(m.Text)) == 1 {
			ones.add(m.Sender, 1)
		}
	}

	out := make([]OneWordStat, 0, ones.len())
	for _, name := range ones.keysInOrder() {
		total := totals.get(name)
		if total <= 20 {
			continue
		}
		n := ones.get(name)
		out = append(out, OneWordStat{
			Name:  name,
			Count: n,
			Rate:  round1(float64(n) / float64(total) * 100),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rate > out[j].Rate })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

var laughWordRe = regexp.MustCompile(`\b(lol|lmao|haha|hehe|rofl)\b`)

// LaughStats ranks senders by laugh markers: textual laugh tokens plus laugh
// emoji occurrences. Top five, zero counts dropped.
func LaughStats(msgs []chatlog.Message, lex lexicon.Set) []NameCount {
	laughEmojis := lex.LaughEmojis()

	c := newCounter()
	for _, m := range chatlog.TextMessages(msgs) {
		lower := strings.ToLower(m.Text)
		n := len(laughWordRe.FindAllString(lower, -1))
		for _, r := range lower {
			for _, le := range laughEmojis {
				if r == le {
					n++
					break
				}
			}
		}
		if n > 0 {
			c.add(m.Sender, n)
		}
	}
	return c.top(5)
}

// SignatureWord is a word unusually characteristic of one sender.
type SignatureWord struct {
	Word        string  `json:"word"`
	Score       float64 `json:"score"`
	Count       int     `json:"count"`
	Exclusivity float64 `json:"exclusivity"`
}

// SignatureWords finds each sender's most characteristic vocabulary using a
// TF-IDF score boosted by exclusivity (the sender's share of the word's
// global count). Senders with fewer than twenty counted words are skipped,
// as are words a sender used fewer than three times.
func SignatureWords(msgs []chatlog.Message, lex lexicon.Set, topN int) map[string][]SignatureWord {
	text := chatlog.TextMessages(msgs)
	if len(text) == 0 {
		return map[string][]SignatureWord{}
	}
	names := nameParts(text)

	perSender := make(map[string]*counter)
	senderOrder := newCounter()
	global := newCounter()

	for _, m := range text {
		senderOrder.add(m.Sender, 1)
		pc, ok := perSender[m.Sender]
		if !ok {
			pc = newCounter()
			perSender[m.Sender] = pc
		}
		for _, w := range extractWords(m.Text, lex, names) {
			pc.add(w, 1)
			global.add(w, 1)
		}
	}

	numPeople := len(perSender)
	out := make(map[string][]SignatureWord, numPeople)

	for _, sender := range senderOrder.keysInOrder() {
		words := perSender[sender]
		total := 0
		for _, w := range words.keysInOrder() {
			total += words.get(w)
		}
		if total < 20 {
			continue
		}

		var scored []SignatureWord
		for _, w := range words.keysInOrder() {
			count := words.get(w)
			if count < 3 {
				continue
			}

			tf := float64(count) / float64(total)
			peopleUsing := 0
			for _, pc := range perSender {
				if pc.get(w) > 0 {
					peopleUsing++
				}
			}
			idf := 0.0
			if peopleUsing > 0 {
				idf = math.Log(float64(numPeople) / float64(peopleUsing))
			}
			personalRate := 0.0
			if g := global.get(w); g > 0 {
				personalRate = float64(count) / float64(g)
			}

			scored = append(scored, SignatureWord{
				Word:        w,
				Score:       round4(tf * idf * (1 + personalRate)),
				Count:       count,
				Exclusivity: round1(personalRate * 100),
			})
		}

		sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
		if len(scored) > topN {
			scored = scored[:topN]
		}
		out[sender] = scored
	}
	return out
}

// Catchphrase is a short phrase a sender owns.
type Catchphrase struct {
	Phrase      string  `json:"phrase"`
	Count       int     `json:"count"`
	Exclusivity float64 `json:"exclusivity"`
}

// Exports wrap @-mentions in directional isolate marks.
var mentionIsolateRe = regexp.MustCompile(`@\x{2068}[^\x{2069}]+\x{2069}`)

var phraseWordRe = regexp.MustCompile(`\b[a-zA-Z]+\b`)

// Catchphrases finds 2-4 word phrases a sender repeats and mostly owns: used
// at least three times with over 60% of the phrase's global occurrences. Up
// to five phrases per sender.
func Catchphrases(msgs []chatlog.Message, lex lexicon.Set) map[string][]Catchphrase {
	text := chatlog.TextMessages(msgs)
	if len(text) == 0 {
		return map[string][]Catchphrase{}
	}

	// full lowered names plus their tokens, used to drop phrases that are
	// mostly just someone's name
	names := make(map[string]struct{})
	for _, m := range text {
		lower := strings.ToLower(m.Sender)
		names[lower] = struct{}{}
		for _, p := range strings.Fields(lower) {
			if len(p) > 2 {
				names[p] = struct{}{}
			}
		}
	}

	perSender := make(map[string]*counter)
	senderOrder := newCounter()
	global := newCounter()

	for _, m := range text {
		senderOrder.add(m.Sender, 1)
		pc, ok := perSender[m.Sender]
		if !ok {
			pc = newCounter()
			perSender[m.Sender] = pc
		}
		for _, p := range extractPhrases(m.Text, lex, names) {
			pc.add(p, 1)
			global.add(p, 1)
		}
	}

	out := make(map[string][]Catchphrase)
	for _, sender := range senderOrder.keysInOrder() {
		var owned []Catchphrase
		for _, e := range perSender[sender].top(50) {
			if e.Count < 3 {
				continue
			}
			total := global.get(e.Name)
			share := float64(e.Count) / float64(total)
			if share > 0.6 {
				owned = append(owned, Catchphrase{
					Phrase:      e.Name,
					Count:       e.Count,
					Exclusivity: round1(share * 100),
				})
			}
		}
		if len(owned) > 5 {
			owned = owned[:5]
		}
		if len(owned) > 0 {
			out[sender] = owned
		}
	}
	return out
}

func extractPhrases(body string, lex lexicon.Set, names map[string]struct{}) []string {
	clean := strings.ToLower(mentionIsolateRe.ReplaceAllString(body, ""))
	words := phraseWordRe.FindAllString(clean, -1)

	var phrases []string
	for n := 2; n <= 4; n++ {
		for i := 0; i+n <= len(words); i++ {
			phrase := strings.Join(words[i:i+n], " ")
			if len(phrase) <= 5 || lex.IsGenericPhrase(phrase) {
				continue
			}
			parts := words[i : i+n]
			nameHits := 0
			distinct := make(map[string]struct{}, n)
			for _, p := range parts {
				if _, dup := distinct[p]; dup {
					continue
				}
				distinct[p] = struct{}{}
				if _, isName := names[p]; isName {
					nameHits++
				}
			}
			if nameHits >= len(distinct)-1 {
				continue
			}
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}

// Topics extracts recurring discussion topics: frequent non-stop words with a
// half-point bonus per capitalized (proper-noun-looking) occurrence. Words
// need at least three occurrences; the topN highest-scoring are returned.
func Topics(msgs []chatlog.Message, lex lexicon.Set, topN int) []string {
	text := chatlog.TextMessages(msgs)
	names := nameParts(text)

	counts := newCounter()
	bonus := make(map[string]float64)

	for _, m := range text {
		clean := cleanBody(m.Text)
		capitalized := make(map[string]struct{})
		for _, w := range properNounRe.FindAllString(clean, -1) {
			capitalized[w] = struct{}{}
		}
		for _, w := range wordRe.FindAllString(strings.ToLower(clean), -1) {
			if lex.IsTopicStopWord(w) {
				continue
			}
			if _, isName := names[w]; isName {
				continue
			}
			counts.add(w, 1)
			if _, ok := capitalized[capitalize(w)]; ok {
				bonus[w] += 0.5
			}
		}
	}

	type scoredWord struct {
		word  string
		score float64
	}
	var scored []scoredWord
	for _, w := range counts.keysInOrder() {
		if n := counts.get(w); n >= 3 {
			scored = append(scored, scoredWord{word: w, score: float64(n) + bonus[w]})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > topN {
		scored = scored[:topN]
	}

	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.word
	}
	return out
}

var properNounRe = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
