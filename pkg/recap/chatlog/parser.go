package chatlog

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cognicore/recap/pkg/recap/lexicon"
)

// Header patterns tried in priority order. Bracketed (iOS) forms come before
// the dash-separated (Android) forms, 12-hour before 24-hour.
var linePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),\s(\d{1,2}:\d{2}(?::\d{2})?\s?[APap][Mm])\]\s([^:]+):\s(.*)$`),
	regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),\s(\d{1,2}:\d{2}(?::\d{2})?)\]\s([^:]+):\s(.*)$`),
	regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),\s(\d{1,2}:\d{2}(?::\d{2})?\s?[APap][Mm])\s[-–]\s([^:]+):\s(.*)$`),
	regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),\s(\d{1,2}:\d{2}(?::\d{2})?)\s[-–]\s([^:]+):\s(.*)$`),
}

// Date layouts tried in order. Day-first is deliberately tried before
// month-first: the exports this engine was built for are day-first, and the
// ambiguity (both sides <= 12) must resolve the same way on every run.
var dateLayouts = []string{"2/1/06", "1/2/06", "2/1/2006", "1/2/2006"}

// Time layouts tried in order, 12-hour before 24-hour.
var timeLayouts = []string{"3:04:05 PM", "3:04 PM", "15:04:05", "15:04"}

// Parse converts raw export text into messages. Lines that match no header
// pattern, or whose timestamp fails to parse, extend the previous message;
// leading orphan lines are dropped. Parse never fails: unusable input yields
// an empty slice.
func Parse(content string, lex lexicon.Set) []Message {
	var msgs []Message
	var cur *Message

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "‎", ""))
		if line == "" {
			continue
		}

		var groups []string
		for _, p := range linePatterns {
			if g := p.FindStringSubmatch(line); g != nil {
				groups = g
				break
			}
		}

		if groups == nil {
			appendContinuation(cur, line)
			continue
		}

		ts, ok := parseStamp(groups[1], groups[2])
		if !ok {
			appendContinuation(cur, line)
			continue
		}

		if cur != nil {
			msgs = append(msgs, *cur)
		}

		sender := strings.TrimSpace(groups[3])
		body := groups[4]
		isSystem := lex.IsSystemText(body) || lex.IsIgnoredSender(sender)
		media := lex.MediaKindFor(body)

		m := Message{
			Timestamp: ts,
			Sender:    sender,
			Text:      body,
			IsSystem:  isSystem,
			Media:     media,
		}
		if !isSystem && media == "" {
			m.WordCount = len(strings.Fields(body))
			m.CharCount = utf8.RuneCountInString(body)
		}
		cur = &m
	}

	if cur != nil {
		msgs = append(msgs, *cur)
	}
	return msgs
}

// appendContinuation folds a continuation line into the open message. Counts
// are added even for system and media messages, matching how multi-line
// bodies have always been tallied.
func appendContinuation(cur *Message, line string) {
	if cur == nil {
		return
	}
	cur.Text += "\n" + line
	cur.WordCount += len(strings.Fields(line))
	cur.CharCount += utf8.RuneCountInString(line)
}

// parseStamp parses the date and time captures against the ordered layout
// lists. Either side failing every layout rejects the header line.
func parseStamp(dateStr, timeStr string) (time.Time, bool) {
	var day time.Time
	ok := false
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, dateStr); err == nil {
			day, ok = d, true
			break
		}
	}
	if !ok {
		return time.Time{}, false
	}

	clock := normalizeClock(timeStr)
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		return time.Date(day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
	}
	return time.Time{}, false
}

// normalizeClock uppercases the meridiem and ensures it is space-separated,
// so "9:15pm" and "9:15 PM" parse against the same layout.
func normalizeClock(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if n := len(s); n > 2 {
		suffix := s[n-2:]
		if (suffix == "AM" || suffix == "PM") && s[n-3] != ' ' {
			s = s[:n-2] + " " + suffix
		}
	}
	return s
}

// Header shapes accepted by LooksLikeExport, with optional meridiem so both
// 12-hour and 24-hour exports validate.
var headerProbes = []*regexp.Regexp{
	regexp.MustCompile(`\[\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}(?::\d{2})?\s?(?:[APap][Mm])?\]`),
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}(?::\d{2})?\s?(?:[APap][Mm])?\s?[-–]`),
}

// LooksLikeExport cheaply checks whether content resembles a chat export by
// probing the first few kilobytes for message headers. It returns false with
// a human-readable reason when the check fails.
func LooksLikeExport(content string) (bool, string) {
	if strings.TrimSpace(content) == "" {
		return false, "file is empty"
	}

	probe := content
	if runes := []rune(probe); len(runes) > 5000 {
		probe = string(runes[:5000])
	}

	total := 0
	for _, p := range headerProbes {
		total += len(p.FindAllStringIndex(probe, -1))
	}
	if total < 3 {
		return false, "file doesn't look like a chat export"
	}
	return true, ""
}
