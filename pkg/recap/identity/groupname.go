package identity

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/cognicore/recap/pkg/recap/chatlog"
	"github.com/cognicore/recap/pkg/recap/lexicon"
)

// GroupNameEvent records one group creation or rename.
type GroupNameEvent struct {
	Name string
	At   time.Time
}

// GroupInfo is the outcome of group detection: the resolved current name,
// the full rename history in chronological order, and every sender that was
// reclassified as a system identity.
type GroupInfo struct {
	Name          string
	History       []GroupNameEvent
	SystemSenders []string
}

// Exports use curly quotes around group names; hand-edited files often have
// straight ones. Both are accepted.
var (
	renameRe = regexp.MustCompile(`changed the group name to ["“](.+?)["”]`)
	createRe = regexp.MustCompile(`created group ["“](.+?)["”]`)
)

// DetectGroup finds senders that are really the group itself. A sender
// qualifies when every one of its messages is a system event; such senders
// contribute the rename history and are force-marked as system. The generic
// identities "you", "group" and "admin" are always folded in. The current
// name is the newest event by timestamp.
func DetectGroup(msgs []chatlog.Message, lex lexicon.Set) ([]chatlog.Message, GroupInfo) {
	var info GroupInfo
	if len(msgs) == 0 {
		return msgs, info
	}

	senders := uniqueSenders(msgs)
	systemSet := make(map[string]struct{})

	for _, sender := range senders {
		allSystem := true
		for _, m := range msgs {
			if m.Sender != sender {
				continue
			}
			if !lex.IsGroupSystemText(m.Text) && !m.IsSystem {
				allSystem = false
				break
			}
		}
		if !allSystem {
			continue
		}

		systemSet[sender] = struct{}{}
		info.SystemSenders = append(info.SystemSenders, sender)

		for _, m := range msgs {
			if m.Sender != sender {
				continue
			}
			if g := renameRe.FindStringSubmatch(m.Text); g != nil {
				info.History = append(info.History, GroupNameEvent{Name: g[1], At: m.Timestamp})
			}
			if g := createRe.FindStringSubmatch(m.Text); g != nil {
				// creation precedes any rename regardless of scan order
				info.History = append([]GroupNameEvent{{Name: g[1], At: m.Timestamp}}, info.History...)
			}
		}
	}

	sort.SliceStable(info.History, func(i, j int) bool {
		return info.History[i].At.Before(info.History[j].At)
	})
	if len(info.History) > 0 {
		info.Name = info.History[len(info.History)-1].Name
	}

	for _, sender := range senders {
		switch strings.ToLower(sender) {
		case "you", "group", "admin":
			if _, ok := systemSet[sender]; !ok {
				systemSet[sender] = struct{}{}
				info.SystemSenders = append(info.SystemSenders, sender)
			}
		}
	}

	if len(systemSet) == 0 {
		return msgs, info
	}

	out := make([]chatlog.Message, len(msgs))
	for i, m := range msgs {
		if _, ok := systemSet[m.Sender]; ok {
			m.IsSystem = true
		}
		out[i] = m
	}
	return out, info
}
