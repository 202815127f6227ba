package chatlog

import "github.com/forPelevin/gomoji"

// ExtractEmojis returns every emoji occurrence in text, in order, including
// duplicates.
func ExtractEmojis(text string) []string {
	found := gomoji.CollectAll(text)
	if len(found) == 0 {
		return nil
	}
	out := make([]string, len(found))
	for i, e := range found {
		out[i] = e.Character
	}
	return out
}

// ContainsEmoji reports whether text contains at least one emoji.
func ContainsEmoji(text string) bool {
	return gomoji.ContainsEmoji(text)
}
