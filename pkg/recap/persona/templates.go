package persona

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/cognicore/recap/pkg/recap/stats"
)

// roastTemplates holds three interchangeable lines per tag. TemplateRoast
// picks one per tag with the caller's rng, so seeded runs are reproducible.
var roastTemplates = map[string][]string{
	"chatterbox": {
		"treats this group like their personal diary",
		"has no one else to talk to apparently",
		"would text a wall if it had a messaging app",
	},
	"lurker": {
		"watches from the shadows like a chat ghost",
		"contributes less than a read receipt",
		"is basically a security camera for this chat",
	},
	"night_owl": {
		"sleeps when the sun is up like a caffeinated vampire",
		"probably types under their blanket at 3am",
		"thinks 2am is a reasonable time for 'quick question'",
	},
	"early_bird": {
		"sends good morning texts before the birds wake up",
		"is aggressively cheerful at ungodly hours",
		"thinks dawn is prime texting time",
	},
	"conversation_starter": {
		"can't stand silence, even digital silence",
		"starts conversations like they're getting paid per chat",
		"is allergic to an inactive group",
	},
	"conversation_killer": {
		"has the superpower of ending any conversation",
		"makes crickets jealous with their chat-killing ability",
		"should come with a 'conversation may end' warning",
	},
	"speed_demon": {
		"replies faster than autocorrect can mess up",
		"has the chat surgically attached to their fingers",
		"makes instant replies look slow",
	},
	"ghost": {
		"takes longer to reply than a government office",
		"treats 'seen' as a final response",
		"is online but spiritually elsewhere",
	},
	"double_texter": {
		"sends messages like they're being charged per conversation",
		"thinks one message is never enough",
		"has separation anxiety from the send button",
	},
	"essay_writer": {
		"writes texts that need a table of contents",
		"treats the chat like a dissertation platform",
		"makes emails look concise",
	},
	"one_worder": {
		"communicates exclusively in grunts and 'ok'",
		"makes fortune cookies look verbose",
		"treats words like they cost money",
	},
	"caps_lock": {
		"DOESN'T KNOW WHAT INSIDE VOICE MEANS",
		"types like they're perpetually excited or angry",
		"makes every message feel like an emergency",
	},
	"question_asker": {
		"treats this chat like a search engine",
		"asks more questions than a 5-year-old",
		"should be sponsored by Question Mark Inc.",
	},
	"link_dropper": {
		"thinks every conversation needs a source citation",
		"is basically a human RSS feed",
		"has never had an original thought, just links",
	},
	"monologuer": {
		"doesn't need replies, just an audience",
		"holds conversations with themselves professionally",
		"treats group chat as a podcast platform",
	},
	"lol_addict": {
		"laughs at everything including grocery lists",
		"uses 😂 as punctuation",
		"finds literally everything hilarious apparently",
	},
	"media_king": {
		"has a meme for every occasion",
		"treats chat storage as a personal challenge",
		"communicates primarily through images",
	},
	"emoji_spammer": {
		"uses more emojis than actual words",
		"thinks text without emojis is just sad",
		"has evolved beyond human language",
	},
}

// TemplateRoast assembles a local roast from up to three of the person's
// tags plus their top signature word and catchphrase. Returns "" when there
// is nothing to work with.
func TemplateRoast(person string, tags []Tag, sigWords []stats.SignatureWord, phrases []stats.Catchphrase, rng *rand.Rand) string {
	if len(tags) == 0 {
		return ""
	}

	var parts []string
	limit := len(tags)
	if limit > 3 {
		limit = 3
	}
	for _, t := range tags[:limit] {
		if lines, ok := roastTemplates[t.Name]; ok {
			parts = append(parts, lines[rng.Intn(len(lines))])
		}
	}

	if len(sigWords) > 0 {
		parts = append(parts, fmt.Sprintf("won't stop saying '%s'", sigWords[0].Word))
	}
	if len(phrases) > 0 {
		parts = append(parts, fmt.Sprintf("(trademark phrase: '%s')", phrases[0].Phrase))
	}

	if len(parts) == 0 {
		return ""
	}

	name := person
	if fields := strings.Fields(person); len(fields) > 0 {
		name = fields[0]
	}
	roast := name + " " + parts[0]
	if len(parts) > 1 {
		roast += ", " + parts[1]
	}
	if len(parts) > 2 {
		roast += ". " + capitalizeFirst(parts[2])
	}
	return roast
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
