// Package recap is the chat analytics engine facade: it parses an exported
// transcript, computes the yearly statistics, assigns personality tags,
// gathers roasts, and compiles the slide deck.
package recap

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/cognicore/recap/pkg/recap/chatlog"
	"github.com/cognicore/recap/pkg/recap/identity"
	"github.com/cognicore/recap/pkg/recap/internalerr"
	"github.com/cognicore/recap/pkg/recap/lexicon"
	"github.com/cognicore/recap/pkg/recap/persona"
	"github.com/cognicore/recap/pkg/recap/report"
	"github.com/cognicore/recap/pkg/recap/stats"
	"github.com/cognicore/recap/pkg/recap/store"
)

// fallbackGroupRoast is used when no roast collaborator is configured or the
// call fails.
const fallbackGroupRoast = "this group exists and thats already concerning fr fr. collective screen time here could power a city no cap. touch grass challenge impossible edition. the wifi password saw this chat and changed itself"

// fallbackPersonRoast covers members the template generator has no tags for.
const fallbackPersonRoast = "has a phone and uses it unfortunately. contributes to the chaos. is here for some reason"

// Roaster produces AI roasts from a feature summary.
type Roaster interface {
	GenerateRoasts(ctx context.Context, sum report.FeatureSummary) (report.RoastResult, error)
}

// Progress receives pipeline milestones as Analyze runs.
type Progress func(percent int, step string)

// Options configures an Engine.
type Options struct {
	Lexicon    *lexicon.Set // nil means the built-in tables
	Roaster    Roaster      // nil means template roasts only
	Store      store.Store  // nil disables archiving
	SampleSeed int64        // 0 means time-seeded sampling
	Progress   Progress
}

// Engine analyzes chat transcripts. A single Engine is safe for concurrent
// Analyze calls; each invocation works on its own state.
type Engine struct {
	lex      lexicon.Set
	roaster  Roaster
	archive  store.Store
	seed     int64
	progress Progress
	builder  *report.Builder
}

// New creates an Engine.
func New(opts Options) *Engine {
	lex := lexicon.Default()
	if opts.Lexicon != nil {
		lex = *opts.Lexicon
	}
	return &Engine{
		lex:      lex,
		roaster:  opts.Roaster,
		archive:  opts.Store,
		seed:     opts.SampleSeed,
		progress: opts.Progress,
		builder:  report.NewBuilder(),
	}
}

// Close releases the archive, if one was configured.
func (e *Engine) Close() error {
	if e.archive == nil {
		return nil
	}
	return e.archive.Close()
}

func (e *Engine) step(percent int, step string) {
	if e.progress != nil {
		e.progress(percent, step)
	}
}

// Participants quick-parses a transcript and returns the sorted participant
// names plus the detected group name. Cheap enough for a pre-analysis
// member-selection screen.
func (e *Engine) Participants(content string) ([]string, string) {
	msgs := chatlog.Parse(content, e.lex)
	if len(msgs) == 0 {
		return nil, ""
	}
	msgs, _ = identity.MergeSimilar(msgs, e.lex)
	msgs, group := identity.DetectGroup(msgs, e.lex)

	seen := make(map[string]struct{})
	var participants []string
	for _, m := range chatlog.UserMessages(msgs) {
		if _, ok := seen[m.Sender]; ok {
			continue
		}
		seen[m.Sender] = struct{}{}
		participants = append(participants, m.Sender)
	}
	sort.Strings(participants)
	return participants, group.Name
}

// Analyze runs the full pipeline over a transcript: parse, contact merge,
// group detection, year and member filtering, statistics, tags, roasts, and
// deck compilation. The report is archived when a store is configured.
func (e *Engine) Analyze(ctx context.Context, content string, year int, members []string) (report.Report, error) {
	e.step(10, "Parsing messages...")
	msgs := chatlog.Parse(content, e.lex)
	if len(msgs) == 0 {
		return report.Report{}, internalerr.ErrNoMessages
	}

	e.step(15, "Merging contacts...")
	msgs, _ = identity.MergeSimilar(msgs, e.lex)

	e.step(20, "Detecting group info...")
	msgs, group := identity.DetectGroup(msgs, e.lex)

	e.step(25, fmt.Sprintf("Filtering to %d...", year))
	totalInFile := len(msgs)
	inYear := msgs[:0:0]
	for _, m := range msgs {
		if m.Timestamp.Year() == year {
			inYear = append(inYear, m)
		}
	}
	if len(inYear) == 0 {
		return report.Report{}, internalerr.ErrNoMessagesInYear
	}

	if len(members) > 0 {
		e.step(27, "Filtering to selected members...")
		keep := make(map[string]struct{}, len(members))
		for _, name := range members {
			keep[name] = struct{}{}
		}
		filtered := inYear[:0:0]
		for _, m := range inYear {
			if _, ok := keep[m.Sender]; ok || m.IsSystem {
				filtered = append(filtered, m)
			}
		}
		inYear = filtered
	}

	user := chatlog.UserMessages(inYear)
	if len(user) == 0 {
		return report.Report{}, internalerr.ErrNoUserMessages
	}

	e.step(30, "Calculating basic stats...")
	basic, _ := stats.BasicStats(user)
	topChatters := stats.TopChatters(user, len(user))

	e.step(40, "Analyzing activity patterns...")
	hourly := stats.HourlyActivity(user)
	daily := stats.DailyActivity(user)
	streaks := stats.StreakStats(user)

	e.step(50, "Analyzing emojis and media...")
	emojis := stats.EmojiStats(user, len(user))
	emojiBySender := stats.EmojiStatsBySender(user, len(user))
	media := stats.MediaStats(user)
	words := stats.WordStats(user, e.lex, 100)

	e.step(60, "Analyzing conversation patterns...")
	starters := stats.ConversationStarters(user)
	nightOwls := stats.NightOwls(user)
	earlyBirds := stats.EarlyBirds(user)
	longestAvg := stats.LongestMessages(user, 5)
	busiestDates := stats.BusiestDates(user, 5)
	responsePairs := stats.ResponsePairs(user)

	e.step(70, "Analyzing behavioral patterns...")
	doubleTexters := stats.DoubleTexters(user)
	killers := stats.ConversationKillers(user)
	responseTimes := stats.ResponseTimes(user)
	capsUsers := stats.CapsUsers(user)
	questionAskers := stats.QuestionAskers(user)
	linkSharers := stats.LinkSharers(user)
	oneWorders := stats.OneWorders(user)
	monologuers := stats.Monologuers(user)
	laughs := stats.LaughStats(user, e.lex)

	e.step(80, "Extracting signature words...")
	signatureWords := stats.SignatureWords(user, e.lex, 10)
	catchphrases := stats.Catchphrases(user, e.lex)

	e.step(90, "Building personality profiles...")
	tags := persona.AssignTags(user, persona.Bundle{
		TopChatters:    topChatters,
		Starters:       starters,
		NightOwls:      nightOwls,
		EarlyBirds:     earlyBirds,
		DoubleTexters:  doubleTexters,
		Killers:        killers,
		ResponseTimes:  responseTimes,
		CapsUsers:      capsUsers,
		QuestionAskers: questionAskers,
		LinkSharers:    linkSharers,
		OneWorders:     oneWorders,
		Monologuers:    monologuers,
		LaughStats:     laughs,
		LongestAvg:     longestAvg,
		Media:          media,
		EmojiBySender:  emojiBySender,
	})
	vibe := stats.GroupVibe(user, emojis, hourly, e.lex, false)
	topics := stats.Topics(user, e.lex, 10)

	in := report.Input{
		Year:         year,
		TotalInFile:  totalInFile,
		InYear:       len(inYear),
		GroupName:    group.Name,
		UserMessages: user,

		Basic:          basic,
		TopChatters:    topChatters,
		Hourly:         hourly,
		Daily:          daily,
		Streaks:        streaks,
		Emojis:         emojis,
		EmojiBySender:  emojiBySender,
		Media:          media,
		Words:          words,
		Starters:       starters,
		NightOwls:      nightOwls,
		EarlyBirds:     earlyBirds,
		LongestAvg:     longestAvg,
		BusiestDates:   busiestDates,
		ResponsePairs:  responsePairs,
		DoubleTexters:  doubleTexters,
		Killers:        killers,
		ResponseTimes:  responseTimes,
		CapsUsers:      capsUsers,
		QuestionAskers: questionAskers,
		LinkSharers:    linkSharers,
		OneWorders:     oneWorders,
		Monologuers:    monologuers,
		Laughs:         laughs,
		SignatureWords: signatureWords,
		Catchphrases:   catchphrases,
		Tags:           tags,
		Vibe:           vibe,
		Topics:         topics,
	}

	e.step(92, "Judging your year...")
	rng := e.newRand()
	in.Roasts = e.roast(ctx, in, rng)

	e.step(95, "Compiling results...")
	r := e.builder.Compile(in)

	if e.archive != nil {
		if err := e.archive.SaveReport(ctx, r); err != nil {
			return report.Report{}, fmt.Errorf("archive report: %w", err)
		}
	}

	e.step(100, "Complete")
	return r, nil
}

func (e *Engine) newRand() *rand.Rand {
	seed := e.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// roast asks the configured collaborator, falling back to local template
// roasts on any failure.
func (e *Engine) roast(ctx context.Context, in report.Input, rng *rand.Rand) report.RoastResult {
	sum := report.Summarize(in, rng)
	if e.roaster != nil {
		if result, err := e.roaster.GenerateRoasts(ctx, sum); err == nil {
			return result
		}
	}
	return e.templateRoasts(in, rng)
}

func (e *Engine) templateRoasts(in report.Input, rng *rand.Rand) report.RoastResult {
	result := report.RoastResult{
		BrainrotScore:    50,
		GroupRoast:       fallbackGroupRoast,
		IndividualRoasts: make(map[string]string),
	}

	chatters := in.TopChatters
	if len(chatters) > 10 {
		chatters = chatters[:10]
	}
	for _, c := range chatters {
		roast := persona.TemplateRoast(c.Name, in.Tags[c.Name], in.SignatureWords[c.Name], in.Catchphrases[c.Name], rng)
		if roast == "" {
			roast = fallbackPersonRoast
		}
		result.IndividualRoasts[c.Name] = roast
	}
	return result
}
