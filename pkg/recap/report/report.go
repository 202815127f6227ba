// Package report compiles computed statistics into the slide deck handed to
// clients, plus the condensed feature summary sent to the roast
// collaborator.
package report

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/recap/pkg/recap/chatlog"
	"github.com/cognicore/recap/pkg/recap/persona"
	"github.com/cognicore/recap/pkg/recap/stats"
)

// Input carries everything the compiler needs: the filtered user messages
// plus every metric already computed by the engine.
type Input struct {
	Year        int
	TotalInFile int
	InYear      int
	GroupName   string

	UserMessages []chatlog.Message

	Basic          stats.Basic
	TopChatters    []stats.NameCount
	Hourly         map[int]int
	Daily          []stats.NameCount
	Streaks        stats.Streaks
	Emojis         []stats.EmojiCount
	EmojiBySender  []stats.SenderEmojis
	Media          stats.MediaSummary
	Words          []stats.NameCount
	Starters       []stats.NameCount
	NightOwls      []stats.NameCount
	EarlyBirds     []stats.NameCount
	LongestAvg     []stats.NameAvg
	BusiestDates   []stats.DateCount
	ResponsePairs  []stats.PairCount
	DoubleTexters  []stats.NameCount
	Killers        []stats.KillerStat
	ResponseTimes  []stats.ResponseTime
	CapsUsers      []stats.CapsStat
	QuestionAskers []stats.QuestionStat
	LinkSharers    []stats.NameCount
	OneWorders     []stats.OneWordStat
	Monologuers    []stats.Monologue
	Laughs         []stats.NameCount
	SignatureWords map[string][]stats.SignatureWord
	Catchphrases   map[string][]stats.Catchphrase
	Tags           map[string][]persona.Tag
	Vibe           stats.Vibe
	Topics         []string

	Roasts RoastResult
}

// RoastResult is the roast collaborator's payload (or the local fallback).
type RoastResult struct {
	BrainrotScore    int               `json:"brainrot_score"`
	GroupRoast       string            `json:"group_roast"`
	IndividualRoasts map[string]string `json:"individual_roasts"`
}

// Metadata describes the analyzed transcript.
type Metadata struct {
	Year           int      `json:"year"`
	TotalMessages  int      `json:"total_messages_in_file"`
	MessagesInYear int      `json:"messages_in_year"`
	GroupName      string   `json:"group_name"`
	Participants   []string `json:"participants"`
}

// Slide is one deck entry; Data holds a slide-type-specific struct.
type Slide struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Data  any    `json:"data"`
}

// Report is the complete compiled deck.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Metadata    Metadata  `json:"metadata"`
	BasicStats  struct {
		TotalMessages     int `json:"total_messages"`
		TotalParticipants int `json:"total_participants"`
	} `json:"basic_stats"`
	Slides []Slide `json:"slides"`
}

// Slide data payloads.
type (
	OverviewData struct {
		Year              int           `json:"year"`
		TotalParticipants int           `json:"total_participants"`
		Streak            stats.Streaks `json:"streak"`
		TotalMessages     int           `json:"total_messages"`
		TotalImages       int           `json:"total_images"`
		TotalVideos       int           `json:"total_videos"`
		TotalGIFs         int           `json:"total_gifs"`
		TotalStickers     int           `json:"total_stickers"`
		TotalAudio        int           `json:"total_audio"`
		TotalDocuments    int           `json:"total_documents"`
	}

	RankingData struct {
		Rankings []stats.NameCount `json:"rankings"`
	}

	EmojiData struct {
		GroupTop  []stats.EmojiCount            `json:"group_top_emojis"`
		PerPerson map[string][]stats.EmojiCount `json:"per_person"`
	}

	ActivityData struct {
		BusiestDay        *stats.DateCount  `json:"busiest_day"`
		PeakHour          *int              `json:"peak_hour"`
		PeakHourFormatted string            `json:"peak_hour_formatted,omitempty"`
		Hourly            map[int]int       `json:"hourly_distribution"`
		Daily             []stats.NameCount `json:"daily_distribution"`
	}

	WordsData struct {
		TopWords []stats.NameCount `json:"top_words"`
		Topics   []string          `json:"topics"`
	}

	SignatureWordsData struct {
		PerPerson map[string][]string `json:"per_person"`
	}

	DynamicsData struct {
		Starters []string `json:"starters"`
		Killers  []string `json:"killers"`
	}

	MemberDynamics struct {
		Name              string         `json:"name"`
		Messages          int            `json:"messages"`
		DailyDistribution map[string]int `json:"daily_distribution"`
	}

	ChatGraphData struct {
		Members []MemberDynamics `json:"members"`
	}

	FunStatsData struct {
		DoubleTexter  *stats.NameCount `json:"double_texter"`
		CapsLockUser  *stats.NameCount `json:"caps_lock_user"`
		QuestionAsker *stats.NameCount `json:"question_asker"`
		LinkSharer    *stats.NameCount `json:"link_sharer"`
	}
)

// Builder compiles reports with ULID deck IDs. The entropy source is wrapped
// in a LockedMonotonicReader so one Builder can serve concurrent Compile
// calls.
type Builder struct {
	entropy *ulid.LockedMonotonicReader
}

// NewBuilder creates a report builder.
func NewBuilder() *Builder {
	return &Builder{entropy: &ulid.LockedMonotonicReader{MonotonicReader: ulid.Monotonic(rand.Reader, 0)}}
}

// Compile assembles the ten-slide deck and metadata block.
func (b *Builder) Compile(in Input) Report {
	r := Report{
		ID:          ulid.MustNew(ulid.Now(), b.entropy).String(),
		GeneratedAt: time.Now().UTC(),
	}
	r.BasicStats.TotalMessages = in.Basic.TotalMessages
	r.BasicStats.TotalParticipants = in.Basic.TotalParticipants

	participants := make([]string, len(in.TopChatters))
	for i, e := range in.TopChatters {
		participants[i] = e.Name
	}

	groupName := in.GroupName
	if in.Basic.TotalParticipants == 2 && len(participants) >= 2 {
		groupName = fmt.Sprintf("chat between %s and %s", participants[0], participants[1])
	}

	r.Metadata = Metadata{
		Year:           in.Year,
		TotalMessages:  in.TotalInFile,
		MessagesInYear: in.InYear,
		GroupName:      groupName,
		Participants:   participants,
	}

	r.Slides = []Slide{
		{ID: 1, Title: "your year in messages", Type: "overview", Data: b.overview(in)},
		{ID: 2, Title: "top chatters", Type: "ranking", Data: RankingData{Rankings: in.TopChatters}},
		{ID: 3, Title: "emoji game", Type: "emojis", Data: b.emojis(in)},
		{ID: 4, Title: "peak activity", Type: "activity", Data: b.activity(in)},
		{ID: 5, Title: "word cloud", Type: "words", Data: b.words(in)},
		{ID: 6, Title: "signature words", Type: "signature_words", Data: b.signatureWords(in)},
		{ID: 7, Title: "conversation dynamics", Type: "convo_dynamics", Data: b.dynamics(in)},
		{ID: 8, Title: "chat patterns", Type: "chat_graph", Data: b.chatGraph(in)},
		{ID: 9, Title: "fun stats", Type: "fun_stats", Data: b.funStats(in)},
		{ID: 10, Title: "ai roasts", Type: "ai_roasts", Data: in.Roasts},
	}
	return r
}

func (b *Builder) overview(in Input) OverviewData {
	byType := make(map[string]int, len(in.Media.ByType))
	for _, e := range in.Media.ByType {
		byType[e.Name] = e.Count
	}
	return OverviewData{
		Year:              in.Year,
		TotalParticipants: in.Basic.TotalParticipants,
		Streak:            in.Streaks,
		TotalMessages:     in.Basic.TotalMessages,
		TotalImages:       byType["image"],
		TotalVideos:       byType["video"],
		TotalGIFs:         byType["gif"],
		TotalStickers:     byType["sticker"],
		TotalAudio:        byType["audio"],
		TotalDocuments:    byType["document"],
	}
}

func (b *Builder) emojis(in Input) EmojiData {
	top := in.Emojis
	if len(top) > 10 {
		top = top[:10]
	}
	perPerson := make(map[string][]stats.EmojiCount, len(in.EmojiBySender))
	for _, se := range in.EmojiBySender {
		perPerson[se.Name] = se.Top
	}
	return EmojiData{GroupTop: top, PerPerson: perPerson}
}

func (b *Builder) activity(in Input) ActivityData {
	data := ActivityData{Hourly: in.Hourly, Daily: in.Daily}
	if len(in.BusiestDates) > 0 {
		day := in.BusiestDates[0]
		data.BusiestDay = &day
	}
	if len(in.Hourly) > 0 {
		peak := peakHour(in.Hourly)
		data.PeakHour = &peak
		data.PeakHourFormatted = fmt.Sprintf("%d:00", peak)
	}
	return data
}

func peakHour(hourly map[int]int) int {
	peak, best := 0, -1
	for h := 0; h < 24; h++ {
		if n, ok := hourly[h]; ok && n > best {
			peak, best = h, n
		}
	}
	return peak
}

func (b *Builder) words(in Input) WordsData {
	words := in.Words
	if len(words) > 100 {
		words = words[:100]
	}
	topics := in.Topics
	if len(topics) > 4 {
		topics = topics[:4]
	}
	return WordsData{TopWords: words, Topics: topics}
}

func (b *Builder) signatureWords(in Input) SignatureWordsData {
	perPerson := make(map[string][]string, len(in.SignatureWords))
	for person, words := range in.SignatureWords {
		n := len(words)
		if n > 4 {
			n = 4
		}
		top := make([]string, n)
		for i := 0; i < n; i++ {
			top[i] = words[i].Word
		}
		perPerson[person] = top
	}
	return SignatureWordsData{PerPerson: perPerson}
}

func (b *Builder) dynamics(in Input) DynamicsData {
	// a 2-person chat only has one meaningful starter and killer
	topN := 2
	if in.Basic.TotalParticipants == 2 {
		topN = 1
	}

	var starters []string
	for i := 0; i < len(in.Starters) && i < topN; i++ {
		starters = append(starters, in.Starters[i].Name)
	}
	var killers []string
	for i := 0; i < len(in.Killers) && i < topN; i++ {
		killers = append(killers, in.Killers[i].Name)
	}
	return DynamicsData{Starters: starters, Killers: killers}
}

func (b *Builder) chatGraph(in Input) ChatGraphData {
	top := in.TopChatters
	if len(top) > 7 {
		top = top[:7]
	}

	members := make([]MemberDynamics, 0, len(top))
	for _, e := range top {
		daily := make(map[string]int)
		for _, m := range in.UserMessages {
			if m.Sender == e.Name {
				daily[m.Weekday()]++
			}
		}
		members = append(members, MemberDynamics{
			Name:              e.Name,
			Messages:          e.Count,
			DailyDistribution: daily,
		})
	}
	return ChatGraphData{Members: members}
}

func (b *Builder) funStats(in Input) FunStatsData {
	var data FunStatsData
	if len(in.DoubleTexters) > 0 {
		data.DoubleTexter = &stats.NameCount{Name: in.DoubleTexters[0].Name, Count: in.DoubleTexters[0].Count}
	}
	if len(in.CapsUsers) > 0 {
		data.CapsLockUser = &stats.NameCount{Name: in.CapsUsers[0].Name, Count: in.CapsUsers[0].CapsMessages}
	}
	if len(in.QuestionAskers) > 0 {
		data.QuestionAsker = &stats.NameCount{Name: in.QuestionAskers[0].Name, Count: in.QuestionAskers[0].Questions}
	}
	if len(in.LinkSharers) > 0 {
		data.LinkSharer = &stats.NameCount{Name: in.LinkSharers[0].Name, Count: in.LinkSharers[0].Count}
	}
	return data
}
