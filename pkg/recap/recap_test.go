package recap

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/recap/pkg/recap/internalerr"
	"github.com/cognicore/recap/pkg/recap/report"
	"github.com/cognicore/recap/pkg/recap/store/memstore"
)

const fixture = `[05/03/24, 9:15:00 PM] og squad: Arjun created group "chaos crew"
[05/03/24, 9:16:00 PM] og squad: Arjun changed the group name to "og squad"
[05/03/24, 9:20:00 PM] Arjun: semma scene bro what is happening in class today
[05/03/24, 9:21:00 PM] Bala: enna da sollu
[05/03/24, 9:22:00 PM] Arjun: nothing much just the usual chaos with everyone
[05/03/24, 9:25:00 PM] Chitra: yall are unhinged fr
[06/03/24, 8:10:00 AM] Bala: good morning folks
[06/03/24, 8:12:00 AM] Arjun: morning da
[06/03/24, 10:30:00 PM] Chitra: anyone up for a movie this weekend maybe
[06/03/24, 10:31:00 PM] Arjun: count me in
[06/03/24, 10:32:00 PM] Bala: ok
[10/02/23, 8:00:00 AM] Arjun: this one is from last year`

type stubRoaster struct {
	result report.RoastResult
	err    error
	called bool
}

func (s *stubRoaster) GenerateRoasts(ctx context.Context, sum report.FeatureSummary) (report.RoastResult, error) {
	s.called = true
	return s.result, s.err
}

func TestAnalyzeEndToEnd(t *testing.T) {
	var milestones []int
	e := New(Options{
		SampleSeed: 1,
		Progress:   func(p int, step string) { milestones = append(milestones, p) },
	})

	r, err := e.Analyze(context.Background(), fixture, 2024, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(r.Slides) != 10 {
		t.Fatalf("deck has %d slides, want 10", len(r.Slides))
	}
	if r.Metadata.GroupName != "og squad" {
		t.Errorf("group name = %q, want og squad", r.Metadata.GroupName)
	}
	if r.Metadata.TotalMessages != 12 {
		t.Errorf("total in file = %d, want 12", r.Metadata.TotalMessages)
	}
	// 11 messages in 2024, of which 2 are group-system events
	if r.Metadata.MessagesInYear != 11 {
		t.Errorf("messages in year = %d, want 11", r.Metadata.MessagesInYear)
	}
	if r.BasicStats.TotalMessages != 9 {
		t.Errorf("user messages = %d, want 9", r.BasicStats.TotalMessages)
	}
	if r.BasicStats.TotalParticipants != 3 {
		t.Errorf("participants = %d, want 3", r.BasicStats.TotalParticipants)
	}

	if len(milestones) == 0 || milestones[0] != 10 || milestones[len(milestones)-1] != 100 {
		t.Errorf("milestones = %v", milestones)
	}
	for i := 1; i < len(milestones); i++ {
		if milestones[i] < milestones[i-1] {
			t.Errorf("milestones not monotonic: %v", milestones)
		}
	}

	// no roaster configured: template fallback with the default score
	roasts, ok := r.Slides[9].Data.(report.RoastResult)
	if !ok {
		t.Fatalf("roast slide data is %T", r.Slides[9].Data)
	}
	if roasts.BrainrotScore != 50 {
		t.Errorf("fallback score = %d, want 50", roasts.BrainrotScore)
	}
	if !strings.Contains(roasts.GroupRoast, "the wifi password saw this chat and changed itself") {
		t.Errorf("fallback group roast truncated: %q", roasts.GroupRoast)
	}
	if roasts.IndividualRoasts["Arjun"] == "" {
		t.Error("missing fallback roast for most active member")
	}
}

func TestAnalyzeSentinelErrors(t *testing.T) {
	e := New(Options{})
	ctx := context.Background()

	if _, err := e.Analyze(ctx, "not a chat export at all", 2024, nil); !errors.Is(err, internalerr.ErrNoMessages) {
		t.Errorf("garbage input err = %v, want ErrNoMessages", err)
	}
	if _, err := e.Analyze(ctx, fixture, 2019, nil); !errors.Is(err, internalerr.ErrNoMessagesInYear) {
		t.Errorf("wrong year err = %v, want ErrNoMessagesInYear", err)
	}
	if _, err := e.Analyze(ctx, fixture, 2024, []string{"Nobody"}); !errors.Is(err, internalerr.ErrNoUserMessages) {
		t.Errorf("unknown member err = %v, want ErrNoUserMessages", err)
	}
}

func TestAnalyzeMemberFilter(t *testing.T) {
	e := New(Options{SampleSeed: 1})

	r, err := e.Analyze(context.Background(), fixture, 2024, []string{"Arjun", "Bala"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if r.BasicStats.TotalParticipants != 2 {
		t.Fatalf("participants = %d, want 2", r.BasicStats.TotalParticipants)
	}
	for _, name := range r.Metadata.Participants {
		if name == "Chitra" {
			t.Error("filtered member leaked into the report")
		}
	}
	// two-person display name replaces the group name
	if r.Metadata.GroupName != "chat between Arjun and Bala" {
		t.Errorf("group name = %q", r.Metadata.GroupName)
	}
}

func TestAnalyzeRoaster(t *testing.T) {
	stub := &stubRoaster{result: report.RoastResult{
		BrainrotScore:    88,
		GroupRoast:       "cooked",
		IndividualRoasts: map[string]string{"Arjun": "delulu"},
	}}
	e := New(Options{Roaster: stub, SampleSeed: 1})

	r, err := e.Analyze(context.Background(), fixture, 2024, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !stub.called {
		t.Fatal("roaster was not invoked")
	}
	roasts := r.Slides[9].Data.(report.RoastResult)
	if roasts.BrainrotScore != 88 || roasts.GroupRoast != "cooked" {
		t.Errorf("roasts = %+v", roasts)
	}
}

func TestAnalyzeRoasterFailureFallsBack(t *testing.T) {
	stub := &stubRoaster{err: errors.New("api down")}
	e := New(Options{Roaster: stub, SampleSeed: 1})

	r, err := e.Analyze(context.Background(), fixture, 2024, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	roasts := r.Slides[9].Data.(report.RoastResult)
	if roasts.BrainrotScore != 50 {
		t.Errorf("fallback score = %d, want 50", roasts.BrainrotScore)
	}
}

func TestAnalyzeArchives(t *testing.T) {
	archive := memstore.New()
	e := New(Options{Store: archive, SampleSeed: 1})

	r, err := e.Analyze(context.Background(), fixture, 2024, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	entries, err := archive.ListReports(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != r.ID {
		t.Errorf("entries = %+v, want the compiled report", entries)
	}
}

func TestParticipants(t *testing.T) {
	e := New(Options{})

	participants, groupName := e.Participants(fixture)
	want := []string{"Arjun", "Bala", "Chitra"}
	if len(participants) != len(want) {
		t.Fatalf("participants = %v, want %v", participants, want)
	}
	for i := range want {
		if participants[i] != want[i] {
			t.Errorf("participants = %v, want %v", participants, want)
		}
	}
	if groupName != "og squad" {
		t.Errorf("group name = %q, want og squad", groupName)
	}
}

func TestParticipantsEmpty(t *testing.T) {
	e := New(Options{})
	if participants, name := e.Participants(""); participants != nil || name != "" {
		t.Errorf("got %v, %q for empty content", participants, name)
	}
}
