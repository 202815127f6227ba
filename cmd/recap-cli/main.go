package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cognicore/recap/internal/export"
	"github.com/cognicore/recap/internal/llm"
	"github.com/cognicore/recap/pkg/recap"
	"github.com/cognicore/recap/pkg/recap/chatlog"
	"github.com/cognicore/recap/pkg/recap/config"
	"github.com/cognicore/recap/pkg/recap/store"
	"github.com/cognicore/recap/pkg/recap/store/sqlite"
)

func main() {
	var (
		input        = flag.String("input", "", "Path to exported chat transcript (required)")
		year         = flag.Int("year", time.Now().Year(), "Year to analyze")
		members      = flag.String("members", "", "Optional: comma-separated members to include")
		participants = flag.Bool("participants", false, "Only list participants and group name, then exit")
		archivePath  = flag.String("archive", "", "Optional: SQLite archive for compiled reports")
		stopWords    = flag.String("stop-words", "", "Optional: YAML stop-word overrides")
		mediaCfg     = flag.String("media-markers", "", "Optional: YAML media-marker overrides")
		systemCfg    = flag.String("system-phrases", "", "Optional: YAML system-phrase overrides")
		sendersCfg   = flag.String("ignored-senders", "", "Optional: YAML ignored-sender overrides")
		llmBase      = flag.String("llm-base", "", "Optional: OpenAI-compatible endpoint for AI roasts")
		llmModel     = flag.String("llm-model", "", "Optional: model name for AI roasts")
		llmAPIKey    = flag.String("llm-api-key", os.Getenv("OPENAI_API_KEY"), "Optional: API key for the roast endpoint")
		seed         = flag.Int64("seed", 0, "Optional: sampling seed for reproducible runs")
		quiet        = flag.Bool("quiet", false, "Suppress progress output")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	content, err := readTranscript(*input)
	if err != nil {
		log.Fatalf("read transcript: %v", err)
	}

	if ok, reason := chatlog.LooksLikeExport(content); !ok {
		log.Fatalf("invalid transcript: %s", reason)
	}

	loader := config.Loader{
		StopWordsPath:      *stopWords,
		MediaMarkersPath:   *mediaCfg,
		SystemPhrasesPath:  *systemCfg,
		IgnoredSendersPath: *sendersCfg,
	}
	lex, err := loader.Load()
	if err != nil {
		log.Fatalf("load overrides: %v", err)
	}

	opts := recap.Options{
		Lexicon:    &lex,
		SampleSeed: *seed,
	}

	if *llmBase != "" && *llmModel != "" {
		opts.Roaster = &llm.Client{
			BaseURL:    *llmBase,
			APIKey:     *llmAPIKey,
			Model:      *llmModel,
			HTTPClient: &http.Client{Timeout: 90 * time.Second},
		}
	}

	ctx := context.Background()

	var archive store.Store
	if *archivePath != "" {
		archive, err = sqlite.Open(ctx, *archivePath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer archive.Close()
		opts.Store = archive
	}

	if !*quiet {
		opts.Progress = func(percent int, step string) {
			log.Printf("%3d%% %s", percent, step)
		}
	}

	engine := recap.New(opts)

	if *participants {
		names, groupName := engine.Participants(content)
		out := struct {
			GroupName    string   `json:"group_name,omitempty"`
			Participants []string `json:"participants"`
		}{GroupName: groupName, Participants: names}
		printJSON(out)
		return
	}

	var selected []string
	if *members != "" {
		for _, name := range strings.Split(*members, ",") {
			if name = strings.TrimSpace(name); name != "" {
				selected = append(selected, name)
			}
		}
	}

	report, err := engine.Analyze(ctx, content, *year, selected)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	printJSON(report)
}

// readTranscript loads the input file, converting HTML-saved transcripts to
// plain text first.
func readTranscript(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return export.HTMLToText(f)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode output: %v", err)
	}
	fmt.Println(string(data))
}
