package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cognicore/recap/pkg/recap/store/sqlite"
)

func main() {
	var (
		dbPath = flag.String("db", "", "Path to the SQLite report archive (required)")
		show   = flag.String("show", "", "Dump one report by ID as JSON")
		remove = flag.String("delete", "", "Delete one report by ID")
		limit  = flag.Int("limit", 20, "Maximum entries to list")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer st.Close()

	switch {
	case *show != "":
		report, err := st.GetReport(ctx, *show)
		if err != nil {
			log.Fatalf("get report: %v", err)
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("encode report: %v", err)
		}
		fmt.Println(string(data))

	case *remove != "":
		if err := st.DeleteReport(ctx, *remove); err != nil {
			log.Fatalf("delete report: %v", err)
		}
		log.Printf("deleted %s", *remove)

	default:
		entries, err := st.ListReports(ctx, *limit)
		if err != nil {
			log.Fatalf("list reports: %v", err)
		}
		if len(entries) == 0 {
			log.Print("archive is empty")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tGROUP\tYEAR\tMESSAGES\tGENERATED")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
				e.ID, e.GroupName, e.Year, e.Messages, e.GeneratedAt.Format("2006-01-02 15:04"))
		}
		w.Flush()
	}
}
