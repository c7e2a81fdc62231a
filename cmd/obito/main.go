package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ejifeanyi/obito/internal/categories"
	"github.com/ejifeanyi/obito/internal/models"
	"github.com/ejifeanyi/obito/internal/recurring"
	"github.com/ejifeanyi/obito/internal/service"
	"github.com/ejifeanyi/obito/pkg/logging"
)

// groupExport is the input document: a group and its expense history.
type groupExport struct {
	Group    models.Group     `json:"group"`
	Expenses []models.Expense `json:"expenses"`
}

// report is the combined analysis output in JSON mode.
type report struct {
	Summary *service.Summary    `json:"summary"`
	Bills   *service.BillReport `json:"bills"`
}

func main() {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()
	logging.Setup()

	inputPath := flag.String("input", "group.json", "path to a group export (JSON)")
	format := flag.String("format", "text", "output format: text or json")
	minConfidence := flag.Int("min-confidence", 0, "hide detected patterns below this confidence")
	flag.Parse()

	export, err := loadExport(*inputPath)
	if err != nil {
		slog.Error("Failed to load group export", "path", *inputPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Group export loaded",
		"group_id", export.Group.ID,
		"members", len(export.Group.Members),
		"expenses", len(export.Expenses),
	)

	summary := service.NewBalanceService().GroupSummary(export.Group, export.Expenses)
	bills := service.NewRecurringService().DetectBills(export.Group.ID, export.Expenses)

	switch *format {
	case "json":
		if err := writeJSON(os.Stdout, report{Summary: summary, Bills: bills}); err != nil {
			slog.Error("Failed to write report", "error", err)
			os.Exit(1)
		}
	case "text":
		writeText(os.Stdout, export.Group, summary, bills, *minConfidence)
	default:
		slog.Error("Unknown output format", "format", *format)
		os.Exit(1)
	}
}

// loadExport reads and validates a group export. Every expense must pass
// validation before any analysis runs.
func loadExport(path string) (*groupExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	var export groupExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	if len(export.Group.Members) == 0 {
		return nil, fmt.Errorf("%w: group has no members", models.ErrInvalidInput)
	}
	for i := range export.Expenses {
		if err := export.Expenses[i].Validate(); err != nil {
			return nil, fmt.Errorf("expense %d: %w", i, err)
		}
	}
	return &export, nil
}

func writeJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeText(w io.Writer, group models.Group, summary *service.Summary, bills *service.BillReport, minConfidence int) {
	fmt.Fprintf(w, "%s - %d members\n", group.Name, len(group.Members))

	fmt.Fprintln(w, "\nBalances:")
	for _, b := range summary.Balances {
		fmt.Fprintf(w, "  %-14s paid %9.2f   owed %9.2f   net %+9.2f\n",
			group.MemberName(b.MemberID), b.Paid, b.Owed, b.Net)
	}

	fmt.Fprintln(w, "\nSettlements:")
	if len(summary.Settlements) == 0 {
		fmt.Fprintln(w, "  all settled")
	}
	for _, s := range summary.Settlements {
		fmt.Fprintf(w, "  %s pays %s %.2f\n",
			group.MemberName(s.From), group.MemberName(s.To), s.Amount)
	}

	fmt.Fprintln(w, "\nRecurring charges:")
	shown := 0
	for _, p := range bills.Patterns {
		if p.Confidence < minConfidence {
			continue
		}
		label := "suggestion"
		if recurring.Qualifies(p) {
			label = "eligible"
		}
		category := p.Category
		if category == models.DefaultCategory {
			category = categories.Categorize(p.Description)
		}
		fmt.Fprintf(w, "  %s %s - %s, next due %s, confidence %d%% (%s)\n",
			categories.Emoji(category), recurring.BillName(p.Description), p.Frequency,
			p.NextDueDate.Format("2006-01-02"), p.Confidence, label)
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(w, "  none detected")
	}
}
