package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recent solver calls",
	Long:  `Display the most recent entries of the solve journal, newest first.`,
	RunE:  runJournal,
}

func init() {
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "Number of entries to show")
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer db.Close()

	journal := storage.NewJournal(db)
	entries, err := journal.List(journalLimit)
	if err != nil {
		return err
	}
	total, err := journal.Count()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Journal: %s (%d entries)\n\n", db.Path(), total)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No solver calls recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tDURATION\tRESULT\tDETAIL")
	for _, e := range entries {
		result, detail := "ok", ""
		if e.Succeeded() {
			detail = *e.Solution
		} else {
			result = *e.ErrorKind
			detail = *e.ErrorMessage
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.CreatedAt.Local().Format(time.DateTime),
			e.Duration.Round(time.Millisecond),
			result,
			detail,
		)
	}
	return w.Flush()
}
