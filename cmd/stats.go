package cmd

import (
	"fmt"

	"github.com/abhisek/wordiz/internal/catalog"
	"github.com/abhisek/wordiz/internal/progress"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/streak"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		var snapData *store.SnapshotData
		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			snapData = &snap.Data
		}

		tracker := progress.TrackerFromSnapshot(snapData)
		agg := tracker.Aggregate()

		var strk streak.Record
		if snapData != nil {
			strk = streak.FromSnapshot(snapData.Streak)
		}

		eventRepo := st.EventRepo()
		sessions, err := eventRepo.SessionCount(ctx)
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}
		totalCorrect, _, err := eventRepo.CorrectCounts(ctx)
		if err != nil {
			return fmt.Errorf("count answers: %w", err)
		}
		avgWPM, wpmAttempts, err := eventRepo.AverageWPM(ctx)
		if err != nil {
			return fmt.Errorf("average wpm: %w", err)
		}

		total := len(catalog.New().Words(""))

		fmt.Printf("Words studied:   %d of %d\n", agg.TotalWordsStudied, total)
		fmt.Printf("Mastered:        %d\n", agg.MasteredWords)
		fmt.Printf("Familiar:        %d\n", agg.FamiliarWords)
		fmt.Printf("Accuracy:        %d%%\n", agg.AccuracyPct)
		fmt.Printf("Sessions:        %d\n", sessions)
		fmt.Printf("Correct answers: %d\n", totalCorrect)
		if wpmAttempts > 0 {
			fmt.Printf("Typing speed:    %.0f WPM over %d attempts\n", avgWPM, wpmAttempts)
		}
		fmt.Printf("Streak:          %d day(s)\n", strk.Count)
		return nil
	},
}
