package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/abhisek/wordiz/internal/app"
	"github.com/abhisek/wordiz/internal/catalog"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Store:   st,
		Catalog: catalog.New(),
		Rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	return app.Run(opts)
}
