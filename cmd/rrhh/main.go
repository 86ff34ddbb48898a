// cmd/rrhh/main.go
//
// Entry point for the hospital HR console. Wiring order matters: .env first
// so RRHH_* variables are visible, then configuration and the data
// directory, then the logger, catalogs and stores, and finally the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/yourusername/rrhh/internal/catalog"
	"github.com/yourusername/rrhh/internal/config"
	"github.com/yourusername/rrhh/internal/docstore"
	"github.com/yourusername/rrhh/internal/journal"
	"github.com/yourusername/rrhh/internal/logging"
	"github.com/yourusername/rrhh/internal/report"
	"github.com/yourusername/rrhh/internal/staffing"
	"github.com/yourusername/rrhh/internal/tui"
)

func main() {
	// A missing .env is fine; it only supplies optional overrides.
	_ = godotenv.Load()

	var dataDir string
	flag.StringVar(&dataDir, "data", "", "data directory (default: $RRHH_DATA_DIR or ./data)")
	flag.Parse()

	cfg, err := config.New(dataDir)
	if err != nil {
		fatal("Error loading configuration", err)
	}
	if err := config.InitDataDir(cfg.DataDir); err != nil {
		fatal("Error initializing data directory", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Settings.Logging.Level,
		Format: cfg.Settings.Logging.Format,
		Dir:    cfg.LogsDir(),
	})
	if err != nil {
		fatal("Error building logger", err)
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.Load(cfg.CatalogPath())
	if err != nil {
		fatal("Error loading catalogs", err)
	}

	personnel, err := docstore.New(cfg.PersonnelPath(), docstore.WithLogger(logger))
	if err != nil {
		fatal("Error opening personnel collection", err)
	}
	contracts, err := docstore.New(cfg.ContractsPath(), docstore.WithLogger(logger))
	if err != nil {
		fatal("Error opening contracts collection", err)
	}
	// The departments collection is bootstrapped so the file exists alongside
	// the others; the console reads departments from the catalog.
	if _, err := docstore.New(cfg.DepartmentsPath(), docstore.WithLogger(logger)); err != nil {
		fatal("Error opening departments collection", err)
	}

	jrnl, err := journal.New(cfg.JournalPath())
	if err != nil {
		fatal("Error opening operation journal", err)
	}

	controller := staffing.New(personnel, contracts, cat,
		staffing.WithJournal(jrnl),
		staffing.WithLogger(logger),
	)
	reports := report.NewGenerator(cfg.ReportsDir())

	p := tea.NewProgram(
		tui.NewApp(controller, reports, cat, jrnl, logger),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fatal("Error running console", err)
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
