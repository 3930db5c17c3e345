package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/timeline/internal/config"
	"github.com/existflow/timeline/internal/logger"
	"github.com/existflow/timeline/internal/storage"
	"github.com/existflow/timeline/internal/tracker"
	"github.com/existflow/timeline/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
	dataFile   string

	// appCfg is loaded once in the persistent pre-run and shared by all
	// subcommands.
	appCfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Timeline - terminal activity tracker",
	Long: `Timeline logs time-bounded activities and draws them on a 24-hour
horizontal timeline, one strip per day.

Run 'timeline' without arguments to launch the interactive TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config from file (or defaults if not exists)
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		configChanged := false
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
			configChanged = true
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
			configChanged = true
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
			configChanged = true
		}
		if cmd.Flags().Changed("data-file") {
			// Transient override, not written back to the config file.
			cfg.DataFile = dataFile
		}

		// Save config if changed via CLI flags
		if configChanged {
			if err := cfg.Save(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to save config: %v\n", err)
			}
		}

		if err := logger.Init(logger.Config{
			Level:    cfg.LogLevel,
			FilePath: cfg.LogFile,
			Console:  cfg.LogConsole,
		}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		appCfg = cfg
		logger.Info("timeline started", "command", cmd.Name())
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("stdout is not a terminal; use 'timeline list' for plain output")
		}

		trk, st, err := openTracker()
		if err != nil {
			return err
		}
		defer func() {
			_ = st.Close()
			logger.Info("storage closed")
		}()

		logger.Info("launching TUI")
		m := tui.NewModel(trk, appCfg)
		p := tea.NewProgram(m, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", "error", err)
			return fmt.Errorf("failed to run TUI: %w", err)
		}

		logger.Info("TUI exited normally")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("timeline exiting", "command", cmd.Name())
		_ = logger.Close()
	},
}

// openTracker opens the configured storage and loads the tracker from it.
func openTracker() (*tracker.Tracker, storage.Store, error) {
	path := appCfg.DataFile
	if path == "" {
		var err error
		if path, err = storage.DefaultPath(); err != nil {
			return nil, nil, err
		}
	}

	st, err := storage.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	trk := tracker.New(st)
	if err := trk.Load(); err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return trk, st, nil
}

// confirm prompts for a y/N answer on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y"
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", "", "Path to the sqlite data file")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lpCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
}
