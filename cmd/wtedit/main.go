package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/wtedit/internal/config"
	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/editor"
	"github.com/ehrlich-b/wtedit/internal/interfaces"
	"github.com/ehrlich-b/wtedit/internal/logger"
	"github.com/ehrlich-b/wtedit/internal/terminal"
)

var (
	logLevel string
	logFile  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "wtedit [file]",
		Short: "A modal terminal text editor",
		Long:  "A vim-like modal text editor for the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}

	rootCmd.Flags().StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stdout")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// A raw-mode terminal application can't share stdout with a
	// logger; route everything to a file unless one was explicitly
	// requested elsewhere.
	if logFile == "" {
		if dir, err := config.GetUserConfigDir(); err == nil {
			logFile = dir + "/wtedit.log"
		}
	}
	if err := logger.Init(logLevel, logFile); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	fs := interfaces.NewOSFileSystem()
	settings := config.NewManager()

	userConfigDir, err := config.GetUserConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get user config dir: %w", err)
	}
	projectDir, err := config.GetProjectDir()
	if err != nil {
		return fmt.Errorf("failed to get project dir: %w", err)
	}
	if err := settings.Load(userConfigDir, projectDir); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	term := terminal.NewTeaBackend()
	rows, cols := term.Size()
	state := editor.NewState(fs, settings, term, rows, cols)

	if len(args) == 1 {
		if err := openFile(state, args[0]); err != nil {
			return err
		}
	}

	logger.Info("starting wtedit")
	if err := state.Run(); err != nil {
		logger.Error("editor exited with error", "err", err)
		return err
	}
	return nil
}

// openFile replaces the initial empty document with the contents of
// path, reading synchronously so the first frame already shows the
// file instead of a blank buffer a LoadJob would otherwise fill in a
// frame later. A nonexistent path is not an error: it names where a
// fresh document should be saved, matching ":e newfile" semantics.
func openFile(s *editor.State, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.ActiveDocument().SetPath(path)
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	doc := document.FromBytes(uuid.NewString(), path, raw)
	doc.SetPath(path)
	doc.MarkSaved()
	s.ReplaceActiveDocument(doc)
	return nil
}
