package main

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"taleweaver/pkg/client"
	"taleweaver/pkg/config"
	"taleweaver/pkg/document"
	"taleweaver/pkg/prefs"
	"taleweaver/pkg/tui"
	"taleweaver/pkg/utils"
)

var opts struct {
	ServerURL string
	ExportDir string
	LogFile   string
}

var rootCmd = &cobra.Command{
	Use:   "reader [book.pdf]",
	Short: "Read, annotate and reimagine stories from the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReader,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.ServerURL, "server", "", "generation API base URL (default from config)")
	rootCmd.Flags().StringVar(&opts.ExportDir, "export-dir", "", "directory for exported PDFs (default from config)")
	rootCmd.Flags().StringVar(&opts.LogFile, "log-file", "", "log file (default from config, then taleweaver.log in the config dir)")
	rootCmd.AddCommand(prefsCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runReader(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath, err := resolveLogFile(cfg)
	if err != nil {
		return err
	}
	f, err := tea.LogToFile(logPath, "reader")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)

	var doc *document.Document
	if len(args) == 1 {
		if !utils.Exists(args[0]) {
			return fmt.Errorf("no such file: %s", args[0])
		}
		doc, err = document.Load(args[0])
		if err != nil {
			return err
		}
		log.Info("loaded document", "path", doc.Path, "paragraphs", len(doc.Paragraphs))
	}

	appOpts := tui.Options{
		Client:    client.New(cmp.Or(opts.ServerURL, cfg.ServerURL)),
		Document:  doc,
		ExportDir: cmp.Or(opts.ExportDir, cfg.ExportDir),
	}

	if path, err := prefs.DefaultPath(); err == nil {
		appOpts.Prefs, appOpts.HasPrefs, err = prefs.Consume(path)
		if err != nil {
			log.Warn("failed to read preferences", "path", path, "error", err)
		}
	}

	p := tea.NewProgram(tui.NewApp(appOpts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func resolveLogFile(cfg *config.Config) (string, error) {
	if path := cmp.Or(opts.LogFile, cfg.LogFile); path != "" {
		return path, nil
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "taleweaver.log"), nil
}
