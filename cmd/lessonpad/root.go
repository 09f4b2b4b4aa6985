package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renato0307/lessonpad/internal/app"
	"github.com/renato0307/lessonpad/internal/config"
	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/logging"
	"github.com/renato0307/lessonpad/internal/ui"
)

// flags holds command line overrides for the config file
type flags struct {
	configPath string
	theme      string
	trigger    string
	filterMode string
	logFile    string
	logLevel   string
	sample     bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "lessonpad",
		Short: "A terminal block editor for lesson plans",
		Long: `lessonpad edits a lesson plan as blocks: headings, lists, tables, quotes
and code. Type / to open the block menu, or hover a block and click + to
insert a new one below it.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runEditor(cfg, f.sample)
		},
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lessonpad/config.yaml)")
	root.PersistentFlags().StringVar(&f.theme, "theme", "", fmt.Sprintf("theme to use (%s)", joinThemes()))
	root.PersistentFlags().StringVar(&f.trigger, "trigger", "", "character that opens the block menu")
	root.PersistentFlags().StringVar(&f.filterMode, "filter-mode", "", "block menu matching: substring or fuzzy")
	root.PersistentFlags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&f.sample, "sample", false, "start with the sample lesson plan")

	root.AddCommand(
		newCommandsCmd(),
		newConfigCmd(f),
		newMarkdownCmd(f),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.LoadFrom(f.configPath)
	if err != nil {
		return nil, err
	}

	set := cmd.Flags().Changed
	if set("theme") {
		cfg.Theme = f.theme
	}
	if set("trigger") {
		cfg.Trigger = f.trigger
	}
	if set("filter-mode") {
		cfg.FilterMode = f.filterMode
	}
	if set("log-file") {
		cfg.Log.File = f.logFile
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newDocument(sample bool) *document.Document {
	if sample {
		return document.SampleLesson()
	}
	return document.New()
}

func runEditor(cfg *config.Config, sample bool) error {
	if err := logging.Init(logging.Config{
		FilePath:   cfg.Log.File,
		Level:      logging.ParseLevel(cfg.Log.Level),
		Format:     logging.ParseFormat(cfg.Log.Format),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Compress:   true,
	}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Shutdown()

	logging.Info("Starting lessonpad", "version", version, "theme", cfg.Theme, "sample", sample)

	model := app.NewModel(app.Options{
		Config:   cfg,
		Document: newDocument(sample),
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func joinThemes() string {
	return strings.Join(ui.AvailableThemes(), ", ")
}
