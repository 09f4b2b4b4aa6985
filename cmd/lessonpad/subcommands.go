package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/renato0307/lessonpad/internal/commands"
)

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the block menu commands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			registry := commands.NewRegistry(commands.PlaceholderGenerator{})

			t := table.New().Headers("ID", "LABEL", "CATEGORY", "SHORTCUT", "BADGE")
			for _, c := range registry.List() {
				t.Row(c.ID, c.Label, c.Category, c.Shortcut, c.Badge)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		},
	}
}

func newConfigCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newMarkdownCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "markdown",
		Short: "Print the starting document as Markdown",
		Long:  "Print the document the editor would start with (see --sample) as GitHub flavoured Markdown.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), newDocument(f.sample).Markdown())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lessonpad version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", gitCommit)
			fmt.Fprintf(out, "  built:  %s\n", buildDate)
		},
	}
}
