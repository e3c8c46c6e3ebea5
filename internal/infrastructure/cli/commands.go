package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/ask-go/internal/app"
)

func newResetCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the persisted conversation session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Transcripts.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
			return nil
		},
	}
}

func newHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past command turns",
	}

	var limit int
	var search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent turns",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistory(cmd, container, limit, search)
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "Max entries to show")
	listCmd.Flags().StringVar(&search, "query", "", "Filter by prompt or command substring")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded turns",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.History == nil {
				return fmt.Errorf("history is disabled in config")
			}
			if err := container.History.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}

	historyCmd.AddCommand(listCmd, clearCmd)
	return historyCmd
}

func listHistory(cmd *cobra.Command, container *app.Container, limit int, search string) error {
	if container.History == nil {
		return fmt.Errorf("history is disabled in config")
	}
	records, err := container.History.Records(limit, search)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No history recorded yet.")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%s  [%s]\n", humanize.Time(rec.Timestamp), rec.Decision)
		fmt.Fprintf(out, "  ask: %s\n", rec.Prompt)
		fmt.Fprintf(out, "  cmd: %s\n", rec.Command)
	}
	return nil
}

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := yaml.Marshal(container.Config)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(raw))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
		},
	})
	return configCmd
}

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check config, endpoint, shell, and session health",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.NewDoctor().Run(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, check := range report.Checks {
				fmt.Fprintf(out, "%-5s %-12s %s\n", check.Status, check.Name, check.Details)
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found problems")
			}
			return nil
		},
	}
}
