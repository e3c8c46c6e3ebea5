// Package cli wires the cobra command tree and the interactive loop.
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/ask-go/internal/app"
	"github.com/doeshing/ask-go/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	var (
		baseURL     string
		endpoint    string
		model       string
		temperature float64
		run         bool
		yes         bool
		persist     bool
		copyCmd     bool
	)

	root := &cobra.Command{
		Use:   "ask [query]",
		Short: "Plain-English to shell commands via a local model",
		Long: "ask sends a plain-English request to a locally hosted chat-completion\n" +
			"model and renders either an answer or a proposed shell command.\n" +
			"Nothing runs without --run plus an explicit confirmation (or --yes).",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := container.NewSession(app.SessionOptions{
				BaseURL:     baseURL,
				Endpoint:    endpoint,
				Model:       model,
				Temperature: temperature,
				HasTemp:     cmd.Flags().Changed("temperature"),
				Policy:      domain.RunPolicy{Run: run, Yes: yes},
				Persist:     persist,
				Prompter:    NewPrompter(nil, cmd.OutOrStdout()),
			})
			if err != nil {
				return err
			}

			loop := &Loop{
				Service:   svc,
				In:        cmd.InOrStdin(),
				Out:       cmd.OutOrStdout(),
				Clipboard: clipboardFor(copyCmd),
			}
			if len(args) == 0 {
				return loop.Run(cmd.Context())
			}
			return loop.RunOnce(cmd.Context(), strings.Join(args, " "))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.Flags()
	flags.StringVar(&baseURL, "base-url", "", "Completion endpoint base URL (default from config)")
	flags.StringVar(&endpoint, "endpoint", "", "Chat completions path (default from config)")
	flags.StringVarP(&model, "model", "m", "", "Model name (default from config)")
	flags.Float64VarP(&temperature, "temperature", "t", 0, "Sampling temperature")
	flags.BoolVar(&run, "run", false, "Offer to run the generated command after confirmation")
	flags.BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt (requires --run)")
	flags.BoolVarP(&persist, "session", "s", false, "Persist the conversation across invocations")
	flags.BoolVarP(&copyCmd, "copy", "c", false, "Copy a proposed command to the clipboard")

	root.AddCommand(newResetCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newDoctorCommand(container))
	return root, nil
}

func clipboardFor(enabled bool) *Clipboard {
	if !enabled {
		return nil
	}
	return NewClipboard()
}
