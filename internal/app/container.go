// Package app wires application services with infrastructure adapters.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/doeshing/ask-go/internal/application/doctor"
	"github.com/doeshing/ask-go/internal/application/session"
	"github.com/doeshing/ask-go/internal/domain"
	"github.com/doeshing/ask-go/internal/infrastructure/ai"
	"github.com/doeshing/ask-go/internal/infrastructure/config"
	"github.com/doeshing/ask-go/internal/infrastructure/executor"
	"github.com/doeshing/ask-go/internal/infrastructure/history"
	"github.com/doeshing/ask-go/internal/infrastructure/transcript"
	"github.com/doeshing/ask-go/internal/pkg/logger"
	"github.com/doeshing/ask-go/internal/ports"
)

// Container holds the long-lived adapters shared by all commands.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Logger       ports.Logger
	History      ports.HistoryRepository
	Transcripts  ports.TranscriptStore
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Logger:       logger.NewStd(verbose),
		Transcripts:  transcript.NewFileStore(""),
	}
	if cfg.History.Enabled {
		c.History = history.NewSQLiteStore()
	}
	return c, nil
}

// SessionOptions carries per-invocation overrides resolved from flags.
type SessionOptions struct {
	BaseURL     string
	Endpoint    string
	Model       string
	Temperature float64
	HasTemp     bool
	Policy      domain.RunPolicy
	Persist     bool
	Prompter    ports.ConfirmationPrompter
}

// NewSession builds a session service for one invocation, applying flag
// overrides on top of the loaded config. In session mode the persisted
// transcript seeds the conversation; a corrupt session file is discarded
// with a warning rather than failing the invocation.
func (c *Container) NewSession(opts SessionOptions) (*session.Service, error) {
	cfg := c.Config
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}
	if opts.Model != "" {
		cfg.Model = opts.Model
	}
	if opts.HasTemp {
		cfg.Temperature = opts.Temperature
	}

	t := domain.NewTranscript()
	if opts.Persist {
		loaded, err := c.Transcripts.Load()
		switch {
		case errors.Is(err, transcript.ErrCorrupt):
			c.Logger.Warn("session file corrupt, starting fresh", map[string]interface{}{
				"path": c.Transcripts.Path(),
			})
		case err != nil:
			return nil, err
		default:
			t = loaded
		}
	}

	// The system prompt belongs to session initialization, not to any
	// single turn; an aborted turn must roll back to a state that still
	// includes it.
	t.EnsureSystemPrompt(ai.SystemPrompt)

	local := executor.NewLocal(cfg.Shell)
	return &session.Service{
		Client:       ai.NewClient(cfg.BaseURL, cfg.Endpoint, time.Duration(cfg.TimeoutSeconds)*time.Second),
		Store:        c.Transcripts,
		History:      c.History,
		Validator:    executor.NewSyntax(),
		Gate:         &session.Gate{Policy: opts.Policy, Executor: local, Prompter: opts.Prompter, Logger: c.Logger},
		Logger:       c.Logger,
		Transcript:   t,
		Model:        cfg.Model,
		Temperature:  cfg.Temperature,
		Persist:      opts.Persist,
		SystemPrompt: ai.SystemPrompt,
	}, nil
}

// NewDoctor builds the diagnostics service.
func (c *Container) NewDoctor() *doctor.Service {
	return &doctor.Service{
		ConfigProvider: c.ConfigLoader,
		Transcripts:    c.Transcripts,
		Shell:          executor.NewLocal(c.Config.Shell).Shell(),
	}
}
