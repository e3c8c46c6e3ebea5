// Package doctor runs environment diagnostics for the ask CLI.
package doctor

import (
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"time"

	"github.com/doeshing/ask-go/internal/domain"
	"github.com/doeshing/ask-go/internal/ports"
)

// Service checks that the pieces ask depends on are in place: a readable
// config, a reachable completion endpoint, a usable shell, and a parseable
// session file.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Transcripts    ports.TranscriptStore
	Shell          string
	HTTPClient     *http.Client
}

// Run executes all checks and returns a report. Individual check failures
// are reported, not returned as errors.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, nil
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("model %s via %s", cfg.Model, cfg.BaseURL)))

	checks = append(checks, s.endpointCheck(ctx, cfg.BaseURL))
	checks = append(checks, shellCheck(s.Shell))

	if s.Transcripts != nil {
		if _, err := s.Transcripts.Load(); err != nil {
			checks = append(checks, warn("Session file", err.Error()))
		} else {
			checks = append(checks, ok("Session file", s.Transcripts.Path()))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) endpointCheck(ctx context.Context, baseURL string) domain.HealthCheck {
	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/v1/models", nil)
	if err != nil {
		return fail("Endpoint", err.Error())
	}
	resp, err := client.Do(req)
	if err != nil {
		return fail("Endpoint", fmt.Sprintf("%s unreachable: %v", baseURL, err))
	}
	resp.Body.Close()
	return ok("Endpoint", fmt.Sprintf("%s answered %s", baseURL, resp.Status))
}

func shellCheck(shell string) domain.HealthCheck {
	if _, err := exec.LookPath(shell); err != nil {
		return fail("Shell", fmt.Sprintf("%s not found", shell))
	}
	return ok("Shell", shell)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
