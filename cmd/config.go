package cmd

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

const (
	DefaultHTTPPort      = "8080"
	DefaultAuditSchedule = "*/30 * * * * *"
)

// scheduleParser accepts the same six-field expressions as cron.WithSeconds.
var scheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

type Config struct {
	HTTPPort      string
	AuditSchedule string
}

// NewConfig builds a Config, substituting defaults for empty values.
func NewConfig(httpPort string, auditSchedule string) Config {
	if httpPort == "" {
		httpPort = DefaultHTTPPort
	}
	if auditSchedule == "" {
		auditSchedule = DefaultAuditSchedule
	}

	return Config{
		HTTPPort:      httpPort,
		AuditSchedule: auditSchedule,
	}
}

// Validate checks that the audit schedule parses.
func (c Config) Validate() error {
	if _, err := scheduleParser.Parse(c.AuditSchedule); err != nil {
		return fmt.Errorf("invalid AUDIT_SCHEDULE %q: %w", c.AuditSchedule, err)
	}
	return nil
}
