package config

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"github.com/sethvargo/go-envconfig"
)

// Config contains runtime configuration values.
type Config struct {
	WebhookURL     string        `env:"MATTERMOST_WEBHOOK_URL" validate:"required,http_url"`
	Channel        string        `env:"MATTERMOST_CHANNEL"`
	Username       string        `env:"MATTERMOST_USERNAME,default=feed-bot"`
	IconURL        string        `env:"MATTERMOST_ICON_URL" validate:"omitempty,http_url"`
	FeedURLs       []string      `env:"FEED_URLS" validate:"required,min=1,dive,http_url"`
	ScheduleCron   string        `env:"SCHEDULE_CRON,default=*/30 * * * *" validate:"required"`
	MaxItems       int           `env:"MAX_ITEMS,default=10" validate:"gte=1,lte=100"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=30s" validate:"gt=0s"`
	LogLevel       string        `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
}

// to help with testing
var envProcess = envconfig.Process

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report environment variable names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("env"), ",")
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Load builds a Config from environment variables and validates it.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envProcess(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	for i, u := range cfg.FeedURLs {
		cfg.FeedURLs[i] = strings.TrimSpace(u)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks field rules and that the schedule is a standard cron spec.
func Validate(cfg *Config) error {
	var problems []string

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for field, tag := range FormatValidationErrors(verrs) {
			problems = append(problems, fmt.Sprintf("%s failed %s", field, tag))
		}
	}

	if strings.TrimSpace(cfg.ScheduleCron) != "" {
		if _, err := cron.ParseStandard(cfg.ScheduleCron); err != nil {
			problems = append(problems, fmt.Sprintf("SCHEDULE_CRON is invalid: %v", err))
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// FormatValidationErrors maps each failing variable to the rule it broke.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = e.Tag()
	}
	return out
}
