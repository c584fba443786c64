package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate checks cross-field constraints that env tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 16 {
		errs = append(errs, errors.New("AUTH_JWT_SECRET must be at least 16 characters"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("AUTH_TOKEN_TTL must be positive"))
	}
	if c.Auth.OTPTTL <= 0 {
		errs = append(errs, errors.New("AUTH_OTP_TTL must be positive"))
	}
	if _, err := time.Parse("02/01/2006", c.App.KeyDate); err != nil {
		errs = append(errs, fmt.Errorf("APP_KEY_DATE must be DD/MM/YYYY: %w", err))
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("APP_TIMEZONE: %w", err))
	}
	switch strings.ToLower(c.AI.Provider) {
	case "", "openai", "gemini":
	default:
		errs = append(errs, fmt.Errorf("AI_PROVIDER %q: use openai, gemini or leave empty", c.AI.Provider))
	}
	if c.AI.Provider != "" && c.AI.APIKey == "" {
		errs = append(errs, errors.New("AI_API_KEY is required when AI_PROVIDER is set"))
	}
	if c.Storage.MaxUploadMB <= 0 {
		errs = append(errs, errors.New("STORAGE_MAX_UPLOAD_MB must be positive"))
	}

	return errors.Join(errs...)
}
