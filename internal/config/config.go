package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	App      AppConfig
	SMTP     SMTPConfig
	Storage  StorageConfig
	Playlist PlaylistConfig
	AI       AIConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT"                    env-default:"8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AllowedOrigins  string        `env:"CORS_ALLOWED_ORIGINS"    env-default:"*"`
}

type DatabaseConfig struct {
	DSN         string `env:"DATABASE_DSN"          env-required:"true"`
	AutoMigrate bool   `env:"DATABASE_AUTO_MIGRATE" env-default:"true"`
}

// AuthConfig holds session and sign-in settings.
type AuthConfig struct {
	JWTSecret string        `env:"AUTH_JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `env:"AUTH_TOKEN_TTL"  env-default:"720h"`
	OTPTTL    time.Duration `env:"AUTH_OTP_TTL"    env-default:"15m"`
	// WhitelistEmails is a comma-separated allow-list; empty admits everyone.
	WhitelistEmails string `env:"AUTH_WHITELIST_EMAILS"`
	AdminEmail      string `env:"AUTH_ADMIN_EMAIL"`
}

type AppConfig struct {
	Name     string `env:"APP_NAME"     env-default:"vdpcza"`
	BaseURL  string `env:"APP_BASE_URL" env-default:"http://localhost:5173"`
	KeyDate  string `env:"APP_KEY_DATE" env-default:"14/02/2024"`
	Timezone string `env:"APP_TIMEZONE" env-default:"Europe/Madrid"`
}

type SMTPConfig struct {
	Host       string `env:"SMTP_HOST"        env-default:"smtp.gmail.com"`
	Port       int    `env:"SMTP_PORT"        env-default:"587"`
	Username   string `env:"SMTP_USERNAME"`
	Password   string `env:"SMTP_PASSWORD"`
	From       string `env:"SMTP_FROM"`
	FromName   string `env:"SMTP_FROM_NAME"   env-default:"vdpcza"`
	UseSSL     bool   `env:"SMTP_USE_SSL"     env-default:"false"`
	RequireTLS bool   `env:"SMTP_REQUIRE_TLS" env-default:"true"`
}

// StorageConfig points at an S3-compatible bucket.
type StorageConfig struct {
	Bucket        string `env:"STORAGE_BUCKET"          env-default:"memories"`
	Region        string `env:"STORAGE_REGION"          env-default:"us-east-1"`
	Endpoint      string `env:"STORAGE_ENDPOINT"`
	AccessKey     string `env:"STORAGE_ACCESS_KEY"`
	SecretKey     string `env:"STORAGE_SECRET_KEY"`
	PublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL"`
	MaxUploadMB   int64  `env:"STORAGE_MAX_UPLOAD_MB"   env-default:"20"`
}

type PlaylistConfig struct {
	SpotifyPlaylistID string `env:"PLAYLIST_SPOTIFY_ID" env-default:"37i9dQZF1DXcBWIGoYBM5M"`
	YouTubePlaylistID string `env:"PLAYLIST_YOUTUBE_ID"`
}

// AIConfig selects the chat companion provider. An empty provider uses canned replies.
type AIConfig struct {
	Provider string        `env:"AI_PROVIDER"`
	APIKey   string        `env:"AI_API_KEY"`
	Model    string        `env:"AI_MODEL"`
	Timeout  time.Duration `env:"AI_TIMEOUT" env-default:"20s"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// Whitelist returns the parsed allow-list, lower-cased and trimmed.
func (c AuthConfig) Whitelist() []string {
	var out []string
	for _, e := range strings.Split(c.WhitelistEmails, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// Location resolves the configured timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	if loc, err := time.LoadLocation(c.Timezone); err == nil {
		return loc
	}
	return time.UTC
}
