/**
* Name:        config.go
* Description: 서버/CGI 공통 설정
* Workflow:    기본값 -> TOML 파일 -> .env -> 환경 변수 순서로 덮어쓴다
 */
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const DefaultMaxUploadBytes int64 = 52428800 // 50 MB

var DefaultAllowedExts = []string{
	"jpg", "jpeg", "png", "gif", "webp", "svg", "pdf", "txt", "md", "zip", "tar", "gz", "7z",
	"mp3", "wav", "mp4", "mov", "avi", "webm",
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY is required when ADMIN_PASSWORD_HASH is set")

type Config struct {
	Addr string `toml:"addr" env:"CARDSERV_ADDR"`

	// 프로필 저장 위치 (profiles/ 하위에 파일 단위로 저장)
	DataDir    string `toml:"data_dir" env:"DATA_DIR"`
	LegacyFile string `toml:"legacy_file" env:"LEGACY_PROFILES_FILE"`

	UploadDir      string   `toml:"upload_dir" env:"UPLOAD_DIR"`
	AllowedExts    []string `toml:"allowed_exts" env:"ALLOWED_EXTS" envSeparator:","`
	MaxUploadBytes int64    `toml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES"`

	// 비어 있으면 업로드 기록을 남기지 않음
	DatabasePath string `toml:"database_path" env:"DATABASE_PATH"`

	RedirectBaseURL string `toml:"redirect_base_url" env:"REDIRECT_BASE_URL"`

	JWTSecret         string `toml:"-" env:"JWT_SECRET_KEY"`
	AdminUsername     string `toml:"admin_username" env:"ADMIN_USERNAME"`
	AdminPasswordHash string `toml:"-" env:"ADMIN_PASSWORD_HASH"`

	CORSOrigins        []string `toml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
	RateLimitPerSecond float64  `toml:"rate_limit_per_second" env:"RATE_LIMIT_PER_SECOND"`
	RateLimitBurst     int      `toml:"rate_limit_burst" env:"RATE_LIMIT_BURST"`
}

func Default() Config {
	return Config{
		Addr:               ":8080",
		DataDir:            filepath.Join("pages", "data"),
		LegacyFile:         filepath.Join("cgi_bin", "data", "profiles.json"),
		UploadDir:          filepath.Join("pages", "upload"),
		AllowedExts:        append([]string(nil), DefaultAllowedExts...),
		MaxUploadBytes:     DefaultMaxUploadBytes,
		DatabasePath:       "cardserv.db",
		RedirectBaseURL:    "https://www.google.com",
		AdminUsername:      "admin",
		RateLimitPerSecond: 2,
		RateLimitBurst:     10,
	}
}

// Load builds the configuration. tomlPath may be empty.
func Load(tomlPath string) (Config, error) {
	cfg := Default()

	if tomlPath != "" {
		if _, err := toml.DecodeFile(tomlPath, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", tomlPath, err)
		}
	}

	// .env 파일은 선택 사항
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	exts := make([]string, 0, len(c.AllowedExts))
	for _, e := range c.AllowedExts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			exts = append(exts, e)
		}
	}
	c.AllowedExts = exts

	origins := make([]string, 0, len(c.CORSOrigins))
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSOrigins = origins
	c.RedirectBaseURL = strings.TrimRight(strings.TrimSpace(c.RedirectBaseURL), "/")
}

func (c Config) Validate() error {
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.DataDir == "" {
		return errors.New("DATA_DIR must not be empty")
	}
	if c.UploadDir == "" {
		return errors.New("UPLOAD_DIR must not be empty")
	}
	if c.RedirectBaseURL == "" {
		return errors.New("REDIRECT_BASE_URL must not be empty")
	}
	if c.AdminEnabled() && c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// AdminEnabled reports whether destructive routes require an admin token.
func (c Config) AdminEnabled() bool {
	return c.AdminPasswordHash != ""
}
