package main

import (
	"fmt"
	"os"

	"ProfileCards_WebProject/internal/auth"
	"ProfileCards_WebProject/internal/config"
	"ProfileCards_WebProject/internal/handler"
	"ProfileCards_WebProject/internal/logging"
	"ProfileCards_WebProject/internal/storage"
	"ProfileCards_WebProject/internal/upload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "cardserv",
	Short:         "Profile card and upload directory service (HTTP or CGI)",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return err
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	// CGI 호스트는 스크립트 경로를 argv[1]로 넘기므로 인자를 그대로 받음
	Args: cobra.ArbitraryArgs,
	// 웹 서버가 CGI로 실행한 경우 하위 명령 없이도 요청을 처리
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("GATEWAY_INTERFACE") != "" {
			return runCGI("")
		}
		if len(args) > 0 {
			return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, cgiCmd, migrateCmd, hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app owns everything buildApp opened.
type app struct {
	handler *handler.Handler
	records *storage.RecordStore
	logger  *zap.Logger
}

func (a *app) Close() {
	if a.records != nil {
		if err := a.records.Close(); err != nil {
			a.logger.Warn("failed to close record store", zap.Error(err))
		}
	}
}

func buildApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	profiles := storage.NewProfileStore(cfg.DataDir, cfg.LegacyFile)

	uploads, err := upload.NewStore(upload.Options{
		Dir:         cfg.UploadDir,
		AllowedExts: cfg.AllowedExts,
		MaxBytes:    cfg.MaxUploadBytes,
	})
	if err != nil {
		return nil, err
	}

	var records *storage.RecordStore
	if cfg.DatabasePath != "" {
		db, err := storage.OpenDB(cfg.DatabasePath)
		if err != nil {
			// 기록 DB가 없어도 본 기능은 동작해야 함
			logger.Warn("upload history disabled", zap.String("path", cfg.DatabasePath), zap.Error(err))
		} else {
			records = storage.NewRecordStore(db)
		}
	}

	var issuer *auth.TokenIssuer
	if cfg.AdminEnabled() {
		issuer = auth.NewTokenIssuer(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPasswordHash)
	}

	h := handler.New(handler.Options{
		Profiles:        profiles,
		Uploads:         uploads,
		Records:         records,
		Issuer:          issuer,
		RedirectBaseURL: cfg.RedirectBaseURL,
		Logger:          logger,
	})
	return &app{handler: h, records: records, logger: logger}, nil
}
