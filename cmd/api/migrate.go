package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"ProfileCards_WebProject/internal/auth"
	"ProfileCards_WebProject/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Split the legacy combined profiles file into per-profile files",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := storage.NewProfileStore(cfg.DataDir, cfg.LegacyFile)
		n, err := profiles.MigrateIfNeeded()
		if err != nil {
			return fmt.Errorf("migrate profiles: %w", err)
		}
		logger.Info("migration finished", zap.Int("migrated", n), zap.String("dir", profiles.Dir()))
		fmt.Fprintf(cmd.OutOrStdout(), "migrated %d profile(s) into %s\n", n, profiles.Dir())
		return nil
	},
}

// ADMIN_PASSWORD_HASH 값을 만들 때 사용
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Args:  cobra.MaximumNArgs(1),
	// 설정 파일 없이도 실행 가능해야 함
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		password := ""
		if len(args) == 1 {
			password = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}
		if password == "" {
			return errors.New("password must not be empty")
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
