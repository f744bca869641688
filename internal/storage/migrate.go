package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ProfileCards_WebProject/internal/models"
)

type combinedProfiles struct {
	Profiles []map[string]any `json:"profiles"`
}

// MigrateIfNeeded splits the combined profiles.json into per-file profiles.
// It first moves the legacy combined file into place when the current one is
// missing, and does nothing once any per-file profile exists. Callers are
// expected to ignore the error; it is returned only so it can be logged.
func (s *ProfileStore) MigrateIfNeeded() (int, error) {
	if err := s.EnsureDirs(); err != nil {
		return 0, err
	}

	var errs []error
	if err := s.promoteLegacyFile(); err != nil {
		errs = append(errs, err)
	}

	has, err := s.hasProfileFiles()
	if err != nil {
		return 0, errors.Join(append(errs, err)...)
	}
	if has {
		return 0, errors.Join(errs...)
	}

	n, err := s.splitCombinedFile()
	if err != nil {
		errs = append(errs, err)
	}
	return n, errors.Join(errs...)
}

func (s *ProfileStore) promoteLegacyFile() error {
	if s.legacyFile == "" {
		return nil
	}
	combined := s.combinedFile()
	if _, err := os.Stat(combined); err == nil {
		return nil
	}
	if _, err := os.Stat(s.legacyFile); err != nil {
		return nil
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.Rename(s.legacyFile, combined); err == nil {
		return nil
	}
	// rename fails across filesystems
	if err := copyFile(s.legacyFile, combined); err != nil {
		return fmt.Errorf("copy legacy profiles: %w", err)
	}
	return nil
}

func (s *ProfileStore) hasProfileFiles() (bool, error) {
	entries, err := os.ReadDir(s.profilesDir)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() && profileFileRe.MatchString(entry.Name()) {
			return true, nil
		}
	}
	return false, nil
}

func (s *ProfileStore) splitCombinedFile() (int, error) {
	raw, err := os.ReadFile(s.combinedFile())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	var data combinedProfiles
	if err := decodeJSON(raw, &data); err != nil {
		return 0, fmt.Errorf("decode %s: %w", s.combinedFile(), err)
	}

	written := 0
	for _, p := range data.Profiles {
		name := stringField(p, "name")
		profile := models.Profile{
			ID:     s.SafeID(strings.TrimSpace(stringField(p, "id")), strings.TrimSpace(name)),
			Name:   name,
			Gender: stringField(p, "gender"),
			Hobby:  stringField(p, "hobby"),
		}
		if err := s.Write(profile); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
