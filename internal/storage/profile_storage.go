package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"ProfileCards_WebProject/internal/models"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnsafeID        = errors.New("unsafe id/filename")
)

var (
	profileFileRe = regexp.MustCompile(`^profile_([A-Za-z0-9_\-]+)\.json$`)
	safeIDRe      = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)
	slugStripRe   = regexp.MustCompile(`[^a-z0-9_\-]+`)
)

// ProfileStore keeps one JSON file per profile under <dataDir>/profiles.
// dataDir also holds the combined profiles.json written by older versions.
type ProfileStore struct {
	dataDir     string
	profilesDir string
	legacyFile  string
}

func NewProfileStore(dataDir, legacyFile string) *ProfileStore {
	return &ProfileStore{
		dataDir:     dataDir,
		profilesDir: filepath.Join(dataDir, "profiles"),
		legacyFile:  legacyFile,
	}
}

func (s *ProfileStore) Dir() string { return s.profilesDir }

func (s *ProfileStore) combinedFile() string {
	return filepath.Join(s.dataDir, "profiles.json")
}

func (s *ProfileStore) EnsureDirs() error {
	return os.MkdirAll(s.profilesDir, 0o755)
}

func profileFileName(id string) string {
	return fmt.Sprintf("profile_%s.json", id)
}

// IsSafeID reports whether id may be used in a profile file name.
func IsSafeID(id string) bool {
	return safeIDRe.MatchString(id)
}

func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(slugStripRe.ReplaceAllString(s, "-"), "-")
	if s == "" {
		return "user"
	}
	return s
}

func (s *ProfileStore) exists(id string) bool {
	_, err := os.Stat(filepath.Join(s.profilesDir, profileFileName(id)))
	return err == nil
}

// NewIDFromName slugifies name and appends -2, -3, ... until no file uses it.
func (s *ProfileStore) NewIDFromName(name string) string {
	base := Slugify(name)
	candidate := base
	for i := 2; s.exists(candidate); i++ {
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return candidate
}

// SafeID prefers id when it is filename-safe, then a slug of name, then a
// random 8 character token.
func (s *ProfileStore) SafeID(id, name string) string {
	if id != "" && IsSafeID(id) {
		return id
	}
	if name != "" {
		return s.NewIDFromName(name)
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func stringField(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		// 숫자는 파일에 적힌 그대로 사용 (12345678 -> "12345678")
		return val.String()
	case bool:
		if val {
			return "True"
		}
		return "False"
	}
	return fmt.Sprint(v)
}

// decodeJSON keeps numbers as json.Number so ids like 12345678 survive.
func decodeJSON(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after top-level JSON value")
	}
	return nil
}

func readProfileFile(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := decodeJSON(raw, &data); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.New("profile file is not an object")
	}
	return data, nil
}

// Cards lists every readable profile file. The id always comes from the file
// name. Malformed files are skipped.
func (s *ProfileStore) Cards() ([]models.ProfileCard, error) {
	if err := s.EnsureDirs(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.profilesDir)
	if err != nil {
		return nil, err
	}

	cards := make([]models.ProfileCard, 0, len(entries))
	for _, entry := range entries {
		m := profileFileRe.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		data, err := readProfileFile(filepath.Join(s.profilesDir, entry.Name()))
		if err != nil {
			continue
		}
		cards = append(cards, models.ProfileCard{
			Profile: models.Profile{
				ID:     m[1],
				Name:   stringField(data, "name"),
				Gender: stringField(data, "gender"),
				Hobby:  stringField(data, "hobby"),
			},
			File: entry.Name(),
		})
	}
	return cards, nil
}

// List returns all profiles sorted by file name. A profile's own id field
// wins over the file name when present.
func (s *ProfileStore) List() ([]models.Profile, error) {
	if err := s.EnsureDirs(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.profilesDir)
	if err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(entries))
	for _, entry := range entries {
		m := profileFileRe.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		data, err := readProfileFile(filepath.Join(s.profilesDir, entry.Name()))
		if err != nil {
			continue
		}
		id := stringField(data, "id")
		if id == "" {
			id = m[1]
		}
		profiles = append(profiles, models.Profile{
			ID:     id,
			Name:   stringField(data, "name"),
			Gender: stringField(data, "gender"),
			Hobby:  stringField(data, "hobby"),
		})
	}
	return profiles, nil
}

func (s *ProfileStore) Get(id string) (models.Profile, error) {
	if !IsSafeID(id) {
		return models.Profile{}, ErrUnsafeID
	}
	data, err := readProfileFile(filepath.Join(s.profilesDir, profileFileName(id)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, err
	}
	p := models.Profile{
		ID:     stringField(data, "id"),
		Name:   stringField(data, "name"),
		Gender: stringField(data, "gender"),
		Hobby:  stringField(data, "hobby"),
	}
	if p.ID == "" {
		p.ID = id
	}
	return p, nil
}

// Write stores p in its own file, replacing any previous version through a
// temp file and rename.
func (s *ProfileStore) Write(p models.Profile) error {
	if err := s.EnsureDirs(); err != nil {
		return err
	}
	name := profileFileName(p.ID)
	if !profileFileRe.MatchString(name) {
		return ErrUnsafeID
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return err
	}

	path := filepath.Join(s.profilesDir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, bytes.TrimRight(buf.Bytes(), "\n"), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (s *ProfileStore) Delete(id string) error {
	if !IsSafeID(id) {
		return ErrUnsafeID
	}
	path := filepath.Join(s.profilesDir, profileFileName(id))
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrProfileNotFound
		}
		return err
	}
	if !info.Mode().IsRegular() {
		return ErrProfileNotFound
	}
	return os.Remove(path)
}

// Count is best-effort; unreadable directories count as zero.
func (s *ProfileStore) Count() int {
	profiles, err := s.List()
	if err != nil {
		return 0
	}
	return len(profiles)
}
