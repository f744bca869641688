package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"ProfileCards_WebProject/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ProfileStore {
	t.Helper()
	dir := t.TempDir()
	return NewProfileStore(filepath.Join(dir, "data"), filepath.Join(dir, "legacy", "profiles.json"))
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Jane Doe":         "jane-doe",
		"  Mixed_Case-ID ": "mixed_case-id",
		"!!!":              "user",
		"":                 "user",
		"a  b//c":          "a-b-c",
		"Émile Zola":       "mile-zola",
		"--edge--":         "edge",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestNewIDFromNameAvoidsCollisions(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, "jane", s.NewIDFromName("Jane"))
	require.NoError(t, s.Write(models.Profile{ID: "jane", Name: "Jane"}))
	assert.Equal(t, "jane-2", s.NewIDFromName("Jane"))
	require.NoError(t, s.Write(models.Profile{ID: "jane-2", Name: "Jane"}))
	assert.Equal(t, "jane-3", s.NewIDFromName("jane"))
}

func TestSafeID(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, "abc_123", s.SafeID("abc_123", "ignored"))
	assert.Equal(t, "bob-smith", s.SafeID("../etc/passwd", "Bob Smith"))
	assert.Equal(t, "bob-smith", s.SafeID("", "Bob Smith"))

	random := s.SafeID("", "")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}$`), random)
}

func TestWriteAndList(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write(models.Profile{ID: "b", Name: "Bea <b>", Gender: "F", Hobby: "chess"}))
	require.NoError(t, s.Write(models.Profile{ID: "a", Name: "Ana", Gender: "", Hobby: "비행"}))

	raw, err := os.ReadFile(filepath.Join(s.Dir(), "profile_b.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"id":"b","name":"Bea <b>","gender":"F","hobby":"chess"}`, string(raw))

	raw, err = os.ReadFile(filepath.Join(s.Dir(), "profile_a.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "비행")

	_, err = os.Stat(filepath.Join(s.Dir(), "profile_a.json.tmp"))
	assert.True(t, os.IsNotExist(err))

	profiles, err := s.List()
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "a", profiles[0].ID)
	assert.Equal(t, "b", profiles[1].ID)
	assert.Equal(t, 2, s.Count())
}

func TestWriteUpserts(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write(models.Profile{ID: "x", Name: "First"}))
	require.NoError(t, s.Write(models.Profile{ID: "x", Name: "Second"}))

	p, err := s.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "Second", p.Name)
	assert.Equal(t, 1, s.Count())
}

func TestWriteRejectsUnsafeID(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.Write(models.Profile{ID: "../x", Name: "x"}), ErrUnsafeID)
	assert.ErrorIs(t, s.Write(models.Profile{ID: "", Name: "x"}), ErrUnsafeID)
}

func TestListSkipsMalformedAndForeignFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureDirs())

	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), name), []byte(body), 0o644))
	}
	write("profile_ok.json", `{"name":"Ok","age":3}`)
	write("profile_bad.json", `{not json`)
	write("profile_list.json", `[1,2]`)
	write("notes.txt", `{"name":"ignored"}`)
	write("profile_other.json", `{"id":"custom","name":"Other","hobby":7}`)

	profiles, err := s.List()
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, models.Profile{ID: "ok", Name: "Ok"}, profiles[0])
	assert.Equal(t, models.Profile{ID: "custom", Name: "Other", Hobby: "7"}, profiles[1])

	cards, err := s.Cards()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "other", cards[1].ID)
	assert.Equal(t, "profile_other.json", cards[1].File)
}

func TestGetAndDelete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write(models.Profile{ID: "gone", Name: "Gone"}))

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	_, err = s.Get("../gone")
	assert.ErrorIs(t, err, ErrUnsafeID)

	require.NoError(t, s.Delete("gone"))
	assert.ErrorIs(t, s.Delete("gone"), ErrProfileNotFound)
	assert.ErrorIs(t, s.Delete("a/b"), ErrUnsafeID)
}

func TestListKeepsNumericFieldsAsWritten(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureDirs())
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "profile_n.json"),
		[]byte(`{"id":98765432101,"name":"N","hobby":7}`), 0o644))

	profiles, err := s.List()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, models.Profile{ID: "98765432101", Name: "N", Hobby: "7"}, profiles[0])
}
