package storage

import (
	"os"
	"path/filepath"
	"testing"

	"ProfileCards_WebProject/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const combinedFixture = `{"profiles": [
	{"id": "alice", "name": "Alice", "gender": "F", "hobby": "tennis"},
	{"id": "bad id!", "name": "Bob Stone", "gender": "M"},
	{"name": "Bob Stone"},
	{"id": 42, "name": "Num"},
	{"gender": "X"}
]}`

func TestMigrateSplitsCombinedFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(s.dataDir, 0o755))
	require.NoError(t, os.WriteFile(s.combinedFile(), []byte(combinedFixture), 0o644))

	n, err := s.MigrateIfNeeded()
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	alice, err := s.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, models.Profile{ID: "alice", Name: "Alice", Gender: "F", Hobby: "tennis"}, alice)

	bob, err := s.Get("bob-stone")
	require.NoError(t, err)
	assert.Equal(t, "M", bob.Gender)

	bob2, err := s.Get("bob-stone-2")
	require.NoError(t, err)
	assert.Equal(t, "Bob Stone", bob2.Name)

	num, err := s.Get("42")
	require.NoError(t, err)
	assert.Equal(t, "Num", num.Name)

	assert.Equal(t, 5, s.Count())
}

func TestMigrateSkipsWhenPerFileDataExists(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write(models.Profile{ID: "existing", Name: "Existing"}))
	require.NoError(t, os.WriteFile(s.combinedFile(), []byte(combinedFixture), 0o644))

	n, err := s.MigrateIfNeeded()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 1, s.Count())
}

func TestMigratePromotesLegacyFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.legacyFile), 0o755))
	require.NoError(t, os.WriteFile(s.legacyFile, []byte(`{"profiles":[{"id":"old","name":"Old"}]}`), 0o644))

	n, err := s.MigrateIfNeeded()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = os.Stat(s.legacyFile)
	assert.True(t, os.IsNotExist(err), "legacy file should have been moved")
	_, err = os.Stat(s.combinedFile())
	assert.NoError(t, err)

	_, err = s.Get("old")
	assert.NoError(t, err)
}

func TestMigrateWithoutAnyDataIsNoop(t *testing.T) {
	s := newTestStore(t)
	n, err := s.MigrateIfNeeded()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMigrateReportsMalformedCombinedFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(s.dataDir, 0o755))
	require.NoError(t, os.WriteFile(s.combinedFile(), []byte(`{broken`), 0o644))

	n, err := s.MigrateIfNeeded()
	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Zero(t, s.Count())
}

func TestMigrateKeepsNumericIDsAsWritten(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(s.dataDir, 0o755))
	require.NoError(t, os.WriteFile(s.combinedFile(),
		[]byte(`{"profiles":[{"id":12345678,"name":"Alice","hobby":1.50},{"id":"b","name":"Bob","gender":true}]}`), 0o644))

	n, err := s.MigrateIfNeeded()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.FileExists(t, filepath.Join(s.Dir(), "profile_12345678.json"))
	assert.NoFileExists(t, filepath.Join(s.Dir(), "profile_alice.json"))

	alice, err := s.Get("12345678")
	require.NoError(t, err)
	assert.Equal(t, models.Profile{ID: "12345678", Name: "Alice", Hobby: "1.50"}, alice)

	bob, err := s.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "True", bob.Gender)
}
