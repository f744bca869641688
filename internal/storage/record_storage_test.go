package storage

import (
	"path/filepath"
	"testing"

	"ProfileCards_WebProject/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStore(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	records := NewRecordStore(db)
	t.Cleanup(func() { records.Close() })

	require.NoError(t, records.CreateRecord(models.RecordActionUpload, "a.png", 10, "10.0.0.1"))
	require.NoError(t, records.CreateRecord(models.RecordActionUpload, "b.png", 20, ""))
	require.NoError(t, records.CreateRecord(models.RecordActionDelete, "a.png", 0, "10.0.0.1"))

	got, err := records.GetRecords(2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.RecordActionDelete, got[0].Action)
	assert.Equal(t, "a.png", got[0].FileName)
	assert.Equal(t, "10.0.0.1", got[0].ClientIP)
	assert.False(t, got[0].CreatedAt.IsZero())

	assert.Equal(t, "b.png", got[1].FileName)
	assert.Equal(t, int64(20), got[1].SizeBytes)
}

func TestGetRecordsEmpty(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	records := NewRecordStore(db)
	t.Cleanup(func() { records.Close() })

	got, err := records.GetRecords(10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
