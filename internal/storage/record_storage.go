package storage

import (
	"database/sql"
	"time"

	"ProfileCards_WebProject/internal/models"
)

const recordTimeLayout = "2006-01-02 15:04:05"

type RecordStore struct {
	db *sql.DB
}

func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

func (s *RecordStore) Close() error {
	return s.db.Close()
}

func (s *RecordStore) CreateRecord(action, fileName string, sizeBytes int64, clientIP string) error {
	stmt, err := s.db.Prepare("INSERT INTO upload_records(action, file_name, size_bytes, client_ip, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(action, fileName, sizeBytes, clientIP, time.Now().UTC().Format(recordTimeLayout))
	return err
}

// GetRecords returns at most limit records, newest first.
func (s *RecordStore) GetRecords(limit int) ([]models.UploadRecord, error) {
	query := `
		SELECT id, action, file_name, size_bytes, client_ip, created_at
		FROM upload_records
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.UploadRecord, 0)
	for rows.Next() {
		var r models.UploadRecord
		var clientIP sql.NullString
		var createdStr string // SQLite는 시간을 문자열로 저장함

		if err := rows.Scan(&r.ID, &r.Action, &r.FileName, &r.SizeBytes, &clientIP, &createdStr); err != nil {
			return nil, err
		}
		if clientIP.Valid {
			r.ClientIP = clientIP.String
		}
		parsedTime, _ := time.Parse(recordTimeLayout, createdStr)
		r.CreatedAt = parsedTime

		records = append(records, r)
	}
	return records, rows.Err()
}
