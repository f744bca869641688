package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const createUploadRecordsTable = `
	CREATE TABLE IF NOT EXISTS upload_records (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"action" TEXT NOT NULL,
			"file_name" TEXT NOT NULL,
			"size_bytes" INTEGER NOT NULL DEFAULT 0,
			"client_ip" TEXT,
			"created_at" TEXT NOT NULL
	);`

// OpenDB opens the sqlite database at path and creates the tables it needs.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenDB(): failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenDB(): failed to connect to database: %w", err)
	}
	if _, err := db.Exec(createUploadRecordsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenDB(): failed to create upload_records table: %w", err)
	}
	return db, nil
}
