package models

import "time"

const (
	RecordActionUpload = "upload"
	RecordActionDelete = "delete"
)

// 업로드 디렉터리 변경 이력
type UploadRecord struct {
	ID        int       `json:"id"`
	Action    string    `json:"action"`
	FileName  string    `json:"file_name"`
	SizeBytes int64     `json:"size_bytes"`
	ClientIP  string    `json:"client_ip"`
	CreatedAt time.Time `json:"created_at"`
}

// 저장에 성공한 업로드 파일 정보
type UploadedFile struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// 실패한 업로드/삭제 항목
type FailedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
