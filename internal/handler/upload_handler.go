/**
* Name:        upload_handler.go
* Description: 업로드 디렉터리 관리 (업로드 / 삭제)
 */
package handler

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"ProfileCards_WebProject/internal/models"
	"ProfileCards_WebProject/internal/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	uploadSummaryLimit = 5
	deleteSummaryLimit = 8
	modifiedTimeLayout = "2006-01-02 15:04:05"
)

type UploadResponse struct {
	OK     bool                  `json:"ok"`
	Saved  []models.UploadedFile `json:"saved"`
	Failed []models.FailedFile   `json:"failed"`
	Error  string                `json:"error,omitempty"`
}

type DeleteUploadsResponse struct {
	OK      bool     `json:"ok"`
	Deleted []string `json:"deleted"`
	Failed  []string `json:"failed"`
	Error   string   `json:"error,omitempty"`
}

// Upload godoc
// @Summary      Upload files
// @Description  GET shows the upload form. POST stores every multipart "file" part in the upload directory, renaming on collision.
// @Tags         Uploads
// @Accept       multipart/form-data
// @Produce      html,json
// @Param        file  formData  file  true  "one or more files"
// @Success      200   {object}  handler.UploadResponse
// @Failure      429   {object}  handler.ErrorResponse
// @Router       /cgi_bin/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		h.renderUpload(c, uploadData{})
		return
	}

	if err := h.uploads.EnsureDir(); err != nil {
		h.uploadFailed(c, "Upload directory not available: "+err.Error())
		return
	}

	reader, err := c.Request.MultipartReader()
	if err != nil {
		h.uploadFailed(c, "No file field in the request.")
		return
	}

	saved := []models.UploadedFile{}
	failed := []models.FailedFile{}
	sawFileField := false
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			h.logger.Warn("malformed multipart body", zap.Error(err))
			break
		}
		if part.FormName() != "file" {
			part.Close()
			continue
		}
		sawFileField = true

		filename := rawFileName(part)
		if filename == "" {
			failed = append(failed, models.FailedFile{Name: "—", Reason: "No filename provided"})
			part.Close()
			continue
		}

		file, err := h.uploads.Save(filename, part)
		part.Close()
		if err != nil {
			failed = append(failed, models.FailedFile{Name: failedUploadName(filename, err), Reason: uploadFailureReason(err)})
			continue
		}
		saved = append(saved, file)
		h.recordUpload(c, models.RecordActionUpload, file.Name, file.Size)
		h.logger.Info("file uploaded", zap.String("file", file.Name), zap.Int64("size", file.Size))
	}

	if !sawFileField {
		h.uploadFailed(c, "No file field in the request.")
		return
	}

	if wantsJSON(c, "") {
		c.JSON(http.StatusOK, UploadResponse{OK: len(failed) == 0, Saved: saved, Failed: failed})
		return
	}

	savedNames := make([]string, 0, len(saved))
	views := make([]savedFileView, 0, len(saved))
	for _, f := range saved {
		savedNames = append(savedNames, f.Name)
		views = append(views, savedFileView{
			Name:     f.Name,
			Size:     upload.HumanSize(f.Size),
			Modified: f.ModifiedAt.Local().Format(modifiedTimeLayout),
		})
	}
	failedNames := make([]string, 0, len(failed))
	for _, f := range failed[:min(uploadSummaryLimit, len(failed))] {
		failedNames = append(failedNames, f.Name)
	}
	errMsg := ""
	if len(failedNames) > 0 {
		errMsg = "Failed: " + strings.Join(failedNames, ", ")
	}

	h.renderUpload(c, uploadData{
		OK:          summarize("Uploaded: ", savedNames, uploadSummaryLimit),
		Err:         errMsg,
		ShowDetails: true,
		Saved:       views,
		Failed:      failed,
	})
}

// rawFileName returns the filename parameter as sent. part.FileName applies
// filepath.Base, which would turn "a.txt/" into "a.txt".
func rawFileName(part *multipart.Part) string {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return part.FileName()
	}
	return params["filename"]
}

func (h *Handler) uploadFailed(c *gin.Context, msg string) {
	if wantsJSON(c, "") {
		c.JSON(http.StatusOK, UploadResponse{Saved: []models.UploadedFile{}, Failed: []models.FailedFile{}, Error: msg})
		return
	}
	h.renderUpload(c, uploadData{Err: msg})
}

func (h *Handler) renderUpload(c *gin.Context, data uploadData) {
	data.layoutData = layoutData{Title: "Directory Management • Upload Files", Footer: "WebServ • CGI • Upload"}
	data.UploadDir = h.uploads.Dir()
	data.AllowedExts = strings.Join(h.uploads.AllowedExts(), ", ")
	data.MaxSize = upload.HumanSize(h.uploads.MaxBytes())
	h.renderHTML(c, http.StatusOK, uploadPage, data)
}

// 파일 이름 자체가 거부된 경우에는 원래 이름을 보여줌
func failedUploadName(filename string, err error) string {
	if errors.Is(err, upload.ErrInvalidFilename) {
		return filename
	}
	return upload.SanitizeFilename(filename)
}

func uploadFailureReason(err error) string {
	switch {
	case errors.Is(err, upload.ErrInvalidFilename):
		return "Invalid filename"
	case errors.Is(err, upload.ErrExtNotAllowed):
		return "Extension not allowed"
	case errors.Is(err, upload.ErrPathEscaped):
		return "Path escaped upload dir"
	default:
		return err.Error()
	}
}

// DeleteUploadFiles godoc
// @Summary      Delete uploaded files
// @Description  GET lists the upload directory. POST deletes every url-encoded "files" value.
// @Tags         Uploads
// @Accept       x-www-form-urlencoded
// @Produce      html,json
// @Param        files  formData  []string  true  "file names"
// @Success      200    {object}  handler.DeleteUploadsResponse
// @Failure      401    {object}  handler.ErrorResponse
// @Router       /cgi_bin/delete_upload_files [post]
func (h *Handler) DeleteUploadFiles(c *gin.Context) {
	if info, err := os.Stat(h.uploads.Dir()); err != nil || !info.IsDir() {
		if wantsJSON(c, "") {
			c.JSON(http.StatusOK, DeleteUploadsResponse{Deleted: []string{}, Failed: []string{}, Error: "Upload directory not found"})
			return
		}
		h.renderDeleteUploads(c, deleteUploadsData{Missing: true})
		return
	}

	if c.Request.Method != http.MethodPost {
		h.renderDeleteUploads(c, deleteUploadsData{})
		return
	}

	var selected []string
	if strings.Contains(c.GetHeader("Content-Type"), "application/x-www-form-urlencoded") {
		if err := c.Request.ParseForm(); err == nil {
			for _, name := range c.Request.PostForm["files"] {
				if name != "" {
					selected = append(selected, name)
				}
			}
		}
	}
	if len(selected) == 0 {
		if wantsJSON(c, "") {
			c.JSON(http.StatusOK, DeleteUploadsResponse{Deleted: []string{}, Failed: []string{}, Error: "No files selected."})
			return
		}
		h.renderDeleteUploads(c, deleteUploadsData{Err: "No files selected."})
		return
	}

	deleted, failed := h.uploads.Delete(selected)
	for _, name := range deleted {
		h.recordUpload(c, models.RecordActionDelete, name, 0)
	}
	h.logger.Info("upload files deleted", zap.Strings("deleted", deleted), zap.Strings("failed", failed))

	if wantsJSON(c, "") {
		c.JSON(http.StatusOK, DeleteUploadsResponse{OK: len(failed) == 0, Deleted: deleted, Failed: failed})
		return
	}
	h.renderDeleteUploads(c, deleteUploadsData{
		OK:  summarize("Deleted: ", deleted, deleteSummaryLimit),
		Err: summarize("Failed: ", failed, deleteSummaryLimit),
	})
}

func (h *Handler) renderDeleteUploads(c *gin.Context, data deleteUploadsData) {
	data.layoutData = layoutData{Title: "Directory Management • Delete Files", Footer: "WebServ • CGI • Delete"}
	data.UploadDir = h.uploads.Dir()
	data.TokenRequired = h.issuer != nil
	if !data.Missing {
		files, err := h.uploads.List()
		if err != nil {
			h.logger.Warn("failed to list upload dir", zap.Error(err))
		}
		data.Files = files
	}
	h.renderHTML(c, http.StatusOK, deleteUploadsPage, data)
}
