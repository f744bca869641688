// Package upload manages the flat upload directory: filename sanitising,
// extension allow-listing, collision-free destinations and deletion.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"ProfileCards_WebProject/internal/models"
)

var (
	ErrInvalidFilename = errors.New("invalid filename")
	ErrExtNotAllowed   = errors.New("extension not allowed")
	ErrPathEscaped     = errors.New("path escaped upload dir")
	ErrTooLarge        = errors.New("File exceeds MAX_UPLOAD_BYTES limit")
)

type Options struct {
	Dir         string
	AllowedExts []string
	MaxBytes    int64
}

type Store struct {
	dir      string
	allowed  map[string]struct{}
	maxBytes int64
}

func NewStore(opts Options) (*Store, error) {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	allowed := make(map[string]struct{}, len(opts.AllowedExts))
	for _, ext := range opts.AllowedExts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" {
			allowed[ext] = struct{}{}
		}
	}
	return &Store{dir: dir, allowed: allowed, maxBytes: opts.MaxBytes}, nil
}

func (s *Store) Dir() string     { return s.dir }
func (s *Store) MaxBytes() int64 { return s.maxBytes }

// AllowedExts returns the allow-list sorted for display.
func (s *Store) AllowedExts() []string {
	exts := make([]string, 0, len(s.allowed))
	for ext := range s.allowed {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// splitExt splits name like os.path.splitext: leading dots never start an
// extension, so ".bashrc" has none.
func splitExt(name string) (root, ext string) {
	trimmed := strings.TrimLeft(name, ".")
	i := strings.LastIndex(trimmed, ".")
	if i < 0 {
		return name, ""
	}
	i += len(name) - len(trimmed)
	return name[:i], name[i:]
}

// SanitizeFilename keeps only the base name of an uploaded file and rejects
// anything that could address another directory.
func SanitizeFilename(name string) string {
	base := strings.TrimSpace(name)
	if base == "" {
		return ""
	}
	// "dir/" has an empty base name; filepath.Base would drop the slash
	if strings.HasSuffix(base, "/") || strings.HasSuffix(base, `\`) {
		return ""
	}
	base = filepath.Base(base)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	if strings.Contains(base, "..") || strings.ContainsAny(base, `/\`) {
		return ""
	}
	return base
}

func (s *Store) ExtAllowed(name string) bool {
	_, ext := splitExt(name)
	if ext == "" {
		return false
	}
	_, ok := s.allowed[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return ok
}

// SafeDestination returns <dir>/<name>, or "<root> (n)<ext>" with the first n
// that is not taken yet.
func (s *Store) SafeDestination(name string) string {
	candidate := filepath.Join(s.dir, name)
	if !pathExists(candidate) {
		return candidate
	}
	root, ext := splitExt(name)
	for i := 1; ; i++ {
		candidate = filepath.Join(s.dir, fmt.Sprintf("%s (%d)%s", root, i, ext))
		if !pathExists(candidate) {
			return candidate
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (s *Store) within(path string) bool {
	return strings.HasPrefix(path, s.dir+string(filepath.Separator))
}

// Save validates name and streams r into the upload directory. A partially
// written file is removed when anything fails.
func (s *Store) Save(name string, r io.Reader) (models.UploadedFile, error) {
	clean := SanitizeFilename(name)
	if clean == "" {
		return models.UploadedFile{}, ErrInvalidFilename
	}
	if !s.ExtAllowed(clean) {
		return models.UploadedFile{}, ErrExtNotAllowed
	}
	dest := s.SafeDestination(clean)
	if !s.within(dest) {
		return models.UploadedFile{}, ErrPathEscaped
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return models.UploadedFile{}, err
	}

	total, err := io.Copy(out, io.LimitReader(r, s.maxBytes+1))
	if err == nil && total > s.maxBytes {
		err = ErrTooLarge
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(dest, 0o644)
	}
	if err != nil {
		os.Remove(dest)
		return models.UploadedFile{}, err
	}

	info, err := os.Stat(dest)
	if err != nil {
		return models.UploadedFile{}, err
	}
	return models.UploadedFile{
		Name:       filepath.Base(dest),
		Size:       total,
		ModifiedAt: info.ModTime(),
	}, nil
}

// List returns the regular files in the upload directory, sorted by name.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		info, err := os.Stat(filepath.Join(s.dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// SanitizeDeleteName decodes a submitted file name and accepts only plain
// names. Hidden files are rejected except .htaccess.
func SanitizeDeleteName(raw string) string {
	name := strings.TrimSpace(unquotePlus(raw))
	if name == "" || strings.ContainsAny(name, `/\`) {
		return ""
	}
	if strings.HasPrefix(name, ".") && name != ".htaccess" {
		return ""
	}
	base := filepath.Base(name)
	if strings.Contains(base, "..") {
		return ""
	}
	return base
}

// unquotePlus turns '+' into a space and decodes valid %XX escapes. Invalid
// escapes such as the '%' in "100%.txt" are kept as they are.
func unquotePlus(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			v, _ := strconv.ParseUint(s[i+1:i+3], 16, 8)
			b.WriteByte(byte(v))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Delete removes each named file. Names that fail sanitising are reported
// as submitted.
func (s *Store) Delete(names []string) (deleted, failed []string) {
	deleted, failed = []string{}, []string{}
	for _, raw := range names {
		name := SanitizeDeleteName(raw)
		if name == "" {
			failed = append(failed, raw)
			continue
		}
		path := filepath.Join(s.dir, name)
		if !s.within(path) {
			failed = append(failed, name)
			continue
		}
		if info, err := os.Lstat(path); err != nil || info.IsDir() {
			failed = append(failed, name)
			continue
		}
		if err := os.Remove(path); err != nil {
			failed = append(failed, name)
			continue
		}
		deleted = append(deleted, name)
	}
	return deleted, failed
}

func HumanSize(n int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	f := float64(n)
	i := 0
	for f >= 1024 && i < len(units)-1 {
		f /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", f, units[i])
}
