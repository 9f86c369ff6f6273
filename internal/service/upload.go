package service

import (
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedImageExt — список разрешённых расширений картинок.
var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// UploadService принимает бинарные картинки, проверяет расширение,
// даёт файлу неколлизионное имя и пишет его в каталог загрузок.
type UploadService struct {
	dir    string
	logger *zap.SugaredLogger
}

func NewUploadService(dir string, logger *zap.SugaredLogger) *UploadService {
	return &UploadService{dir: dir, logger: logger}
}

// Allowed сообщает, разрешено ли расширение файла (без учёта регистра).
func Allowed(filename string) bool {
	return allowedImageExt[strings.ToLower(filepath.Ext(filename))]
}

// sanitizeFilename убирает из имени директории и небезопасные символы.
func sanitizeFilename(name string) string {
	base := filepath.Base(filepath.ToSlash(name))
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "file"
	}
	return base
}

// SaveImage сохраняет картинку под именем <128-битный hex-токен>_<очищенное имя>
// и возвращает относительный путь для хранения в Event.Images.
func (s *UploadService) SaveImage(src io.Reader, originalName string) (string, error) {
	if !Allowed(originalName) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(originalName))
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	u := uuid.New()
	name := hex.EncodeToString(u[:]) + "_" + sanitizeFilename(originalName)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// недописанный файл не оставляем
		_ = os.Remove(path)
		return "", err
	}
	return filepath.ToSlash(path), nil
}

// SaveMultipart сохраняет один файл из multipart-формы.
func (s *UploadService) SaveMultipart(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return s.SaveImage(f, fh.Filename)
}

// SaveAll сохраняет пачку файлов одного запроса: невалидные и не
// сохранившиеся молча пропускаются, остальные попадают в результат.
func (s *UploadService) SaveAll(files []*multipart.FileHeader) []string {
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		if fh == nil || fh.Filename == "" {
			continue
		}
		p, err := s.SaveMultipart(fh)
		if err != nil {
			s.logger.Warnw("SaveAll: skipping file", "name", fh.Filename, "error", err)
			continue
		}
		paths = append(paths, p)
	}
	return paths
}
