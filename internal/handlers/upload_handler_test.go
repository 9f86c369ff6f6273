package handlers_test

import (
	"EventKeeper/internal/model"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// multipartBody собирает тело формы: files — имя файла -> содержимое.
func multipartBody(t *testing.T, field string, files map[string]string, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range values {
		assert.NoError(t, mw.WriteField(k, v))
	}
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		assert.NoError(t, err)
		_, _ = fw.Write([]byte(content))
	}
	assert.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router := newTestRouter(t, new(mockUserRepo), new(mockEventRepo))

		body, ctype := multipartBody(t, "image", map[string]string{"avatar.png": "png-bytes"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
		req.Header.Set("Content-Type", ctype)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Success  bool   `json:"success"`
			ImageURL string `json:"imageUrl"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.True(t, strings.HasPrefix(resp.ImageURL, "/"), "imageUrl must be a rooted path: %q", resp.ImageURL)
		assert.True(t, strings.HasSuffix(resp.ImageURL, "_avatar.png"), "imageUrl must keep the original name: %q", resp.ImageURL)

		// файл реально записан
		data, err := os.ReadFile(strings.TrimPrefix(resp.ImageURL, "/"))
		assert.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("disallowed extension", func(t *testing.T) {
		router := newTestRouter(t, new(mockUserRepo), new(mockEventRepo))

		body, ctype := multipartBody(t, "image", map[string]string{"malware.exe": "MZ"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
		req.Header.Set("Content-Type", ctype)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing file field", func(t *testing.T) {
		router := newTestRouter(t, new(mockUserRepo), new(mockEventRepo))

		body, ctype := multipartBody(t, "other", map[string]string{"x.png": "y"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
		req.Header.Set("Content-Type", ctype)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateEventMultipart(t *testing.T) {
	t.Run("saves valid images and skips invalid", func(t *testing.T) {
		me := new(mockEventRepo)
		mu := new(mockUserRepo)
		router := newTestRouter(t, mu, me)

		mu.On("GetByID", mock.Anything, int64(1)).Return(&model.User{ID: 1}, nil).Once()
		var created *model.Event
		me.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Event)
			created.ID = 21
		}).Return(nil).Once()

		body, ctype := multipartBody(t, "images",
			map[string]string{"one.png": "1", "two.exe": "2"},
			map[string]string{
				"title":        "fair",
				"content":      "rich text",
				"date":         "2023-09-09",
				"location":     "Bologna",
				"tags":         "food, music",
				"is_important": "true",
				"created_by":   "1",
			})
		req := httptest.NewRequest(http.MethodPost, "/api/events", body)
		req.Header.Set("Content-Type", ctype)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		if assert.NotNil(t, created) {
			assert.Equal(t, "fair", created.Title)
			assert.True(t, created.IsImportant)
			assert.Equal(t, model.StringList{"food", "music"}, created.Tags)
			// .exe пропущен, .png сохранён и существует на диске
			if assert.Len(t, created.Images, 1) {
				assert.True(t, strings.HasSuffix(created.Images[0], "_one.png"))
				_, err := os.Stat(created.Images[0])
				assert.NoError(t, err)
			}
		}
		me.AssertExpectations(t)
	})

	t.Run("unknown author", func(t *testing.T) {
		me := new(mockEventRepo)
		mu := new(mockUserRepo)
		router := newTestRouter(t, mu, me)

		mu.On("GetByID", mock.Anything, int64(42)).Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		body, ctype := multipartBody(t, "images", nil, map[string]string{
			"title":      "t",
			"content":    "c",
			"date":       "2023-09-09",
			"created_by": "42",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/events", body)
		req.Header.Set("Content-Type", ctype)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		me.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
