package handlers

import (
	"EventKeeper/internal/model"
	"EventKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// UserDTO — публичное представление пользователя; хеш пароля наружу не уходит.
type UserDTO struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	CreatedAt string  `json:"created_at"`
	LastLogin *string `json:"last_login"`
}

// EventDTO — представление события. Content заполняется только в детальном
// виде; в списке поле отсутствует.
type EventDTO struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Content     *string  `json:"content,omitempty"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Tags        []string `json:"tags"`
	IsImportant bool     `json:"is_important"`
	Images      []string `json:"images"`
	CreatedBy   int64    `json:"created_by"`
	UpdatedBy   int64    `json:"updated_by"`
}

func userToDTO(u *model.User) UserDTO {
	dto := UserDTO{
		ID:        u.ID,
		Username:  u.Login,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		s := u.LastLogin.UTC().Format(time.RFC3339)
		dto.LastLogin = &s
	}
	return dto
}

func eventToDTO(ev *model.Event, includeContent bool) EventDTO {
	dto := EventDTO{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        ev.Date.Format(model.DateLayout),
		Location:    ev.Location,
		Latitude:    ev.Latitude,
		Longitude:   ev.Longitude,
		Tags:        ev.Tags,
		IsImportant: ev.IsImportant,
		Images:      ev.Images,
		CreatedBy:   ev.CreatedBy,
		UpdatedBy:   ev.UpdatedBy,
	}
	if dto.Tags == nil {
		dto.Tags = []string{}
	}
	if dto.Images == nil {
		dto.Images = []string{}
	}
	if includeContent {
		content := ev.Content
		dto.Content = &content
	}
	return dto
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отображает вид ошибки сервиса в HTTP-код со стабильным телом.
// Текст неожиданных внутренних ошибок наружу не уходит.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid credentials"})
	case errors.Is(err, service.ErrUnknownUser):
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "unknown user"})
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrUnsupportedFormat):
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "internal error"})
	}
}
