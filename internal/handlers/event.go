package handlers

import (
	"EventKeeper/internal/config"
	"EventKeeper/internal/middleware"
	"EventKeeper/internal/service"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EventHandler — CRUD по событиям, включая multipart-создание с картинками.
type EventHandler struct {
	Events  *service.EventService
	Uploads *service.UploadService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewEventHandler создаёт хендлер событий
func NewEventHandler(events *service.EventService, uploads *service.UploadService, logger *zap.SugaredLogger, cfg *config.Config) *EventHandler {
	return &EventHandler{Events: events, Uploads: uploads, Logger: logger, Config: cfg}
}

type createEventRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Tags        []string `json:"tags"`
	IsImportant bool     `json:"is_important"`
	Images      []string `json:"images"`
	CreatedBy   *int64   `json:"created_by"`
}

type updateEventRequest struct {
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Date        *string   `json:"date"`
	Location    *string   `json:"location"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Tags        *[]string `json:"tags"`
	IsImportant *bool     `json:"is_important"`
	Images      *[]string `json:"images"`
	UpdatedBy   *int64    `json:"updated_by"`
}

// eventID достаёт {id} из пути.
func eventID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// resolveActor выбирает id действующего пользователя: явное поле запроса,
// иначе аутентифицированный пользователь из cookie. Молчаливого дефолта нет.
func resolveActor(r *http.Request, explicit *int64) (int64, bool) {
	if explicit != nil {
		return *explicit, true
	}
	return middleware.GetUserIDFromContext(r.Context())
}

// List — GET /events, сводные представления по возрастанию даты.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List events: service error", "error", err)
		writeError(w, err)
		return
	}

	out := make([]EventDTO, 0, len(events))
	for i := range events {
		out = append(out, eventToDTO(&events[i], false))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create — POST /events (JSON). 201 + событие.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create event: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid request"})
		return
	}

	authorID, ok := resolveActor(r, req.CreatedBy)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "created_by is required"})
		return
	}

	ev, err := h.Events.Create(r.Context(), service.CreateEventRequest{
		Title:       req.Title,
		Content:     req.Content,
		Date:        req.Date,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Tags:        req.Tags,
		IsImportant: req.IsImportant,
		Images:      req.Images,
	}, authorID)
	if err != nil {
		h.Logger.Warnw("Create event: rejected", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "event": eventToDTO(ev, true)})
}

// Get — GET /events/{id}, детальное представление с content.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "not found"})
		return
	}

	ev, err := h.Events.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eventToDTO(ev, true))
}

// Update — PUT /events/{id}, частичное обновление.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "not found"})
		return
	}

	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update event: invalid request body", "id", id, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid request"})
		return
	}

	updaterID, okActor := resolveActor(r, req.UpdatedBy)
	if !okActor {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "updated_by is required"})
		return
	}

	ev, err := h.Events.Update(r.Context(), id, service.EventPatch{
		Title:       req.Title,
		Content:     req.Content,
		Date:        req.Date,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Tags:        req.Tags,
		IsImportant: req.IsImportant,
		Images:      req.Images,
	}, updaterID)
	if err != nil {
		h.Logger.Warnw("Update event: rejected", "id", id, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "event": eventToDTO(ev, false)})
}

// Delete — DELETE /events/{id}: сперва файлы картинок, затем запись.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "not found"})
		return
	}

	if err := h.Events.Delete(r.Context(), id); err != nil {
		h.Logger.Warnw("Delete event: rejected", "id", id, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "event deleted"})
}

// CreateMultipart — POST /api/events: поля формы + файлы images.
// Невалидные файлы в пачке молча пропускаются.
func (h *EventHandler) CreateMultipart(w http.ResponseWriter, r *http.Request) {
	maxBody := int64(h.Config.MaxUploadMB)<<20 + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("CreateMultipart: invalid multipart form", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid multipart form"})
		return
	}

	var explicitAuthor *int64
	if v := r.FormValue("created_by"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "created_by must be a number"})
			return
		}
		explicitAuthor = &id
	}
	authorID, ok := resolveActor(r, explicitAuthor)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "created_by is required"})
		return
	}

	req := service.CreateEventRequest{
		Title:       r.FormValue("title"),
		Content:     r.FormValue("content"),
		Date:        r.FormValue("date"),
		Location:    r.FormValue("location"),
		Tags:        splitFormList(r.FormValue("tags")),
		IsImportant: r.FormValue("is_important") == "true",
	}
	if v := r.FormValue("latitude"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "latitude must be a number"})
			return
		}
		req.Latitude = &f
	}
	if v := r.FormValue("longitude"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "longitude must be a number"})
			return
		}
		req.Longitude = &f
	}

	if r.MultipartForm != nil {
		req.Images = h.Uploads.SaveAll(r.MultipartForm.File["images"])
	}

	ev, err := h.Events.Create(r.Context(), req, authorID)
	if err != nil {
		h.Logger.Warnw("CreateMultipart: rejected", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "event": eventToDTO(ev, true)})
}

// splitFormList разбирает "a, b, c" из поля формы в список без пустых элементов.
func splitFormList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
