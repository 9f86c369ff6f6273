package service

import (
	"EventKeeper/internal/model"
	"EventKeeper/internal/repo"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventService — бизнес-логика событий: создание, выборка,
// частичное обновление и удаление вместе с файлами картинок.
type EventService struct {
	events repo.EventRepository
	users  repo.UserRepository
	logger *zap.SugaredLogger
}

func NewEventService(events repo.EventRepository, users repo.UserRepository, logger *zap.SugaredLogger) *EventService {
	return &EventService{events: events, users: users, logger: logger}
}

// CreateEventRequest — входные поля создания события.
type CreateEventRequest struct {
	Title       string
	Content     string
	Date        string // YYYY-MM-DD
	Location    string
	Latitude    *float64
	Longitude   *float64
	Tags        []string
	IsImportant bool
	Images      []string
}

// EventPatch — частичное обновление: nil-поле означает «не менять».
// Набор полей фиксирован, произвольные ключи сюда не попадают.
type EventPatch struct {
	Title       *string
	Content     *string
	Date        *string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	Tags        *[]string
	IsImportant *bool
	Images      *[]string
}

// Create создаёт событие. Автор обязан существовать; молчаливой подстановки
// дефолтного автора нет.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest, authorID int64) (*model.Event, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	date, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	ev := &model.Event{
		Title:       req.Title,
		Content:     req.Content,
		Date:        date,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Tags:        model.StringList(req.Tags),
		IsImportant: req.IsImportant,
		Images:      model.StringList(req.Images),
		CreatedBy:   author.ID,
		UpdatedBy:   author.ID,
	}
	if ev.Tags == nil {
		ev.Tags = model.StringList{}
	}
	if ev.Images == nil {
		ev.Images = model.StringList{}
	}

	if err := s.events.Create(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// Get возвращает событие целиком.
func (s *EventService) Get(ctx context.Context, id int64) (*model.Event, error) {
	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}

// List возвращает все события по возрастанию даты.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.events.ListByDate(ctx)
}

// Update применяет частичное обновление: меняются только заданные поля,
// updated_by проставляется всегда.
func (s *EventService) Update(ctx context.Context, id int64, patch EventPatch, updaterID int64) (*model.Event, error) {
	// существование события проверяем до валидации, чтобы на
	// неизвестный id отвечать not found, а не ошибкой валидации
	if _, err := s.events.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updater, err := s.users.GetByID(ctx, updaterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	updates := map[string]any{}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		if *patch.Content == "" {
			return nil, fmt.Errorf("%w: content must not be empty", ErrValidation)
		}
		updates["content"] = *patch.Content
	}
	if patch.Date != nil {
		date, err := time.Parse(model.DateLayout, *patch.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
		}
		updates["date"] = date
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.Latitude != nil {
		updates["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		updates["longitude"] = *patch.Longitude
	}
	if patch.Tags != nil {
		updates["tags"] = model.StringList(*patch.Tags)
	}
	if patch.IsImportant != nil {
		updates["is_important"] = *patch.IsImportant
	}
	if patch.Images != nil {
		updates["images"] = model.StringList(*patch.Images)
	}
	updates["updated_by"] = updater.ID

	ev, err := s.events.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}

// Delete удаляет событие и best-effort убирает файлы его картинок:
// отсутствующие пути молча пропускаются, ошибка удаления файла не
// прерывает удаление записи.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	err := s.events.Delete(ctx, id, func(images []string) {
		for _, p := range images {
			if p == "" {
				continue
			}
			if _, statErr := os.Stat(p); statErr != nil {
				continue
			}
			if rmErr := os.Remove(p); rmErr != nil {
				s.logger.Warnw("Delete: failed to remove image file", "path", p, "error", rmErr)
			}
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
