package repo

import (
	"EventKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// EventRepository — контракт доступа к Event для слоя сервиса.
type EventRepository interface {
	Create(ctx context.Context, ev *model.Event) error

	// GetByID — gorm.ErrRecordNotFound, если записи нет.
	GetByID(ctx context.Context, id int64) (*model.Event, error)

	// ListByDate возвращает все события по возрастанию даты.
	ListByDate(ctx context.Context) ([]model.Event, error)

	// Update применяет частичное обновление (колонка -> значение)
	// в транзакции и возвращает свежую запись.
	Update(ctx context.Context, id int64, updates map[string]any) (*model.Event, error)

	// Delete удаляет запись в транзакции; перед удалением строки вызывает
	// cleanup со списком картинок события. Удаление файлов best-effort и
	// не откатывается при ошибке коммита.
	Delete(ctx context.Context, id int64, cleanup func(images []string)) error
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepository создаёт реализацию репозитория для Event.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, ev *model.Event) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	var ev model.Event
	if err := r.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *eventRepo) ListByDate(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Order("date asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.Event, error) {
	var out model.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, id).Error; err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&out).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.First(&out, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *eventRepo) Delete(ctx context.Context, id int64, cleanup func(images []string)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ev model.Event
		if err := tx.First(&ev, id).Error; err != nil {
			return err
		}
		if cleanup != nil {
			cleanup(ev.Images)
		}
		return tx.Delete(&model.Event{}, id).Error
	})
}
