package repo

import (
	"EventKeeper/internal/model"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB открывает соединение и накатывает миграции моделей.
// Диалект выбирается по DSN: строки вида postgres://... или host=...
// идут в Postgres, всё остальное трактуется как путь к файлу SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dial = postgres.Open(dsn)
	} else {
		dial = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Event{}); err != nil {
		return nil, err
	}
	return db, nil
}
