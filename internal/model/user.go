package model

import "time"

// User — учётная запись. Password хранит только bcrypt-хеш,
// открытый пароль в БД не попадает никогда.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Login    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	CreatedAt time.Time  `gorm:"autoCreateTime"`
	LastLogin *time.Time // nil до первого успешного входа
	IsActive  bool       `gorm:"not null;default:true"`
}
