package model

import "time"

// Event — запись о событии: заголовок, текст, календарная дата,
// опциональные координаты, теги и список картинок.
type Event struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Title   string `gorm:"size:200;not null"`
	Content string `gorm:"type:text;not null"`

	// Date — календарная дата события (время суток не несёт смысла,
	// на проводе ходит как YYYY-MM-DD).
	Date time.Time `gorm:"not null;index"`

	Location  string `gorm:"size:200"`
	Latitude  *float64
	Longitude *float64

	Tags        StringList `gorm:"type:text"`
	IsImportant bool       `gorm:"not null;default:false"`

	// Images — относительные пути файлов в каталоге загрузок,
	// порядок значим.
	Images StringList `gorm:"type:text"`

	// Ссылки на users.id
	CreatedBy int64 `gorm:"not null;index"`
	UpdatedBy int64 `gorm:"not null"`

	Creator *User `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// DateLayout — формат даты события во внешнем API.
const DateLayout = "2006-01-02"
