package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList — многозначное текстовое поле (теги, картинки).
// В колонке лежит JSON-массив, поэтому значения могут содержать
// любые символы — никакого разделителя и коллизий на нём.
type StringList []string

// Value сериализует список в JSON для записи в колонку.
// Пустой и nil список пишутся как "[]".
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan читает колонку обратно; пустая строка и NULL дают пустой список.
func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("stringlist: unsupported column type %T", src)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("stringlist: %w", err)
	}
	*l = out
	return nil
}
