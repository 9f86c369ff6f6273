package service

import "errors"

// Стабильные виды ошибок сервисного слоя. Хендлеры отображают их в
// HTTP-коды; текст внутренних ошибок наружу не уходит.
var (
	// ErrValidation — отсутствующее или некорректное обязательное поле.
	ErrValidation = errors.New("validation error")

	// ErrUnknownUser — created_by/updated_by ссылается на несуществующего пользователя.
	ErrUnknownUser = errors.New("unknown user")

	// ErrNotFound — сущности с таким id нет.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials — единый ответ на неизвестный логин и на
	// неверный пароль, чтобы не подсказывать перебор логинов.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnsupportedFormat — расширение файла вне списка разрешённых.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
