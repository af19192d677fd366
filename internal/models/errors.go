package models

import "errors"

// Классификация ошибок приложения. Сервисы возвращают эти значения
// (возможно обёрнутыми через fmt.Errorf с %w), обработчики сопоставляют
// их HTTP-статусам. Ни одна из ошибок не фатальна для процесса.
var (
	// ErrDuplicate — нарушение уникальности, пойманное до вставки
	// или ограничением базы данных.
	ErrDuplicate = errors.New("already exists")

	// ErrNotFound — цель update/delete/read отсутствует.
	ErrNotFound = errors.New("not found")

	// ErrMalformedIdentifier — числовой суффикс идентификатора
	// (MEM##, SUB##, PAID##) не разбирается.
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// ErrMissingPlan — платёж ссылается на неизвестный план.
	ErrMissingPlan = errors.New("plan not found")

	// ErrMissingDate — не указана дата платежа.
	ErrMissingDate = errors.New("payment date is required")

	// ErrInvalidCredentials — неизвестный пользователь или неверный пароль.
	// Оба случая дают одно и то же сообщение, чтобы не раскрывать
	// существование имени.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountInactive — учётная запись отключена. Проверяется только
	// после совпадения пароля.
	ErrAccountInactive = errors.New("account is inactive")
)
