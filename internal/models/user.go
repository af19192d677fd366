// Package models содержит доменные структуры приложения (пользователи, тарифы,
// инвентарь, платежи), а также вспомогательные типы для приёма данных
// из JSON-запросов до их валидации.
package models

// Роли пользователей системы.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// Статусы учётной записи.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User представляет зарегистрированного пользователя системы.
// Name хранится в нижнем регистре и уникален без учёта регистра.
type User struct {
	ID           int    `json:"id"`            // Внутренний идентификатор записи
	Name         string `json:"name"`          // Имя пользователя (уникальное, нижний регистр)
	Email        string `json:"email"`         // Электронная почта (уникальная)
	MobileNumber string `json:"mobile_number"` // Номер телефона (уникальный)
	PasswordHash string `json:"-"`             // Bcrypt-хэш пароля, наружу не отдаётся
	Role         string `json:"role"`          // Роль: customer, staff или admin
	Status       string `json:"status"`        // Статус: active или inactive
	MemberID     string `json:"member_id"`     // Членский номер вида MEM01, MEM02...
	Address      string `json:"address"`       // Адрес
}

// DummyUser используется для приёма данных нового или изменяемого
// пользователя из JSON-запроса.
type DummyUser struct {
	Name         string `json:"name" validate:"required"`                            // Имя пользователя
	Email        string `json:"email" validate:"required,email"`                     // Электронная почта
	MobileNumber string `json:"mobile_number" validate:"required"`                   // Номер телефона
	Password     string `json:"password,omitempty" validate:"omitempty"`             // Пароль (при создании обязателен, проверяется в сервисе)
	Role         string `json:"role" validate:"required,oneof=customer staff admin"` // Роль
	Status       string `json:"status" validate:"required,oneof=active inactive"`    // Статус
	Address      string `json:"address,omitempty" validate:"omitempty"`              // Адрес
}

// DummyCredentials используется для приёма данных входа и регистрации.
type DummyCredentials struct {
	Username string `json:"username" validate:"required"` // Имя пользователя
	Password string `json:"password" validate:"required"` // Пароль
}
