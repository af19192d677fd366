package models

import "time"

// Payment представляет запись об оплате абонемента.
// Запись неизменяема после создания: маршрута редактирования нет.
// ExpiryDate выводится из даты платежа и срока выбранного плана.
type Payment struct {
	ID            int       `json:"id"`             // Внутренний идентификатор записи
	TransactionID string    `json:"transaction_id"` // Публичный идентификатор вида PAID01, PAID02...
	UserID        int       `json:"user_id"`        // Ссылка на пользователя
	PlanID        int       `json:"plan_id"`        // Ссылка на план
	Amount        float64   `json:"amount"`         // Сумма платежа
	Date          time.Time `json:"date"`           // Дата платежа
	ExpiryDate    time.Time `json:"expiry_date"`    // Дата окончания действия абонемента
}

// DummyPayment используется для приёма данных платежа из JSON-запроса.
// Дата приходит строкой в формате 2006-01-02.
type DummyPayment struct {
	UserID int     `json:"user_id" validate:"required"`                  // Пользователь
	PlanID int     `json:"plan_id" validate:"required"`                  // План
	Amount float64 `json:"amount" validate:"gte=0"`                      // Сумма
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"` // Дата платежа
}

// PaymentInfo — денормализованная запись платежа для отображения
// в истории платежей пользователя.
type PaymentInfo struct {
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	ExpiryDate    time.Time `json:"expiry_date"`
	PlanName      string    `json:"plan_name"`
	PlanID        string    `json:"plan_id"`
}
