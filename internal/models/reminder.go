package models

import "time"

// FieldMissing — значение-заполнитель для отсутствующих присоединённых полей
// напоминания (например, платёж ссылается на удалённого пользователя).
const FieldMissing = "N/A"

// Reminder — денормализованная проекция платежа, срок действия которого
// истекает в текущем календарном месяце. Используется страницей уведомлений
// и рассыльщиком писем.
type Reminder struct {
	MemberID      string    `json:"member_id"`      // Членский номер или N/A
	Username      string    `json:"username"`       // Имя пользователя или N/A
	Email         string    `json:"email"`          // Почта для рассылки или N/A
	PlanName      string    `json:"plan_name"`      // Название плана или N/A
	Amount        float64   `json:"amount"`         // Последняя оплаченная сумма
	PaymentDate   time.Time `json:"payment_date"`   // Дата последнего платежа
	TransactionID string    `json:"transaction_id"` // Идентификатор транзакции
	ExpiryDate    time.Time `json:"expiry_date"`    // Дата окончания абонемента
}
