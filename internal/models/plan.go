package models

// Plan представляет тарифный план абонемента.
// Duration задаёт срок действия в целых месяцах и управляет вычислением
// даты окончания для каждого платежа по этому плану.
type Plan struct {
	ID       int     `json:"id"`       // Внутренний идентификатор записи
	PlanID   string  `json:"plan_id"`  // Публичный идентификатор вида SUB01, SUB02...
	Name     string  `json:"name"`     // Название плана
	Duration int     `json:"duration"` // Срок действия в месяцах (>= 1)
	Price    float64 `json:"price"`    // Цена (>= 0)
	Status   string  `json:"status"`   // Статус: active или inactive
}

// DummyPlan используется для приёма данных плана из JSON-запроса.
type DummyPlan struct {
	Name     string  `json:"name" validate:"required"`                         // Название плана
	Duration int     `json:"duration" validate:"required,gte=1"`               // Срок в месяцах
	Price    float64 `json:"price" validate:"gte=0"`                           // Цена
	Status   string  `json:"status" validate:"required,oneof=active inactive"` // Статус
}
