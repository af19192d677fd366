package models

// Статусы единицы инвентаря.
const (
	EquipmentAvailable    = "Available"
	EquipmentNotAvailable = "Not available"
	EquipmentDiscarded    = "Discarded"
)

// Equipment представляет позицию зального инвентаря.
// С другими сущностями не связана.
type Equipment struct {
	ID       int    `json:"id"`       // Внутренний идентификатор записи
	Name     string `json:"name"`     // Название
	Type     string `json:"type"`     // Тип (кардио, силовой и т.д.)
	Quantity int    `json:"quantity"` // Количество (>= 0)
	Status   string `json:"status"`   // Статус: Available, Not available или Discarded
}

// DummyEquipment используется для приёма данных инвентаря из JSON-запроса.
// Статус содержит пробел ("Not available"), поэтому допустимые значения
// проверяются в сервисе, а не тегом oneof.
type DummyEquipment struct {
	Name     string `json:"name" validate:"required"`   // Название
	Type     string `json:"type" validate:"required"`   // Тип
	Quantity int    `json:"quantity" validate:"gte=0"`  // Количество
	Status   string `json:"status" validate:"required"` // Статус
}

// ValidEquipmentStatus сообщает, входит ли статус в число допустимых.
func ValidEquipmentStatus(status string) bool {
	switch status {
	case EquipmentAvailable, EquipmentNotAvailable, EquipmentDiscarded:
		return true
	}
	return false
}
