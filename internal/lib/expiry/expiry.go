// Package expiry считает дату окончания действия абонемента
// и границы календарного месяца для выборки напоминаний.
package expiry

import "time"

// Add возвращает дату платежа, сдвинутую на months календарных месяцев.
//
// Политика переполнения: значение НЕ прижимается к концу месяца,
// переполнение нормализуется в следующий месяц по правилам time.AddDate
// (31 января + 1 месяц = 2 или 3 марта). Поведение совпадает
// с Date#setMonth в браузере и закреплено тестами.
func Add(paymentDate time.Time, months int) time.Time {
	return paymentDate.AddDate(0, months, 0)
}

// MonthBounds возвращает первый и последний день календарного месяца,
// в который попадает today. Обе границы включительны.
func MonthBounds(today time.Time) (first, last time.Time) {
	first = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	last = first.AddDate(0, 1, -1)
	return first, last
}
