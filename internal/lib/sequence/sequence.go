// Package sequence выводит очередной человекочитаемый идентификатор
// сущности: членский номер MEM01, план SUB01, транзакцию PAID01 и так далее.
//
// Идентификатор строится из последнего выданного: префикс отбрасывается,
// числовой хвост разбирается, увеличивается на единицу и дополняется нулями
// минимум до двух знаков. После 99 дополнение не применяется (MEM100).
package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironman-fitness/gym-manager/internal/models"
)

// Префиксы идентификаторов по классам сущностей.
const (
	PrefixMember      = "MEM"
	PrefixPlan        = "SUB"
	PrefixTransaction = "PAID"
)

// suffixWidth — минимальная ширина числового суффикса.
const suffixWidth = 2

// Next возвращает идентификатор, следующий за last для данного префикса.
// Пустой last означает отсутствие записей: возвращается PREFIX01.
// Если last не начинается с префикса или его хвост не является числом,
// возвращается models.ErrMalformedIdentifier.
func Next(prefix, last string) (string, error) {
	const op = "sequence.Next"
	if last == "" {
		return fmt.Sprintf("%s%0*d", prefix, suffixWidth, 1), nil
	}
	if !strings.HasPrefix(last, prefix) {
		return "", fmt.Errorf("%s: %q has no prefix %q: %w", op, last, prefix, models.ErrMalformedIdentifier)
	}
	suffix := strings.TrimPrefix(last, prefix)
	// Atoi принимает знак, поэтому хвост проверяется на цифры отдельно:
	// MEM-5 — испорченный идентификатор, а не номер минус пять.
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%s: %q: %w", op, last, models.ErrMalformedIdentifier)
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return "", fmt.Errorf("%s: %q: %w", op, last, models.ErrMalformedIdentifier)
	}
	return fmt.Sprintf("%s%0*d", prefix, suffixWidth, n+1), nil
}
