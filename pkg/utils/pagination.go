package utils

import (
	"strconv"
	"strings"
)

// MaxPage mantém (page-1)*limit longe de estourar o OFFSET
const MaxPage = 1_000_000

// ParsePage lê o número da página. Valores ausentes, inválidos ou menores que 1 viram 1.
// Páginas acima de MaxPage são limitadas a MaxPage.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return min(page, MaxPage)
}

// Offset calcula o deslocamento da página. limit <= 0 significa sem paginação.
func Offset(page, limit int) int {
	if limit <= 0 || page <= 1 {
		return 0
	}
	return (min(page, MaxPage) - 1) * limit
}

// ParseLimit lê o tamanho da página limitado a [1, max].
// Ausente ou inválido usa defaultLimit.
func ParseLimit(raw string, defaultLimit, max int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return defaultLimit
	}

	return Clamp(limit, 1, max)
}

func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
