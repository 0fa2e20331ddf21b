package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBRL formata um valor no padrão de moeda brasileiro (R$ 1.234,50)
func FormatBRL(value float64) string {
	negative := value < 0
	cents := int64(math.Round(math.Abs(value) * 100))
	integer := strconv.FormatInt(cents/100, 10)

	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative && cents > 0 {
		sign = "-"
	}

	return fmt.Sprintf("R$ %s%s,%02d", sign, grouped.String(), cents%100)
}

// FormatPercent formata um percentual com duas casas decimais (120.00%)
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// ParseAmount interpreta valores monetários das planilhas: 1234.5, 1.234,50, 1,234.50 ou R$ 1.234,50.
// Com os dois separadores, o último é o decimal. Vírgula única seguida de três dígitos
// (1,200) é ambígua e retorna erro. Célula vazia vale zero.
func ParseAmount(value string) (float64, error) {
	raw := value
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "R$")
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "\u00a0", "")
	if value == "" {
		return 0, nil
	}

	lastDot := strings.LastIndex(value, ".")
	lastComma := strings.LastIndex(value, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		decimal, thousands := ",", "."
		if lastDot > lastComma {
			decimal, thousands = ".", ","
		}
		if strings.Count(value, decimal) > 1 {
			return 0, fmt.Errorf("valor inválido: %q", raw)
		}
		value = strings.ReplaceAll(value, thousands, "")
		value = strings.Replace(value, decimal, ".", 1)
	case lastComma >= 0:
		switch {
		case strings.Count(value, ",") > 1:
			value = strings.ReplaceAll(value, ",", "")
		case len(value)-lastComma-1 == 3:
			return 0, fmt.Errorf("valor ambíguo: %q", raw)
		default:
			value = strings.Replace(value, ",", ".", 1)
		}
	case strings.Count(value, ".") > 1:
		value = strings.ReplaceAll(value, ".", "")
	}

	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("valor inválido: %q", raw)
	}

	return amount, nil
}
