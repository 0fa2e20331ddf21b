package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos nas planilhas, na ordem em que são tentados
var sheetDateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/2006",
	"02/01/2006 15:04:05",
	"2/1/2006",
	"02-01-2006",
}

// ParseDate interpreta uma data no formato yyyy-mm-dd. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseSheetDate interpreta as datas vindas das planilhas, aceitando o formato ISO e o brasileiro
func ParseSheetDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range sheetDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", value)
}
