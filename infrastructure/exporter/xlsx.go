// Package exporter gera a planilha com os dados filtrados do dashboard
package exporter

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	SalesSheet            = "Vendas_Filtradas"
	SalespersonSalesSheet = "Vendedores_Filtrados"

	defaultSheet = "Sheet1"
	dateFormat   = "yyyy-mm-dd"
)

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Build cria um arquivo com uma aba por tabela, colunas na ordem da planilha de origem
func (e *XLSXExporter) Build(sales []domain.SalesRecord, salespersonSales []domain.SalespersonRecord) ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName(defaultSheet, SalesSheet); err != nil {
		return nil, errors.Wrap(err, "erro ao renomear a aba de vendas")
	}
	if _, err := wb.NewSheet(SalespersonSalesSheet); err != nil {
		return nil, errors.Wrap(err, "erro ao criar a aba de vendedores")
	}

	dateStyle, err := wb.NewStyle(&excelize.Style{CustomNumFmt: ptr(dateFormat)})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o estilo de data")
	}

	salesRows := make([][]any, 0, len(sales))
	for _, record := range sales {
		salesRows = append(salesRows, []any{record.Date, record.Store, record.Goal, record.Realized})
	}
	if err := writeSheet(wb, SalesSheet, domain.StoreSalesColumns, salesRows, dateStyle); err != nil {
		return nil, err
	}

	salespersonRows := make([][]any, 0, len(salespersonSales))
	for _, record := range salespersonSales {
		salespersonRows = append(salespersonRows, []any{record.Date, record.Store, record.Salesperson, record.Realized})
	}
	if err := writeSheet(wb, SalespersonSalesSheet, domain.SalespersonSalesColumns, salespersonRows, dateStyle); err != nil {
		return nil, err
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a planilha")
	}

	return buf.Bytes(), nil
}

func writeSheet(wb *excelize.File, sheet string, header []string, rows [][]any, dateStyle int) error {
	headerRow := make([]any, 0, len(header))
	for _, column := range header {
		headerRow = append(headerRow, column)
	}
	if err := wb.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return errors.Wrapf(err, "erro ao escrever o cabeçalho da aba %s", sheet)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "erro ao escrever a linha %d da aba %s", i+2, sheet)
		}
	}

	// A primeira coluna é sempre a data
	if len(rows) > 0 {
		last, err := excelize.CoordinatesToCellName(1, len(rows)+1)
		if err != nil {
			return err
		}
		if err := wb.SetCellStyle(sheet, "A2", last, dateStyle); err != nil {
			return errors.Wrapf(err, "erro ao formatar as datas da aba %s", sheet)
		}
	}

	return nil
}

func ptr[T any](v T) *T {
	return &v
}
