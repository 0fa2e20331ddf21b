package gsheets

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheets/gsheetsclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

func toDatasets(storeSheet, salespersonSheet *gsheetsclient.Worksheet) (*domain.Datasets, error) {
	sales, err := parseSalesRecords(storeSheet)
	if err != nil {
		return nil, err
	}

	salespersonSales, err := parseSalespersonRecords(salespersonSheet)
	if err != nil {
		return nil, err
	}

	return &domain.Datasets{
		Sales:            sales,
		SalespersonSales: salespersonSales,
	}, nil
}

// parseSalesRecords interpreta as colunas Data, Loja, Meta e Venda Realizada
func parseSalesRecords(worksheet *gsheetsclient.Worksheet) ([]domain.SalesRecord, error) {
	records := make([]domain.SalesRecord, 0, len(worksheet.Rows))
	for i, row := range worksheet.Rows {
		date, err := utils.ParseSheetDate(row[0])
		if err != nil {
			return nil, rowError(worksheet.Name, i, err)
		}

		goal, err := utils.ParseAmount(row[2])
		if err != nil {
			return nil, rowError(worksheet.Name, i, err)
		}

		realized, err := utils.ParseAmount(row[3])
		if err != nil {
			return nil, rowError(worksheet.Name, i, err)
		}

		records = append(records, domain.SalesRecord{
			Date:     date,
			Store:    row[1],
			Goal:     goal,
			Realized: realized,
		})
	}
	return records, nil
}

// parseSalespersonRecords interpreta as colunas Data, Loja, Vendedor e Venda Realizada
func parseSalespersonRecords(worksheet *gsheetsclient.Worksheet) ([]domain.SalespersonRecord, error) {
	records := make([]domain.SalespersonRecord, 0, len(worksheet.Rows))
	for i, row := range worksheet.Rows {
		date, err := utils.ParseSheetDate(row[0])
		if err != nil {
			return nil, rowError(worksheet.Name, i, err)
		}

		realized, err := utils.ParseAmount(row[3])
		if err != nil {
			return nil, rowError(worksheet.Name, i, err)
		}

		records = append(records, domain.SalespersonRecord{
			Date:        date,
			Store:       row[1],
			Salesperson: row[2],
			Realized:    realized,
		})
	}
	return records, nil
}

// rowError informa a linha como aparece na planilha (cabeçalho na linha 1)
func rowError(sheet string, index int, err error) error {
	return errors.Wrapf(err, "aba %s, linha %d", sheet, index+2)
}
