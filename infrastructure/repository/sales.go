// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	storeSalesTable       = "store_sales"
	salespersonSalesTable = "salesperson_sales"

	// Linhas por INSERT; o PostgreSQL aceita no máximo 65535 parâmetros por comando
	insertBatchSize = 10000
)

// Schema cria as tabelas espelhando as abas LOJAS e VENDEDORES
const Schema = `
CREATE TABLE IF NOT EXISTS store_sales (
	id       BIGSERIAL PRIMARY KEY,
	date     DATE NOT NULL,
	store    TEXT NOT NULL,
	goal     NUMERIC(14, 2) NOT NULL DEFAULT 0,
	realized NUMERIC(14, 2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS salesperson_sales (
	id          BIGSERIAL PRIMARY KEY,
	date        DATE NOT NULL,
	store       TEXT NOT NULL,
	salesperson TEXT NOT NULL,
	realized    NUMERIC(14, 2) NOT NULL DEFAULT 0
);
`

type SalesRepository interface {
	LoadDatasets(ctx context.Context) (*domain.Datasets, error)
	ReplaceDatasets(ctx context.Context, datasets *domain.Datasets) error
	EnsureSchema(ctx context.Context) error
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("erro ao criar as tabelas de vendas: %w", err)
	}
	return nil
}

// LoadDatasets lê as duas tabelas na ordem de inserção, como as linhas da planilha
func (r *salesRepository) LoadDatasets(ctx context.Context) (*domain.Datasets, error) {
	sales, err := r.listStoreSales(ctx)
	if err != nil {
		return nil, err
	}

	salespersonSales, err := r.listSalespersonSales(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Datasets{
		Sales:            sales,
		SalespersonSales: salespersonSales,
	}, nil
}

func (r *salesRepository) listStoreSales(ctx context.Context) ([]domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select("date", "store", "goal", "realized").
		From(storeSalesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var record domain.SalesRecord
		if err := rows.Scan(&record.Date, &record.Store, &record.Goal, &record.Realized); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda da loja: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *salesRepository) listSalespersonSales(ctx context.Context) ([]domain.SalespersonRecord, error) {
	query, args, err := squirrel.
		Select("date", "store", "salesperson", "realized").
		From(salespersonSalesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalespersonRecord, 0)
	for rows.Next() {
		var record domain.SalespersonRecord
		if err := rows.Scan(&record.Date, &record.Store, &record.Salesperson, &record.Realized); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda do vendedor: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// ReplaceDatasets substitui todo o conteúdo das duas tabelas em uma única transação
func (r *salesRepository) ReplaceDatasets(ctx context.Context, datasets *domain.Datasets) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{storeSalesTable, salespersonSalesTable} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("erro ao limpar a tabela %s: %w", table, err)
			}
		}

		inserts := append(
			storeSalesInserts(datasets.Sales, insertBatchSize),
			salespersonSalesInserts(datasets.SalespersonSales, insertBatchSize)...,
		)
		for _, query := range inserts {
			if err := execInsert(ctx, tx, query); err != nil {
				return err
			}
		}

		return nil
	})
}

func storeSalesInserts(records []domain.SalesRecord, batchSize int) []squirrel.InsertBuilder {
	return batchInserts(storeSalesTable, []string{"date", "store", "goal", "realized"}, records, batchSize,
		func(record domain.SalesRecord) []any {
			return []any{record.Date, record.Store, record.Goal, record.Realized}
		})
}

func salespersonSalesInserts(records []domain.SalespersonRecord, batchSize int) []squirrel.InsertBuilder {
	return batchInserts(salespersonSalesTable, []string{"date", "store", "salesperson", "realized"}, records, batchSize,
		func(record domain.SalespersonRecord) []any {
			return []any{record.Date, record.Store, record.Salesperson, record.Realized}
		})
}

// batchInserts divide os registros em comandos INSERT de até batchSize linhas
func batchInserts[T any](table string, columns []string, records []T, batchSize int, values func(T) []any) []squirrel.InsertBuilder {
	inserts := make([]squirrel.InsertBuilder, 0, (len(records)+batchSize-1)/batchSize)
	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))

		query := squirrel.
			Insert(table).
			Columns(columns...).
			PlaceholderFormat(squirrel.Dollar)
		for _, record := range records[start:end] {
			query = query.Values(values(record)...)
		}
		inserts = append(inserts, query)
	}
	return inserts
}

func execInsert(ctx context.Context, tx *sql.Tx, query squirrel.InsertBuilder) error {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
