package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func salesRecords(n int) []domain.SalesRecord {
	records := make([]domain.SalesRecord, n)
	for i := range records {
		records[i] = domain.SalesRecord{
			Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i%365),
			Store:    fmt.Sprintf("Loja %d", i%20),
			Goal:     1000,
			Realized: float64(i),
		}
	}
	return records
}

func TestStoreSalesInserts_Batches(t *testing.T) {
	tests := []struct {
		name      string
		records   int
		batchSize int
		want      []int
	}{
		{name: "sem registros", records: 0, batchSize: 3, want: []int{}},
		{name: "lote único", records: 3, batchSize: 3, want: []int{3}},
		{name: "último lote parcial", records: 7, batchSize: 3, want: []int{3, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inserts := storeSalesInserts(salesRecords(tt.records), tt.batchSize)

			rows := make([]int, 0, len(inserts))
			for _, query := range inserts {
				sql, args, err := query.ToSql()
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(sql, "INSERT INTO store_sales (date,store,goal,realized) VALUES"))
				rows = append(rows, len(args)/4)
			}
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestSalespersonSalesInserts_RespectsParameterLimit(t *testing.T) {
	records := make([]domain.SalespersonRecord, 2*insertBatchSize+500)
	for i := range records {
		records[i] = domain.SalespersonRecord{Store: "Loja Centro", Salesperson: fmt.Sprintf("Vendedor %d", i%15), Realized: 10}
	}

	inserts := salespersonSalesInserts(records, insertBatchSize)
	require.Len(t, inserts, 3)

	total := 0
	for _, query := range inserts {
		sql, args, err := query.ToSql()
		require.NoError(t, err)
		assert.LessOrEqual(t, len(args), 65535)
		assert.Contains(t, sql, fmt.Sprintf("$%d", len(args)))
		total += len(args) / 4
	}
	assert.Equal(t, len(records), total)
}
