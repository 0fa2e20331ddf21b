// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Cabeçalhos das planilhas de origem, na ordem original das colunas
var (
	StoreSalesColumns       = []string{"Data", "Loja", "Meta", "Venda Realizada"}
	SalespersonSalesColumns = []string{"Data", "Loja", "Vendedor", "Venda Realizada"}
)

// SalesRecord é uma linha da tabela de vendas por loja
type SalesRecord struct {
	Date     time.Time `json:"date"`
	Store    string    `json:"store"`
	Goal     float64   `json:"goal"`
	Realized float64   `json:"realized"`
}

// GoalMet indica se a venda do dia atingiu a meta
func (r SalesRecord) GoalMet() bool {
	return r.Realized >= r.Goal
}

// SalespersonRecord é uma linha da tabela de vendas por vendedor
type SalespersonRecord struct {
	Date        time.Time `json:"date"`
	Store       string    `json:"store"`
	Salesperson string    `json:"salesperson"`
	Realized    float64   `json:"realized"`
}

// Datasets agrupa as duas tabelas lidas da fonte de dados
type Datasets struct {
	Sales            []SalesRecord
	SalespersonSales []SalespersonRecord
}

// DateBounds retorna a menor e a maior data da tabela de vendas por loja.
// ok é falso quando não há registros.
func (d Datasets) DateBounds() (bounds DateBounds, ok bool) {
	for i, record := range d.Sales {
		if i == 0 || record.Date.Before(bounds.Start) {
			bounds.Start = record.Date
		}
		if i == 0 || record.Date.After(bounds.End) {
			bounds.End = record.Date
		}
	}
	return bounds, len(d.Sales) > 0
}

// Stores retorna as lojas na ordem em que aparecem pela primeira vez
func (d Datasets) Stores() []string {
	seen := make(map[string]struct{}, len(d.Sales))
	stores := make([]string, 0)
	for _, record := range d.Sales {
		if _, ok := seen[record.Store]; ok {
			continue
		}
		seen[record.Store] = struct{}{}
		stores = append(stores, record.Store)
	}
	return stores
}
