package domain

import "time"

// AllStores é a opção do seletor que desativa o filtro por loja
const AllStores = "Todas as Lojas"

// DateBounds representa um intervalo fechado de datas
type DateBounds struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains verifica se a data (sem considerar horário) está dentro do intervalo
func (b DateBounds) Contains(date time.Time) bool {
	day := truncateDay(date)
	return !day.Before(truncateDay(b.Start)) && !day.After(truncateDay(b.End))
}

// FilterState é a seleção de filtros de uma sessão do dashboard
type FilterState struct {
	Store     string    `json:"store"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Reset restaura a seleção padrão: todas as lojas e o período completo disponível
func (f *FilterState) Reset(bounds DateBounds) {
	f.Store = AllStores
	f.StartDate = truncateDay(bounds.Start)
	f.EndDate = truncateDay(bounds.End)
}

// AllStoresSelected indica se o filtro de loja está desativado
func (f FilterState) AllStoresSelected() bool {
	return f.Store == "" || f.Store == AllStores
}

// Period retorna o intervalo de datas selecionado
func (f FilterState) Period() DateBounds {
	return DateBounds{Start: f.StartDate, End: f.EndDate}
}

// FilterOptions são as opções disponíveis para os seletores do dashboard
type FilterOptions struct {
	Stores   []string    `json:"stores"`
	Bounds   DateBounds  `json:"bounds"`
	Defaults FilterState `json:"defaults"`
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
