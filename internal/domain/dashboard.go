package domain

import "time"

// KPIs são os indicadores calculados sobre as vendas filtradas
type KPIs struct {
	GoalTotal         float64 `json:"goal_total"`
	RealizedTotal     float64 `json:"realized_total"`
	AttainmentPct     float64 `json:"attainment_pct"`
	DaysGoalMet       int     `json:"days_goal_met"`
	StorePrizeAwarded float64 `json:"store_prize_awarded"`
	DailyBonusAwarded float64 `json:"daily_bonus_awarded"`
	TotalPrizePool    float64 `json:"total_prize_pool"`
}

// FormattedKPIs são os mesmos indicadores prontos para exibição
type FormattedKPIs struct {
	GoalTotal         string `json:"goal_total"`
	RealizedTotal     string `json:"realized_total"`
	AttainmentPct     string `json:"attainment_pct"`
	DaysGoalMet       string `json:"days_goal_met"`
	StorePrizeAwarded string `json:"store_prize_awarded"`
	DailyBonusAwarded string `json:"daily_bonus_awarded"`
	TotalPrizePool    string `json:"total_prize_pool"`
}

// StoreTotal é a soma de meta e venda de uma loja no período
type StoreTotal struct {
	Store    string  `json:"store"`
	Goal     float64 `json:"goal"`
	Realized float64 `json:"realized"`
	GoalMet  bool    `json:"goal_met"`
}

// SalespersonTotal é a soma das vendas de um vendedor
type SalespersonTotal struct {
	Position    int     `json:"position"`
	Salesperson string  `json:"salesperson"`
	Realized    float64 `json:"realized"`
	Podium      bool    `json:"podium"`
}

// DailyPerformance é o desempenho de uma loja em um dia
type DailyPerformance struct {
	Date     time.Time `json:"date"`
	Goal     float64   `json:"goal"`
	Realized float64   `json:"realized"`
	GoalMet  bool      `json:"goal_met"`
}

// PrizeShare é a parte da premiação destinada a um vendedor
type PrizeShare struct {
	Salesperson string  `json:"salesperson"`
	Realized    float64 `json:"realized"`
	Share       float64 `json:"share"`
	Prize       float64 `json:"prize"`
}

// DashboardResponse é o conteúdo completo do dashboard para os filtros aplicados
type DashboardResponse struct {
	Filters             FilterState        `json:"filters"`
	Settings            Settings           `json:"settings"`
	KPIs                KPIs               `json:"kpis"`
	Formatted           FormattedKPIs      `json:"formatted"`
	StoreTotals         []StoreTotal       `json:"store_totals"`
	TopSalespeople      []SalespersonTotal `json:"top_salespeople"`
	SalespeopleCount    int                `json:"salespeople_count"`
	DailyPerformance    []DailyPerformance `json:"daily_performance,omitempty"`
	PrizeDistribution   []PrizeShare       `json:"prize_distribution"`
	NothingToDistribute bool               `json:"nothing_to_distribute"`
}

// ExportFile é uma planilha gerada a partir dos dados filtrados
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// XLSXContentType é o tipo do arquivo exportado
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
