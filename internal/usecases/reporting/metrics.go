package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Quantidade padrão de vendedores exibidos no ranking
const DefaultTopSalespeople = 10

const podiumSize = 3

// ComputeKPIs calcula os indicadores sobre as vendas já filtradas.
// Meta total zero ou negativa é tratada como "sem meta": 0% e sem prêmio da loja.
func ComputeKPIs(sales []domain.SalesRecord, settings domain.Settings) domain.KPIs {
	var kpis domain.KPIs

	for _, record := range sales {
		kpis.GoalTotal += record.Goal
		kpis.RealizedTotal += record.Realized
		if record.GoalMet() {
			kpis.DaysGoalMet++
		}
	}

	if kpis.GoalTotal > 0 {
		kpis.AttainmentPct = 100 * kpis.RealizedTotal / kpis.GoalTotal
		if kpis.RealizedTotal >= kpis.GoalTotal {
			kpis.StorePrizeAwarded = settings.StorePrize
		}
	}

	kpis.DailyBonusAwarded = float64(kpis.DaysGoalMet) * settings.DailyBonus
	kpis.TotalPrizePool = kpis.StorePrizeAwarded + kpis.DailyBonusAwarded

	return kpis
}

// StoreTotals soma meta e venda por loja, ordenado pelo nome da loja
func StoreTotals(sales []domain.SalesRecord) []domain.StoreTotal {
	index := make(map[string]int)
	totals := make([]domain.StoreTotal, 0)

	for _, record := range sales {
		i, ok := index[record.Store]
		if !ok {
			i = len(totals)
			index[record.Store] = i
			totals = append(totals, domain.StoreTotal{Store: record.Store})
		}
		totals[i].Goal += record.Goal
		totals[i].Realized += record.Realized
	}

	for i := range totals {
		totals[i].GoalMet = totals[i].Realized >= totals[i].Goal
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Store < totals[j].Store
	})

	return totals
}

// SalespersonTotals soma as vendas por vendedor em ordem decrescente.
// Empates são desfeitos pelo nome para manter a ordem estável entre requisições.
func SalespersonTotals(records []domain.SalespersonRecord) []domain.SalespersonTotal {
	sums := sumBySalesperson(records)

	totals := make([]domain.SalespersonTotal, 0, len(sums))
	for name, realized := range sums {
		totals = append(totals, domain.SalespersonTotal{
			Salesperson: name,
			Realized:    realized,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Realized != totals[j].Realized {
			return totals[i].Realized > totals[j].Realized
		}
		return totals[i].Salesperson < totals[j].Salesperson
	})

	for i := range totals {
		totals[i].Position = i + 1
		totals[i].Podium = i < podiumSize
	}

	return totals
}

// TopSalespeople mantém os n primeiros. n fora do intervalo [1, len] retorna todos.
func TopSalespeople(totals []domain.SalespersonTotal, n int) []domain.SalespersonTotal {
	if n <= 0 || n >= len(totals) {
		return totals
	}
	return totals[:n]
}

// DefaultTopCount é o valor inicial do seletor de ranking
func DefaultTopCount(total int) int {
	return min(DefaultTopSalespeople, total)
}

// DailyPerformance lista o desempenho dia a dia, ordenado por data
func DailyPerformance(sales []domain.SalesRecord) []domain.DailyPerformance {
	days := make([]domain.DailyPerformance, 0, len(sales))
	for _, record := range sales {
		days = append(days, domain.DailyPerformance{
			Date:     record.Date,
			Goal:     record.Goal,
			Realized: record.Realized,
			GoalMet:  record.GoalMet(),
		})
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}

// DistributePrizes reparte o prêmio total proporcionalmente à venda de cada vendedor.
// Retorna vazio quando não há venda ou prêmio a distribuir.
func DistributePrizes(records []domain.SalespersonRecord, realizedTotal, prizePool float64) []domain.PrizeShare {
	shares := make([]domain.PrizeShare, 0)
	if realizedTotal <= 0 || prizePool <= 0 {
		return shares
	}

	for name, realized := range sumBySalesperson(records) {
		share := realized / realizedTotal
		prize := share * prizePool
		if prize <= 0 {
			continue
		}

		shares = append(shares, domain.PrizeShare{
			Salesperson: name,
			Realized:    realized,
			Share:       share,
			Prize:       prize,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Prize != shares[j].Prize {
			return shares[i].Prize > shares[j].Prize
		}
		return shares[i].Salesperson < shares[j].Salesperson
	})

	return shares
}

func sumBySalesperson(records []domain.SalespersonRecord) map[string]float64 {
	sums := make(map[string]float64)
	for _, record := range records {
		sums[record.Salesperson] += record.Realized
	}
	return sums
}

// FilterSalesByPeriod mantém as vendas dentro do período, de todas as lojas
func FilterSalesByPeriod(sales []domain.SalesRecord, period domain.DateBounds) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0)
	for _, record := range sales {
		if period.Contains(record.Date) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// FilterSales aplica período e loja às vendas por loja
func FilterSales(sales []domain.SalesRecord, state domain.FilterState) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0)
	for _, record := range sales {
		if matches(record.Date, record.Store, state) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// FilterSalespersonSales aplica período e loja às vendas por vendedor
func FilterSalespersonSales(records []domain.SalespersonRecord, state domain.FilterState) []domain.SalespersonRecord {
	filtered := make([]domain.SalespersonRecord, 0)
	for _, record := range records {
		if matches(record.Date, record.Store, state) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func matches(date time.Time, store string, state domain.FilterState) bool {
	if !state.Period().Contains(date) {
		return false
	}
	return state.AllStoresSelected() || store == state.Store
}
