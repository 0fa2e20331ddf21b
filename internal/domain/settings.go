package domain

// Valores usados na primeira execução, quando ainda não existe arquivo de configuração
const (
	DefaultStorePrize = 1000.0
	DefaultDailyBonus = 25.0
)

// Settings são as regras de premiação editadas pelo administrador
type Settings struct {
	StorePrize float64 `json:"store_prize"`
	DailyBonus float64 `json:"daily_bonus"`
}

func DefaultSettings() Settings {
	return Settings{
		StorePrize: DefaultStorePrize,
		DailyBonus: DefaultDailyBonus,
	}
}
