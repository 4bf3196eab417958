package recommend

// Config holds the fixed parameters of the scoring pipeline.
type Config struct {
	// sub-score weights, must sum to 1.0
	WBase      float64
	WTechnical float64
	WMarket    float64
	WSpecialty float64

	// how many records above the budget ceiling may survive filtering
	MaxOverBudget int

	// fallback when scoring a single record fails
	NeutralScore float64

	DefaultLimit int
}

const (
	defaultWBase      = 0.4
	defaultWTechnical = 0.3
	defaultWMarket    = 0.2
	defaultWSpecialty = 0.1

	defaultMaxOverBudget = 2
	defaultNeutralScore  = 0.5
	defaultLimit         = 5
)

func DefaultConfig() Config {
	return Config{
		WBase:      defaultWBase,
		WTechnical: defaultWTechnical,
		WMarket:    defaultWMarket,
		WSpecialty: defaultWSpecialty,

		MaxOverBudget: defaultMaxOverBudget,
		NeutralScore:  defaultNeutralScore,
		DefaultLimit:  defaultLimit,
	}
}
