package pricing

import (
	"encoding/json"
	"fmt"
	"os"

	"offertehub/internal/domain/entities"
)

// DefaultTables returns the built-in rate table per project domain. The maps
// are freshly allocated on every call so callers can never mutate shared state.
//
// Rates are whole euros. Windows price per m² plus per-frame surcharges; floors
// and painting price per m² only.
func DefaultTables() map[entities.ProjectDomain]entities.RateTable {
	return map[entities.ProjectDomain]entities.RateTable{
		entities.DomainWindows: {
			MaterialRatePerM2: map[entities.MaterialKind]float64{
				"kunststof": 280,
				"hout":      340,
				"aluminium": 420,
			},
			GlazingRatePerM2: map[entities.GlazingKind]float64{
				"dubbel": 85,
				"hr++":   120,
				"triple": 165,
			},
			Multipliers: map[entities.ModifierKind]float64{
				entities.ModifierFixedFrame: 1.0,
				entities.ModifierTiltTurn:   1.12,
			},
			ColorSurchargePerFrame: map[entities.ColorKind]float64{
				"wit":       0,
				"grijs":     50,
				"antraciet": 50,
				"groen":     65,
			},
			InstallationPerFrame: 75,
			RemovalFee:           200,
			MinimumOrderValue:    1500,
		},
		entities.DomainFloors: {
			MaterialRatePerM2: map[entities.MaterialKind]float64{
				"pvc":      45,
				"laminaat": 32,
				"parket":   95,
			},
			InstallationPerM2: 15,
			RemovalFee:        90,
			MinimumOrderValue: 100,
		},
		entities.DomainPainting: {
			MaterialRatePerM2: map[entities.MaterialKind]float64{
				"binnen": 28,
				"buiten": 38,
			},
			Multipliers: map[entities.ModifierKind]float64{
				entities.ModifierHighCeiling: 1.15,
			},
			PrepFee:           150,
			RemovalFee:        0,
			MinimumOrderValue: 250,
		},
	}
}

// LoadTables returns the rate tables used at startup. When RATE_TABLE_FILE is
// set it must point at a JSON document mapping domain to rate table; the file
// replaces the built-in defaults in full for the domains it contains.
func LoadTables() (map[entities.ProjectDomain]entities.RateTable, error) {
	tables := DefaultTables()

	path := os.Getenv("RATE_TABLE_FILE")
	if path == "" {
		return tables, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate table file: %w", err)
	}
	var overrides map[entities.ProjectDomain]entities.RateTable
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse rate table file: %w", err)
	}
	for domain, table := range overrides {
		tables[domain] = table
	}
	return tables, nil
}
