package usecase

import (
	"context"
	"errors"
	"testing"

	"offertehub/internal/domain/entities"
	"offertehub/internal/domain/pricing"
	mock_interfaces "offertehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_ResolveRates(t *testing.T) {
	defaults := pricing.DefaultTables()

	t.Run("unknown domain", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, defaults)
		_, err := uc.ResolveRates(context.Background(), "", "roofs")
		if !errors.Is(err, pricing.ErrUnknownDomain) {
			t.Fatalf("expected ErrUnknownDomain, got %v", err)
		}
	})

	t.Run("no tenant uses defaults", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, defaults)
		rates, err := uc.ResolveRates(context.Background(), "", entities.DomainWindows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates.MaterialRatePerM2["kunststof"] != 280 {
			t.Fatalf("expected default rate, got %v", rates.MaterialRatePerM2["kunststof"])
		}
	})

	t.Run("override replaces in full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, defaults)

		custom := entities.RateTable{
			MaterialRatePerM2: map[entities.MaterialKind]float64{"kunststof": 300},
			MinimumOrderValue: 2000,
		}
		overrides.EXPECT().Get(gomock.Any(), "tenant-1", entities.DomainWindows).Return(&custom, nil)

		rates, err := uc.ResolveRates(context.Background(), "tenant-1", entities.DomainWindows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates.MaterialRatePerM2["kunststof"] != 300 {
			t.Fatalf("expected override rate, got %v", rates.MaterialRatePerM2["kunststof"])
		}
		// Full replacement: default-only entries must not leak through.
		if _, ok := rates.GlazingRatePerM2["hr++"]; ok {
			t.Fatalf("override should not be merged with defaults")
		}
	})

	t.Run("no override falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, defaults)

		overrides.EXPECT().Get(gomock.Any(), "tenant-1", entities.DomainFloors).Return(nil, nil)

		rates, err := uc.ResolveRates(context.Background(), "tenant-1", entities.DomainFloors)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates.MaterialRatePerM2["pvc"] != 45 {
			t.Fatalf("expected default rate, got %v", rates.MaterialRatePerM2["pvc"])
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, defaults)

		overrides.EXPECT().Get(gomock.Any(), "tenant-1", entities.DomainFloors).Return(nil, errors.New("db"))

		if _, err := uc.ResolveRates(context.Background(), "tenant-1", entities.DomainFloors); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_UpsertRates(t *testing.T) {
	defaults := pricing.DefaultTables()
	validTable := entities.RateTable{
		MaterialRatePerM2: map[entities.MaterialKind]float64{"pvc": 60},
		InstallationPerM2: 12,
		MinimumOrderValue: 150,
	}

	t.Run("empty tenant id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, defaults)
		if err := uc.UpsertRates(context.Background(), "  ", entities.DomainFloors, validTable); !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("unknown domain", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, defaults)
		if err := uc.UpsertRates(context.Background(), "tenant-1", "roofs", validTable); !errors.Is(err, pricing.ErrUnknownDomain) {
			t.Fatalf("expected ErrUnknownDomain, got %v", err)
		}
	})

	t.Run("missing material rates", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, defaults)
		err := uc.UpsertRates(context.Background(), "tenant-1", entities.DomainFloors, entities.RateTable{MinimumOrderValue: 100})
		if !errors.Is(err, ErrInvalidRateTable) {
			t.Fatalf("expected ErrInvalidRateTable, got %v", err)
		}
	})

	t.Run("negative values rejected", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, defaults)
		bad := entities.RateTable{
			MaterialRatePerM2: map[entities.MaterialKind]float64{"pvc": -1},
		}
		if err := uc.UpsertRates(context.Background(), "tenant-1", entities.DomainFloors, bad); !errors.Is(err, ErrInvalidRateTable) {
			t.Fatalf("expected ErrInvalidRateTable, got %v", err)
		}
		bad = entities.RateTable{
			MaterialRatePerM2: map[entities.MaterialKind]float64{"pvc": 60},
			RemovalFee:        -90,
		}
		if err := uc.UpsertRates(context.Background(), "tenant-1", entities.DomainFloors, bad); !errors.Is(err, ErrInvalidRateTable) {
			t.Fatalf("expected ErrInvalidRateTable, got %v", err)
		}
	})

	t.Run("stores and takes effect on resolve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, defaults)

		overrides.EXPECT().Put(gomock.Any(), "tenant-1", entities.DomainFloors, validTable).Return(nil)
		overrides.EXPECT().Get(gomock.Any(), "tenant-1", entities.DomainFloors).Return(&validTable, nil)

		if err := uc.UpsertRates(context.Background(), "tenant-1", entities.DomainFloors, validTable); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rates, err := uc.ResolveRates(context.Background(), "tenant-1", entities.DomainFloors)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates.MaterialRatePerM2["pvc"] != 60 {
			t.Fatalf("expected stored rate, got %v", rates.MaterialRatePerM2["pvc"])
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, defaults)

		overrides.EXPECT().Put(gomock.Any(), "tenant-1", entities.DomainFloors, validTable).Return(errors.New("db"))

		if err := uc.UpsertRates(context.Background(), "tenant-1", entities.DomainFloors, validTable); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_Quote(t *testing.T) {
	defaults := pricing.DefaultTables()

	t.Run("computes with tenant rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, defaults)

		custom := entities.RateTable{
			MaterialRatePerM2: map[entities.MaterialKind]float64{"pvc": 50},
			InstallationPerM2: 10,
			MinimumOrderValue: 100,
		}
		overrides.EXPECT().Get(gomock.Any(), "tenant-1", entities.DomainFloors).Return(&custom, nil)

		b, err := uc.Quote(context.Background(), "tenant-1", entities.QuoteRequest{
			Domain:       entities.DomainFloors,
			Area:         4,
			Material:     "pvc",
			Installation: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Total != 240 {
			t.Fatalf("expected 240, got %v", b.Total)
		}
	})

	t.Run("propagates calculator errors", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, defaults)
		_, err := uc.Quote(context.Background(), "", entities.QuoteRequest{
			Domain:   entities.DomainFloors,
			Area:     4,
			Material: "tegels",
		})
		if !errors.Is(err, pricing.ErrUnknownMaterial) {
			t.Fatalf("expected ErrUnknownMaterial, got %v", err)
		}
	})
}
