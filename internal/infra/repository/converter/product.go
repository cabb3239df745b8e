package converter

import (
	"limited-drop-api/internal/domain/product"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
)

func ProductToDomain(row sqlc.Products, configs []sqlc.ProductPhaseConfigs, variants []sqlc.ProductVariants) *product.Product {
	attrs := product.Attributes{
		ID:                  row.ID,
		SKU:                 row.Sku,
		Name:                row.Name,
		BasePrice:           row.BasePrice,
		Phase:               product.Phase(row.Phase),
		LaunchDate:          pgconv.TimePtrFromPgtype(row.LaunchDate),
		AllocatedCount:      int(row.AllocatedCount),
		ProductionStatus:    product.ProductionStatus(row.ProductionStatus),
		ProductionStartDate: pgconv.TimePtrFromPgtype(row.ProductionStartDate),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	cfgs := make([]product.PhaseConfig, 0, len(configs))
	for _, c := range configs {
		cfgs = append(cfgs, PhaseConfigToDomain(c))
	}

	vs := make([]product.Variant, 0, len(variants))
	for _, v := range variants {
		vs = append(vs, VariantToDomain(v))
	}

	return product.ReconstructProduct(attrs, cfgs, vs)
}

func PhaseConfigToDomain(c sqlc.ProductPhaseConfigs) product.PhaseConfig {
	return product.PhaseConfig{
		Phase:            product.Phase(c.Phase),
		StartsAt:         pgconv.TimePtrFromPgtype(c.StartsAt),
		EndsAt:           pgconv.TimePtrFromPgtype(c.EndsAt),
		MaxQuantity:      int(c.MaxQuantity.Int32),
		WindowDays:       int(c.WindowDays.Int32),
		MinRequests:      int(c.MinRequests.Int32),
		SurchargePercent: pgconv.IntPtrFromInt4(c.SurchargePercent),
	}
}

func VariantToDomain(v sqlc.ProductVariants) product.Variant {
	return product.Variant{
		ID:       v.ID,
		Color:    v.Color,
		Material: v.Material,
		Stock:    int(v.Stock),
		Reserved: int(v.ReservedStock),
	}
}
