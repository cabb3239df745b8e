//go:build unit || e2e

package builder

import (
	"time"

	"limited-drop-api/internal/domain/product"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID             uuid.UUID
	SKU            string
	Name           string
	BasePrice      int64
	Phase          product.Phase
	LaunchDate     *time.Time
	AllocatedCount int
	Configs        []product.PhaseConfig
	Variants       []product.Variant
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:        uuid.New(),
		SKU:       "LD-001",
		Name:      "Indigo Aso Oke Jacket",
		BasePrice: 45000,
		Phase:     product.PhaseOriginals,
		Variants: []product.Variant{
			{ID: uuid.New(), Color: "Indigo", Material: "Aso-Oke", Stock: 5},
		},
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) Build() *product.Product {
	now := time.Now()
	return product.ReconstructProduct(product.Attributes{
		ID:             b.ID,
		SKU:            b.SKU,
		Name:           b.Name,
		BasePrice:      b.BasePrice,
		Phase:          b.Phase,
		LaunchDate:     b.LaunchDate,
		AllocatedCount: b.AllocatedCount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, b.Configs, b.Variants)
}

// Variant returns the i-th configured variant.
func (b *ProductBuilder) Variant(i int) product.Variant {
	return b.Variants[i]
}

func (b *ProductBuilder) WithPhase(p product.Phase) *ProductBuilder {
	b.Phase = p
	return b
}

func (b *ProductBuilder) WithBasePrice(price int64) *ProductBuilder {
	b.BasePrice = price
	return b
}

func (b *ProductBuilder) WithAllocated(n int) *ProductBuilder {
	b.AllocatedCount = n
	return b
}

func (b *ProductBuilder) WithLaunchDate(t time.Time) *ProductBuilder {
	b.LaunchDate = &t
	return b
}

func (b *ProductBuilder) WithCap(p product.Phase, max int) *ProductBuilder {
	b.config(p).MaxQuantity = max
	return b
}

func (b *ProductBuilder) WithEcho(windowDays, minRequests int) *ProductBuilder {
	c := b.config(product.PhaseEcho)
	c.WindowDays = windowDays
	c.MinRequests = minRequests
	return b
}

func (b *ProductBuilder) WithWaitlistEnd(t time.Time) *ProductBuilder {
	b.config(product.PhaseWaitlist).EndsAt = &t
	return b
}

func (b *ProductBuilder) WithStock(stock, reserved int) *ProductBuilder {
	b.Variants[0].Stock = stock
	b.Variants[0].Reserved = reserved
	return b
}

func (b *ProductBuilder) WithVariant(color, material string, stock int) *ProductBuilder {
	b.Variants = append(b.Variants, product.Variant{ID: uuid.New(), Color: color, Material: material, Stock: stock})
	return b
}

func (b *ProductBuilder) config(p product.Phase) *product.PhaseConfig {
	for i := range b.Configs {
		if b.Configs[i].Phase == p {
			return &b.Configs[i]
		}
	}
	b.Configs = append(b.Configs, product.PhaseConfig{Phase: p})
	return &b.Configs[len(b.Configs)-1]
}
