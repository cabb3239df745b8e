package product

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultEchoWindowDays  = 14
	DefaultEchoMinRequests = 100
	DefaultPressSurcharge  = 30
)

type ProductionStatus string

const (
	ProductionPending   ProductionStatus = "pending"
	ProductionStarted   ProductionStatus = "started"
	ProductionCompleted ProductionStatus = "completed"
)

// PhaseConfig holds the optional per-phase settings. Zero values mean "use default".
type PhaseConfig struct {
	Phase            Phase
	StartsAt         *time.Time
	EndsAt           *time.Time
	MaxQuantity      int
	WindowDays       int
	MinRequests      int
	SurchargePercent *int
}

type Attributes struct {
	ID                  uuid.UUID
	SKU                 string
	Name                string
	BasePrice           int64
	Phase               Phase
	LaunchDate          *time.Time
	AllocatedCount      int
	ProductionStatus    ProductionStatus
	ProductionStartDate *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Product struct {
	id                  uuid.UUID
	sku                 string
	name                string
	basePrice           int64
	phase               Phase
	launchDate          *time.Time
	allocatedCount      int
	productionStatus    ProductionStatus
	productionStartDate *time.Time
	configs             map[Phase]PhaseConfig
	variants            []Variant
	createdAt           time.Time
	updatedAt           time.Time
}

func ReconstructProduct(a Attributes, configs []PhaseConfig, variants []Variant) *Product {
	cfg := make(map[Phase]PhaseConfig, len(configs))
	for _, c := range configs {
		cfg[c.Phase] = c
	}
	status := a.ProductionStatus
	if status == "" {
		status = ProductionPending
	}
	return &Product{
		id:                  a.ID,
		sku:                 a.SKU,
		name:                a.Name,
		basePrice:           a.BasePrice,
		phase:               a.Phase,
		launchDate:          a.LaunchDate,
		allocatedCount:      a.AllocatedCount,
		productionStatus:    status,
		productionStartDate: a.ProductionStartDate,
		configs:             cfg,
		variants:            variants,
		createdAt:           a.CreatedAt,
		updatedAt:           a.UpdatedAt,
	}
}

func (p *Product) ID() uuid.UUID                      { return p.id }
func (p *Product) SKU() string                        { return p.sku }
func (p *Product) Name() string                       { return p.name }
func (p *Product) BasePrice() int64                   { return p.basePrice }
func (p *Product) Phase() Phase                       { return p.phase }
func (p *Product) LaunchDate() *time.Time             { return p.launchDate }
func (p *Product) AllocatedCount() int                { return p.allocatedCount }
func (p *Product) ProductionStatus() ProductionStatus { return p.productionStatus }
func (p *Product) ProductionStartDate() *time.Time    { return p.productionStartDate }
func (p *Product) Variants() []Variant                { return p.variants }
func (p *Product) CreatedAt() time.Time               { return p.createdAt }
func (p *Product) UpdatedAt() time.Time               { return p.updatedAt }

func (p *Product) Config(phase Phase) (PhaseConfig, bool) {
	c, ok := p.configs[phase]
	return c, ok
}

// Cap returns the max quantity that governs allocation in phase.
func (p *Product) Cap(phase Phase) int {
	capPhase := phase.CapPhase()
	if c, ok := p.configs[capPhase]; ok && c.MaxQuantity > 0 {
		return c.MaxQuantity
	}
	return DefaultCap(capPhase)
}

// RemainingSlots is zero once the product has ended.
func (p *Product) RemainingSlots() int {
	if p.phase.IsTerminal() || p.phase == PhaseDraft {
		return 0
	}
	remaining := p.Cap(p.phase) - p.allocatedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (p *Product) EchoWindowDays() int {
	if c, ok := p.configs[PhaseEcho]; ok && c.WindowDays > 0 {
		return c.WindowDays
	}
	return DefaultEchoWindowDays
}

func (p *Product) EchoMinRequests() int {
	if c, ok := p.configs[PhaseEcho]; ok && c.MinRequests > 0 {
		return c.MinRequests
	}
	return DefaultEchoMinRequests
}

func (p *Product) PressSurchargePercent() int {
	if c, ok := p.configs[PhasePress]; ok && c.SurchargePercent != nil {
		return *c.SurchargePercent
	}
	return DefaultPressSurcharge
}

// WaitlistClosed reports whether the waitlist window has an end date at or before now.
func (p *Product) WaitlistClosed(now time.Time) bool {
	c, ok := p.configs[PhaseWaitlist]
	if !ok || c.EndsAt == nil {
		return false
	}
	return !c.EndsAt.After(now)
}

func (p *Product) FindVariant(ref string) (Variant, error) {
	return ResolveVariant(p.variants, ref)
}
