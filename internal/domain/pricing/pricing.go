// Package pricing computes the price a user pays for a product in a given phase.
// Every function here is pure and uses integer minor units only.
package pricing

import (
	"time"

	"limited-drop-api/internal/domain/product"
)

type DiscountReason string

const (
	ReasonNone           DiscountReason = "none"
	ReasonEarlyBird      DiscountReason = "early_bird"
	ReasonRegular        DiscountReason = "regular"
	ReasonPriorityClub   DiscountReason = "priority_club"
	ReasonPressSurcharge DiscountReason = "press_surcharge"
)

const (
	EarlyBirdDiscount     = 15
	RegularDiscount       = 10
	PriorityClubFloor     = 12
	EarlyBirdWindow       = 7 * 24 * time.Hour
	DefaultPressSurcharge = product.DefaultPressSurcharge
)

type UserAttributes struct {
	PriorityClub bool
	Influencer   bool
}

type Options struct {
	// SurchargePercent overrides the press surcharge. Nil uses the default.
	SurchargePercent *int
}

type Quote struct {
	BasePrice       int64
	DiscountPercent int
	FinalPrice      int64
	DiscountReason  DiscountReason
	Purchasable     bool
}

// Compute returns the quote for basePrice in phase. A negative DiscountPercent
// is a surcharge. Ended and draft products are quoted at base price with
// Purchasable=false and callers must reject the purchase.
func Compute(basePrice int64, phase product.Phase, user UserAttributes, launchDate *time.Time, now time.Time, opts Options) Quote {
	switch phase {
	case product.PhaseWaitlist:
		discount, reason := waitlistDiscount(launchDate, now)
		if user.PriorityClub && discount < PriorityClubFloor {
			discount, reason = PriorityClubFloor, ReasonPriorityClub
		}
		return newQuote(basePrice, discount, reason, true)

	case product.PhaseOriginals, product.PhaseEcho:
		return newQuote(basePrice, 0, ReasonNone, true)

	case product.PhasePress:
		if user.Influencer {
			return newQuote(basePrice, 0, ReasonNone, true)
		}
		surcharge := DefaultPressSurcharge
		if opts.SurchargePercent != nil && *opts.SurchargePercent >= 0 {
			surcharge = *opts.SurchargePercent
		}
		if surcharge == 0 {
			return newQuote(basePrice, 0, ReasonNone, true)
		}
		return newQuote(basePrice, -surcharge, ReasonPressSurcharge, true)

	default:
		return Quote{
			BasePrice:      basePrice,
			FinalPrice:     basePrice,
			DiscountReason: ReasonNone,
			Purchasable:    false,
		}
	}
}

func waitlistDiscount(launchDate *time.Time, now time.Time) (int, DiscountReason) {
	if launchDate == nil || now.Sub(*launchDate) <= EarlyBirdWindow {
		return EarlyBirdDiscount, ReasonEarlyBird
	}
	return RegularDiscount, ReasonRegular
}

func newQuote(basePrice int64, discount int, reason DiscountReason, purchasable bool) Quote {
	return Quote{
		BasePrice:       basePrice,
		DiscountPercent: discount,
		FinalPrice:      ApplyPercent(basePrice, 100-discount),
		DiscountReason:  reason,
		Purchasable:     purchasable,
	}
}

// ApplyPercent returns amount*percent/100 rounded half-up.
func ApplyPercent(amount int64, percent int) int64 {
	n := amount * int64(percent)
	if n <= 0 {
		return 0
	}
	return (n + 50) / 100
}
