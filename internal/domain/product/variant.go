package product

import (
	"strings"

	"limited-drop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVariantNotFound = errs.New("variant not found")

type Variant struct {
	ID       uuid.UUID
	Color    string
	Material string
	Stock    int
	Reserved int
}

func (v Variant) Available() int {
	if v.Reserved >= v.Stock {
		return 0
	}
	return v.Stock - v.Reserved
}

// Key is the normalized "color-material" address of the variant.
func (v Variant) Key() string {
	return VariantKey(v.Color, v.Material)
}

func VariantKey(color, material string) string {
	return normalize(color) + "-" + normalize(material)
}

// ResolveVariant addresses a variant by durable id first, then by its
// "color-material" key. The key is split on the first hyphen only, so
// materials containing hyphens still resolve. An empty ref selects the
// first variant.
func ResolveVariant(variants []Variant, ref string) (Variant, error) {
	ref = strings.TrimSpace(ref)
	if len(variants) == 0 {
		return Variant{}, ErrVariantNotFound
	}
	if ref == "" {
		return variants[0], nil
	}

	if id, err := uuid.Parse(ref); err == nil {
		for _, v := range variants {
			if v.ID == id {
				return v, nil
			}
		}
		return Variant{}, ErrVariantNotFound
	}

	color, material, ok := strings.Cut(ref, "-")
	if !ok {
		return Variant{}, ErrVariantNotFound
	}
	want := VariantKey(color, material)
	for _, v := range variants {
		if v.Key() == want {
			return v, nil
		}
	}
	return Variant{}, ErrVariantNotFound
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
