// Package certificate derives the certificate of authenticity for a paid order.
// Nothing here is persisted; the same inputs always produce the same output.
package certificate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnsupportedPhase = errs.New("phase has no serial code")

const (
	Signature   = "VERIFIED_AUTHENTIC"
	isoMillis   = "2006-01-02T15:04:05.000Z"
	displayLen  = 16
	displayStep = 4
)

func PhaseCode(p product.Phase) (string, error) {
	switch p {
	case product.PhaseOriginals:
		return "OG", nil
	case product.PhaseEcho:
		return "EC", nil
	case product.PhasePress:
		return "PR", nil
	default:
		return "", ErrUnsupportedPhase
	}
}

// ProductCode is the last four characters of the product id, upper-cased.
func ProductCode(productID uuid.UUID) string {
	s := productID.String()
	return strings.ToUpper(s[len(s)-4:])
}

func Serial(p product.Phase, productID uuid.UUID, sequence int) (string, error) {
	code, err := PhaseCode(p)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%04d", code, ProductCode(productID), sequence), nil
}

// Hash is the hex SHA-256 of "orderId-productId-serial-purchaseDate", with the
// purchase date rendered as UTC ISO-8601 with milliseconds.
func Hash(orderID, productID uuid.UUID, serial string, purchaseDate time.Time) string {
	input := fmt.Sprintf("%s-%s-%s-%s", orderID, productID, serial, purchaseDate.UTC().Format(isoMillis))
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// DisplayHash renders the first 16 hex digits in upper-case groups of four.
func DisplayHash(hash string) string {
	if len(hash) > displayLen {
		hash = hash[:displayLen]
	}
	hash = strings.ToUpper(hash)
	groups := make([]string, 0, displayLen/displayStep)
	for i := 0; i < len(hash); i += displayStep {
		end := i + displayStep
		if end > len(hash) {
			end = len(hash)
		}
		groups = append(groups, hash[i:end])
	}
	return strings.Join(groups, "-")
}

type Input struct {
	OrderID       uuid.UUID
	ProductID     uuid.UUID
	ProductName   string
	Phase         product.Phase
	Sequence      int
	PurchaseDate  time.Time
	CustomerName  string
	CustomerEmail string
	OwnerTag      *string
}

type Certificate struct {
	OrderID       uuid.UUID
	ProductID     uuid.UUID
	ProductName   string
	SerialNumber  string
	PieceNumber   int
	Phase         product.Phase
	PurchaseDate  time.Time
	CustomerName  string
	CustomerEmail string
	OwnerTag      *string
	Signature     string
	Hash          string
	DisplayHash   string
	IssuedAt      time.Time
}

func Generate(in Input, issuedAt time.Time) (*Certificate, error) {
	serial, err := Serial(in.Phase, in.ProductID, in.Sequence)
	if err != nil {
		return nil, err
	}
	hash := Hash(in.OrderID, in.ProductID, serial, in.PurchaseDate)
	return &Certificate{
		OrderID:       in.OrderID,
		ProductID:     in.ProductID,
		ProductName:   in.ProductName,
		SerialNumber:  serial,
		PieceNumber:   in.Sequence,
		Phase:         in.Phase,
		PurchaseDate:  in.PurchaseDate,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		OwnerTag:      in.OwnerTag,
		Signature:     Signature,
		Hash:          hash,
		DisplayHash:   DisplayHash(hash),
		IssuedAt:      issuedAt,
	}, nil
}
