package request

import (
	"encoding/json"

	"limited-drop-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type JoinWaitlistRequest struct {
	ProductID uuid.UUID  `json:"productId" binding:"required"`
	VariantID *uuid.UUID `json:"variantId,omitempty"`
	Email     string     `json:"email" binding:"omitempty,email"`
	Phone     string     `json:"phone" binding:"omitempty,e164"`
}

func (r JoinWaitlistRequest) ToCommand() commands.JoinWaitlistRequest {
	return commands.JoinWaitlistRequest{ProductID: r.ProductID, VariantID: r.VariantID, Email: r.Email, Phone: r.Phone}
}

type SubmitEchoRequest struct {
	ProductID       uuid.UUID `json:"productId" binding:"required"`
	VariantRef      string    `json:"variantRef" binding:"max=100"`
	Email           string    `json:"email" binding:"omitempty,email"`
	Phone           string    `json:"phone" binding:"omitempty,e164"`
	PaymentIntentID *string   `json:"paymentIntentId,omitempty" binding:"omitempty,max=255"`
}

func (r SubmitEchoRequest) ToCommand() commands.SubmitEchoRequest {
	return commands.SubmitEchoRequest{
		ProductID:       r.ProductID,
		VariantRef:      r.VariantRef,
		Email:           r.Email,
		Phone:           r.Phone,
		PaymentIntentID: r.PaymentIntentID,
	}
}

type ConfirmEscrowRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required,max=255"`
}

type ProcessEscrowRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
}

type SubmitPressRequest struct {
	ProductID         uuid.UUID       `json:"productId" binding:"required"`
	VariantRef        string          `json:"variantRef" binding:"max=100"`
	RequestType       string          `json:"requestType" binding:"required,oneof=regular influencer"`
	InfluencerDetails json.RawMessage `json:"influencerDetails,omitempty" swaggertype:"object"`
}

func (r SubmitPressRequest) ToCommand() commands.SubmitPressRequest {
	return commands.SubmitPressRequest{
		ProductID:         r.ProductID,
		VariantRef:        r.VariantRef,
		RequestType:       r.RequestType,
		InfluencerDetails: r.InfluencerDetails,
	}
}

type PressDecisionRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=approve reject"`
	Reason   *string `json:"reason,omitempty" binding:"omitempty,max=1000"`
}

type PressPaymentRequest struct {
	PaymentLinkID   string `json:"paymentLinkId" binding:"required,max=255"`
	PaymentIntentID string `json:"paymentIntentId" binding:"required,max=255"`
}

type PhaseTriggerRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Trigger   string    `json:"trigger" binding:"required"`
}

type SetPhaseRequest struct {
	Phase string `json:"phase" binding:"required"`
}

type UpdateContactRequest struct {
	WhatsAppNumber string `json:"whatsappNumber" binding:"required,e164"`
}
