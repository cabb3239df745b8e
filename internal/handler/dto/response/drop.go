package response

import (
	"time"

	"limited-drop-api/internal/usecase/commands"
	"limited-drop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StockResponse struct {
	ProductID       uuid.UUID `json:"productId"`
	Phase           string    `json:"phase"`
	MaxQuantity     int       `json:"maxQuantity"`
	AllocatedCount  int       `json:"allocatedCount"`
	RemainingSlots  int       `json:"remainingSlots"`
	WaitlistCount   int       `json:"waitlistCount"`
	DropDaySlots    int       `json:"dropDaySlots"`
	ConfirmedOrders int       `json:"confirmedOrders"`
	SalesStopped    bool      `json:"salesStopped"`
	Message         string    `json:"message"`
}

func FromStockView(v *queries.ProductStockView) *StockResponse {
	out := &StockResponse{}
	_ = copier.Copy(out, v)
	return out
}

type QuoteResponse struct {
	ProductID       uuid.UUID `json:"productId"`
	Phase           string    `json:"phase"`
	BasePrice       int64     `json:"basePrice"`
	DiscountPercent int       `json:"discountPercent"`
	FinalPrice      int64     `json:"finalPrice"`
	DiscountReason  string    `json:"discountReason"`
	Purchasable     bool      `json:"purchasable"`
}

func FromQuoteView(v *queries.PriceQuoteView) *QuoteResponse {
	out := &QuoteResponse{}
	_ = copier.Copy(out, v)
	return out
}

type WaitlistJoinResponse struct {
	EntryID  uuid.UUID `json:"entryId"`
	Position int       `json:"position"`
	JoinedAt time.Time `json:"joinedAt"`
}

func FromWaitlistJoin(r *commands.WaitlistJoinResult) *WaitlistJoinResponse {
	out := &WaitlistJoinResponse{}
	_ = copier.Copy(out, r)
	return out
}

type EchoSubmissionResponse struct {
	RequestID     uuid.UUID `json:"requestId"`
	Amount        int64     `json:"amount"`
	PaymentStatus string    `json:"paymentStatus"`
	ReleaseDate   time.Time `json:"releaseDate"`
}

func FromEchoSubmission(r *commands.EchoSubmission) *EchoSubmissionResponse {
	out := &EchoSubmissionResponse{}
	_ = copier.Copy(out, r)
	return out
}

type EchoStatusResponse struct {
	ProductID       uuid.UUID `json:"productId"`
	EscrowedCount   int       `json:"escrowedCount"`
	MinRequests     int       `json:"minRequests"`
	ThresholdMet    bool      `json:"thresholdMet"`
	TimeRemainingMs *int64    `json:"timeRemainingMs"`
	WindowDays      int       `json:"windowDays"`
	Status          string    `json:"status"`
}

func FromEchoStatusView(v *queries.EchoStatusView) *EchoStatusResponse {
	out := &EchoStatusResponse{}
	_ = copier.Copy(out, v)
	return out
}

type EscrowResponse struct {
	ProductID     uuid.UUID `json:"productId"`
	Action        string    `json:"action"`
	Processed     int       `json:"processed"`
	OrdersCreated int       `json:"ordersCreated"`
	Phase         string    `json:"phase"`
}

func FromEscrowResult(r *commands.EscrowResult) *EscrowResponse {
	if r == nil {
		return nil
	}
	return &EscrowResponse{
		ProductID:     r.ProductID,
		Action:        string(r.Action),
		Processed:     r.Processed,
		OrdersCreated: r.OrdersCreated,
		Phase:         r.Phase,
	}
}

type TriggerResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	Trigger   string          `json:"trigger,omitempty"`
	Phase     string          `json:"phase"`
	Changed   bool            `json:"changed"`
	Message   string          `json:"message,omitempty"`
	Escrow    *EscrowResponse `json:"escrow,omitempty"`
}

func FromTriggerResult(r *commands.TriggerResult) *TriggerResponse {
	return &TriggerResponse{
		ProductID: r.ProductID,
		Trigger:   r.Trigger,
		Phase:     r.Phase,
		Changed:   r.Changed,
		Message:   r.Message,
		Escrow:    FromEscrowResult(r.Escrow),
	}
}

type PressSubmissionResponse struct {
	RequestID uuid.UUID `json:"requestId"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
}

func FromPressSubmission(r *commands.PressSubmission) *PressSubmissionResponse {
	out := &PressSubmissionResponse{}
	_ = copier.Copy(out, r)
	return out
}

type PressDecisionResponse struct {
	RequestID     uuid.UUID  `json:"requestId"`
	Status        string     `json:"status"`
	PaymentLinkID *string    `json:"paymentLinkId,omitempty"`
	OrderID       *uuid.UUID `json:"orderId,omitempty"`
}

func FromPressDecision(r *commands.PressDecision) *PressDecisionResponse {
	out := &PressDecisionResponse{}
	_ = copier.Copy(out, r)
	return out
}

type PressPaymentResponse struct {
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Total       int64     `json:"total"`
}

func FromPressPayment(r *commands.PressPayment) *PressPaymentResponse {
	out := &PressPaymentResponse{}
	_ = copier.Copy(out, r)
	return out
}

type OwnerTagResponse struct {
	OwnerTag string `json:"ownerTag"`
}

type OwnerVerificationResponse struct {
	OwnerTag       string    `json:"ownerTag"`
	OwnerName      string    `json:"ownerName"`
	RegisteredDate time.Time `json:"registeredDate"`
	Verified       bool      `json:"verified"`
}

func FromOwnerVerification(v *queries.OwnerVerificationView) *OwnerVerificationResponse {
	out := &OwnerVerificationResponse{}
	_ = copier.Copy(out, v)
	return out
}

type ContactSettingsResponse struct {
	WhatsAppNumber string `json:"whatsappNumber"`
}
