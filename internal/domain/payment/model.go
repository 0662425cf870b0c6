package payment

import (
	"strings"
	"time"

	"fitness-platform/backend/internal/utils"
)

const RecentLimit = 6

// Payment is an append-only booking record.
type Payment struct {
	ID              string    `firestore:"-" json:"id"`
	Price           float64   `firestore:"price" json:"price"`
	Package         string    `firestore:"package" json:"package"`
	TrainerID       string    `firestore:"trainerId,omitempty" json:"trainerId,omitempty"`
	TrainerName     string    `firestore:"trainerName,omitempty" json:"trainerName,omitempty"`
	SlotID          string    `firestore:"slotId,omitempty" json:"slotId,omitempty"`
	Day             string    `firestore:"day,omitempty" json:"day,omitempty"`
	Time            string    `firestore:"time,omitempty" json:"time,omitempty"`
	UserEmail       string    `firestore:"userEmail" json:"userEmail"`
	UserName        string    `firestore:"userName,omitempty" json:"userName,omitempty"`
	PaymentIntentID string    `firestore:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	PaidAt          time.Time `firestore:"paidAt" json:"paidAt"`
}

type RecordInput struct {
	Price           float64    `json:"price" validate:"gte=0"`
	Package         string     `json:"package"`
	TrainerID       string     `json:"trainerId"`
	TrainerName     string     `json:"trainerName"`
	SlotID          string     `json:"slotId"`
	Day             string     `json:"day"`
	Time            string     `json:"time"`
	UserEmail       string     `json:"userEmail"`
	UserName        string     `json:"userName"`
	PaymentIntentID string     `json:"paymentIntentId"`
	PaidAt          *time.Time `json:"paidAt"`
}

func (in *RecordInput) Trim() {
	in.Package = strings.TrimSpace(in.Package)
	in.TrainerID = strings.TrimSpace(in.TrainerID)
	in.TrainerName = strings.TrimSpace(in.TrainerName)
	in.SlotID = strings.TrimSpace(in.SlotID)
	in.Day = strings.TrimSpace(in.Day)
	in.Time = strings.TrimSpace(in.Time)
	in.UserEmail = utils.NormalizeEmail(in.UserEmail)
	in.UserName = strings.TrimSpace(in.UserName)
	in.PaymentIntentID = strings.TrimSpace(in.PaymentIntentID)
}

type RecordResult struct {
	ID             string `json:"insertedId"`
	BookingCounted bool   `json:"bookingCounted"`
}

// IntentInput carries the price as sent by the client: a JSON number or a
// numeric string.
type IntentInput struct {
	Price     any    `json:"price"`
	TrainerID string `json:"trainerId"`
}

// IntentRequest is what a Provider needs to open a payment intent.
type IntentRequest struct {
	Amount         int64
	Currency       string
	Metadata       map[string]string
	IdempotencyKey string
}

type Intent struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type Balance struct {
	TotalBalance     float64   `json:"totalBalance"`
	RecentPayments   []Payment `json:"recentPayments"`
	TotalSubscribers int       `json:"totalSubscribers"`
	TotalPaidMembers int       `json:"totalPaidMembers"`
}

// Event is the receipt stored for every verified provider webhook.
type Event struct {
	ID         string    `firestore:"-" json:"id"`
	Type       string    `firestore:"type" json:"type"`
	Created    time.Time `firestore:"created" json:"created"`
	Livemode   bool      `firestore:"livemode" json:"livemode"`
	ReceivedAt time.Time `firestore:"receivedAt" json:"receivedAt"`
}
