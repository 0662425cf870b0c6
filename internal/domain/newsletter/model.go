package newsletter

import (
	"strings"
	"time"

	"fitness-platform/backend/internal/utils"
)

type Subscriber struct {
	Name         string    `firestore:"name" json:"name"`
	Email        string    `firestore:"email" json:"email"`
	SubscribedAt time.Time `firestore:"subscribedAt" json:"subscribedAt"`
}

type SubscribeInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

func (in *SubscribeInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = utils.NormalizeEmail(in.Email)
}
