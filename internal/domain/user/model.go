package user

import (
	"strings"
	"time"

	"fitness-platform/backend/internal/utils"
)

const (
	RoleMember  = "member"
	RoleTrainer = "trainer"
)

// User is keyed by its normalized email.
type User struct {
	Email       string    `firestore:"email" json:"email"`
	Role        string    `firestore:"role" json:"role"`
	DisplayName string    `firestore:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL    string    `firestore:"photoURL,omitempty" json:"photoURL,omitempty"`
	Active      bool      `firestore:"active" json:"active"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// NameOr returns the display name, or def when none is set.
func (u User) NameOr(def string) string {
	if strings.TrimSpace(u.DisplayName) != "" {
		return u.DisplayName
	}
	return def
}

type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

func (in *RegisterInput) Trim() {
	in.Email = utils.NormalizeEmail(in.Email)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	in.PhotoURL = strings.TrimSpace(in.PhotoURL)
}

type UpdateProfileInput struct {
	DisplayName string `json:"displayName" validate:"required"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

func (in *UpdateProfileInput) Trim() {
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	in.PhotoURL = strings.TrimSpace(in.PhotoURL)
}
