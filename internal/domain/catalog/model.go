package catalog

import (
	"strings"
	"time"

	"fitness-platform/backend/internal/domain/trainer"
)

const (
	PageSize           = 6
	MaxRelatedTrainers = 5
)

type Class struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	NameLower string    `firestore:"nameLower" json:"-"`
	Image     string    `firestore:"image" json:"image"`
	Details   string    `firestore:"details" json:"details"`
	Bookings  int       `firestore:"bookings" json:"bookings"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

type ClassWithTrainers struct {
	Class
	RelatedTrainers []trainer.Summary `json:"relatedTrainers"`
}

type Page struct {
	Classes     []ClassWithTrainers `json:"classes"`
	CurrentPage int                 `json:"currentPage"`
	TotalPages  int                 `json:"totalPages"`
}

type CreateClassInput struct {
	Name    string `json:"name" validate:"required"`
	Image   string `json:"image" validate:"required"`
	Details string `json:"details" validate:"required"`
}

func (in *CreateClassInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)
	in.Details = strings.TrimSpace(in.Details)
}
