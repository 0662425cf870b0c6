package trainer

import (
	"strings"
	"time"

	"fitness-platform/backend/internal/utils"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Application is a pending request to become a trainer, keyed by email.
type Application struct {
	Email         string    `firestore:"email" json:"email"`
	FullName      string    `firestore:"fullName" json:"fullName"`
	Age           int       `firestore:"age,omitempty" json:"age,omitempty"`
	ProfileImage  string    `firestore:"profileImage,omitempty" json:"profileImage,omitempty"`
	Skills        []string  `firestore:"skills" json:"skills"`
	AvailableDays []string  `firestore:"availableDays" json:"availableDays"`
	AvailableTime string    `firestore:"availableTime,omitempty" json:"availableTime,omitempty"`
	Experience    string    `firestore:"experience,omitempty" json:"experience,omitempty"`
	Biography     string    `firestore:"biography,omitempty" json:"biography,omitempty"`
	Status        string    `firestore:"status" json:"status"`
	AppliedAt     time.Time `firestore:"appliedAt" json:"appliedAt"`
}

// Trainer is an accepted application.
type Trainer struct {
	ID            string    `firestore:"-" json:"id"`
	Email         string    `firestore:"email" json:"email"`
	FullName      string    `firestore:"fullName" json:"fullName"`
	Age           int       `firestore:"age,omitempty" json:"age,omitempty"`
	ProfileImage  string    `firestore:"profileImage,omitempty" json:"profileImage,omitempty"`
	Skills        []string  `firestore:"skills" json:"skills"`
	AvailableDays []string  `firestore:"availableDays" json:"availableDays"`
	AvailableTime string    `firestore:"availableTime,omitempty" json:"availableTime,omitempty"`
	Experience    string    `firestore:"experience,omitempty" json:"experience,omitempty"`
	Biography     string    `firestore:"biography,omitempty" json:"biography,omitempty"`
	Status        string    `firestore:"status" json:"status"`
	AppliedAt     time.Time `firestore:"appliedAt" json:"appliedAt"`
	AcceptedAt    time.Time `firestore:"acceptedAt" json:"acceptedAt"`
}

// Rejection is an append-only record of a declined application.
type Rejection struct {
	ID            string    `firestore:"-" json:"id"`
	Email         string    `firestore:"email" json:"email"`
	FullName      string    `firestore:"fullName" json:"fullName"`
	Age           int       `firestore:"age,omitempty" json:"age,omitempty"`
	ProfileImage  string    `firestore:"profileImage,omitempty" json:"profileImage,omitempty"`
	Skills        []string  `firestore:"skills" json:"skills"`
	AvailableDays []string  `firestore:"availableDays" json:"availableDays"`
	AvailableTime string    `firestore:"availableTime,omitempty" json:"availableTime,omitempty"`
	Experience    string    `firestore:"experience,omitempty" json:"experience,omitempty"`
	Biography     string    `firestore:"biography,omitempty" json:"biography,omitempty"`
	Status        string    `firestore:"status" json:"status"`
	Feedback      string    `firestore:"feedback" json:"feedback"`
	AppliedAt     time.Time `firestore:"appliedAt" json:"appliedAt"`
	RejectedAt    time.Time `firestore:"rejectedAt" json:"rejectedAt"`
}

// Accept moves a pending application to the accepted state.
func (a Application) Accept(now time.Time) Trainer {
	return Trainer{
		Email:         a.Email,
		FullName:      a.FullName,
		Age:           a.Age,
		ProfileImage:  a.ProfileImage,
		Skills:        append([]string(nil), a.Skills...),
		AvailableDays: append([]string(nil), a.AvailableDays...),
		AvailableTime: a.AvailableTime,
		Experience:    a.Experience,
		Biography:     a.Biography,
		Status:        StatusAccepted,
		AppliedAt:     a.AppliedAt,
		AcceptedAt:    now,
	}
}

func (a Application) Reject(feedback string, now time.Time) Rejection {
	return Rejection{
		Email:         a.Email,
		FullName:      a.FullName,
		Age:           a.Age,
		ProfileImage:  a.ProfileImage,
		Skills:        append([]string(nil), a.Skills...),
		AvailableDays: append([]string(nil), a.AvailableDays...),
		AvailableTime: a.AvailableTime,
		Experience:    a.Experience,
		Biography:     a.Biography,
		Status:        StatusRejected,
		Feedback:      strings.TrimSpace(feedback),
		AppliedAt:     a.AppliedAt,
		RejectedAt:    now,
	}
}

// Summary is the projection attached to classes as a related trainer.
type Summary struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func (t Trainer) Summary() Summary {
	return Summary{ID: t.ID, FullName: t.FullName, ProfileImage: t.ProfileImage}
}

// HasSkill reports whether any skill contains name, ignoring case.
func (t Trainer) HasSkill(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, s := range t.Skills {
		if utils.ContainsFold(s, name) {
			return true
		}
	}
	return false
}

type AcceptResult struct {
	UserUpdated        int `json:"userUpdated"`
	DeletedFromPending int `json:"deletedFromPending"`
}

type RejectResult struct {
	Deleted  int  `json:"deleted"`
	Rejected bool `json:"rejected"`
}

type DemoteResult struct {
	Modified int `json:"modified"`
	Deleted  int `json:"deleted"`
}

// StatusEntry is one row of the admin application status report.
type StatusEntry struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Status   string  `json:"status"`
	Feedback *string `json:"feedback,omitempty"`
}

type ApplyInput struct {
	Email         string   `json:"email" validate:"required,email"`
	FullName      string   `json:"fullName" validate:"required"`
	Age           int      `json:"age" validate:"gte=0"`
	ProfileImage  string   `json:"profileImage"`
	Skills        []string `json:"skills"`
	AvailableDays []string `json:"availableDays"`
	AvailableTime string   `json:"availableTime"`
	Experience    string   `json:"experience"`
	Biography     string   `json:"biography"`
}

func (in *ApplyInput) Trim() {
	in.Email = utils.NormalizeEmail(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	in.ProfileImage = strings.TrimSpace(in.ProfileImage)
	in.AvailableTime = strings.TrimSpace(in.AvailableTime)
	in.Experience = strings.TrimSpace(in.Experience)
	in.Biography = strings.TrimSpace(in.Biography)
	in.Skills = trimAll(in.Skills)
	in.AvailableDays = trimAll(in.AvailableDays)
}

type DecisionInput struct {
	Email    string `json:"email" validate:"required"`
	Feedback string `json:"feedback"`
}

func (in *DecisionInput) Trim() {
	in.Email = utils.NormalizeEmail(in.Email)
	in.Feedback = strings.TrimSpace(in.Feedback)
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
