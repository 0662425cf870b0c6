package slot

import (
	"strings"
	"time"

	"fitness-platform/backend/internal/utils"
)

const (
	DefaultPackage = "Basic"
	DefaultTime    = "Not specified"
)

type Slot struct {
	ID           string    `firestore:"-" json:"id"`
	TrainerEmail string    `firestore:"trainerEmail" json:"trainerEmail"`
	TrainerID    string    `firestore:"trainerId" json:"trainerId"`
	Day          string    `firestore:"day" json:"day"`
	Time         string    `firestore:"time" json:"time"`
	Package      string    `firestore:"package" json:"package"`
	IsBooked     bool      `firestore:"isBooked" json:"isBooked"`
	BookedBy     *string   `firestore:"bookedBy" json:"bookedBy"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
}

// MaterializedID is the deterministic document ID of a slot synthesized from
// a trainer's declared availability.
func MaterializedID(trainerID, day string) string {
	return trainerID + "-" + utils.Slugify(day)
}

type CreateSlotInput struct {
	TrainerEmail string  `json:"trainerEmail" validate:"required"`
	TrainerID    string  `json:"trainerId"`
	Day          string  `json:"day" validate:"required"`
	Time         string  `json:"time"`
	Package      string  `json:"package"`
	IsBooked     bool    `json:"isBooked"`
	BookedBy     *string `json:"bookedBy"`
}

func (in *CreateSlotInput) Trim() {
	in.TrainerEmail = utils.NormalizeEmail(in.TrainerEmail)
	in.TrainerID = strings.TrimSpace(in.TrainerID)
	in.Day = strings.TrimSpace(in.Day)
	in.Time = strings.TrimSpace(in.Time)
	in.Package = strings.TrimSpace(in.Package)
}
