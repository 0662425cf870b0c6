package store

import (
	"cloud.google.com/go/firestore"

	"fitness-platform/backend/internal/domain/catalog"
	"fitness-platform/backend/internal/domain/forum"
	"fitness-platform/backend/internal/domain/newsletter"
	"fitness-platform/backend/internal/domain/payment"
	"fitness-platform/backend/internal/domain/slot"
	"fitness-platform/backend/internal/domain/trainer"
	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/store/memory"
)

// UserRepo is everything the services ask of the users collection.
type UserRepo interface {
	user.Repository
	forum.AuthorDirectory
	trainer.RoleDirectory
	payment.MemberCounter
}

type ClassRepo interface {
	catalog.Repository
	payment.BookingCounter
}

// Repos is one repository per collection group, backed by the same store.
type Repos struct {
	Users      UserRepo
	Trainers   trainer.Repository
	Classes    ClassRepo
	Posts      forum.Repository
	Payments   payment.Repository
	Slots      slot.Repository
	Newsletter newsletter.Repository
}

func NewFirestore(fs *firestore.Client) Repos {
	return Repos{
		Users:      user.NewRepo(fs),
		Trainers:   trainer.NewRepo(fs),
		Classes:    catalog.NewRepo(fs),
		Posts:      forum.NewRepo(fs),
		Payments:   payment.NewRepo(fs),
		Slots:      slot.NewRepo(fs),
		Newsletter: newsletter.NewRepo(fs),
	}
}

func NewMemory(db *memory.DB) Repos {
	return Repos{
		Users:      db.Users(),
		Trainers:   db.Trainers(),
		Classes:    db.Classes(),
		Posts:      db.Posts(),
		Payments:   db.Payments(),
		Slots:      db.Slots(),
		Newsletter: db.Newsletter(),
	}
}
