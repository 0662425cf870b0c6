package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-platform/backend/internal/domain/catalog"
	"fitness-platform/backend/internal/domain/trainer"
	"fitness-platform/backend/internal/store/memory"
	"fitness-platform/backend/internal/utils"
)

func newService(t *testing.T) (*catalog.Service, *trainer.Service) {
	t.Helper()
	db := memory.New()
	trainers := trainer.NewService(db.Trainers(), db.Users())
	return catalog.NewService(db.Classes(), trainers), trainers
}

func addClasses(t *testing.T, svc *catalog.Service, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := svc.CreateClass(context.Background(), catalog.CreateClassInput{
			Name:    n,
			Image:   "https://img.test/" + n + ".png",
			Details: n + " details",
		})
		require.NoError(t, err)
	}
}

func addTrainer(t *testing.T, svc *trainer.Service, email string, skills ...string) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.Apply(ctx, trainer.ApplyInput{Email: email, FullName: email, Skills: skills})
	require.NoError(t, err)
	_, err = svc.Accept(ctx, email)
	require.NoError(t, err)
}

func TestListClassesPagination(t *testing.T) {
	svc, _ := newService(t)
	for i := 0; i < 10; i++ {
		addClasses(t, svc, fmt.Sprintf("Class %02d", i))
	}

	p, err := svc.ListClasses(context.Background(), 2, "")
	require.NoError(t, err)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	require.Len(t, p.Classes, 4)
	// newest first, so the second page holds the four oldest
	assert.Equal(t, "Class 03", p.Classes[0].Name)
	assert.Equal(t, "Class 00", p.Classes[3].Name)

	p, err = svc.ListClasses(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Len(t, p.Classes, catalog.PageSize)
}

func TestListClassesEmpty(t *testing.T) {
	svc, _ := newService(t)

	p, err := svc.ListClasses(context.Background(), 1, "")
	require.NoError(t, err)
	assert.NotNil(t, p.Classes)
	assert.Empty(t, p.Classes)
	assert.Equal(t, 0, p.TotalPages)

	addClasses(t, svc, "Yoga")
	p, err = svc.ListClasses(context.Background(), 1, "boxing")
	require.NoError(t, err)
	assert.Empty(t, p.Classes)
	assert.Equal(t, 0, p.TotalPages)
}

func TestListClassesSearch(t *testing.T) {
	svc, _ := newService(t)
	addClasses(t, svc, "Morning Yoga", "Power YOGA", "Boxing", "HIIT (advanced)")

	p, err := svc.ListClasses(context.Background(), 1, "yoga")
	require.NoError(t, err)
	assert.Equal(t, 1, p.TotalPages)
	require.Len(t, p.Classes, 2)
	assert.Equal(t, "Power YOGA", p.Classes[0].Name)
	assert.Equal(t, "Morning Yoga", p.Classes[1].Name)

	// regex metacharacters are literal
	p, err = svc.ListClasses(context.Background(), 1, "(adv")
	require.NoError(t, err)
	require.Len(t, p.Classes, 1)
	assert.Equal(t, "HIIT (advanced)", p.Classes[0].Name)
}

func TestRelatedTrainers(t *testing.T) {
	svc, trainers := newService(t)
	addClasses(t, svc, "Yoga", "Boxing")
	for i := 0; i < 7; i++ {
		addTrainer(t, trainers, fmt.Sprintf("yogi%d@fit.test", i), "Vinyasa YOGA")
	}
	addTrainer(t, trainers, "boxer@fit.test", "boxing")

	p, err := svc.ListClasses(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, p.Classes, 2)

	byName := map[string]catalog.ClassWithTrainers{}
	for _, c := range p.Classes {
		byName[c.Name] = c
	}
	assert.Len(t, byName["Yoga"].RelatedTrainers, catalog.MaxRelatedTrainers)
	require.Len(t, byName["Boxing"].RelatedTrainers, 1)
	rt := byName["Boxing"].RelatedTrainers[0]
	assert.Equal(t, "boxer@fit.test", rt.FullName)
	assert.NotEmpty(t, rt.ID)
}

func TestCreateClassValidation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateClass(context.Background(), catalog.CreateClassInput{Name: "Yoga", Image: " "})
	assert.True(t, catalog.IsErrBadRequest(err))

	c, err := svc.CreateClass(context.Background(), catalog.CreateClassInput{Name: " Yoga  Flow ", Image: "i", Details: "d"})
	require.NoError(t, err)
	assert.Equal(t, "Yoga  Flow", c.Name)
	assert.Equal(t, "yoga flow", c.NameLower)
	assert.Equal(t, 0, c.Bookings)
}

func TestListClassesSearchSecondPage(t *testing.T) {
	svc, _ := newService(t)
	for i := 0; i < 8; i++ {
		addClasses(t, svc, fmt.Sprintf("Yoga %02d", i), fmt.Sprintf("Boxing %02d", i))
	}

	p, err := svc.ListClasses(context.Background(), 2, "yoga")
	require.NoError(t, err)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	require.Len(t, p.Classes, 2)
	assert.Equal(t, "Yoga 01", p.Classes[0].Name)
	assert.Equal(t, "Yoga 00", p.Classes[1].Name)
}

func TestListClassesPastLastPage(t *testing.T) {
	svc, _ := newService(t)
	for i := 0; i < 8; i++ {
		addClasses(t, svc, fmt.Sprintf("Yoga %02d", i))
	}

	for _, search := range []string{"", "yoga"} {
		for _, page := range []int{3, utils.MaxPage, 1537228672809129303} {
			p, err := svc.ListClasses(context.Background(), page, search)
			require.NoError(t, err)
			assert.NotNil(t, p.Classes)
			assert.Empty(t, p.Classes, "page %d search %q", page, search)
			assert.Equal(t, 2, p.TotalPages)
		}
	}
}
