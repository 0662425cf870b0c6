package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"

	"fitness-platform/backend/internal/domain/catalog"
	"fitness-platform/backend/internal/domain/newsletter"
	"fitness-platform/backend/internal/domain/payment"
	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/store/memory"
)

const webhookSecret = "whsec_test_secret"

type fakeProvider struct {
	got []payment.IntentRequest
	err error
}

func (f *fakeProvider) CreateIntent(_ context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	f.got = append(f.got, req)
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Intent{ClientSecret: "pi_123_secret_abc", PaymentIntentID: "pi_123"}, nil
}

type fixture struct {
	db       *memory.DB
	provider *fakeProvider
	svc      *payment.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := memory.New()
	p := &fakeProvider{}
	svc := payment.NewService(payment.Deps{
		Repo:        db.Payments(),
		Provider:    p,
		Bookings:    db.Classes(),
		Subscribers: db.Newsletter(),
		Members:     db.Users(),
	}, payment.Config{Currency: "usd", WebhookSecret: webhookSecret})
	return fixture{db: db, provider: p, svc: svc}
}

func TestCreateIntentAmounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	out, err := f.svc.CreateIntent(ctx, payment.IntentInput{Price: 19.99, TrainerID: "tr-1"}, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", out.PaymentIntentID)
	assert.Equal(t, "pi_123_secret_abc", out.ClientSecret)

	require.Len(t, f.provider.got, 1)
	req := f.provider.got[0]
	assert.Equal(t, int64(1999), req.Amount)
	assert.Equal(t, "usd", req.Currency)
	assert.Equal(t, "tr-1", req.Metadata["trainerId"])
	assert.Equal(t, "key-1", req.IdempotencyKey)

	_, err = f.svc.CreateIntent(ctx, payment.IntentInput{Price: "25"}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), f.provider.got[1].Amount)
	assert.NotEmpty(t, f.provider.got[1].IdempotencyKey)
}

func TestCreateIntentRejectsBadPrices(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, price := range []any{-5.0, "abc", nil, 0.0, 1e300, "1e17", 92233720368547758.08} {
		_, err := f.svc.CreateIntent(ctx, payment.IntentInput{Price: price}, "")
		assert.True(t, payment.IsErrBadRequest(err), "price %v", price)
	}
	assert.Empty(t, f.provider.got)
}

func TestCreateIntentProviderFailure(t *testing.T) {
	f := newFixture(t)
	f.provider.err = errors.New("stripe down")

	_, err := f.svc.CreateIntent(context.Background(), payment.IntentInput{Price: 10.0}, "")
	require.Error(t, err)
	assert.False(t, payment.IsErrBadRequest(err))
}

func TestCreateIntentWithoutProvider(t *testing.T) {
	db := memory.New()
	svc := payment.NewService(payment.Deps{Repo: db.Payments()}, payment.Config{})

	_, err := svc.CreateIntent(context.Background(), payment.IntentInput{Price: 10.0}, "")
	assert.ErrorIs(t, err, payment.ErrNotConfigured)
}

func TestRecordPaymentCountsBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	classes := catalog.NewService(f.db.Classes(), nil)
	_, err := classes.CreateClass(ctx, catalog.CreateClassInput{Name: "Yoga", Image: "i", Details: "d"})
	require.NoError(t, err)

	res, err := f.svc.RecordPayment(ctx, payment.RecordInput{Price: 30, Package: "Yoga", UserEmail: "M@fit.test"})
	require.NoError(t, err)
	assert.True(t, res.BookingCounted)

	got, err := f.svc.GetPayment(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "m@fit.test", got.UserEmail)
	assert.False(t, got.PaidAt.IsZero())

	all, err := f.db.Classes().ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, all[0].Bookings)

	res, err = f.svc.RecordPayment(ctx, payment.RecordInput{Price: 30, Package: "Pilates"})
	require.NoError(t, err)
	assert.False(t, res.BookingCounted)

	_, err = f.svc.GetPayment(ctx, "missing")
	assert.True(t, payment.IsErrNotFound(err))
}

func TestBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		paid := base.Add(time.Duration(i) * time.Hour)
		_, err := f.svc.RecordPayment(ctx, payment.RecordInput{Price: 10.5, PaidAt: &paid})
		require.NoError(t, err)
	}
	_, err := newsletter.NewService(f.db.Newsletter()).Subscribe(ctx, newsletter.SubscribeInput{Name: "N", Email: "n@fit.test"})
	require.NoError(t, err)
	users := user.NewService(f.db.Users())
	for _, e := range []string{"a@fit.test", "b@fit.test"} {
		_, err := users.Register(ctx, user.RegisterInput{Email: e})
		require.NoError(t, err)
	}

	b, err := f.svc.Balance(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 84.0, b.TotalBalance, 1e-9)
	require.Len(t, b.RecentPayments, payment.RecentLimit)
	assert.Equal(t, base.Add(7*time.Hour), b.RecentPayments[0].PaidAt)
	assert.Equal(t, 1, b.TotalSubscribers)
	assert.Equal(t, 2, b.TotalPaidMembers)
}

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	payload := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.succeeded","created":1700000000,"livemode":false,"data":{"object":{}}}`)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    webhookSecret,
		Timestamp: time.Now(),
	})
	ev, err := f.svc.HandleWebhook(ctx, signed.Payload, signed.Header)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", ev.ID)
	assert.Equal(t, "payment_intent.succeeded", ev.Type)

	stored, ok := f.db.Payments().Event("evt_1")
	require.True(t, ok)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), stored.Created)

	_, err = f.svc.HandleWebhook(ctx, payload, "t=1,v1=bogus")
	assert.True(t, payment.IsErrBadRequest(err))
}
