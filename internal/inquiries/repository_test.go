package inquiries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mayarosales/cakecafe-backend/pkg/db/models"
	dbtypes "github.com/mayarosales/cakecafe-backend/pkg/db/types"
	"github.com/mayarosales/cakecafe-backend/pkg/enums"
)

func mustCreateOrder(t *testing.T, db *gorm.DB, repo Repository, status enums.PaymentStatus) *models.Inquiry {
	t.Helper()
	ps := status
	amount := 8100
	currency := "usd"
	inquiry := &models.Inquiry{
		Type:          enums.InquiryTypeOrder,
		Status:        enums.InquiryStatusOpen,
		Name:          "Ana",
		Email:         "ana@example.com",
		PaymentStatus: &ps,
		AmountCents:   &amount,
		Currency:      &currency,
		ItemsJSON: dbtypes.LineItems{
			{ProductID: uuid.NewString(), Name: "Chocolate Cake", UnitPriceCents: 8100, Qty: 1},
		},
	}
	require.NoError(t, repo.Create(context.Background(), inquiry))
	return inquiry
}

func TestCreateAssignsID(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	inquiry := &models.Inquiry{Type: enums.InquiryTypeGeneral, Status: enums.InquiryStatusOpen, Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, repo.Create(context.Background(), inquiry))
	require.NotEqual(t, uuid.Nil, inquiry.ID)

	loaded, err := repo.FindByID(context.Background(), inquiry.ID)
	require.NoError(t, err)
	require.Equal(t, "Ana", loaded.Name)
}

func TestFindByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMarkPaidIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := mustCreateOrder(t, db, repo, enums.PaymentStatusPending)
	intent := "pi_123"
	now := time.Now().UTC()

	rows, err := repo.MarkPaid(ctx, order.ID, &intent, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows, "first transition must affect exactly one row")

	rows, err = repo.MarkPaid(ctx, order.ID, &intent, now.Add(time.Minute))
	require.NoError(t, err)
	require.Zero(t, rows, "replays must be no-ops")

	loaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, enums.PaymentStatusPaid, *loaded.PaymentStatus)
	require.NotNil(t, loaded.PaidAt)
	require.WithinDuration(t, now, *loaded.PaidAt, time.Second, "paidAt must keep the first transition time")
	require.Equal(t, "pi_123", *loaded.StripePaymentIntentID)
}

func TestMarkPaidIgnoresNonOrders(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	general := &models.Inquiry{Type: enums.InquiryTypeGeneral, Status: enums.InquiryStatusOpen, Name: "Ana", Email: "a@b.c"}
	require.NoError(t, repo.Create(ctx, general))

	rows, err := repo.MarkPaid(ctx, general.ID, nil, time.Now().UTC())
	require.NoError(t, err)
	require.Zero(t, rows)
}

func TestMarkCanceledOnlyTouchesPending(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	pending := mustCreateOrder(t, db, repo, enums.PaymentStatusPending)
	rows, err := repo.MarkCanceled(ctx, pending.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	paid := mustCreateOrder(t, db, repo, enums.PaymentStatusPending)
	intent := "pi_x"
	_, err = repo.MarkPaid(ctx, paid.ID, &intent, time.Now().UTC())
	require.NoError(t, err)

	rows, err = repo.MarkCanceled(ctx, paid.ID)
	require.NoError(t, err)
	require.Zero(t, rows, "expiry must never cancel a paid order")

	loaded, err := repo.FindByID(ctx, paid.ID)
	require.NoError(t, err)
	require.Equal(t, enums.PaymentStatusPaid, *loaded.PaymentStatus)
}

func TestListFiltersByStatusAndQuery(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	open := &models.Inquiry{Type: enums.InquiryTypeGeneral, Status: enums.InquiryStatusOpen, Name: "Maria Lopez", Email: "maria@example.com"}
	require.NoError(t, repo.Create(ctx, open))
	resolved := &models.Inquiry{Type: enums.InquiryTypeGeneral, Status: enums.InquiryStatusResolved, Name: "John Doe", Email: "john@example.com"}
	require.NoError(t, repo.Create(ctx, resolved))

	openStatus := enums.InquiryStatusOpen
	rows, err := repo.List(ctx, ListParams{Status: &openStatus})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, open.ID, rows[0].ID)

	rows, err = repo.List(ctx, ListParams{Query: "MARIA"})
	require.NoError(t, err)
	require.Len(t, rows, 1, "free text search is case insensitive")

	rows, err = repo.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestSetCheckoutSession(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := mustCreateOrder(t, db, repo, enums.PaymentStatusPending)
	require.NoError(t, repo.SetCheckoutSession(ctx, order.ID, "cs_test_1"))

	loaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, "cs_test_1", *loaded.StripeCheckoutSessionID)
}

func TestUpdateTriageReopenKeepsNote(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	inquiry := &models.Inquiry{Type: enums.InquiryTypeGeneral, Status: enums.InquiryStatusOpen, Name: "Ana", Email: "a@b.c"}
	require.NoError(t, repo.Create(ctx, inquiry))

	note := "called back, resolved"
	now := time.Now().UTC()
	rows, err := repo.UpdateTriage(ctx, inquiry.ID, TriageUpdate{Status: enums.InquiryStatusResolved, ResolutionNote: &note, ResolvedAt: &now})
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	rows, err = repo.UpdateTriage(ctx, inquiry.ID, TriageUpdate{Status: enums.InquiryStatusOpen})
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	loaded, err := repo.FindByID(ctx, inquiry.ID)
	require.NoError(t, err)
	require.Equal(t, enums.InquiryStatusOpen, loaded.Status)
	require.Nil(t, loaded.ResolvedAt)
	require.NotNil(t, loaded.ResolutionNote, "reopen keeps the note for history")
	require.Equal(t, note, *loaded.ResolutionNote)
}
