package inquiries

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mayarosales/cakecafe-backend/pkg/db/models"
	"github.com/mayarosales/cakecafe-backend/pkg/enums"
)

// ErrNotFound reports a lookup miss for a specific inquiry id.
var ErrNotFound = errors.New("inquiry not found")

// ListParams filters the admin triage listing.
type ListParams struct {
	// Status filters the listing; nil means all statuses.
	Status *enums.InquiryStatus
	// Query matches name, email, phone, or message, case insensitive.
	Query string
}

// TriageUpdate is the admin mutation applied to an inquiry. Payment fields
// are deliberately absent; triage never touches them.
type TriageUpdate struct {
	Status enums.InquiryStatus
	// ResolutionNote replaces the stored note when non-nil. A nil note on
	// reopen keeps the history.
	ResolutionNote *string
	ResolvedAt     *time.Time
}

// Repository exposes persistence for the shared intake table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, inquiry *models.Inquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)
	List(ctx context.Context, params ListParams) ([]models.Inquiry, error)
	UpdateTriage(ctx context.Context, id uuid.UUID, update TriageUpdate) (int64, error)
	SetCheckoutSession(ctx context.Context, id uuid.UUID, sessionID string) error
	MarkPaid(ctx context.Context, id uuid.UUID, paymentIntentID *string, now time.Time) (int64, error)
	MarkCanceled(ctx context.Context, id uuid.UUID) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository builds an inquiries repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *repositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *repositoryImpl) List(ctx context.Context, params ListParams) ([]models.Inquiry, error) {
	query := r.db.WithContext(ctx).Model(&models.Inquiry{})
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(COALESCE(phone, '')) LIKE ? OR LOWER(COALESCE(message, '')) LIKE ?",
			like, like, like, like,
		)
	}

	var inquiries []models.Inquiry
	if err := query.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *repositoryImpl) UpdateTriage(ctx context.Context, id uuid.UUID, update TriageUpdate) (int64, error) {
	values := map[string]any{
		"status":      update.Status,
		"resolved_at": update.ResolvedAt,
		"updated_at":  time.Now().UTC(),
	}
	if update.ResolutionNote != nil {
		if note := strings.TrimSpace(*update.ResolutionNote); note == "" {
			values["resolution_note"] = nil
		} else {
			values["resolution_note"] = note
		}
	}

	result := r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repositoryImpl) SetCheckoutSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id = ?", id).
		UpdateColumn("stripe_checkout_session_id", sessionID).Error
}

// MarkPaid flips an order to PAID exactly once. The WHERE clause is the
// idempotency mechanism: retries and duplicate webhook deliveries match
// zero rows.
func (r *repositoryImpl) MarkPaid(ctx context.Context, id uuid.UUID, paymentIntentID *string, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id = ? AND type = ? AND (payment_status IS NULL OR payment_status <> ?)",
			id, enums.InquiryTypeOrder, enums.PaymentStatusPaid).
		Updates(map[string]any{
			"payment_status":           enums.PaymentStatusPaid,
			"paid_at":                  now,
			"stripe_payment_intent_id": paymentIntentID,
			"updated_at":               now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// MarkCanceled cancels a still-pending order. Paid orders never move.
func (r *repositoryImpl) MarkCanceled(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id = ? AND type = ? AND payment_status = ?",
			id, enums.InquiryTypeOrder, enums.PaymentStatusPending).
		Updates(map[string]any{
			"payment_status": enums.PaymentStatusCanceled,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
