package inquiries

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mayarosales/cakecafe-backend/pkg/db/models"
	dbtypes "github.com/mayarosales/cakecafe-backend/pkg/db/types"
	"github.com/mayarosales/cakecafe-backend/pkg/enums"
	pkgerrors "github.com/mayarosales/cakecafe-backend/pkg/errors"
)

// dateTimeLocalLayout matches the storefront's <input type="datetime-local">.
const dateTimeLocalLayout = "2006-01-02T15:04"

// CreateGeneralInput is a plain contact-form submission.
type CreateGeneralInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// CreateCustomOrderInput is a custom cake request.
type CreateCustomOrderInput struct {
	Occasion          string
	Fulfillment       string
	DateTimeLocal     string
	SizeServings      string
	Flavor            string
	DesignTheme       string
	DesignPhotoURL    string
	CakeName          string
	CakeMessage       string
	DecorationDetails string
	BudgetDollars     string
	Allergies         string
	ContactName       string
	ContactEmail      string
	ContactPhone      string
	PreferredContact  string
}

// UpdateStatusInput carries the admin triage mutation.
type UpdateStatusInput struct {
	Status         string
	ResolutionNote *string
}

// Service exposes intake creation and admin triage.
type Service interface {
	CreateGeneral(ctx context.Context, input CreateGeneralInput) (*InquiryDTO, error)
	CreateCustomOrder(ctx context.Context, input CreateCustomOrderInput) (*InquiryDTO, error)
	List(ctx context.Context, statusFilter, query string) ([]InquiryDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*InquiryDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*InquiryDTO, error)
}

type serviceImpl struct {
	repo Repository
}

// NewService builds the inquiries service.
func NewService(repo Repository) Service {
	return &serviceImpl{repo: repo}
}

func (s *serviceImpl) CreateGeneral(ctx context.Context, input CreateGeneralInput) (*InquiryDTO, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and email are required")
	}

	inquiry := &models.Inquiry{
		Type:    enums.InquiryTypeGeneral,
		Status:  enums.InquiryStatusOpen,
		Name:    name,
		Email:   email,
		Phone:   optionalString(input.Phone),
		Message: optionalString(input.Message),
	}
	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating inquiry")
	}

	dto := toDTO(*inquiry)
	return &dto, nil
}

func (s *serviceImpl) CreateCustomOrder(ctx context.Context, input CreateCustomOrderInput) (*InquiryDTO, error) {
	required := map[string]string{
		"occasion":         input.Occasion,
		"dateTimeLocal":    input.DateTimeLocal,
		"sizeServings":     input.SizeServings,
		"flavor":           input.Flavor,
		"contactName":      input.ContactName,
		"contactEmail":     input.ContactEmail,
		"preferredContact": input.PreferredContact,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing required field").
				WithDetails(map[string]any{"field": field})
		}
	}

	preferred, err := enums.ParsePreferredContact(strings.TrimSpace(input.PreferredContact))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown preferred contact method")
	}
	if preferred != enums.PreferredContactEmail && strings.TrimSpace(input.ContactPhone) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone is required for call or text")
	}

	requestedFor, err := time.ParseInLocation(dateTimeLocalLayout, strings.TrimSpace(input.DateTimeLocal), time.Local)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dateTimeLocal must look like 2006-01-02T15:04")
	}

	budgetCents, err := parseBudgetCents(input.BudgetDollars)
	if err != nil {
		return nil, err
	}

	details := &dbtypes.CustomOrderDetails{
		Occasion:          strings.TrimSpace(input.Occasion),
		Fulfillment:       strings.TrimSpace(input.Fulfillment),
		DateTimeLocal:     strings.TrimSpace(input.DateTimeLocal),
		SizeServings:      strings.TrimSpace(input.SizeServings),
		Flavor:            strings.TrimSpace(input.Flavor),
		DesignTheme:       strings.TrimSpace(input.DesignTheme),
		DesignPhotoURL:    strings.TrimSpace(input.DesignPhotoURL),
		CakeName:          strings.TrimSpace(input.CakeName),
		CakeMessage:       strings.TrimSpace(input.CakeMessage),
		DecorationDetails: strings.TrimSpace(input.DecorationDetails),
		BudgetCents:       budgetCents,
		Allergies:         strings.TrimSpace(input.Allergies),
	}

	inquiry := &models.Inquiry{
		Type:                   enums.InquiryTypeCustomOrder,
		Status:                 enums.InquiryStatusOpen,
		Name:                   strings.TrimSpace(input.ContactName),
		Email:                  strings.TrimSpace(input.ContactEmail),
		Phone:                  optionalString(input.ContactPhone),
		PreferredContactMethod: &preferred,
		RequestedFor:           &requestedFor,
		Details:                details,
	}
	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating custom order")
	}

	dto := toDTO(*inquiry)
	return &dto, nil
}

func (s *serviceImpl) List(ctx context.Context, statusFilter, query string) ([]InquiryDTO, error) {
	params := ListParams{Query: query}
	switch strings.ToLower(strings.TrimSpace(statusFilter)) {
	case "", "open":
		status := enums.InquiryStatusOpen
		params.Status = &status
	case "resolved":
		status := enums.InquiryStatusResolved
		params.Status = &status
	case "all":
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be open, resolved, or all")
	}

	rows, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing inquiries")
	}
	dtos := make([]InquiryDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toDTO(row))
	}
	return dtos, nil
}

func (s *serviceImpl) Get(ctx context.Context, id uuid.UUID) (*InquiryDTO, error) {
	inquiry, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inquiry not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading inquiry")
	}
	dto := toDTO(*inquiry)
	return &dto, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*InquiryDTO, error) {
	status, err := enums.ParseInquiryStatus(strings.ToUpper(strings.TrimSpace(input.Status)))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be OPEN or RESOLVED")
	}

	update := TriageUpdate{Status: status, ResolutionNote: input.ResolutionNote}
	if status == enums.InquiryStatusResolved {
		now := time.Now().UTC()
		update.ResolvedAt = &now
	}
	// Reopening clears resolvedAt but keeps the note unless one is supplied.

	rows, err := s.repo.UpdateTriage(ctx, id, update)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating inquiry")
	}
	if rows == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inquiry not found")
	}

	return s.Get(ctx, id)
}

func parseBudgetCents(raw string) (*int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	dollars, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "budgetDollars must be a number")
	}
	if dollars.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "budgetDollars must not be negative")
	}
	cents := dollars.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return &cents, nil
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
