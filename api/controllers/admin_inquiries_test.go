package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mayarosales/cakecafe-backend/internal/inquiries"
	pkgerrors "github.com/mayarosales/cakecafe-backend/pkg/errors"
)

type stubInquiriesService struct {
	list    []inquiries.InquiryDTO
	dto     *inquiries.InquiryDTO
	err     error
	status  string
	query   string
	updated *inquiries.UpdateStatusInput
}

func (s *stubInquiriesService) CreateGeneral(ctx context.Context, input inquiries.CreateGeneralInput) (*inquiries.InquiryDTO, error) {
	return s.dto, s.err
}

func (s *stubInquiriesService) CreateCustomOrder(ctx context.Context, input inquiries.CreateCustomOrderInput) (*inquiries.InquiryDTO, error) {
	return s.dto, s.err
}

func (s *stubInquiriesService) List(ctx context.Context, statusFilter, query string) ([]inquiries.InquiryDTO, error) {
	s.status = statusFilter
	s.query = query
	return s.list, s.err
}

func (s *stubInquiriesService) Get(ctx context.Context, id uuid.UUID) (*inquiries.InquiryDTO, error) {
	return s.dto, s.err
}

func (s *stubInquiriesService) UpdateStatus(ctx context.Context, id uuid.UUID, input inquiries.UpdateStatusInput) (*inquiries.InquiryDTO, error) {
	s.updated = &input
	return s.dto, s.err
}

func newInquiryRouter(svc inquiries.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/inquiries", AdminListInquiries(svc, nil))
	r.Get("/inquiries/{inquiryID}", AdminGetInquiry(svc, nil))
	r.Patch("/inquiries/{inquiryID}", AdminUpdateInquiry(svc, nil))
	return r
}

func TestAdminListInquiriesPassesFilters(t *testing.T) {
	stub := &stubInquiriesService{list: []inquiries.InquiryDTO{{ID: uuid.NewString(), Type: "GENERAL", Status: "OPEN"}}}
	router := newInquiryRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/inquiries?status=all&q=maria", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "all", stub.status)
	require.Equal(t, "maria", stub.query)

	var envelope struct {
		Data struct {
			Inquiries []inquiries.InquiryDTO `json:"inquiries"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Inquiries, 1)
}

func TestAdminGetInquiryRejectsBadID(t *testing.T) {
	router := newInquiryRouter(&stubInquiriesService{})

	req := httptest.NewRequest(http.MethodGet, "/inquiries/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminGetInquiryNotFound(t *testing.T) {
	stub := &stubInquiriesService{err: pkgerrors.New(pkgerrors.CodeNotFound, "inquiry not found")}
	router := newInquiryRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/inquiries/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminUpdateInquiry(t *testing.T) {
	dto := &inquiries.InquiryDTO{ID: uuid.NewString(), Status: "RESOLVED"}
	stub := &stubInquiriesService{dto: dto}
	router := newInquiryRouter(stub)

	body := `{"status":"RESOLVED","resolutionNote":"done"}`
	req := httptest.NewRequest(http.MethodPatch, "/inquiries/"+uuid.NewString(), strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.updated)
	require.Equal(t, "RESOLVED", stub.updated.Status)
	require.NotNil(t, stub.updated.ResolutionNote)
	require.Equal(t, "done", *stub.updated.ResolutionNote)
}
