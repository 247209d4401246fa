package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mayarosales/cakecafe-backend/internal/checkout"
	pkgerrors "github.com/mayarosales/cakecafe-backend/pkg/errors"
)

type stubCheckoutService struct {
	result *checkout.Result
	err    error
	input  *checkout.Input
}

func (s *stubCheckoutService) Execute(ctx context.Context, input checkout.Input) (*checkout.Result, error) {
	s.input = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestCheckoutReturnsHostedURL(t *testing.T) {
	stub := &stubCheckoutService{result: &checkout.Result{URL: "https://checkout.stripe.com/pay/cs_1", InquiryID: "id"}}
	handler := Checkout(stub, nil)

	body := `{"customer":{"name":"Ana","email":"ana@example.com"},"items":[{"id":"p1","qty":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "https://checkout.stripe.com/pay/cs_1", envelope.Data["url"])

	require.NotNil(t, stub.input)
	require.Equal(t, "Ana", stub.input.Customer.Name)
	require.Len(t, stub.input.Items, 1)
	require.Equal(t, 2, stub.input.Items[0].Qty)
}

func TestCheckoutRejectsMalformedBody(t *testing.T) {
	stub := &stubCheckoutService{}
	handler := Checkout(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{"customer":{}}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Nil(t, stub.input, "service must not run on invalid input")
}

func TestCheckoutMapsServiceErrors(t *testing.T) {
	stub := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeValidation, "invalid product in cart")}
	handler := Checkout(stub, nil)

	body := `{"customer":{"name":"Ana","email":"ana@example.com"},"items":[{"id":"p1","qty":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "invalid product in cart", envelope.Error.Message)
}
