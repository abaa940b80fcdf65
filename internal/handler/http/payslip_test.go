package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/payslip"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/handler/http/response"
)

type stubPayslipService struct {
	computeRes payslip.ComputeResponse
	getErr     error
}

func (s *stubPayslipService) Compute(_ context.Context, req payslip.ComputeRequest) (payslip.ComputeResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.ComputeResponse{}, err
	}
	return s.computeRes, nil
}

func (s *stubPayslipService) ComputeAll(_ context.Context, _ payslip.ComputeAllRequest) (payslip.ComputeAllResponse, error) {
	return payslip.ComputeAllResponse{}, nil
}

func (s *stubPayslipService) GetPayslip(_ context.Context, _ string) (payslip.PayslipResponse, error) {
	if s.getErr != nil {
		return payslip.PayslipResponse{}, s.getErr
	}
	return payslip.PayslipResponse{ID: "payslip-1"}, nil
}

func (s *stubPayslipService) ListPayslips(_ context.Context, _ payslip.PayslipFilter) (payslip.ListPayslipResponse, error) {
	return payslip.ListPayslipResponse{}, nil
}

func (s *stubPayslipService) RecomputeCurrentPeriod(_ context.Context) error {
	return nil
}

func TestPayslipHandler_Compute(t *testing.T) {
	svc := &stubPayslipService{
		computeRes: payslip.ComputeResponse{
			Payslip: payslip.PayslipResponse{ID: "payslip-1", EmployeeID: "emp-1"},
			Issues:  []payslip.Issue{},
		},
	}
	handler := NewPayslipHandler(svc)

	body, _ := json.Marshal(payslip.ComputeRequest{
		EmployeeID: "emp-1",
		DateFrom:   "2025-04-01",
		DateTo:     "2025-04-30",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslips/compute", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Compute(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
}

func TestPayslipHandler_Compute_InvalidJSON(t *testing.T) {
	handler := NewPayslipHandler(&stubPayslipService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslips/compute", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Compute(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayslipHandler_Compute_ValidationError(t *testing.T) {
	handler := NewPayslipHandler(&stubPayslipService{})

	body, _ := json.Marshal(payslip.ComputeRequest{
		EmployeeID: "",
		DateFrom:   "not-a-date",
		DateTo:     "2025-04-30",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslips/compute", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Compute(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPayslipHandler_Get_NotFound(t *testing.T) {
	handler := NewPayslipHandler(&stubPayslipService{getErr: payslip.ErrPayslipNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payslips/missing", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
