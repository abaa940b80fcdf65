package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/payslip"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	ComputeAll(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{
		payslipService: payslipService,
	}
}

// Compute implements PayslipHandler.
func (h *payslipHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var req payslip.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	res, err := h.payslipService.Compute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip computed", res)
}

// ComputeAll implements PayslipHandler.
func (h *payslipHandlerImpl) ComputeAll(w http.ResponseWriter, r *http.Request) {
	var req payslip.ComputeAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	res, err := h.payslipService.ComputeAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslips computed", res)
}

// Get implements PayslipHandler.
func (h *payslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	res, err := h.payslipService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, res)
}

// List implements PayslipHandler.
func (h *payslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	filter := payslip.PayslipFilter{
		EmployeeID: query.Get("employee_id"),
		DateFrom:   query.Get("date_from"),
		DateTo:     query.Get("date_to"),
		Page:       page,
		Limit:      limit,
	}
	filter.Normalize()

	res, err := h.payslipService.ListPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((res.TotalItems + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, res.Payslips, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: res.TotalItems,
		TotalPages: totalPages,
	})
}
