package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Seed(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	filter := attendance.AttendanceFilter{
		EmployeeID: query.Get("employee_id"),
		Page:       page,
		Limit:      limit,
	}

	if v := query.Get("date_from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date_from must be YYYY-MM-DD", nil)
			return
		}
		filter.DateFrom = &from
	}
	if v := query.Get("date_to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date_to must be YYYY-MM-DD", nil)
			return
		}
		// Inclusive date: extend to the next midnight.
		end := to.AddDate(0, 0, 1)
		filter.DateTo = &end
	}
	filter.Normalize()

	res, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((res.TotalItems + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, res.Attendances, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: res.TotalItems,
		TotalPages: totalPages,
	})
}

// Seed implements AttendanceHandler.
func (h *attendanceHandlerImpl) Seed(w http.ResponseWriter, r *http.Request) {
	var req attendance.SeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	res, err := h.attendanceService.Seed(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance month seeded", res)
}
