package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/holiday"
)

const dateLayout = "2006-01-02"

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
	}
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, from, to string) ([]holiday.HolidayResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, holiday.ErrInvalidDateRange
	}
	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, holiday.ErrInvalidDateRange
	}
	if toDate.Before(fromDate) {
		return nil, holiday.ErrInvalidDateRange
	}

	holidays, err := s.HolidayRepository.ListByRange(ctx, fromDate, toDate, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}

	return responses, nil
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return holiday.HolidayResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		CompanyID: companyID,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return mapHolidayToResponse(created), nil
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:        h.ID,
		Name:      h.Name,
		StartDate: h.StartDate.Format(dateLayout),
		EndDate:   h.EndDate.Format(dateLayout),
	}
}
