package response

import (
	"time"

	"booking-calendar-sync/internal/usecase/queries"
)

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"duration_min"`
	PrepMin     int    `json:"prep_min"`
	Price       string `json:"price"`
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(views))
	for i, v := range views {
		res[i] = &ServiceResponse{
			ID:          v.ID.String(),
			Name:        v.Name,
			DurationMin: v.DurationMin,
			PrepMin:     v.PrepMin,
			Price:       v.Price.StringFixed(2),
		}
	}
	return res
}

type DaySlotsResponse struct {
	Date  string      `json:"date"`
	Slots []time.Time `json:"slots"`
}

type AvailabilityResponse struct {
	ServiceID string              `json:"service_id"`
	From      string              `json:"from"`
	To        string              `json:"to"`
	Days      []*DaySlotsResponse `json:"days"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	days := make([]*DaySlotsResponse, len(v.Days))
	for i, d := range v.Days {
		slots := d.Slots
		if slots == nil {
			slots = []time.Time{}
		}
		days[i] = &DaySlotsResponse{Date: d.Date, Slots: slots}
	}
	return &AvailabilityResponse{
		ServiceID: v.ServiceID.String(),
		From:      v.From,
		To:        v.To,
		Days:      days,
	}
}

type MonthlyAvailabilityResponse struct {
	ServiceID string            `json:"service_id"`
	Month     string            `json:"month"`
	Days      map[string]string `json:"days"`
}

func FromMonthlyAvailabilityView(v *queries.MonthlyAvailabilityView) *MonthlyAvailabilityResponse {
	days := make(map[string]string, len(v.Days))
	for date, status := range v.Days {
		days[date] = string(status)
	}
	return &MonthlyAvailabilityResponse{
		ServiceID: v.ServiceID.String(),
		Month:     v.Month,
		Days:      days,
	}
}
