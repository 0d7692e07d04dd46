package response

import (
	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/pkg/dates"
	"booking-calendar-sync/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type LoginResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
}

type SettingsResponse struct {
	OpenAt              string   `json:"open_at"`
	CloseAt             string   `json:"close_at"`
	WorkingDays         []int    `json:"working_days"`
	AnchorTimes         []string `json:"anchor_times"`
	HolidayKeywords     string   `json:"holiday_keywords"`
	AllDayIsHoliday     bool     `json:"all_day_is_holiday"`
	DailyCap            int      `json:"daily_cap"`
	WriteCalendarID     string   `json:"write_calendar_id"`
	ReadCalendarIDs     []string `json:"read_calendar_ids"`
	ReminderLeadMinutes int      `json:"reminder_lead_minutes"`
	CalendarConnected   bool     `json:"calendar_connected"`
}

func FromSettingsDocument(doc settings.Document) (*SettingsResponse, error) {
	res := &SettingsResponse{}
	if err := copier.CopyWithOption(res, &doc, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	res.CalendarConnected = doc.WriteCalendarID != "" && len(doc.ReadCalendarIDs) > 0
	return res, nil
}

type RecalculateResponse struct {
	Month   string `json:"month"`
	Rows    int    `json:"rows"`
	Skipped bool   `json:"skipped"`
}

func FromRecalculateResult(r *commands.RecalculateResult) *RecalculateResponse {
	return &RecalculateResponse{
		Month:   dates.FormatMonth(r.Month),
		Rows:    r.Rows,
		Skipped: r.Skipped,
	}
}
