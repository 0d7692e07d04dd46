package request

import (
	"booking-calendar-sync/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=200"`
}

// UpdateSettingsRequest is a partial update; omitted fields keep their value.
type UpdateSettingsRequest struct {
	OpenAt              *string  `json:"open_at" binding:"omitempty,datetime=15:04"`
	CloseAt             *string  `json:"close_at" binding:"omitempty,datetime=15:04"`
	WorkingDays         []int    `json:"working_days" binding:"omitempty,dive,min=0,max=6"`
	AnchorTimes         []string `json:"anchor_times" binding:"omitempty,dive,datetime=15:04"`
	HolidayKeywords     *string  `json:"holiday_keywords" binding:"omitempty,max=500"`
	AllDayIsHoliday     *bool    `json:"all_day_is_holiday"`
	DailyCap            *int     `json:"daily_cap" binding:"omitempty,min=0"`
	WriteCalendarID     *string  `json:"write_calendar_id" binding:"omitempty,max=300"`
	ReadCalendarIDs     []string `json:"read_calendar_ids" binding:"omitempty,dive,max=300"`
	ReminderLeadMinutes *int     `json:"reminder_lead_minutes" binding:"omitempty,min=0"`
}

func (r *UpdateSettingsRequest) ToPatch() (commands.SettingsPatch, error) {
	var p commands.SettingsPatch
	if err := copier.Copy(&p, r); err != nil {
		return commands.SettingsPatch{}, err
	}
	return p, nil
}
