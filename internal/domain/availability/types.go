package availability

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusHoliday   Status = "holiday"
	StatusClosed    Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusHoliday, StatusClosed:
		return true
	default:
		return false
	}
}

// Entry is one row of the availability index, unique per (Date, ServiceID).
type Entry struct {
	Date      time.Time
	ServiceID uuid.UUID
	Status    Status
}

// DayStatus decides the status of a working, non-holiday day for one service.
// A cap of 0 means uncapped.
func DayStatus(slotCount, bookingCount, dailyCap int) Status {
	if slotCount == 0 {
		return StatusBooked
	}
	if dailyCap > 0 && bookingCount >= dailyCap {
		return StatusBooked
	}
	return StatusAvailable
}
