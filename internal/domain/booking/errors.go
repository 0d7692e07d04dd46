package booking

import "booking-calendar-sync/internal/pkg/errs"

var (
	ErrInvalidDuration    = errs.Class("duration must be positive", errs.ErrValidation)
	ErrStartInPast        = errs.Class("start time is in the past", errs.ErrValidation)
	ErrInvalidClientName  = errs.Class("client name is required", errs.ErrValidation)
	ErrInvalidClientEmail = errs.Class("client email is invalid", errs.ErrValidation)
	ErrNoteTooLong        = errs.Class("note is too long", errs.ErrValidation)
	ErrInvalidTokens      = errs.Class("booking tokens must be distinct and non-empty", errs.ErrValidation)
	ErrInvalidTransition  = errs.Class("transition not allowed from current status", errs.ErrValidation)
	ErrNoProposal         = errs.Class("booking has no proposed time", errs.ErrValidation)
	ErrAdminTokenMismatch = errs.Class("admin token mismatch", errs.ErrForbidden)
)
