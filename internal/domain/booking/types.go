package booking

type Status string

const (
	StatusPending             Status = "pending"
	StatusConfirmed           Status = "confirmed"
	StatusRejected            Status = "rejected"
	StatusCancelled           Status = "cancelled"
	StatusRescheduleRequested Status = "reschedule_requested"
	StatusAdminProposal       Status = "admin_proposal"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled,
		StatusRescheduleRequested, StatusAdminProposal:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusRejected
}

// Blocks reports whether a booking in this status occupies its interval.
func (s Status) Blocks() bool {
	return s.IsValid() && !s.IsTerminal()
}

// InactiveStatuses are excluded from overlap checks and busy time.
var InactiveStatuses = []Status{StatusCancelled, StatusRejected}

type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
	DecisionReject  Decision = "reject"
)
