package booking

type Status int

const (
	StatusOK Status = iota
	StatusInvalidDate
	StatusDaysInvalid
	StatusStayLimitExceeded
	StatusAdvanceLimitExceeded
)

const (
	msgInvalidDate          = "The requested dates are unavailable."
	msgDaysInvalid          = "Bookings must be for at least one day."
	msgStayLimitExceeded    = "Due to the high demand for this hotel, it's not possible to book a room to stay more than 3 days"
	msgAdvanceLimitExceeded = "Due to the high demand for this hotel, it's not possible to book a room more than 30 days in advance"
	msgUnknownStatus        = "Status unknown!"
)

func (s Status) IsOK() bool {
	return s == StatusOK
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidDate:
		return "invalid_date"
	case StatusDaysInvalid:
		return "days_invalid"
	case StatusStayLimitExceeded:
		return "stay_limit_exceeded"
	case StatusAdvanceLimitExceeded:
		return "advance_limit_exceeded"
	default:
		return "unknown"
	}
}

// Message is the text returned to the guest. StatusOK has none.
func (s Status) Message() string {
	switch s {
	case StatusOK:
		return ""
	case StatusInvalidDate:
		return msgInvalidDate
	case StatusDaysInvalid:
		return msgDaysInvalid
	case StatusStayLimitExceeded:
		return msgStayLimitExceeded
	case StatusAdvanceLimitExceeded:
		return msgAdvanceLimitExceeded
	default:
		return msgUnknownStatus
	}
}
