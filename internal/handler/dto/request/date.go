package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const dateOnly = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date: expected RFC 3339 or YYYY-MM-DD")

// Date accepts either a full RFC 3339 timestamp or a calendar date (read as UTC midnight).
type Date struct {
	time.Time
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidDate
	}

	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339Nano))
}
