package models

import "time"

// TimeLog is one clock-in/clock-out pair. ClockOut is nil while the
// work session is still open. Date is the calendar day (UTC,
// "2006-01-02") computed at clock-in and never recomputed afterwards.
type TimeLog struct {
	ID       string     `json:"id"`
	UserID   string     `json:"userId"`
	UserName string     `json:"userName"`
	ClockIn  time.Time  `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut,omitempty"`
	Date     string     `json:"date"`
}

func (t TimeLog) Open() bool {
	return t.ClockOut == nil
}
