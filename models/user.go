package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleAgent UserRole = "agent"
)

type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Activity is a generic audit entry, one per significant action.
type Activity struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// LoginActivity records a successful login. Date is the calendar day
// (UTC, "2006-01-02") computed at write time.
type LoginActivity struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	LoginTime time.Time `json:"loginTime"`
	Date      string    `json:"date"`
}
