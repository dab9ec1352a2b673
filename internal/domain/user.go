package domain

import "time"

// User is a login credential record (the "guard" table) linked to
// exactly one Person. The person reference is set at creation and is
// never reassigned.
type User struct {
	ID             string
	Email          string
	Password       string
	Admin          bool
	Disabled       bool
	PersonID       int64
	TimeRegistered time.Time
}
