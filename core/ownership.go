package core

import "time"

// GuestRetention is how long an ownerless task stays visible before the
// cleanup sweep may remove it.
const GuestRetention = 10 * time.Hour

// Ownership distinguishes a task held by a registered user from an
// anonymous guest task. Persisted as a nullable user_id column.
type Ownership struct {
	userID int64
	owned  bool
}

func Owned(userID int64) Ownership {
	return Ownership{userID: userID, owned: true}
}

func Anonymous() Ownership {
	return Ownership{}
}

// UserID returns the owning user id and whether the task is owned at all.
func (o Ownership) UserID() (int64, bool) {
	return o.userID, o.owned
}

// Column converts the variant to the nullable form stored in the database.
func (o Ownership) Column() *int64 {
	if !o.owned {
		return nil
	}
	id := o.userID
	return &id
}

// GuestCutoff returns the oldest creation time still inside the retention
// window as of now.
func GuestCutoff(now time.Time) time.Time {
	return now.Add(-GuestRetention)
}

// GuestExpired reports whether an anonymous task created at createdAt has
// outlived the retention window as of now.
func GuestExpired(createdAt, now time.Time) bool {
	return createdAt.Before(GuestCutoff(now))
}
