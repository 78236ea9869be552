package model

import "time"

// Client is the identity record for a hotel guest.  Clients are
// registered once and never deleted; reservations reference them
// by their opaque id.  The id is a UUID generated at creation and
// is the only field the registry ever matches on; display names
// are not unique.
//
// Fields:
//  ID        – opaque UUID assigned at registration.
//  Name      – display name.
//  Phone     – contact phone number.
//  Email     – contact email address.
//  CreatedAt – registration timestamp (UTC).
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
