package users

import "time"

// User is the persisted account record. The password field stores an
// Argon2id hash, never the raw credential. JSON tags match the shape the
// store has always held under the "users" key.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	MobilePhone string    `json:"mobilePhone"`
	Password    string    `json:"password"`
	CreatedAt   time.Time `json:"createdAt"`
	IsAdmin     bool      `json:"isAdmin"`
}
