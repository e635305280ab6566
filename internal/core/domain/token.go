package domain

import "time"

// Token is the signed bearer credential returned by Login. It is transient:
// nothing here persists or revokes it.
type Token struct {
	AccessToken string    `json:"token"`
	ExpiresAt   time.Time `json:"expiration"`
}
