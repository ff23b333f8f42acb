package form

import (
	"time"

	"github.com/bornholm/campus/internal/authn"
)

type User struct {
	Email      string
	SignedInAt time.Time
}

// UserEmail implements authn.User.
func (u *User) UserEmail() string {
	return u.Email
}

// UserSignedInAt implements authn.User.
func (u *User) UserSignedInAt() time.Time {
	return u.SignedInAt
}

var _ authn.User = &User{}
