package authn

import "time"

type User interface {
	UserEmail() string
	UserSignedInAt() time.Time
}
