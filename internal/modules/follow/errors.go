package follow

import "errors"

var (
	ErrSelfFollow       = errors.New("self follows are forbidden")
	ErrAlreadyFollowing = errors.New("cannot follow twice")
	ErrNotFollowing     = errors.New("subscription does not exist")
	ErrUserNotFound     = errors.New("user not found")
)
