package models

import "errors"

// ErrUsernameTaken is returned by the store when an insert collides with
// the unique index on username.
var ErrUsernameTaken = errors.New("username already exists")
