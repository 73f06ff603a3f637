package domain

import "errors"

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrTaskNotFound = errors.New("task not found")
var ErrClientNotFound = errors.New("client not found")
var ErrForbidden = errors.New("access forbidden")
var ErrOwnerExists = errors.New("an owner account already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserDisabled = errors.New("user account is disabled")
var ErrInvalidInput = errors.New("invalid input")
