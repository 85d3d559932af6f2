package core

import "errors"

var ErrNotFound = errors.New("resource is not found")
var ErrAlreadyExists = errors.New("resource already exists")
var ErrDependencyNotFound = errors.New("referenced resource is not found")
var ErrValidation = errors.New("invalid request")
