package storage

import "errors"

var ErrNoSession = errors.New("no stored session")
