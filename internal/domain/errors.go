package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName   = errors.New("invalid name")
	ErrMalformedWWN  = errors.New("malformed WWN")
	ErrInvalidFabric = errors.New("invalid fabric")
	ErrInvalidRole   = errors.New("invalid role")
	ErrRequired      = errors.New("required field missing")
	ErrEmptyZone     = errors.New("zone has no members")
	ErrEmptyConfig   = errors.New("configuration has no zones")

	ErrTableReadFailed  = errors.New("table read failed")
	ErrTableParseFailed = errors.New("table parse failed")

	ErrCatalogReadFailed  = errors.New("catalog read failed")
	ErrCatalogWriteFailed = errors.New("catalog write failed")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}
