package service

import (
	"errors"

	"converterservice/internal/rates"
)

// Sentinel errors surfaced to the transport layer. The currency and rate
// sentinels are shared with the rates package so errors.Is works across layers.
var (
	// ErrUnknownCurrency indicates a currency code outside the supported set
	// or absent from a fetched rate table.
	ErrUnknownCurrency = rates.ErrUnknownCurrency
	// ErrRateUnavailable indicates no rate could be obtained from any source.
	ErrRateUnavailable = rates.ErrRateUnavailable
	// ErrInvalidAmount indicates a zero or negative conversion amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("not found")
	// ErrInternal indicates an internal server error.
	ErrInternal = errors.New("internal error")
)
