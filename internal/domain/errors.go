package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotConnected     = errors.New("remote storage is not connected")
	ErrTokenInvalid     = errors.New("remote access token is invalid or expired")
	ErrAlreadySyncing   = errors.New("a sync for this category is already running")
	ErrUnknownCategory  = errors.New("unknown folder category")
	ErrEmptyExtraction  = errors.New("extraction returned no line items")
	ErrAlreadyProcessed = errors.New("file has already been processed")
	ErrDuplicateSkuCode = errors.New("a sku with this code already exists")
)
