package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStorage matches every *StorageError.
	ErrStorage = errors.New("settings storage failed")
	// ErrDelivery matches every *DeliveryError.
	ErrDelivery = errors.New("message delivery failed")
	// ErrInvalidDomain is returned when a URL or user input yields no usable hostname.
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrUnsupportedSurface is returned for pages the extension may not touch.
	ErrUnsupportedSurface = errors.New("not available on this page")

	ErrPageNotFound = errors.New("page not found")
	ErrNoListener   = errors.New("no message listener on page")
)

// StorageError wraps a failed read or write against the settings store.
type StorageError struct {
	Op   string // "get" or "set"
	Keys []SettingKey
	Err  error
}

func (e *StorageError) Error() string {
	keys := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		keys[i] = string(k)
	}
	return fmt.Sprintf("settings %s [%s]: %v", e.Op, strings.Join(keys, ","), e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// DeliveryError wraps a failed message send to one page.
type DeliveryError struct {
	PageID PageID
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver to page %s: %v", e.PageID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

func (e *DeliveryError) Is(target error) bool { return target == ErrDelivery }
