// SPDX-License-Identifier: Unlicense OR MIT

package drawer

import "errors"

var (
	// ErrChildCount is reported when a drawer is not given exactly a
	// menu panel and a content panel.
	ErrChildCount = errors.New("drawer: exactly two panels are required")
	// ErrDegenerateGeometry is reported when the right margin leaves no
	// room for the menu panel.
	ErrDegenerateGeometry = errors.New("drawer: menu width must be positive")
)

// ConfigError is returned when a drawer cannot be constructed from its
// configuration. It is not recoverable; the embedding layout must be
// fixed.
type ConfigError struct {
	Err    error
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + " (" + e.Detail + ")"
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
