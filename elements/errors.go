// SPDX-License-Identifier: MIT
// Package elements: sentinel errors. Match with errors.Is.

package elements

import "errors"

var (
	// ErrInvalidSymbol indicates a symbol that is not 1–3 ASCII letters
	// starting with an uppercase letter followed by lowercase letters.
	ErrInvalidSymbol = errors.New("elements: invalid symbol")

	// ErrInvalidNumber indicates a non-positive atomic number.
	ErrInvalidNumber = errors.New("elements: invalid atomic number")

	// ErrDuplicateSymbol indicates the same symbol or number appears twice.
	ErrDuplicateSymbol = errors.New("elements: duplicate atom")

	// ErrUnknownFormat indicates an unsupported encoding or file extension.
	ErrUnknownFormat = errors.New("elements: unknown format")
)
