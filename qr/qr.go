// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package qr turns LNURL payment addresses into scannable PNG codes.
package qr

import (
	"encoding/base64"
	"errors"
	"fmt"
	"image/color"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// DefaultSize is the rendered image width in pixels.
	DefaultSize = 250

	lightningScheme = "lightning:"
)

var ErrEmpty = errors.New("nothing to encode")

// FallbackHint is shown next to an encoding error.
const FallbackHint = "Try copying the LNURL instead"

var uriPrefixes = []string{lightningScheme, "http://", "https://"}

// PaymentURI returns value unchanged when it already carries a payment or
// web scheme and prefixes "lightning:" otherwise.
func PaymentURI(value string) string {
	value = strings.TrimSpace(value)
	lower := strings.ToLower(value)
	for _, prefix := range uriPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return value
		}
	}
	return lightningScheme + value
}

// Encode renders the payment URI for value as a PNG with high error
// correction, black on white with the standard quiet zone.
func Encode(value string, size int) ([]byte, error) {
	if strings.TrimSpace(value) == "" {
		return nil, ErrEmpty
	}
	if size <= 0 {
		size = DefaultSize
	}

	code, err := qrcode.New(PaymentURI(value), qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	code.ForegroundColor = color.Black
	code.BackgroundColor = color.White

	png, err := code.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// DataURL wraps PNG bytes for inline use in an <img> tag.
func DataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
