package raster

import (
	"fmt"
	"image/color"

	"golang.org/x/text/cases"
)

// Format is an encoded image format.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{PNG, BMP, TIFF}
}

// ParseFormat returns the Format named s, ignoring case. "tif" is accepted
// for TIFF.
func ParseFormat(s string) (Format, error) {
	switch f := Format(cases.Fold().String(s)); f {
	case PNG, BMP, TIFF:
		return f, nil
	case "tif":
		return TIFF, nil
	}
	return PNG, fmt.Errorf("raster: unknown format %q", s)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case BMP:
		return "image/bmp"
	case TIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}

// Option configures a Backend.
type Option func(*Backend)

// WithFormat sets the encoded output format. Unknown formats fall back to
// PNG.
func WithFormat(f Format) Option {
	return func(b *Backend) {
		switch f {
		case PNG, BMP, TIFF:
			b.format = f
		default:
			b.format = PNG
		}
	}
}

// WithScale upscales the output by an integer factor. Factors below 1 are
// treated as 1.
func WithScale(n int) Option {
	return func(b *Backend) {
		b.scale = max(n, 1)
	}
}

// WithLabel draws s in the bottom-left corner of the output.
// An empty string disables the label.
func WithLabel(s string) Option {
	return func(b *Backend) {
		b.label = s
	}
}

// WithBackground sets the color the surface is cleared to.
// A nil color keeps the current background.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		if c != nil {
			b.background = c
		}
	}
}
