package nes

import "github.com/pkg/errors"

// Load-time failures. They are returned wrapped with context; use
// errors.Cause to compare against these values.
var (
	ErrRomOpen           = errors.New("unable to open rom")
	ErrUnknownFormat     = errors.New("unknown rom container format")
	ErrUnsupportedHeader = errors.New("NES 2.0 header is unsupported")
	ErrTruncatedRom      = errors.New("rom image is truncated")
	ErrUnsupportedMapper = errors.New("unsupported mapper")
	ErrPaletteFormat     = errors.New("palette data must hold 64 RGB triplets")

	// Returned by the stepping functions of Console until a rom has been
	// loaded successfully.
	ErrNoCartridge = errors.New("no cartridge loaded")
)
