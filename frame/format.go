package frame

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	// This is the format camera sensors publish.
	FormatRGB8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Channels is the number of 8-bit samples per pixel.
	Channels int

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {Channels: 1, IsGrayscale: true},
	FormatRGB8:  {Channels: 3},
}

var formatNames = [formatCount]string{
	FormatGray8: "Gray8",
	FormatRGB8:  "RGB8",
}

// FormatForChannels returns the format storing the given number of channels.
// The second result is false for any count other than 1 or 3.
func FormatForChannels(channels int) (Format, bool) {
	switch channels {
	case 1:
		return FormatGray8, true
	case 3:
		return FormatRGB8, true
	default:
		return formatCount, false
	}
}

// Info returns the metadata for this format.
// Returns zero FormatInfo for invalid formats.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of samples per pixel.
func (f Format) Channels() int {
	return f.Info().Channels
}

// RowBytes returns the number of bytes in one row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.Channels()
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	if f >= formatCount {
		return "Unknown"
	}
	return formatNames[f]
}
