// Package sizes formats byte counts for display.
package sizes

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var units = []string{"KB", "MB", "GB", "TB"}

var printer = message.NewPrinter(language.English)

// ShortText returns a compact size like "512 B", "1.5 MB" or "12 GB".
// One decimal is shown below 10 units, none above.
func ShortText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + " B"
	}
	value := float64(size) / unit
	exp := 0
	for value >= unit && exp < len(units)-1 {
		value /= unit
		exp++
	}
	if value < 10 {
		text := strconv.FormatFloat(value, 'f', 1, 64)
		if text != "10.0" {
			return text + " " + units[exp]
		}
	}
	return strconv.FormatFloat(value, 'f', 0, 64) + " " + units[exp]
}

// LongText returns the exact size with thousands separators, like "1,536 bytes".
func LongText(size int64) string {
	if size == 1 {
		return "1 byte"
	}
	return printer.Sprintf("%d bytes", size)
}
