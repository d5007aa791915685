// Package format holds the display helpers shared by checkout responses and
// published events.
package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// IDR renders an amount as Indonesian Rupiah: Rp prefix, dot-grouped
// thousands, no fraction digits (IDR has no commonly used subunit).
func IDR(amount float64) string {
	return printer.Sprintf("Rp%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// ImageURL resolves an image path served by the backend. Absolute URLs pass
// through; relative paths are joined onto base. An empty path stays empty.
func ImageURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + path
}
