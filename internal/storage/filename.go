package storage

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrPathEscapesBase is returned for a path outside the storage base directory
var ErrPathEscapesBase = errors.New("path escapes base directory")

var (
	unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)
	repeatedUnders  = regexp.MustCompile(`_+`)
)

// StripAccents removes diacritics, so "João Conceição" becomes
// "Joao Conceicao"
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// SanitizeFileName turns a display name into a portable file name: accents
// are stripped, whitespace becomes "_" and anything else outside
// [A-Za-z0-9._-] is dropped
func SanitizeFileName(name string) string {
	name = StripAccents(strings.TrimSpace(name))
	name = strings.Join(strings.Fields(name), "_")
	name = strings.ReplaceAll(name, "..", "")
	name = unsafeFileChars.ReplaceAllString(name, "")
	name = repeatedUnders.ReplaceAllString(name, "_")
	return strings.Trim(name, "_.")
}

// ReceiptFileName builds "recibo-<mode>-<name><ext>", falling back to
// "recibo-<mode><ext>" when the name has nothing printable
func ReceiptFileName(fullName, mode string, fileType FileType) string {
	base := "recibo-" + SanitizeFileName(mode)
	if name := SanitizeFileName(fullName); name != "" {
		base += "-" + name
	}
	return base + fileType.Extension()
}
