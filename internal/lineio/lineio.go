// Package lineio decodes text input and splits it into lines for the converter.
package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel errors for line reading.
var (
	ErrLineDecode      = errors.New("input is not valid text")
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrRead            = errors.New("failed to read input")
)

// Canonical encoding names.
const (
	EncodingUTF8        = "utf-8"
	EncodingUTF16       = "utf-16"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

const byteOrderMark = "\uFEFF"

// encodings maps canonical names to decoders. UTF-8 has no decoder: input is
// validated instead, so malformed bytes are reported rather than replaced.
var encodings = map[string]encoding.Encoding{
	EncodingUTF8:        nil,
	EncodingUTF16:       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	EncodingLatin1:      charmap.ISO8859_1,
	EncodingWindows1252: charmap.Windows1252,
}

var aliases = map[string]string{
	"utf8":       EncodingUTF8,
	"utf16":      EncodingUTF16,
	"iso-8859-1": EncodingLatin1,
	"iso8859-1":  EncodingLatin1,
	"latin-1":    EncodingLatin1,
	"cp1252":     EncodingWindows1252,
}

// Encodings returns the canonical encoding names, sorted.
func Encodings() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupEncoding resolves a name or alias (case-insensitive) to its canonical name.
// An empty name means UTF-8.
func LookupEncoding(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return EncodingUTF8, nil
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	if _, ok := encodings[key]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownEncoding, name, strings.Join(Encodings(), ", "))
	}
	return key, nil
}

// ReadLines decodes r with the named encoding and returns its lines without
// terminators. Lines end at "\n"; a "\r" before it is dropped. A leading byte
// order mark is removed. A final newline does not produce an empty last line.
// There is no line length limit.
func ReadLines(r io.Reader, encodingName string) ([]string, error) {
	canonical, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	src := r
	if enc := encodings[canonical]; enc != nil {
		src = transform.NewReader(r, enc.NewDecoder())
	}

	br := bufio.NewReader(src)
	var lines []string
	for n := 1; ; n++ {
		raw, err := br.ReadString('\n')
		if raw != "" {
			line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
			if n == 1 {
				line = strings.TrimPrefix(line, byteOrderMark)
			}
			if !utf8.ValidString(line) {
				return nil, fmt.Errorf("%w: line %d is not valid %s", ErrLineDecode, n, canonical)
			}
			lines = append(lines, line)
		}

		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrRead, n, err)
		}
	}
}
