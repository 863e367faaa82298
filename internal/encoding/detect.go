// Package encoding normalizes uploaded ledger files to UTF-8. Bank and ERP
// exports in the wild arrive as UTF-8 with or without BOM, UTF-16, or a
// legacy Windows code page; callers always get a plain UTF-8 stream.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// charsets maps chardet results to decoders. Anything unlisted falls back
// to Windows-1252, the usual suspect for Latin-American spreadsheet exports.
var charsets = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-15":  charmap.ISO8859_15,
}

// NewUTF8Reader wraps r so reads yield UTF-8. Resolution order: BOM, valid
// UTF-8 as-is, chardet heuristic, Windows-1252 fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		return br, nil
	}

	// UTF-16 decoders consume the BOM themselves.
	if bytes.HasPrefix(head, []byte{0xFF, 0xFE}) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, dec), nil
	}

	if bytes.HasPrefix(head, []byte{0xFE, 0xFF}) {
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, dec), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if best, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if best.Charset == "UTF-8" {
			return br, nil
		}

		if enc, ok := charsets[best.Charset]; ok {
			return transform.NewReader(br, enc.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}
