package importers

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding is returned when no supported encoding decodes the input cleanly.
var ErrUnknownEncoding = errors.New("unable to detect text encoding")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type candidate struct {
	name     string
	encoding encoding.Encoding
}

// Tried in order after UTF-8. GB18030 is a superset of GBK and catches
// characters GBK cannot represent.
var fallbackEncodings = []candidate{
	{"gbk", simplifiedchinese.GBK},
	{"gb18030", simplifiedchinese.GB18030},
}

// DecodeText converts raw file contents to a string and reports the encoding used.
func DecodeText(data []byte) (string, string, error) {
	if len(data) >= 2 && (bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || bytes.HasPrefix(data, []byte{0xFE, 0xFF})) {
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", "", err
		}
		return string(decoded), "utf-16", nil
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	for _, c := range fallbackEncodings {
		decoded, err := c.encoding.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		text := string(decoded)
		if strings.ContainsRune(text, utf8.RuneError) {
			continue
		}
		return text, c.name, nil
	}

	return "", "", ErrUnknownEncoding
}
