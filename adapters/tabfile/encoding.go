package tabfile

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// encodingCandidate is one entry in the fixed decode-attempt order
type encodingCandidate struct {
	name   string
	decode func(data []byte) (string, error)
}

// candidateEncodings is the fixed priority order tried against an
// uploaded file; the first candidate that decodes cleanly wins.
func candidateEncodings() []encodingCandidate {
	candidates := []encodingCandidate{
		{name: "utf-8", decode: decodePlainUTF8},
		{name: "utf-8-sig", decode: decodeUTF8WithBOM},
	}
	for _, iana := range []string{"Shift_JIS", "Windows-31J"} {
		if enc, err := ianaindex.IANA.Encoding(iana); err == nil && enc != nil {
			candidates = append(candidates, encodingCandidate{
				name:   strings.ToLower(iana),
				decode: japaneseDecoder(enc),
			})
		}
	}
	return candidates
}

// decodePlainUTF8 accepts valid UTF-8 without a byte-order mark; BOM
// input is deferred to the BOM-aware candidate
func decodePlainUTF8(data []byte) (string, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return "", fmt.Errorf("byte-order mark present")
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("invalid UTF-8 sequence")
	}
	return string(data), nil
}

// decodeUTF8WithBOM requires and strips the byte-order mark
func decodeUTF8WithBOM(data []byte) (string, error) {
	if !bytes.HasPrefix(data, utf8BOM) {
		return "", fmt.Errorf("byte-order mark missing")
	}
	stripped := data[len(utf8BOM):]
	if !utf8.Valid(stripped) {
		return "", fmt.Errorf("invalid UTF-8 sequence after BOM")
	}
	return string(stripped), nil
}

// japaneseDecoder wraps an x/text encoding; the decoder substitutes
// U+FFFD for undecodable bytes, which we treat as a decode error so
// the next candidate gets a chance
func japaneseDecoder(enc encoding.Encoding) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		if bytes.ContainsRune(decoded, utf8.RuneError) && !bytes.ContainsRune(data, utf8.RuneError) {
			return "", fmt.Errorf("undecodable byte sequence")
		}
		return string(decoded), nil
	}
}

// decodeText runs the candidate chain and returns the decoded text and
// the winning encoding name
func decodeText(data []byte) (string, string, error) {
	var lastErr error
	for _, candidate := range candidateEncodings() {
		text, err := candidate.decode(data)
		if err == nil {
			return text, candidate.name, nil
		}
		lastErr = err
	}
	return "", "", fmt.Errorf("no supported encoding decoded the file: %w", lastErr)
}
