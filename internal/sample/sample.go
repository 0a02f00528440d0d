package sample

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jarfernandez/detect-delimiter/internal/fileutil"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DefaultLines is the number of leading lines sampled from a file.
const DefaultLines = 100

var utf8BOM = []byte("\xef\xbb\xbf")

// Encoding names the byte encoding of sampled input.
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingLatin1      Encoding = "latin1"
	EncodingWindows1252 Encoding = "windows-1252"
)

// ParseEncoding parses an encoding name. Common aliases are accepted.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8", "utf-8-sig":
		return EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1":
		return EncodingLatin1, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q, valid values are: utf-8, latin1, windows-1252", s)
	}
}

type options struct {
	encoding Encoding
}

// Option configures sampling.
type Option func(*options)

// WithEncoding sets the encoding the input is decoded from.
func WithEncoding(enc Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// ReadFirstLines returns the first k lines of the file at path as sanitized
// UTF-8 text. A path of "-" reads from stdin.
func ReadFirstLines(path string, k int, opts ...Option) (string, error) {
	rc, err := fileutil.OpenFileOrStdin(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			log.Warnf("failed to close %s: %v", path, closeErr)
		}
	}()

	text, err := FromReader(rc, k, opts...)
	if err != nil {
		return "", fmt.Errorf("unable to sample %s: %w", path, err)
	}
	return text, nil
}

// FromReader reads at most k lines from r and sanitizes them. Line endings
// are kept as read.
func FromReader(r io.Reader, k int, opts ...Option) (string, error) {
	if k <= 0 {
		return "", fmt.Errorf("sample size must be positive, got %d", k)
	}

	o := options{encoding: EncodingUTF8}
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := head(r, k)
	if err != nil {
		return "", err
	}
	log.Debugf("Sampled %d bytes", len(raw))

	return Sanitize(raw, o.encoding)
}

// head copies r up to and including the k-th line terminator. "\n", "\r\n"
// and a lone "\r" each end a line.
func head(r io.Reader, k int) ([]byte, error) {
	br := bufio.NewReader(r)
	var buf bytes.Buffer
	for lines := 0; lines < k; {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading sample: %w", err)
		}
		buf.WriteByte(c)

		switch c {
		case '\n':
			lines++
		case '\r':
			if next, err := br.Peek(1); err == nil && next[0] == '\n' {
				continue
			}
			lines++
		}
	}
	return buf.Bytes(), nil
}

// Sanitize decodes data from enc into UTF-8, strips a leading byte order mark
// and drops byte sequences that are not valid UTF-8. Valid U+FFFD characters
// in the input are kept.
func Sanitize(data []byte, enc Encoding) (string, error) {
	var decode transform.Transformer
	switch enc {
	case EncodingUTF8, "":
		data = bytes.TrimPrefix(data, utf8BOM)
		decode = transform.Nop
	case EncodingLatin1:
		decode = charmap.ISO8859_1.NewDecoder()
	case EncodingWindows1252:
		decode = charmap.Windows1252.NewDecoder()
	default:
		return "", fmt.Errorf("unsupported encoding %q", enc)
	}

	out, _, err := transform.Bytes(decode, data)
	if err != nil {
		return "", fmt.Errorf("error decoding sample: %w", err)
	}
	return string(bytes.ToValidUTF8(out, nil)), nil
}
