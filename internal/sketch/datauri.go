package sketch

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI parses a base64 "data:<mime>;base64,<payload>" URI.
func DecodeDataURI(uri string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("not a data URI")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("invalid data URI")
	}
	mime, ok = strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, errors.New("data URI is not base64")
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode base64: %w", err)
	}
	return mime, data, nil
}

func isDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}
