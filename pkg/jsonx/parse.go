package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

var (
	ErrEmptyBody    = errors.New("empty body")
	ErrTrailingJSON = errors.New("trailing data")
)

// Decode reads exactly one JSON value from src into dst, rejecting unknown
// object fields and trailing data.
//
//   - Malformed JSON => *json.SyntaxError, io.EOF, io.ErrUnexpectedEOF
//   - Type mismatch  => *json.UnmarshalTypeError
//   - Unknown field  => error from encoding/json ("json: unknown field ...")
//   - Extra values   => ErrTrailingJSON
func Decode[T any](src io.Reader, dst *T) error {
	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ErrTrailingJSON
	}
	return nil
}

// ParseStrictJSONBody strictly decodes an HTTP request body into dst.
//
// Every failure is a shape problem with the request and maps to 400:
// empty body (ErrEmptyBody), any Decode error, or a body that exceeds a
// limit installed upstream (*http.MaxBytesError).
//
// Required fields and business rules are not checked here.
func ParseStrictJSONBody[T any](r *http.Request, dst *T) error {
	if r == nil || r.Body == nil {
		return ErrEmptyBody
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrEmptyBody
	}
	return Decode(bytes.NewReader(body), dst)
}
