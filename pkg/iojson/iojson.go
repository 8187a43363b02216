// Package iojson reads and writes the JSON documents exchanged by the
// command line: --json listings, import files and error envelopes.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the envelope written when a JSON response cannot be produced.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// fallbackError builds the envelope by hand for when marshaling itself fails.
func fallbackError(msg string, cause error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(cause.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError renders msg and data as an indented Error. If data cannot be
// marshaled the result still carries msg along with the marshaling error.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return fallbackError(msg, err)
	}
	return string(bits)
}

// WriteWith writes obj to w as indented JSON. A value that cannot be
// marshaled produces an Error envelope on ew instead.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, err = fmt.Fprintln(ew, fallbackError("error marshaling in iojson.Write", err))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
