//go:build !js && !wasm
// +build !js,!wasm

package gclipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrEmpty = errors.New("clipboard has no position")

func WriteFEN(fen string) error {
	return clipboard.WriteAll(fen)
}

func ReadFEN() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	fen := ExtractFEN(s)
	if fen == "" {
		return "", ErrEmpty
	}
	return fen, nil
}

// ExtractFEN returns the first non-empty line with surrounding quotes and
// spaces removed.
func ExtractFEN(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.Trim(strings.TrimSpace(line), `"'`)
		if line != "" {
			return line
		}
	}
	return ""
}
