//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// ErrCancelled is returned when the user closes the dialog.
var ErrCancelled = dialog.ErrCancelled

type Result struct {
	Path string
	Name string
	Data []byte
}

// OpenFile asks for a text file holding a FEN.
func OpenFile(title string) (Result, error) {
	path, err := dialog.File().
		Title(title).
		Filter("Position (FEN)", "fen", "txt").
		Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}

// SaveImage asks where to export the board. The extension picks the
// format; a bare name gets ".svg".
func SaveImage(title string) (string, error) {
	path, err := dialog.File().
		Title(title).
		Filter("SVG image", "svg").
		Filter("PNG image", "png").
		Save()
	if err != nil {
		return "", err
	}
	if filepath.Ext(path) == "" {
		path += ".svg"
	}
	return path, nil
}

func IsCancelled(err error) bool {
	return errors.Is(err, dialog.ErrCancelled)
}
