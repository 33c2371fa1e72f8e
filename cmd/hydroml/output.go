// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func checkFormat(format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown --format %q (want %s or %s)", format, formatText, formatJSON)
	}

	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)

	return err
}

// withOutput runs fn on stdout for "" or "-", otherwise on a created file.
func withOutput(path string, stdout io.Writer, fn func(io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
