// Package input reads command content from a file argument or stdin.
package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Stdin is the file argument that selects standard input.
const Stdin = "-"

// Error carries a user-facing message and the underlying I/O error.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

// Read returns the whole of stdin when name is "-", otherwise the contents of
// the named file.
func Read(name string, stdin io.Reader) (string, error) {
	if name == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", &Error{Msg: "Failed to read from STDIN.", Err: err}
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", &Error{Msg: fmt.Sprintf("File '%s' does not exist.", name), Err: err}
	case err != nil:
		return "", &Error{Msg: fmt.Sprintf("Failed to read file '%s'.", name), Err: err}
	}
	return string(data), nil
}

// Resolve picks content from the file argument when given, otherwise the
// inline value.
func Resolve(file, inline string, stdin io.Reader) (string, error) {
	if file != "" {
		return Read(file, stdin)
	}
	return inline, nil
}
