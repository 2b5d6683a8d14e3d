package wordcount

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIO              = errors.New("io error")
	ErrConfiguration   = errors.New("configuration error")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoInput         = errors.New("no input: pass a file or directory, or pipe text on standard input")
	ErrNoValidSources  = errors.New("no valid files found")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification with errors.Is. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "wordcount failure"
	}
	return strings.Join(parts, ": ")
}
