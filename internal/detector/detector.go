package detector

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"composedetect/internal/jsoncodec"
	"composedetect/internal/logger"

	"github.com/rs/zerolog"
)

// DefaultKey is the field whose presence marks a compose-based devcontainer.
const DefaultKey = "dockerComposeFile"

// ErrUnreadable covers every failure to read or interpret the input.
var ErrUnreadable = errors.New("input unreadable or unparseable")

// ReadError is an ErrUnreadable failure carrying its underlying cause.
type ReadError struct {
	Err error
}

// Unreadable wraps cause so that it matches ErrUnreadable.
func Unreadable(cause error) error {
	return &ReadError{Err: cause}
}

func (e *ReadError) Error() string {
	return ErrUnreadable.Error() + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrUnreadable, e.Err}
}

// Mode selects how the target key is searched for.
type Mode string

const (
	// ModeText matches the key as a substring of the serialized input.
	ModeText Mode = "text"
	// ModeKey looks the key up among the top-level fields of the parsed object.
	ModeKey Mode = "key"
)

// ParseMode validates a mode name. Empty selects ModeText.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeText:
		return ModeText, nil
	case ModeKey:
		return ModeKey, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeText, ModeKey)
	}
}

// Options controls a single detection.
type Options struct {
	Key    string
	Mode   Mode
	Logger *logger.Logger
}

// Detect reads all of r and reports whether it carries the target key.
func Detect(r io.Reader, opts Options) (bool, error) {
	key := opts.Key
	if key == "" {
		key = DefaultKey
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return false, Unreadable(err)
	}
	log.Debug().Int("bytes", len(data)).Str("key", key).Str("mode", string(opts.Mode)).Msg("input read")

	var found bool
	switch opts.Mode {
	case "", ModeText:
		found, err = containsText(data, key)
	case ModeKey:
		found, err = containsKey(data, key)
	default:
		_, err = ParseMode(string(opts.Mode))
	}
	if err != nil {
		return false, err
	}
	log.Debug().Bool("found", found).Msg("detection complete")
	return found, nil
}

// containsText serializes the input as a JSON string and searches it, so the
// key also matches inside values and nested objects. The key is escaped the
// same way so characters such as '"' or '\' still match literally.
func containsText(data []byte, key string) (bool, error) {
	serialized, err := jsoncodec.Quote(string(data))
	if err != nil {
		return false, Unreadable(err)
	}
	needle, err := jsoncodec.QuoteBody(key)
	if err != nil {
		return false, Unreadable(err)
	}
	return bytes.Contains(serialized, needle), nil
}

func containsKey(data []byte, key string) (bool, error) {
	obj, err := jsoncodec.Object(data)
	if err != nil {
		return false, Unreadable(err)
	}
	_, ok := obj[key]
	return ok, nil
}
