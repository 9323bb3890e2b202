package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func (f Format) String() string {
	switch f {
	case TextFormat:
		return "text"
	case YAMLFormat:
		return "yaml"
	case JSONFormat:
		return "json"
	default:
		return fmt.Sprintf("<format %d>", int(f))
	}
}

func (f Format) IsText() bool { return f == TextFormat }

// Marshal encodes v as JSON or YAML.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case JSONFormat:
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(d, '\n'), nil
	case YAMLFormat:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: no generic %s encoding", ErrBadFormat, f)
	}
}

// Encode writes v to w as JSON or YAML.
func Encode(w io.Writer, v any, f Format) error {
	d, err := Marshal(v, f)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
