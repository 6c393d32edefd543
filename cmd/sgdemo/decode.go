package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is satisfied by the TOML and YAML stream decoders.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

var decoders = map[string]DecoderFunc{
	".toml": func(r io.Reader) Decoder { return toml.NewDecoder(r).DisallowUnknownFields() },
	".yaml": newYAMLDecoder,
	".yml":  newYAMLDecoder,
}

func newYAMLDecoder(r io.Reader) Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// LoadScene reads a scene file, choosing the format by extension.
func LoadScene(filename string) (*Scene, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%s: unsupported scene format %q", filename, ext)
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	sc, err := ReadScene(bufio.NewReader(fp), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// ReadScene decodes a scene from r.
func ReadScene(r io.Reader, f DecoderFunc) (*Scene, error) {
	sc := &Scene{}
	if err := f(r).Decode(sc); err != nil {
		return nil, err
	}
	return sc, nil
}
