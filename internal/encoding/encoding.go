// Package encoding resolves named text encodings used to read and write
// source files. Cache digests are computed over on-disk bytes, so the codec
// sits between the pipeline's string world and the file's byte world.
package encoding

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

const defaultName = "UTF-8"

// Codec converts between a file's on-disk bytes and in-memory source text.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// Resolve looks up an encoding by IANA name. An empty name selects UTF-8.
func Resolve(name string) (*Codec, error) {
	if name == "" {
		name = defaultName
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", name)
	}
	return &Codec{name: name, enc: enc}, nil
}

// Default returns the UTF-8 codec.
func Default() *Codec {
	c, err := Resolve(defaultName)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Codec) Name() string {
	return c.name
}

// Decode converts file bytes into source text. The x/text decoders
// substitute U+FFFD for malformed input, so UTF-8 input is validated up
// front to surface encoding mismatches as read failures.
func (c *Codec) Decode(data []byte) (string, error) {
	if c.enc == unicode.UTF8 && !utf8.Valid(data) {
		return "", fmt.Errorf("content is not valid %s", c.name)
	}
	out, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode as %s: %w", c.name, err)
	}
	return string(out), nil
}

// Encode converts source text back into file bytes.
func (c *Codec) Encode(text string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode as %s: %w", c.name, err)
	}
	return out, nil
}
