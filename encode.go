package csvrepair

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

// PassthroughEncoder returns an Encoder that returns the passed data unchanged.
func PassthroughEncoder() Encoder {
	return EncoderFunc(func(data []byte) ([]byte, error) {
		return data, nil
	})
}

// CharsetEncoder returns an Encoder that encodes UTF-8 text
// as the named character encoding.
//
// UTF-8 and the empty string return a passthrough encoder.
func CharsetEncoder(encodingName string) (Encoder, error) {
	if encodingName == "" || encodingName == "UTF-8" {
		return PassthroughEncoder(), nil
	}
	cm := charmapForEncoding(encodingName)
	if cm == nil {
		return nil, fmt.Errorf("no encoder for charset %q", encodingName)
	}
	encoder := cm.NewEncoder()
	return EncoderFunc(encoder.Bytes), nil
}

func charmapForEncoding(encodingName string) *charmap.Charmap {
	switch encodingName {
	case "ISO 8859-1", "Latin-1":
		return charmap.ISO8859_1
	case "Windows 1252":
		return charmap.Windows1252
	case "Macintosh":
		return charmap.Macintosh
	}
	return nil
}
