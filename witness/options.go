package witness

import (
	commoncbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/datatrails/go-datatrails-common/logger"
)

type Format string

const (
	FormatCBOR Format = "cbor"
	FormatYAML Format = "yaml"
)

type CodecOptions struct {
	Log       logger.Logger
	CBORCodec *commoncbor.CBORCodec
	Format    Format
}

// Option is a generic option type. Implementations type assert to their
// options target and ignore options that do not apply to them.
type Option func(any)

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*CodecOptions); ok {
			o.Log = log
		}
	}
}

func WithCBORCodec(codec *commoncbor.CBORCodec) Option {
	return func(opts any) {
		if o, ok := opts.(*CodecOptions); ok {
			o.CBORCodec = codec
		}
	}
}

func WithFormat(format Format) Option {
	return func(opts any) {
		if o, ok := opts.(*CodecOptions); ok {
			o.Format = format
		}
	}
}
