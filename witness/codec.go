package witness

import (
	"fmt"
	"path/filepath"
	"strings"

	commoncbor "github.com/datatrails/go-datatrails-common/cbor"
	"gopkg.in/yaml.v3"
)

// NewCBORCodec returns the deterministic codec bundles are exchanged with.
func NewCBORCodec() (commoncbor.CBORCodec, error) {
	codec, err := commoncbor.NewCBORCodec(
		commoncbor.NewDeterministicEncOpts(),
		commoncbor.NewDeterministicDecOpts(), // unsigned int decodes to uint64
	)
	if err != nil {
		return commoncbor.CBORCodec{}, err
	}
	return codec, nil
}

// Codec encodes and decodes witness bundles. CBOR is the exchange format,
// YAML is accepted for hand written fixtures.
type Codec struct {
	opts CodecOptions
}

func NewCodec(opts ...Option) (*Codec, error) {
	c := &Codec{opts: CodecOptions{Format: FormatCBOR}}
	for _, o := range opts {
		o(&c.opts)
	}
	if c.opts.Format != FormatCBOR && c.opts.Format != FormatYAML {
		return nil, fmt.Errorf("%w: %q", ErrFormatUnknown, c.opts.Format)
	}
	if c.opts.Format == FormatCBOR && c.opts.CBORCodec == nil {
		codec, err := NewCBORCodec()
		if err != nil {
			return nil, err
		}
		c.opts.CBORCodec = &codec
	}
	return c, nil
}

// FormatFromPath picks YAML for .yaml and .yml files and CBOR otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatCBOR
	}
}

func (c *Codec) Format() Format { return c.opts.Format }

func (c *Codec) marshal(v any) ([]byte, error) {
	if c.opts.Format == FormatYAML {
		return yaml.Marshal(v)
	}
	if c.opts.CBORCodec == nil {
		return nil, ErrCodecNotProvided
	}
	return c.opts.CBORCodec.MarshalCBOR(v)
}

func (c *Codec) unmarshal(data []byte, v any) error {
	if c.opts.Format == FormatYAML {
		return yaml.Unmarshal(data, v)
	}
	if c.opts.CBORCodec == nil {
		return ErrCodecNotProvided
	}
	return c.opts.CBORCodec.UnmarshalInto(data, v)
}

func (c *Codec) debugf(format string, args ...any) {
	if c.opts.Log != nil {
		c.opts.Log.Debugf(format, args...)
	}
}

func (c *Codec) EncodeDedup(b DedupBundle) ([]byte, error) {
	data, err := c.marshal(b)
	if err != nil {
		return nil, err
	}
	c.debugf("encoded dedup bundle: pass=%s capacity=%d format=%s bytes=%d",
		b.PassID, len(b.Sorted), c.opts.Format, len(data))
	return data, nil
}

func (c *Codec) DecodeDedup(data []byte) (DedupBundle, error) {
	var b DedupBundle
	if err := c.unmarshal(data, &b); err != nil {
		return DedupBundle{}, err
	}
	c.debugf("decoded dedup bundle: pass=%s capacity=%d format=%s", b.PassID, len(b.Sorted), c.opts.Format)
	return b, nil
}

func (c *Codec) EncodeOrder(b OrderBundle) ([]byte, error) {
	data, err := c.marshal(b)
	if err != nil {
		return nil, err
	}
	c.debugf("encoded order bundle: pass=%s capacity=%d format=%s bytes=%d",
		b.PassID, len(b.Lt), c.opts.Format, len(data))
	return data, nil
}

func (c *Codec) DecodeOrder(data []byte) (OrderBundle, error) {
	var b OrderBundle
	if err := c.unmarshal(data, &b); err != nil {
		return OrderBundle{}, err
	}
	c.debugf("decoded order bundle: pass=%s capacity=%d format=%s", b.PassID, len(b.Lt), c.opts.Format)
	return b, nil
}

func (c *Codec) EncodeWrites(s WriteSet) ([]byte, error) {
	data, err := c.marshal(s)
	if err != nil {
		return nil, err
	}
	c.debugf("encoded write set: pass=%s capacity=%d format=%s bytes=%d",
		s.PassID, len(s.Writes), c.opts.Format, len(data))
	return data, nil
}

func (c *Codec) DecodeWrites(data []byte) (WriteSet, error) {
	var s WriteSet
	if err := c.unmarshal(data, &s); err != nil {
		return WriteSet{}, err
	}
	c.debugf("decoded write set: pass=%s capacity=%d format=%s", s.PassID, len(s.Writes), c.opts.Format)
	return s, nil
}
