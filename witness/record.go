package witness

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/forestrie/go-reconcile/sideeffect"
)

var (
	ErrFieldElementInvalid = errors.New("witness: field element is not a canonical integer below the modulus")
	ErrFormatUnknown       = errors.New("witness: unknown encoding format")
	ErrCodecNotProvided    = errors.New("witness: a CBOR codec was required but not provided")
)

// Record is the wire form shared by both side-effect types. Field elements
// are decimal integers, or hexadecimal with a 0x prefix. An empty string reads
// as zero. Effects leave
// Slot empty. The empty sentinel is the zero Record.
type Record struct {
	Slot    string `cbor:"1,keyasint,omitempty" yaml:"slot,omitempty"`
	Value   string `cbor:"2,keyasint,omitempty" yaml:"value,omitempty"`
	Counter uint32 `cbor:"3,keyasint,omitempty" yaml:"counter,omitempty"`
}

func elementString(x fr.Element) string {
	if x.IsZero() {
		return ""
	}
	return x.BigInt(new(big.Int)).String()
}

func parseElement(s string) (fr.Element, error) {
	var x fr.Element
	if s == "" {
		return x, nil
	}
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}
	// big.Int accepts a leading sign, a field element has none
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return x, fmt.Errorf("%w: %q", ErrFieldElementInvalid, s)
	}
	b, ok := new(big.Int).SetString(digits, base)
	if !ok || b.Cmp(fr.Modulus()) >= 0 {
		return x, fmt.Errorf("%w: %q", ErrFieldElementInvalid, s)
	}
	x.SetBigInt(b)
	return x, nil
}

// WriteRecord converts w to its wire form.
func WriteRecord(w sideeffect.StorageWrite) Record {
	return Record{Slot: elementString(w.Slot()), Value: elementString(w.Value()), Counter: w.Counter()}
}

// EffectRecord converts e to its wire form.
func EffectRecord(e sideeffect.Effect) Record {
	return Record{Value: elementString(e.Value()), Counter: e.Counter()}
}

func (r Record) StorageWrite() (sideeffect.StorageWrite, error) {
	slot, err := parseElement(r.Slot)
	if err != nil {
		return sideeffect.StorageWrite{}, err
	}
	value, err := parseElement(r.Value)
	if err != nil {
		return sideeffect.StorageWrite{}, err
	}
	return sideeffect.NewStorageWrite(slot, value, r.Counter), nil
}

func (r Record) Effect() (sideeffect.Effect, error) {
	if r.Slot != "" {
		return sideeffect.Effect{}, fmt.Errorf("%w: effects carry no slot, got %q", ErrFieldElementInvalid, r.Slot)
	}
	value, err := parseElement(r.Value)
	if err != nil {
		return sideeffect.Effect{}, err
	}
	return sideeffect.NewEffect(value, r.Counter), nil
}

func writeRecords(writes []sideeffect.StorageWrite) []Record {
	records := make([]Record, len(writes))
	for i, w := range writes {
		records[i] = WriteRecord(w)
	}
	return records
}

func effectRecords(effects []sideeffect.Effect) []Record {
	records := make([]Record, len(effects))
	for i, e := range effects {
		records[i] = EffectRecord(e)
	}
	return records
}

func storageWrites(records []Record) ([]sideeffect.StorageWrite, error) {
	writes := make([]sideeffect.StorageWrite, len(records))
	for i, r := range records {
		w, err := r.StorageWrite()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		writes[i] = w
	}
	return writes, nil
}

func effects(records []Record) ([]sideeffect.Effect, error) {
	out := make([]sideeffect.Effect, len(records))
	for i, r := range records {
		e, err := r.Effect()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = e
	}
	return out, nil
}
