package sideeffect

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Effect is an ordered side effect: a value and the counter it was emitted at.
type Effect struct {
	value   fr.Element
	counter uint32
}

// NewEffect returns an effect carrying value, emitted at counter.
func NewEffect(value fr.Element, counter uint32) Effect {
	return Effect{value: value, counter: counter}
}

// EffectFromUint64 is NewEffect for small values.
func EffectFromUint64(v uint64, counter uint32) Effect {
	return NewEffect(fr.NewElement(v), counter)
}

// Value is the effect payload.
func (e Effect) Value() fr.Element { return e.value }

// Counter is the emission order of the effect. Zero marks a public effect.
func (e Effect) Counter() uint32 { return e.counter }

// Empty returns the padding sentinel, the zero Effect.
func (Effect) Empty() Effect { return Effect{} }

// Equal reports whether value and counter both match.
func (e Effect) Equal(other Effect) bool { return e == other }

func (e Effect) String() string {
	return fmt.Sprintf("(%s,%d)", e.value.String(), e.counter)
}
