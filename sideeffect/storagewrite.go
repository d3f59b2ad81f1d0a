package sideeffect

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// StorageWrite is a write of value to a storage slot, emitted at counter. The
// slot is the record's position: writes are grouped and deduplicated by it.
type StorageWrite struct {
	slot    fr.Element
	value   fr.Element
	counter uint32
}

// NewStorageWrite returns a write of value to slot emitted at counter.
func NewStorageWrite(slot, value fr.Element, counter uint32) StorageWrite {
	return StorageWrite{slot: slot, value: value, counter: counter}
}

// WriteFromUint64 is NewStorageWrite for small slots and values.
func WriteFromUint64(slot, value uint64, counter uint32) StorageWrite {
	return NewStorageWrite(fr.NewElement(slot), fr.NewElement(value), counter)
}

// Slot is the storage key written.
func (w StorageWrite) Slot() fr.Element { return w.slot }

// Value is the value written to the slot.
func (w StorageWrite) Value() fr.Element { return w.value }

// Counter is the emission order of the write.
func (w StorageWrite) Counter() uint32 { return w.counter }

// Position is the storage slot.
func (w StorageWrite) Position() fr.Element { return w.slot }

// Empty returns the padding sentinel, the zero StorageWrite.
func (StorageWrite) Empty() StorageWrite { return StorageWrite{} }

// Equal reports whether slot, value and counter all match.
func (w StorageWrite) Equal(other StorageWrite) bool { return w == other }

func (w StorageWrite) String() string {
	return fmt.Sprintf("{slot:%s value:%s counter:%d}", w.slot.String(), w.value.String(), w.counter)
}
