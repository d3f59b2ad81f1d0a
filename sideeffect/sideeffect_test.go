package sideeffect

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"

	"github.com/forestrie/go-reconcile/reconcile"
)

func TestStorageWriteContracts(t *testing.T) {
	w := WriteFromUint64(7, 700, 3)

	assert.Equal(t, uint32(3), w.Counter())
	assert.Equal(t, fr.NewElement(7), w.Position())
	assert.True(t, w.Equal(WriteFromUint64(7, 700, 3)))
	assert.False(t, w.Equal(WriteFromUint64(7, 701, 3)))
	assert.False(t, reconcile.IsEmpty(w))
	assert.True(t, reconcile.IsEmpty(w.Empty()))
	assert.True(t, reconcile.IsEmpty(StorageWrite{}))

	// a zero slot with a value is not the sentinel
	assert.False(t, reconcile.IsEmpty(WriteFromUint64(0, 1, 0)))
	assert.Equal(t, "{slot:7 value:700 counter:3}", w.String())
}

func TestEffectContracts(t *testing.T) {
	e := EffectFromUint64(600, 9)

	assert.Equal(t, uint32(9), e.Counter())
	assert.Equal(t, fr.NewElement(600), e.Value())
	assert.True(t, e.Equal(EffectFromUint64(600, 9)))
	assert.False(t, e.Equal(EffectFromUint64(600, 8)))
	assert.True(t, reconcile.IsEmpty(e.Empty()))

	// public effects carry counter zero but are not empty
	assert.False(t, reconcile.IsEmpty(EffectFromUint64(1, 0)))
}
