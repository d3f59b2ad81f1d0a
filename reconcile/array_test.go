package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-reconcile/sideeffect"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(sideeffect.Effect{}))
	assert.True(t, IsEmpty(sideeffect.StorageWrite{}))
	assert.False(t, IsEmpty(sideeffect.EffectFromUint64(1, 0)))
	assert.False(t, IsEmpty(sideeffect.EffectFromUint64(0, 1)))
	assert.False(t, IsEmpty(sideeffect.WriteFromUint64(1, 0, 0)))
}

func TestValidateArray(t *testing.T) {
	e := sideeffect.EffectFromUint64
	tests := []struct {
		name    string
		arr     []sideeffect.Effect
		want    uint32
		wantErr error
	}{
		{"nil array has length 0", nil, 0, nil},
		{"all empty", make([]sideeffect.Effect, 4), 0, nil},
		{"full", []sideeffect.Effect{e(1, 1), e(2, 2), e(3, 0)}, 3, nil},
		{"padded", []sideeffect.Effect{e(1, 1), e(2, 0), {}, {}}, 2, nil},
		{"gap in the padding", []sideeffect.Effect{e(1, 1), {}, e(2, 2), {}}, 0, ErrPaddingInvalid},
		{"leading empty", []sideeffect.Effect{{}, e(1, 1)}, 0, ErrPaddingInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateArray(tt.arr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, ArrayLength(tt.arr))
		})
	}
}

func TestArrayLengthStopsAtFirstEmpty(t *testing.T) {
	e := sideeffect.EffectFromUint64
	// ArrayLength trusts the padding, it does not count items past a gap.
	arr := []sideeffect.Effect{e(1, 1), {}, e(2, 2)}
	assert.Equal(t, uint32(1), ArrayLength(arr))
}

func TestCountPrivate(t *testing.T) {
	e := sideeffect.EffectFromUint64
	tests := []struct {
		name string
		arr  []sideeffect.Effect
		want uint32
	}{
		{"all empty", make([]sideeffect.Effect, 3), 0},
		{"all private", []sideeffect.Effect{e(1, 3), e(2, 1), {}}, 2},
		{"public items are not private", []sideeffect.Effect{e(1, 0), e(2, 5), e(3, 0), {}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountPrivate(tt.arr))
		})
	}
}
