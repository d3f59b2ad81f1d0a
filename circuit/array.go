package circuit

import (
	"github.com/consensys/gnark/frontend"
)

// ValidateArray asserts that the set flags of isEmpty form a contiguous suffix
// and returns the number of unset flags, the logical length.
func ValidateArray(api frontend.API, isEmpty []frontend.Variable) frontend.Variable {
	length := frontend.Variable(0)
	for i := range isEmpty {
		if i > 0 {
			// empty at i-1 forces empty at i
			api.AssertIsEqual(api.Mul(isEmpty[i-1], api.Sub(1, isEmpty[i])), 0)
		}
		length = api.Add(length, api.Sub(1, isEmpty[i]))
	}
	return length
}

// PrefixMask returns, per slot, 1 while no empty flag has been seen yet and 0
// from the first empty slot on.
func PrefixMask(api frontend.API, isEmpty []frontend.Variable) []frontend.Variable {
	mask := make([]frontend.Variable, len(isEmpty))
	prev := frontend.Variable(1)
	for i := range isEmpty {
		mask[i] = api.Mul(prev, api.Sub(1, isEmpty[i]))
		prev = mask[i]
	}
	return mask
}

// ArrayLength is the number of slots before the first empty one. Like its
// native counterpart it trusts the padding.
func ArrayLength(api frontend.API, isEmpty []frontend.Variable) frontend.Variable {
	length := frontend.Variable(0)
	for _, m := range PrefixMask(api, isEmpty) {
		length = api.Add(length, m)
	}
	return length
}

func writesEmpty(api frontend.API, writes []Write) []frontend.Variable {
	flags := make([]frontend.Variable, len(writes))
	for i, w := range writes {
		flags[i] = w.isEmpty(api)
	}
	return flags
}

func effectsEmpty(api frontend.API, effects []Effect) []frontend.Variable {
	flags := make([]frontend.Variable, len(effects))
	for i, e := range effects {
		flags[i] = e.isEmpty(api)
	}
	return flags
}
