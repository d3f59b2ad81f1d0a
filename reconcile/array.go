package reconcile

import "fmt"

// ArrayLength returns the number of items before the first empty sentinel.
//
// This is trusted: it assumes arr is validly padded. Use ValidateArray where
// that has not been established.
func ArrayLength[T EmptyEq[T]](arr []T) uint32 {
	length := uint32(0)
	seenEmpty := false
	for _, x := range arr {
		seenEmpty = seenEmpty || IsEmpty(x)
		if !seenEmpty {
			length++
		}
	}
	return length
}

// ValidateArray asserts that the empty items of arr form a contiguous suffix
// and returns the logical length.
func ValidateArray[T EmptyEq[T]](arr []T) (uint32, error) {
	length := uint32(0)
	seenEmpty := false
	for i, x := range arr {
		empty := IsEmpty(x)
		if seenEmpty && !empty {
			return 0, fmt.Errorf("%w: non empty item at index %d", ErrPaddingInvalid, i)
		}
		seenEmpty = seenEmpty || empty
		if !seenEmpty {
			length++
		}
	}
	return length, nil
}

// CountPrivate returns the number of non-empty items whose counter is not
// zero. Non-empty items with a zero counter are real records in the public
// domain, they occupy slots but are not counted here.
func CountPrivate[T OrderedRecord[T]](arr []T) uint32 {
	count := uint32(0)
	for _, x := range arr {
		if !IsEmpty(x) && x.Counter() != 0 {
			count++
		}
	}
	return count
}
