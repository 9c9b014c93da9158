package zcurve

// evenBits selects the bits owned by the x dimension. With two
// interleaved dimensions each dimension owns every other bit, so the
// y dimension's bits are this mask shifted left by one.
const evenBits = 0x5555555555555555

// BigMin returns the smallest key greater than zval that lies inside
// the rectangle spanned by zmin and zmax (Tropf & Herzog). It is what
// lets a range scan jump over a dead zone of the curve instead of
// stepping through it key by key.
//
// Preconditions: zmin <= zval < zmax. The scan engine only calls
// BigMin for a key that is inside [zmin, zmax] but whose point is
// outside the rectangle, which guarantees both bounds hold.
func BigMin(zval, zmin, zmax Key) Key {
	bigmin := zmin
	for mask := Key(1) << 63; mask != 0; mask >>= 1 {
		v := zval&mask != 0
		lo := zmin&mask != 0
		hi := zmax&mask != 0
		switch {
		case !v && !lo && !hi:
			// Bits agree, descend.
		case !v && !lo && hi:
			// The rectangle straddles this bit while zval stays on the
			// low side. The low side's best candidate is remembered,
			// and the scan continues with the high side cut away.
			bigmin = loadOnes(zmin, mask)
			zmax = loadZeros(zmax, mask)
		case !v && lo:
			// zmin diverged above zval, so every key of the remaining
			// interval already exceeds zval.
			return zmin
		case v && !lo && !hi:
			// zval escaped above the interval; the recorded candidate
			// is the answer.
			return bigmin
		case v && !lo && hi:
			// Follow zval's high side; keys below it are no longer
			// reachable.
			zmin = loadOnes(zmin, mask)
		default:
			// v && lo && hi: bits agree, descend.
		}
	}
	return bigmin
}

// ownLow selects the bits at or below mask that belong to the same
// dimension as mask.
func ownLow(mask Key) Key {
	dim := Key(evenBits)
	if mask&dim == 0 {
		dim <<= 1
	}
	return dim & (mask | (mask - 1))
}

// loadOnes forces the bit at mask to 1 and clears the lower bits of
// the same dimension (the 1000... load pattern).
func loadOnes(k, mask Key) Key {
	return (k &^ ownLow(mask)) | mask
}

// loadZeros forces the bit at mask to 0 and sets the lower bits of the
// same dimension (the 0111... load pattern).
func loadZeros(k, mask Key) Key {
	own := ownLow(mask)
	return (k &^ own) | (own &^ mask)
}
