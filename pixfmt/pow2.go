package pixfmt

// Log2 returns the base-2 logarithm of n when n is an exact power of two,
// and -1 otherwise (including n == 0).
func Log2(n int) int {
	if n <= 0 {
		return -1
	}
	i := 0
	for {
		if n&1 != 0 {
			if n != 1 {
				return -1
			}
			return i
		}
		n >>= 1
		i++
	}
}

// NearestPower rounds n to a power of two by shifting it down to its two
// most significant bits. When those bits are 11 the result rounds up,
// otherwise it rounds down: NearestPower(17) == 16, NearestPower(3) == 4,
// NearestPower(6) == 8, NearestPower(5) == 4. It returns -1 for n <= 0.
//
// The round-up case is a special case on the value 3 during the shift, so
// every input whose top two bits are set returns four times the running
// power instead of two. Level counts and closest-fit sizes depend on this
// exact behavior.
func NearestPower(n int) int {
	if n <= 0 {
		return -1
	}
	i := 1
	for {
		switch n {
		case 1:
			return i
		case 3:
			return i * 4
		}
		n >>= 1
		i *= 2
	}
}

// NextLevel returns the size of the next mipmap level along one axis.
func NextLevel(n int) int {
	if n > 1 {
		return n / 2
	}
	return 1
}

// LevelCount returns the number of halvings needed to bring the largest of
// the given power-of-two extents down to 1. Extents that are not powers of
// two contribute -1.
func LevelCount(extents ...int) int {
	levels := -1
	for _, e := range extents {
		if l := Log2(e); l > levels {
			levels = l
		}
	}
	return levels
}
