package bwstring

// Copy copies src into dst, truncated to the current length of dst, and
// returns the number of code units copied. dst is shortened to that count.
func Copy(dst, src *String) int {
	return copyUnits(dst, src, 0, src.n)
}

// CopyN is Copy limited to at most size code units.
func CopyN(dst, src *String, size int) *String {
	copyUnits(dst, src, 0, size)
	return dst
}

// CopyFrom is CopyN starting at offset in src. An offset at or past the end
// of src leaves dst empty.
func CopyFrom(dst, src *String, offset, size int) *String {
	if offset >= src.n {
		dst.SetLen(0)
		return dst
	}
	copyUnits(dst, src, offset, size)
	return dst
}

func copyUnits(dst, src *String, offset, size int) int {
	if dst.mode != src.mode {
		panic(&ModeError{Want: dst.mode, Got: src.mode})
	}
	if offset < 0 {
		offset = 0
	}
	nums := min(src.n-offset, dst.n, max(size, 0))
	if dst.mode == Narrow {
		copy(dst.b, src.b[offset:offset+nums])
		dst.b[nums] = 0
	} else {
		copy(dst.w, src.w[offset:offset+nums])
		dst.w[nums] = 0
	}
	dst.n = nums
	return nums
}
