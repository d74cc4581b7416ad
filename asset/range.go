package asset

import (
	"fmt"
	"strconv"
	"strings"
)

// A half-open sub-range over one image axis. Negative ends mean "open".
type Range struct {
	Lo int
	Hi int
}

// An unconstrained range.
func FullRange() Range {
	return Range{Lo: -1, Hi: -1}
}

// Resolve the range against an axis length.
func (r Range) Clamp(max int) (int, int) {
	lo, hi := r.Lo, r.Hi
	if lo < 0 {
		lo = 0
	}
	if hi < 0 || hi > max {
		hi = max
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// Resolve the p-th of q equal parts of an axis, e.g. part 1 of 2 over 100
// pixels is [0, 50) and part 2 of 2 is [50, 100).
func PartRange(part, of, max int) (int, int) {
	return (part - 1) * max / of, part * max / of
}

// Parse a three-axis range selector in slice order (z, y, x), e.g.
// "[100:400, :, 20:]". Each token is either "a:b" with both ends optional
// or "p/q" selecting the p-th of q equal parts.
func ParseRangeString(s string) ([3]Range, error) {
	out := [3]Range{FullRange(), FullRange(), FullRange()}

	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return out, fmt.Errorf("asset: range %q must be bracketed", s)
	}

	tokens := strings.Split(s[1:len(s)-1], ",")
	if len(tokens) != 3 {
		return out, fmt.Errorf("asset: range %q must have 3 axes; got %d", s, len(tokens))
	}

	for i, token := range tokens {
		token = strings.TrimSpace(token)
		switch {
		case strings.Contains(token, ":"):
			ends := strings.SplitN(token, ":", 2)
			lo, hi := -1, -1
			var err error
			if t := strings.TrimSpace(ends[0]); t != "" {
				if lo, err = strconv.Atoi(t); err != nil {
					return out, fmt.Errorf("asset: bad range bound %q: %v", t, err)
				}
			}
			if t := strings.TrimSpace(ends[1]); t != "" {
				if hi, err = strconv.Atoi(t); err != nil {
					return out, fmt.Errorf("asset: bad range bound %q: %v", t, err)
				}
			}
			out[i] = Range{Lo: lo, Hi: hi}
		case strings.Contains(token, "/"):
			parts := strings.SplitN(token, "/", 2)
			p, err := strconv.Atoi(strings.TrimSpace(parts[0]))
			if err != nil {
				return out, fmt.Errorf("asset: bad range part %q: %v", token, err)
			}
			q, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil || q <= 0 || p < 1 || p > q {
				return out, fmt.Errorf("asset: bad range part %q", token)
			}
			if q == 1 {
				out[i] = FullRange()
				continue
			}
			// resolved lazily against the axis length; see resolveAxis
			out[i] = Range{Lo: p, Hi: -q}
		default:
			return out, fmt.Errorf("asset: unsupported range token %q", token)
		}
	}

	return out, nil
}

// Crop the block in place to the given sub-ranges in (z, y, x) order.
func (b *Block) Crop(ranges [3]Range) {
	zLo, zHi := resolveAxis(ranges[0], b.Dims[2])
	yLo, yHi := resolveAxis(ranges[1], b.Dims[1])
	xLo, xHi := resolveAxis(ranges[2], b.Dims[0])

	newDims := [3]int{xHi - xLo, yHi - yLo, zHi - zLo}
	if newDims == b.Dims {
		return
	}
	logger.Infof("cropping block from %v to %v", b.Dims, newDims)

	bytesPer := b.Bits / 8
	data := make([]byte, newDims[0]*newDims[1]*newDims[2]*bytesPer)
	rowLen := newDims[0] * bytesPer
	for z := zLo; z < zHi; z++ {
		for y := yLo; y < yHi; y++ {
			srcOff := ((z*b.Dims[1]+y)*b.Dims[0] + xLo) * bytesPer
			dstOff := ((z-zLo)*newDims[1] + (y - yLo)) * rowLen
			copy(data[dstOff:dstOff+rowLen], b.Data[srcOff:srcOff+rowLen])
		}
	}

	b.Data = data
	b.Dims = newDims
}

func resolveAxis(r Range, max int) (int, int) {
	// a "p/q parts" range is encoded as Lo=p, Hi=-q
	if r.Hi < -1 && r.Lo > 0 {
		return PartRange(r.Lo, -r.Hi, max)
	}
	return r.Clamp(max)
}
