package asset

import "testing"

func TestParseRangeString(t *testing.T) {
	ranges, err := ParseRangeString("[100:400, :, 20:]")
	if err != nil {
		t.Fatal(err)
	}
	if ranges[0] != (Range{100, 400}) {
		t.Fatalf("expected z range [100,400); got %v", ranges[0])
	}
	if ranges[1] != FullRange() {
		t.Fatalf("expected open y range; got %v", ranges[1])
	}
	if lo, hi := ranges[2].Clamp(50); lo != 20 || hi != 50 {
		t.Fatalf("expected x range [20,50) over 50 pixels; got [%d,%d)", lo, hi)
	}
}

func TestParseRangeParts(t *testing.T) {
	ranges, err := ParseRangeString("[1/2, 2/2, 1/1]")
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := resolveAxis(ranges[0], 100); lo != 0 || hi != 50 {
		t.Fatalf("expected first half [0,50); got [%d,%d)", lo, hi)
	}
	if lo, hi := resolveAxis(ranges[1], 100); lo != 50 || hi != 100 {
		t.Fatalf("expected second half [50,100); got [%d,%d)", lo, hi)
	}
	if ranges[2] != FullRange() {
		t.Fatalf("expected 1/1 to mean the full axis; got %v", ranges[2])
	}
}

func TestParseRangeRejectsBadInput(t *testing.T) {
	for _, s := range []string{
		"100:400, :, :",   // no brackets
		"[:, :]",          // wrong axis count
		"[a:b, :, :]",     // non-numeric bounds
		"[3/2, :, :]",     // part out of range
		"[0/2, :, :]",     // parts count from 1
		"[whatever, :, :]",
	} {
		if _, err := ParseRangeString(s); err == nil {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestClamp(t *testing.T) {
	if lo, hi := (Range{-1, -1}).Clamp(10); lo != 0 || hi != 10 {
		t.Fatalf("expected open range to clamp to [0,10); got [%d,%d)", lo, hi)
	}
	if lo, hi := (Range{5, 100}).Clamp(10); lo != 5 || hi != 10 {
		t.Fatalf("expected hi clamped to the axis; got [%d,%d)", lo, hi)
	}
	if lo, hi := (Range{8, 3}).Clamp(10); lo != hi {
		t.Fatalf("expected inverted range to collapse; got [%d,%d)", lo, hi)
	}
}

// A small ramp block: voxel (x,y,z) holds x + 10y + 100z.
func rampBlock(dims [3]int) *Block {
	b := NewBlock(dims, 16)
	for z := 0; z < dims[2]; z++ {
		for y := 0; y < dims[1]; y++ {
			for x := 0; x < dims[0]; x++ {
				v := uint16(x + 10*y + 100*z)
				idx := ((z*dims[1]+y)*dims[0] + x) * 2
				b.Data[idx] = byte(v)
				b.Data[idx+1] = byte(v >> 8)
			}
		}
	}
	return b
}

func TestCrop(t *testing.T) {
	b := rampBlock([3]int{4, 4, 4})
	ranges, err := ParseRangeString("[1:3, 2:, 0:2]")
	if err != nil {
		t.Fatal(err)
	}
	b.Crop(ranges)

	if b.Dims != [3]int{2, 2, 2} {
		t.Fatalf("expected cropped dims (2,2,2); got %v", b.Dims)
	}
	// first voxel of the crop was (x=0, y=2, z=1)
	if got := b.At(0, 0, 0); got != 0+10*2+100*1 {
		t.Fatalf("expected voxel 120 at the crop origin; got %d", got)
	}
	if got := b.At(1, 1, 1); got != 1+10*3+100*2 {
		t.Fatalf("expected voxel 231; got %d", got)
	}
}

func TestCropFullRangeIsNoop(t *testing.T) {
	b := rampBlock([3]int{3, 3, 3})
	before := b.Data
	b.Crop([3]Range{FullRange(), FullRange(), FullRange()})
	if &before[0] != &b.Data[0] {
		t.Fatal("expected full-range crop to keep the original data")
	}
}
