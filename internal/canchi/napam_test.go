package canchi

import (
	"errors"
	"testing"
)

// searchIndex walks the cycle until it meets (s, b).
func searchIndex(s Stem, b Branch) int {
	for i := 0; i < CycleLength; i++ {
		if StemAt(i) == s && BranchAt(i) == b {
			return i
		}
	}
	return -1
}

func TestCycleIndexMatchesSearch(t *testing.T) {
	t.Parallel()

	valid := 0
	for s := Stem(0); s < StemCount; s++ {
		for b := Branch(0); b < BranchCount; b++ {
			idx, err := CycleIndex(s, b)
			if s.Index()%2 != b.Index()%2 {
				if !errors.Is(err, ErrParityMismatch) {
					t.Errorf("CycleIndex(%s, %s) error = %v, want ErrParityMismatch", s, b, err)
				}
				continue
			}
			valid++
			if err != nil {
				t.Fatalf("CycleIndex(%s, %s): %v", s, b, err)
			}
			if want := searchIndex(s, b); idx != want {
				t.Errorf("CycleIndex(%s, %s) = %d, want %d", s, b, idx, want)
			}
		}
	}
	if valid != CycleLength {
		t.Errorf("valid pairs = %d, want %d", valid, CycleLength)
	}
}

func TestPairAtRoundTrip(t *testing.T) {
	t.Parallel()

	for i := 0; i < CycleLength; i++ {
		p := PairAt(i)
		if got := p.Index(); got != i {
			t.Errorf("PairAt(%d).Index() = %d", i, got)
		}
	}
	if got := PairAt(-1); got != (Pair{Quy, Hoi}) {
		t.Errorf("PairAt(-1) = %s, want Quý Hợi", got)
	}
}

func TestNapAmCoversConsecutivePairs(t *testing.T) {
	t.Parallel()

	for n := NapAm(0); n < NapAmCount; n++ {
		a, b := PairAt(2*int(n)), PairAt(2*int(n)+1)
		if a.NapAm() != n || b.NapAm() != n {
			t.Errorf("NapAm %s: pairs %s/%s map to %s/%s", n, a, b, a.NapAm(), b.NapAm())
		}
		if !n.Element().Valid() {
			t.Errorf("NapAm %s has invalid element", n)
		}
		if n.Description() == "" {
			t.Errorf("NapAm %s has no description", n)
		}
	}
}

func TestNapAmOfYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stem   Stem
		branch Branch
		want   string
		elem   Element
	}{
		{Giap, Ty, "Hải Trung Kim", Metal},     // 1984
		{Canh, Ngo, "Lộ Bàng Thổ", Earth},      // 1990
		{At, Hoi, "Sơn Đầu Hỏa", Fire},         // 1995
		{Canh, Ty, "Bích Thượng Thổ", Earth},   // 2020
		{Quy, Mao, "Kim Bạch Kim", Metal},      // 2023
		{Giap, Thin, "Phúc Đăng Hỏa", Fire},    // 2024
		{Quy, Hoi, "Đại Hải Thủy", Water},      // last of the cycle
		{Dinh, Hoi, "Ốc Thượng Thổ", Earth},
	}
	for _, tt := range tests {
		got, err := NapAmOf(tt.stem, tt.branch)
		if err != nil {
			t.Fatalf("NapAmOf(%s, %s): %v", tt.stem, tt.branch, err)
		}
		if got.String() != tt.want {
			t.Errorf("NapAmOf(%s, %s) = %s, want %s", tt.stem, tt.branch, got, tt.want)
		}
		if got.Element() != tt.elem {
			t.Errorf("NapAmOf(%s, %s).Element() = %s, want %s", tt.stem, tt.branch, got.Element(), tt.elem)
		}
	}
	if _, err := NapAmOf(Giap, Suu); !errors.Is(err, ErrParityMismatch) {
		t.Errorf("NapAmOf(Giáp, Sửu) error = %v, want ErrParityMismatch", err)
	}
}

func TestPairLabel(t *testing.T) {
	t.Parallel()

	p, err := NewPair(Dinh, Hoi)
	if err != nil {
		t.Fatalf("NewPair: %v", err)
	}
	if got := p.Label(); got != "Đ.Hợi" {
		t.Errorf("Label() = %q, want %q", got, "Đ.Hợi")
	}
	if got := p.String(); got != "Đinh Hợi" {
		t.Errorf("String() = %q, want %q", got, "Đinh Hợi")
	}
}
