package canchi

import "fmt"

// CycleLength is the length of the sexagenary cycle.
const CycleLength = 60

// Pair is one Stem-Branch term of the sixty-term cycle, e.g. Ất Hợi.
type Pair struct {
	Stem   Stem
	Branch Branch
}

// NewPair builds a Pair, rejecting stems and branches of different parity.
func NewPair(s Stem, b Branch) (Pair, error) {
	if !s.Valid() {
		return Pair{}, fmt.Errorf("%w: %d", ErrUnknownStem, int(s))
	}
	if !b.Valid() {
		return Pair{}, fmt.Errorf("%w: %d", ErrUnknownBranch, int(b))
	}
	if s.Index()%2 != b.Index()%2 {
		return Pair{}, fmt.Errorf("%w: %s %s", ErrParityMismatch, s, b)
	}
	return Pair{Stem: s, Branch: b}, nil
}

// PairAt returns the n-th term of the cycle, reduced with floor-mod 60.
// PairAt(0) is Giáp Tý.
func PairAt(n int) Pair {
	n = mod(n, CycleLength)
	return Pair{Stem: StemAt(n), Branch: BranchAt(n)}
}

// CycleIndex returns the 0–59 position of the pair (s, b) in the cycle.
// Pairs of mismatched parity have no position and yield ErrParityMismatch.
func CycleIndex(s Stem, b Branch) (int, error) {
	p, err := NewPair(s, b)
	if err != nil {
		return 0, err
	}
	return p.Index(), nil
}

// Index returns the pair's 0–59 position. The closed form 6s−5b satisfies
// both idx ≡ s (mod 10) and idx ≡ b (mod 12) for same-parity pairs.
func (p Pair) Index() int {
	return mod(6*p.Stem.Index()-5*p.Branch.Index(), CycleLength)
}

// String returns the Vietnamese name, e.g. "Ất Hợi".
func (p Pair) String() string {
	return p.Stem.String() + " " + p.Branch.String()
}

// Label returns the short form used on palace cells, e.g. "Ấ.Hợi".
func (p Pair) Label() string {
	return p.Stem.Initial() + "." + p.Branch.String()
}

// NapAm returns the Nạp Âm category of the pair.
func (p Pair) NapAm() NapAm {
	return NapAm(p.Index() / 2)
}

// NapAm is one of the thirty Nạp Âm categories. Each covers two consecutive
// cycle positions.
type NapAm int

// NapAmCount is the number of Nạp Âm categories.
const NapAmCount = 30

type napAmInfo struct {
	name        string
	description string
	element     Element
}

var napAms = [NapAmCount]napAmInfo{
	{"Hải Trung Kim", "Vàng trong biển", Metal},
	{"Lô Trung Hỏa", "Lửa trong lò", Fire},
	{"Đại Lâm Mộc", "Gỗ rừng lớn", Wood},
	{"Lộ Bàng Thổ", "Đất bên đường", Earth},
	{"Kiếm Phong Kim", "Vàng mũi kiếm", Metal},
	{"Sơn Đầu Hỏa", "Lửa trên núi", Fire},
	{"Giản Hạ Thủy", "Nước dưới suối", Water},
	{"Thành Đầu Thổ", "Đất đầu thành", Earth},
	{"Bạch Lạp Kim", "Vàng trong nến", Metal},
	{"Dương Liễu Mộc", "Gỗ cây liễu", Wood},
	{"Tuyền Trung Thủy", "Nước trong suối", Water},
	{"Ốc Thượng Thổ", "Đất trên mái", Earth},
	{"Tích Lịch Hỏa", "Lửa sấm sét", Fire},
	{"Tùng Bách Mộc", "Gỗ tùng bách", Wood},
	{"Trường Lưu Thủy", "Nước chảy dài", Water},
	{"Sa Trung Kim", "Vàng trong cát", Metal},
	{"Sơn Hạ Hỏa", "Lửa chân núi", Fire},
	{"Bình Địa Mộc", "Gỗ đồng bằng", Wood},
	{"Bích Thượng Thổ", "Đất trên tường", Earth},
	{"Kim Bạch Kim", "Vàng trắng", Metal},
	{"Phúc Đăng Hỏa", "Lửa đèn Phật", Fire},
	{"Thiên Hà Thủy", "Nước sông Ngân", Water},
	{"Đại Dịch Thổ", "Đất trạm lớn", Earth},
	{"Thoa Xuyến Kim", "Vàng trang sức", Metal},
	{"Tang Đố Mộc", "Gỗ cây dâu", Wood},
	{"Đại Khê Thủy", "Nước khe lớn", Water},
	{"Sa Trung Thổ", "Đất trong cát", Earth},
	{"Thiên Thượng Hỏa", "Lửa trên trời", Fire},
	{"Lựu Hạ Mộc", "Gỗ cây lựu", Wood},
	{"Đại Hải Thủy", "Nước biển lớn", Water},
}

// NapAmOf returns the Nạp Âm category of the pair (s, b).
func NapAmOf(s Stem, b Branch) (NapAm, error) {
	p, err := NewPair(s, b)
	if err != nil {
		return 0, err
	}
	return p.NapAm(), nil
}

// Valid reports whether n is one of the thirty categories.
func (n NapAm) Valid() bool { return n >= 0 && n < NapAmCount }

// String returns the Vietnamese name, e.g. "Sơn Đầu Hỏa".
func (n NapAm) String() string {
	if !n.Valid() {
		return fmt.Sprintf("NapAm(%d)", int(n))
	}
	return napAms[n].name
}

// Description returns the plain-language gloss, e.g. "Lửa trên núi".
func (n NapAm) Description() string {
	if !n.Valid() {
		return ""
	}
	return napAms[n].description
}

// Element returns the category's element.
func (n NapAm) Element() Element {
	if !n.Valid() {
		return Element(-1)
	}
	return napAms[n].element
}
