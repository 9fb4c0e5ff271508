// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// AspectRatio is the ratio of a rectangle's width to its height, kept as a
// reduced fraction so that ratios such as 37:20 survive exactly.
//
// Squares have a ratio of 1:1. Vertical rectangles (width < height) have a
// ratio below 1 and horizontal ones a ratio above 1.
//
// AspectRatio values are comparable: 4:2 and 2:1 are the same value. The
// zero AspectRatio is not a valid ratio.
type AspectRatio struct {
	x, y int64
}

// NewAspectRatio returns the reduced ratio width:height.
func NewAspectRatio(width, height int) (AspectRatio, error) {
	if height == 0 {
		return AspectRatio{}, fmt.Errorf("%w: the proportional height must not be zero", ErrInvalidRatio)
	}
	if width <= 0 || height < 0 {
		return AspectRatio{}, fmt.Errorf("%w: %d:%d is not positive", ErrInvalidRatio, width, height)
	}
	return fromRat(big.NewRat(int64(width), int64(height)))
}

// RatioFromFloat converts a decimal ratio such as 1.85 or 2.35. The shortest
// decimal representation of f is used, so 2.35 becomes 47:20 and not the
// exact binary expansion of the float.
func RatioFromFloat(f float64) (AspectRatio, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return AspectRatio{}, fmt.Errorf("%w: %v", ErrInvalidRatio, f)
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'f', -1, 64))
	if !ok {
		return AspectRatio{}, fmt.Errorf("%w: %v", ErrInvalidRatio, f)
	}
	return fromRat(r)
}

// ParseAspectRatio parses "W:H", "W/H" or a bare decimal such as "1.85".
// Either side of the separator may be a decimal.
func ParseAspectRatio(s string) (AspectRatio, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, ":/")
	if i < 0 {
		num, err := parseDecimal(s)
		if err != nil {
			return AspectRatio{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		return ratioOf(num, big.NewRat(1, 1))
	}
	num, err := parseDecimal(s[:i])
	if err != nil {
		return AspectRatio{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	den, err := parseDecimal(s[i+1:])
	if err != nil {
		return AspectRatio{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return ratioOf(num, den)
}

// MustParseAspectRatio is like ParseAspectRatio but panics on error. It is
// intended for package-level constants such as 16:9.
func MustParseAspectRatio(s string) AspectRatio {
	r, err := ParseAspectRatio(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseDecimal(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, ":/eE") {
		return nil, ErrParse
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, ErrParse
	}
	return r, nil
}

func ratioOf(num, den *big.Rat) (AspectRatio, error) {
	if den.Sign() == 0 {
		return AspectRatio{}, fmt.Errorf("%w: the proportional height must not be zero", ErrInvalidRatio)
	}
	if num.Sign() <= 0 || den.Sign() < 0 {
		return AspectRatio{}, fmt.Errorf("%w: %s:%s is not positive", ErrInvalidRatio, num.RatString(), den.RatString())
	}
	return fromRat(new(big.Rat).Quo(num, den))
}

func fromRat(r *big.Rat) (AspectRatio, error) {
	if r.Sign() <= 0 {
		return AspectRatio{}, fmt.Errorf("%w: %s is not positive", ErrInvalidRatio, r.RatString())
	}
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return AspectRatio{}, fmt.Errorf("%w: %s is out of range", ErrInvalidRatio, r.RatString())
	}
	return AspectRatio{x: r.Num().Int64(), y: r.Denom().Int64()}, nil
}

// X returns the reduced proportional width.
func (r AspectRatio) X() int64 { return r.x }

// Y returns the reduced proportional height.
func (r AspectRatio) Y() int64 { return r.y }

// IsZero reports whether r is the zero value, which is not a valid ratio.
func (r AspectRatio) IsZero() bool { return r.y == 0 }

// Float64 returns the ratio as a float.
func (r AspectRatio) Float64() float64 {
	if r.IsZero() {
		return 0
	}
	return float64(r.x) / float64(r.y)
}

func (r AspectRatio) String() string {
	return fmt.Sprintf("%d:%d", r.x, r.y)
}

// Cmp compares r and o and returns -1, 0 or +1.
func (r AspectRatio) Cmp(o AspectRatio) int {
	return cmpFrac(r.x, r.y, o.x, o.y)
}

// Vertical reports whether r describes a rectangle taller than it is wide.
func (r AspectRatio) Vertical() bool { return r.x < r.y }

// Horizontal reports whether r describes a rectangle wider than it is tall.
func (r AspectRatio) Horizontal() bool { return r.x > r.y }

// NewWidth returns the width that keeps ratio r at the given height. Of the
// floor and ceiling of the exact width, the one deviating least from r is
// chosen; ties go to the floor. The result is at least 1.
func (r AspectRatio) NewWidth(height int) int {
	if height <= 0 || r.IsZero() {
		return 1
	}
	x, y := big.NewInt(r.x), big.NewInt(r.y)
	xh := new(big.Int).Mul(x, big.NewInt(int64(height)))
	n, rem := new(big.Int).QuoRem(xh, y, new(big.Int))
	if rem.Sign() != 0 {
		// |x/y - n/h| over the common denominator y*h is rem for the floor
		// and y-rem for the ceiling.
		up := new(big.Int).Sub(y, rem)
		if up.Cmp(rem) < 0 {
			n.Add(n, bigOne)
		}
	}
	return clampDim(n)
}

// NewHeight returns the height that keeps ratio r at the given width. Of the
// floor and ceiling of the exact height, the one for which width/n deviates
// least from r is chosen; ties go to the floor. The result is at least 1.
func (r AspectRatio) NewHeight(width int) int {
	if width <= 0 || r.IsZero() {
		return 1
	}
	x, y := big.NewInt(r.x), big.NewInt(r.y)
	wy := new(big.Int).Mul(big.NewInt(int64(width)), y)
	lo, rem := new(big.Int).QuoRem(wy, x, new(big.Int))
	if rem.Sign() == 0 || lo.Sign() == 0 {
		return clampDim(lo)
	}
	hi := new(big.Int).Add(lo, bigOne)
	// |x/y - w/n| = |x*n - w*y| / (y*n). Scaling both sides by y*lo*hi
	// compares rem*hi for the floor with (x-rem)*lo for the ceiling.
	dLo := new(big.Int).Mul(rem, hi)
	dHi := new(big.Int).Mul(new(big.Int).Sub(x, rem), lo)
	if dHi.Cmp(dLo) < 0 {
		return clampDim(hi)
	}
	return clampDim(lo)
}

var bigOne = big.NewInt(1)

// maxDim bounds every computed dimension.
const maxDim = math.MaxInt32

func clampDim(n *big.Int) int {
	if !n.IsInt64() || n.Int64() > maxDim {
		return maxDim
	}
	if v := n.Int64(); v > 1 {
		return int(v)
	}
	return 1
}

// cmpFrac compares a/b with c/d for positive denominators.
func cmpFrac(a, b, c, d int64) int {
	l := new(big.Int).Mul(big.NewInt(a), big.NewInt(d))
	r := new(big.Int).Mul(big.NewInt(c), big.NewInt(b))
	return l.Cmp(r)
}
