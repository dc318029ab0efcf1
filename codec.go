package rational

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var intOne = big.NewInt(1)

func (x Rational) String() string {
	if x.den.Cmp(intOne) == 0 {
		return x.num.String()
	}
	return x.num.String() + "/" + x.den.String()
}

// NewFromString parses "<int>" or "<int>/<int>" with no whitespace and
// at most one leading '-' per part. The input need not be reduced; the
// result is canonical. A literal zero denominator is ErrZeroDenominator
// rather than ErrFormat, since the text itself is well formed.
func NewFromString(s string) (Rational, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		n, err := parseInt(parts[0])
		if err != nil {
			return Rational{}, err
		}
		return NewInt(n), nil
	case 2:
		n, err := parseInt(parts[0])
		if err != nil {
			return Rational{}, err
		}
		d, err := parseInt(parts[1])
		if err != nil {
			return Rational{}, err
		}
		return New(n, d)
	}
	return Rational{}, fmt.Errorf("%w: %q", ErrFormat, s)
}

func parseInt(s string) (*big.Int, error) {
	t := strings.TrimPrefix(s, "-")
	if len(t) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return nil, fmt.Errorf("%w: %q", ErrFormat, s)
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return n, nil
}

func (x Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

func (x *Rational) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	v, err := NewFromString(unquoted)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
