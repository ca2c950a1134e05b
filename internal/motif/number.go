package motif

import (
	"strconv"

	"github.com/rsyslog/go-lognorm/internal/diag"
)

func init() {
	register(Number, Entry{
		Name:              "number",
		IntrinsicPriority: 40,
		Construct:         func(diag.Sink, map[string]any) (any, error) { return nil, nil },
		Match:             matchNumber,
		Destruct:          func(diag.Sink, any) {},
	})
	register(Float, Entry{
		Name:              "float",
		IntrinsicPriority: 41,
		Construct:         func(diag.Sink, map[string]any) (any, error) { return nil, nil },
		Match:             matchFloat,
		Destruct:          func(diag.Sink, any) {},
	})
	register(HexNumber, Entry{
		Name:              "hexnumber",
		IntrinsicPriority: 30,
		Construct:         func(diag.Sink, map[string]any) (any, error) { return nil, nil },
		Match:             matchHexNumber,
		Destruct:          func(diag.Sink, any) {},
	})
}

func matchNumber(input string, offset int, _ any, captureWanted bool) Result {
	i := offset
	if i < len(input) && (input[i] == '-' || input[i] == '+') {
		i++
	}
	start := i
	for i < len(input) && isDigit(input[i]) {
		i++
	}
	if i == start {
		return Result{}
	}
	consumed := i - offset
	r := Result{OK: true, Consumed: consumed}
	if captureWanted {
		n, err := strconv.ParseInt(input[offset:i], 10, 64)
		if err != nil {
			return Result{}
		}
		r.Value = n
	}
	return r
}

func matchFloat(input string, offset int, _ any, captureWanted bool) Result {
	i := offset
	if i < len(input) && (input[i] == '-' || input[i] == '+') {
		i++
	}
	digitsStart := i
	for i < len(input) && isDigit(input[i]) {
		i++
	}
	hasInt := i > digitsStart
	hasFrac := false
	if i < len(input) && input[i] == '.' {
		j := i + 1
		fracStart := j
		for j < len(input) && isDigit(input[j]) {
			j++
		}
		if j > fracStart {
			hasFrac = true
			i = j
		}
	}
	if !hasInt && !hasFrac {
		return Result{}
	}
	if !hasFrac {
		// Bare integers are left to the Number motif (higher intrinsic
		// priority handles the ambiguity at the registry level); Float
		// only claims inputs with a fractional part.
		return Result{}
	}
	consumed := i - offset
	r := Result{OK: true, Consumed: consumed}
	if captureWanted {
		f, err := strconv.ParseFloat(input[offset:i], 64)
		if err != nil {
			return Result{}
		}
		r.Value = f
	}
	return r
}

func matchHexNumber(input string, offset int, _ any, captureWanted bool) Result {
	i := offset
	if hasPrefixFold(input[i:], "0x") {
		i += 2
	}
	start := i
	for i < len(input) && isHexDigit(input[i]) {
		i++
	}
	if i == start {
		return Result{}
	}
	consumed := i - offset
	r := Result{OK: true, Consumed: consumed}
	if captureWanted {
		n, err := strconv.ParseUint(input[start:i], 16, 64)
		if err != nil {
			return Result{}
		}
		r.Value = n
	}
	return r
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		a, b := s[i], prefix[i]
		if a >= 'A' && a <= 'Z' {
			a += 'a' - 'A'
		}
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}
