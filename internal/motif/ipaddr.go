package motif

import (
	"net/netip"
	"strings"

	"github.com/rsyslog/go-lognorm/internal/diag"
)

func init() {
	register(IPv4, Entry{
		Name:              "ipv4",
		IntrinsicPriority: 15,
		Construct:         func(diag.Sink, map[string]any) (any, error) { return nil, nil },
		Match:             matchIPv4,
		Destruct:          func(diag.Sink, any) {},
	})
	register(IPv6, Entry{
		Name:              "ipv6",
		IntrinsicPriority: 16,
		Construct:         func(diag.Sink, map[string]any) (any, error) { return nil, nil },
		Match:             matchIPv6,
		Destruct:          func(diag.Sink, any) {},
	})
}

// matchIPv4 greedily takes the longest leading run of "[0-9.]" bytes and
// backs off a character at a time until net/netip accepts it as a dotted
// quad, so "10.0.0.1:80" stops before the colon.
func matchIPv4(input string, offset int, _ any, captureWanted bool) Result {
	end := offset
	for end < len(input) && (isDigit(input[end]) || input[end] == '.') {
		end++
	}
	for end > offset {
		candidate := input[offset:end]
		if addr, err := netip.ParseAddr(candidate); err == nil && addr.Is4() && strings.Count(candidate, ".") == 3 {
			r := Result{OK: true, Consumed: end - offset}
			if captureWanted {
				r.Value = candidate
			}
			return r
		}
		end--
	}
	return Result{}
}

// matchIPv6 is the hex/colon analogue of matchIPv4.
func matchIPv6(input string, offset int, _ any, captureWanted bool) Result {
	end := offset
	for end < len(input) && (isHexDigit(input[end]) || input[end] == ':') {
		end++
	}
	for end > offset {
		candidate := input[offset:end]
		if addr, err := netip.ParseAddr(candidate); err == nil && addr.Is6() {
			r := Result{OK: true, Consumed: end - offset}
			if captureWanted {
				r.Value = candidate
			}
			return r
		}
		end--
	}
	return Result{}
}
