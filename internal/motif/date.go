package motif

import (
	"fmt"
	"strings"

	"github.com/rsyslog/go-lognorm/internal/diag"
	"github.com/rsyslog/go-lognorm/internal/motif/dateformat"
)

type dateData struct {
	Directives []dateformat.Directive
}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func init() {
	register(Date, Entry{
		Name:              "date",
		IntrinsicPriority: 25,
		Construct:         constructDate,
		Match:             matchDate,
		Destruct:          func(diag.Sink, any) {},
	})
}

func constructDate(_ diag.Sink, params map[string]any) (any, error) {
	format, ok := params["format"].(string)
	if !ok || format == "" {
		return nil, fmt.Errorf("motif: date requires a non-empty string \"format\" parameter")
	}
	directives, err := dateformat.Compile(format)
	if err != nil {
		return nil, err
	}
	return &dateData{Directives: directives}, nil
}

func matchDate(input string, offset int, data any, captureWanted bool) Result {
	d := data.(*dateData)
	i := offset
	for _, dir := range d.Directives {
		switch dir.Kind {
		case dateformat.Lit:
			if !strings.HasPrefix(input[i:], dir.Text) {
				return Result{}
			}
			i += len(dir.Text)

		case dateformat.Year4:
			if !consumeDigits(input, &i, 4) {
				return Result{}
			}

		case dateformat.Month2, dateformat.Day2, dateformat.Hour2, dateformat.Minute2, dateformat.Second2:
			if !consumeDigits(input, &i, 2) {
				return Result{}
			}

		case dateformat.MonthName:
			if !consumeMonthName(input, &i) {
				return Result{}
			}
		}
	}
	if i == offset {
		return Result{}
	}
	r := Result{OK: true, Consumed: i - offset}
	if captureWanted {
		r.Value = input[offset:i]
	}
	return r
}

func consumeDigits(input string, i *int, width int) bool {
	if *i+width > len(input) {
		return false
	}
	for j := 0; j < width; j++ {
		if !isDigit(input[*i+j]) {
			return false
		}
	}
	*i += width
	return true
}

func consumeMonthName(input string, i *int) bool {
	if *i+3 > len(input) {
		return false
	}
	candidate := input[*i : *i+3]
	for _, m := range monthNames {
		if strings.EqualFold(candidate, m) {
			*i += 3
			return true
		}
	}
	return false
}
