package catalog

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are rendered by the Spanish locale and then regrouped with the
// profile's configured separator, so the configured value always wins even
// if CLDR data changes between x/text releases.
var moneyPrinter = message.NewPrinter(language.Spanish)

// FormatMoney renders an amount with the market's currency symbol and
// thousands separator. The amount is rounded to whole currency units first;
// cents are never displayed. Zero, negative and very large values all format
// without error.
//
// Grouping is applied to every amount of four or more digits. The Spanish
// locale withholds the separator from 4-digit amounts (CLDR minimum grouping
// digits), but price tags always group.
func (p Profile) FormatMoney(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}

	var digits []byte
	for _, r := range moneyPrinter.Sprintf("%d", n) {
		if r >= '0' && r <= '9' {
			digits = append(digits, byte(r))
		}
	}

	sep := p.ThousandsSep
	if sep == "" {
		sep = "."
	}

	var b strings.Builder
	b.WriteString(p.CurrencySymbol)
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(d)
	}
	return b.String()
}
