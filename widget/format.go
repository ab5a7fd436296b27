package widget

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a dollar amount with locale thousands separators and no
// currency symbol: 1234 becomes "1,234". Whole amounts drop the cents.
func FormatUSD(amount float64) string {
	if amount == math.Trunc(amount) {
		return usd.Sprintf("%d", int64(amount))
	}
	return usd.Sprintf("%.2f", amount)
}

// FormatStars renders a star rating with exactly one decimal place: "4.5".
func FormatStars(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

// SharePercent returns the integer percentage a category contributes to the
// total, rounded to the nearest whole number. A zero or missing total yields
// zero rather than a division error.
func SharePercent(amount, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(amount / total * 100))
}
