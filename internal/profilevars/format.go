package profilevars

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats a dollar amount rounded to whole dollars with
// digit grouping, e.g. 1249.6 -> "$1,250".
func Currency(amount float64) string {
	return printer.Sprintf("$%d", int64(math.Round(amount)))
}

// Percent converts a ratio to a whole-number percentage, e.g.
// 0.824 -> 82.
func Percent(ratio float64) float64 {
	return math.Round(ratio * 100)
}

// Plural picks the singular or plural form for a count.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// MonthlyPayment computes the fixed-rate amortized monthly payment
// for a principal at an annual rate over a term in months.
func MonthlyPayment(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRate / 12
	if r == 0 {
		return principal / float64(months)
	}
	return principal * r / (1 - math.Pow(1+r, float64(-months)))
}
