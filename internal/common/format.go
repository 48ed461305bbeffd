package common

import (
	"fmt"
	"strings"

	"driveledger-go/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// Default separator widths
	DefaultWidth = 80
	WideWidth    = 100
)

// PrintSeparator prints a separator line with the specified character and width
func PrintSeparator(char string, width int) {
	fmt.Println(strings.Repeat(char, width))
}

// PrintHeader prints a formatted header with title and separators
func PrintHeader(title string, width int) {
	fmt.Println("\n" + strings.Repeat("=", width))
	fmt.Println(title)
	PrintSeparator("=", width)
}

// PrintFooter prints a formatted footer with message and separators
func PrintFooter(message string, width int) {
	fmt.Println("\n" + strings.Repeat("=", width))
	fmt.Println(message)
	fmt.Println(strings.Repeat("=", width) + "\n")
}

// BoxPrefix returns the appropriate box-drawing prefix for list items
func BoxPrefix(isLast bool) string {
	if isLast {
		return "└  "
	}
	return "│  "
}

// FormatMoney renders an amount with two decimals and thousands separators, e.g. "-1,234.50 USD".
func FormatMoney(amount decimal.Decimal, currency string) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	if currency != "" {
		b.WriteString(" " + currency)
	}
	return b.String()
}

// PrintVehicle prints one inventory row in box-drawing style
func PrintVehicle(v models.Vehicle, currency string, isLast bool) {
	fmt.Printf("%s#%d %s %s (%d)  bought %s  asking %s  added %s\n",
		BoxPrefix(isLast), v.Id, v.Brand, v.Model, v.Year,
		FormatMoney(v.PurchasePrice, currency),
		FormatMoney(v.ExpectedSellPrice, currency),
		v.DateAdded)
}
