package helper

import "github.com/shopspring/decimal"

var minutesPerHour = decimal.NewFromInt(60)

// HoldAmount prices a range at the hourly rate, pro-rated per minute and
// rounded to cents.
func HoldAmount(startMin, endMin int, hourly decimal.Decimal) decimal.Decimal {
	if endMin <= startMin {
		return decimal.Zero
	}
	minutes := decimal.NewFromInt(int64(endMin - startMin))
	return hourly.Mul(minutes).Div(minutesPerHour).Round(2)
}
