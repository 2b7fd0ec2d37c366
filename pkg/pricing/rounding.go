// Package pricing provides price rounding, price solving, and scenario
// evaluation utilities.
package pricing

import (
	"github.com/sandikodev/margin-pro/pkg/constants"
	"github.com/sandikodev/margin-pro/pkg/mathutil"
)

// SmartRoundUp snaps a raw price up to a psychologically clean denomination:
// prices under 50,000 round up to the nearest 100, anything at or above to
// the nearest 500. The result is never below the input; non-positive prices
// collapse to 0.
func SmartRoundUp(price float64) float64 {
	if price <= 0 {
		return 0
	}
	step := constants.SmallPriceStep
	if price >= constants.RoundingThreshold {
		step = constants.LargePriceStep
	}
	return mathutil.RoundUpToStep(price, step)
}
