package money

import (
	"fmt"
	"math"
	"strconv"
)

// formatScaled renders an integer amount at the given decimal scale,
// e.g. (7778, 2) -> "77.78".
func formatScaled(amount, scale int64) string {
	if scale == 0 {
		return strconv.FormatInt(amount, 10)
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	div := int64(math.Pow10(int(scale)))
	return fmt.Sprintf("%s%d.%0*d", sign, amount/div, int(scale), amount%div)
}
