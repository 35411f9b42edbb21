package orders

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const orderNumberDateLayout = "20060102"

// nextOrderNumber builds the human-readable order number YYYYMMDD-NNNN:
// the day's date prefix plus a four-digit sequence that restarts at 0001
// each day. last is the highest existing number for that day ("" when the
// day has no orders yet).
func nextOrderNumber(day time.Time, last string) string {
	prefix := day.Format(orderNumberDateLayout)

	seq := 1
	if rest, ok := strings.CutPrefix(last, prefix+"-"); ok {
		if n, err := strconv.Atoi(rest); err == nil {
			seq = n + 1
		}
	}

	return fmt.Sprintf("%s-%04d", prefix, seq)
}
