package claim

import "time"

// DefaultScanCooldown is the minimum interval between accepted scans. The
// camera stream samples frames continuously; without a cooldown the same
// physical code is submitted dozens of times per second. This throttle is a
// capture-layer convenience only; the uniqueness constraint at the
// redemption store is the sole correctness guarantee against duplicates.
const DefaultScanCooldown = 2 * time.Second

// ShouldAccept reports whether a scan at now may proceed given the time of
// the last accepted scan. A zero lastScan always accepts.
func ShouldAccept(lastScan, now time.Time, cooldown time.Duration) bool {
	if lastScan.IsZero() {
		return true
	}
	return now.Sub(lastScan) >= cooldown
}
