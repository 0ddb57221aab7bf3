package testutil

import (
	"go.uber.org/goleak"
)

// GoLeakIgnores returns the goleak options shared by every TestMain that
// runs leak detection. The module spawns no background goroutines of its
// own, so only goroutines created before the test run are excluded.
func GoLeakIgnores() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreCurrent(),
	}
}
