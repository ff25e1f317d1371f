// Package guard switches binaries into test mode when imported from tests,
// so a stray call to main never binds a port.
package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("FINDASH_TEST_MODE") == "" {
			_ = os.Setenv("FINDASH_TEST_MODE", "1")
		}
	})
}
