package app

import (
	"log"
	"mime"
	"os"
	"sync/atomic"
)

// TestModeEnv set to "1" makes binaries return before any startup work.
const TestModeEnv = "FINDASH_TEST_MODE"

var testMode atomic.Pointer[bool]

// InTestMode reports whether FINDASH_TEST_MODE was set when first asked, or
// at the last RefreshTestMode.
func InTestMode() bool {
	if v := testMode.Load(); v != nil {
		return *v
	}
	RefreshTestMode()
	return *testMode.Load()
}

// RefreshTestMode re-reads FINDASH_TEST_MODE.
func RefreshTestMode() {
	on := os.Getenv(TestModeEnv) == "1"
	testMode.Store(&on)
}

// Extensions served from web/static or by the export endpoints. Some
// minimal containers ship without /etc/mime.types.
var assetTypes = map[string]string{
	".css": "text/css; charset=utf-8",
	".svg": "image/svg+xml",
	".csv": "text/csv; charset=utf-8",
}

func init() {
	for ext, typ := range assetTypes {
		if mime.TypeByExtension(ext) != "" {
			continue
		}
		if err := mime.AddExtensionType(ext, typ); err != nil {
			log.Printf("app: register MIME type for %s: %v", ext, err)
		}
	}
}
