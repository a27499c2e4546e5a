package e2e

import (
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/apexqa/bankwright/bankdemo"
	"github.com/apexqa/bankwright/framework/harness"
)

var (
	h    *harness.Harness
	bank *httptest.Server
)

// TestMain serves the demo bank on a local listener and boots one harness for
// the whole suite. Browser tests need the playwright browsers installed
// (go run github.com/playwright-community/playwright-go/cmd/playwright@latest
// install chromium) and are opt-in via E2E_BROWSER=1.
func TestMain(m *testing.M) {
	if os.Getenv("E2E_BROWSER") == "" {
		fmt.Println("e2e: set E2E_BROWSER=1 to run browser tests")
		os.Exit(0)
	}

	bank = httptest.NewServer(bankdemo.NewServer())
	os.Setenv("TARGET_BASE_URL", bank.URL)

	h = harness.New()
	h.Boot()

	code := m.Run()

	_ = h.Close()
	bank.Close()
	os.Exit(code)
}
