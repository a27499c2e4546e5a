package harness

import "testing"

// ── Teardown of lazy services ─────────────────────────────────────────────────

func TestClose_LazyServicesUntouched(t *testing.T) {
	h := New()
	h.Boot()

	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if h.reporter.built != nil {
		t.Error("Close should not build a reporter nobody resolved")
	}
	if h.browser.launched != nil {
		t.Error("Close should not launch a browser nobody resolved")
	}
}

func TestClose_FlushesResolvedReporter(t *testing.T) {
	h := New()
	h.Boot()

	h.Reporter()
	if h.reporter.built == nil {
		t.Fatal("resolving the reporter should record the built instance")
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
