package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestBoxErrorFormat(t *testing.T) {
	err := Config("box.Compose", fmt.Errorf("inset: conflicting shapes"))
	msg := err.Error()
	if !strings.Contains(msg, "box.Compose") || !strings.Contains(msg, "config") {
		t.Errorf("message %q missing op or kind", msg)
	}
	if err.Timestamp.IsZero() {
		t.Error("constructor left timestamp zero")
	}
}

func TestKindOf(t *testing.T) {
	base := fmt.Errorf("boom")
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{Config("op", base), KindConfig},
		{Measure("op", base), KindMeasure},
		{fmt.Errorf("wrapped: %w", Measure("op", base)), KindMeasure},
		{base, KindUnknown},
		{nil, KindUnknown},
	}
	for _, c := range cases {
		if got := KindOf(c.err); got != c.want {
			t.Errorf("KindOf(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	base := fmt.Errorf("boom")
	err := Measure("op", base)
	if !stderrors.Is(err, base) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

type captureHandler struct {
	mu     sync.Mutex
	errs   []*BoxError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *BoxError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *captureHandler) HandlePanic(err *PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func TestReportUsesHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(Configf("theme.Load", "bad color %q", "#zz"))
	Report(nil)

	if len(h.errs) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Kind != KindConfig {
		t.Errorf("kind = %v", h.errs[0].Kind)
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("box.test")
		panic("bad geometry")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("handler received %d panics, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "box.test" || p.Value != "bad geometry" {
		t.Errorf("panic = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("no stack captured")
	}
}
