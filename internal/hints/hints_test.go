package hints

import (
	"strings"
	"testing"
)

func TestForBrowserConnect_InContainer(t *testing.T) {
	orig := IsInContainer
	IsInContainer = func() bool { return true }
	defer func() { IsInContainer = orig }()

	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForBrowserConnect()
	if !strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Errorf("hint = %q, want ROD_NO_SANDBOX suggestion", hint)
	}
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint = %q, want standard prefix", hint)
	}
}

func TestForBrowserConnect_SandboxAlreadyDisabled(t *testing.T) {
	orig := IsInContainer
	IsInContainer = func() bool { return true }
	defer func() { IsInContainer = orig }()

	t.Setenv("ROD_NO_SANDBOX", "1")
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForBrowserConnect()
	if strings.Contains(hint, "ROD_NO_SANDBOX=1 for") {
		t.Errorf("hint = %q, should not repeat an applied setting", hint)
	}
	if !strings.Contains(hint, "ROD_BROWSER_BIN") {
		t.Errorf("hint = %q, want ROD_BROWSER_BIN suggestion", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	hint := ForConfigNotFound()
	if !strings.Contains(hint, "--config") {
		t.Errorf("hint = %q, want --config suggestion", hint)
	}
}

func TestForOutputDirectory(t *testing.T) {
	hint := ForOutputDirectory()
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint = %q, want standard prefix", hint)
	}
}

func TestForPageLoad(t *testing.T) {
	hint := ForPageLoad()
	if !strings.Contains(hint, "30s") {
		t.Errorf("hint = %q, want timeout mention", hint)
	}
}
