package html2img

// PostLoadHook runs in the page after all readiness signals have resolved
// and before layout measurement. Implementations return a script expression
// evaluated against the loaded document.
type PostLoadHook interface {
	Script() string
}

// ScriptHook adapts a raw script expression into a PostLoadHook.
type ScriptHook string

// Script returns the script expression.
func (s ScriptHook) Script() string { return string(s) }

// iconRerenderScript replaces icon placeholders with final vector glyphs
// when a global icon-substitution library is present in the document. The
// presence check is capability detection: absence is not an error.
const iconRerenderScript = `() => {
	if (typeof lucide !== 'undefined' && lucide.createIcons) {
		lucide.createIcons();
	}
}`

// DefaultPostLoadHook is the hook installed by NewRenderer. It re-renders
// icon placeholders and no-ops when no icon library is loaded.
var DefaultPostLoadHook PostLoadHook = ScriptHook(iconRerenderScript)

// NopHook is a PostLoadHook that does nothing.
var NopHook PostLoadHook = ScriptHook(`() => {}`)
