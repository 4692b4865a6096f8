package pdf

import "strings"

// The template uses core fonts only, so text is limited to the cp1252
// codepage. The list glyphs fall outside it; substitute encodable markers
// before translation instead of letting them drop to blanks.
var glyphFallbacks = strings.NewReplacer(
	"⚠", "!",
	"✓", "+",
	"✗", "x",
)

func fontStyle(bold bool) string {
	if bold {
		return "B"
	}
	return ""
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Times", "Symbol", "ZapfDingbats":
		return true
	default:
		return false
	}
}
