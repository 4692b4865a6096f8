package reportpdf

import "sort"

// Color is an opaque RGB value in the 0-255 range.
type Color struct {
	R, G, B int
}

// Palette groups the semantic colors used by the report template.
type Palette struct {
	Primary Color
	Success Color
	Warning Color
	Danger  Color
	Info    Color
	Neutral Color
}

// Theme provides the named colors and type scale for rendering. Themes are
// immutable values constructed once and passed into the story builder.
type Theme struct {
	name    string
	palette Palette
}

// Name returns the theme's registry name.
func (t Theme) Name() string { return t.name }

// Palette returns the theme's color palette.
func (t Theme) Palette() Palette { return t.palette }

// Color resolves a semantic color role against the palette.
func (t Theme) Color(role ColorRole) Color {
	switch role {
	case RolePrimary:
		return t.palette.Primary
	case RoleSuccess:
		return t.palette.Success
	case RoleWarning:
		return t.palette.Warning
	case RoleDanger:
		return t.palette.Danger
	case RoleInfo:
		return t.palette.Info
	default:
		return t.palette.Neutral
	}
}

// NewTheme returns a Theme from a palette definition.
func NewTheme(name string, palette Palette) Theme {
	return Theme{name: name, palette: palette}
}

var paletteDefault = Palette{
	Primary: Color{91, 2, 2},    // #5b0202
	Success: Color{22, 101, 52}, // #166534
	Warning: Color{146, 64, 14}, // #92400e
	Danger:  Color{153, 27, 27}, // #991b1b
	Info:    Color{30, 64, 175}, // #1e40af
	Neutral: Color{55, 65, 81},  // #374151
}

var paletteBoring = Palette{
	Primary: Color{0, 0, 0},
	Success: Color{0, 0, 0},
	Warning: Color{0, 0, 0},
	Danger:  Color{0, 0, 0},
	Info:    Color{0, 0, 0},
	Neutral: Color{0, 0, 0},
}

var builtinThemes = map[string]Theme{
	"default": NewTheme("default", paletteDefault),
	"boring":  NewTheme("boring", paletteBoring),
}

// DefaultTheme returns the standard Muaina palette.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a monochrome palette for print-friendly output.
func BoringTheme() Theme {
	return builtinThemes["boring"]
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	t, ok := builtinThemes[name]
	return t, ok
}

// AvailableThemes lists the built-in theme names, sorted.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Type scale and spacing in points, shared by every theme.
const (
	logoSize       = 28
	sectionSize    = 14
	subsectionSize = 12
	bodySize       = 10
	disclaimerSize = 9

	bodyLeading       = 14
	disclaimerLeading = 12

	listIndent    = 20
	ruleThickness = 2
)

func (t Theme) logo() TextStyle {
	return TextStyle{Size: logoSize, Leading: logoSize + 4, Bold: true, Color: t.palette.Primary, SpaceAfter: 6}
}

func (t Theme) subtitle() TextStyle {
	return TextStyle{Size: bodySize, Leading: 12, Color: t.palette.Neutral, SpaceAfter: 12}
}

func (t Theme) section() TextStyle {
	return TextStyle{Size: sectionSize, Leading: sectionSize + 4, Bold: true, Color: t.palette.Primary, SpaceBefore: 16, SpaceAfter: 8}
}

func (t Theme) subsection() TextStyle {
	return TextStyle{Size: subsectionSize, Leading: subsectionSize + 4, Bold: true, Color: t.palette.Neutral, SpaceBefore: 12, SpaceAfter: 6}
}

func (t Theme) body() TextStyle {
	return TextStyle{Size: bodySize, Leading: bodyLeading, Color: t.palette.Neutral, SpaceAfter: 6}
}

func (t Theme) colored(role ColorRole) TextStyle {
	s := t.body()
	s.Color = t.Color(role)
	return s
}

func (t Theme) listItem(role ColorRole) TextStyle {
	return TextStyle{Size: bodySize, Leading: bodyLeading, Color: t.Color(role), Indent: listIndent, SpaceAfter: 4}
}

func (t Theme) disclaimer() TextStyle {
	return TextStyle{Size: disclaimerSize, Leading: disclaimerLeading, Color: t.palette.Warning, SpaceAfter: 6}
}
