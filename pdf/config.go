// Package pdf renders a report block list into paginated PDF bytes.
package pdf

// Config holds PDF rendering settings. Distances are in points.
type Config struct {
	PageSize   string
	Margin     float64
	FontFamily string
	Compress   bool
}

// DefaultConfig returns a baseline configuration matching the report
// template: A4, 30pt margins, core Helvetica, compressed streams.
func DefaultConfig() Config {
	return Config{
		PageSize:   "A4",
		Margin:     30,
		FontFamily: "Helvetica",
		Compress:   true,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if !src.Compress && dst.Compress {
		dst.Compress = false
	}
}
