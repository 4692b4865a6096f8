// Command muaina-report converts a JSON pathology report record into a
// formatted PDF document. It reads JSON from stdin and writes PDF bytes to
// stdout, so it can sit behind a web service as a one-shot transform.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"github.com/muaina/reportpdf"
	"github.com/muaina/reportpdf/pdf"
)

const defaultThemeName = "default"

func init() {
	version.SetDefaultModule("github.com/muaina/reportpdf")
}

func main() {
	var (
		themeName  string
		listThemes bool
		outPath    string
		boring     bool
		pageSize   string
		margin     float64
	)

	defaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("muaina-report", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Monochrome output for plain printing")
	flags.StringVar(&pageSize, "page-size", defaults.PageSize, "PDF page size")
	flags.Float64Var(&margin, "margin", defaults.Margin, "Page margin in points")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: muaina-report [flags] [report.json]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, the JSON record is read from stdin.")
		fmt.Fprintln(os.Stderr, "The PDF is written to stdout unless -o/--output is given.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		for _, name := range reportpdf.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	args := flags.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "at most one input file may be given")
		os.Exit(2)
	}

	theme, ok := reportpdf.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q (use --list-themes)\n", themeName)
		os.Exit(2)
	}
	if boring {
		theme = reportpdf.BoringTheme()
	}

	reader, closer, err := openInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if isTerminal(writer) {
		fmt.Fprintln(os.Stderr, "refusing to write PDF to terminal; use -o/--output or redirect stdout")
		os.Exit(2)
	}

	cfg := pdf.DefaultConfig()
	cfg.PageSize = pageSize
	if margin > 0 {
		cfg.Margin = margin
	}

	input, err := io.ReadAll(reader)
	if err == nil {
		var out []byte
		out, err = generate(input, theme, cfg)
		if err == nil {
			_, err = writer.Write(out)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating PDF: %v\n", err)
		os.Exit(1)
	}
}

// generate runs the full parse, story build, and render pipeline in memory,
// so nothing is written on failure.
func generate(input []byte, theme reportpdf.Theme, cfg pdf.Config) ([]byte, error) {
	report, err := reportpdf.ParseReport(input)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = pdf.Render(pdf.RenderRequest{
		Story:  reportpdf.BuildStory(report, theme),
		Writer: &buf,
		Config: cfg,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func openInput(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	f, err := os.Open(normalizePath(args[0]))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
