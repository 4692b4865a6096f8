// Package reportpdf turns a Muaina pathology report record into a formatted
// multi-page PDF document.
//
// The package is built around a fixed three-page template: report information
// and AI analysis, an optional patient-friendly interpretation, and optional
// suggested healthcare providers. Pages and sections whose backing data is
// absent are omitted entirely.
//
// Core properties:
//   - One-shot: a single JSON record in, a single PDF byte stream out
//   - Defaults resolved at parse time; rendering never consults fallbacks
//   - Theme-driven styling via an immutable palette and type scale
//   - Deterministic output for identical input
//
// Example:
//
//	report, err := reportpdf.ParseReport(input)
//	if err != nil {
//		log.Fatal(err)
//	}
//	story := reportpdf.BuildStory(report, reportpdf.DefaultTheme())
//	err = pdf.Render(pdf.RenderRequest{
//		Story:  story,
//		Writer: os.Stdout,
//		Config: pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package reportpdf
