package reportpdf

import (
	"errors"
	"os"
	"testing"
)

func TestParseReportDefaults(t *testing.T) {
	r, err := ParseReport([]byte(`{}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.ID != "N/A" {
		t.Fatalf("ID = %q, want N/A", r.ID)
	}
	if r.FileName != "Unknown" {
		t.Fatalf("FileName = %q, want Unknown", r.FileName)
	}
	if r.UploadedAt != "N/A" {
		t.Fatalf("UploadedAt = %q, want N/A", r.UploadedAt)
	}
	if r.Organization != "Unknown" {
		t.Fatalf("Organization = %q, want Unknown", r.Organization)
	}
	if r.Classification != ClassificationPending {
		t.Fatalf("Classification = %q, want pending", r.Classification)
	}
	if r.ReviewStatus != "pending" {
		t.Fatalf("ReviewStatus = %q, want pending", r.ReviewStatus)
	}
	if r.Summary != "No summary available" {
		t.Fatalf("Summary = %q", r.Summary)
	}
	if r.Details != "No details available" {
		t.Fatalf("Details = %q", r.Details)
	}
	if len(r.Findings) != 0 {
		t.Fatalf("Findings = %v, want none", r.Findings)
	}
	if r.Interpretation != nil {
		t.Fatalf("Interpretation = %+v, want nil", r.Interpretation)
	}
}

func TestParseReportInterpretationPresence(t *testing.T) {
	r, err := ParseReport([]byte(`{"muainaInterpretation": null}`))
	if err != nil {
		t.Fatalf("parse null: %v", err)
	}
	if r.Interpretation != nil {
		t.Fatalf("null interpretation should be absent")
	}

	r, err = ParseReport([]byte(`{"muainaInterpretation": {}}`))
	if err != nil {
		t.Fatalf("parse empty: %v", err)
	}
	if r.Interpretation == nil {
		t.Fatalf("empty interpretation object should be present")
	}
	if r.Interpretation.Condition != nil {
		t.Fatalf("empty interpretation should have no condition")
	}
	if r.Interpretation.Consultation != nil {
		t.Fatalf("empty interpretation should have no consultation")
	}
}

func TestParseReportConditionAllEmptyIsAbsent(t *testing.T) {
	r, err := ParseReport([]byte(`{"muainaInterpretation": {"medicalCondition": {}}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.Interpretation.Condition != nil {
		t.Fatalf("all-empty condition should be absent")
	}

	r, err = ParseReport([]byte(`{"muainaInterpretation": {"medicalCondition": {"name": "Anemia"}}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := r.Interpretation.Condition
	if c == nil {
		t.Fatalf("condition with a name should be present")
	}
	if c.Severity != ConditionModerate {
		t.Fatalf("condition severity = %q, want moderate default", c.Severity)
	}
}

func TestParseReportRejectsMalformed(t *testing.T) {
	cases := [][]byte{
		[]byte(`{"id":`),
		[]byte(`{"id": "x"`),
		[]byte(``),
	}
	for _, input := range cases {
		if _, err := ParseReport(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestParseReportRejectsNonObject(t *testing.T) {
	for _, input := range []string{`[1,2]`, `null`, `"report"`, `42`} {
		if _, err := ParseReport([]byte(input)); !errors.Is(err, ErrNotObject) {
			t.Fatalf("ParseReport(%q) = %v, want ErrNotObject", input, err)
		}
	}
}

func TestParseReportRejectsTrailingData(t *testing.T) {
	if _, err := ParseReport([]byte(`{} junk`)); !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
	if _, err := ParseReport([]byte("{}\n")); err != nil {
		t.Fatalf("trailing whitespace should be fine, got %v", err)
	}
}

func TestParseReportRejectsBinary(t *testing.T) {
	if _, err := ParseReport([]byte{0xff, 0xfe, 0xfd}); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	if _, err := ParseReport(append([]byte(`{"id":"x"}`), 0x00)); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestParseReportFeeFormats(t *testing.T) {
	cases := []struct {
		json string
		want string
	}{
		{`{"muainaInterpretation": {"suggestedDoctors": [{"consultationFee": 500}]}}`, "500"},
		{`{"muainaInterpretation": {"suggestedDoctors": [{"consultationFee": 99.5}]}}`, "99.5"},
		{`{"muainaInterpretation": {"suggestedDoctors": [{"consultationFee": " $40 "}]}}`, "$40"},
		{`{"muainaInterpretation": {"suggestedDoctors": [{}]}}`, ""},
	}
	for _, tc := range cases {
		r, err := ParseReport([]byte(tc.json))
		if err != nil {
			t.Fatalf("parse %s: %v", tc.json, err)
		}
		doctors := r.Interpretation.SuggestedDoctors
		if len(doctors) != 1 {
			t.Fatalf("doctors = %v, want one", doctors)
		}
		if doctors[0].Fee != tc.want {
			t.Fatalf("fee = %q, want %q", doctors[0].Fee, tc.want)
		}
	}
}

func TestParseReportFullFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/full_report.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	r, err := ParseReport(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.Classification != ClassificationAbnormal {
		t.Fatalf("classification = %q, want abnormal", r.Classification)
	}
	if len(r.Findings) != 3 {
		t.Fatalf("findings = %d, want 3", len(r.Findings))
	}
	if r.Findings[1].Severity != SeverityWarning {
		t.Fatalf("mixed-case severity = %q, want warning", r.Findings[1].Severity)
	}
	in := r.Interpretation
	if in == nil {
		t.Fatalf("interpretation missing")
	}
	if in.Condition == nil || in.Condition.ICDCode != "D50.9" {
		t.Fatalf("condition = %+v, want ICD D50.9", in.Condition)
	}
	if in.Consultation == nil || in.Consultation.Urgency != UrgencySoon {
		t.Fatalf("consultation = %+v, want urgency soon", in.Consultation)
	}
	if len(in.SuggestedDoctors) != 2 {
		t.Fatalf("doctors = %d, want 2", len(in.SuggestedDoctors))
	}
	if in.SuggestedDoctors[0].Fee != "750" {
		t.Fatalf("fee = %q, want 750", in.SuggestedDoctors[0].Fee)
	}
	if in.SuggestedDoctors[1].Fee != "" {
		t.Fatalf("fee = %q, want empty", in.SuggestedDoctors[1].Fee)
	}
	if len(in.Recommendations) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(in.Recommendations))
	}
}
