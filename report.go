package reportpdf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNotObject reports top-level JSON that is not an object.
	ErrNotObject = errors.New("input is not a JSON object")
	// ErrTrailingData reports extra content after the JSON object.
	ErrTrailingData = errors.New("trailing data after JSON object")
)

// Report is the fully-resolved view model for one pathology report. Every
// optional input field has been replaced by its default, so consumers never
// need a fallback path.
type Report struct {
	ID             string
	FileName       string
	UploadedAt     string
	Organization   string
	Classification Classification
	ReviewStatus   string
	Summary        string
	Details        string
	Findings       []Finding
	Interpretation *Interpretation
}

// Finding is one discrete observation extracted from a report.
type Finding struct {
	Severity    FindingSeverity
	Category    string
	Description string
}

// Interpretation is the patient-facing explanation of a report.
type Interpretation struct {
	Condition        *MedicalCondition
	Summary          string
	Precautions      []string
	Diet             []string
	Consultation     *ConsultationInfo
	Dos              []string
	Donts            []string
	LifestyleChanges []string
	SuggestedDoctors []SuggestedDoctor
	Recommendations  []DoctorRecommendation
}

// MedicalCondition describes the diagnosed condition.
type MedicalCondition struct {
	Name        string
	Description string
	Severity    ConditionSeverity
	ICDCode     string
}

// ConsultationInfo describes how and when to follow up.
type ConsultationInfo struct {
	FollowUpTiming string
	BookingInfo    string
	Urgency        Urgency
}

// SuggestedDoctor is one recommended healthcare provider.
type SuggestedDoctor struct {
	Name          string
	Specialty     string
	Qualification string
	Location      string
	Availability  string
	Contact       string
	Fee           string
}

// DoctorRecommendation recommends a specialist consultation.
type DoctorRecommendation struct {
	Specialty string
	Urgency   Urgency
	Reason    string
}

// Wire shapes mirror the upstream JSON keys exactly. They exist only inside
// ParseReport; everything downstream sees the resolved view model.

type reportJSON struct {
	ID               string              `json:"id"`
	FileName         string              `json:"fileName"`
	UploadedAt       string              `json:"uploadedAt"`
	OrganizationName string              `json:"organizationName"`
	Classification   string              `json:"classification"`
	ReviewStatus     string              `json:"reviewStatus"`
	Summary          string              `json:"summary"`
	Details          string              `json:"details"`
	Findings         []findingJSON       `json:"findings"`
	Interpretation   *interpretationJSON `json:"muainaInterpretation"`
}

type findingJSON struct {
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type interpretationJSON struct {
	MedicalCondition *conditionJSON       `json:"medicalCondition"`
	Summary          string               `json:"summary"`
	Precautions      []string             `json:"precautions"`
	Diet             []string             `json:"diet"`
	Consultation     *consultationJSON    `json:"consultation"`
	Dos              []string             `json:"dos"`
	Donts            []string             `json:"donts"`
	LifestyleChanges []string             `json:"lifestyleChanges"`
	SuggestedDoctors []doctorJSON         `json:"suggestedDoctors"`
	Recommendations  []recommendationJSON `json:"doctorRecommendations"`
}

type conditionJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	ICDCode     string `json:"icdCode"`
}

type consultationJSON struct {
	FollowUpTiming string `json:"followUpTiming"`
	BookingInfo    string `json:"bookingInfo"`
	Urgency        string `json:"urgency"`
}

type doctorJSON struct {
	Name          string `json:"name"`
	Specialty     string `json:"specialty"`
	Qualification string `json:"qualification"`
	Location      string `json:"location"`
	Availability  string `json:"availability"`
	Contact       string `json:"contact"`
	// Upstream emits the fee as either a string or a number.
	ConsultationFee any `json:"consultationFee"`
}

type recommendationJSON struct {
	Specialty string `json:"specialty"`
	Urgency   string `json:"urgency"`
	Reason    string `json:"reason"`
}

// ParseReport decodes a UTF-8 JSON report record and resolves every optional
// field to its default.
func ParseReport(data []byte) (*Report, error) {
	if err := ValidateInput(data); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotObject
	}
	var wire reportJSON
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}
	return wire.normalize(), nil
}

func (w *reportJSON) normalize() *Report {
	r := &Report{
		ID:             orDefault(w.ID, "N/A"),
		FileName:       orDefault(w.FileName, "Unknown"),
		UploadedAt:     orDefault(w.UploadedAt, "N/A"),
		Organization:   orDefault(w.OrganizationName, "Unknown"),
		Classification: ParseClassification(w.Classification),
		ReviewStatus:   orDefault(w.ReviewStatus, "pending"),
		Summary:        orDefault(w.Summary, "No summary available"),
		Details:        orDefault(w.Details, "No details available"),
	}
	for _, f := range w.Findings {
		r.Findings = append(r.Findings, Finding{
			Severity:    ParseFindingSeverity(f.Severity),
			Category:    f.Category,
			Description: f.Description,
		})
	}
	if w.Interpretation != nil {
		r.Interpretation = w.Interpretation.normalize()
	}
	return r
}

func (w *interpretationJSON) normalize() *Interpretation {
	in := &Interpretation{
		Summary:          w.Summary,
		Precautions:      w.Precautions,
		Diet:             w.Diet,
		Dos:              w.Dos,
		Donts:            w.Donts,
		LifestyleChanges: w.LifestyleChanges,
	}
	if c := w.MedicalCondition; c != nil && (c.Name != "" || c.Description != "" || c.Severity != "" || c.ICDCode != "") {
		in.Condition = &MedicalCondition{
			Name:        orDefault(c.Name, "Unknown"),
			Description: c.Description,
			Severity:    ParseConditionSeverity(c.Severity),
			ICDCode:     c.ICDCode,
		}
	}
	if c := w.Consultation; c != nil && (c.FollowUpTiming != "" || c.BookingInfo != "" || c.Urgency != "") {
		in.Consultation = &ConsultationInfo{
			FollowUpTiming: orDefault(c.FollowUpTiming, "N/A"),
			BookingInfo:    orDefault(c.BookingInfo, "N/A"),
			Urgency:        ParseUrgency(c.Urgency),
		}
	}
	for _, d := range w.SuggestedDoctors {
		in.SuggestedDoctors = append(in.SuggestedDoctors, SuggestedDoctor{
			Name:          orDefault(d.Name, "N/A"),
			Specialty:     d.Specialty,
			Qualification: d.Qualification,
			Location:      orDefault(d.Location, "N/A"),
			Availability:  orDefault(d.Availability, "N/A"),
			Contact:       orDefault(d.Contact, "N/A"),
			Fee:           feeString(d.ConsultationFee),
		})
	}
	for _, rec := range w.Recommendations {
		in.Recommendations = append(in.Recommendations, DoctorRecommendation{
			Specialty: orDefault(rec.Specialty, "N/A"),
			Urgency:   ParseUrgency(rec.Urgency),
			Reason:    rec.Reason,
		})
	}
	return in
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func feeString(v any) string {
	switch fee := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(fee)
	case float64:
		if fee == float64(int64(fee)) {
			return fmt.Sprintf("%d", int64(fee))
		}
		return fmt.Sprintf("%g", fee)
	default:
		return strings.TrimSpace(fmt.Sprint(fee))
	}
}
