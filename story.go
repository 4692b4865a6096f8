package reportpdf

import "strings"

// Fixed template text.
const (
	brandName     = "MUAINA"
	brandSubtitle = "AI-Powered Pathology Report Analysis"

	page2Title = "Patient-Friendly Interpretation"
	page3Title = "Recommended Healthcare Providers"

	disclaimerAnalysis = "This AI-generated analysis is for informational purposes only and should not " +
		"replace professional medical advice. Always consult with qualified healthcare providers " +
		"for diagnosis and treatment decisions."
	disclaimerInterpretation = "This interpretation is designed to help you understand your results in simple terms. " +
		"It is NOT a substitute for professional medical advice. Please discuss these findings " +
		"with your healthcare provider."
	disclaimerDoctors = "The suggested doctors are recommendations based on your medical needs. " +
		"Availability and fees may vary. Please contact the healthcare provider directly " +
		"to confirm appointment details."
)

// Info table geometry, in points.
const (
	infoKeyWidth   = 120
	infoValWidth   = 350
	infoRowPadding = 6
)

// List item glyphs. The PDF layer substitutes encodable fallbacks for glyphs
// outside the core-font codepage.
const (
	glyphWarning = "⚠"
	glyphBullet  = "•"
	glyphCheck   = "✓"
	glyphCross   = "✗"
)

// reportIDLimit is the number of leading report ID characters shown. The
// ellipsis is appended only when the ID is actually longer.
const reportIDLimit = 8

func truncateID(id string) string {
	if len(id) > reportIDLimit {
		return id[:reportIDLimit] + "..."
	}
	return id
}

// BuildStory assembles the ordered block list for one report. Page one is
// always present; the interpretation and provider pages are emitted only when
// their backing data exists.
func BuildStory(r *Report, t Theme) []Block {
	s := storyBuilder{theme: t}
	s.page1(r)
	if r.Interpretation != nil {
		s.page2(r.Interpretation)
		s.page3(r.Interpretation)
	}
	return s.blocks
}

type storyBuilder struct {
	theme  Theme
	blocks []Block
}

func (s *storyBuilder) add(blocks ...Block) {
	s.blocks = append(s.blocks, blocks...)
}

func (s *storyBuilder) header(subtitle string, style TextStyle) {
	t := s.theme
	s.add(
		paragraph(brandName, t.logo()),
		paragraph(subtitle, style),
		rule(ruleThickness, t.palette.Primary),
		spacer(12),
	)
}

func (s *storyBuilder) page1(r *Report) {
	t := s.theme
	s.header(brandSubtitle, t.subtitle())

	s.add(paragraph("Report Information", t.section()))
	neutral := t.palette.Neutral
	s.add(Block{
		Kind:     BlockTable,
		Style:    t.body(),
		KeyWidth: infoKeyWidth,
		ValWidth: infoValWidth,
		Height:   infoRowPadding,
		Rows: []TableRow{
			{Key: "Report ID:", Value: truncateID(r.ID), Color: neutral},
			{Key: "File Name:", Value: r.FileName, Color: neutral},
			{Key: "Uploaded:", Value: r.UploadedAt, Color: neutral},
			{Key: "Organization:", Value: r.Organization, Color: neutral},
			{Key: "Classification:", Value: strings.ToUpper(string(r.Classification)), Color: t.Color(r.Classification.Role())},
			{Key: "Review Status:", Value: r.ReviewStatus, Color: neutral},
		},
	})
	s.add(spacer(16))

	s.add(
		paragraph("AI Analysis Summary", t.section()),
		paragraph(r.Summary, t.body()),
		spacer(8),
		paragraph(r.Details, t.body()),
		spacer(16),
	)

	if len(r.Findings) > 0 {
		s.add(paragraph("Key Findings", t.section()))
		for _, f := range r.Findings {
			title := t.colored(f.Severity.Role())
			s.add(
				prefixed("["+strings.ToUpper(string(f.Severity))+"] ", f.Category, title),
				paragraph(f.Description, t.listItem(RoleNeutral)),
			)
		}
		s.add(spacer(16))
	}

	s.add(
		spacer(20),
		prefixed("DISCLAIMER: ", disclaimerAnalysis, t.disclaimer()),
	)
}

func (s *storyBuilder) page2(in *Interpretation) {
	t := s.theme
	s.add(pageBreak())
	s.header(page2Title, t.section())

	if c := in.Condition; c != nil {
		name := t.subsection()
		name.Color = t.palette.Danger
		name.SpaceBefore = 0
		meta := "Severity: " + strings.ToUpper(string(c.Severity))
		if c.ICDCode != "" {
			meta += " | ICD Code: " + c.ICDCode
		}
		s.add(
			paragraph("Medical Condition", t.subsection()),
			paragraph(c.Name, name),
			paragraph(c.Description, t.body()),
			paragraph(meta, t.listItem(RoleNeutral)),
			spacer(12),
		)
	}

	s.add(
		paragraph("What This Means", t.subsection()),
		paragraph(in.Summary, t.body()),
		spacer(12),
	)

	if len(in.Precautions) > 0 {
		s.add(paragraph("Important Precautions", t.subsection()))
		for _, item := range in.Precautions {
			s.add(paragraph(glyphWarning+" "+item, t.listItem(RoleWarning)))
		}
		s.add(spacer(12))
	}

	if len(in.Diet) > 0 {
		s.add(paragraph("Diet Recommendations", t.subsection()))
		for _, item := range in.Diet {
			s.add(paragraph(glyphBullet+" "+item, t.listItem(RoleInfo)))
		}
		s.add(spacer(12))
	}

	if c := in.Consultation; c != nil {
		s.add(
			paragraph("Consultation Information", t.subsection()),
			prefixed("Follow-up: ", c.FollowUpTiming, t.body()),
			prefixed("How to Book: ", c.BookingInfo, t.body()),
			prefixed("Priority: ", strings.ToUpper(string(c.Urgency)), t.colored(c.Urgency.Role())),
			spacer(12),
		)
	}

	if len(in.Dos) > 0 || len(in.Donts) > 0 {
		s.add(paragraph("Do's and Don'ts", t.subsection()))
		if len(in.Dos) > 0 {
			s.add(prefixed("Things to Do:", "", t.body()))
			for _, item := range in.Dos {
				s.add(paragraph(glyphCheck+" "+item, t.listItem(RoleSuccess)))
			}
		}
		if len(in.Donts) > 0 {
			s.add(prefixed("Things to Avoid:", "", t.body()))
			for _, item := range in.Donts {
				s.add(paragraph(glyphCross+" "+item, t.listItem(RoleDanger)))
			}
		}
		s.add(spacer(12))
	}

	if len(in.LifestyleChanges) > 0 {
		s.add(paragraph("Lifestyle Changes", t.subsection()))
		for _, item := range in.LifestyleChanges {
			s.add(paragraph(glyphBullet+" "+item, t.listItem(RoleNeutral)))
		}
		s.add(spacer(12))
	}

	s.add(
		spacer(20),
		paragraph(disclaimerInterpretation, t.disclaimer()),
	)
}

func (s *storyBuilder) page3(in *Interpretation) {
	if len(in.SuggestedDoctors) == 0 && len(in.Recommendations) == 0 {
		return
	}
	t := s.theme
	s.add(pageBreak())
	s.header(page3Title, t.section())

	if len(in.SuggestedDoctors) > 0 {
		s.add(paragraph("Suggested Doctors", t.subsection()))
		name := t.body()
		name.Size = 11
		name.Leading = 15
		name.Bold = true
		name.Color = t.palette.Success
		for _, d := range in.SuggestedDoctors {
			s.add(
				paragraph(d.Name, name),
				paragraph(d.Specialty+" - "+d.Qualification, t.body()),
				paragraph("Location: "+d.Location, t.listItem(RoleNeutral)),
				paragraph("Availability: "+d.Availability, t.listItem(RoleNeutral)),
				paragraph("Contact: "+d.Contact, t.listItem(RoleNeutral)),
			)
			if d.Fee != "" {
				s.add(paragraph("Fee: "+d.Fee, t.listItem(RoleNeutral)))
			}
			s.add(spacer(10))
		}
	}

	if len(in.Recommendations) > 0 {
		s.add(paragraph("Specialist Consultations Recommended", t.subsection()))
		for _, rec := range in.Recommendations {
			s.add(
				prefixed(rec.Specialty, " ("+strings.ToUpper(string(rec.Urgency))+")", t.body()),
				paragraph(rec.Reason, t.listItem(RoleNeutral)),
				spacer(6),
			)
		}
	}

	s.add(
		spacer(20),
		paragraph(disclaimerDoctors, t.disclaimer()),
	)
}
