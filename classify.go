package reportpdf

import "strings"

// ColorRole is a semantic color token resolved against a Theme.
type ColorRole uint8

// Color roles used by the report template.
const (
	RoleNeutral ColorRole = iota
	RolePrimary
	RoleSuccess
	RoleWarning
	RoleDanger
	RoleInfo
)

// Classification is the overall severity verdict for a report.
type Classification string

// Known classification values. Unknown input is kept verbatim (lowered) and
// maps to the neutral color role.
const (
	ClassificationNormal   Classification = "normal"
	ClassificationAbnormal Classification = "abnormal"
	ClassificationCritical Classification = "critical"
	ClassificationPending  Classification = "pending"
)

// ParseClassification normalizes a classification value. Empty input yields
// ClassificationPending.
func ParseClassification(s string) Classification {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ClassificationPending
	}
	return Classification(s)
}

// Role maps a classification to its color token.
func (c Classification) Role() ColorRole {
	switch c {
	case ClassificationNormal:
		return RoleSuccess
	case ClassificationAbnormal:
		return RoleWarning
	case ClassificationCritical:
		return RoleDanger
	default:
		return RoleNeutral
	}
}

// FindingSeverity is the severity of one discrete report finding.
type FindingSeverity string

// Known finding severities.
const (
	SeverityInfo     FindingSeverity = "info"
	SeverityWarning  FindingSeverity = "warning"
	SeverityCritical FindingSeverity = "critical"
)

// ParseFindingSeverity normalizes a finding severity. Empty input yields
// SeverityInfo.
func ParseFindingSeverity(s string) FindingSeverity {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SeverityInfo
	}
	return FindingSeverity(s)
}

// Role maps a finding severity to its color token.
func (s FindingSeverity) Role() ColorRole {
	switch s {
	case SeverityCritical:
		return RoleDanger
	case SeverityWarning:
		return RoleWarning
	default:
		return RoleNeutral
	}
}

// ConditionSeverity grades a diagnosed medical condition.
type ConditionSeverity string

// Known condition severities.
const (
	ConditionMild     ConditionSeverity = "mild"
	ConditionModerate ConditionSeverity = "moderate"
	ConditionSevere   ConditionSeverity = "severe"
)

// ParseConditionSeverity normalizes a condition severity. Empty input yields
// ConditionModerate.
func ParseConditionSeverity(s string) ConditionSeverity {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ConditionModerate
	}
	return ConditionSeverity(s)
}

// Urgency is the recommended timeframe for seeking consultation.
type Urgency string

// Known urgency values.
const (
	UrgencyRoutine Urgency = "routine"
	UrgencySoon    Urgency = "soon"
	UrgencyUrgent  Urgency = "urgent"
)

// ParseUrgency normalizes an urgency value. Empty input yields UrgencyRoutine.
func ParseUrgency(s string) Urgency {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UrgencyRoutine
	}
	return Urgency(s)
}

// Role maps an urgency to its color token.
func (u Urgency) Role() ColorRole {
	switch u {
	case UrgencyUrgent:
		return RoleDanger
	case UrgencySoon:
		return RoleWarning
	default:
		return RoleInfo
	}
}
