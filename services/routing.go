package services

import "org-portal-api/models"

// ResolveReviewer returns the organization that reviews ordinary submissions
// filed by org: the league for accredited organizations, the university student
// government for its subordinate councils, and the Office of Student Life for
// everyone else. Total over the organization set.
func ResolveReviewer(org string) string {
	switch {
	case org == models.OrgAccredited:
		return models.OrgLeague
	case models.IsCouncil(org):
		return models.OrgUSG
	default:
		return models.OrgStudentLife
	}
}

// ResolveAppealReviewer returns the organization that decides on org's letters
// of appeal. This table is intentionally different from ResolveReviewer and the
// two must not be unified: the league's own appeals and the Office of Student
// Life's own submissions escalate to the Office of Student Life, an accredited
// organization's appeal goes to the league, and a subordinate government's
// appeal goes to the university student government.
func ResolveAppealReviewer(org string) string {
	switch {
	case org == models.OrgAccredited:
		return models.OrgLeague
	case models.IsCouncil(org):
		return models.OrgUSG
	case org == models.OrgLeague, org == models.OrgStudentLife:
		return models.OrgStudentLife
	default:
		return models.OrgStudentLife
	}
}
