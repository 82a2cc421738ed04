package models

// Organization codes form a closed set of fixed business entities.
// The portal is built for one institution; the set is not user-extensible.
const (
	OrgAccredited        = "accredited-org"
	OrgLeague            = "league-of-campus-orgs"
	OrgUSG               = "university-student-government"
	OrgCollegeCouncil    = "college-student-council"
	OrgSeniorHighCouncil = "senior-high-student-council"
	OrgJuniorHighCouncil = "junior-high-student-council"
	OrgStudentLife       = "student-life-office"
	OrgAudit             = "audit-office"

	// OrgAll addresses a notification to every organization.
	OrgAll = "ALL"
)

// AllOrganizations lists every real organization code (OrgAll excluded).
var AllOrganizations = []string{
	OrgAccredited,
	OrgLeague,
	OrgUSG,
	OrgCollegeCouncil,
	OrgSeniorHighCouncil,
	OrgJuniorHighCouncil,
	OrgStudentLife,
	OrgAudit,
}

// IsValidOrganization reports whether code names a real organization.
func IsValidOrganization(code string) bool {
	for _, org := range AllOrganizations {
		if org == code {
			return true
		}
	}
	return false
}

// IsCouncil reports whether the organization is a subordinate student government
// under the university student government.
func IsCouncil(code string) bool {
	switch code {
	case OrgCollegeCouncil, OrgSeniorHighCouncil, OrgJuniorHighCouncil:
		return true
	}
	return false
}

// GetOrganizationName returns the display name for an organization code.
func GetOrganizationName(code string) string {
	switch code {
	case OrgAccredited:
		return "Accredited Student Organization"
	case OrgLeague:
		return "League of Campus Organizations"
	case OrgUSG:
		return "University Student Government"
	case OrgCollegeCouncil:
		return "College Student Council"
	case OrgSeniorHighCouncil:
		return "Senior High Student Council"
	case OrgJuniorHighCouncil:
		return "Junior High Student Council"
	case OrgStudentLife:
		return "Office of Student Life"
	case OrgAudit:
		return "Audit Office"
	case OrgAll:
		return "All Organizations"
	default:
		return code
	}
}
