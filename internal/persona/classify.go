package persona

import (
	"regexp"
	"strings"

	"github.com/sudhanva/roadmap-engine/internal/types"
)

// roleAliases maps already-normalized role phrases to role keys. Seniority
// prefixes are stripped before the second lookup, so the table only needs the
// base phrases plus a few framework-specific names.
var roleAliases = map[string]types.Role{
	"backend":          types.RoleBackend,
	"backend engineer": types.RoleBackend,

	"frontend":          types.RoleFrontend,
	"frontend engineer": types.RoleFrontend,
	"react engineer":    types.RoleFrontend,
	"angular engineer":  types.RoleFrontend,
	"vue engineer":      types.RoleFrontend,

	"fullstack":           types.RoleFullstack,
	"full stack":          types.RoleFullstack,
	"full-stack":          types.RoleFullstack,
	"fullstack engineer":  types.RoleFullstack,
	"full stack engineer": types.RoleFullstack,

	"devops":                    types.RoleDevOps,
	"devops engineer":           types.RoleDevOps,
	"sre":                       types.RoleDevOps,
	"site reliability engineer": types.RoleDevOps,
	"infrastructure engineer":   types.RoleDevOps,

	"data":                  types.RoleData,
	"data engineer":         types.RoleData,
	"data science":          types.RoleData,
	"data science engineer": types.RoleData,
	"data scientist":        types.RoleData,
	"analytics engineer":    types.RoleData,
}

// roleKeywords is the substring fallback, checked in priority order.
var roleKeywords = []struct {
	keyword string
	role    types.Role
}{
	{"backend", types.RoleBackend},
	{"frontend", types.RoleFrontend},
	{"fullstack", types.RoleFullstack},
	{"full-stack", types.RoleFullstack},
	{"full stack", types.RoleFullstack},
	{"devops", types.RoleDevOps},
	{"sre", types.RoleDevOps},
	{"reliability", types.RoleDevOps},
	{"infrastructure", types.RoleDevOps},
	{"data", types.RoleData},
}

var (
	seniorityPrefix = regexp.MustCompile(`^\s*(senior|lead|principal|staff|junior)\s+`)
	roleNounSuffix  = regexp.MustCompile(`\s+(engineer|scientist|specialist|expert)?\s*$`)
	yearsNumber     = regexp.MustCompile(`(\d+)`)
)

// ClassifyRole maps a free-text target role to a canonical role key.
// It tries an exact alias lookup, then retries with seniority prefix and role
// noun suffix stripped, then falls back to substring matching. Unrecognized
// roles are a hard error.
func ClassifyRole(targetRole string) (types.Role, error) {
	if strings.TrimSpace(targetRole) == "" {
		return "", &MissingFieldError{Field: "targetRole"}
	}

	role := strings.ToLower(strings.TrimSpace(targetRole))
	if r, ok := roleAliases[role]; ok {
		return r, nil
	}

	normalized := seniorityPrefix.ReplaceAllString(role, "")
	normalized = roleNounSuffix.ReplaceAllString(normalized, "")
	normalized = strings.TrimSpace(normalized)
	if r, ok := roleAliases[normalized]; ok {
		return r, nil
	}

	for _, kw := range roleKeywords {
		if strings.Contains(normalized, kw.keyword) {
			return kw.role, nil
		}
	}

	return "", &UnrecognizedRoleError{Input: targetRole}
}

// ClassifyLevel maps years of experience to a level key. Range inputs like
// "3-5" classify by their lower bound. Five or more years is senior, three or
// more is mid, anything less is entry.
func ClassifyLevel(yearsOfExperience string) (types.Level, error) {
	if strings.TrimSpace(yearsOfExperience) == "" {
		return "", &MissingFieldError{Field: "yearsOfExperience"}
	}

	m := yearsNumber.FindStringSubmatch(yearsOfExperience)
	if m == nil {
		return "", &InvalidYearsError{Input: yearsOfExperience}
	}

	years := 0
	for _, c := range m[1] {
		years = years*10 + int(c-'0')
	}

	switch {
	case years >= 5:
		return types.LevelSenior, nil
	case years >= 3:
		return types.LevelMid, nil
	default:
		return types.LevelEntry, nil
	}
}

// ClassifyUserType maps background to a user-type key. An explicit user type
// wins when it is one of the two valid values; otherwise a non-tech background
// means career switcher and everything else defaults to tech professional.
func ClassifyUserType(background, explicitUserType string) types.UserType {
	switch types.UserType(explicitUserType) {
	case types.UserTypeTechProfessional, types.UserTypeCareerSwitcher:
		return types.UserType(explicitUserType)
	}
	if background == types.BackgroundNonTech {
		return types.UserTypeCareerSwitcher
	}
	return types.UserTypeTechProfessional
}

// companyAliases maps normalized company descriptions to company-type keys.
var companyAliases = map[string]types.CompanyType{
	"startup":     types.CompanyTypeStartup,
	"high-growth": types.CompanyTypeStartup,
	"high growth": types.CompanyTypeStartup,

	"scaleup":  types.CompanyTypeScaleup,
	"scale-up": types.CompanyTypeScaleup,
	"scale up": types.CompanyTypeScaleup,
	"scaled":   types.CompanyTypeScaleup,
	"unicorn":  types.CompanyTypeScaleup,

	"bigtech":  types.CompanyTypeBigTech,
	"big-tech": types.CompanyTypeBigTech,
	"big tech": types.CompanyTypeBigTech,
	"faang":    types.CompanyTypeBigTech,

	"service":    types.CompanyTypeService,
	"consulting": types.CompanyTypeService,
	"enterprise": types.CompanyTypeService,
	"corporate":  types.CompanyTypeService,
}

// ClassifyCompanyType maps a free-text company description to a company-type
// key. Unrecognized input is a hard error: older revisions of this logic
// silently fell back to "startup", which masked content bugs downstream.
func ClassifyCompanyType(targetCompanyType string) (types.CompanyType, error) {
	if strings.TrimSpace(targetCompanyType) == "" {
		return "", &MissingFieldError{Field: "targetCompanyType"}
	}

	company := strings.ToLower(strings.TrimSpace(targetCompanyType))
	if ct, ok := companyAliases[company]; ok {
		return ct, nil
	}

	return "", &UnrecognizedCompanyTypeError{Input: targetCompanyType}
}

// Decompose classifies all four dimensions of a quiz response into a
// ModularPersona. Any classification failure aborts the decomposition.
func Decompose(quiz *types.QuizResponse) (*types.ModularPersona, error) {
	role, err := ClassifyRole(quiz.TargetRole)
	if err != nil {
		return nil, err
	}

	level, err := ClassifyLevel(quiz.YearsOfExperience)
	if err != nil {
		return nil, err
	}

	userType := ClassifyUserType(quiz.Background, quiz.UserType)

	companyType, err := ClassifyCompanyType(quiz.TargetCompanyType)
	if err != nil {
		return nil, err
	}

	return &types.ModularPersona{
		Role:        role,
		Level:       level,
		UserType:    userType,
		CompanyType: companyType,
		Original: types.OriginalAnswers{
			TargetRole:        quiz.TargetRole,
			YearsOfExperience: quiz.YearsOfExperience,
			Background:        quiz.Background,
			TargetCompanyType: quiz.TargetCompanyType,
		},
	}, nil
}
