package types

// Role is the canonical role dimension of a persona.
type Role string

// Known role keys. Every key must have a backing template under roles/.
const (
	RoleBackend   Role = "backend"
	RoleFrontend  Role = "frontend"
	RoleFullstack Role = "fullstack"
	RoleDevOps    Role = "devops"
	RoleData      Role = "data"
)

// Level is the canonical experience-level dimension of a persona.
type Level string

// Known level keys.
const (
	LevelEntry  Level = "entry"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
)

// UserType distinguishes users already in tech from career switchers.
type UserType string

// Known user-type keys.
const (
	UserTypeTechProfessional UserType = "tech_professional"
	UserTypeCareerSwitcher   UserType = "career_switcher"
)

// CompanyType is the canonical target-company dimension of a persona.
type CompanyType string

// Known company-type keys.
const (
	CompanyTypeStartup CompanyType = "startup"
	CompanyTypeScaleup CompanyType = "scaleup"
	CompanyTypeBigTech CompanyType = "bigtech"
	CompanyTypeService CompanyType = "service"
)

// AllRoles lists every valid role key in classifier priority order.
func AllRoles() []Role {
	return []Role{RoleBackend, RoleFrontend, RoleFullstack, RoleDevOps, RoleData}
}

// AllLevels lists every valid level key.
func AllLevels() []Level {
	return []Level{LevelEntry, LevelMid, LevelSenior}
}

// AllUserTypes lists every valid user-type key.
func AllUserTypes() []UserType {
	return []UserType{UserTypeTechProfessional, UserTypeCareerSwitcher}
}

// AllCompanyTypes lists every valid company-type key.
func AllCompanyTypes() []CompanyType {
	return []CompanyType{CompanyTypeStartup, CompanyTypeScaleup, CompanyTypeBigTech, CompanyTypeService}
}

// OriginalAnswers preserves the raw quiz values a persona was derived from,
// for metadata and debugging.
type OriginalAnswers struct {
	TargetRole        string `json:"targetRole"`
	YearsOfExperience string `json:"yearsOfExperience"`
	Background        string `json:"background,omitempty"`
	TargetCompanyType string `json:"targetCompanyType"`
}

// ModularPersona is the canonical four-dimension decomposition of a quiz
// response. Every field is guaranteed to be one of its enum values; a persona
// never references an undefined template.
type ModularPersona struct {
	Role        Role            `json:"role"`
	Level       Level           `json:"level"`
	UserType    UserType        `json:"userType"`
	CompanyType CompanyType     `json:"companyType"`
	Original    OriginalAnswers `json:"originalValues"`
}
