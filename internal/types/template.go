package types

// Template is one dimension's contribution to the final roadmap, decoded from
// JSON. Templates are read-only once loaded; the merge engine never mutates
// them.
type Template map[string]any

// Skill priority tiers as authored in template metadata.skills.
const (
	SkillPriorityCritical = "critical"
	SkillPriorityHigh     = "high"
	SkillPriorityMedium   = "medium"
)

// CatalogSkill is a single entry of a template's flat skill catalog.
type CatalogSkill struct {
	Name     string `json:"name"`
	Priority string `json:"priority"`
	Category string `json:"category,omitempty"`
}

// SkillBuckets groups skill names by display priority tier. Note the
// deliberate one-tier shift relative to catalog priorities: critical skills
// land in HighPriority, high in MediumPriority, medium in LowPriority. The
// presentation layer keys on these names.
type SkillBuckets struct {
	HighPriority   []string `json:"highPriority"`
	MediumPriority []string `json:"mediumPriority"`
	LowPriority    []string `json:"lowPriority"`
}
