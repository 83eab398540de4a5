package composition

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/sudhanva/roadmap-engine/internal/enrichment"
	"github.com/sudhanva/roadmap-engine/internal/merge"
	"github.com/sudhanva/roadmap-engine/internal/overrides"
	"github.com/sudhanva/roadmap-engine/internal/persona"
	"github.com/sudhanva/roadmap-engine/internal/templates"
	"github.com/sudhanva/roadmap-engine/internal/types"
)

// Event represents a progress update during composition.
type Event struct {
	Step    string `json:"step"`
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
}

// Observer is called as composition progresses. It replaces the ad hoc
// console tracing earlier revisions of this pipeline accumulated; library code
// stays silent unless a caller hooks in.
type Observer func(event Event)

// Config holds the collaborators a Composer needs.
type Config struct {
	Store    templates.Store
	Policy   *overrides.Policy // nil means DefaultPolicy
	Observer Observer
}

// Composer coordinates classification, template loading, merging, overrides
// and enrichment. It is safe for concurrent use: each Compose call operates on
// its own freshly-loaded templates and working tree.
type Composer struct {
	store    templates.Store
	policy   overrides.Policy
	observer Observer
}

// invariantPaths are the merged-tree paths downstream consumers require.
// averageBaseline is listed explicitly because an intermediate template
// redefining skillMap.thresholds without repeating it has shipped broken
// roadmaps before.
var invariantPaths = []struct {
	path     string
	nonEmpty bool // require a non-empty array
}{
	{path: "skillMap.thresholds.averageBaseline"},
	{path: "metadata.skills", nonEmpty: true},
	{path: "learningPath.phases", nonEmpty: true},
}

// NewComposer creates a Composer.
func NewComposer(cfg Config) (*Composer, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("composition: template store is required")
	}
	policy := overrides.DefaultPolicy()
	if cfg.Policy != nil {
		policy = *cfg.Policy
	}
	return &Composer{
		store:    cfg.Store,
		policy:   policy,
		observer: cfg.Observer,
	}, nil
}

// Compose runs the full pipeline for one quiz submission. Any step failure
// aborts the run with a *composition.Error; there is no fallback path and no
// partial result.
func (c *Composer) Compose(ctx context.Context, quiz *types.QuizResponse, profile *types.ProfileData) (*types.ComposedConfig, error) {
	if quiz == nil {
		return nil, &Error{Stage: StageValidate, Err: fmt.Errorf("quiz responses are required")}
	}
	// Mandatory-field check happens before any template fetch.
	if err := quiz.Validate(); err != nil {
		return nil, &Error{Stage: StageValidate, Err: err}
	}

	modular, err := persona.Decompose(quiz)
	if err != nil {
		return nil, &Error{Stage: StageClassify, Err: err}
	}
	c.emit("persona", StageClassify, fmt.Sprintf("decomposed to %s/%s/%s/%s",
		modular.Role, modular.Level, modular.UserType, modular.CompanyType))

	loaded, err := c.loadTemplates(ctx, modular)
	if err != nil {
		return nil, &Error{Stage: StageLoad, Err: err}
	}
	c.emit("templates", StageLoad, "loaded role, level, user-type and company-type templates")

	composed := merge.Fold(loaded.role, loaded.level, loaded.userType, loaded.companyType)
	c.emit("merge", StageMerge, "folded templates in priority order")

	if err := checkInvariants(composed); err != nil {
		return nil, &Error{Stage: StageInvariants, Err: err}
	}

	// Work on a private deep copy from here on: override rules and enrichment
	// mutate the tree, and merged branches still alias the loaded templates.
	working := merge.Clone(composed)

	overrides.Apply(working, quiz, c.policy)
	c.emit("overrides", StageOverrides, "applied user-data overrides")

	result := enrichment.Enrich(working, quiz)
	c.emit("enrichment", StageEnrich, fmt.Sprintf("skill match score %d%%", result.MatchScore))

	personalizeHero(working, quiz, profile, modular)

	return &types.ComposedConfig{
		Config: working,
		Metadata: types.ComposeMetadata{
			RunID:          uuid.New(),
			ModularPersona: modular,
			SkillsGapScore: result.MatchScore,
			GeneratedAt:    time.Now().UTC(),
		},
	}, nil
}

// loadedTemplates keeps the four fragments in merge order.
type loadedTemplates struct {
	role, level, userType, companyType types.Template
}

// loadTemplates fetches the four dimension templates concurrently. The loads
// are independent; the first failure cancels the in-flight siblings and fails
// the whole composition.
func (c *Composer) loadTemplates(ctx context.Context, modular *types.ModularPersona) (*loadedTemplates, error) {
	g, gCtx := errgroup.WithContext(ctx)

	var loaded loadedTemplates
	g.Go(func() error {
		tpl, err := c.store.Load(gCtx, templates.DimensionRoles, string(modular.Role))
		if err != nil {
			return fmt.Errorf("role template: %w", err)
		}
		loaded.role = tpl
		return nil
	})
	g.Go(func() error {
		tpl, err := c.store.Load(gCtx, templates.DimensionLevels, string(modular.Level))
		if err != nil {
			return fmt.Errorf("level template: %w", err)
		}
		loaded.level = tpl
		return nil
	})
	g.Go(func() error {
		tpl, err := c.store.Load(gCtx, templates.DimensionUserTypes, string(modular.UserType))
		if err != nil {
			return fmt.Errorf("user-type template: %w", err)
		}
		loaded.userType = tpl
		return nil
	})
	g.Go(func() error {
		tpl, err := c.store.Load(gCtx, templates.DimensionCompanyTypes, string(modular.CompanyType))
		if err != nil {
			return fmt.Errorf("company-type template: %w", err)
		}
		loaded.companyType = tpl
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &loaded, nil
}

// checkInvariants verifies the merged tree still carries the nested values
// downstream consumers depend on.
func checkInvariants(tree map[string]any) error {
	raw, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to inspect merged config: %w", err)
	}

	for _, inv := range invariantPaths {
		result := gjson.GetBytes(raw, inv.path)
		if !result.Exists() {
			return &StructuralInvariantError{Path: inv.path}
		}
		if inv.nonEmpty && len(result.Array()) == 0 {
			return &StructuralInvariantError{Path: inv.path, Detail: "expected a non-empty array"}
		}
	}
	return nil
}

// personalizeHero substitutes the template placeholders in the hero copy.
func personalizeHero(tree map[string]any, quiz *types.QuizResponse, profile *types.ProfileData, modular *types.ModularPersona) {
	hero, ok := tree["hero"].(map[string]any)
	if !ok {
		return
	}

	userName := quiz.UserName
	if profile != nil && profile.UserName != "" {
		userName = profile.UserName
	}
	if userName == "" {
		userName = "User"
	}

	hero["greeting"] = fmt.Sprintf("Hey %s! 👋", userName)
	if title, ok := hero["title"].(string); ok {
		title = strings.ReplaceAll(title, "{userName}", userName)
		title = strings.ReplaceAll(title, "{targetRole}", quiz.TargetRole)
		title = strings.ReplaceAll(title, "{role}", string(modular.Role))
		hero["title"] = title
	}
}

// emit calls the observer if configured.
func (c *Composer) emit(step string, stage Stage, message string) {
	if c.observer != nil {
		c.observer(Event{Step: step, Stage: stage, Message: message})
	}
}
