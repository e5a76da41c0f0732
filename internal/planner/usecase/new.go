package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"day-planner/config"
	"day-planner/internal/planner"
	"day-planner/internal/planner/repository"
	"day-planner/pkg/datemath"
	pkgLog "day-planner/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	taskRepo  repository.TaskRepository
	templates repository.TemplateRepository
	overrides repository.OverrideRepository
	profiles  repository.ProfileRepository
	dates     *datemath.Parser
	cfg       config.PlannerConfig

	// group serializes concurrent runs for the same (person, date); a
	// duplicate request coalesces into the in-flight result.
	group singleflight.Group

	// cache holds recent plan outputs keyed by (person, date, input
	// fingerprint). A store change alters the fingerprint, so entries can
	// never go stale; the TTL only bounds memory.
	cache *expirable.LRU[string, planner.BuildDayPlanOutput]
}

// New creates a new planner UseCase instance.
func New(
	l pkgLog.Logger,
	taskRepo repository.TaskRepository,
	templates repository.TemplateRepository,
	overrides repository.OverrideRepository,
	profiles repository.ProfileRepository,
	dates *datemath.Parser,
	cfg config.PlannerConfig,
) *implUseCase {
	size := cfg.CacheSize
	if size <= 0 {
		size = 128
	}
	ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &implUseCase{
		l:         l,
		taskRepo:  taskRepo,
		templates: templates,
		overrides: overrides,
		profiles:  profiles,
		dates:     dates,
		cfg:       cfg,
		cache:     expirable.NewLRU[string, planner.BuildDayPlanOutput](size, nil, ttl),
	}
}
