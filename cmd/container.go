package main

import (
	"github.com/visuscan/visuscan/internal/ai/completion"
	"github.com/visuscan/visuscan/internal/ai/embeddings"
	"github.com/visuscan/visuscan/internal/ai/structext"
	"github.com/visuscan/visuscan/internal/config"
	"github.com/visuscan/visuscan/internal/similarity"
	"github.com/visuscan/visuscan/screening/jd/jdapi"
	"github.com/visuscan/visuscan/screening/jd/jdsrv"
	"github.com/visuscan/visuscan/screening/match/matchapi"
	"github.com/visuscan/visuscan/screening/match/matchsrv"
	"github.com/visuscan/visuscan/screening/resume/resumeapi"
	"github.com/visuscan/visuscan/screening/resume/resumesrv"
)

// Container holds all application dependencies. Everything here is built
// once at process start and shared read-only across requests; no per-
// request mutable state lives in it.
type Container struct {
	Config *config.Config

	// AI clients
	Completion *completion.Client
	Embeddings *embeddings.Generator
	Scorer     *similarity.Scorer

	// Services
	ResumeService *resumesrv.Service
	JDService     *jdsrv.Service
	MatchService  *matchsrv.Service

	// API Handlers
	ResumeHandlers *resumeapi.Handlers
	JDHandlers     *jdapi.Handlers
	MatchHandlers  *matchapi.Handlers
}

// NewContainer initializes the dependency container.
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	c.Completion = completion.NewClient(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.CompletionModel,
		cfg.OpenAI.RequestTimeout,
	)

	// Single process-wide embedding client, injected into the scorer
	// rather than accessed as global state.
	c.Embeddings = embeddings.NewGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.RequestTimeout)
	c.Scorer = similarity.NewScorer(c.Embeddings)

	extractor := structext.New(c.Completion)

	c.ResumeService = resumesrv.NewService(extractor)
	c.JDService = jdsrv.NewService(extractor)
	c.MatchService = matchsrv.NewService(c.Scorer)

	c.ResumeHandlers = resumeapi.NewHandlers(c.ResumeService)
	c.JDHandlers = jdapi.NewHandlers(c.JDService)
	c.MatchHandlers = matchapi.NewHandlers(c.MatchService)

	return c
}
