package usecase

import (
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/service/analysis"
	"github.com/reviewsight-lab/reviewsight/pkg/service/export"
	"github.com/reviewsight-lab/reviewsight/pkg/service/insight"
	"github.com/reviewsight-lab/reviewsight/pkg/service/synthetic"
)

// UseCases wires the pipeline components behind the application operations
type UseCases struct {
	repo           interfaces.Repository
	engine         *analysis.Engine
	insights       *insight.Generator
	sink           *export.Sink
	adapters       []interfaces.SourceAdapter
	synthesizer    *synthetic.Generator
	topicExtractor interfaces.TopicExtractor
}

type Option func(*UseCases)

// WithAdapters sets the source adapters in collection order
func WithAdapters(adapters ...interfaces.SourceAdapter) Option {
	return func(uc *UseCases) {
		uc.adapters = adapters
	}
}

// WithSynthesizer enables synthetic top-up for collection shortfalls
func WithSynthesizer(g *synthetic.Generator) Option {
	return func(uc *UseCases) {
		uc.synthesizer = g
	}
}

// WithTopicExtractor enables the ad-hoc topic extraction operation
func WithTopicExtractor(t interfaces.TopicExtractor) Option {
	return func(uc *UseCases) {
		uc.topicExtractor = t
	}
}

// New creates the use case set
func New(repo interfaces.Repository, engine *analysis.Engine, insights *insight.Generator, sink *export.Sink, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		engine:   engine,
		insights: insights,
		sink:     sink,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
