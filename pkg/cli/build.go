package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/cli/config"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/service/analysis"
	"github.com/reviewsight-lab/reviewsight/pkg/service/export"
	"github.com/reviewsight-lab/reviewsight/pkg/service/insight"
	"github.com/reviewsight-lab/reviewsight/pkg/usecase"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
)

// buildUseCases assembles the review pipeline from the shared config
// sections. The Gemini client is optional; without it the rule-based
// scorer and canned insight reports carry the pipeline.
func buildUseCases(ctx context.Context, repo interfaces.Repository, geminiCfg *config.Gemini, sourcesCfg *config.Sources, analysisCfg *config.Analysis) (*usecase.UseCases, error) {
	lexicon, err := analysisCfg.Lexicon()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load lexicon")
	}

	llmClient, err := geminiCfg.Configure(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize Gemini client")
	}

	var engineOpts []analysis.Option
	ucOpts := []usecase.Option{}
	if llmClient != nil {
		scorer := analysis.NewLLMScorer(llmClient)
		engineOpts = append(engineOpts, analysis.WithScorer(scorer))
		ucOpts = append(ucOpts, usecase.WithTopicExtractor(scorer))
		logging.Default().Info("Gemini client enabled for sentiment scoring and insights")
	} else {
		logging.Default().Info("Gemini not configured, using rule-based analysis")
	}

	adapters, err := sourcesCfg.Adapters()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize source adapters")
	}
	ucOpts = append(ucOpts,
		usecase.WithAdapters(adapters...),
		usecase.WithSynthesizer(sourcesCfg.Synthesizer()),
	)

	engine := analysis.New(lexicon, engineOpts...)
	insights := insight.New(llmClient)
	sink := export.New(analysisCfg.ExportDir())

	return usecase.New(repo, engine, insights, sink, ucOpts...), nil
}
