package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/reviewsight-lab/reviewsight/pkg/cli/config"
	"github.com/reviewsight-lab/reviewsight/pkg/repository/memory"
	"github.com/reviewsight-lab/reviewsight/pkg/usecase"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
)

func cmdAnalyze() *cli.Command {
	var business string
	var location string
	var appName string
	var domain string
	var count int
	var geminiCfg config.Gemini
	var sourcesCfg config.Sources
	var analysisCfg config.Analysis

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "business",
			Usage:       "Business name to analyze (required)",
			Required:    true,
			Destination: &business,
		},
		&cli.StringFlag{
			Name:        "location",
			Usage:       "Business location",
			Value:       "France",
			Destination: &location,
		},
		&cli.StringFlag{
			Name:        "app-name",
			Usage:       "Mobile app name (defaults to the business name)",
			Destination: &appName,
		},
		&cli.StringFlag{
			Name:        "domain",
			Usage:       "Web domain (derived from the business name when unset)",
			Destination: &domain,
		},
		&cli.IntFlag{
			Name:        "count",
			Usage:       "Minimum number of reviews, topped up with simulated ones",
			Value:       30,
			Destination: &count,
		},
	}
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, sourcesCfg.Flags()...)
	flags = append(flags, analysisCfg.Flags()...)

	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Run the full review analysis pipeline for one business",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo := memory.New()
			defer repo.Close() //nolint:errcheck // in-memory close never fails

			uc, err := buildUseCases(ctx, repo, &geminiCfg, &sourcesCfg, &analysisCfg)
			if err != nil {
				return err
			}

			if appName == "" {
				appName = business
			}
			if domain == "" {
				domain = strings.ToLower(strings.ReplaceAll(business, " ", "")) + ".com"
			}

			result, err := uc.RunPipeline(ctx, usecase.PipelineInput{
				Company: usecase.RegisterCompanyInput{
					Name:     business,
					Location: location,
					AppName:  appName,
					Domain:   domain,
				},
				Collect: usecase.CollectInput{MinTotal: count},
			})
			if err != nil {
				return goerr.Wrap(err, "pipeline failed")
			}

			printPipelineResult(result)

			logging.Default().Info("Analysis completed",
				"business", business,
				"reviews", result.ReviewCount,
				"exports", result.ExportPaths,
			)
			return nil
		},
	}
}

func printPipelineResult(result *usecase.PipelineResult) {
	title := color.New(color.FgCyan, color.Bold)
	section := color.New(color.Bold)

	title.Printf("\nAnalysis of %d reviews\n\n", result.ReviewCount)

	fmt.Printf("Average rating:  %.2f / 5\n", result.KPIs.AverageRating)
	fmt.Printf("Sentiment score: %.2f\n\n", result.KPIs.SentimentScore)

	section.Println("Summary")
	fmt.Println(result.Insights.Summary)
	fmt.Println()

	printList := func(header string, items []string) {
		section.Println(header)
		for _, item := range items {
			fmt.Printf("  - %s\n", item)
		}
		fmt.Println()
	}
	printList("Strengths", result.Insights.Strengths)
	printList("Improvements", result.Insights.Improvements)
	printList("Recommendations", result.Insights.Recommendations)
	printList("Trends", result.Insights.Trends)

	if len(result.ExportPaths) > 0 {
		section.Println("Exported files")
		for _, path := range result.ExportPaths {
			fmt.Printf("  %s\n", path)
		}
	}
}
