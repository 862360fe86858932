package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	modelconfig "github.com/reviewsight-lab/reviewsight/pkg/domain/model/config"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Analysis holds CLI flags for the analysis engine
type Analysis struct {
	lexiconPath string
	exportDir   string
}

// Flags returns CLI flags for analysis configuration
func (a *Analysis) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "lexicon",
			Usage:       "Path to a TOML sentiment lexicon (built-in French/English lexicon when unset)",
			Sources:     cli.EnvVars("REVIEWSIGHT_LEXICON"),
			Destination: &a.lexiconPath,
		},
		&cli.StringFlag{
			Name:        "export-dir",
			Usage:       "Directory for exported CSV files",
			Value:       "exports",
			Sources:     cli.EnvVars("REVIEWSIGHT_EXPORT_DIR"),
			Destination: &a.exportDir,
		},
	}
}

// ExportDir returns the configured CSV export directory
func (a *Analysis) ExportDir() string {
	return a.exportDir
}

// Lexicon loads the sentiment lexicon. Without a path the built-in lexicon
// is returned.
func (a *Analysis) Lexicon() (*modelconfig.Lexicon, error) {
	if a.lexiconPath == "" {
		return modelconfig.DefaultLexicon(), nil
	}

	data, err := os.ReadFile(a.lexiconPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read lexicon file", goerr.V("path", a.lexiconPath))
	}

	var lexicon modelconfig.Lexicon
	if err := toml.Unmarshal(data, &lexicon); err != nil {
		return nil, goerr.Wrap(ErrInvalidLexicon, "failed to parse lexicon file",
			goerr.V("path", a.lexiconPath),
			goerr.V("cause", err.Error()),
		)
	}
	if err := lexicon.Validate(); err != nil {
		return nil, goerr.Wrap(err, "lexicon file is incomplete", goerr.V("path", a.lexiconPath))
	}

	logging.Default().Info("Loaded sentiment lexicon", "path", a.lexiconPath)
	return &lexicon, nil
}
