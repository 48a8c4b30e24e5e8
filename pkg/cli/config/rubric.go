package config

import (
	"log/slog"
	"os"

	"github.com/healthy-campus/hurs/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Rubric holds assessment catalog configuration
type Rubric struct {
	Path string
}

// Flags returns CLI flags for Rubric configuration
func (r *Rubric) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rubric",
			Usage:       "Path to a rubric YAML file (uses the built-in HURS catalog if not set)",
			Value:       "",
			Sources:     cli.EnvVars("HURS_RUBRIC"),
			Destination: &r.Path,
		},
	}
}

// Configure returns the assessment catalog: the rubric file if one was
// given, the built-in catalog otherwise. The catalog is validated once and
// never reloaded.
func (r *Rubric) Configure() (*model.Rubric, error) {
	if r.Path == "" {
		return model.DefaultRubric(), nil
	}
	return LoadRubricFromFile(r.Path)
}

// LoadRubricFromFile loads a rubric catalog from a YAML file
func LoadRubricFromFile(path string) (*model.Rubric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "rubric file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read rubric file",
			goerr.V("path", path))
	}

	var rubric model.Rubric
	if err := yaml.Unmarshal(data, &rubric); err != nil {
		return nil, goerr.Wrap(err, "failed to parse rubric YAML",
			goerr.V("path", path))
	}

	if err := rubric.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid rubric",
			goerr.V("path", path))
	}

	return &rubric, nil
}

// LogValue returns structured log value
func (r Rubric) LogValue() slog.Value {
	source := r.Path
	if source == "" {
		source = "builtin"
	}
	return slog.GroupValue(
		slog.String("source", source),
	)
}
