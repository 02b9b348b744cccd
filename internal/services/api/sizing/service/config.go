package service

import (
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/beta"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/corrections"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/config"
	perr "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/errors"
)

// Config tunes the solver and the category lookup
type Config struct {
	Tolerance     float64 // flow residual, m³/s
	MaxIterations int
	Strict        bool // reject unrecognized categories instead of using 1.00
}

// DefaultConfig mirrors the beta package defaults with lenient lookup
func DefaultConfig() Config {
	return Config{
		Tolerance:     beta.DefaultTolerance,
		MaxIterations: beta.DefaultMaxIterations,
	}
}

// ConfigFrom reads SOLVER_TOLERANCE, SOLVER_MAX_ITER and TABLES_STRICT under cfg's prefix
func ConfigFrom(cfg config.Conf) Config {
	def := DefaultConfig()
	solver := cfg.Prefix("SOLVER_")
	return Config{
		Tolerance:     solver.MayPositiveFloat64("TOLERANCE", def.Tolerance),
		MaxIterations: solver.MayPositiveInt("MAX_ITER", def.MaxIterations),
		Strict:        cfg.Prefix("TABLES_").MayBool("STRICT", def.Strict),
	}
}

func (c Config) solverOptions() []beta.Option {
	return []beta.Option{beta.WithTolerance(c.Tolerance), beta.WithMaxIterations(c.MaxIterations)}
}

// LoadTables reads TABLES_FILE under cfg's prefix, falling back to the embedded tables
// failures carry ErrorCodeConfig
func LoadTables(cfg config.Conf) (*corrections.Tables, error) {
	path := cfg.Prefix("TABLES_").MayString("FILE", "")
	if path == "" {
		return corrections.Default(), nil
	}
	t, err := corrections.LoadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeConfig, "load correction tables %s", path)
	}
	return t, nil
}
