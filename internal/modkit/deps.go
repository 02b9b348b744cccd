// Package modkit provides module wiring and core deps
package modkit

import (
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/corrections"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/config"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/logger"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Tables  *corrections.Tables
	Metrics *metrics.Collector
}

// TablesOrDefault returns the configured correction tables, falling back to the embedded set
func (d Deps) TablesOrDefault() *corrections.Tables {
	if d.Tables != nil {
		return d.Tables
	}
	return corrections.Default()
}
