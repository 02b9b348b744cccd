package service

import (
	"errors"
	"fmt"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/beta"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/corrections"
	perr "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/errors"
)

// paramFields maps core parameter names onto request json fields
var paramFields = map[string]string{
	"beta":           "beta",
	"D":              "pipe_diameter",
	"deltaP":         "delta_p",
	"rho":            "fluid.density",
	"c_eff":          "fluid.discharge_coefficient",
	"epsilon":        "fluid.epsilon",
	"d":              "orifice_diameter",
	"Q":              "flow_rate",
	"tolerance":      "solver.tolerance",
	"max_iterations": "solver.max_iterations",
}

var kindFields = map[corrections.Kind]string{
	corrections.KindTap:      "installation.tap_type",
	corrections.KindMaterial: "installation.material",
	corrections.KindOrifice:  "installation.orifice_type",
}

// mapErr turns core errors into coded project errors tagged with the offending field
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		de *beta.DomainError
		re *beta.RangeError
		ce *corrections.UnrecognizedCategoryError
	)
	var out error
	switch {
	case errors.As(err, &de):
		field := paramFields[de.Param]
		out = perr.WithField(perr.Wrap(err, perr.ErrorCodeDomain, fmt.Sprintf("%s %s", field, de.Reason)), field)
	case errors.As(err, &re):
		msg := fmt.Sprintf("flow_rate %g m³/s is outside %.6g..%.6g m³/s reachable with beta in [%g, %g]",
			re.Desired, re.FlowAtMin, re.FlowAtMax, re.BetaMin, re.BetaMax)
		out = perr.WithField(perr.Wrap(err, perr.ErrorCodeRange, msg), "flow_rate")
	case errors.As(err, &ce):
		msg := fmt.Sprintf("unrecognized %s %q", ce.Kind, ce.Key)
		out = perr.WithField(perr.Wrap(err, perr.ErrorCodeUnrecognizedCategory, msg), kindFields[ce.Kind])
	default:
		out = perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid installation")
	}
	return perr.WithOp(out, op)
}
