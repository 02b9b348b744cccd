// Package domain holds DTOs for sizing http, CLI and service contracts
package domain

// Units are SI throughout: m, Pa, kg/m³, m³/s

// Installation describes the straight runs and categories around the plate
// nil runs default to the recommended 10·D upstream and 5·D downstream
// empty categories default to flange taps, steel pipe and a concentric plate
type Installation struct {
	Upstream   *float64 `json:"upstream_length,omitempty" validate:"omitempty,gte=0,finite" example:"1.5"`
	Downstream *float64 `json:"downstream_length,omitempty" validate:"omitempty,gte=0,finite" example:"0.75"`
	Tap        string   `json:"tap_type,omitempty" validate:"omitempty,max=64" example:"flange"`
	Material   string   `json:"material,omitempty" validate:"omitempty,max=64" example:"steel"`
	Orifice    string   `json:"orifice_type,omitempty" validate:"omitempty,max=64" example:"concentric"`
}

// Fluid is the fluid and coefficient state shared by every operation
type Fluid struct {
	Density              float64 `json:"density" validate:"gt=0,finite" example:"1000"`
	DischargeCoefficient float64 `json:"discharge_coefficient" validate:"gt=0,finite" example:"0.61"`
	Epsilon              float64 `json:"epsilon" validate:"gt=0,lte=1" example:"1"`
}

// SizeInput asks for the orifice that passes FlowRate at DeltaP
type SizeInput struct {
	FlowRate     float64      `json:"flow_rate" validate:"gt=0,finite" example:"0.02"`
	PipeDiameter float64      `json:"pipe_diameter" validate:"gt=0,finite" example:"0.15"`
	DeltaP       float64      `json:"delta_p" validate:"gt=0,finite" example:"50000"`
	Fluid        Fluid        `json:"fluid"`
	Installation Installation `json:"installation"`
}

// SizeOutput is a sized orifice plus the solver trace
type SizeOutput struct {
	CalcID          string           `json:"calc_id" example:"7f6c2a36-9d0b-4c8e-9a55-0d3c2f7f1b11"`
	Beta            float64          `json:"beta" example:"0.4271"`
	OrificeDiameter float64          `json:"orifice_diameter" example:"0.0641"`
	Corrections     CorrectionReport `json:"corrections"`
	Iterations      int              `json:"iterations" example:"21"`
	Residual        float64          `json:"residual" example:"-4.1e-7"`
	Converged       bool             `json:"converged" example:"true"`
}

// FlowInput asks for the flow through a known plate; set exactly one of Beta and OrificeDiameter
type FlowInput struct {
	PipeDiameter    float64      `json:"pipe_diameter" validate:"gt=0,finite" example:"0.0266"`
	DeltaP          float64      `json:"delta_p" validate:"gt=0,finite" example:"24750.74"`
	Beta            *float64     `json:"beta,omitempty" validate:"omitempty,gt=0,lt=1" example:"0.4774"`
	OrificeDiameter *float64     `json:"orifice_diameter,omitempty" validate:"omitempty,gt=0,finite" example:"0.0127"`
	Fluid           Fluid        `json:"fluid"`
	Installation    Installation `json:"installation"`
}

// FlowOutput is the flow through the plate
type FlowOutput struct {
	CalcID          string           `json:"calc_id"`
	Beta            float64          `json:"beta" example:"0.4774"`
	OrificeDiameter float64          `json:"orifice_diameter" example:"0.0127"`
	FlowRate        float64          `json:"flow_rate" example:"0.00055"`
	Corrections     CorrectionReport `json:"corrections"`
}

// DeltaPInput asks for the differential pressure FlowRate produces across a plate of OrificeDiameter
type DeltaPInput struct {
	FlowRate        float64      `json:"flow_rate" validate:"gt=0,finite" example:"0.02"`
	OrificeDiameter float64      `json:"orifice_diameter" validate:"gt=0,finite,ltfield=PipeDiameter" example:"0.0641"`
	PipeDiameter    float64      `json:"pipe_diameter" validate:"gt=0,finite" example:"0.15"`
	Fluid           Fluid        `json:"fluid"`
	Installation    Installation `json:"installation"`
}

// DeltaPOutput is the differential pressure, Pa
type DeltaPOutput struct {
	CalcID      string           `json:"calc_id"`
	Beta        float64          `json:"beta" example:"0.4273"`
	DeltaP      float64          `json:"delta_p" example:"49892.4"`
	Corrections CorrectionReport `json:"corrections"`
}

// CorrectionsInput evaluates the correction model alone
type CorrectionsInput struct {
	PipeDiameter         float64      `json:"pipe_diameter" validate:"gt=0,finite" example:"0.15"`
	DischargeCoefficient float64      `json:"discharge_coefficient" validate:"gt=0,finite" example:"0.61"`
	Installation         Installation `json:"installation"`
}

// CorrectionReport lists every factor and the coefficient they produce
// IntegralTap is set when integral taps replaced the base coefficient and plate type
type CorrectionReport struct {
	CalcID               string  `json:"calc_id,omitempty"`
	KTap                 float64 `json:"k_tap" example:"1"`
	KInst                float64 `json:"k_inst" example:"1"`
	KMaterial            float64 `json:"k_material" example:"1"`
	KOrifice             float64 `json:"k_orifice" example:"1"`
	Product              float64 `json:"product" example:"1"`
	BaseCoefficient      float64 `json:"base_coefficient" example:"0.61"`
	EffectiveCoefficient float64 `json:"effective_coefficient" example:"0.61"`
	IntegralTap          bool    `json:"integral_tap,omitempty"`
	Tap                  string  `json:"tap_type" example:"flange"`
	Material             string  `json:"material" example:"steel"`
	Orifice              string  `json:"orifice_type" example:"concentric"`
}

// TableEntry is one category row
type TableEntry struct {
	ID      string   `json:"id" example:"vena"`
	Factor  float64  `json:"factor" example:"0.95"`
	Aliases []string `json:"aliases,omitempty"`
}

// TablesOutput is the active correction table set
type TablesOutput struct {
	Version int                     `json:"version" example:"1"`
	Source  string                  `json:"source" example:"embedded tables.json"`
	Strict  bool                    `json:"strict"`
	Kinds   map[string][]TableEntry `json:"kinds"`
}
