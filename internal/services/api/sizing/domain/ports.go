package domain

import "context"

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Size(ctx context.Context, in SizeInput) (SizeOutput, error)
	Flow(ctx context.Context, in FlowInput) (FlowOutput, error)
	DeltaP(ctx context.Context, in DeltaPInput) (DeltaPOutput, error)
	Corrections(ctx context.Context, in CorrectionsInput) (CorrectionReport, error)
	Tables(ctx context.Context) (TablesOutput, error)
}
