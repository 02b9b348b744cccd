package module

import "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/domain"

// Ports is the port set the sizing module exposes
type Ports struct {
	Sizing domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.built.Ports }
