package net_test

import (
	"net/http"
	"testing"

	perr "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/errors"
	pnet "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]float64{"beta": 0.4271}, "req-1")
	if status != http.StatusOK || w.StatusCode != http.StatusOK || w.Status != "OK" {
		t.Fatalf("status mismatch: %d %+v", status, w)
	}
	if w.RequestID != "req-1" || w.Code != 0 || w.Error != "" {
		t.Fatalf("envelope mismatch: %+v", w)
	}
	if got := w.Data.(map[string]float64)["beta"]; got != 0.4271 {
		t.Fatalf("data mismatch: %+v", w.Data)
	}
}

func TestError(t *testing.T) {
	err := perr.WithField(perr.Rangef("flow unreachable"), "flow_rate")
	status, w := pnet.Error(err, "req-2")
	if status != http.StatusUnprocessableEntity || w.StatusCode != status {
		t.Fatalf("status %d, envelope %+v", status, w)
	}
	if w.Code != perr.ErrorCodeRange || w.Error != "flow unreachable" || w.Field != "flow_rate" {
		t.Fatalf("envelope mismatch: %+v", w)
	}
	if w.Data != nil {
		t.Fatalf("error envelope must not carry data")
	}

	status, w = pnet.Error(nil, "req-3")
	if status != http.StatusOK || w.Error != "" {
		t.Fatalf("nil error should be OK, got %d %+v", status, w)
	}
}

func TestSuccess(t *testing.T) {
	status, w := pnet.Success(http.StatusAccepted, nil, "")
	if status != http.StatusAccepted || w.Status != "Accepted" {
		t.Fatalf("got %d %+v", status, w)
	}
}
