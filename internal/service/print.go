package service

import (
	"context"
	"errors"

	"clonestore/internal/model"
	"clonestore/internal/printremote"
	"clonestore/internal/repo"
)

// ErrNoPrinter reports that label printing was requested before any printer
// was registered.
var ErrNoPrinter = errors.New("no printer configured")

// PrintService drives the label-printing flow. The remote client is rebuilt
// from the stored registration on every call; configuration changes take
// effect immediately and no mutable package state is involved.
type PrintService struct {
	printers    repo.PrinterRepository
	frontendURL string
}

func NewPrintService(printers repo.PrinterRepository, frontendURL string) *PrintService {
	return &PrintService{printers: printers, frontendURL: frontendURL}
}

// Setup replaces the printer registration.
func (s *PrintService) Setup(ctx context.Context, url, name, location, secret string) error {
	if url == "" || secret == "" {
		return &model.ValidationError{Reason: "printer URL or secret missing"}
	}
	return s.printers.Setup(ctx, &model.Printer{URL: url, Name: name, Location: location, Secret: secret})
}

// Status probes the registered printer.
func (s *PrintService) Status(ctx context.Context) (bool, error) {
	remote, err := s.remote(ctx)
	if err != nil {
		return false, err
	}
	return remote.Status(ctx)
}

// PrintLabel prints copies of the entity's label. Callers invoke this only
// after the entity's existence is confirmed; a remote failure never touches
// inventory state.
func (s *PrintService) PrintLabel(ctx context.Context, e model.Entity, copies int, host string) error {
	remote, err := s.remote(ctx)
	if err != nil {
		return err
	}
	return remote.Print(ctx, e, copies, host)
}

func (s *PrintService) remote(ctx context.Context) (*printremote.Client, error) {
	reg, err := s.printers.Get(ctx)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrNoPrinter
	}
	return printremote.New(reg.URL, reg.Secret, s.frontendURL)
}
