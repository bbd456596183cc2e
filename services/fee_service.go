package services

import "github.com/enrollify/enrollment-api/models"

// FeeService resolves the price quote for a track and optional strand. It is
// a pure read over catalog state and never fails: missing entries resolve to
// the catalog's fallback breakdown.
type FeeService struct {
	Catalog *CatalogService
}

func NewFeeService(catalog *CatalogService) *FeeService {
	return &FeeService{Catalog: catalog}
}

func (s *FeeService) Quote(track, strand string) models.FeeBreakdown {
	return s.Catalog.GetFees(track, strand)
}
