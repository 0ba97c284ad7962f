package application

import (
	"fmt"

	"github.com/abdidvp/pricecalc/internal/domain"
)

// PriceReporter loads catalogs and prices a product across their countries.
type PriceReporter interface {
	LoadCatalog(path string) (*domain.Catalog, error)
	BuildReport(catalog *domain.Catalog, selector string) (*domain.PriceReport, error)
}

// ReportService orchestrates the report pipeline:
// load catalog → select product → price in every country → attach revision.
type ReportService struct {
	loader    domain.CatalogLoader
	revisions domain.RevisionReader
}

// NewReportService wires a catalog loader and an optional revision reader.
func NewReportService(loader domain.CatalogLoader, revisions domain.RevisionReader) *ReportService {
	return &ReportService{loader: loader, revisions: revisions}
}

func (s *ReportService) LoadCatalog(path string) (*domain.Catalog, error) {
	cat, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

// BuildReport prices the product named or numbered by selector in every
// country of catalog, in registration order.
func (s *ReportService) BuildReport(catalog *domain.Catalog, selector string) (*domain.PriceReport, error) {
	product, err := catalog.SelectProduct(selector)
	if err != nil {
		return nil, err
	}

	rows, err := domain.GenerateReport(product, catalog.Countries())
	if err != nil {
		return nil, fmt.Errorf("generating report: %w", err)
	}

	report := &domain.PriceReport{
		Product:   product,
		Reference: catalog.Reference(),
		Rows:      rows,
	}

	// Revision is informational; a catalog outside git simply has none.
	if s.revisions != nil && catalog.Source() != "" {
		if rev, err := s.revisions.Revision(catalog.Source()); err == nil {
			report.Revision = rev
		}
	}

	return report, nil
}
