package application

import (
	"time"

	"github.com/abdidvp/pricecalc/internal/domain"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// loggingService decorates a PriceReporter with logging
type loggingService struct {
	logger log.Logger
	next   PriceReporter
}

// NewLoggingService returns a PriceReporter that logs every call to next.
func NewLoggingService(logger log.Logger, next PriceReporter) PriceReporter {
	return &loggingService{logger: logger, next: next}
}

func (s *loggingService) LoadCatalog(path string) (cat *domain.Catalog, err error) {
	defer func(begin time.Time) {
		countries, products := 0, 0
		if cat != nil {
			countries, products = len(cat.Countries()), len(cat.Products())
		}
		s.leveled(err).Log(
			"method", "load_catalog",
			"path", path,
			"countries", countries,
			"products", products,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadCatalog(path)
}

func (s *loggingService) BuildReport(catalog *domain.Catalog, selector string) (report *domain.PriceReport, err error) {
	defer func(begin time.Time) {
		keyvals := []interface{}{
			"method", "build_report",
			"selector", selector,
		}
		if report != nil {
			keyvals = append(keyvals,
				"product", report.Product.Name(),
				"rows", len(report.Rows),
				"revision", report.Revision,
			)
		}
		keyvals = append(keyvals, "took", time.Since(begin), "err", err)
		s.leveled(err).Log(keyvals...)
	}(time.Now())
	return s.next.BuildReport(catalog, selector)
}

func (s *loggingService) leveled(err error) log.Logger {
	if err != nil {
		return level.Error(s.logger)
	}
	return level.Debug(s.logger)
}
