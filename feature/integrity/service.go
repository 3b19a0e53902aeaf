package integrity

import (
	"context"
	"errors"
	"fmt"

	"mhr-catalog/core/storage"
	"mhr-catalog/feature/catalog"
	"mhr-catalog/feature/integrity/checks"

	"go.uber.org/zap"
)

// ErrUnknownCheck is returned when a check name is not registered.
var ErrUnknownCheck = errors.New("unknown integrity check")

// Published locates the published catalogs inspected by the published check.
type Published struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Service runs integrity checks against the served catalogs.
type Service struct {
	store     *catalog.Store
	published *Published
	logger    *zap.Logger
}

// NewService creates a new integrity service. A nil published disables the
// published check.
func NewService(store *catalog.Store, published *Published, logger *zap.Logger) *Service {
	return &Service{store: store, published: published, logger: logger}
}

// Names returns the checks the service can run.
func (s *Service) Names() []string {
	names := checks.Names()
	if s.published != nil {
		names = append(names, checks.PublishedCheckName)
	}
	return names
}

// Run runs the named checks, or all of them when none are named.
func (s *Service) Run(ctx context.Context, names ...string) ([]checks.Report, error) {
	if len(names) == 0 {
		names = s.Names()
	}

	idx, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}

	reports := make([]checks.Report, 0, len(names))
	for _, name := range names {
		if name == checks.PublishedCheckName && s.published != nil {
			issues, err := checks.CheckPublished(ctx, s.published.Client, s.published.Bucket, s.published.Prefix)
			if err != nil {
				return nil, err
			}
			reports = append(reports, s.record(checks.NewReport(name, issues)))
			continue
		}

		check, ok := checks.ByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCheck, name)
		}
		reports = append(reports, s.record(checks.NewReport(name, check.Run(idx.Catalogs))))
	}
	return reports, nil
}

func (s *Service) record(r checks.Report) checks.Report {
	switch r.Status {
	case checks.StatusFailed:
		s.logger.Warn("Integrity check failed", zap.String("check", r.Check), zap.Int("issues", len(r.Issues)))
	case checks.StatusWarning:
		s.logger.Info("Integrity check has warnings", zap.String("check", r.Check), zap.Int("issues", len(r.Issues)))
	default:
		s.logger.Debug("Integrity check passed", zap.String("check", r.Check))
	}
	return r
}

// Failed reports whether any report failed.
func Failed(reports []checks.Report) bool {
	for _, r := range reports {
		if r.Status == checks.StatusFailed {
			return true
		}
	}
	return false
}
