package service

import (
	"context"
	"time"

	"github.com/lifeboardhq/lifeboard/internal/alerts"
	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/kpi"
	"github.com/lifeboardhq/lifeboard/internal/merge"
	"github.com/lifeboardhq/lifeboard/internal/networth"
	"github.com/lifeboardhq/lifeboard/internal/pubsub"
	"go.uber.org/zap"
)

// DashboardService assembles the immutable snapshot every aggregation runs
// on and exposes the derived outputs. A failed fetch for any slice is
// logged and treated as an empty collection; the dashboard degrades to
// partial data rather than erroring.
type DashboardService struct {
	records    domain.RecordStore
	appliances domain.ApplianceStore
	vehicles   domain.VehicleStore
	documents  domain.DocumentStore
	providers  domain.ProviderStore
	dismissals domain.DismissalStore
	engine     *alerts.Engine
	bus        *pubsub.Bus
	logger     *zap.Logger

	now func() time.Time
}

func NewDashboardService(
	records domain.RecordStore,
	appliances domain.ApplianceStore,
	vehicles domain.VehicleStore,
	documents domain.DocumentStore,
	providers domain.ProviderStore,
	dismissals domain.DismissalStore,
	engine *alerts.Engine,
	bus *pubsub.Bus,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		records:    records,
		appliances: appliances,
		vehicles:   vehicles,
		documents:  documents,
		providers:  providers,
		dismissals: dismissals,
		engine:     engine,
		bus:        bus,
		logger:     logger,
		now:        time.Now,
	}
}

// SetClock overrides the clock; tests pin it.
func (s *DashboardService) SetClock(now func() time.Time) {
	s.now = now
}

// Bus exposes the change bus so callers can subscribe to recomputation
// triggers.
func (s *DashboardService) Bus() *pubsub.Bus {
	return s.bus
}

func (s *DashboardService) genericRecords(ctx context.Context, d domain.Domain) []domain.Record {
	records, err := s.records.ListByDomain(ctx, d)
	if err != nil {
		s.logger.Warn("record fetch failed, treating domain as empty",
			zap.String("domain", string(d)), zap.Error(err))
		return nil
	}
	return records
}

// Snapshot fetches every domain and overlays the specialized tables via
// the cross-source merge.
func (s *DashboardService) Snapshot(ctx context.Context) domain.Snapshot {
	snapshot := make(domain.Snapshot, len(domain.AllDomains))
	for _, d := range domain.AllDomains {
		snapshot[d] = s.genericRecords(ctx, d)
	}

	snapshot[domain.DomainAppliances] = merge.Records(snapshot[domain.DomainAppliances], s.specializedAppliances(ctx))
	snapshot[domain.DomainVehicles] = merge.Records(snapshot[domain.DomainVehicles], s.specializedVehicles(ctx))
	snapshot[domain.DomainDocuments] = merge.Records(snapshot[domain.DomainDocuments], s.specializedDocuments(ctx))
	snapshot[domain.DomainProviders] = merge.Records(snapshot[domain.DomainProviders], s.specializedProviders(ctx))
	return snapshot
}

func (s *DashboardService) specializedAppliances(ctx context.Context) []domain.Record {
	appliances, err := s.appliances.List(ctx)
	if err != nil {
		s.logger.Warn("appliance table fetch failed", zap.Error(err))
		return nil
	}
	costs, err := s.appliances.ListCosts(ctx)
	if err != nil {
		s.logger.Warn("appliance cost fetch failed", zap.Error(err))
	}
	warranties, err := s.appliances.ListWarranties(ctx)
	if err != nil {
		s.logger.Warn("appliance warranty fetch failed", zap.Error(err))
	}
	return merge.Appliances(appliances, costs, warranties)
}

func (s *DashboardService) specializedVehicles(ctx context.Context) []domain.Record {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		s.logger.Warn("vehicle table fetch failed", zap.Error(err))
		return nil
	}
	return merge.Vehicles(vehicles)
}

func (s *DashboardService) specializedDocuments(ctx context.Context) []domain.Record {
	docs, err := s.documents.List(ctx)
	if err != nil {
		s.logger.Warn("document table fetch failed", zap.Error(err))
		return nil
	}
	return merge.Documents(docs)
}

func (s *DashboardService) specializedProviders(ctx context.Context) []domain.Record {
	providers, err := s.providers.List(ctx)
	if err != nil {
		s.logger.Warn("provider table fetch failed", zap.Error(err))
		return nil
	}
	payments, err := s.providers.ListPayments(ctx)
	if err != nil {
		s.logger.Warn("provider payment fetch failed", zap.Error(err))
	}
	return merge.Providers(providers, payments)
}

// KPIs computes the four summary facts for one domain.
func (s *DashboardService) KPIs(ctx context.Context, d domain.Domain) domain.KPISet {
	snapshot := s.Snapshot(ctx)
	return kpi.Compute(d, snapshot.Records(d), s.now())
}

// NetWorth computes the unified financial aggregate.
func (s *DashboardService) NetWorth(ctx context.Context) domain.NetWorth {
	return networth.Compute(s.Snapshot(ctx))
}

// Alerts builds the sorted, dismissal-filtered, capped feed.
func (s *DashboardService) Alerts(ctx context.Context) []domain.Alert {
	dismissed, err := s.dismissals.Get(ctx)
	if err != nil {
		s.logger.Warn("dismissal set fetch failed, showing all alerts", zap.Error(err))
		dismissed = nil
	}
	return s.engine.Build(s.Snapshot(ctx), dismissed, s.now())
}

// Dismiss adds one alert id to the persisted dismissal set. Read-then-write
// with last-write-wins; concurrent writers are an accepted race.
func (s *DashboardService) Dismiss(ctx context.Context, alertID string) error {
	dismissed, err := s.dismissals.Get(ctx)
	if err != nil {
		return err
	}
	if dismissed == nil {
		dismissed = make(map[string]struct{})
	}
	dismissed[alertID] = struct{}{}
	return s.dismissals.Set(ctx, dismissed)
}

// ClearDismissals empties the dismissal set; previously suppressed alerts
// reappear while their triggering conditions still hold.
func (s *DashboardService) ClearDismissals(ctx context.Context) error {
	return s.dismissals.Set(ctx, map[string]struct{}{})
}
