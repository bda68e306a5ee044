package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lifeboardhq/lifeboard/internal/alerts"
	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

// mockRecordStore implements domain.RecordStore for testing.
type mockRecordStore struct {
	byDomain map[domain.Domain][]domain.Record
	failing  map[domain.Domain]bool
}

func newMockRecordStore() *mockRecordStore {
	return &mockRecordStore{
		byDomain: make(map[domain.Domain][]domain.Record),
		failing:  make(map[domain.Domain]bool),
	}
}

func (m *mockRecordStore) Create(ctx context.Context, r *domain.Record) error {
	if r.ID == "" {
		r.ID = domain.NewID()
	}
	m.byDomain[r.Domain] = append(m.byDomain[r.Domain], *r)
	return nil
}

func (m *mockRecordStore) GetByID(ctx context.Context, d domain.Domain, id string) (*domain.Record, error) {
	for _, r := range m.byDomain[d] {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockRecordStore) ListByDomain(ctx context.Context, d domain.Domain) ([]domain.Record, error) {
	if m.failing[d] {
		return nil, errors.New("store unavailable")
	}
	return m.byDomain[d], nil
}

func (m *mockRecordStore) Update(ctx context.Context, r *domain.Record) error { return nil }

func (m *mockRecordStore) Delete(ctx context.Context, d domain.Domain, id string) error { return nil }

type mockApplianceStore struct {
	appliances []domain.Appliance
	costs      []domain.ApplianceCost
	warranties []domain.ApplianceWarranty
}

func (m *mockApplianceStore) Create(ctx context.Context, a *domain.Appliance) error { return nil }
func (m *mockApplianceStore) List(ctx context.Context) ([]domain.Appliance, error) {
	return m.appliances, nil
}
func (m *mockApplianceStore) ListCosts(ctx context.Context) ([]domain.ApplianceCost, error) {
	return m.costs, nil
}
func (m *mockApplianceStore) ListWarranties(ctx context.Context) ([]domain.ApplianceWarranty, error) {
	return m.warranties, nil
}
func (m *mockApplianceStore) AddCost(ctx context.Context, c *domain.ApplianceCost) error { return nil }
func (m *mockApplianceStore) AddWarranty(ctx context.Context, w *domain.ApplianceWarranty) error {
	return nil
}

type mockVehicleStore struct{ vehicles []domain.Vehicle }

func (m *mockVehicleStore) Create(ctx context.Context, v *domain.Vehicle) error { return nil }
func (m *mockVehicleStore) List(ctx context.Context) ([]domain.Vehicle, error) {
	return m.vehicles, nil
}

type mockDocumentStore struct {
	docs    []domain.Document
	listErr error
	calls   int
}

func (m *mockDocumentStore) Create(ctx context.Context, d *domain.Document) error { return nil }
func (m *mockDocumentStore) List(ctx context.Context) ([]domain.Document, error) {
	return m.docs, m.listErr
}
func (m *mockDocumentStore) ListExternal(ctx context.Context) ([]domain.Document, error) {
	m.calls++
	return m.docs, m.listErr
}

type mockProviderStore struct {
	providers []domain.ServiceProvider
	payments  []domain.ProviderPayment
}

func (m *mockProviderStore) Create(ctx context.Context, p *domain.ServiceProvider) error { return nil }
func (m *mockProviderStore) List(ctx context.Context) ([]domain.ServiceProvider, error) {
	return m.providers, nil
}
func (m *mockProviderStore) ListPayments(ctx context.Context) ([]domain.ProviderPayment, error) {
	return m.payments, nil
}
func (m *mockProviderStore) AddPayment(ctx context.Context, p *domain.ProviderPayment) error {
	return nil
}

type mockDismissalStore struct {
	ids    map[string]struct{}
	getErr error
}

func (m *mockDismissalStore) Get(ctx context.Context) (map[string]struct{}, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	out := make(map[string]struct{}, len(m.ids))
	for id := range m.ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (m *mockDismissalStore) Set(ctx context.Context, ids map[string]struct{}) error {
	m.ids = ids
	return nil
}

func testLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

type fixture struct {
	svc        *DashboardService
	records    *mockRecordStore
	appliances *mockApplianceStore
	documents  *mockDocumentStore
	dismissals *mockDismissalStore
}

func setup() *fixture {
	f := &fixture{
		records:    newMockRecordStore(),
		appliances: &mockApplianceStore{},
		documents:  &mockDocumentStore{},
		dismissals: &mockDismissalStore{},
	}
	logger := testLogger()
	f.svc = NewDashboardService(
		f.records, f.appliances, &mockVehicleStore{}, f.documents,
		&mockProviderStore{}, f.dismissals,
		alerts.NewEngine(logger), pubsub.New(), logger,
	)
	f.svc.SetClock(func() time.Time { return testNow })
	return f
}

func TestSnapshot_SpecializedOverridesGeneric(t *testing.T) {
	f := setup()
	ctx := context.Background()

	id := uuid.New()
	f.records.byDomain[domain.DomainAppliances] = []domain.Record{
		{ID: id.String(), Domain: domain.DomainAppliances, Title: "stale copy"},
		{ID: "only-generic", Domain: domain.DomainAppliances, Title: "kept"},
	}
	f.appliances.appliances = []domain.Appliance{{ID: id, Name: "Fridge", PurchasePrice: 900}}

	snapshot := f.svc.Snapshot(ctx)
	records := snapshot.Records(domain.DomainAppliances)
	require.Len(t, records, 2)

	byID := map[string]domain.Record{}
	for _, r := range records {
		byID[r.ID] = r
	}
	assert.Equal(t, "Fridge", byID[id.String()].Title)
	assert.Equal(t, "kept", byID["only-generic"].Title)
}

func TestSnapshot_FetchFailureDegradesToEmpty(t *testing.T) {
	f := setup()
	f.records.failing[domain.DomainBills] = true
	f.records.byDomain[domain.DomainTasks] = []domain.Record{{ID: "t1", Domain: domain.DomainTasks}}

	snapshot := f.svc.Snapshot(context.Background())
	assert.Empty(t, snapshot.Records(domain.DomainBills))
	assert.Len(t, snapshot.Records(domain.DomainTasks), 1)
}

func TestKPIs_AlwaysFour(t *testing.T) {
	f := setup()
	set := f.svc.KPIs(context.Background(), domain.DomainPets)
	for _, k := range set {
		assert.NotEmpty(t, k.Label)
		assert.NotEmpty(t, k.Value)
	}
}

func TestAlerts_DismissalRoundTrip(t *testing.T) {
	f := setup()
	ctx := context.Background()

	f.records.byDomain[domain.DomainBills] = []domain.Record{
		{ID: "b1", Domain: domain.DomainBills, Title: "Rent",
			Metadata: map[string]any{"dueDate": testNow.AddDate(0, 0, 3).Format(time.RFC3339)}},
	}

	feed := f.svc.Alerts(ctx)
	require.Len(t, feed, 1)

	require.NoError(t, f.svc.Dismiss(ctx, feed[0].ID))
	assert.Empty(t, f.svc.Alerts(ctx))

	require.NoError(t, f.svc.ClearDismissals(ctx))
	assert.Len(t, f.svc.Alerts(ctx), 1)
}

func TestAlerts_DismissalFetchFailureShowsAll(t *testing.T) {
	f := setup()
	f.dismissals.getErr = errors.New("redis down")
	f.records.byDomain[domain.DomainBills] = []domain.Record{
		{ID: "b1", Domain: domain.DomainBills,
			Metadata: map[string]any{"dueDate": testNow.AddDate(0, 0, 2).Format(time.RFC3339)}},
	}
	assert.Len(t, f.svc.Alerts(context.Background()), 1)
}

func TestRefresher_PublishesChange(t *testing.T) {
	docs := &mockDocumentStore{docs: []domain.Document{{Name: "Passport", External: true}}}
	bus := pubsub.New()

	var changed []domain.Domain
	bus.Subscribe(func(d domain.Domain) { changed = append(changed, d) })

	r := NewRefresher(docs, bus, testLogger())
	r.RunOnce(context.Background())

	assert.Equal(t, []domain.Domain{domain.DomainDocuments}, changed)
	assert.Equal(t, 1, docs.calls)
}

func TestRefresher_FetchFailureNoPublish(t *testing.T) {
	docs := &mockDocumentStore{listErr: errors.New("provider timeout")}
	bus := pubsub.New()

	published := 0
	bus.Subscribe(func(domain.Domain) { published++ })

	r := NewRefresher(docs, bus, testLogger())
	r.RunOnce(context.Background())
	assert.Zero(t, published)
}
