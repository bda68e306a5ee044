package pubsub

import (
	"testing"

	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	b := New()
	var got []domain.Domain
	b.Subscribe(func(d domain.Domain) { got = append(got, d) })
	b.Subscribe(func(d domain.Domain) { got = append(got, d) })

	b.Publish(domain.DomainBills)
	assert.Equal(t, []domain.Domain{domain.DomainBills, domain.DomainBills}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()
	calls := 0
	cancel := b.Subscribe(func(domain.Domain) { calls++ })

	b.Publish(domain.DomainTasks)
	cancel()
	b.Publish(domain.DomainTasks)

	assert.Equal(t, 1, calls)
}

func TestBus_PublishWithNoSubscribers(t *testing.T) {
	New().Publish(domain.DomainMisc)
}
