package broker

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"bitbucket.org/novatechnologies/chartview/domain"
)

func TestEventsInMemory_PublishInOrder(t *testing.T) {
	ps := NewInMemory()
	var got []int

	ps.Subscribe(domain.EvTypePointer, func(m *domain.Event) error {
		got = append(got, m.Payload().(int))
		return nil
	})

	for i := 0; i < 5; i++ {
		ps.Publish(domain.EvTypePointer, domain.NewEvent(nil, i))
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestEventsInMemory_Unsubscribe(t *testing.T) {
	ps := NewInMemory()
	calls := 0

	unsubscribe := ps.Subscribe(domain.EvTypeResize, func(m *domain.Event) error {
		calls++
		return nil
	})

	ps.Publish(domain.EvTypeResize, domain.NewEvent(nil, nil))
	unsubscribe()
	ps.Publish(domain.EvTypeResize, domain.NewEvent(nil, nil))

	assert.Equal(t, 1, calls)
}

func TestEventsInMemory_HandlerFailureDoesNotStopOthers(t *testing.T) {
	ps := NewInMemory()
	delivered := 0

	ps.Subscribe(domain.EvTypePointer, func(m *domain.Event) error {
		return errors.New("boom")
	})
	ps.Subscribe(domain.EvTypePointer, func(m *domain.Event) error {
		panic("boom")
	})
	ps.Subscribe(domain.EvTypePointer, func(m *domain.Event) error {
		delivered++
		return nil
	})

	ps.Publish(domain.EvTypePointer, domain.NewEvent(nil, nil))

	assert.Equal(t, 1, delivered)
}

func TestEventsInMemory_NilSubscription(t *testing.T) {
	ps := NewInMemory()

	unsubscribe := ps.Subscribe("", nil)
	unsubscribe()

	ps.Publish(domain.EvTypePointer, domain.NewEvent(nil, nil))
}
