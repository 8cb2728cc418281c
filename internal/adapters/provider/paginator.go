package provider

import (
	"context"

	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/ports"
)

// Paginator walks the provider's event listing one event at a time, loading
// the next page lazily when the current one runs out.
type Paginator struct {
	client       ports.ProviderClient
	changedAfter string

	buffer      []domain.ProviderEvent
	index       int
	nextURL     *string
	firstLoaded bool
}

func NewPaginator(client ports.ProviderClient, changedAfter string) *Paginator {
	return &Paginator{
		client:       client,
		changedAfter: changedAfter,
	}
}

// Next returns the next event, or (nil, nil) once the listing is exhausted.
func (p *Paginator) Next(ctx context.Context) (*domain.ProviderEvent, error) {
	if p.index >= len(p.buffer) {
		if err := p.loadNextPage(ctx); err != nil {
			return nil, err
		}

		if len(p.buffer) == 0 {
			return nil, nil
		}
	}

	event := p.buffer[p.index]
	p.index++

	return &event, nil
}

func (p *Paginator) loadNextPage(ctx context.Context) error {
	var (
		page *domain.EventsPage
		err  error
	)

	switch {
	case !p.firstLoaded:
		page, err = p.client.FetchEvents(ctx, p.changedAfter)
		p.firstLoaded = true
	case p.nextURL != nil:
		page, err = p.client.FetchEventsPage(ctx, *p.nextURL)
	default:
		p.buffer = nil
		p.index = 0

		return nil
	}

	if err != nil {
		return err
	}

	p.buffer = page.Results
	p.index = 0
	p.nextURL = page.Next

	return nil
}
