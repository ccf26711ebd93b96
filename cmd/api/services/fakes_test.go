package services

import (
	"context"

	"flight-booking/events"
)

type fakePublisher struct {
	published []events.Event
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, e events.Event) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, e)
	return nil
}

func (p *fakePublisher) types() []events.EventType {
	out := make([]events.EventType, 0, len(p.published))
	for _, e := range p.published {
		out = append(out, e.GetType())
	}
	return out
}
