package remote

import (
	"context"
	"encoding/json"

	"github.com/centrifugal/gocent/v3"
	"github.com/pkg/errors"

	"bitbucket.org/novatechnologies/chartview/infra"
)

// CentrifugoPublisher pushes render commands through the Centrifugo HTTP
// API.
type CentrifugoPublisher struct {
	client *gocent.Client
}

var _ Publisher = new(CentrifugoPublisher)

func NewCentrifugoPublisher(cfg infra.CentrifugoConfig) *CentrifugoPublisher {
	client := gocent.New(gocent.Config{
		Addr: "http://" + cfg.APIAddr + "/api",
		Key:  cfg.APIKey,
	})

	return &CentrifugoPublisher{client: client}
}

func (p *CentrifugoPublisher) Publish(
	ctx context.Context,
	channel string,
	data interface{},
) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "can't marshal publication")
	}

	if _, err := p.client.Publish(ctx, channel, payload); err != nil {
		return errors.Wrap(err, "can't publish into channel "+channel)
	}

	return nil
}
