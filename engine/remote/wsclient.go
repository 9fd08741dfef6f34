package remote

import (
	"context"
	"encoding/json"
	"fmt"

	cfge "github.com/centrifugal/centrifuge-go"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bitbucket.org/novatechnologies/chartview/domain"
	"bitbucket.org/novatechnologies/chartview/infra"
)

const eventsChannel = "chart-events"

// NewWSClient returns the websocket client relaying browser view events
// (pointer moves, container resizes) into the broker. The caller owns the
// connection: Connect after wiring, Close on shutdown.
func NewWSClient(
	config infra.CentrifugoConfig,
	eventsBroker domain.EventsBroker,
) (*cfge.Client, error) {
	wsURL := fmt.Sprintf("ws://%s/connection/websocket", config.WSAddr)
	c := cfge.NewJsonClient(wsURL, cfge.DefaultConfig())

	if config.SignTokenKey != "" {
		// TODO: token must be gathered from auth server in the future.
		token := jwt.NewWithClaims(
			jwt.SigningMethodHS256,
			jwt.MapClaims{
				"client": "chartview#" + uuid.New().String(),
			},
		)
		signedToken, err := token.SignedString([]byte(config.SignTokenKey))
		if err != nil {
			return nil, errors.Wrap(err, "can't sign connection token")
		}

		c.SetToken(signedToken)
	}

	sub, err := c.NewSubscription(eventsChannel)
	if err != nil {
		return nil, errors.Wrap(err, "can't create view events subscription")
	}

	relay := &eventRelay{broker: eventsBroker}
	sub.OnPublish(relay)
	sub.OnSubscribeError(relay)

	if err := sub.Subscribe(); err != nil {
		return nil, errors.Wrap(err, "can't subscribe to view events")
	}

	return c, nil
}

// eventRelay decodes view-event publications and forwards them as broker
// events, pointer and resize kinds on their own topics.
type eventRelay struct {
	broker domain.EventsBroker
}

func (r *eventRelay) OnPublish(sub *cfge.Subscription, e cfge.PublishEvent) {
	var ev ViewEvent
	if err := json.Unmarshal(e.Data, &ev); err != nil {
		log.Errorf("can't decode view event from channel %s: %v", sub.Channel(), err)
		return
	}
	if ev.ChartID == "" {
		return
	}

	ctx := context.Background()
	if ev.Size != nil {
		r.broker.Publish(domain.EvTypeResize, domain.NewEvent(ctx, &ev))
	}
	if ev.Pointer != nil {
		r.broker.Publish(domain.EvTypePointer, domain.NewEvent(ctx, &ev))
	}
}

func (r *eventRelay) OnSubscribeError(
	sub *cfge.Subscription,
	e cfge.SubscribeErrorEvent,
) {
	log.Errorf("subscribe on channel %s failed, error: %s", sub.Channel(), e.Error)
}
