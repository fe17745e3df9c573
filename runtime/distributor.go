package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
)

// Censor rewrites message text before it is relayed.
type Censor interface {
	Censor(text string) string
}

// Distributor fans a message out to the members of one or more channels.
//
// Every member currently registered gets one publish on its own routing key,
// the sender included. A publish error stops the remaining fan-out of the call;
// what was already published stays published.
type Distributor struct {
	log       *slog.Logger
	registry  contract.IRegistry
	publisher contract.Publisher
	censor    Censor
}

func NewDistributor(log *slog.Logger, registry contract.IRegistry, publisher contract.Publisher, censor Censor) *Distributor {
	return &Distributor{log: log, registry: registry, publisher: publisher, censor: censor}
}

func (d *Distributor) DistributeToChannel(ctx context.Context, message domain.Message, channel string) error {
	if d.censor != nil {
		message.Text = d.censor.Censor(message.Text)
	}
	return d.distribute(ctx, message, channel)
}

// DistributeToChannels distributes independently to each channel, in order.
func (d *Distributor) DistributeToChannels(ctx context.Context, message domain.Message, channels []string) error {
	if d.censor != nil {
		message.Text = d.censor.Censor(message.Text)
	}
	for _, channel := range channels {
		if err := d.distribute(ctx, message, channel); err != nil {
			return err
		}
	}
	return nil
}

func (d *Distributor) distribute(ctx context.Context, message domain.Message, channel string) error {
	payload := []byte(message.Display(channel))
	delivered := 0
	for _, member := range d.registry.Members(channel) {
		if !d.registry.IsRegistered(member) {
			d.log.Debug("Skipping member no longer registered", "channel", channel, "nickname", member)
			continue
		}
		if err := d.publisher.Publish(ctx, member, payload); err != nil {
			d.log.Error("Fan-out aborted", "channel", channel, "nickname", member,
				"delivered", delivered, "error", err)
			return fmt.Errorf("%w: %v", errors.ErrDistribution, err)
		}
		delivered++
	}
	d.log.Debug("Message distributed", "channel", channel, "sender", message.Sender, "delivered", delivered)
	return nil
}
