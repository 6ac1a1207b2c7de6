package stream

import (
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/anitx/lifetime"
	"github.com/matt-g-everett/anitx/util"
)

// PublishClient is the part of mqtt.Client the Publisher needs.
type PublishClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Publisher streams frames over MQTT.
type Publisher struct {
	client  PublishClient
	topic   string
	qos     byte
	timeout time.Duration
	logger  *slog.Logger
}

// NewPublisher creates a Publisher for the stream topic in config.
func NewPublisher(config Config, client PublishClient, logger *slog.Logger) *Publisher {
	p := new(Publisher)
	p.client = client
	p.topic = config.Mqtt.Topics.Stream
	p.qos = config.Mqtt.QoS
	p.timeout = 5 * time.Second
	p.logger = logger
	return p
}

// SendFrame publishes a frame as binary and waits for the broker.
func (p *Publisher) SendFrame(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := p.client.Publish(p.topic, p.qos, false, b)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("publish frame %d: timed out after %s", f.Index, p.timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish frame %d: %w", f.Index, err)
	}
	return nil
}

// Attach publishes every new frame in latest until life dies. Failures are
// logged and counted; the next frame is tried regardless.
func (p *Publisher) Attach(latest *util.ObservableValue[*Frame], life lifetime.Lifetime) {
	latest.Subscribe(life, func(f *Frame) {
		if f == nil {
			return
		}
		if err := p.SendFrame(f); err != nil {
			publishFailures.Inc()
			p.logger.Warn("frame not published", "topic", p.topic, "error", err)
		}
	})
}
