package stream

import (
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/anitx/lifetime"
	"github.com/matt-g-everett/anitx/util"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	mqtt.Token
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, published{topic, qos, payload.([]byte)})
	return &fakeToken{err: c.err}
}

func TestPublisherSendsEncodedFrames(t *testing.T) {
	client := new(fakeClient)
	cfg := DefaultConfig()
	cfg.Mqtt.Topics.Stream = "test/stream"
	p := NewPublisher(cfg, client, discardLogger())

	latest := util.NewObservableValue[*Frame](nil, nil)
	src := lifetime.NewSource()
	p.Attach(latest, src.Lifetime())

	f := NewFrame(1, 0, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	latest.Set(f)
	latest.Set(nil)
	src.EndLifetime()
	latest.Set(NewFrame(2, 0, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	require.Len(t, client.sent, 1)
	want, _ := f.MarshalBinary()
	assert.Equal(t, "test/stream", client.sent[0].topic)
	assert.Equal(t, want, client.sent[0].payload)
}

func TestPublisherCountsFailures(t *testing.T) {
	client := &fakeClient{err: errors.New("broker gone")}
	p := NewPublisher(DefaultConfig(), client, discardLogger())
	latest := util.NewObservableValue[*Frame](nil, nil)
	p.Attach(latest, lifetime.Immortal)

	before := testutil.ToFloat64(publishFailures)
	latest.Set(NewFrame(1, 0, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	assert.Equal(t, before+1, testutil.ToFloat64(publishFailures))

	err := p.SendFrame(NewFrame(2, 0, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	assert.ErrorContains(t, err, "broker gone")
}
