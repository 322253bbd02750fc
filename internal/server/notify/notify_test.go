package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultsiege/internal/logging"
)

type fakePublisher struct {
	channel string
	raw     []byte
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message any) *goredis.IntCmd {
	f.channel = channel
	f.raw, _ = message.([]byte)
	cmd := goredis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

type recordSink struct {
	got []Notification
	err error
}

func (r *recordSink) Notify(_ context.Context, n Notification) error {
	r.got = append(r.got, n)
	return r.err
}

func sample() Notification {
	return Notification{
		Type:     TypeAttacked,
		PlayerID: "p1",
		Payload:  map[string]any{"stolen": 40},
		At:       time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC),
	}
}

func TestRedisSink_PublishesJSON(t *testing.T) {
	pub := &fakePublisher{}
	s := newRedisSink(pub, "")

	require.NoError(t, s.Notify(context.Background(), sample()))
	assert.Equal(t, DefaultChannel, pub.channel)

	var got Notification
	require.NoError(t, json.Unmarshal(pub.raw, &got))
	assert.Equal(t, TypeAttacked, got.Type)
	assert.Equal(t, "p1", got.PlayerID)
	assert.EqualValues(t, 40, got.Payload["stolen"])
	assert.NoError(t, s.Close())
}

func TestRedisSink_PublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection refused")}
	s := newRedisSink(pub, "custom")

	err := s.Notify(context.Background(), sample())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis publish")
	assert.Equal(t, "custom", pub.channel)
}

func TestDialRedis_EmptyAddr(t *testing.T) {
	_, err := DialRedis(context.Background(), "", "")
	assert.Error(t, err)
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, NewLogSink(log).Notify(context.Background(), sample()))
	assert.Contains(t, buf.String(), "type=attacked")
	assert.Contains(t, buf.String(), "module=notify")
}

func TestMulti(t *testing.T) {
	boom := errors.New("boom")
	a := &recordSink{err: boom}
	b := &recordSink{}

	err := Multi{a, b}.Notify(context.Background(), sample())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1, "later sinks still receive the notification")
}
