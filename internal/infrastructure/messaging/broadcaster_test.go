package messaging

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroadcaster(t *testing.T) *SSEBroadcaster {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		JSONFormat:      true,
		DefaultLevel:    slog.LevelError + 1,
		ChannelLevels:   map[logging.Channel]slog.Level{},
	})
	require.NoError(t, err)
	return NewSSEBroadcaster(logger)
}

func TestBroadcastComboEventReachesGameClients(t *testing.T) {
	b := newTestBroadcaster(t)

	ch := b.AddClient("sf6")
	defer b.RemoveClient(ch, "sf6")
	other := b.AddClient("ggs")
	defer b.RemoveClient(other, "ggs")

	b.BroadcastComboEvent("sf6", "combo_created", "c1")

	select {
	case msg := <-ch:
		assert.True(t, strings.HasPrefix(msg, "event: combo_created\n"))
		assert.Contains(t, msg, `"comboId":"c1"`)
	default:
		t.Fatal("expected a message on the sf6 feed")
	}

	select {
	case msg := <-other:
		t.Fatalf("unexpected message on ggs feed: %s", msg)
	default:
	}
}

func TestRemoveClientStopsDelivery(t *testing.T) {
	b := newTestBroadcaster(t)

	ch := b.AddClient("sf6")
	require.Equal(t, 1, b.GetConnectionCount("sf6"))

	b.RemoveClient(ch, "sf6")
	assert.Equal(t, 0, b.GetConnectionCount("sf6"))

	b.BroadcastComboEvent("sf6", "combo_deleted", "c1")

	select {
	case msg := <-ch:
		t.Fatalf("unexpected message after removal: %s", msg)
	default:
	}
}

func TestBroadcastDropsWhenClientBufferFull(t *testing.T) {
	b := newTestBroadcaster(t)

	ch := b.AddClient("sf6")
	defer b.RemoveClient(ch, "sf6")

	// Fill well past the buffer; the broadcaster must never block.
	for i := 0; i < cap(ch)+5; i++ {
		b.BroadcastComboEvent("sf6", "combo_created", "c1")
	}

	assert.Equal(t, cap(ch), len(ch))
}
