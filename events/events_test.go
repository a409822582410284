package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/models"
)

type recorder struct {
	got []OrderCreated
	err error
}

func (r *recorder) PublishOrderCreated(_ context.Context, ev OrderCreated) error {
	r.got = append(r.got, ev)
	return r.err
}

func sampleOrder() *models.Order {
	return &models.Order{
		ID:        "o1",
		UserID:    "u1",
		Total:     decimal.NewFromInt(25),
		CreatedAt: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
		OrderItems: []models.OrderItem{
			{ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(10)},
			{ProductID: "p2", Quantity: 1, Price: decimal.NewFromInt(5)},
		},
	}
}

func TestNewOrderCreated(t *testing.T) {
	ev := NewOrderCreated(sampleOrder())
	assert.Equal(t, OrderCreatedKey, ev.Type)
	assert.Equal(t, "o1", ev.OrderID)
	assert.Equal(t, "u1", ev.UserID)
	assert.Equal(t, 3, ev.ItemCount)
	assert.True(t, ev.Total.Equal(decimal.NewFromInt(25)))
}

func TestMultiDeliversToAll(t *testing.T) {
	ok := &recorder{}
	failing := &recorder{err: errors.New("broker down")}
	m := Multi{failing, ok}

	err := m.PublishOrderCreated(context.Background(), NewOrderCreated(sampleOrder()))
	assert.ErrorContains(t, err, "broker down")
	assert.Len(t, ok.got, 1, "a failing publisher does not stop the others")
	assert.Len(t, failing.got, 1)

	assert.NoError(t, Nop{}.PublishOrderCreated(context.Background(), OrderCreated{}))
}

func TestHubBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(zap.NewNop())
	r := gin.New()
	r.GET("/ws", hub.ServeWS)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.PublishOrderCreated(context.Background(), NewOrderCreated(sampleOrder())))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev OrderCreated
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, "o1", ev.OrderID)
	assert.Equal(t, 3, ev.ItemCount)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}
