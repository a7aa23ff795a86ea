package server

import (
	"net/http"
	"sandbox-core/internal/network"
	"sandbox-core/pkg/api"
	"sandbox-core/pkg/logger"
	"sandbox-core/pkg/utils"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - WebSocket-сессия наблюдателя.
// Получает поток событий и снимков, может слать отладочные команды.
type Client struct {
	Sim       Simulation
	Hub       *network.Broadcaster
	Conn      *websocket.Conn
	SessionID string

	send <-chan api.ServerMessage
	log  *logrus.Entry
}

func NewClient(sim Simulation, hub *network.Broadcaster, conn *websocket.Conn) *Client {
	id := utils.GenerateID()
	c := &Client{
		Sim:       sim,
		Hub:       hub,
		Conn:      conn,
		SessionID: id,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "ws_client",
			"session":   id,
		}),
	}
	c.send = hub.Register(id)
	// Первый снимок, чтобы клиенту было что рисовать до следующей рассылки
	hub.SendTo(id, api.ServerMessage{Type: api.MessageSnapshot, Actors: sim.Snapshot()})
	c.log.Info("Client connected")
	return c
}

// readPump читает отладочные команды
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS Error")
			}
			return
		}

		if err := c.Sim.Enqueue(cmd); err != nil {
			c.log.WithFields(logrus.Fields{
				"action": cmd.Action,
			}).WithError(err).Info("Command rejected")
			c.Hub.SendTo(c.SessionID, api.ServerMessage{Type: api.MessageError, Error: err.Error()})
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
