package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

// Connection wraps one client WebSocket. Frames are JSON message
// envelopes; judge requests are answered in order on the same
// connection, and a request that fails produces an error frame rather
// than a closed socket.
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	server    *Server
	logger    *log.Logger
	clock     quartz.Clock
	idle      time.Duration
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a connection wrapper around an upgraded socket
func NewConnection(conn *websocket.Conn, server *Server, logger *log.Logger, clock quartz.Clock, idle time.Duration) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:   conn,
		send:   make(chan *Message, 16),
		server: server,
		logger: logger.WithPrefix("conn"),
		clock:  clock,
		idle:   idle,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// readPump reads judge requests until the client goes away or stays
// silent past the idle timeout. The timer resets on every frame.
func (c *Connection) readPump() {
	defer c.server.unregister(c)

	idleTimer := c.clock.AfterFunc(c.idle, func() {
		c.logger.Info("Closing idle connection", "timeout", c.idle)
		_ = c.Close()
	})
	defer idleTimer.Stop()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("Read failed", "error", err)
			}
			return
		}
		idleTimer.Reset(c.idle)

		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			c.reply(errorMessage("", ErrorCodeBadRequest, "malformed message: "+err.Error()))
			continue
		}

		c.handleMessage(&msg)
	}
}

// writePump writes queued messages to the socket
func (c *Connection) writePump() {
	for {
		select {
		case msg := <-c.send:
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("Write failed", "error", err)
				_ = c.Close()
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Connection) handleMessage(msg *Message) {
	switch msg.Type {
	case MessageTypeJudge:
		var req JudgeData
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			c.reply(errorMessage(msg.RequestID, ErrorCodeBadRequest, "malformed judge request: "+err.Error()))
			return
		}
		c.reply(c.server.judge(msg.RequestID, req))

	default:
		c.reply(errorMessage(msg.RequestID, ErrorCodeBadRequest, "unknown message type: "+string(msg.Type)))
	}
}

func (c *Connection) reply(msg *Message) {
	select {
	case c.send <- msg:
	case <-c.ctx.Done():
	}
}

// errorMessage builds an error frame; envelope marshalling of ErrorData
// cannot fail, so the fallback path is unreachable in practice.
func errorMessage(requestID, code, text string) *Message {
	msg, err := NewMessage(MessageTypeError, ErrorData{Code: code, Message: text})
	if err != nil {
		msg = &Message{Type: MessageTypeError, Timestamp: time.Now()}
	}
	msg.RequestID = requestID
	return msg
}
