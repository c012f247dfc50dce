// Package host exposes the command registry to front ends over HTTP and WebSocket.
package host

import (
	"time"

	"golang.org/x/net/websocket"
)

// Connector wraps connections so tests are easier
type Connector interface {
	Send(v any) error
	Recv(v any) error
	Close() error
	RemoteAddr() string
}

type wsConn struct {
	conn *websocket.Conn
}

// NewWsConn wraps a websocket so it implements Connector.
func NewWsConn(ws *websocket.Conn) Connector {
	return &wsConn{conn: ws}
}

func (c *wsConn) Send(v any) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return err
	}
	return websocket.JSON.Send(c.conn, v)
}

func (c *wsConn) Recv(v any) error {
	if err := c.conn.SetReadDeadline(time.Now().Add(10 * time.Minute)); err != nil {
		return err
	}
	return websocket.JSON.Receive(c.conn, v)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

func (c *wsConn) RemoteAddr() string {
	if r := c.conn.Request(); r != nil {
		return r.RemoteAddr
	}
	return ""
}
