package registry

import (
	"context"
	"errors"
	"net"
	"time"

	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/zerr"
)

// stallGuardDialer returns a DialContext that bounds connection setup by
// connect and wraps each connection in a throughput watchdog.
func stallGuardDialer(connect time.Duration, floor int, window time.Duration) func(context.Context, string, string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: connect}
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		return &stallGuardConn{Conn: conn, floor: floor, window: window}, nil
	}
}

// stallGuardConn aborts reads when sustained throughput falls below floor
// bytes/second over window. A read that produces nothing for a full window
// counts as stalled; so does a trickle that averages below the floor.
type stallGuardConn struct {
	net.Conn
	floor  int
	window time.Duration

	windowStart time.Time
	windowBytes int
}

func (c *stallGuardConn) Read(p []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.window)); err != nil {
		return 0, err
	}

	n, err := c.Conn.Read(p)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return n, zerr.With(domain.ErrTransferStalled, "window", c.window.String())
		}
		return n, err
	}

	now := time.Now()
	if c.windowStart.IsZero() {
		c.windowStart = now
	}
	c.windowBytes += n

	if elapsed := now.Sub(c.windowStart); elapsed >= c.window {
		if float64(c.windowBytes) < float64(c.floor)*elapsed.Seconds() {
			return n, zerr.With(domain.ErrTransferStalled, "window", c.window.String())
		}
		c.windowStart = now
		c.windowBytes = 0
	}
	return n, nil
}
