package main

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/internal/wire"
)

// remoteRenderer renders segments on a mandelserve through the generated
// SegmentService client. Calls may run in parallel over the one endpoint.
type remoteRenderer struct {
	ep       *irpc.Endpoint
	client   *wire.SegmentServiceIrpcClient
	codec    *wire.Codec
	palette  string
	rotate   int
	compress bool
}

var _ mandel.SegmentRenderer = (*remoteRenderer)(nil)

// dialRemote connects to addr, either a ws:// or wss:// url of the /ws
// endpoint or tcp://host:port. ctx only bounds the dial.
func dialRemote(ctx context.Context, addr string, codec *wire.Codec) (*remoteRenderer, error) {
	var conn net.Conn
	if hostport, ok := strings.CutPrefix(addr, "tcp://"); ok {
		var d net.Dialer
		c, err := d.DialContext(ctx, "tcp", hostport)
		if err != nil {
			return nil, fmt.Errorf("net.Dial(%q): %w", hostport, err)
		}
		conn = c
	} else {
		c, _, err := websocket.Dial(ctx, addr, nil)
		if err != nil {
			return nil, fmt.Errorf("websocket.Dial(%q): %w", addr, err)
		}
		// frames are sized by the segment, not by the websocket default
		c.SetReadLimit(-1)
		conn = websocket.NetConn(context.Background(), c, websocket.MessageBinary)
	}

	ep := irpc.NewEndpoint(conn)
	client, err := wire.NewSegmentServiceIrpcClient(ep)
	if err != nil {
		ep.Close()
		return nil, fmt.Errorf("NewSegmentServiceIrpcClient: %w", err)
	}
	return &remoteRenderer{ep: ep, client: client, codec: codec}, nil
}

func (r *remoteRenderer) RenderSegment(ctx context.Context, req mandel.Request) (*mandel.Result, error) {
	sr, err := wire.NewSegmentRequest(req)
	if err != nil {
		return nil, err
	}
	sr.Palette, sr.Rotate, sr.Compress = r.palette, r.rotate, r.compress

	f, err := r.client.RenderSegment(ctx, sr)
	if err != nil {
		return nil, fmt.Errorf("segment %s: %w", req.Segment(), err)
	}
	return r.codec.Result(f)
}

func (r *remoteRenderer) Close() error {
	return r.ep.Close()
}
