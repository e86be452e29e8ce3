package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marben/irpc"

	"github.com/marben/mandelview/internal/wire"
)

// main is the entry point for the segment server.
// Note: `mandel -remote` clients call RenderSegment over /ws or plain tcp; calls on one
// connection run in parallel, each on a renderer of its own.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

type config struct {
	addr       string
	tcpAddr    string
	static     string
	maxWorkers int
	maxPixels  int
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.addr, "addr", ":8080", "http listen address")
	flag.StringVar(&cfg.tcpAddr, "tcp", ":8081", "tcp listen address for irpc clients; empty disables")
	flag.StringVar(&cfg.static, "static", "./static", "directory served at /")
	flag.IntVar(&cfg.maxWorkers, "max-workers", 4, "upper bound on row workers per request")
	flag.IntVar(&cfg.maxPixels, "max-pixels", 4096*4096, "largest segment accepted, in pixels")
	flag.Parse()
	return cfg
}

// newIrpcServer serves the segment service and counts connections in s.
func newIrpcServer(s *sessions, svc *wire.Service) *irpc.Server {
	svc.OnSegment = s.segmentFinished
	return irpc.NewServer(
		irpc.WithOnConnect(s.connected),
		irpc.WithServices(wire.NewSegmentServiceIrpcService(svc)),
	)
}

func run() error {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	codec, err := wire.NewCodec()
	if err != nil {
		return fmt.Errorf("wire.NewCodec: %w", err)
	}
	defer codec.Close()

	s := &sessions{}
	irpcServer := newIrpcServer(s, wire.NewService(codec, cfg.maxWorkers, cfg.maxPixels))

	// WEBSOCKET
	// httpServer provides the static viewer and /stats along with the websocket endpoint
	websocketListener, httpServer := webServer(ctx, cfg.addr, cfg.static, s)

	errCh := make(chan error, 3)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("httpServer: %w", err)
		}
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(websocketListener); !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("irpcServer.Serve ws: %w", err)
		}
	}()

	// TCP
	if cfg.tcpAddr != "" {
		tcpListener, err := net.Listen("tcp", cfg.tcpAddr)
		if err != nil {
			return fmt.Errorf("net.Listen: %w", err)
		}
		log.Printf("tcp listening on %s", tcpListener.Addr())
		go func() {
			if err := irpcServer.Serve(tcpListener); !errors.Is(err, irpc.ErrServerClosed) {
				errCh <- fmt.Errorf("irpcServer.Serve tcp: %w", err)
			}
		}()
	}

	log.Printf("mandelserve waiting for tcp and websocket connections")
	select {
	case err = <-errCh:
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	if cerr := irpcServer.Close(); cerr != nil {
		log.Printf("irpcServer.Close: %v", cerr)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := httpServer.Shutdown(shutdownCtx); serr != nil && err == nil {
		err = fmt.Errorf("httpServer.Shutdown: %w", serr)
	}
	return err
}
