package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/desertthunder/guildboard/internal/shared"
)

func TestServer(t *testing.T) {
	t.Run("shuts down when the context ends", func(t *testing.T) {
		srv := NewServer("127.0.0.1:0", http.NotFoundHandler(), shared.NewLogger(io.Discard))
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx) }()
		cancel()

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("expected clean shutdown, got %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("reports listen failures", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to reserve port: %v", err)
		}
		defer ln.Close()

		srv := NewServer(ln.Addr().String(), http.NotFoundHandler(), shared.NewLogger(io.Discard))
		if err := srv.Run(context.Background()); err == nil {
			t.Error("expected error for a port already in use")
		}
	})
}
