// Package main provides a command-line viewer for live battles
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/render"
)

var (
	streamAddr  string
	dialTimeout time.Duration
	showStatus  bool
)

var rootCmd = &cobra.Command{
	Use:   "battle-watch [battle_id]",
	Short: "Follow a battle's render stream",
	Long: `Connect to a server's render stream and narrate the battle as it happens.
The command exits when the battle ends or the server closes the stream.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watch(ctx, args[0])
	},
}

func watch(ctx context.Context, battleID string) error {
	u := url.URL{
		Scheme: "ws",
		Host:   streamAddr,
		Path:   "/battles/" + url.PathEscape(battleID) + "/stream",
	}

	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}
	conn, _, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", u.String(), err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("Failed to close connection: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
	}()

	narrator := render.NewTextRenderer(os.Stdout, showStatus)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("stream closed: %w", err)
		}

		var state entities.BattleState
		if err := json.Unmarshal(data, &state); err != nil {
			log.Printf("Skipping unreadable snapshot: %v", err)
			continue
		}
		if err := narrator.Render(ctx, &state); err != nil {
			return err
		}
		if state.IsOver() {
			return nil
		}
	}
}

func init() {
	rootCmd.Flags().StringVar(&streamAddr, "server", "localhost:8080", "HTTP address of the battle server")
	rootCmd.Flags().DurationVar(&dialTimeout, "timeout", 10*time.Second, "Connection timeout")
	rootCmd.Flags().BoolVar(&showStatus, "status", true, "Print a status line after each update")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
