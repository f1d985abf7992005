package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/console"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagNoColor bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing 2048 in the terminal. Keys can also be piped in,
one game key per character.

Default controls (see 't2048 config' to change them):
  w / up      - Slide up
  d / right   - Slide right
  s / down    - Slide down
  a / left    - Slide left
  n           - New game (asks first while a game is running)
  q           - Quit (asks first while a game is running)
  ctrl+c      - Quit now

The high score is saved whenever a game ends or is left.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --no-color < moves.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable tile colors")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	st, err := openStores(cfg, logger)
	if err != nil {
		return fmt.Errorf("open high score store: %w", err)
	}
	defer st.Close()

	game := newGame(cfg, st.highScore, logger)

	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	sessionCfg := console.SessionConfig{
		Config:      cfg,
		In:          os.Stdin,
		Out:         cmd.OutOrStdout(),
		GameID:      storage.GameID,
		Logger:      logger,
		Interactive: stdoutTTY && term.IsTerminal(int(os.Stdin.Fd())),
		Color:       !flagNoColor && stdoutTTY,
	}
	if st.db != nil {
		sessionCfg.Recorder = st.db
	}

	session, err := console.NewSession(game, sessionCfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
