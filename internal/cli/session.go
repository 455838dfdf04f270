package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/algotrace/pkg/playback"
	"golang.org/x/term"
)

// Command is a playback control decoded from a key press.
type Command int

const (
	CmdNone Command = iota
	CmdToggle
	CmdNext
	CmdPrev
	CmdFaster
	CmdSlower
	CmdReset
	CmdQuit
)

// speedStep is added or removed by CmdFaster and CmdSlower.
const speedStep = 0.25

// ParseKey maps a key to a Command. Arrow keys are not decoded.
func ParseKey(b byte) Command {
	switch b {
	case ' ', 'p':
		return CmdToggle
	case 'n', 'l', '.':
		return CmdNext
	case 'b', 'h', ',':
		return CmdPrev
	case '+', '=':
		return CmdFaster
	case '-', '_':
		return CmdSlower
	case 'r', '0':
		return CmdReset
	case 'q', 3, 4: // q, Ctrl+C, Ctrl+D
		return CmdQuit
	}
	return CmdNone
}

// KeyHelp lists the interactive controls.
const KeyHelp = "space play/pause · n next · b back · +/- speed · r reset · q quit"

// Session drives a Player from key presses.
type Session struct {
	Player  *playback.Player
	Handler playback.Handler
	Keys    io.Reader
	Logger  *slog.Logger
}

// Run shows the current frame and applies commands until CmdQuit, the end
// of Keys, or ctx cancellation. A running playback is stopped before any
// manual move so only one goroutine draws at a time.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	keys := make(chan byte)
	go func() {
		defer close(keys)
		buf := make([]byte, 1)
		for {
			n, err := s.Keys.Read(buf)
			if n > 0 {
				select {
				case keys <- buf[0]:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	var playDone chan error
	stop := func() {
		if playDone != nil {
			s.Player.Pause()
			<-playDone
			playDone = nil
		}
	}
	defer stop()

	if err := s.show(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-playDone:
			playDone = nil
			if err != nil {
				return err
			}

		case b, ok := <-keys:
			if !ok {
				if playDone == nil {
					return nil
				}
				keys = nil
				continue
			}

			cmd := ParseKey(b)
			switch cmd {
			case CmdQuit:
				return nil
			case CmdToggle:
				if playDone != nil {
					stop()
					continue
				}
				done := make(chan error, 1)
				playDone = done
				go func() { done <- s.Player.Play(ctx, s.Handler) }()
			case CmdNext, CmdPrev, CmdReset:
				stop()
				moved := true
				switch cmd {
				case CmdNext:
					moved = s.Player.Next()
				case CmdPrev:
					moved = s.Player.Prev()
				default:
					s.Player.Reset()
				}
				if moved {
					if err := s.show(ctx); err != nil {
						return err
					}
				}
			case CmdFaster:
				logger.Debug("speed changed", "speed", s.Player.SetSpeed(s.Player.Speed()+speedStep))
			case CmdSlower:
				logger.Debug("speed changed", "speed", s.Player.SetSpeed(s.Player.Speed()-speedStep))
			}
		}
	}
}

func (s *Session) show(ctx context.Context) error {
	frame, ok := s.Player.Current()
	if !ok {
		return nil
	}
	return s.Handler.Show(ctx, frame)
}

// RunInteractive runs a Session on the terminal, switching stdin to raw
// mode for single-key input. Without a terminal it plays straight through.
// newHandler receives the writer frames must go to.
func RunInteractive(ctx context.Context, p *playback.Player, out io.Writer, newHandler func(io.Writer) playback.Handler, logger *slog.Logger) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.Play(ctx, newHandler(out))
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		logger.Warn("raw mode unavailable, playing through", "err", err)
		return p.Play(ctx, newHandler(out))
	}
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			logger.Error("failed to restore terminal", "err", err)
		}
	}()

	raw := crlfWriter{out}
	PrintSystemMessage(raw, KeyHelp)
	s := &Session{Player: p, Handler: newHandler(raw), Keys: os.Stdin, Logger: logger}
	return s.Run(ctx)
}

// crlfWriter restores carriage returns, which raw mode stops adding.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(b []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(b, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Bell rings the terminal bell when a trace completes.
type Bell struct {
	Writer io.Writer
}

func (b Bell) Notify(e playback.Event) {
	if e.Kind == playback.EventComplete {
		_, _ = io.WriteString(b.Writer, "\a")
	}
}
