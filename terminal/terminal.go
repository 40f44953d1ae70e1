// Package terminal runs a program on a text terminal. The console grid is
// repainted on stdout and stdin bytes become key presses.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	vmcore "github.com/user-none/lc3sim/api"
	"github.com/user-none/lc3sim/frontend"
	"github.com/user-none/lc3sim/storage"
	"golang.org/x/term"
)

// haltedStatus is shown under the console once the program stops.
const haltedStatus = "[halted - press Ctrl-C to exit]"

// Options configures Run.
type Options struct {
	ProgramPath string
	Config      *storage.Config

	// Logger receives frontend messages. When nil they go to the log file
	// in the data directory so the tty stays clean.
	Logger *log.Logger

	// In and Out default to os.Stdin and os.Stdout.
	In  *os.File
	Out io.Writer
}

// session is one program running against a byte stream.
type session struct {
	fe      *frontend.Frontend
	decoder decoder
	feeder  feeder
	screen  screen
	events  []event
	closed  bool
}

func newSession(fe *frontend.Frontend, out io.Writer, width int) *session {
	return &session{
		fe:     fe,
		screen: screen{out: out, width: width},
	}
}

// frame feeds the bytes that arrived since the last frame, runs one
// frontend frame and repaints. quit reports Ctrl-C.
func (s *session) frame(pending []byte) (quit bool, err error) {
	s.events = s.events[:0]
	for _, b := range pending {
		var q bool
		s.events, q = s.decoder.feed(b, s.events)
		if q {
			return true, nil
		}
	}
	s.events = s.decoder.flush(s.events)
	s.feeder.push(s.events...)

	s.fe.RunFrame(s.feeder.next())
	s.feeder.settle(s.fe.InputPending())

	status := ""
	if s.fe.Halted() {
		status = haltedStatus
	}
	_, err = s.screen.draw(s.fe.Console().Text(), status)
	return false, err
}

// done reports whether input has ended and the program can no longer
// make progress.
func (s *session) done() bool {
	return s.closed && s.fe.Halted() && s.feeder.idle()
}

// Run loads a program and runs it until Ctrl-C, ctx is cancelled, or
// stdin ends after the program halts.
func Run(ctx context.Context, factory vmcore.Factory, opts Options) error {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	logger := opts.Logger
	if logger == nil {
		l, closeLog, err := openLog()
		if err != nil {
			return err
		}
		defer closeLog()
		logger = l
	}

	fe := frontend.New(factory, frontend.OptionsFromConfig(opts.Config, logger))
	if err := fe.Load(opts.ProgramPath); err != nil {
		return err
	}
	defer fe.Unload()

	fd := int(in.Fd())
	width := 0
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to set raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)

		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	s := newSession(fe, out, width)
	bytesIn := readBytes(in, logger)

	ticker := time.NewTicker(time.Second / time.Duration(fe.AVInfo().FPS))
	defer ticker.Stop()

	var pending []byte
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		pending = pending[:0]
	drain:
		for {
			select {
			case b, ok := <-bytesIn:
				if !ok {
					s.closed = true
					bytesIn = nil
					break drain
				}
				pending = append(pending, b)
			default:
				break drain
			}
		}

		quit, err := s.frame(pending)
		if err != nil {
			return fmt.Errorf("failed to draw console: %w", err)
		}
		if quit || s.done() {
			io.WriteString(out, "\r\n")
			return nil
		}
	}
}

// readBytes copies r into a channel from its own goroutine. The channel is
// closed when r ends or fails.
func readBytes(r io.Reader, logger *log.Logger) <-chan byte {
	ch := make(chan byte, 256)
	go func() {
		defer close(ch)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				ch <- b
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					logger.Printf("Warning: stdin read failed: %v", err)
				}
				return
			}
		}
	}()
	return ch
}

// openLog opens the log file in the data directory.
func openLog() (*log.Logger, func(), error) {
	if err := storage.EnsureDirectories(); err != nil {
		return nil, nil, err
	}
	path, err := storage.GetLogPath()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}
