// Package tcellterm is the tcell backend for the crossing game.
// A goroutine feeds terminal events into a channel; the game loop polls it
// without blocking once per tick.
package tcellterm

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/machine"
)

// Options configures the tcell backend.
type Options struct {
	TickRate int
	Logger   *log.Logger
}

// Run opens the terminal and drives m until it exits.
func Run(m *machine.Machine, opts Options) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellterm: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tcellterm: %w", err)
	}
	defer s.Fini()

	Loop(s, m, opts)
	return nil
}

// Loop runs the tick loop on an initialized screen.
func Loop(s tcell.Screen, m *machine.Machine, opts Options) {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s.Clear()
	s.HideCursor()
	styles := NewStyles(m.Palette())
	m.Resize(s.Size())
	Blit(s, m.Screen(), styles)

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pump(s, events, done)

	tick := time.NewTicker(time.Second / time.Duration(opts.TickRate))
	defer tick.Stop()

	for range tick.C {
		in := poll(events, func() {
			w, h := s.Size()
			opts.Logger.Debug("resize", "width", w, "height", h)
			m.Resize(w, h)
			s.Sync()
		})

		m.Step(in)
		if m.State() == machine.StateExit {
			return
		}
		Blit(s, m.Screen(), styles)
	}
}

// pump forwards screen events until the screen is finalized or done is closed.
// events is closed on return.
func pump(s tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// poll returns the next key without blocking. Resize events on the way are
// handed to onResize; an empty channel yields the zero Input.
func poll(events <-chan tcell.Event, onResize func()) core.Input {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return core.Key(core.ActionQuit)
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				onResize()
			case *tcell.EventKey:
				if in := MapKey(e); !in.IsNone() {
					return in
				}
			}
		default:
			return core.Input{}
		}
	}
}

// MapKey translates a tcell key event to a game input.
func MapKey(e *tcell.EventKey) core.Input {
	switch e.Key() {
	case tcell.KeyUp:
		return core.Key(core.ActionUp)
	case tcell.KeyDown:
		return core.Key(core.ActionDown)
	case tcell.KeyLeft:
		return core.Key(core.ActionLeft)
	case tcell.KeyRight:
		return core.Key(core.ActionRight)
	case tcell.KeyEnter:
		return core.Key(core.ActionConfirm)
	case tcell.KeyEscape:
		return core.Key(core.ActionBack)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.Key(core.ActionBackspace)
	case tcell.KeyCtrlC:
		return core.Key(core.ActionQuit)
	case tcell.KeyRune:
		return mapRune(e.Rune())
	}
	return core.Input{}
}

func mapRune(r rune) core.Input {
	if r >= '0' && r <= '9' {
		return core.DigitKey(int(r - '0'))
	}
	switch r {
	case 'w', 'k':
		return core.Key(core.ActionUp)
	case 's', 'j':
		return core.Key(core.ActionDown)
	case 'a', 'h':
		return core.Key(core.ActionLeft)
	case 'd', 'l':
		return core.Key(core.ActionRight)
	case ' ':
		return core.Key(core.ActionConfirm)
	case 'b':
		return core.Key(core.ActionBack)
	case 'p':
		return core.Key(core.ActionPause)
	case 'q':
		return core.Key(core.ActionQuit)
	}
	return core.Input{}
}

// NewStyles resolves a palette into tcell styles.
func NewStyles(p core.Palette) map[core.Pair]tcell.Style {
	styles := make(map[core.Pair]tcell.Style, len(p))
	for _, pair := range core.Pairs() {
		s := p.Style(pair)
		st := tcell.StyleDefault.Foreground(tcell.PaletteColor(int(s.Fg)))
		if s.HasBg {
			st = st.Background(tcell.PaletteColor(int(s.Bg)))
		}
		styles[pair] = st
	}
	return styles
}

// Blit copies the screen buffer to the terminal and shows it.
func Blit(s tcell.Screen, src *core.Screen, styles map[core.Pair]tcell.Style) {
	for y := range src.Height() {
		for x := range src.Width() {
			c := src.GetCell(x, y)
			s.SetContent(x, y, c.Rune, nil, styles[c.Pair])
		}
	}
	s.Show()
}
