// @lixen: #focus{sys[term,tcell]}
// Package screen is the tcell backend: a render canvas plus a line editor fed by key events.
package screen

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dicesum/core"
	"github.com/lixenwraith/dicesum/input"
)

// keyPress is the subset of a tcell key event the line editor needs
type keyPress struct {
	key tcell.Key
	r   rune
}

// Screen draws through tcell and assembles typed keys into lines
// Reads are cancellable: a closed stop channel ends ReadLine immediately
type Screen struct {
	scr   tcell.Screen
	style tcell.Style

	keys   chan keyPress
	stopCh chan struct{}
	doneCh chan struct{}

	mu           sync.Mutex // Guards echo position, written by draws and read by the editor
	echoX, echoY int
	running      bool
}

// New wraps a tcell screen; Init must be called before use
func New(scr tcell.Screen) *Screen {
	return &Screen{
		scr:    scr,
		style:  tcell.StyleDefault,
		keys:   make(chan keyPress, 64),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// NewTerminal creates a Screen on the controlling terminal
func NewTerminal() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(scr), nil
}

// Init enters the tcell screen and starts the event poller
func (s *Screen) Init() error {
	if err := s.scr.Init(); err != nil {
		return err
	}
	s.scr.HideCursor()

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	core.Go(s.pollLoop)
	return nil
}

// pollLoop forwards key events until Fini
func (s *Screen) pollLoop() {
	defer close(s.doneCh)

	for {
		ev := s.scr.PollEvent()
		if ev == nil {
			return // Screen finalized
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			select {
			case s.keys <- keyPress{key: ev.Key(), r: ev.Rune()}:
			case <-s.stopCh:
				return
			}
		case *tcell.EventResize:
			s.scr.Sync()
		}
	}
}

// Fini stops the poller and restores the terminal; safe to call twice
func (s *Screen) Fini() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.scr.Fini()
	<-s.doneCh
}

// Clear implements render.Canvas; tcell never wraps, so hiding the cursor is all that remains
func (s *Screen) Clear() error {
	s.scr.Clear()
	s.scr.HideCursor()
	return nil
}

// DrawText implements render.Canvas; the end of the last draw becomes the echo position
func (s *Screen) DrawText(x, y int, str string) error {
	col := x
	for _, r := range str {
		s.scr.SetContent(col, y, r, nil, s.style)
		col++
	}

	s.mu.Lock()
	s.echoX, s.echoY = col, y
	s.mu.Unlock()
	return nil
}

// Flush implements render.Canvas
func (s *Screen) Flush() error {
	s.scr.Show()
	return nil
}

// ReadLine implements input.LineSource with in-place echo and backspace editing
// Enter completes the line; Esc and Ctrl-C return input.ErrAborted
func (s *Screen) ReadLine(stop <-chan struct{}) (string, error) {
	var buf []rune

	for {
		select {
		case <-stop:
			return "", input.ErrStopped

		case k := <-s.keys:
			switch k.key {
			case tcell.KeyEnter:
				return string(buf) + "\n", nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", input.ErrAborted
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(buf) == 0 {
					continue
				}
				buf = buf[:len(buf)-1]
				s.echo(buf, 1)
			case tcell.KeyRune:
				buf = append(buf, k.r)
				s.echo(buf, 0)
			}
		}
	}
}

// echo redraws the edit buffer at the echo position, blanking erased cells
func (s *Screen) echo(buf []rune, erased int) {
	s.mu.Lock()
	x, y := s.echoX, s.echoY
	s.mu.Unlock()

	for i, r := range buf {
		s.scr.SetContent(x+i, y, r, nil, s.style)
	}
	for i := 0; i < erased; i++ {
		s.scr.SetContent(x+len(buf)+i, y, ' ', nil, s.style)
	}
	s.scr.ShowCursor(x+len(buf), y)
	s.scr.Show()
}
