package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/securecodex/cityquest/uiadapter"
	"github.com/securecodex/cityquest/uiadapter/event/input"
	"github.com/securecodex/cityquest/width"
)

// TickInterval is the wall-clock period converted into logical tick
// events for the active scene.
const TickInterval = 100 * time.Millisecond

// Terminal renders the game on a line-oriented terminal and turns
// typed lines into key events. It implements uiadapter.UI.
//
// One typed line is one key: w/a/s/d move, an empty line or e is
// ENTER, x is ESC, c is SPACE, r restarts and q quits. While the game
// requests a free-text line, typed lines go to that request instead.
type Terminal struct {
	mu  sync.Mutex
	out *bufio.Writer

	lineMu  sync.Mutex
	reading bool
	lines   chan string
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out:   bufio.NewWriter(out),
		lines: make(chan string),
	}
}

// RunInput reads typed lines from r and feeds the game until r ends
// or the quit command arrives. Run it on its own goroutine.
func (t *Terminal) RunInput(sender uiadapter.Sender, r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		t.lineMu.Lock()
		reading := t.reading
		t.lineMu.Unlock()
		if reading {
			t.lines <- line
			continue
		}

		if strings.EqualFold(line, "q") {
			break
		}
		if key, ok := keyOf(line); ok {
			sender.Send(input.NewEventKey(key))
		}
	}
	// unblock a pending ReadLine before the quit signal.
	close(t.lines)
	sender.Quit()
}

// RunTicker converts wall-clock time into logical tick events until
// the context is canceled. Run it on its own goroutine.
func (t *Terminal) RunTicker(ctx context.Context, sender uiadapter.Sender) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sender.Send(input.NewEventTick(now.Sub(last)))
			last = now
		}
	}
}

func keyOf(line string) (input.Key, bool) {
	switch strings.ToLower(line) {
	case "w", "up":
		return input.KeyUp, true
	case "s", "down":
		return input.KeyDown, true
	case "a", "left":
		return input.KeyLeft, true
	case "d", "right":
		return input.KeyRight, true
	case "", "e", "enter":
		return input.KeyEnter, true
	case "x", "esc":
		return input.KeyEscape, true
	case "c", "space":
		return input.KeySpace, true
	case "r":
		return input.KeyRestart, true
	}
	return input.KeyNone, false
}

// uiadapter.UI implementation.

func (t *Terminal) DrawText(x, y int, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, text)
	return nil
}

func (t *Terminal) DrawBubble(speaker, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			fmt.Fprintf(t.out, "%s> %s\n", speaker, line)
			continue
		}
		fmt.Fprintf(t.out, "%s  %s\n", strings.Repeat(" ", width.StringWidth(speaker)), line)
	}
	return nil
}

func (t *Terminal) ShowOverlay(id string, lines []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	boxWidth := 0
	for _, line := range lines {
		if w := width.StringWidth(line); w > boxWidth {
			boxWidth = w
		}
	}
	border := "+" + strings.Repeat("-", boxWidth+2) + "+"
	fmt.Fprintln(t.out, border)
	for _, line := range lines {
		pad := boxWidth - width.StringWidth(line)
		fmt.Fprintf(t.out, "| %s%s |\n", line, strings.Repeat(" ", pad))
	}
	fmt.Fprintln(t.out, border)
	return nil
}

func (t *Terminal) ClearOverlay(id string) error {
	// a line terminal cannot take a box back; nothing to do.
	return nil
}

func (t *Terminal) SetStatus(score, secondsLeft int, urgent bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	mark := ""
	if urgent {
		mark = " !!"
	}
	fmt.Fprintf(t.out, "[score %d | %02d:%02d%s]\n",
		score, secondsLeft/60, secondsLeft%60, mark)
	return nil
}

func (t *Terminal) SetPlayerPos(x, y float64) error {
	// positions matter to graphical front ends only.
	return nil
}

func (t *Terminal) SetPlayerVisible(visible bool) error {
	return nil
}

func (t *Terminal) NewPage() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, strings.Repeat("=", 60))
	return nil
}

func (t *Terminal) Sync() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.Flush()
}

func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.mu.Lock()
	fmt.Fprint(t.out, prompt)
	t.out.Flush()
	t.mu.Unlock()

	t.lineMu.Lock()
	t.reading = true
	t.lineMu.Unlock()
	defer func() {
		t.lineMu.Lock()
		t.reading = false
		t.lineMu.Unlock()
	}()

	line, ok := <-t.lines
	if !ok {
		return "", io.EOF
	}
	return line, nil
}
