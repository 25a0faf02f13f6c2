// Package main is an interactive demonstration of the caret position
// engine: it renders a buffer in the terminal and drives the caret with
// the keyboard, including folding and behind-line-end positioning.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/caretkit/internal/config"
	"github.com/dshills/caretkit/internal/engine/buffer"
	"github.com/dshills/caretkit/internal/engine/caret"
	"github.com/dshills/caretkit/internal/engine/session"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

const sampleText = "The caret position engine demo.\n" +
	"\tThis line starts with a tab.\n" +
	"short\n" +
	"A much longer line to demonstrate sticky vertical movement.\n" +
	"你好, wide characters occupy two cells.\n" +
	"fold me: press 'f' in block mode on this line\n" +
	"hidden when folded\n" +
	"also hidden when folded\n" +
	"the end\n"

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var showVersion bool
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("caretdemo %s\n", version)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	text := sampleText
	if path := flag.Arg(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text = string(data)
	}

	buf := buffer.NewFromString(text)
	sess := session.New(buf, cfg)
	defer sess.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	d := &demo{
		screen: screen,
		sess:   sess,
		blink:  cfg.Caret.BlinkRateMS > 0,
	}
	d.loop()
	return 0
}

type demo struct {
	screen tcell.Screen
	sess   *session.Session
	blink  bool
}

func (d *demo) loop() {
	for {
		d.render()
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if !d.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey dispatches one key event. Returns false to quit.
func (d *demo) handleKey(ev *tcell.EventKey) bool {
	crt := d.sess.Caret()

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return false
	case tcell.KeyUp:
		crt.MoveUp(1)
		return true
	case tcell.KeyDown:
		crt.MoveDown(1)
		return true
	case tcell.KeyLeft:
		crt.MoveLeft(1)
		return true
	case tcell.KeyRight:
		crt.MoveRight(1)
		return true
	case tcell.KeyHome:
		crt.MoveToLineStart()
		return true
	case tcell.KeyEnd:
		crt.MoveToLineEnd()
		return true
	case tcell.KeyEscape:
		crt.SetInsertMode(false)
		return true
	}

	if crt.IsInInsertMode() {
		return d.handleInsertKey(ev)
	}
	return d.handleBlockKey(ev)
}

func (d *demo) handleInsertKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		_ = d.sess.Insert("\n")
	case tcell.KeyTab:
		_ = d.sess.Insert("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		_ = d.sess.DeleteBackward()
	case tcell.KeyDelete:
		_ = d.sess.DeleteForward()
	case tcell.KeyRune:
		_ = d.sess.Insert(string(ev.Rune()))
	}
	return true
}

func (d *demo) handleBlockKey(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return true
	}
	crt := d.sess.Caret()
	switch ev.Rune() {
	case 'q':
		return false
	case 'i':
		crt.SetInsertMode(true)
	case 'u':
		crt.SetMode(caret.ModeUnderscore)
	case 'v':
		crt.SetAllowCaretBehindLineEnd(!crt.AllowCaretBehindLineEnd())
	case 'f':
		line := crt.Line()
		last := line + 2
		if max := d.sess.Buffer().LineCount() - 1; last > max {
			last = max
		}
		_ = d.sess.FoldLines(line, last)
	case 'F':
		d.sess.UnfoldAll()
	case 'x':
		_ = d.sess.DeleteForward()
	}
	return true
}

// hiddenLine reports whether a line is entirely collapsed from view.
func (d *demo) hiddenLine(line int) bool {
	return d.sess.Folds().HidesOffset(d.sess.Buffer().LineStart(line))
}

func (d *demo) render() {
	d.screen.Clear()
	buf := d.sess.Buffer()
	crt := d.sess.Caret()
	vm := d.sess.VisualMap()
	_, height := d.screen.Size()
	textRows := height - 1

	style := tcell.StyleDefault
	foldStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	row := 0
	caretRow := -1
	for line := 0; line < buf.LineCount() && row < textRows; line++ {
		if d.hiddenLine(line) {
			continue
		}
		if line == crt.Line() {
			caretRow = row
		}
		x := 0
		for _, r := range vm.ExpandLine(line) {
			d.screen.SetContent(x, row, r, nil, style)
			x += runeCells(r)
		}
		if d.sess.Folds().HidesOffset(buf.LineEnd(line) + 1) {
			// The next line is folded away behind this one.
			for i, r := range " ..." {
				d.screen.SetContent(x+i, row, r, nil, foldStyle)
			}
		}
		row++
	}

	d.renderStatus(textRows)
	d.placeCursor(caretRow)
	d.screen.Show()
}

func (d *demo) renderStatus(y int) {
	crt := d.sess.Caret()
	loc := crt.Location()
	status := fmt.Sprintf(" %s | Ln %d, Col %d, Off %d | desired %d",
		crt.Mode(), loc.Line+1, loc.Column+1, loc.Offset, crt.DesiredColumn())
	if crt.AllowCaretBehindLineEnd() {
		status += " | virtual"
	}
	status += " | ESC block, i insert, f fold, F unfold, v virtual, q quit"

	style := tcell.StyleDefault.Reverse(true)
	width, _ := d.screen.Size()
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		d.screen.SetContent(x, y, r, nil, style)
		x += runeCells(r)
	}
	for ; x < width; x++ {
		d.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (d *demo) placeCursor(caretRow int) {
	crt := d.sess.Caret()
	if caretRow < 0 || !crt.Visible() {
		d.screen.HideCursor()
		return
	}
	x := d.sess.VisualMap().VisualColumn(crt.Line(), crt.Column())
	d.screen.SetCursorStyle(cursorStyle(crt.Mode(), d.blink))
	d.screen.ShowCursor(x, caretRow)
}

// cursorStyle maps a caret mode onto a terminal cursor style.
func cursorStyle(m caret.Mode, blink bool) tcell.CursorStyle {
	switch m {
	case caret.ModeBlock:
		if blink {
			return tcell.CursorStyleBlinkingBlock
		}
		return tcell.CursorStyleSteadyBlock
	case caret.ModeUnderscore:
		if blink {
			return tcell.CursorStyleBlinkingUnderline
		}
		return tcell.CursorStyleSteadyUnderline
	default:
		if blink {
			return tcell.CursorStyleBlinkingBar
		}
		return tcell.CursorStyleSteadyBar
	}
}

// runeCells returns the number of cells a rune occupies on screen.
// Zero-width runes (combining marks) share their base rune's cell.
func runeCells(r rune) int {
	return runewidth.RuneWidth(r)
}
