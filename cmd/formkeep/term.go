package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"formkeep/internal/screen"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Italic(true)
)

// termView drives the screen from a plain terminal: it prints notices as
// they arrive and answers confirmations from stdin.
type termView struct {
	out io.Writer
	in  *bufio.Reader

	names  []string
	header string
	empty  bool

	pending   *termDialog
	confirmed bool
}

func newTermView(out io.Writer, in io.Reader) *termView {
	return &termView{out: out, in: bufio.NewReader(in)}
}

func (v *termView) RenderList(names []string) {
	v.names = append(v.names[:0:0], names...)
	v.empty = false
}

func (v *termView) ShowEmptyState() {
	v.names = nil
	v.empty = true
}

func (v *termView) ShowConfirmDialog(message, yes, no string, onYes, onNo func()) screen.Dialog {
	v.pending = &termDialog{message: message, yes: yes, no: no, onYes: onYes, onNo: onNo, showing: true}
	return v.pending
}

func (v *termView) Notify(message string) {
	fmt.Fprintln(v.out, noticeStyle.Render(message))
}

func (v *termView) ClearChoices() {}

func (v *termView) SetTabHeader(text, tabID string) {
	if tabID == screen.TabID {
		v.header = text
	}
}

// answer resolves the open confirmation. With assumeYes the prompt is
// skipped. Anything but a yes answer, including EOF, picks No.
func (v *termView) answer(assumeYes bool) {
	d := v.pending
	if d == nil || !d.showing {
		return
	}
	v.pending = nil
	if !assumeYes {
		fmt.Fprintf(v.out, "%s [%s/%s]: ", d.message, d.yes, d.no)
		line, _ := v.in.ReadString('\n')
		reply := strings.ToLower(strings.TrimSpace(line))
		assumeYes = reply == "y" || reply == "yes" || (reply != "" && reply == strings.ToLower(d.yes))
	}
	v.confirmed = assumeYes
	d.press(assumeYes)
}

type termDialog struct {
	message, yes, no string
	onYes, onNo      func()
	showing          bool
}

func (d *termDialog) Dismiss()        { d.showing = false }
func (d *termDialog) IsShowing() bool { return d.showing }

func (d *termDialog) press(yes bool) {
	d.showing = false
	if yes {
		d.onYes()
		return
	}
	d.onNo()
}
