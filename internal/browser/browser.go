// Package browser holds the state machine behind the template picker UI: the
// tree cursor, the selection set, and the two view modes. It knows nothing
// about terminals; the frontend feeds it actions and paints the frame it
// produces.
package browser

import (
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/hayeah/dropkick/internal/tree"
)

// Action is one discrete input consumed by the state machine. Directional
// actions are interpreted per mode: in tree view Up/Down move the cursor and
// Left collapses, in file view Up/Down scroll and Left returns to the tree.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionToggle
	ActionBack
	ActionQuit
	ActionExport
)

// Exit reports how the session ended.
type Exit int

const (
	ExitNone Exit = iota
	ExitQuit
	ExitExport
)

// Span is a run of styled text on one line. Color is a hex RGB string like
// "#aabbcc"; empty means the terminal default. Muted marks filler glyphs.
type Span struct {
	Text  string
	Color string
	Muted bool
}

// Line is an ordered sequence of spans.
type Line []Span

// Highlighter turns file content into styled lines. It is an external
// collaborator; see internal/highlight for the chroma-backed implementation.
type Highlighter interface {
	Highlight(content, path string) ([]Line, error)
}

// mode is the tagged union of view states.
type mode interface{ isMode() }

type treeMode struct{}

type fileMode struct {
	path   string
	lines  []Line
	scroll int
}

func (treeMode) isMode()  {}
func (*fileMode) isMode() {}

// Browser owns the tree, the selection set and the cursor. It has exactly one
// mutator (Apply) and is only ever used from the UI goroutine, so it carries
// no locking.
type Browser struct {
	tree   *tree.Tree
	fsys   fs.FS
	hl     Highlighter
	sel    *SelectionSet
	open   map[string]bool
	cursor int
	height int
	mode   mode
	exit   Exit
}

// New builds a browser over t, reading file content from fsys. The first root
// entry starts opened and under the cursor, so the picker never begins in an
// empty-selection state.
func New(t *tree.Tree, fsys fs.FS, hl Highlighter) *Browser {
	b := &Browser{
		tree:   t,
		fsys:   fsys,
		hl:     hl,
		sel:    NewSelectionSet(),
		open:   make(map[string]bool),
		height: 1,
		mode:   treeMode{},
	}
	if !t.IsEmpty() {
		b.open[t.Nodes[0].Path] = true
	}
	return b
}

// SetViewportHeight records the number of content lines the frontend can
// paint. It bounds file-view scrolling and window slicing.
func (b *Browser) SetViewportHeight(h int) {
	if h < 1 {
		h = 1
	}
	b.height = h
}

// Selection returns the live selection set.
func (b *Browser) Selection() *SelectionSet { return b.sel }

// Exit reports the terminal state, or ExitNone while the session is live.
func (b *Browser) Exit() Exit { return b.exit }

// row is one visible line of the tree view.
type row struct {
	node   *tree.Node
	depth  int
	parent int // index of the parent row, -1 for root entries
}

// rows flattens the tree into the currently visible lines: every root entry,
// plus children of open directories.
func (b *Browser) visibleRows() []row {
	var out []row
	var rec func(nodes []*tree.Node, depth, parent int)
	rec = func(nodes []*tree.Node, depth, parent int) {
		for _, n := range nodes {
			idx := len(out)
			out = append(out, row{node: n, depth: depth, parent: parent})
			if b.open[n.Path] {
				rec(n.Children, depth+1, idx)
			}
		}
	}
	rec(b.tree.Nodes, 0, -1)
	return out
}

// Apply consumes one action. Quit and Export are terminal: once either is
// applied the browser ignores further input and Exit reports the outcome.
func (b *Browser) Apply(a Action) error {
	if b.exit != ExitNone {
		return nil
	}
	switch a {
	case ActionQuit:
		b.exit = ExitQuit
		return nil
	case ActionExport:
		b.exit = ExitExport
		return nil
	}

	switch m := b.mode.(type) {
	case treeMode:
		return b.applyTree(a)
	case *fileMode:
		b.applyFile(m, a)
		return nil
	}
	return nil
}

func (b *Browser) applyTree(a Action) error {
	rows := b.visibleRows()
	if len(rows) == 0 {
		return nil
	}
	if b.cursor >= len(rows) {
		b.cursor = len(rows) - 1
	}
	cur := rows[b.cursor]

	switch a {
	case ActionUp:
		if b.cursor > 0 {
			b.cursor--
		}
	case ActionDown:
		if b.cursor < len(rows)-1 {
			b.cursor++
		}
	case ActionLeft:
		b.collapse(rows, cur)
	case ActionRight:
		return b.expandOrView(cur.node)
	case ActionToggle:
		if cur.node.IsFile() {
			b.sel.Toggle(cur.node.Path)
		}
	}
	return nil
}

// collapse closes the current directory if it is open, otherwise steps to the
// parent. With no ancestor left it re-selects the first root entry, so the
// cursor can never vanish.
func (b *Browser) collapse(rows []row, cur row) {
	if !cur.node.IsFile() && b.open[cur.node.Path] {
		delete(b.open, cur.node.Path)
		return
	}
	if cur.parent >= 0 {
		b.cursor = cur.parent
		return
	}
	b.cursor = 0
}

// expandOrView opens a directory in place, or switches to file view. Content
// that is not valid UTF-8 is silently skipped; the tree stays up.
func (b *Browser) expandOrView(n *tree.Node) error {
	if !n.IsFile() {
		b.open[n.Path] = true
		return nil
	}

	data, err := fs.ReadFile(b.fsys, n.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", n.Path, err)
	}
	if !utf8.Valid(data) {
		return nil
	}

	lines, err := b.hl.Highlight(string(data), n.Path)
	if err != nil {
		return fmt.Errorf("highlight %s: %w", n.Path, err)
	}
	b.mode = &fileMode{path: n.Path, lines: lines}
	return nil
}

func (b *Browser) applyFile(m *fileMode, a Action) {
	switch a {
	case ActionUp:
		if m.scroll > 0 {
			m.scroll--
		}
	case ActionDown:
		if m.scroll+b.height < len(m.lines) {
			m.scroll++
		}
	case ActionLeft, ActionBack:
		// Cached content is discarded; re-entering re-highlights.
		b.mode = treeMode{}
	}
}
