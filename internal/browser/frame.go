package browser

import "fmt"

// FrameKind tags the two frame shapes.
type FrameKind int

const (
	FrameTree FrameKind = iota
	FrameFile
)

// Row is one paintable line of the tree view. File labels carry the checkbox
// glyph reflecting selection membership; directory labels are unprefixed.
type Row struct {
	Path     string
	Label    string
	Depth    int
	IsDir    bool
	Open     bool
	Selected bool
}

// Frame is the render model handed to the frontend each draw.
type Frame struct {
	Kind FrameKind

	// Tree view
	Rows          []Row
	Cursor        int
	SelectedCount int

	// File view
	Path       string
	Lines      []Line // exactly viewport-height lines, padded past EOF
	Scroll     int
	TotalLines int
	Position   string // "Empty", "Top", "Bottom" or a percentage
}

// fillerLine pads the window past end of file with a muted glyph, so short
// files don't leave the pane blank.
var fillerLine = Line{{Text: "~", Muted: true}}

// Frame produces the render model for the current state.
func (b *Browser) Frame() Frame {
	switch m := b.mode.(type) {
	case *fileMode:
		return b.fileFrame(m)
	default:
		return b.treeFrame()
	}
}

func (b *Browser) treeFrame() Frame {
	rows := b.visibleRows()
	out := Frame{Kind: FrameTree, SelectedCount: b.sel.Len(), Cursor: b.cursor}
	if out.Cursor >= len(rows) && len(rows) > 0 {
		out.Cursor = len(rows) - 1
	}
	for _, r := range rows {
		n := r.node
		label := n.DisplayName()
		selected := false
		if n.IsFile() {
			selected = b.sel.Contains(n.Path)
			if selected {
				label = "[x] " + label
			} else {
				label = "[ ] " + label
			}
		}
		out.Rows = append(out.Rows, Row{
			Path:     n.Path,
			Label:    label,
			Depth:    r.depth,
			IsDir:    !n.IsFile(),
			Open:     b.open[n.Path],
			Selected: selected,
		})
	}
	return out
}

func (b *Browser) fileFrame(m *fileMode) Frame {
	total := len(m.lines)
	window := make([]Line, 0, b.height)
	for i := 0; i < b.height; i++ {
		idx := m.scroll + i
		if idx < total {
			window = append(window, m.lines[idx])
		} else {
			window = append(window, fillerLine)
		}
	}

	return Frame{
		Kind:       FrameFile,
		Path:       m.path,
		Lines:      window,
		Scroll:     m.scroll,
		TotalLines: total,
		Position:   scrollPosition(m.scroll, b.height, total),
	}
}

// scrollPosition summarizes where the window sits in the file.
func scrollPosition(scroll, height, total int) string {
	switch {
	case total == 0:
		return "Empty"
	case scroll == 0:
		return "Top"
	case scroll+height >= total:
		return "Bottom"
	default:
		return fmt.Sprintf("%d%%", (scroll+height/2)*100/total)
	}
}
