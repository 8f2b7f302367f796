// Package tree builds an immutable view of a template directory. Only files
// carrying the template marker suffix are visible; a handful of well-known
// junk entries are excluded, and .gitignore patterns inside the root are
// honored.
package tree

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// MarkerSuffix marks a file as a template. It is stripped from display names
// and from destination paths on export.
const MarkerSuffix = ".tt"

// Kind distinguishes directory nodes from file (leaf) nodes.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

// Node is one entry in the template tree. Path is the root-relative,
// slash-separated identifier; it is unique and stable across renders.
type Node struct {
	Path     string
	Name     string
	Kind     Kind
	Children []*Node
}

// IsFile reports whether the node is a leaf.
func (n *Node) IsFile() bool { return n.Kind == KindFile }

// DisplayName is the entry name with the marker suffix stripped.
func (n *Node) DisplayName() string {
	return strings.TrimSuffix(n.Name, MarkerSuffix)
}

// Tree is the root of the template view.
type Tree struct {
	Root  string // absolute path of the template root
	Nodes []*Node
}

// IsEmpty reports whether the tree has no visible entries.
func (t *Tree) IsEmpty() bool { return len(t.Nodes) == 0 }

// Files returns all visible file paths in tree order.
func (t *Tree) Files() []string {
	var out []string
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			if n.IsFile() {
				out = append(out, n.Path)
			}
			walk(n.Children)
		}
	}
	walk(t.Nodes)
	return out
}

// Build walks rootPath and returns the visible tree. A missing root yields an
// empty tree rather than an error; a root that exists but cannot be read is
// an error.
func Build(rootPath string) (*Tree, error) {
	if _, err := os.Stat(rootPath); errors.Is(err, fs.ErrNotExist) {
		return &Tree{Root: rootPath}, nil
	}

	patterns, err := gitignore.ReadPatterns(osfs.New(rootPath), nil)
	if err != nil {
		return nil, err
	}

	return BuildFS(os.DirFS(rootPath), rootPath, gitignore.NewMatcher(patterns))
}

// BuildFS builds the tree from an fs.FS. Matcher may be nil.
func BuildFS(fsys fs.FS, rootPath string, matcher gitignore.Matcher) (*Tree, error) {
	type entry struct {
		path  string
		isDir bool
	}
	var entries []entry

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if excludedName(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if matcher != nil && matcher.Match(strings.Split(p, "/"), d.IsDir()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && !strings.HasSuffix(d.Name(), MarkerSuffix) {
			return nil
		}
		entries = append(entries, entry{path: p, isDir: d.IsDir()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sort by full path string for a deterministic listing.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].path < entries[j].path
	})

	// Assemble parent links through a path-keyed map. This keeps construction
	// iterative, so arbitrarily deep trees cannot exhaust the stack.
	t := &Tree{Root: rootPath}
	nodes := make(map[string]*Node, len(entries))
	for _, e := range entries {
		kind := KindFile
		if e.isDir {
			kind = KindDirectory
		}
		n := &Node{
			Path: e.path,
			Name: path.Base(e.path),
			Kind: kind,
		}
		nodes[e.path] = n

		parent := path.Dir(e.path)
		if parent == "." {
			t.Nodes = append(t.Nodes, n)
		} else if p, ok := nodes[parent]; ok {
			p.Children = append(p.Children, n)
		}
	}

	return t, nil
}

// excludedName filters fixed system entries out of every listing.
// Empty directories are intentionally not pruned: they still communicate the
// intended project structure.
func excludedName(name string) bool {
	switch strings.ToLower(name) {
	case ".ds_store", ".git", "node_modules":
		return true
	}
	return false
}
