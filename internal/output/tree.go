package output

import (
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file annotations start.
	descriptionColumn = 40
)

// TreeEntry is one file shown in a rendered tree.
type TreeEntry struct {
	// Path is slash-separated and relative to the tree root.
	Path string

	// Description is printed after the name, aligned to a fixed column.
	Description string

	// Executable highlights the file name.
	Executable bool
}

type treeNode struct {
	name       string
	desc       string
	dir        bool
	executable bool
	children   []*treeNode
}

func (n *treeNode) child(name string, dir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &treeNode{name: name, dir: dir}
	n.children = append(n.children, c)
	return c
}

// RenderFileTree draws entries as a tree under rootName. Directories sort
// before files, then alphabetically.
func RenderFileTree(rootName string, entries []TreeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, dir: true}
	for _, e := range entries {
		parts := strings.Split(e.Path, "/")
		current := root
		for i, part := range parts {
			last := i == len(parts)-1
			current = current.child(part, !last)
			if last {
				current.desc = e.Description
				current.executable = e.Executable
			}
		}
	}
	sortTree(root)

	styles := GetStyles()
	var sb strings.Builder
	sb.WriteString(styles.Bold.Render(rootName + "/"))
	sb.WriteString("\n")
	for i, c := range root.children {
		renderNode(&sb, styles, c, "", i == len(root.children)-1)
	}
	return sb.String()
}

func sortTree(n *treeNode) {
	sort.Slice(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.dir != b.dir {
			return a.dir
		}
		return a.name < b.name
	})
	for _, c := range n.children {
		sortTree(c)
	}
}

func renderNode(sb *strings.Builder, styles Styles, n *treeNode, prefix string, last bool) {
	connector := treeEdge
	if last {
		connector = treeLast
	}

	name := n.name
	switch {
	case n.dir:
		name += "/"
	case n.executable:
		name = styles.Script.Render(name)
	}

	line := prefix + connector + name
	sb.WriteString(line)
	if n.desc != "" {
		// pad on the unstyled width
		width := len([]rune(prefix+connector)) + len([]rune(n.name))
		pad := descriptionColumn - width
		if pad < 2 {
			pad = 2
		}
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(styles.Muted.Render(n.desc))
	}
	sb.WriteString("\n")

	childPrefix := prefix + treeVert
	if last {
		childPrefix = prefix + treeSpace
	}
	for i, c := range n.children {
		renderNode(sb, styles, c, childPrefix, i == len(n.children)-1)
	}
}
