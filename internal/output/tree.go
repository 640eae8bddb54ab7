package output

import (
	"path/filepath"
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

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// RenderFileTree renders the generated files below root. files maps a
// slash-separated relative path to an optional annotation such as "skipped".
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	rootNode := &TreeNode{Name: root, IsDir: true}

	for path, desc := range files {
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := rootNode

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}
			if child == nil {
				child = &TreeNode{Name: part, IsDir: !isLast}
				current.Children = append(current.Children, child)
			}
			if isLast {
				child.Description = desc
			}
			current = child
		}
	}

	sortTree(rootNode)

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(strings.TrimSuffix(rootNode.Name, "/") + "/"))
	sb.WriteString("\n")
	renderChildren(&sb, rootNode, "")
	return sb.String()
}

// sortTree sorts directories first, then alphabetically.
func sortTree(node *TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		sortTree(child)
	}
}

func renderChildren(sb *strings.Builder, node *TreeNode, prefix string) {
	for i, child := range node.Children {
		last := i == len(node.Children)-1

		connector := treeEdge
		next := prefix + treeVert
		if last {
			connector = treeLast
			next = prefix + treeSpace
		}

		name := child.Name
		if child.IsDir {
			name += "/"
		}
		line := prefix + connector + name

		if child.Description != "" {
			padding := descriptionColumn - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + StyleSkipped.Render(child.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")

		if child.IsDir {
			renderChildren(sb, child, next)
		}
	}
}
