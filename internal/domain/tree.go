package domain

// AssembleTree converts the flat index sequence into a nested tree using
// only parent-pointer relationships. A node whose parent id references a
// missing node is treated as a root; the assembler does not re-validate
// what the object store guarantees by construction. Root and child order
// both follow the input sequence.
func AssembleTree(flat []Node) []*TreeNode {
	byID := make(map[string]*TreeNode, len(flat))
	for i := range flat {
		n := flat[i]
		byID[n.ID] = &TreeNode{
			Node:       n,
			HasContent: n.ContentFingerprint != nil,
		}
	}

	var roots []*TreeNode
	for i := range flat {
		tn := byID[flat[i].ID]
		if tn.ParentID != nil {
			if parent, ok := byID[*tn.ParentID]; ok {
				parent.Children = append(parent.Children, tn)
				continue
			}
		}
		roots = append(roots, tn)
	}

	return roots
}

// FlattenTree returns the nodes of a tree in pre-order, the inverse of
// AssembleTree up to ordering of interleaved siblings.
func FlattenTree(roots []*TreeNode) []Node {
	var flat []Node
	WalkTree(roots, func(tn *TreeNode) {
		flat = append(flat, tn.Node)
	})
	return flat
}

// WalkTree visits every node in pre-order.
func WalkTree(roots []*TreeNode, visit func(*TreeNode)) {
	for _, root := range roots {
		visit(root)
		WalkTree(root.Children, visit)
	}
}

// DescendantIDs returns id and every transitive descendant of id, following
// parent-pointer edges depth-first over the flat node list.
func DescendantIDs(flat []Node, id string) []string {
	children := make(map[string][]string, len(flat))
	for _, n := range flat {
		if n.ParentID != nil {
			children[*n.ParentID] = append(children[*n.ParentID], n.ID)
		}
	}

	var ids []string
	stack := []string{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ids = append(ids, cur)
		kids := children[cur]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return ids
}

// WouldCreateCycle reports whether re-parenting id under newParentID would
// make id its own ancestor. It walks newParentID's ancestor chain; a nil
// newParentID (move to root) never creates a cycle. The visited guard keeps
// the walk terminating even over an already-corrupt chain.
func WouldCreateCycle(flat []Node, id string, newParentID *string) bool {
	if newParentID == nil {
		return false
	}
	if *newParentID == id {
		return true
	}

	byID := make(map[string]Node, len(flat))
	for _, n := range flat {
		byID[n.ID] = n
	}

	visited := make(map[string]bool)
	cur := *newParentID
	for {
		if cur == id {
			return true
		}
		if visited[cur] {
			return false
		}
		visited[cur] = true

		node, ok := byID[cur]
		if !ok || node.ParentID == nil {
			return false
		}
		cur = *node.ParentID
	}
}
