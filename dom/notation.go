package dom

// Notation represents a notation declared in a document's DTD, e.g. from
// "<!NOTATION name SYSTEM "...">" . Notation nodes are always read-only and
// have no parent.
type Notation Node

// AsNode returns the underlying Node.
func (n *Notation) AsNode() *Node {
	return (*Node)(n)
}

// NodeType returns NotationNode (12).
func (n *Notation) NodeType() NodeType {
	return NotationNode
}

// NodeName returns the notation's name.
func (n *Notation) NodeName() string {
	return n.AsNode().nodeName
}

// PublicId returns the notation's public identifier, or "" if it was
// declared with only a system identifier.
func (n *Notation) PublicId() string {
	if n.notationData == nil {
		return ""
	}
	return n.notationData.publicId
}

// SystemId returns the notation's system identifier, or "" if it was
// declared with only a public identifier.
func (n *Notation) SystemId() string {
	if n.notationData == nil {
		return ""
	}
	return n.notationData.systemId
}

// CloneNode clones this notation node.
func (n *Notation) CloneNode(deep bool) *Notation {
	clone := n.AsNode().CloneNode(deep)
	return (*Notation)(clone)
}

// NewNotationNode creates a new detached, read-only Notation node.
func NewNotationNode(name, publicId, systemId string) *Node {
	node := newNode(NotationNode, name, nil)
	node.notationData = &notationData{
		publicId: publicId,
		systemId: systemId,
	}
	node.readOnlyNode = true
	return node
}
