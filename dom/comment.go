package dom

// Comment represents a comment node in the DOM.
type Comment Node

// AsNode returns the underlying Node.
func (c *Comment) AsNode() *Node {
	return (*Node)(c)
}

// NodeType returns CommentNode (8).
func (c *Comment) NodeType() NodeType {
	return CommentNode
}

// NodeName returns "#comment".
func (c *Comment) NodeName() string {
	return "#comment"
}

// Data returns the comment content.
func (c *Comment) Data() string {
	return c.AsNode().NodeValue()
}

// SetData sets the comment content.
func (c *Comment) SetData(data string) {
	c.AsNode().SetNodeValue(data)
}

// Length returns the length of the comment content.
func (c *Comment) Length() int {
	return characterDataLength(c.AsNode())
}

// SubstringData extracts a substring of the comment.
func (c *Comment) SubstringData(offset, count int) string {
	s, _ := substringData(c.AsNode(), offset, count)
	return s
}

// SubstringDataWithError extracts a substring of the comment, raising
// IndexSizeError when offset is out of bounds.
func (c *Comment) SubstringDataWithError(offset, count int) (string, error) {
	return substringData(c.AsNode(), offset, count)
}

// AppendData appends a string to the comment.
func (c *Comment) AppendData(data string) {
	appendData(c.AsNode(), data)
}

// InsertData inserts a string at the given offset.
func (c *Comment) InsertData(offset int, data string) {
	insertData(c.AsNode(), offset, data)
}

// InsertDataWithError inserts a string at the given offset, raising
// IndexSizeError when offset is out of bounds.
func (c *Comment) InsertDataWithError(offset int, data string) error {
	return insertData(c.AsNode(), offset, data)
}

// DeleteData deletes characters starting at the given offset.
func (c *Comment) DeleteData(offset, count int) {
	deleteData(c.AsNode(), offset, count)
}

// DeleteDataWithError deletes characters starting at the given offset,
// raising IndexSizeError when offset is out of bounds.
func (c *Comment) DeleteDataWithError(offset, count int) error {
	return deleteData(c.AsNode(), offset, count)
}

// ReplaceData replaces characters starting at the given offset.
func (c *Comment) ReplaceData(offset, count int, data string) {
	replaceData(c.AsNode(), offset, count, data)
}

// ReplaceDataWithError replaces characters starting at the given offset,
// raising IndexSizeError when offset is out of bounds.
func (c *Comment) ReplaceDataWithError(offset, count int, data string) error {
	return replaceData(c.AsNode(), offset, count, data)
}

// CloneNode clones this comment node.
func (c *Comment) CloneNode(deep bool) *Comment {
	clone := c.AsNode().ownerDoc.CreateComment(c.Data())
	return (*Comment)(clone)
}

// Before inserts nodes before this comment node.
func (c *Comment) Before(nodes ...interface{}) {
	parent := c.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viablePrevSibling := c.AsNode().findViablePreviousSibling(nodeSet)

	node := c.AsNode().convertNodesToFragment(nodes)
	if node == nil {
		return
	}

	var refNode *Node
	if viablePrevSibling == nil {
		refNode = parent.firstChild
	} else {
		refNode = viablePrevSibling.nextSibling
	}
	parent.InsertBefore(node, refNode)
}

// After inserts nodes after this comment node.
func (c *Comment) After(nodes ...interface{}) {
	parent := c.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viableNextSibling := c.AsNode().findViableNextSibling(nodeSet)

	node := c.AsNode().convertNodesToFragment(nodes)
	if node == nil {
		return
	}

	parent.InsertBefore(node, viableNextSibling)
}

// ReplaceWith replaces this comment node with nodes.
func (c *Comment) ReplaceWith(nodes ...interface{}) {
	parent := c.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viableNextSibling := c.AsNode().findViableNextSibling(nodeSet)

	node := c.AsNode().convertNodesToFragment(nodes)

	if c.AsNode().parentNode == parent {
		if node != nil {
			parent.ReplaceChild(node, c.AsNode())
		} else {
			parent.RemoveChild(c.AsNode())
		}
	} else if node != nil {
		parent.InsertBefore(node, viableNextSibling)
	}
}

// Remove removes this comment node from its parent.
func (c *Comment) Remove() {
	if c.AsNode().parentNode != nil {
		c.AsNode().parentNode.RemoveChild(c.AsNode())
	}
}

// NewCommentNode creates a new detached comment node with the given data.
// The node has no owner document.
func NewCommentNode(data string) *Node {
	node := newNode(CommentNode, "#comment", nil)
	node.commentData = &data
	node.nodeValue = &data
	return node
}
