package dom

// CDATASection represents a CDATA section in an XML document.
// CDATASection inherits from Text and has no additional attributes or
// methods; nodeName is "#cdata-section" and nodeType is CDATASectionNode (4).
type CDATASection Node

// AsNode returns the underlying Node.
func (c *CDATASection) AsNode() *Node {
	return (*Node)(c)
}

// NodeType returns CDATASectionNode (4).
func (c *CDATASection) NodeType() NodeType {
	return CDATASectionNode
}

// NodeName returns "#cdata-section".
func (c *CDATASection) NodeName() string {
	return "#cdata-section"
}

// Data returns the text content.
func (c *CDATASection) Data() string {
	return c.AsNode().NodeValue()
}

// SetData sets the text content.
func (c *CDATASection) SetData(data string) {
	c.AsNode().SetNodeValue(data)
}

// Length returns the length of the text content.
func (c *CDATASection) Length() int {
	return characterDataLength(c.AsNode())
}

// SubstringData extracts a substring of the text.
func (c *CDATASection) SubstringData(offset, count int) string {
	s, _ := substringData(c.AsNode(), offset, count)
	return s
}

// SubstringDataWithError extracts a substring of the text, raising
// IndexSizeError when offset is out of bounds.
func (c *CDATASection) SubstringDataWithError(offset, count int) (string, error) {
	return substringData(c.AsNode(), offset, count)
}

// AppendData appends a string to the text.
func (c *CDATASection) AppendData(data string) {
	appendData(c.AsNode(), data)
}

// InsertData inserts a string at the given offset.
func (c *CDATASection) InsertData(offset int, data string) {
	insertData(c.AsNode(), offset, data)
}

// InsertDataWithError inserts a string at the given offset, raising
// IndexSizeError when offset is out of bounds.
func (c *CDATASection) InsertDataWithError(offset int, data string) error {
	return insertData(c.AsNode(), offset, data)
}

// DeleteData deletes characters starting at the given offset.
func (c *CDATASection) DeleteData(offset, count int) {
	deleteData(c.AsNode(), offset, count)
}

// DeleteDataWithError deletes characters starting at the given offset,
// raising IndexSizeError when offset is out of bounds.
func (c *CDATASection) DeleteDataWithError(offset, count int) error {
	return deleteData(c.AsNode(), offset, count)
}

// ReplaceData replaces characters starting at the given offset.
func (c *CDATASection) ReplaceData(offset, count int, data string) {
	replaceData(c.AsNode(), offset, count, data)
}

// ReplaceDataWithError replaces characters starting at the given offset,
// raising IndexSizeError when offset is out of bounds.
func (c *CDATASection) ReplaceDataWithError(offset, count int, data string) error {
	return replaceData(c.AsNode(), offset, count, data)
}

// SplitText splits this CDATASection node at the given offset.
// Returns the new CDATASection node containing the text after the offset.
func (c *CDATASection) SplitText(offset int) *CDATASection {
	runes := []rune(c.Data())
	if offset < 0 || offset > len(runes) {
		return nil
	}

	newData := string(runes[offset:])
	newNode, _ := c.AsNode().ownerDoc.CreateCDATASectionWithError(newData)
	if newNode == nil {
		return nil
	}
	newCDATA := (*CDATASection)(newNode)

	c.SetData(string(runes[:offset]))

	parent := c.AsNode().parentNode
	if parent != nil {
		parent.InsertBefore(newNode, c.AsNode().nextSibling)
	}

	return newCDATA
}

// CloneNode clones this CDATASection node.
func (c *CDATASection) CloneNode(deep bool) *CDATASection {
	clone, _ := c.AsNode().ownerDoc.CreateCDATASectionWithError(c.Data())
	return (*CDATASection)(clone)
}

// Before inserts nodes before this CDATASection node.
func (c *CDATASection) Before(nodes ...interface{}) {
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

// After inserts nodes after this CDATASection node.
func (c *CDATASection) After(nodes ...interface{}) {
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

// ReplaceWith replaces this CDATASection node with nodes.
func (c *CDATASection) ReplaceWith(nodes ...interface{}) {
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

// Remove removes this CDATASection node from its parent.
func (c *CDATASection) Remove() {
	if c.AsNode().parentNode != nil {
		c.AsNode().parentNode.RemoveChild(c.AsNode())
	}
}

// NewCDATASectionNode creates a new detached CDATASection node with the
// given data. The node has no owner document.
func NewCDATASectionNode(data string) *Node {
	node := newNode(CDATASectionNode, "#cdata-section", nil)
	node.textData = &data
	node.nodeValue = &data
	return node
}
