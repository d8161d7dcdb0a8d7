package dom

// Text represents a text node in the DOM.
type Text Node

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// NodeType returns TextNode (3).
func (t *Text) NodeType() NodeType {
	return TextNode
}

// NodeName returns "#text".
func (t *Text) NodeName() string {
	return "#text"
}

// Data returns the text content.
func (t *Text) Data() string {
	return t.AsNode().NodeValue()
}

// SetData sets the text content.
func (t *Text) SetData(data string) {
	t.AsNode().SetNodeValue(data)
}

// Length returns the length of the text content.
func (t *Text) Length() int {
	return characterDataLength(t.AsNode())
}

// WholeText returns the text of this node and all adjacent text nodes.
func (t *Text) WholeText() string {
	first := t.AsNode()
	for first.prevSibling != nil && first.prevSibling.nodeType == TextNode {
		first = first.prevSibling
	}

	var result string
	for node := first; node != nil && node.nodeType == TextNode; node = node.nextSibling {
		result += node.NodeValue()
	}
	return result
}

// SubstringData extracts a substring of the text.
func (t *Text) SubstringData(offset, count int) string {
	s, _ := substringData(t.AsNode(), offset, count)
	return s
}

// SubstringDataWithError extracts a substring of the text, raising
// IndexSizeError when offset is out of bounds.
func (t *Text) SubstringDataWithError(offset, count int) (string, error) {
	return substringData(t.AsNode(), offset, count)
}

// AppendData appends a string to the text.
func (t *Text) AppendData(data string) {
	appendData(t.AsNode(), data)
}

// InsertData inserts a string at the given offset.
func (t *Text) InsertData(offset int, data string) {
	t.InsertDataWithError(offset, data)
}

// InsertDataWithError inserts a string at the given offset, raising
// IndexSizeError when offset is out of bounds.
func (t *Text) InsertDataWithError(offset int, data string) error {
	return insertData(t.AsNode(), offset, data)
}

// DeleteData deletes characters starting at the given offset.
func (t *Text) DeleteData(offset, count int) {
	deleteData(t.AsNode(), offset, count)
}

// DeleteDataWithError deletes characters starting at the given offset,
// raising IndexSizeError when offset is out of bounds.
func (t *Text) DeleteDataWithError(offset, count int) error {
	return deleteData(t.AsNode(), offset, count)
}

// ReplaceData replaces characters starting at the given offset.
func (t *Text) ReplaceData(offset, count int, data string) {
	replaceData(t.AsNode(), offset, count, data)
}

// ReplaceDataWithError replaces characters starting at the given offset,
// raising IndexSizeError when offset is out of bounds.
func (t *Text) ReplaceDataWithError(offset, count int, data string) error {
	return replaceData(t.AsNode(), offset, count, data)
}

// SplitText splits this text node at the given offset, inserting the
// tail into the tree as a new, adjacent text node and returning it.
func (t *Text) SplitText(offset int) *Text {
	runes := []rune(t.Data())
	if offset < 0 || offset > len(runes) {
		return nil
	}

	newNode := t.AsNode().ownerDoc.CreateTextNode(string(runes[offset:]))
	newText := (*Text)(newNode)

	t.SetData(string(runes[:offset]))

	parent := t.AsNode().parentNode
	if parent != nil {
		parent.InsertBefore(newNode, t.AsNode().nextSibling)
	}

	return newText
}

// CloneNode clones this text node.
func (t *Text) CloneNode(deep bool) *Text {
	clone := t.AsNode().ownerDoc.CreateTextNode(t.Data())
	return (*Text)(clone)
}

// IsElementContentWhitespace reports whether this text node consists
// entirely of the four XML whitespace characters.
func (t *Text) IsElementContentWhitespace() bool {
	for _, r := range t.Data() {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// Before inserts nodes before this text node.
func (t *Text) Before(nodes ...interface{}) {
	parent := t.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viablePrevSibling := t.AsNode().findViablePreviousSibling(nodeSet)

	node := t.AsNode().convertNodesToFragment(nodes)
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

// After inserts nodes after this text node.
func (t *Text) After(nodes ...interface{}) {
	parent := t.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viableNextSibling := t.AsNode().findViableNextSibling(nodeSet)

	node := t.AsNode().convertNodesToFragment(nodes)
	if node == nil {
		return
	}

	parent.InsertBefore(node, viableNextSibling)
}

// ReplaceWith replaces this text node with nodes.
func (t *Text) ReplaceWith(nodes ...interface{}) {
	parent := t.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viableNextSibling := t.AsNode().findViableNextSibling(nodeSet)

	node := t.AsNode().convertNodesToFragment(nodes)

	if t.AsNode().parentNode == parent {
		if node != nil {
			parent.ReplaceChild(node, t.AsNode())
		} else {
			parent.RemoveChild(t.AsNode())
		}
	} else if node != nil {
		parent.InsertBefore(node, viableNextSibling)
	}
}

// Remove removes this text node from its parent.
func (t *Text) Remove() {
	if t.AsNode().parentNode != nil {
		t.AsNode().parentNode.RemoveChild(t.AsNode())
	}
}

// NewTextNode creates a new detached text node with the given data.
// The node has no owner document.
func NewTextNode(data string) *Node {
	node := newNode(TextNode, "#text", nil)
	node.textData = &data
	node.nodeValue = &data
	return node
}
