package dom

import "strings"

// ProcessingInstruction represents a processing instruction node in the
// DOM. Processing instructions look like: <?target data?>
// This interface inherits from CharacterData.
type ProcessingInstruction Node

// AsNode returns the underlying Node.
func (pi *ProcessingInstruction) AsNode() *Node {
	return (*Node)(pi)
}

// NodeType returns ProcessingInstructionNode (7).
func (pi *ProcessingInstruction) NodeType() NodeType {
	return ProcessingInstructionNode
}

// NodeName returns the target of the processing instruction.
func (pi *ProcessingInstruction) NodeName() string {
	return pi.AsNode().nodeName
}

// Target returns the target of the processing instruction (read-only).
// This is the application to which the instruction is targeted.
func (pi *ProcessingInstruction) Target() string {
	return pi.AsNode().nodeName
}

// Data returns the content of the processing instruction.
func (pi *ProcessingInstruction) Data() string {
	return pi.AsNode().NodeValue()
}

// SetData sets the content of the processing instruction.
func (pi *ProcessingInstruction) SetData(data string) {
	pi.AsNode().SetNodeValue(data)
}

// Length returns the length of the data content.
func (pi *ProcessingInstruction) Length() int {
	return characterDataLength(pi.AsNode())
}

// SubstringData extracts a substring of the data.
func (pi *ProcessingInstruction) SubstringData(offset, count int) string {
	s, _ := substringData(pi.AsNode(), offset, count)
	return s
}

// SubstringDataWithError extracts a substring of the data, raising
// IndexSizeError when offset is out of bounds.
func (pi *ProcessingInstruction) SubstringDataWithError(offset, count int) (string, error) {
	return substringData(pi.AsNode(), offset, count)
}

// AppendData appends a string to the data.
func (pi *ProcessingInstruction) AppendData(data string) {
	appendData(pi.AsNode(), data)
}

// InsertData inserts a string at the given offset.
func (pi *ProcessingInstruction) InsertData(offset int, data string) {
	insertData(pi.AsNode(), offset, data)
}

// InsertDataWithError inserts a string at the given offset, raising
// IndexSizeError when offset is out of bounds.
func (pi *ProcessingInstruction) InsertDataWithError(offset int, data string) error {
	return insertData(pi.AsNode(), offset, data)
}

// DeleteData deletes characters starting at the given offset.
func (pi *ProcessingInstruction) DeleteData(offset, count int) {
	deleteData(pi.AsNode(), offset, count)
}

// DeleteDataWithError deletes characters starting at the given offset,
// raising IndexSizeError when offset is out of bounds.
func (pi *ProcessingInstruction) DeleteDataWithError(offset, count int) error {
	return deleteData(pi.AsNode(), offset, count)
}

// ReplaceData replaces characters starting at the given offset.
func (pi *ProcessingInstruction) ReplaceData(offset, count int, data string) {
	replaceData(pi.AsNode(), offset, count, data)
}

// ReplaceDataWithError replaces characters starting at the given offset,
// raising IndexSizeError when offset is out of bounds.
func (pi *ProcessingInstruction) ReplaceDataWithError(offset, count int, data string) error {
	return replaceData(pi.AsNode(), offset, count, data)
}

// CloneNode clones this processing instruction node.
func (pi *ProcessingInstruction) CloneNode(deep bool) *ProcessingInstruction {
	clone := pi.AsNode().ownerDoc.CreateProcessingInstruction(pi.Target(), pi.Data())
	return (*ProcessingInstruction)(clone)
}

// Before inserts nodes before this processing instruction node.
func (pi *ProcessingInstruction) Before(nodes ...interface{}) {
	parent := pi.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viablePrevSibling := pi.AsNode().findViablePreviousSibling(nodeSet)

	node := pi.AsNode().convertNodesToFragment(nodes)
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

// After inserts nodes after this processing instruction node.
func (pi *ProcessingInstruction) After(nodes ...interface{}) {
	parent := pi.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viableNextSibling := pi.AsNode().findViableNextSibling(nodeSet)

	node := pi.AsNode().convertNodesToFragment(nodes)
	if node == nil {
		return
	}

	parent.InsertBefore(node, viableNextSibling)
}

// ReplaceWith replaces this processing instruction node with nodes.
func (pi *ProcessingInstruction) ReplaceWith(nodes ...interface{}) {
	parent := pi.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viableNextSibling := pi.AsNode().findViableNextSibling(nodeSet)

	node := pi.AsNode().convertNodesToFragment(nodes)

	if pi.AsNode().parentNode == parent {
		if node != nil {
			parent.ReplaceChild(node, pi.AsNode())
		} else {
			parent.RemoveChild(pi.AsNode())
		}
	} else if node != nil {
		parent.InsertBefore(node, viableNextSibling)
	}
}

// Remove removes this processing instruction node from its parent.
func (pi *ProcessingInstruction) Remove() {
	if pi.AsNode().parentNode != nil {
		pi.AsNode().parentNode.RemoveChild(pi.AsNode())
	}
}

// NewProcessingInstructionNode creates a new detached processing
// instruction node with the given target and data. The node has no owner
// document.
func NewProcessingInstructionNode(target, data string) *Node {
	node := newNode(ProcessingInstructionNode, target, nil)
	node.nodeValue = &data
	return node
}

// ValidateProcessingInstructionTarget validates a processing instruction
// target against the XML Name production. "xml", in any case, is reserved
// by the XML declaration and is not a legal target.
func ValidateProcessingInstructionTarget(target string) error {
	if !IsXMLName(target) {
		return ErrInvalidCharacter("the processing instruction target is not a valid XML name")
	}
	if strings.EqualFold(target, "xml") {
		return ErrInvalidCharacter("'xml' is a reserved processing instruction target")
	}
	return nil
}

// ValidateProcessingInstructionData validates processing instruction data.
// Returns an error if the data contains the closing sequence "?>".
func ValidateProcessingInstructionData(data string) error {
	if strings.Contains(data, "?>") {
		return ErrInvalidCharacter("the data contains the invalid sequence '?>'")
	}
	return nil
}
