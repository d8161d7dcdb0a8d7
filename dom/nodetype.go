// Package dom implements the W3C Document Object Model, Core Level 2,
// for in-memory XML documents.
// https://www.w3.org/TR/DOM-Level-2-Core/core.html
package dom

// NodeType represents the type of a Node as defined by DOM Core Level 2.
type NodeType uint16

const (
	// ElementNode represents an Element node.
	ElementNode NodeType = 1
	// AttributeNode represents an Attr node.
	AttributeNode NodeType = 2
	// TextNode represents a Text node.
	TextNode NodeType = 3
	// CDATASectionNode represents a CDATASection node.
	CDATASectionNode NodeType = 4
	// EntityReferenceNode represents an EntityReference node.
	EntityReferenceNode NodeType = 5
	// EntityNode represents an Entity node.
	EntityNode NodeType = 6
	// ProcessingInstructionNode represents a ProcessingInstruction node.
	ProcessingInstructionNode NodeType = 7
	// CommentNode represents a Comment node.
	CommentNode NodeType = 8
	// DocumentNode represents a Document node.
	DocumentNode NodeType = 9
	// DocumentTypeNode represents a DocumentType node.
	DocumentTypeNode NodeType = 10
	// DocumentFragmentNode represents a DocumentFragment node.
	DocumentFragmentNode NodeType = 11
	// NotationNode represents a Notation node.
	NotationNode NodeType = 12
	// XMLDeclarationNode represents the XML declaration ("<?xml ... ?>")
	// at the head of a document. Not part of DOM Core Level 2's node-type
	// enumeration; added here as a document-owned leaf so the declaration
	// round-trips through serialization like any other node.
	XMLDeclarationNode NodeType = 13
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case AttributeNode:
		return "ATTRIBUTE_NODE"
	case TextNode:
		return "TEXT_NODE"
	case CDATASectionNode:
		return "CDATA_SECTION_NODE"
	case EntityReferenceNode:
		return "ENTITY_REFERENCE_NODE"
	case EntityNode:
		return "ENTITY_NODE"
	case ProcessingInstructionNode:
		return "PROCESSING_INSTRUCTION_NODE"
	case CommentNode:
		return "COMMENT_NODE"
	case DocumentNode:
		return "DOCUMENT_NODE"
	case DocumentTypeNode:
		return "DOCUMENT_TYPE_NODE"
	case DocumentFragmentNode:
		return "DOCUMENT_FRAGMENT_NODE"
	case NotationNode:
		return "NOTATION_NODE"
	case XMLDeclarationNode:
		return "XML_DECLARATION_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}
