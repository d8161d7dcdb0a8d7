package dom

// DocumentType represents the "<!DOCTYPE ...>" declaration associated with a
// document. A DocumentType node, and everything in its internal subset
// (Entity and Notation nodes), is always read-only.
type DocumentType Node

// AsNode returns the underlying Node.
func (dt *DocumentType) AsNode() *Node {
	return (*Node)(dt)
}

// NodeType returns DocumentTypeNode (10).
func (dt *DocumentType) NodeType() NodeType {
	return DocumentTypeNode
}

// NodeName returns the document type's name.
func (dt *DocumentType) NodeName() string {
	return dt.Name()
}

// Name returns the name of the document type, e.g. "html" in
// "<!DOCTYPE html>".
func (dt *DocumentType) Name() string {
	if dt.docTypeData == nil {
		return ""
	}
	return dt.docTypeData.name
}

// PublicId returns the external subset's public identifier, or "".
func (dt *DocumentType) PublicId() string {
	if dt.docTypeData == nil {
		return ""
	}
	return dt.docTypeData.publicId
}

// SystemId returns the external subset's system identifier, or "".
func (dt *DocumentType) SystemId() string {
	if dt.docTypeData == nil {
		return ""
	}
	return dt.docTypeData.systemId
}

// InternalSubset returns the internal subset as a literal string, exactly as
// it appeared between the square brackets of the DOCTYPE declaration, or ""
// if there was none.
func (dt *DocumentType) InternalSubset() string {
	if dt.docTypeData == nil {
		return ""
	}
	return dt.docTypeData.internalSubset
}

// SetInternalSubset sets the literal internal subset text.
func (dt *DocumentType) SetInternalSubset(subset string) {
	dt.docTypeData.internalSubset = subset
}

// Entities returns the read-only NamedNodeMap of Entity nodes declared in
// the internal or external subset, keyed by entity name.
func (dt *DocumentType) Entities() *NamedNodeMap {
	if dt.docTypeData == nil || dt.docTypeData.entities == nil {
		return newNamedNodeMap(nil)
	}
	return dt.docTypeData.entities
}

// Notations returns the read-only NamedNodeMap of Notation nodes declared in
// the internal or external subset, keyed by notation name.
func (dt *DocumentType) Notations() *NamedNodeMap {
	if dt.docTypeData == nil || dt.docTypeData.notations == nil {
		return newNamedNodeMap(nil)
	}
	return dt.docTypeData.notations
}

// CloneNode clones this document type node. Per DOM Core Level 2, cloning a
// DocumentType produces a new, equally read-only node.
func (dt *DocumentType) CloneNode(deep bool) *DocumentType {
	clone := dt.AsNode().CloneNode(deep)
	return (*DocumentType)(clone)
}
