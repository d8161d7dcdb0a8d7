package dom

// Entity represents an entity declaration, e.g. from "<!ENTITY name SYSTEM
// "...">" in a document's internal subset. Entity nodes are always
// read-only and have no parent.
type Entity Node

// AsNode returns the underlying Node.
func (e *Entity) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns EntityNode (6).
func (e *Entity) NodeType() NodeType {
	return EntityNode
}

// NodeName returns the entity's name.
func (e *Entity) NodeName() string {
	return e.AsNode().nodeName
}

// PublicId returns the entity's public identifier, or "" if it was declared
// with only a system identifier or as an internal entity.
func (e *Entity) PublicId() string {
	if e.entityData == nil {
		return ""
	}
	return e.entityData.publicId
}

// SystemId returns the entity's system identifier, or "" for an internal
// entity.
func (e *Entity) SystemId() string {
	if e.entityData == nil {
		return ""
	}
	return e.entityData.systemId
}

// NotationName returns the name of the notation for this entity, if it is an
// unparsed entity; otherwise "".
func (e *Entity) NotationName() string {
	if e.entityData == nil {
		return ""
	}
	return e.entityData.notationName
}

// CloneNode clones this entity node.
func (e *Entity) CloneNode(deep bool) *Entity {
	clone := e.AsNode().CloneNode(deep)
	return (*Entity)(clone)
}

// NewEntityNode creates a new detached, read-only Entity node.
func NewEntityNode(name, publicId, systemId, notationName string) *Node {
	node := newNode(EntityNode, name, nil)
	node.entityData = &entityData{
		publicId:     publicId,
		systemId:     systemId,
		notationName: notationName,
	}
	node.readOnlyNode = true
	return node
}
