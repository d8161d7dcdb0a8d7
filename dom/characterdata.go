package dom

import "unicode/utf8"

// characterDataLength returns n's length in Unicode scalar values (runes),
// per the data model's character-indexed CharacterData contract.
func characterDataLength(n *Node) int {
	return utf8.RuneCountInString(n.NodeValue())
}

// substringData implements the CharacterData.substringData algorithm shared
// by Text, Comment, CDATASection, and ProcessingInstruction. offset and
// count are rune indices, not byte offsets.
func substringData(n *Node, offset, count int) (string, error) {
	runes := []rune(n.NodeValue())
	if offset < 0 || offset > len(runes) {
		return "", ErrIndexSize("offset is out of bounds")
	}
	if count < 0 {
		count = 0
	}
	end := offset + count
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[offset:end]), nil
}

// replaceData implements the CharacterData.replaceData algorithm: it splices
// data into n's value starting at offset, replacing count characters, and
// updates n's stored value in place. offset and count are rune indices.
func replaceData(n *Node, offset, count int, data string) error {
	runes := []rune(n.NodeValue())
	if offset < 0 || offset > len(runes) {
		return ErrIndexSize("offset is out of bounds")
	}
	if count < 0 {
		count = 0
	}
	end := offset + count
	if end > len(runes) {
		end = len(runes)
	}
	newValue := string(runes[:offset]) + data + string(runes[end:])
	n.nodeValue = &newValue
	if n.textData != nil {
		n.textData = &newValue
	}
	if n.commentData != nil {
		n.commentData = &newValue
	}
	return nil
}

// appendData implements CharacterData.appendData.
func appendData(n *Node, data string) error {
	return replaceData(n, characterDataLength(n), 0, data)
}

// insertData implements CharacterData.insertData.
func insertData(n *Node, offset int, data string) error {
	return replaceData(n, offset, 0, data)
}

// deleteData implements CharacterData.deleteData.
func deleteData(n *Node, offset, count int) error {
	return replaceData(n, offset, count, "")
}
