package dom

import "testing"

func TestDocumentType_Accessors(t *testing.T) {
	impl := NewDOMImplementation(nil)
	node, err := impl.CreateDocumentType("html", "-//W3C//DTD XHTML 1.0//EN", "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd")
	if err != nil {
		t.Fatalf("CreateDocumentType failed: %v", err)
	}

	doctype := (*DocumentType)(node)
	if doctype.Name() != "html" {
		t.Errorf("Expected name 'html', got %q", doctype.Name())
	}
	if doctype.PublicId() != "-//W3C//DTD XHTML 1.0//EN" {
		t.Errorf("Unexpected public id %q", doctype.PublicId())
	}
	if doctype.SystemId() == "" {
		t.Error("Expected a system id")
	}
	if doctype.Entities().Length() != 0 {
		t.Error("Expected an empty entities map on a freshly created doctype")
	}
	if doctype.Notations().Length() != 0 {
		t.Error("Expected an empty notations map on a freshly created doctype")
	}
}

func TestDocumentType_IsReadOnly(t *testing.T) {
	impl := NewDOMImplementation(nil)
	node, err := impl.CreateDocumentType("html", "", "")
	if err != nil {
		t.Fatalf("CreateDocumentType failed: %v", err)
	}
	if !node.readOnlyNode {
		t.Error("Expected a DocumentType node created by the factory to be read-only")
	}
}

func TestDocumentType_CloneHasIndependentSubsetMaps(t *testing.T) {
	impl := NewDOMImplementation(nil)
	node, err := impl.CreateDocumentType("html", "", "")
	if err != nil {
		t.Fatalf("CreateDocumentType failed: %v", err)
	}

	clone := (*DocumentType)(node).CloneNode(false)
	if clone.Entities() == nil {
		t.Fatal("Expected clone to have a non-nil entities map")
	}
	if clone.Entities().Length() != 0 {
		t.Error("Expected clone's entities map to start empty")
	}
}

func TestEntity_Accessors(t *testing.T) {
	node := NewEntityNode("copy", "-//pub//id", "entities.dtd", "")
	entity := (*Entity)(node)

	if entity.NodeName() != "copy" {
		t.Errorf("Expected name 'copy', got %q", entity.NodeName())
	}
	if entity.PublicId() != "-//pub//id" {
		t.Errorf("Unexpected public id %q", entity.PublicId())
	}
	if entity.SystemId() != "entities.dtd" {
		t.Errorf("Unexpected system id %q", entity.SystemId())
	}
	if !node.readOnlyNode {
		t.Error("Expected entity node to be read-only")
	}
}

func TestNotation_Accessors(t *testing.T) {
	node := NewNotationNode("jpeg", "", "image/jpeg")
	notation := (*Notation)(node)

	if notation.NodeName() != "jpeg" {
		t.Errorf("Expected name 'jpeg', got %q", notation.NodeName())
	}
	if notation.SystemId() != "image/jpeg" {
		t.Errorf("Unexpected system id %q", notation.SystemId())
	}
	if !node.readOnlyNode {
		t.Error("Expected notation node to be read-only")
	}
}

func TestXmlDeclaration_Accessors(t *testing.T) {
	doc := NewDocument()
	decl := doc.CreateXmlDeclaration("1.0", "UTF-8", true, true)
	doc.AsNode().AppendChild(decl.AsNode())

	if doc.XmlDeclaration() == nil {
		t.Fatal("Expected Document.XmlDeclaration to find the declaration")
	}
	if decl.Version() != "1.0" {
		t.Errorf("Expected version '1.0', got %q", decl.Version())
	}
	if decl.Encoding() != "UTF-8" {
		t.Errorf("Expected encoding 'UTF-8', got %q", decl.Encoding())
	}
	standalone, ok := decl.Standalone()
	if !ok || !standalone {
		t.Error("Expected standalone to be true and present")
	}
}

func TestXmlDeclaration_MustBeFirstChild(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	decl := doc.CreateXmlDeclaration("1.0", "", false, false)
	if _, err := doc.AsNode().AppendChildWithError(decl.AsNode()); err == nil {
		t.Error("Expected HierarchyRequestError appending an XML declaration after the document element")
	}
}

func TestXmlDeclaration_SerializesBeforeElement(t *testing.T) {
	doc := NewDocument()
	decl := doc.CreateXmlDeclaration("1.0", "UTF-8", false, false)
	doc.AsNode().AppendChild(decl.AsNode())
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	out, err := SerializeToXML(doc.AsNode())
	if err != nil {
		t.Fatalf("SerializeToXML failed: %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?><root/>`
	if out != want {
		t.Errorf("SerializeToXML() = %q, want %q", out, want)
	}
}
