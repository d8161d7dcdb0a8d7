package dom

import (
	"errors"
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc == nil {
		t.Fatal("NewDocument returned nil")
	}
	if doc.NodeType() != DocumentNode {
		t.Errorf("Expected DocumentNode, got %v", doc.NodeType())
	}
	if doc.NodeName() != "#document" {
		t.Errorf("Expected '#document', got %s", doc.NodeName())
	}
	if doc.XMLVersion() != "1.0" {
		t.Errorf("Expected default XMLVersion '1.0', got %s", doc.XMLVersion())
	}
}

func TestDocument_CreateElement(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("book")

	if el == nil {
		t.Fatal("CreateElement returned nil")
	}
	if el.TagName() != "book" {
		t.Errorf("Expected tagName 'book', got '%s'", el.TagName())
	}
	if el.LocalName() != "book" {
		t.Errorf("Expected localName 'book', got '%s'", el.LocalName())
	}
	if el.NodeType() != ElementNode {
		t.Errorf("Expected ElementNode, got %v", el.NodeType())
	}
}

func TestDocument_CreateElementWithError_RejectsInvalidName(t *testing.T) {
	doc := NewDocument()
	if _, err := doc.CreateElementWithError("1bad"); err == nil {
		t.Error("Expected error for name starting with a digit")
	}
	if _, err := doc.CreateElementWithError(""); err == nil {
		t.Error("Expected error for empty name")
	}
}

func TestDocument_CreateElementNS(t *testing.T) {
	doc := NewDocument()
	el, err := doc.CreateElementNSWithError("http://example.com/ns", "ex:book")
	if err != nil {
		t.Fatalf("CreateElementNSWithError failed: %v", err)
	}
	if el.NamespaceURI() != "http://example.com/ns" {
		t.Errorf("Expected namespace URI, got %q", el.NamespaceURI())
	}
	if el.Prefix() != "ex" {
		t.Errorf("Expected prefix 'ex', got %q", el.Prefix())
	}
	if el.LocalName() != "book" {
		t.Errorf("Expected local name 'book', got %q", el.LocalName())
	}
	if el.TagName() != "ex:book" {
		t.Errorf("Expected tag name 'ex:book', got %q", el.TagName())
	}
}

func TestDocument_CreateElementNS_RejectsBadPrefixBinding(t *testing.T) {
	doc := NewDocument()
	if _, err := doc.CreateElementNSWithError("", "ex:book"); err == nil {
		t.Error("Expected NamespaceError for a prefix bound to the null namespace")
	}
	if _, err := doc.CreateElementNSWithError("http://example.com/ns", "xml:book"); err == nil {
		t.Error("Expected NamespaceError for 'xml' prefix bound to a non-XML namespace")
	}
}

func TestDocument_CreateTextNode(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("Hello, World!")

	if text == nil {
		t.Fatal("CreateTextNode returned nil")
	}
	if text.NodeType() != TextNode {
		t.Errorf("Expected TextNode, got %v", text.NodeType())
	}
	if text.NodeValue() != "Hello, World!" {
		t.Errorf("Expected 'Hello, World!', got '%s'", text.NodeValue())
	}
}

func TestDocument_CreateComment(t *testing.T) {
	doc := NewDocument()
	comment := doc.CreateComment("This is a comment")

	if comment == nil {
		t.Fatal("CreateComment returned nil")
	}
	if comment.NodeType() != CommentNode {
		t.Errorf("Expected CommentNode, got %v", comment.NodeType())
	}
	if comment.NodeValue() != "This is a comment" {
		t.Errorf("Expected 'This is a comment', got '%s'", comment.NodeValue())
	}
}

func TestDocument_CreateCDATASection(t *testing.T) {
	doc := NewDocument()
	if _, err := doc.CreateCDATASectionWithError("has ]]> inside"); err == nil {
		t.Error("Expected error for CDATA data containing ']]>'")
	}
	node, err := doc.CreateCDATASectionWithError("<raw markup>")
	if err != nil {
		t.Fatalf("CreateCDATASectionWithError failed: %v", err)
	}
	if node.NodeType() != CDATASectionNode {
		t.Errorf("Expected CDATASectionNode, got %v", node.NodeType())
	}
}

func TestDocument_CreateProcessingInstruction(t *testing.T) {
	doc := NewDocument()
	pi, err := doc.CreateProcessingInstructionWithError("xml-stylesheet", `type="text/xsl" href="style.xsl"`)
	if err != nil {
		t.Fatalf("CreateProcessingInstructionWithError failed: %v", err)
	}
	if pi.NodeName() != "xml-stylesheet" {
		t.Errorf("Expected target 'xml-stylesheet', got %q", pi.NodeName())
	}
	if _, err := doc.CreateProcessingInstructionWithError("target", "has ?> inside"); err == nil {
		t.Error("Expected error for PI data containing '?>'")
	}
}

func TestDocument_CreateDocumentFragment(t *testing.T) {
	doc := NewDocument()
	frag := doc.CreateDocumentFragment()

	if frag == nil {
		t.Fatal("CreateDocumentFragment returned nil")
	}
	if frag.NodeType() != DocumentFragmentNode {
		t.Errorf("Expected DocumentFragmentNode, got %v", frag.NodeType())
	}
}

func TestElement_Attributes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	el.SetAttribute("id", "main")
	el.SetAttribute("class", "container")
	el.SetAttribute("data-value", "123")

	if el.GetAttribute("id") != "main" {
		t.Errorf("Expected id='main', got '%s'", el.GetAttribute("id"))
	}
	if el.GetAttribute("class") != "container" {
		t.Errorf("Expected class='container', got '%s'", el.GetAttribute("class"))
	}
	if el.GetAttribute("data-value") != "123" {
		t.Errorf("Expected data-value='123', got '%s'", el.GetAttribute("data-value"))
	}
	if !el.HasAttribute("id") {
		t.Error("Expected HasAttribute('id') to be true")
	}

	el.RemoveAttribute("id")
	if el.HasAttribute("id") {
		t.Error("Expected HasAttribute('id') to be false after removal")
	}
}

func TestElement_SetAttributeNS(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("book")

	if err := el.SetAttributeNSWithError("http://example.com/ns", "ex:lang", "en"); err != nil {
		t.Fatalf("SetAttributeNSWithError failed: %v", err)
	}
	if el.GetAttributeNS("http://example.com/ns", "lang") != "en" {
		t.Errorf("Expected 'en', got %q", el.GetAttributeNS("http://example.com/ns", "lang"))
	}
	if !el.HasAttributeNS("http://example.com/ns", "lang") {
		t.Error("Expected HasAttributeNS to be true")
	}
}

func TestNode_AppendChild(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child1 := doc.CreateElement("p")
	child2 := doc.CreateElement("span")

	parent.AsNode().AppendChild(child1.AsNode())
	parent.AsNode().AppendChild(child2.AsNode())

	if parent.AsNode().FirstChild() != child1.AsNode() {
		t.Error("FirstChild should be child1")
	}
	if parent.AsNode().LastChild() != child2.AsNode() {
		t.Error("LastChild should be child2")
	}
	if child1.AsNode().ParentNode() != parent.AsNode() {
		t.Error("child1.ParentNode should be parent")
	}
	if child1.AsNode().NextSibling() != child2.AsNode() {
		t.Error("child1.NextSibling should be child2")
	}
	if child2.AsNode().PreviousSibling() != child1.AsNode() {
		t.Error("child2.PreviousSibling should be child1")
	}
}

func TestNode_AppendChild_RejectsCycle(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("p")
	parent.AsNode().AppendChild(child.AsNode())

	if _, err := child.AsNode().AppendChildWithError(parent.AsNode()); err == nil {
		t.Error("Expected InvalidModificationError when appending an ancestor as a child")
	}
}

func TestNode_RemoveChild(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child1 := doc.CreateElement("p")
	child2 := doc.CreateElement("span")
	child3 := doc.CreateElement("a")

	parent.AsNode().AppendChild(child1.AsNode())
	parent.AsNode().AppendChild(child2.AsNode())
	parent.AsNode().AppendChild(child3.AsNode())

	parent.AsNode().RemoveChild(child2.AsNode())

	if child1.AsNode().NextSibling() != child3.AsNode() {
		t.Error("child1.NextSibling should be child3 after removing child2")
	}
	if child3.AsNode().PreviousSibling() != child1.AsNode() {
		t.Error("child3.PreviousSibling should be child1 after removing child2")
	}
	if child2.AsNode().ParentNode() != nil {
		t.Error("child2.ParentNode should be nil after removal")
	}
}

func TestNode_InsertBefore(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child1 := doc.CreateElement("p")
	child3 := doc.CreateElement("a")
	child2 := doc.CreateElement("span")

	parent.AsNode().AppendChild(child1.AsNode())
	parent.AsNode().AppendChild(child3.AsNode())
	parent.AsNode().InsertBefore(child2.AsNode(), child3.AsNode())

	if child1.AsNode().NextSibling() != child2.AsNode() {
		t.Error("child1.NextSibling should be child2")
	}
	if child2.AsNode().NextSibling() != child3.AsNode() {
		t.Error("child2.NextSibling should be child3")
	}
	if child2.AsNode().PreviousSibling() != child1.AsNode() {
		t.Error("child2.PreviousSibling should be child1")
	}
}

func TestDocument_OneElementChild(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	other := doc.CreateElement("other")

	doc.AsNode().AppendChild(root.AsNode())
	if _, err := doc.AsNode().AppendChildWithError(other.AsNode()); err == nil {
		t.Error("Expected HierarchyRequestError inserting a second document element")
	}
}

func TestNode_TextContent(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	span := doc.CreateElement("span")
	text1 := doc.CreateTextNode("Hello ")
	text2 := doc.CreateTextNode("World")

	span.AsNode().AppendChild(text2)
	div.AsNode().AppendChild(text1)
	div.AsNode().AppendChild(span.AsNode())

	if div.TextContent() != "Hello World" {
		t.Errorf("Expected 'Hello World', got '%s'", div.TextContent())
	}
}

func TestNode_SetTextContent(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	child := doc.CreateElement("p")
	div.AsNode().AppendChild(child.AsNode())

	div.AsNode().SetTextContent("New text")

	if div.AsNode().FirstChild() == nil {
		t.Fatal("Expected a text node child")
	}
	if div.AsNode().FirstChild().NodeType() != TextNode {
		t.Error("Expected child to be a TextNode")
	}
	if div.TextContent() != "New text" {
		t.Errorf("Expected 'New text', got '%s'", div.TextContent())
	}
}

func TestNode_CloneNode(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	div.SetAttribute("id", "original")
	div.SetAttribute("class", "container")
	child := doc.CreateElement("p")
	child.SetAttribute("class", "child")
	div.AsNode().AppendChild(child.AsNode())

	shallowClone := div.CloneNode(false)
	if shallowClone.GetAttribute("id") != "original" {
		t.Error("Shallow clone should have the same attributes")
	}
	if shallowClone.AsNode().FirstChild() != nil {
		t.Error("Shallow clone should not have children")
	}

	deepClone := div.CloneNode(true)
	if deepClone.GetAttribute("id") != "original" {
		t.Error("Deep clone should have the same attributes")
	}
	if deepClone.AsNode().FirstChild() == nil {
		t.Error("Deep clone should have children")
	}
	if (*Element)(deepClone.AsNode().FirstChild()).GetAttribute("class") != "child" {
		t.Error("Deep clone's child should have the same attributes")
	}
}

func TestNode_CloneNode_CommentPreservesData(t *testing.T) {
	doc := NewDocument()
	comment := (*Comment)(doc.CreateComment("note"))

	clone := comment.CloneNode(false)
	if clone.Data() != "note" {
		t.Errorf("Expected cloned comment data 'note', got %q", clone.Data())
	}

	comment.AppendData(" more")
	if clone.Data() != "note" {
		t.Error("Mutating the original comment should not affect the clone")
	}
}

func TestDocument_GetElementById(t *testing.T) {
	doc := NewDocument()
	html := doc.CreateElement("html")
	body := doc.CreateElement("body")
	div := doc.CreateElement("div")
	div.SetAttributeNS(XMLNamespaceURI, "xml:id", "main")

	doc.AsNode().AppendChild(html.AsNode())
	html.AsNode().AppendChild(body.AsNode())
	body.AsNode().AppendChild(div.AsNode())

	found := doc.GetElementById("main")
	if found == nil {
		t.Fatal("GetElementById returned nil")
	}
	if found != div {
		t.Error("GetElementById returned wrong element")
	}

	if doc.GetElementById("nonexistent") != nil {
		t.Error("GetElementById should return nil for nonexistent id")
	}
	if doc.GetElementById("") != nil {
		t.Error("GetElementById should return nil for an empty id")
	}
}

func TestDocument_GetElementsByTagName(t *testing.T) {
	doc := NewDocument()
	html := doc.CreateElement("html")
	body := doc.CreateElement("body")
	div1 := doc.CreateElement("div")
	div2 := doc.CreateElement("div")
	p := doc.CreateElement("p")

	doc.AsNode().AppendChild(html.AsNode())
	html.AsNode().AppendChild(body.AsNode())
	body.AsNode().AppendChild(div1.AsNode())
	body.AsNode().AppendChild(div2.AsNode())
	div1.AsNode().AppendChild(p.AsNode())

	divs := doc.GetElementsByTagName("div")
	if divs.Length() != 2 {
		t.Errorf("Expected 2 divs, got %d", divs.Length())
	}

	all := doc.GetElementsByTagName("*")
	if all.Length() != 5 {
		t.Errorf("Expected 5 elements, got %d", all.Length())
	}
}

func TestDocumentFragment_AppendToParent(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	frag := doc.CreateDocumentFragment()

	p1 := doc.CreateElement("p")
	p2 := doc.CreateElement("p")
	frag.AsNode().AppendChild(p1.AsNode())
	frag.AsNode().AppendChild(p2.AsNode())

	div.AsNode().AppendChild(frag.AsNode())

	if frag.AsNode().FirstChild() != nil {
		t.Error("Fragment should be empty after appending to parent")
	}
	if div.AsNode().FirstChild() != p1.AsNode() {
		t.Error("First child of div should be p1")
	}
	if div.AsNode().LastChild() != p2.AsNode() {
		t.Error("Last child of div should be p2")
	}
}

func TestNode_Contains(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	p := doc.CreateElement("p")
	span := doc.CreateElement("span")

	div.AsNode().AppendChild(p.AsNode())
	p.AsNode().AppendChild(span.AsNode())

	if !div.AsNode().Contains(p.AsNode()) {
		t.Error("div should contain p")
	}
	if !div.AsNode().Contains(span.AsNode()) {
		t.Error("div should contain span")
	}
	if !div.AsNode().Contains(div.AsNode()) {
		t.Error("div should contain itself")
	}
	if p.AsNode().Contains(div.AsNode()) {
		t.Error("p should not contain div")
	}
}

func TestNode_Normalize(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	text1 := doc.CreateTextNode("Hello ")
	text2 := doc.CreateTextNode("World")
	text3 := doc.CreateTextNode("")

	div.AsNode().AppendChild(text1)
	div.AsNode().AppendChild(text2)
	div.AsNode().AppendChild(text3)

	div.AsNode().Normalize()

	count := 0
	for child := div.AsNode().FirstChild(); child != nil; child = child.NextSibling() {
		count++
	}
	if count != 1 {
		t.Errorf("Expected 1 child after normalize, got %d", count)
	}
	if div.TextContent() != "Hello World" {
		t.Errorf("Expected 'Hello World', got '%s'", div.TextContent())
	}
}

func TestText_SplitText(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	text := (*Text)(doc.CreateTextNode("Hello World"))
	div.AsNode().AppendChild(text.AsNode())

	newText := text.SplitText(6)
	if newText == nil {
		t.Fatal("SplitText returned nil")
	}
	if text.Data() != "Hello " {
		t.Errorf("Expected 'Hello ', got '%s'", text.Data())
	}
	if newText.Data() != "World" {
		t.Errorf("Expected 'World', got '%s'", newText.Data())
	}
	if text.AsNode().NextSibling() != newText.AsNode() {
		t.Error("New text node should be next sibling")
	}
}

func TestNamedNodeMap(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	el.SetAttribute("id", "test")
	el.SetAttribute("class", "container")
	el.SetAttribute("data-value", "123")

	attrs := el.Attributes()
	if attrs.Length() != 3 {
		t.Errorf("Expected 3 attributes, got %d", attrs.Length())
	}

	idAttr := attrs.GetNamedItem("id")
	if idAttr == nil {
		t.Fatal("GetNamedItem returned nil")
	}
	if idAttr.Value() != "test" {
		t.Errorf("Expected value 'test', got '%s'", idAttr.Value())
	}

	for i := 0; i < attrs.Length(); i++ {
		if attrs.Item(i) == nil {
			t.Errorf("Item(%d) returned nil", i)
		}
	}

	removed := attrs.RemoveNamedItem("class")
	if removed == nil {
		t.Error("RemoveNamedItem returned nil")
	}
	if attrs.Length() != 2 {
		t.Errorf("Expected 2 attributes after removal, got %d", attrs.Length())
	}
	if attrs.GetNamedItem("class") != nil {
		t.Error("class attribute should be removed")
	}
}

func TestElement_ToggleAttribute(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")

	result := el.ToggleAttribute("disabled")
	if !result {
		t.Error("Expected toggle to return true when adding")
	}
	if !el.HasAttribute("disabled") {
		t.Error("Expected 'disabled' attribute to exist")
	}

	result = el.ToggleAttribute("disabled")
	if result {
		t.Error("Expected toggle to return false when removing")
	}
	if el.HasAttribute("disabled") {
		t.Error("Expected 'disabled' attribute to be removed")
	}

	result = el.ToggleAttribute("readonly", true)
	if !result {
		t.Error("Expected toggle with force=true to return true")
	}

	result = el.ToggleAttribute("readonly", false)
	if result {
		t.Error("Expected toggle with force=false to return false")
	}
}

func TestElement_Children(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	p := doc.CreateElement("p")
	span := doc.CreateElement("span")
	text := doc.CreateTextNode("text")

	div.AsNode().AppendChild(text)
	div.AsNode().AppendChild(p.AsNode())
	div.AsNode().AppendChild(span.AsNode())

	children := div.Children()
	if children.Length() != 2 {
		t.Errorf("Expected 2 element children, got %d", children.Length())
	}
	if div.ChildElementCount() != 2 {
		t.Errorf("Expected ChildElementCount of 2, got %d", div.ChildElementCount())
	}
	if div.FirstElementChild() != p {
		t.Error("FirstElementChild should be p")
	}
	if div.LastElementChild() != span {
		t.Error("LastElementChild should be span")
	}
}

func TestNodeList(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	p1 := doc.CreateElement("p")
	p2 := doc.CreateElement("p")

	div.AsNode().AppendChild(p1.AsNode())
	div.AsNode().AppendChild(p2.AsNode())

	childNodes := div.AsNode().ChildNodes()
	if childNodes.Length() != 2 {
		t.Errorf("Expected 2 child nodes, got %d", childNodes.Length())
	}
	if childNodes.Item(0) != p1.AsNode() {
		t.Error("Item(0) should be p1")
	}
	if childNodes.Item(1) != p2.AsNode() {
		t.Error("Item(1) should be p2")
	}
	if childNodes.Item(-1) != nil {
		t.Error("Item(-1) should be nil")
	}
	if childNodes.Item(5) != nil {
		t.Error("Item(5) should be nil")
	}

	p3 := doc.CreateElement("p")
	div.AsNode().AppendChild(p3.AsNode())
	if childNodes.Length() != 3 {
		t.Errorf("Live NodeList should have 3 items, got %d", childNodes.Length())
	}
}

func TestNode_LookupNamespaceURI(t *testing.T) {
	doc := NewDocument()
	root, err := doc.CreateElementNSWithError("http://example.com/root", "r:root")
	if err != nil {
		t.Fatalf("CreateElementNSWithError failed: %v", err)
	}
	root.SetAttributeNS(XMLNSNamespaceURI, "xmlns:r", "http://example.com/root")
	doc.AsNode().AppendChild(root.AsNode())

	child, err := doc.CreateElementWithError("child")
	if err != nil {
		t.Fatalf("CreateElementWithError failed: %v", err)
	}
	root.AsNode().AppendChild(child.AsNode())

	if uri := child.AsNode().LookupNamespaceURI("r"); uri != "http://example.com/root" {
		t.Errorf("Expected child to resolve prefix 'r' via its ancestor, got %q", uri)
	}
	if prefix := child.AsNode().LookupPrefix("http://example.com/root"); prefix != "r" {
		t.Errorf("Expected LookupPrefix to find 'r', got %q", prefix)
	}
}

func TestDOMImplementation_CreateDocument(t *testing.T) {
	impl := NewDOMImplementation(nil)
	doctype, err := impl.CreateDocumentType("html", "", "")
	if err != nil {
		t.Fatalf("CreateDocumentType failed: %v", err)
	}

	doc, err := impl.CreateDocument("http://example.com/ns", "ex:root", doctype)
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	if doc.DocumentElement() == nil {
		t.Fatal("Expected a document element")
	}
	if doc.DocumentElement().TagName() != "ex:root" {
		t.Errorf("Expected tag name 'ex:root', got %q", doc.DocumentElement().TagName())
	}
	if doc.Doctype() == nil {
		t.Error("Expected a doctype node")
	}
}

func TestDOMImplementation_HasFeature(t *testing.T) {
	impl := NewDOMImplementation(nil)
	if !impl.HasFeature("Core", "2.0") {
		t.Error("Expected Core 2.0 to be supported")
	}
	if !impl.HasFeature("xml", "") {
		t.Error("Expected version-less xml to be supported")
	}
	if impl.HasFeature("HTML", "5.0") {
		t.Error("HTML is not a supported feature")
	}
}

func TestUnescape_PredefinedEntities(t *testing.T) {
	got, err := Unescape("a &amp; b &lt;c&gt;", nil)
	want := "a & b <c>"
	if err != nil {
		t.Fatalf("Unescape() error = %v", err)
	}
	if got != want {
		t.Errorf("Unescape() = %q, want %q", got, want)
	}
}

func TestUnescape_CharacterReferences(t *testing.T) {
	got, err := Unescape("&#65;&#x42;", nil)
	if err != nil {
		t.Fatalf("Unescape() error = %v", err)
	}
	if got != "AB" {
		t.Errorf("Unescape() = %q, want %q", got, "AB")
	}
}

func TestUnescape_CustomResolver(t *testing.T) {
	resolver := EntityResolverFunc(func(name string) (string, bool) {
		if name == "copy" {
			return "©", true
		}
		return "", false
	})
	got, err := Unescape("&copy;", resolver.Resolve)
	if err != nil {
		t.Fatalf("Unescape() error = %v", err)
	}
	if got != "©" {
		t.Errorf("Unescape() = %q, want %q", got, "©")
	}
}

func TestUnescape_UnresolvedEntityFailsWithSyntax(t *testing.T) {
	_, err := Unescape("&unknown;", nil)
	if err == nil {
		t.Fatal("Expected a Syntax error for an unresolved entity")
	}
	var domErr *DOMError
	if !errors.As(err, &domErr) || domErr.Name != "SyntaxError" {
		t.Errorf("Expected a SyntaxError DOMError, got %v", err)
	}
}

func TestNormalizeEOL(t *testing.T) {
	got := NormalizeEOL("a\r\nb\rc\n")
	if got != "a\nb\nc\n" {
		t.Errorf("NormalizeEOL() = %q, want %q", got, "a\nb\nc\n")
	}
}

func TestAttr_SetValue_NormalizesAndUnescapes(t *testing.T) {
	attr := NewAttr("note", "")
	attr.SetValue("line1\r\nline2 &amp; &lt;ok&gt;")
	want := "line1 line2 & <ok>"
	if attr.Value() != want {
		t.Errorf("SetValue() resulted in %q, want %q", attr.Value(), want)
	}
}

func TestSerializeToXML_SimpleElement(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	root.SetAttribute("id", "1")
	text := doc.CreateTextNode("hi & bye")
	root.AsNode().AppendChild(text)
	doc.AsNode().AppendChild(root.AsNode())

	out, err := SerializeToXML(doc.AsNode())
	if err != nil {
		t.Fatalf("SerializeToXML failed: %v", err)
	}
	want := `<root id="1">hi &amp; bye</root>`
	if out != want {
		t.Errorf("SerializeToXML() = %q, want %q", out, want)
	}
}

func TestSerializeToXML_RejectsMalformedComment(t *testing.T) {
	doc := NewDocument()
	comment := doc.CreateComment("bad--comment")
	doc.AsNode().AppendChild(comment)

	if _, err := SerializeToXML(doc.AsNode()); err == nil {
		t.Error("Expected InvalidStateError for a comment containing '--'")
	}
}
