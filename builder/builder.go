// Package builder reads XML text into a *dom.Document by driving a
// standard library xml.Decoder token by token and feeding each token
// through the dom package's factory and mutation API. It never constructs
// Node values directly; every piece of tree shape comes out of the same
// calls an application would make by hand.
package builder

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/xmldom/dom/dom"
)

// Option configures a ReadXML call.
type Option func(*config)

type config struct {
	ctx            context.Context
	legacyCharset  bool
	entityResolver dom.EntityResolver
	logger         *log.Logger
}

// WithLogger installs a diagnostic sink for parse progress and malformed
// input recovery (e.g. a DOCTYPE's internal subset being carried verbatim,
// or a raw entity reference surviving as an EntityReference node). A nil
// logger, including the zero value of config.logger when this option is
// never supplied, silences diagnostics entirely; logf is nil-safe.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// logf writes a diagnostic line when a logger was supplied, and is a no-op
// otherwise.
func (c *config) logf(format string, args ...interface{}) {
	if c.logger == nil {
		return
	}
	c.logger.Printf(format, args...)
}

// WithContext threads a context.Context through the token loop; on each
// iteration the builder checks ctx.Err() and aborts early with the
// context's error, so callers can bound how long an untrusted, unbounded
// document is allowed to parse for.
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// WithLegacyCharset enables transcoding of documents whose XML declaration
// names an encoding other than UTF-8 or US-ASCII, via
// golang.org/x/net/html/charset.NewReaderLabel.
func WithLegacyCharset(enabled bool) Option {
	return func(c *config) { c.legacyCharset = enabled }
}

// WithEntityResolver installs the resolver used to expand custom entity
// references found in attribute values (dom.Attr.SetValue consults
// Document.EntityResolver during attribute-value normalization). Entity
// references in element text content are never expanded by the builder;
// they are preserved as EntityReference nodes regardless of this option.
func WithEntityResolver(resolver dom.EntityResolver) Option {
	return func(c *config) { c.entityResolver = resolver }
}

// ReadXML parses r as an XML 1.1 document and returns the resulting
// Document. It fails with a *dom.DOMError carrying the Syntax name on
// malformed input, and wraps any error returned by the supplied
// charset transcoder or context unchanged.
func ReadXML(r io.Reader, opts ...Option) (*dom.Document, error) {
	cfg := &config{ctx: context.Background()}
	for _, opt := range opts {
		opt(cfg)
	}

	doc := dom.NewDocument()
	if cfg.entityResolver != nil {
		doc.SetEntityResolver(cfg.entityResolver)
	}

	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	if cfg.legacyCharset {
		decoder.CharsetReader = charset.NewReaderLabel
	}

	b := &builderState{
		doc:   doc,
		stack: []*dom.Node{doc.AsNode()},
		cfg:   cfg,
	}

	for {
		if err := cfg.ctx.Err(); err != nil {
			return nil, err
		}

		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			cfg.logf("xml: malformed token: %v", err)
			return nil, dom.ErrSyntax(err.Error())
		}

		if err := b.handle(token); err != nil {
			cfg.logf("xml: rejecting document: %v", err)
			return nil, err
		}
	}

	if len(b.stack) != 1 {
		return nil, dom.ErrSyntax("document ended with unclosed elements")
	}

	if root := doc.DocumentElement(); root != nil {
		cfg.logf("xml: parsed document element %q", root.TagName())
	}
	return doc, nil
}

// builderState tracks the stack of open elements (and the document itself,
// always at the bottom) while tokens are consumed.
type builderState struct {
	doc        *dom.Document
	stack      []*dom.Node
	sawElement bool
	cfg        *config
}

func (b *builderState) current() *dom.Node {
	return b.stack[len(b.stack)-1]
}

func (b *builderState) handle(token xml.Token) error {
	switch t := token.(type) {
	case xml.StartElement:
		return b.startElement(t)
	case xml.EndElement:
		return b.endElement(t)
	case xml.CharData:
		return b.charData(t)
	case xml.Comment:
		comment := b.doc.CreateComment(string(t))
		_, err := b.current().AppendChildWithError(comment)
		return toSyntaxError(err)
	case xml.ProcInst:
		return b.procInst(t)
	case xml.Directive:
		return b.directive(t)
	}
	return nil
}

func (b *builderState) startElement(t xml.StartElement) error {
	var el *dom.Element
	var err error
	if t.Name.Space != "" {
		qualifiedName := t.Name.Local
		if prefix := findPrefixForNamespace(t, t.Name.Space, b.current()); prefix != "" {
			qualifiedName = prefix + ":" + t.Name.Local
		}
		el, err = b.doc.CreateElementNSWithError(t.Name.Space, qualifiedName)
	} else {
		el, err = b.doc.CreateElementWithError(t.Name.Local)
	}
	if err != nil {
		return toSyntaxError(err)
	}

	for _, attr := range t.Attr {
		if err := setAttribute(el, attr, t, b.current()); err != nil {
			return toSyntaxError(err)
		}
	}

	if _, err := b.current().AppendChildWithError(el.AsNode()); err != nil {
		return toSyntaxError(err)
	}
	b.stack = append(b.stack, el.AsNode())
	b.sawElement = true
	return nil
}

func setAttribute(el *dom.Element, attr xml.Attr, start xml.StartElement, parent *dom.Node) error {
	var qualifiedName, namespaceURI string
	switch {
	// encoding/xml's Decoder never resolves an "xmlns:prefix" attribute's
	// Name.Space to the real XMLNS URI; it leaves the literal string
	// "xmlns" there instead (see xmlnsPrefix handling in its translate()).
	case attr.Name.Space == "xmlns":
		qualifiedName = "xmlns:" + attr.Name.Local
		namespaceURI = dom.XMLNSNamespaceURI
	case attr.Name.Space == dom.XMLNSNamespaceURI:
		qualifiedName = "xmlns:" + attr.Name.Local
		namespaceURI = dom.XMLNSNamespaceURI
	case attr.Name.Local == "xmlns" && attr.Name.Space == "":
		qualifiedName = "xmlns"
		namespaceURI = dom.XMLNSNamespaceURI
	case attr.Name.Space != "":
		qualifiedName = attr.Name.Local
		if prefix := findPrefixForNamespace(start, attr.Name.Space, parent); prefix != "" {
			qualifiedName = prefix + ":" + attr.Name.Local
		}
		namespaceURI = attr.Name.Space
	default:
		qualifiedName = attr.Name.Local
	}

	a, err := el.AsNode().OwnerDocument().CreateAttributeNSWithError(namespaceURI, qualifiedName)
	if err != nil {
		return err
	}
	// Attach a before setting its value, so that SetValueWithError can reach
	// the owner document's EntityResolver through a's owner element.
	if _, err := el.SetAttributeNodeNSWithError(a); err != nil {
		return err
	}
	return a.SetValueWithError(attr.Value)
}

// findPrefixForNamespace recovers the literal prefix an already-resolved
// element or attribute name was declared with, by scanning the start tag's
// own xmlns attributes and, when none of them binds ns, the declarations in
// scope on parent.
// Grounded on the teacher's identically-named helper in dom/document.go.
func findPrefixForNamespace(el xml.StartElement, ns string, parent *dom.Node) string {
	for _, attr := range el.Attr {
		if (attr.Name.Space == "xmlns" || attr.Name.Space == dom.XMLNSNamespaceURI) && attr.Value == ns {
			return attr.Name.Local
		}
		if attr.Name.Local == "xmlns" && attr.Name.Space == "" && attr.Value == ns {
			return ""
		}
	}
	return parent.LookupPrefix(ns)
}

func (b *builderState) endElement(t xml.EndElement) error {
	if len(b.stack) <= 1 {
		return dom.ErrSyntax(fmt.Sprintf("unexpected end tag %q", t.Name.Local))
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// charData splits text on any literal "&name;" sequences the decoder left
// unexpanded (every predefined entity and numeric character reference is
// already resolved by the time Token returns, since Strict is false;
// anything still shaped like a reference names a general entity with no
// built-in meaning). Per the entity-expansion-timing decision recorded in
// DESIGN.md, those survive as EntityReference nodes rather than being
// eagerly resolved against an Entity Resolver.
func (b *builderState) charData(t xml.CharData) error {
	data := string(t)
	parent := b.current()

	if !b.sawElement || parent.NodeType() == dom.DocumentNode {
		if strings.TrimSpace(data) == "" {
			return nil
		}
		return dom.ErrSyntax("character data is not allowed outside the document element")
	}

	for _, piece := range splitEntityReferences(data) {
		if piece.isReference {
			b.cfg.logf("xml: preserving unresolved entity reference %q", piece.text)
			ref, err := b.doc.CreateEntityReference(piece.text)
			if err != nil {
				return toSyntaxError(err)
			}
			if _, err := parent.AppendChildWithError(ref); err != nil {
				return toSyntaxError(err)
			}
			continue
		}
		if piece.text == "" {
			continue
		}
		textNode := b.doc.CreateTextNode(piece.text)
		if _, err := parent.AppendChildWithError(textNode); err != nil {
			return toSyntaxError(err)
		}
	}
	return nil
}

type textPiece struct {
	text        string
	isReference bool
}

// splitEntityReferences scans s for "&name;"-shaped runs and splits it
// into alternating literal-text and entity-reference pieces.
func splitEntityReferences(s string) []textPiece {
	var pieces []textPiece
	var lit strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '&' {
			lit.WriteByte(s[i])
			continue
		}
		end := strings.IndexByte(s[i:], ';')
		if end < 0 {
			lit.WriteByte(s[i])
			continue
		}
		name := s[i+1 : i+end]
		if name == "" || name[0] == '#' || !dom.IsXMLName(name) {
			lit.WriteByte(s[i])
			continue
		}
		if lit.Len() > 0 {
			pieces = append(pieces, textPiece{text: lit.String()})
			lit.Reset()
		}
		pieces = append(pieces, textPiece{text: name, isReference: true})
		i += end
	}
	if lit.Len() > 0 || len(pieces) == 0 {
		pieces = append(pieces, textPiece{text: lit.String()})
	}
	return pieces
}

// procInst handles processing instructions, dispatching the pseudo-attribute
// syntax of "<?xml ...?>" to the document's XML declaration when it is the
// first thing seen, the way the XML recommendation requires.
func (b *builderState) procInst(t xml.ProcInst) error {
	if t.Target == "xml" {
		if b.sawElement {
			return dom.ErrSyntax("the XML declaration must precede all document content")
		}
		return b.xmlDecl(string(t.Inst))
	}

	pi, err := b.doc.CreateProcessingInstructionWithError(t.Target, strings.TrimSpace(string(t.Inst)))
	if err != nil {
		return toSyntaxError(err)
	}
	_, err = b.current().AppendChildWithError(pi)
	return toSyntaxError(err)
}

// xmlDecl parses the pseudo-attribute list of an "<?xml ...?>" declaration.
// Grounded on the split-on-space/"="-then-trim-quotes scanning idiom used
// throughout the corpus for this exact pseudo-attribute syntax (e.g.
// antchfx-xmlquery's ProcInst handling).
func (b *builderState) xmlDecl(inst string) error {
	attrs := parsePseudoAttrs(inst)
	version := attrs["version"]
	if version == "" {
		version = "1.0"
	}
	encoding := attrs["encoding"]
	standaloneValue, hasStandalone := attrs["standalone"]
	standalone := standaloneValue == "yes"

	decl := b.doc.CreateXmlDeclaration(version, encoding, standalone, hasStandalone)
	_, err := b.doc.AsNode().AppendChildWithError(decl.AsNode())
	return toSyntaxError(err)
}

func parsePseudoAttrs(inst string) map[string]string {
	attrs := make(map[string]string)
	for _, pair := range strings.Fields(inst) {
		eq := strings.IndexByte(pair, '=')
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(pair[:eq])
		value := strings.Trim(pair[eq+1:], `"'`)
		attrs[key] = value
	}
	return attrs
}

// directive handles "<!...>" directives; the only one this builder
// recognizes is DOCTYPE. Other directives (a bare "<!ENTITY ...>" outside
// of a DOCTYPE's internal subset, for instance) are not well-formed XML on
// their own and are rejected.
func (b *builderState) directive(t xml.Directive) error {
	raw := strings.TrimSpace(string(t))
	if !strings.HasPrefix(raw, "DOCTYPE") {
		return dom.ErrSyntax(fmt.Sprintf("unsupported directive %q", raw))
	}
	if b.sawElement {
		return dom.ErrSyntax("DOCTYPE must precede the document element")
	}

	name, publicID, systemID, internalSubset := parseDoctype(raw)
	node, err := b.doc.Implementation().CreateDocumentType(name, publicID, systemID)
	if err != nil {
		return toSyntaxError(err)
	}
	doctype := (*dom.DocumentType)(node)
	doctype.SetInternalSubset(internalSubset)
	if internalSubset != "" {
		b.cfg.logf("xml: carrying DOCTYPE internal subset for %q verbatim, unparsed", name)
	}

	if _, err := b.doc.AsNode().AppendChildWithError(node); err != nil {
		return toSyntaxError(err)
	}
	return nil
}

// parseDoctype pulls the document type's name, external identifiers, and
// literal internal subset text out of a raw "DOCTYPE ..." directive body.
// It does not parse individual <!ENTITY>/<!NOTATION> declarations inside
// the internal subset; those remain available verbatim via
// DocumentType.InternalSubset, and DocumentType.Entities/Notations stay
// empty for documents built by this package (see DESIGN.md).
func parseDoctype(raw string) (name, publicID, systemID, internalSubset string) {
	s := strings.TrimSpace(strings.TrimPrefix(raw, "DOCTYPE"))

	nameEnd := strings.IndexAny(s, " \t\r\n[")
	if nameEnd < 0 {
		return s, "", "", ""
	}
	name = s[:nameEnd]
	s = strings.TrimSpace(s[nameEnd:])

	if idx := strings.IndexByte(s, '['); idx >= 0 {
		if end := strings.LastIndexByte(s, ']'); end > idx {
			internalSubset = s[idx+1 : end]
			s = strings.TrimSpace(s[:idx])
		}
	}

	switch {
	case strings.HasPrefix(s, "PUBLIC"):
		s = strings.TrimSpace(strings.TrimPrefix(s, "PUBLIC"))
		publicID, s = takeQuoted(s)
		s = strings.TrimSpace(s)
		systemID, _ = takeQuoted(s)
	case strings.HasPrefix(s, "SYSTEM"):
		s = strings.TrimSpace(strings.TrimPrefix(s, "SYSTEM"))
		systemID, _ = takeQuoted(s)
	}
	return name, publicID, systemID, internalSubset
}

func takeQuoted(s string) (value, rest string) {
	if s == "" || (s[0] != '"' && s[0] != '\'') {
		return "", s
	}
	quote := s[0]
	end := strings.IndexByte(s[1:], quote)
	if end < 0 {
		return "", s
	}
	return s[1 : 1+end], s[1+end+1:]
}

func toSyntaxError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*dom.DOMError); ok {
		return err
	}
	return dom.ErrSyntax(err.Error())
}
