package dom

// EntityResolver resolves a general entity reference (the name between "&"
// and ";") to its replacement text. Resolve reports false when name is
// unknown. Attribute-value normalization treats a false result as fatal
// (Syntax); builders constructing text content are free to instead preserve
// the reference as its own EntityReferenceNode rather than calling Resolve
// at all.
type EntityResolver interface {
	Resolve(name string) (string, bool)
}

// EntityResolverFunc adapts a plain function to an EntityResolver, mirroring
// the standard library's http.HandlerFunc adapter idiom.
type EntityResolverFunc func(name string) (string, bool)

// Resolve calls f(name).
func (f EntityResolverFunc) Resolve(name string) (string, bool) {
	return f(name)
}
