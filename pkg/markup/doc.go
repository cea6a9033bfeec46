// Package markup holds the two primitives every widget is built on: the
// attribute serializer (Attributes.String) and the element renderer (El),
// plus the class-merge convention shared by the widget catalog.
//
// Nothing in this package escapes values. Callers rendering untrusted data
// should run it through the sanitize package first.
package markup
