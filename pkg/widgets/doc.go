// Package widgets is the Bootstrap 3 widget catalog. Every function follows
// the same recipe: derive a class string from its semantic options, merge it
// with the class the caller passed in the attribute set (caller class last),
// and hand the result to markup.El.
//
// Zero values mean "not supplied" and select the documented default, so
// Button("", nil, nil) renders the default "Submit" button. Caller attribute
// sets are copied before widgets write to them.
//
// Content and attribute values are emitted verbatim. Kbd and Code are the only
// widgets that escape their text. Untrusted input should go through the
// sanitize package before reaching this one.
package widgets
