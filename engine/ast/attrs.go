package ast

import "strings"

// Attr is a single entry of an attribute list. Positional attributes have an
// empty name. ValueLoc never includes quotes; Quoted tells if there were any.
type Attr struct {
	Name     string
	Value    string
	NameLoc  Loc
	ValueLoc Loc
	Quoted   bool
}

// QuotedLoc returns the span of the value including its quotes, if any.
func (a Attr) QuotedLoc() Loc {
	if !a.Quoted {
		return a.ValueLoc
	}
	return Loc{a.ValueLoc.Start - 1, a.ValueLoc.End + 1}
}

// AttrList is the attribute list of a block, e.g.
//
//     [cols="1,2",%header,separator=;]
//
// All methods may be called on a nil list.
type AttrList struct {
	PositionalAttrs []Attr
	NamedAttrs      []Attr
	ID              string
	Roles           []string
	Options         []string
	Loc             Loc
}

// Style returns the first positional attribute, which denotes the block style.
func (a *AttrList) Style() string {
	if s, ok := a.Positional(0); ok {
		return s.Value
	}
	return ""
}

// Positional returns the positional attribute at index i.
func (a *AttrList) Positional(i int) (Attr, bool) {
	if a == nil || i < 0 || i >= len(a.PositionalAttrs) {
		return Attr{}, false
	}
	return a.PositionalAttrs[i], true
}

// Named returns the value of the named attribute name.
func (a *AttrList) Named(name string) (string, bool) {
	attr, ok := a.NamedAttr(name)
	return attr.Value, ok
}

// NamedAttr returns the named attribute name, including its source locations.
// If an attribute is given more than once, the last one wins.
func (a *AttrList) NamedAttr(name string) (Attr, bool) {
	if a == nil {
		return Attr{}, false
	}
	for i := len(a.NamedAttrs) - 1; i >= 0; i-- {
		if a.NamedAttrs[i].Name == name {
			return a.NamedAttrs[i], true
		}
	}
	return Attr{}, false
}

// HasOption checks for an option, given either in shorthand form (`%footer`),
// in an options list (`options="header,footer"`, `opts=…`) or as a named
// attribute `<opt>-option`.
func (a *AttrList) HasOption(opt string) bool {
	if a == nil {
		return false
	}
	for _, o := range a.Options {
		if o == opt {
			return true
		}
	}
	for _, name := range []string{"options", "opts"} {
		if v, ok := a.Named(name); ok {
			for _, o := range strings.Split(v, ",") {
				if strings.TrimSpace(o) == opt {
					return true
				}
			}
		}
	}
	_, ok := a.Named(opt + "-option")
	return ok
}

// HasRole checks for a role, given as `.role` shorthand or `role=…`.
func (a *AttrList) HasRole(role string) bool {
	if a == nil {
		return false
	}
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	if v, ok := a.Named("role"); ok {
		for _, r := range strings.Fields(v) {
			if r == role {
				return true
			}
		}
	}
	return false
}
