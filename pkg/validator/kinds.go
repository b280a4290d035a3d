package validator

import "slices"

// Kind identifies a registered rule type.
type Kind int

const (
	KindNumber Kind = iota + 1
	KindInt
	KindInteger
	KindString
	KindNumString
	KindIntString
	KindBool
	KindBoolean
	KindArray
	KindObject
	KindCallback
)

// limitCheck compares a value against a min or max limit.
type limitCheck func(v, limit any) bool

type kindSpec struct {
	name      string
	typeCheck func(v any) bool
	minCheck  limitCheck // nil: min/max do not apply
	maxCheck  limitCheck
}

func inclusive(check func(v, limit any, inclusive bool) bool) limitCheck {
	return func(v, limit any) bool { return check(v, limit, true) }
}

// never backs min/max on booleans: the constraint cannot hold, so it is reported.
func never(any, any) bool { return false }

func anyValue(any) bool { return true }

var kindSpecs = [...]kindSpec{
	KindNumber:    {name: "number", typeCheck: IsNumber, minCheck: inclusive(MinNumber), maxCheck: inclusive(MaxNumber)},
	KindInt:       {name: "int", typeCheck: IsInteger, minCheck: inclusive(MinNumber), maxCheck: inclusive(MaxNumber)},
	KindInteger:   {name: "integer", typeCheck: IsInteger, minCheck: inclusive(MinNumber), maxCheck: inclusive(MaxNumber)},
	KindString:    {name: "string", typeCheck: IsString, minCheck: inclusive(MinLength), maxCheck: inclusive(MaxLength)},
	KindNumString: {name: "numstring", typeCheck: IsNumberOnString, minCheck: inclusive(MinLength), maxCheck: inclusive(MaxLength)},
	KindIntString: {name: "intstring", typeCheck: IsIntegerOnString, minCheck: inclusive(MinLength), maxCheck: inclusive(MaxLength)},
	KindBool:      {name: "bool", typeCheck: IsBoolean, minCheck: never, maxCheck: never},
	KindBoolean:   {name: "boolean", typeCheck: IsBoolean, minCheck: never, maxCheck: never},
	KindArray:     {name: "array", typeCheck: IsArray, minCheck: inclusive(MinArrayLength), maxCheck: inclusive(MaxArrayLength)},
	KindObject:    {name: "object", typeCheck: IsObject, minCheck: inclusive(MinObjectLength), maxCheck: inclusive(MaxObjectLength)},
	KindCallback:  {name: "callback", typeCheck: anyValue},
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindSpecs))
	for k, spec := range kindSpecs {
		if spec.name != "" {
			m[spec.name] = Kind(k)
		}
	}
	return m
}()

// LookupKind resolves a rule type name.
func LookupKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns the registered rule type names in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(kindsByName))
	for name := range kindsByName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (k Kind) spec() kindSpec {
	if k <= 0 || int(k) >= len(kindSpecs) {
		return kindSpec{}
	}
	return kindSpecs[k]
}

func (k Kind) String() string {
	if name := k.spec().name; name != "" {
		return name
	}
	return "unknown"
}

// Check reports whether v satisfies the kind's type predicate.
func (k Kind) Check(v any) bool {
	if check := k.spec().typeCheck; check != nil {
		return check(v)
	}
	return false
}

// CheckMin applies the kind's min checker. ok is false when min does not
// apply to the kind.
func (k Kind) CheckMin(v, limit any) (valid, ok bool) {
	check := k.spec().minCheck
	if check == nil {
		return false, false
	}
	return check(v, limit), true
}

// CheckMax applies the kind's max checker. ok is false when max does not
// apply to the kind.
func (k Kind) CheckMax(v, limit any) (valid, ok bool) {
	check := k.spec().maxCheck
	if check == nil {
		return false, false
	}
	return check(v, limit), true
}

// Pattern identifies a registered format predicate.
type Pattern int

const (
	PatternJapanese Pattern = iota + 1
	PatternEmail
	PatternURL
	PatternUUID
)

type patternSpec struct {
	name  string
	match func(v any) bool
}

var patternSpecs = [...]patternSpec{
	PatternJapanese: {name: "japanese", match: IsJapanese},
	PatternEmail:    {name: "email", match: IsEmail},
	PatternURL:      {name: "url", match: IsURL},
	PatternUUID:     {name: "uuid", match: IsUUID},
}

var patternsByName = func() map[string]Pattern {
	m := make(map[string]Pattern, len(patternSpecs))
	for p, spec := range patternSpecs {
		if spec.name != "" {
			m[spec.name] = Pattern(p)
		}
	}
	return m
}()

// LookupPattern resolves a pattern name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patternsByName[name]
	return p, ok
}

// Patterns returns the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patternsByName))
	for name := range patternsByName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (p Pattern) spec() patternSpec {
	if p <= 0 || int(p) >= len(patternSpecs) {
		return patternSpec{}
	}
	return patternSpecs[p]
}

func (p Pattern) String() string {
	if name := p.spec().name; name != "" {
		return name
	}
	return "unknown"
}

// Match reports whether v satisfies the pattern.
func (p Pattern) Match(v any) bool {
	if match := p.spec().match; match != nil {
		return match(v)
	}
	return false
}
