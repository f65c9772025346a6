package regolith

import (
	"hash/fnv"
	"strconv"
)

// Balanced matches open, then everything up to the close that balances it,
// then that close. Nested open/close pairs are tracked with a balancing
// group called name:
//
//	open(?>(?:(?!open|close)[\s\S])+|(?<name>open)|(?<-name>close))*(?(name)(?!))close
func Balanced(name string, open, close Content) *Pattern {
	err := firstError(checkGroupName("Balanced", name), contentErr("Balanced", open), contentErr("Balanced", close))
	if err != nil {
		return chain(nil, &joinNode{items: []Content{open, close}}, err)
	}
	inner := NonbacktrackingGroup(Any{
		OneMany(Concat(NotAssert(Any{open, close}), AnyInvariant())),
		NamedGroup(name, open),
		BalancingGroup("", name, close),
	})
	return Concat(open, inner.MaybeMany(), IfGroup(name, Fail(), nil), close)
}

// BalancedAuto is Balanced with a group name derived from open and close,
// so that equal delimiters always produce equal text.
func BalancedAuto(open, close Content) *Pattern {
	err := firstError(contentErr("BalancedAuto", open), contentErr("BalancedAuto", close))
	if err != nil {
		return chain(nil, &joinNode{items: []Content{open, close}}, err)
	}
	return Balanced(balanceName(open, close), open, close)
}

func balanceName(open, close Content) string {
	h := fnv.New32a()
	for _, c := range []Content{open, close} {
		s, _ := Render(c)
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	return "b" + strconv.FormatUint(uint64(h.Sum32()), 16)
}
