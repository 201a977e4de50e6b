package shell

import "strings"

// Kind identifies a dispatcher command.
type Kind int

const (
	KindUnknown Kind = iota
	KindAdd
	KindList
	KindView
	KindEdit
	KindDelete
	KindFilter
	KindExit
)

var kindNames = map[Kind]string{
	KindAdd:    "add",
	KindList:   "list",
	KindView:   "view",
	KindEdit:   "edit",
	KindDelete: "delete",
	KindFilter: "filter",
	KindExit:   "exit",
}

// menuOrder is the order in which commands are presented.
var menuOrder = []Kind{KindAdd, KindList, KindView, KindEdit, KindDelete, KindFilter, KindExit}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a typed keyword to its Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(input string) Kind {
	input = strings.ToLower(strings.TrimSpace(input))
	for k, name := range kindNames {
		if name == input {
			return k
		}
	}
	return KindUnknown
}
