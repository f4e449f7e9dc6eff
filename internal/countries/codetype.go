package countries

import (
	"fmt"
	"strings"
)

// CodeType is the ISO 3166-1 assignment status of a code element.
// See https://www.iso.org/glossary-for-iso-3166.html.
type CodeType int

const (
	OfficiallyAssigned CodeType = iota
	// ExceptionallyReserved codes are reserved at the request of a national
	// body, government or international organization (e.g. UK).
	ExceptionallyReserved
	// TransitionallyReserved codes stay reserved while replacement elements
	// are taken into use.
	TransitionallyReserved
	// IndeterminatelyReserved codes are reserved because other coding
	// systems use them.
	IndeterminatelyReserved
	// FormerlyUsed codes were part of the standard and are no longer in use.
	FormerlyUsed
	// UserAssigned codes come from the ranges AA, QM-QZ, XA-XZ and ZZ
	// (AAA-AAZ, QMA-QZZ, XAA-XZZ, ZZA-ZZZ, 900-999). They are not
	// compatible between different users.
	UserAssigned
)

var codeTypeNames = [...]string{
	OfficiallyAssigned:      "officially-assigned",
	ExceptionallyReserved:   "exceptionally-reserved",
	TransitionallyReserved:  "transitionally-reserved",
	IndeterminatelyReserved: "indeterminately-reserved",
	FormerlyUsed:            "formerly-used",
	UserAssigned:            "user-assigned",
}

// Valid reports whether t is one of the declared code types.
func (t CodeType) Valid() bool {
	return t >= OfficiallyAssigned && t <= UserAssigned
}

func (t CodeType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("CodeType(%d)", int(t))
	}
	return codeTypeNames[t]
}

// ParseCodeType parses the kebab-case form produced by String.
func ParseCodeType(s string) (CodeType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range codeTypeNames {
		if v == name {
			return CodeType(i), nil
		}
	}
	return 0, newError(CodeInvalidArgument, "code type", s, nil)
}
