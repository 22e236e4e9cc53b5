package param

import (
	"errors"
	"fmt"
	"strings"
)

// Tag is the one-byte prefix that selects the primitive kind of a method
// parameter's value bytes.
type Tag byte

const (
	TagBool Tag = iota + 1
	TagByte
	TagChar
	TagString
	TagUInt
	TagInt
	TagULong
	TagLong
	TagAddress
	TagByteArray
	TagUInt128
	TagUInt256
)

var (
	ErrUnsupportedTypeTag = errors.New("unsupported type tag")

	_ fmt.Stringer = Tag(0)

	tagNames = map[Tag]string{
		TagBool:      "Bool",
		TagByte:      "Byte",
		TagChar:      "Char",
		TagString:    "String",
		TagUInt:      "UInt",
		TagInt:       "Int",
		TagULong:     "ULong",
		TagLong:      "Long",
		TagAddress:   "Address",
		TagByteArray: "ByteArray",
		TagUInt128:   "UInt128",
		TagUInt256:   "UInt256",
	}

	// widths of the fixed-width kinds; String and ByteArray are absent.
	tagWidths = map[Tag]int{
		TagBool:    1,
		TagByte:    1,
		TagChar:    2,
		TagUInt:    4,
		TagInt:     4,
		TagULong:   8,
		TagLong:    8,
		TagAddress: 20,
		TagUInt128: 16,
		TagUInt256: 32,
	}
)

// Verify that this is one of the twelve known tags.
func (t Tag) Verify() error {
	if _, ok := tagNames[t]; !ok {
		return fmt.Errorf("%w: 0x%02x", ErrUnsupportedTypeTag, byte(t))
	}
	return nil
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", byte(t))
}

// Width returns the canonical value width of a fixed-width kind. The second
// result is false for variable-width and unknown tags.
func (t Tag) Width() (int, bool) {
	w, ok := tagWidths[t]
	return w, ok
}

// TagFromString parses a kind name such as "ULong". Matching ignores case.
func TagFromString(s string) (Tag, error) {
	for tag, name := range tagNames {
		if strings.EqualFold(name, s) {
			return tag, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedTypeTag, s)
}
