package inventory

import (
	"errors"
	"regexp"
	"strconv"
)

var ErrInvalidLabel = errors.New(`mask label must look like "Name (color) (N per pack)"`)

var labelPattern = regexp.MustCompile(`^(.*?)\s+\((.*?)\)\s+\((\d+)\s+per\s+pack\)$`)

// ParseLabel splits a catalogue label such as "True Barrier (green) (3 per pack)".
func ParseLabel(s string) (Key, error) {
	m := labelPattern.FindStringSubmatch(s)
	if m == nil {
		return Key{}, ErrInvalidLabel
	}
	count, err := strconv.Atoi(m[3])
	if err != nil || count <= 0 {
		return Key{}, ErrInvalidLabel
	}
	return Key{Name: m[1], Color: m[2], CountPerPack: count}, nil
}

func (k Key) Label() string {
	return k.Name + " (" + k.Color + ") (" + strconv.Itoa(k.CountPerPack) + " per pack)"
}
