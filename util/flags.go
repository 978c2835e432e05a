package util

import (
	"fmt"
	"strings"
)

// StringSliceFlag is a comma separated list flag, e.g. for band or stat names
type StringSliceFlag []string

func (s *StringSliceFlag) Set(value string) error {
	for _, split := range strings.Split(value, ",") {
		split = strings.TrimSpace(split)
		if split == "" {
			continue
		}
		*s = append(*s, split)
	}
	return nil
}

func (s *StringSliceFlag) String() string {
	// This is just a 1-liner to print a slice as a comma separated list.
	return strings.Trim(strings.Replace(fmt.Sprint(*s), " ", ", ", -1), "[]")
}
