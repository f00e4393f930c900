package utils

import (
	"strconv"
)

// StringToUint converts a form id to uint, returns 0 if error
func StringToUint(s string) uint {
	u, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(u)
}
