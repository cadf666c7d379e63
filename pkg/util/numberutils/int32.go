package numberutils

import (
	"strconv"
	"strings"
)

// ToInt32WithError converts the given string to an int32, ignoring surrounding whitespace.
// It returns an error if the string is not a base-10 integer or does not fit in 32 bits.
func ToInt32WithError(str string) (int32, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(str), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(i), nil
}
