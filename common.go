package der

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr   func(string) error  = errors.New
	itoa    func(int) string    = strconv.Itoa
	atoi    func(string) (int, error) = strconv.Atoi
	lc      func(string) string = strings.ToLower
	uc      func(string) string = strings.ToUpper
	join    func([]string, string) string = strings.Join
	split   func(string, string) []string = strings.Split
	hasPfx  func(string, string) bool     = strings.HasPrefix
	trimPfx func(string, string) string   = strings.TrimPrefix
)

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}
