package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Header bool
	Read   bool
	Until  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Header = boolEnv("AER_DEBUG_HEADER")
	d.Read = boolEnv("AER_DEBUG_READ")
	d.Until = boolEnv("AER_DEBUG_UNTIL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Header() bool {
	return d.Header
}
func Read() bool {
	return d.Read
}
func Until() bool {
	return d.Until
}
