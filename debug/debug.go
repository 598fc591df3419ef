package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Patch bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Patch = boolEnv("SYNTAX_DEBUG_PATCH")
	d.Query = boolEnv("SYNTAX_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}

func Query() bool {
	return d.Query
}
