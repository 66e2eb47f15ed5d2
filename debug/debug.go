// Package debug provides env-var gated logging for engine internals.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Get   bool
	Set   bool
	Del   bool
	Arr   bool
	Patch bool
	Diff  bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Get = boolEnv("DOCPATH_DEBUG_GET")
	d.Set = boolEnv("DOCPATH_DEBUG_SET")
	d.Del = boolEnv("DOCPATH_DEBUG_DEL")
	d.Arr = boolEnv("DOCPATH_DEBUG_ARR")
	d.Patch = boolEnv("DOCPATH_DEBUG_PATCH")
	d.Diff = boolEnv("DOCPATH_DEBUG_DIFF")
	d.Merge = boolEnv("DOCPATH_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Get() bool {
	return d.Get
}
func Set() bool {
	return d.Set
}
func Del() bool {
	return d.Del
}
func Arr() bool {
	return d.Arr
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Merge() bool {
	return d.Merge
}
