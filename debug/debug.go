package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse       bool
	Edit        bool
	Consolidate bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PBX_DEBUG_PARSE")
	d.Edit = boolEnv("PBX_DEBUG_EDIT")
	d.Consolidate = boolEnv("PBX_DEBUG_CONSOLIDATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Edit() bool {
	return d.Edit
}
func Consolidate() bool {
	return d.Consolidate
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
