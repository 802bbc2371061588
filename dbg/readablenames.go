package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name converts arbitrary values into random readable names, memoized per
// value key. It flagrantly leaks memory, but names are generated lazily, so
// that only matters if you're actually debugging. Stitcher chains and loop
// candidates are much easier to follow as "ProudMarmot" than as an index and
// four coordinates.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Names are handed out in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	key := fmt.Sprintf("%T:%v", obj, obj)
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
