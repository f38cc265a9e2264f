package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. The
// triangulator's internals are all bare indices and pointers; naming the
// graph instance in a debug dump makes two instances in the same session
// distinguishable at a glance. Names are memoized forever, which flagrantly
// leaks memory, but only if you actually use it.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since names are handed out in demand order, we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
