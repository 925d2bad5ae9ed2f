// Package traverse walks arbitrarily shaped JSON values, visiting every
// scalar leaf together with its dotted/bracketed path. The walk is an
// explicit worklist with a depth counter, so the cap holds uniformly no
// matter how a record is shaped.
package traverse

import (
	"sort"
	"strconv"
)

// MaxDepth is how many levels of nesting are visited. Anything deeper stops
// contributing leaves silently; the API itself only serves five levels, so
// the cap is a guard against pathological payloads, not a working limit.
const MaxDepth = 10

// excludedKeys are boilerplate object fields never worth surfacing in search
// or audit output.
var excludedKeys = map[string]bool{
	"meta": true,
	"url":  true,
	"href": true,
}

// Leaf is one scalar value reached by the walk. Value is the stringified
// original: strings as-is, numbers and booleans formatted.
type Leaf struct {
	Path  string
	Value string
}

type frame struct {
	value interface{}
	path  string
	depth int
}

// Walk visits every scalar leaf of root in document order, arrays by index
// and object keys sorted for determinism. Null leaves are skipped.
func Walk(root interface{}, visit func(Leaf)) {
	stack := []frame{{value: root, path: "", depth: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > MaxDepth {
			continue
		}

		switch v := f.value.(type) {
		case map[string]interface{}:
			keys := make([]string, 0, len(v))
			for k := range v {
				if excludedKeys[k] {
					continue
				}
				keys = append(keys, k)
			}
			sort.Strings(keys)
			// Push in reverse so the stack pops keys in sorted order.
			for i := len(keys) - 1; i >= 0; i-- {
				k := keys[i]
				childPath := k
				if f.path != "" {
					childPath = f.path + "." + k
				}
				stack = append(stack, frame{value: v[k], path: childPath, depth: f.depth + 1})
			}
		case []interface{}:
			for i := len(v) - 1; i >= 0; i-- {
				childPath := f.path + "[" + strconv.Itoa(i) + "]"
				stack = append(stack, frame{value: v[i], path: childPath, depth: f.depth + 1})
			}
		case string:
			visit(Leaf{Path: f.path, Value: v})
		case float64:
			visit(Leaf{Path: f.path, Value: strconv.FormatFloat(v, 'f', -1, 64)})
		case bool:
			visit(Leaf{Path: f.path, Value: strconv.FormatBool(v)})
		case int:
			// JSON decoding never yields int, but hand-built test records do.
			visit(Leaf{Path: f.path, Value: strconv.Itoa(v)})
		}
	}
}
