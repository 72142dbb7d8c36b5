package jsonpatch

import (
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

var emptyPatch = []byte("[]")

// Op is a single RFC 6902 operation.
type Op struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Diff computes an RFC 6902 JSON Patch that transforms a into b.
// Both a and b should be the result of json.Unmarshal into any.
// Path should be "" for the root document. Object keys are visited in
// sorted order, so equal inputs always give the same patch.
func Diff(a, b any, path string) []Op {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []Op{replaceOp(path, b)}
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	// Different types or different primitive values
	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return []Op{replaceOp(path, b)}
	}
	return nil
}

// DiffValues diffs the JSON encodings of a and b.
func DiffValues(a, b any) ([]Op, error) {
	docA, err := document(a)
	if err != nil {
		return nil, err
	}
	docB, err := document(b)
	if err != nil {
		return nil, err
	}
	return Diff(docA, docB, ""), nil
}

func document(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Marshal encodes ops, writing "[]" for an empty patch.
func Marshal(ops []Op) ([]byte, error) {
	if len(ops) == 0 {
		return emptyPatch, nil
	}
	return json.Marshal(ops)
}

func diffObjects(a, b map[string]any, path string) []Op {
	var ops []Op

	// Removed keys (in a but not in b)
	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}

	// Added and changed keys
	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, addOp(childPath, b[k]))
		} else {
			ops = append(ops, Diff(av, b[k], childPath)...)
		}
	}

	return ops
}

func diffArrays(a, b []any, path string) []Op {
	var ops []Op

	minLen := min(len(a), len(b))

	for i := 0; i < minLen; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}

	// Elements removed (reverse order to keep indices valid)
	for i := len(a) - 1; i >= minLen; i-- {
		ops = append(ops, removeOp(path+"/"+strconv.Itoa(i)))
	}

	for i := minLen; i < len(b); i++ {
		ops = append(ops, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}

	return ops
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func marshalValue(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}

func replaceOp(path string, value any) Op {
	return Op{Op: "replace", Path: path, Value: marshalValue(value)}
}

func addOp(path string, value any) Op {
	return Op{Op: "add", Path: path, Value: marshalValue(value)}
}

func removeOp(path string) Op {
	return Op{Op: "remove", Path: path}
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
