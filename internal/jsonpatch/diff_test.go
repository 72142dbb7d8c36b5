package jsonpatch

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestDiff(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want string
	}{
		{"equal", `{"a": 1}`, `{"a": 1}`, `[]`},
		{"replace", `{"a": 1}`, `{"a": 2}`, `[{"op":"replace","path":"/a","value":2}]`},
		{"add and remove sorted", `{"z": 1, "b": 1}`, `{"y": 2, "c": 3}`,
			`[{"op":"remove","path":"/b"},{"op":"remove","path":"/z"},{"op":"add","path":"/c","value":3},{"op":"add","path":"/y","value":2}]`},
		{"nested", `{"rate": {"limit": 84600}}`, `{"rate": {"limit": 87600}}`,
			`[{"op":"replace","path":"/rate/limit","value":87600}]`},
		{"array grows", `[1]`, `[1, 2, 3]`,
			`[{"op":"add","path":"/1","value":2},{"op":"add","path":"/2","value":3}]`},
		{"array shrinks", `[1, 2, 3]`, `[1]`,
			`[{"op":"remove","path":"/2"},{"op":"remove","path":"/1"}]`},
		{"type change", `{"a": [1]}`, `{"a": {"b": 1}}`, `[{"op":"replace","path":"/a","value":{"b":1}}]`},
		{"to null", `{"a": 1}`, `{"a": null}`, `[{"op":"replace","path":"/a","value":null}]`},
		{"escaped key", `{"a/b~c": 1}`, `{"a/b~c": 2}`, `[{"op":"replace","path":"/a~1b~0c","value":2}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ops := Diff(decode(t, tc.a), decode(t, tc.b), "")
			out, err := Marshal(ops)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(out))
		})
	}
}

func TestDiffIsDeterministic(t *testing.T) {
	a := decode(t, `{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5}`)
	b := decode(t, `{"a": 0, "b": 0, "c": 0, "d": 0, "e": 0}`)
	first := Diff(a, b, "")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Diff(a, b, ""))
	}
	assert.Equal(t, "/a", first[0].Path)
	assert.Equal(t, "/e", first[4].Path)
}

func TestDiffValues(t *testing.T) {
	type entry struct {
		Limit float64 `json:"limit"`
		Rate  float64 `json:"rate"`
	}
	ops, err := DiffValues(
		map[string]entry{"pension": {Limit: 84600, Rate: 0.093}},
		map[string]entry{"pension": {Limit: 87600, Rate: 0.093}},
	)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "replace", ops[0].Op)
	assert.Equal(t, "/pension/limit", ops[0].Path)
	assert.JSONEq(t, `87600`, string(ops[0].Value))

	_, err = DiffValues(func() {}, 1)
	assert.Error(t, err)
}

func TestMarshalEmpty(t *testing.T) {
	out, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
