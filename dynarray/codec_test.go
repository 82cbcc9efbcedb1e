package dynarray_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/seqkit/dynarray"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSON_Encode(t *testing.T) {
	a, err := dynarray.New[int](8)
	require.NoError(t, err)
	raw, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(raw))

	a.Add(1)
	a.Add(2)
	raw, err = json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `[1,2]`, string(raw), "spare capacity is not encoded")

	doc := struct {
		Tags *dynarray.Array[string] `json:"tags"`
	}{Tags: dynarray.Of("x", "y")}
	raw, err = json.Marshal(doc)
	require.NoError(t, err)
	require.JSONEq(t, `{"tags":["x","y"]}`, string(raw))
}

func TestJSON_Decode(t *testing.T) {
	var a dynarray.Array[string]
	require.NoError(t, json.Unmarshal([]byte(`["a","b","c"]`), &a))
	require.Equal(t, []string{"a", "b", "c"}, a.Values())
	require.Equal(t, 3, a.Cap())

	var wrapped struct {
		Tags dynarray.Array[string] `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tags":[]}`), &wrapped))
	require.Equal(t, 0, wrapped.Tags.Size())

	b := dynarray.Of(1, 2)
	require.Error(t, json.Unmarshal([]byte(`{"not":"a list"}`), b))
	require.Equal(t, []int{1, 2}, b.Values(), "unchanged on error")
}

func TestYAML_RoundTrip(t *testing.T) {
	a := dynarray.Of(3, 1, 4)
	raw, err := yaml.Marshal(a)
	require.NoError(t, err)
	require.Equal(t, "- 3\n- 1\n- 4\n", string(raw))

	var back dynarray.Array[int]
	require.NoError(t, yaml.Unmarshal(raw, &back))
	require.True(t, dynarray.Equal(a, &back))

	require.Error(t, yaml.Unmarshal([]byte("k: v\n"), &back))
	require.Equal(t, []int{3, 1, 4}, back.Values())
}

// TestCodec_ValueField encodes an Array held by value, through the parent value and its pointer.
func TestCodec_ValueField(t *testing.T) {
	type doc struct {
		Tags dynarray.Array[string] `json:"tags" yaml:"tags"`
	}
	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"tags":["x","y"]}`), &d))
	require.Equal(t, 2, d.Tags.Size())

	for _, v := range []interface{}{d, &d} {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		require.JSONEq(t, `{"tags":["x","y"]}`, string(raw))

		raw, err = yaml.Marshal(v)
		require.NoError(t, err)
		require.NotContains(t, string(raw), "{}")
		var back doc
		require.NoError(t, yaml.Unmarshal(raw, &back))
		require.Equal(t, []string{"x", "y"}, back.Tags.Values())
	}

	raw, err := json.Marshal(dynarray.Array[int]{})
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(raw))
}

// TestJSON_DecodeNullKeepsContents verifies null leaves the receiver untouched.
func TestJSON_DecodeNullKeepsContents(t *testing.T) {
	a := dynarray.Of(1, 2)
	require.NoError(t, json.Unmarshal([]byte(`null`), a))
	require.Equal(t, []int{1, 2}, a.Values())

	var d struct {
		Nums dynarray.Array[int] `json:"nums"`
	}
	d.Nums.Add(7)
	require.NoError(t, json.Unmarshal([]byte(`{"nums":null}`), &d))
	require.Equal(t, []int{7}, d.Nums.Values())
}
