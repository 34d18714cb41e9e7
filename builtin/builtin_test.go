/*
File    : vanction/builtin/builtin_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/akashmaji946/vanction/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuntime struct {
	out *bytes.Buffer
	in  *bufio.Reader
}

func (f *fakeRuntime) Writer() io.Writer { return f.out }

func (f *fakeRuntime) InputReader() *bufio.Reader { return f.in }

func newFakeRuntime(input string) *fakeRuntime {
	return &fakeRuntime{out: &bytes.Buffer{}, in: bufio.NewReader(strings.NewReader(input))}
}

func TestRegistry_SystemPrint(t *testing.T) {
	rt := newFakeRuntime("")
	reg := NewRegistry(rt)
	bi, ok := reg["System.print"]
	require.True(t, ok)
	_, err := bi.Fn([]object.Value{&object.String{Value: "hi"}}, nil)
	require.Nil(t, err)
	assert.Equal(t, "hi\n", rt.out.String())
}

func TestRegistry_SystemPrintCustomEnd(t *testing.T) {
	rt := newFakeRuntime("")
	reg := NewRegistry(rt)
	bi := reg["System.print"]
	_, err := bi.Fn([]object.Value{&object.Int{Value: 1}}, map[string]object.Value{"end": &object.String{Value: ","}})
	require.Nil(t, err)
	assert.Equal(t, "1,", rt.out.String())
}

func TestRegistry_Len(t *testing.T) {
	reg := NewRegistry(newFakeRuntime(""))
	v, err := reg["len"].Fn([]object.Value{&object.Array{Elements: []object.Value{&object.Int{Value: 1}, &object.Int{Value: 2}}}}, nil)
	require.Nil(t, err)
	assert.Equal(t, int64(2), v.(*object.Int).Value)
}

func TestRegistry_ArrayAppendMutatesInPlace(t *testing.T) {
	reg := NewRegistry(newFakeRuntime(""))
	arr := &object.Array{Elements: []object.Value{&object.Int{Value: 1}}}
	_, err := reg["array.append"].Fn([]object.Value{arr, &object.Int{Value: 2}}, nil)
	require.Nil(t, err)
	assert.Len(t, arr.Elements, 2)
}

func TestRegistry_DictGetDefault(t *testing.T) {
	reg := NewRegistry(newFakeRuntime(""))
	d := object.NewDict()
	v, err := reg["dict.get"].Fn([]object.Value{d, &object.String{Value: "missing"}, &object.Int{Value: 42}}, nil)
	require.Nil(t, err)
	assert.Equal(t, int64(42), v.(*object.Int).Value)
}

func TestRegistry_StrSplitAndJoin(t *testing.T) {
	reg := NewRegistry(newFakeRuntime(""))
	v, err := reg["str.split"].Fn([]object.Value{&object.String{Value: "a,b,c"}, &object.String{Value: ","}}, nil)
	require.Nil(t, err)
	arr := v.(*object.Array)
	assert.Len(t, arr.Elements, 3)
	joined, err := reg["array.join"].Fn([]object.Value{arr, &object.String{Value: "-"}}, nil)
	require.Nil(t, err)
	assert.Equal(t, "a-b-c", joined.(*object.String).Value)
}

func TestRegistry_RangeProducesOneIndexed(t *testing.T) {
	reg := NewRegistry(newFakeRuntime(""))
	v, err := reg["range"].Fn([]object.Value{&object.Int{Value: 3}}, nil)
	require.Nil(t, err)
	arr := v.(*object.Array)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, int64(1), arr.Elements[0].(*object.Int).Value)
	assert.Equal(t, int64(3), arr.Elements[2].(*object.Int).Value)
}
