package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transitcatalogue/internal/xerrors"
)

func TestBuilderLeafValue(t *testing.T) {
	v, err := NewBuilder().Value(Int(42)).Build()
	require.NoError(t, err)
	assert.Equal(t, KindInt, v.Kind)
	assert.Equal(t, 42, v.Int)
}

func TestBuilderDict(t *testing.T) {
	v, err := NewBuilder().
		StartDict().
		Key("name").Value(String("256")).
		Key("stops").Value(Int(4)).
		EndDict().
		Build()
	require.NoError(t, err)
	require.Equal(t, KindDict, v.Kind)
	assert.Equal(t, []string{"name", "stops"}, v.Order)
	assert.Equal(t, "256", v.Dict["name"].Str)
	assert.Equal(t, 4, v.Dict["stops"].Int)
}

func TestBuilderArray(t *testing.T) {
	v, err := NewBuilder().
		StartArray().
		Value(Int(1)).
		Value(Int(2)).
		EndArray().
		Build()
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind)
	require.Len(t, v.Arr, 2)
	assert.Equal(t, 1, v.Arr[0].Int)
}

func TestBuilderNestedDictInArray(t *testing.T) {
	v, err := NewBuilder().
		StartArray().
		StartDict().Key("kind").Value(String("Wait")).EndDict().
		StartDict().Key("kind").Value(String("Bus")).EndDict().
		EndArray().
		Build()
	require.NoError(t, err)
	require.Len(t, v.Arr, 2)
	assert.Equal(t, "Wait", v.Arr[0].Dict["kind"].Str)
	assert.Equal(t, "Bus", v.Arr[1].Dict["kind"].Str)
}

func TestBuilderMisuseValueWithoutKey(t *testing.T) {
	_, err := NewBuilder().StartDict().Value(Int(1)).EndDict().Build()
	require.Error(t, err)
	var xe *xerrors.Error
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, xerrors.BuilderMisuse, xe.Kind)
}

func TestBuilderMisuseDoubleKey(t *testing.T) {
	_, err := NewBuilder().StartDict().Key("a").Key("b").Build()
	require.Error(t, err)
	var xe *xerrors.Error
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, xerrors.BuilderMisuse, xe.Kind)
}

func TestBuilderMisuseUnclosedDict(t *testing.T) {
	_, err := NewBuilder().StartDict().Key("a").Value(Int(1)).Build()
	require.Error(t, err)
}

func TestBuilderMisuseEndDictWithPendingKey(t *testing.T) {
	_, err := NewBuilder().StartDict().Key("a").EndDict().Build()
	require.Error(t, err)
}

func TestBuilderMisuseMismatchedEnd(t *testing.T) {
	_, err := NewBuilder().StartDict().EndArray().Build()
	require.Error(t, err)
}

func TestBuilderStickyErrorIgnoresLaterCalls(t *testing.T) {
	b := NewBuilder().StartDict().Value(Int(1)) // misuse latched here
	b = b.Key("x").Value(Int(2)).EndDict().EndArray()
	_, err := b.Build()
	require.Error(t, err)
}
