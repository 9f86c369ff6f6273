package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringList_ValueScanRoundTrip(t *testing.T) {
	in := StringList{"history", "with, comma", `with "quotes"`}

	v, err := in.Value()
	assert.NoError(t, err)

	var out StringList
	assert.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestStringList_NilValueIsEmptyArray(t *testing.T) {
	var l StringList
	v, err := l.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringList_ScanEdgeCases(t *testing.T) {
	var l StringList

	// NULL и пустая строка дают пустой список
	assert.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	assert.NoError(t, l.Scan(""))
	assert.Equal(t, StringList{}, l)

	assert.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, l)

	// мусор в колонке — ошибка, а не молчаливая потеря данных
	assert.Error(t, l.Scan("not json"))
	assert.Error(t, l.Scan(42))
}
