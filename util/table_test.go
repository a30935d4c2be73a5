package util

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintObjWithMap(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOut(buf)
	defer SetOut(os.Stdout)
	obj := map[string]interface{}{
		"field1": "value1",
		"field2": "value2",
		"field3": "value3",
		"field4": 4,
	}
	fields := []ObjField{
		{Name: "Field 1", Field: "field1"},
		{Name: "field2", Field: "field2", Transform: func(val interface{}) string { return strings.ToUpper(fmt.Sprintf("%v", val)) }},
		{Name: "field4"},
		{Name: "missing"},
	}
	PrintObj(fields, obj)

	rows := strings.Split(buf.String(), "\n")

	assert.True(t, strings.Contains(rows[0], "Field 1:"))
	assert.True(t, strings.Contains(rows[0], "value1"))

	// Second row has been transformed!
	assert.True(t, strings.Contains(rows[1], "field2:"))
	assert.True(t, strings.Contains(rows[1], "VALUE2"))

	assert.True(t, strings.Contains(rows[2], "field4:"))
	assert.True(t, strings.Contains(rows[2], "4"))

	// Field3 is not in the results, missing is skipped
	assert.False(t, strings.Contains(buf.String(), "field3"))
	assert.False(t, strings.Contains(buf.String(), "missing"))
}

func TestPrintObjWithStruct(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOut(buf)
	defer SetOut(os.Stdout)
	type printObj struct {
		Port    int    `json:"port"`
		Address string `json:"address,omitempty"`
		Engine  string `json:"engine"`
	}
	obj := &printObj{Port: 3000, Address: "0.0.0.0", Engine: "nethttp"}
	fields := []ObjField{
		{Name: "Port", Field: "port"},
		{Name: "Address", Field: "address"},
		{Name: "engine"},
	}
	PrintObj(fields, obj)

	rows := strings.Split(buf.String(), "\n")
	assert.True(t, strings.Contains(rows[0], "Port:"))
	assert.True(t, strings.Contains(rows[0], "3000"))
	assert.True(t, strings.Contains(rows[1], "Address:"))
	assert.True(t, strings.Contains(rows[1], "0.0.0.0"))
	assert.True(t, strings.Contains(rows[2], "engine:"))
	assert.True(t, strings.Contains(rows[2], "nethttp"))
}

func TestPrintObjScalar(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOut(buf)
	defer SetOut(os.Stdout)
	PrintObj(nil, "Hello World")
	assert.Equal(t, "Hello World\n", buf.String())
}

func TestGetJSONField(t *testing.T) {
	type obj struct {
		A string `json:"a,omitempty"`
		B int    `json:"b"`
	}
	f := GetJSONField(obj{A: "x", B: 2}, "b")
	if assert.NotNil(t, f) {
		assert.Equal(t, 2, f.Value())
	}
	assert.Nil(t, GetJSONField(obj{}, "c"))
}
