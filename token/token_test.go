package token

import (
	"reflect"
	"testing"
	"time"

	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xcast/conv"
)

type level int

type account struct {
	Id   int      `json:"id" yaml:"id"`
	Tags []string `json:"tags" yaml:"tags"`
}

const document = `{
	"id": 1231,
	"ratio": 0.75,
	"active": true,
	"name": "Bob \"B\"",
	"code": "42",
	"created": "2023-01-15T12:30:45Z",
	"missing": null,
	"account": {"id": 7, "tags": ["a", "b"]},
	"values": [1, 2, 3]
}`

func TestJSON_ExtractAs(t *testing.T) {
	root, err := ParseJSON([]byte(document))
	require.Nil(t, err)
	var testCases = []struct {
		description string
		keys        []string
		target      reflect.Type
		expect      interface{}
		hasError    bool
	}{
		{description: "number as int", keys: []string{"id"}, target: reflect.TypeOf(0), expect: 1231},
		{description: "number as int64", keys: []string{"id"}, target: reflect.TypeOf(int64(0)), expect: int64(1231)},
		{description: "number as uint", keys: []string{"id"}, target: reflect.TypeOf(uint(0)), expect: uint(1231)},
		{description: "number as named int", keys: []string{"id"}, target: reflect.TypeOf(level(0)), expect: level(1231)},
		{description: "number as string", keys: []string{"ratio"}, target: reflect.TypeOf(""), expect: "0.75"},
		{description: "number as float32", keys: []string{"ratio"}, target: reflect.TypeOf(float32(0)), expect: float32(0.75)},
		{description: "boolean", keys: []string{"active"}, target: reflect.TypeOf(true), expect: true},
		{description: "escaped string", keys: []string{"name"}, target: reflect.TypeOf(""), expect: `Bob "B"`},
		{description: "string as int", keys: []string{"code"}, target: reflect.TypeOf(0), expect: 42},
		{description: "non numeric string as int", keys: []string{"name"}, target: reflect.TypeOf(0), hasError: true},
		{description: "string as time", keys: []string{"created"}, target: reflect.TypeOf(time.Time{}), expect: time.Date(2023, 1, 15, 12, 30, 45, 0, time.UTC)},
		{description: "null as pointer", keys: []string{"missing"}, target: reflect.TypeOf((*int)(nil)), expect: (*int)(nil)},
		{description: "null as int", keys: []string{"missing"}, target: reflect.TypeOf(0), hasError: true},
		{description: "object as struct", keys: []string{"account"}, target: reflect.TypeOf(account{}), expect: account{Id: 7, Tags: []string{"a", "b"}}},
		{description: "object as map", keys: []string{"account"}, target: reflect.TypeOf(map[string]interface{}{}), expect: map[string]interface{}{"id": 7.0, "tags": []interface{}{"a", "b"}}},
		{description: "array as slice", keys: []string{"values"}, target: reflect.TypeOf([]int{}), expect: []int{1, 2, 3}},
		{description: "array element", keys: []string{"values", "[1]"}, target: reflect.TypeOf(0), expect: 2},
		{description: "nested value", keys: []string{"account", "id"}, target: reflect.TypeOf(""), expect: "7"},
		{description: "array as int", keys: []string{"values"}, target: reflect.TypeOf(0), hasError: true},
	}

	for _, testCase := range testCases {
		node, err := root.Get(testCase.keys...)
		require.Nil(t, err, testCase.description)
		actual, err := node.ExtractAs(testCase.target)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		require.Nil(t, err, testCase.description)
		if expectTime, ok := testCase.expect.(time.Time); ok {
			assert.True(t, expectTime.Equal(actual.(time.Time)), testCase.description)
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestJSON_Get(t *testing.T) {
	root, err := ParseJSON([]byte(document))
	require.Nil(t, err)
	assert.Equal(t, jsonparser.Object, root.Kind())

	node, err := root.Get("name")
	require.Nil(t, err)
	assert.Equal(t, jsonparser.String, node.Kind())
	assert.Equal(t, `Bob "B"`, node.String())

	_, err = root.Get("unknown")
	assert.NotNil(t, err)

	_, err = node.Get("any")
	assert.NotNil(t, err)

	_, err = ParseJSON([]byte(``))
	assert.NotNil(t, err)
}

func TestYAML_ExtractAs(t *testing.T) {
	root, err := ParseYAML([]byte(`
id: 1231
name: Bob
code: "42"
created: 2023-01-15T12:30:45Z
missing: ~
account:
  id: 7
  tags: [a, b]
values:
  - 1
  - 2
`))
	require.Nil(t, err)
	var testCases = []struct {
		description string
		keys        []string
		target      reflect.Type
		expect      interface{}
		hasError    bool
	}{
		{description: "int", keys: []string{"id"}, target: reflect.TypeOf(0), expect: 1231},
		{description: "int as string", keys: []string{"id"}, target: reflect.TypeOf(""), expect: "1231"},
		{description: "quoted int as int", keys: []string{"code"}, target: reflect.TypeOf(0), expect: 42},
		{description: "string as int", keys: []string{"name"}, target: reflect.TypeOf(0), hasError: true},
		{description: "timestamp", keys: []string{"created"}, target: reflect.TypeOf(time.Time{}), expect: time.Date(2023, 1, 15, 12, 30, 45, 0, time.UTC)},
		{description: "null as slice", keys: []string{"missing"}, target: reflect.TypeOf([]int{}), expect: []int(nil)},
		{description: "null as int", keys: []string{"missing"}, target: reflect.TypeOf(0), hasError: true},
		{description: "mapping as struct", keys: []string{"account"}, target: reflect.TypeOf(account{}), expect: account{Id: 7, Tags: []string{"a", "b"}}},
		{description: "sequence element", keys: []string{"values", "1"}, target: reflect.TypeOf(int64(0)), expect: int64(2)},
		{description: "sequence as int", keys: []string{"values"}, target: reflect.TypeOf(0), hasError: true},
	}

	for _, testCase := range testCases {
		node, err := root.Get(testCase.keys...)
		require.Nil(t, err, testCase.description)
		actual, err := node.ExtractAs(testCase.target)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		require.Nil(t, err, testCase.description)
		if expectTime, ok := testCase.expect.(time.Time); ok {
			assert.True(t, expectTime.Equal(actual.(time.Time)), testCase.description)
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestYAML_Get(t *testing.T) {
	root, err := ParseYAML([]byte("items: [x, y]"))
	require.Nil(t, err)

	_, err = root.Get("items", "5")
	assert.NotNil(t, err)
	_, err = root.Get("items", "first")
	assert.NotNil(t, err)
	_, err = root.Get("other")
	assert.NotNil(t, err)

	_, err = ParseYAML([]byte(""))
	assert.NotNil(t, err)
}

func TestConverter(t *testing.T) {
	root, err := ParseJSON([]byte(`{"id": "17"}`))
	require.Nil(t, err)
	node, _ := root.Get("id")

	converter, ok := Resolve(reflect.TypeOf(node))
	require.True(t, ok)
	assert.False(t, converter.CanConvertFrom(reflect.TypeOf(0)))
	assert.True(t, converter.CanConvertTo(reflect.TypeOf(0)))

	actual, err := converter.ConvertTo(node, reflect.TypeOf(0))
	require.Nil(t, err)
	assert.Equal(t, 17, actual)

	_, err = converter.ConvertTo(17, reflect.TypeOf(0))
	assert.NotNil(t, err)

	_, ok = Resolve(reflect.TypeOf(0))
	assert.False(t, ok)
}

func TestWithRegistry(t *testing.T) {
	options := conv.DefaultOptions()
	options.DateLayout = "02/01/2006"
	root, err := ParseJSON([]byte(`"15/01/2023"`), WithRegistry(conv.NewRegistry(options)))
	require.Nil(t, err)
	actual, err := root.ExtractAs(reflect.TypeOf(time.Time{}))
	require.Nil(t, err)
	assert.Equal(t, 15, actual.(time.Time).Day())
}
