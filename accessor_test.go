package xcast

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xcast/cache"
	"github.com/viant/xcast/token"
)

type User struct {
	Id      int
	Name    string
	Status  Status
	Created time.Time `format:"timeLayout=2006/01/02"`
	Updated *time.Time `timeLayout:"02.01.2006"`
	Score   *float64
	Tags    []string
	Meta    map[string]interface{}
	secret  string
}

type Audit struct {
	CreatedBy string
	Version   int
}

type Account struct {
	Audit
	*User
	Id    int64
	Label string
}

func TestAccessor_SetProperty(t *testing.T) {
	var testCases = []struct {
		description string
		new         func() interface{}
		property    string
		value       interface{}
		expect      interface{}
	}{
		{
			description: "same type",
			new:         func() interface{} { return &User{Id: 1} },
			property:    "Id",
			value:       101,
			expect:      101,
		},
		{
			description: "string to int",
			new:         func() interface{} { return &User{} },
			property:    "Id",
			value:       "1231",
			expect:      1231,
		},
		{
			description: "leading zero string to int",
			new:         func() interface{} { return &User{} },
			property:    "Id",
			value:       "010",
			expect:      10,
		},
		{
			description: "leading zero non octal string to int",
			new:         func() interface{} { return &User{} },
			property:    "Id",
			value:       "08",
			expect:      8,
		},
		{
			description: "padded string to int",
			new:         func() interface{} { return &User{} },
			property:    "Id",
			value:       " 12",
			expect:      12,
		},
		{
			description: "float to int",
			new:         func() interface{} { return &User{} },
			property:    "Id",
			value:       12.0,
			expect:      12,
		},
		{
			description: "int to string",
			new:         func() interface{} { return &User{} },
			property:    "Name",
			value:       7,
			expect:      "7",
		},
		{
			description: "enum name",
			new:         func() interface{} { return &User{} },
			property:    "Status",
			value:       "Active",
			expect:      StatusActive,
		},
		{
			description: "enum from int",
			new:         func() interface{} { return &User{} },
			property:    "Status",
			value:       2,
			expect:      StatusSuspended,
		},
		{
			description: "time with format tag layout",
			new:         func() interface{} { return &User{} },
			property:    "Created",
			value:       "2024/03/05",
			expect:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "time pointer with legacy layout tag",
			new:         func() interface{} { return &User{} },
			property:    "Updated",
			value:       "05.03.2024",
			expect:      timePtr(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		},
		{
			description: "string to float pointer",
			new:         func() interface{} { return &User{} },
			property:    "Score",
			value:       "4.5",
			expect:      floatPtr(4.5),
		},
		{
			description: "nil to pointer",
			new:         func() interface{} { return &User{Score: floatPtr(1)} },
			property:    "Score",
			value:       nil,
			expect:      (*float64)(nil),
		},
		{
			description: "delimited string to slice",
			new:         func() interface{} { return &User{} },
			property:    "Tags",
			value:       "a,b",
			expect:      []string{"a", "b"},
		},
		{
			description: "json token",
			new:         func() interface{} { return &User{} },
			property:    "Id",
			value:       mustJSON(`42`),
			expect:      42,
		},
		{
			description: "promoted field",
			new:         func() interface{} { return &Account{} },
			property:    "Version",
			value:       "3",
			expect:      3,
		},
		{
			description: "shadowing field",
			new:         func() interface{} { return &Account{User: &User{}} },
			property:    "Id",
			value:       "9",
			expect:      int64(9),
		},
		{
			description: "function local type",
			new: func() interface{} {
				type User struct {
					Id string
				}
				return &User{}
			},
			property: "Id",
			value:    1231,
			expect:   "1231",
		},
	}

	accessor := NewAccessor(WithEngine(newTestEngine(t)))
	for _, testCase := range testCases {
		entity := testCase.new()
		err := accessor.SetProperty(entity, testCase.property, testCase.value)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual, err := accessor.GetProperty(entity, testCase.property)
		require.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestAccessor_SetProperty_TypeMismatch(t *testing.T) {
	var testCases = []struct {
		description string
		property    string
		value       interface{}
	}{
		{description: "non numeric string to int", property: "Id", value: "abc"},
		{description: "nil to int", property: "Id", value: nil},
		{description: "struct to int", property: "Id", value: Audit{}},
		{description: "unknown enum name", property: "Status", value: "Deleted"},
		{description: "invalid time", property: "Created", value: "yesterday"},
	}

	accessor := NewAccessor(WithEngine(newTestEngine(t)))
	for _, testCase := range testCases {
		user := &User{Id: 5, Status: StatusActive, Created: time.Unix(0, 0)}
		before := *user
		err := accessor.SetProperty(user, testCase.property, testCase.value)
		require.NotNil(t, err, testCase.description)
		assert.True(t, errors.Is(err, ErrTypeMismatch), testCase.description)
		var mismatch *TypeMismatchError
		require.True(t, errors.As(err, &mismatch), testCase.description)
		assert.Equal(t, testCase.property, mismatch.Name, testCase.description)
		assert.Equal(t, reflect.TypeOf(testCase.value), mismatch.Value, testCase.description)
		assert.Equal(t, before, *user, testCase.description)
	}
}

func TestAccessor_PropertyNotFound(t *testing.T) {
	accessor := NewAccessor()
	user := &User{}

	_, err := accessor.GetProperty(user, "NoSuchField")
	assert.True(t, errors.Is(err, ErrPropertyNotFound))
	var notFound *PropertyNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "NoSuchField", notFound.Name)
	assert.Equal(t, reflect.TypeOf(User{}), notFound.Type)

	err = accessor.SetProperty(user, "NoSuchField", 1)
	assert.True(t, errors.Is(err, ErrPropertyNotFound))

	_, err = accessor.GetProperty(user, "id")
	assert.True(t, errors.Is(err, ErrPropertyNotFound), "names match exactly")

	_, err = accessor.GetProperty(user, "secret")
	assert.True(t, errors.Is(err, ErrPropertyNotFound), "unexported fields are not properties")
}

func TestAccessor_InvalidEntity(t *testing.T) {
	accessor := NewAccessor()
	var testCases = []struct {
		description string
		entity      interface{}
	}{
		{description: "nil", entity: nil},
		{description: "nil pointer", entity: (*User)(nil)},
		{description: "non struct", entity: 10},
	}
	for _, testCase := range testCases {
		_, err := accessor.GetProperty(testCase.entity, "Id")
		assert.True(t, errors.Is(err, ErrInvalidEntity), testCase.description)
		err = accessor.SetProperty(testCase.entity, "Id", 1)
		assert.True(t, errors.Is(err, ErrInvalidEntity), testCase.description)
	}
	err := accessor.SetProperty(User{}, "Id", 1)
	assert.True(t, errors.Is(err, ErrInvalidEntity), "set requires pointer")
}

func TestAccessor_GetProperty(t *testing.T) {
	accessor := NewAccessor()
	user := User{Id: 3, Name: "Bob", Tags: []string{"x"}}

	actual, err := accessor.GetProperty(user, "Name")
	require.Nil(t, err)
	assert.Equal(t, "Bob", actual)

	actual, err = accessor.GetProperty(&user, "Tags")
	require.Nil(t, err)
	assert.Equal(t, []string{"x"}, actual)

	actual, err = accessor.GetProperty(&user, "Status")
	require.Nil(t, err)
	assert.Equal(t, StatusUnknown, actual)
}

func TestAccessor_Properties(t *testing.T) {
	memory := cache.NewMemory()
	accessor := NewAccessor(WithCache(memory))

	properties, err := accessor.Properties(&Account{})
	require.Nil(t, err)
	assert.Equal(t, []string{"Audit", "CreatedBy", "Version", "User", "Id", "Label"}, properties.Names())
	assert.True(t, properties.Lookup("Version").Promoted())
	assert.Nil(t, properties.Lookup("Name"), "fields of embedded pointers are not promoted")

	again, err := accessor.Properties(reflect.TypeOf(Account{}))
	require.Nil(t, err)
	assert.Same(t, properties, again)

	cached, ok := memory.Lookup("github.com/viant/xcast.Account")
	assert.True(t, ok)
	assert.Same(t, properties, cached)

	userProperties, err := accessor.Properties(User{})
	require.Nil(t, err)
	assert.Equal(t, "2006/01/02", userProperties.Lookup("Created").Layout)
	assert.Equal(t, "02.01.2006", userProperties.Lookup("Updated").Layout)
	assert.True(t, userProperties.Lookup("Updated").IsTime())

	_, err = accessor.Properties([]int{})
	assert.True(t, errors.Is(err, ErrInvalidEntity))
}

func TestAccessor_LocalTypesShareName(t *testing.T) {
	accessor := NewAccessor()
	first := func() interface{} {
		type Entity struct{ Id int }
		return &Entity{}
	}()
	second := func() interface{} {
		type Entity struct{ Name string }
		return &Entity{}
	}()
	require.Nil(t, accessor.SetProperty(first, "Id", "1"))
	require.Nil(t, accessor.SetProperty(second, "Name", 2))

	actual, err := accessor.GetProperty(first, "Id")
	require.Nil(t, err)
	assert.Equal(t, 1, actual)
	actual, err = accessor.GetProperty(second, "Name")
	require.Nil(t, err)
	assert.Equal(t, "2", actual)
}

func TestDefaultAccessor(t *testing.T) {
	user := &User{}
	require.Nil(t, SetProperty(user, "Id", "1231"))
	actual, err := GetProperty(user, "Id")
	require.Nil(t, err)
	assert.Equal(t, 1231, actual)
	assert.Equal(t, 1231, Coerce(actual, reflect.TypeOf(0)))
}

func mustJSON(text string) *token.JSON {
	ret, err := token.ParseJSON([]byte(text))
	if err != nil {
		panic(err)
	}
	return ret
}

func timePtr(ts time.Time) *time.Time {
	return &ts
}

func floatPtr(f float64) *float64 {
	return &f
}
