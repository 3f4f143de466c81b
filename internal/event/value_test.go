package event

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKinds(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Kind
	}{
		{name: "null", doc: `null`, want: Null},
		{name: "bool", doc: `true`, want: Bool},
		{name: "int", doc: `42`, want: Int},
		{name: "negative int", doc: `-7`, want: Int},
		{name: "float", doc: `4.5`, want: Float},
		{name: "exponent", doc: `1e3`, want: Float},
		{name: "int beyond int64", doc: `18446744073709551616`, want: Float},
		{name: "string", doc: `"ping"`, want: String},
		{name: "object", doc: `{"a": 1}`, want: Object},
		{name: "array", doc: `[1, "two"]`, want: Array},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Kind())
		})
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	docs := []string{
		``,
		`{`,
		`{"a": 1} {"b": 2}`,
		`not json`,
		`1e400`,
	}

	for _, doc := range docs {
		_, err := Decode([]byte(doc))
		assert.ErrorIs(t, err, ErrMalformed, "doc %q", doc)
	}
}

func TestFieldAccess(t *testing.T) {
	v, err := Decode([]byte(`{
		"httpMethod": "POST",
		"body": "{\"message\":\"ping\"}",
		"requestContext": {"stage": "dev", "requestTimeEpoch": 1700000000000, "weight": 0.5},
		"isBase64Encoded": false
	}`))
	require.NoError(t, err)

	method, err := v.Field("httpMethod")
	require.NoError(t, err)
	s, err := method.AsString()
	require.NoError(t, err)
	assert.Equal(t, "POST", s)

	rc, err := v.Field("requestContext")
	require.NoError(t, err)
	epoch, err := rc.Field("requestTimeEpoch")
	require.NoError(t, err)
	n, err := epoch.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), n)

	weight, err := rc.Field("weight")
	require.NoError(t, err)
	f, err := weight.AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	widened, err := epoch.AsFloat()
	require.NoError(t, err)
	assert.Equal(t, float64(1700000000000), widened)

	flag, err := v.Field("isBase64Encoded")
	require.NoError(t, err)
	b, err := flag.AsBool()
	require.NoError(t, err)
	assert.False(t, b)

	assert.True(t, v.Has("body"))
	assert.False(t, v.Has("headers"))
	assert.Equal(t, []string{"body", "httpMethod", "isBase64Encoded", "requestContext"}, v.Keys())
}

func TestFieldErrors(t *testing.T) {
	v, err := Decode([]byte(`{"body": 12, "nested": {"inner": null}}`))
	require.NoError(t, err)

	_, err = v.Field("message")
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, "message", fe.Path)
	assert.Equal(t, `field "message" is missing`, err.Error())

	body, err := v.Field("body")
	require.NoError(t, err)
	_, err = body.AsString()
	assert.ErrorIs(t, err, ErrWrongType)
	assert.Equal(t, `field "body" is int, want string`, err.Error())

	_, err = body.Field("message")
	assert.ErrorIs(t, err, ErrWrongType)

	nested, err := v.Field("nested")
	require.NoError(t, err)
	inner, err := nested.Field("inner")
	require.NoError(t, err)
	assert.True(t, inner.IsNull())
	_, err = inner.AsObject()
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "nested.inner", fe.Path)
	assert.Equal(t, Null, fe.Got)
	assert.Equal(t, Object, fe.Want)

	_, err = StringValue("x").AsInt()
	assert.ErrorIs(t, err, ErrWrongType)
	_, err = FloatValue(1.5).AsInt()
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestArrayAccess(t *testing.T) {
	v, err := Decode([]byte(`{"items": [{"id": 1}, {"id": "two"}]}`))
	require.NoError(t, err)

	items, err := v.Field("items")
	require.NoError(t, err)
	arr, err := items.AsArray()
	require.NoError(t, err)
	require.Len(t, arr, 2)

	id, err := arr[1].Field("id")
	require.NoError(t, err)
	_, err = id.AsInt()
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "items[1].id", fe.Path)
}

func TestConstructorsCopyInput(t *testing.T) {
	fields := map[string]Value{"message": StringValue("ping")}
	obj := ObjectValue(fields)
	fields["message"] = IntValue(1)

	msg, err := obj.Field("message")
	require.NoError(t, err)
	s, err := msg.AsString()
	require.NoError(t, err)
	assert.Equal(t, "ping", s)
}

func TestMarshalJSON(t *testing.T) {
	v := ObjectValue(map[string]Value{
		"statusCode": IntValue(200),
		"ratio":      FloatValue(0.25),
		"body":       StringValue("ok"),
		"tags":       ArrayValue(StringValue("a"), BoolValue(true), NullValue()),
	})

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"statusCode":200,"ratio":0.25,"body":"ok","tags":["a",true,null]}`, string(data))

	var back Value
	require.NoError(t, json.Unmarshal(data, &back))
	code, err := back.Field("statusCode")
	require.NoError(t, err)
	assert.Equal(t, Int, code.Kind())
}
