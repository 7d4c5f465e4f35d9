package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidationError(t *testing.T) {
	type testStruct struct {
		RequiredField string `validate:"required"`
		HostField     string `validate:"listen_host"`
		PortField     int    `validate:"gte=1,lte=65535"`
		TimeoutField  int    `validate:"gte=0"`
		OddField      int    `validate:"eq=3"`
	}

	valid := func() *testStruct {
		return &testStruct{
			RequiredField: "foo",
			HostField:     "127.0.0.1",
			PortField:     5678,
			TimeoutField:  0,
			OddField:      3,
		}
	}

	testCases := []struct {
		name                string
		mutate              func(*testStruct)
		expectedFieldErrors map[string]interface{}
	}{
		{
			name:                "required",
			mutate:              func(s *testStruct) { s.RequiredField = "" },
			expectedFieldErrors: map[string]interface{}{"requiredField": "This field is required"},
		},
		{
			name:                "listen_host",
			mutate:              func(s *testStruct) { s.HostField = "not a host!" },
			expectedFieldErrors: map[string]interface{}{"hostField": `Invalid host "not a host!". Expected an IP address or a hostname`},
		},
		{
			name:                "lte",
			mutate:              func(s *testStruct) { s.PortField = 70000 },
			expectedFieldErrors: map[string]interface{}{"portField": "Should be less than or equal 65535"},
		},
		{
			name:                "gte",
			mutate:              func(s *testStruct) { s.TimeoutField = -1 },
			expectedFieldErrors: map[string]interface{}{"timeoutField": "Should be greater than or equal 0"},
		},
		{
			name:                "unknown_tag",
			mutate:              func(s *testStruct) { s.OddField = 4 },
			expectedFieldErrors: map[string]interface{}{"oddField": "Invalid value"},
		},
	}

	val := NewValidator()
	require.NoError(t, val.Struct(valid()))

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stc := valid()
			tc.mutate(stc)
			err := val.Struct(stc)
			require.Error(t, err)
			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok)
			assert.Equal(t, tc.expectedFieldErrors, ParseValidationError(vErrs))
		})
	}
}

func TestListenHost(t *testing.T) {
	type hostStruct struct {
		Host string `validate:"listen_host"`
	}

	val := NewValidator()
	for _, host := range []string{"127.0.0.1", "0.0.0.0", "::1", "localhost", "my-host.internal"} {
		assert.NoError(t, val.Struct(hostStruct{Host: host}), host)
	}
	for _, host := range []string{"", "http://localhost", "127.0.0.1:5678", "under_score host"} {
		assert.Error(t, val.Struct(hostStruct{Host: host}), host)
	}
}

func TestGetFieldName(t *testing.T) {
	type testStructNested struct {
		Name     string             `validate:"required"`
		Children []testStructNested `validate:"dive"`
	}

	type testStruct struct {
		Host        string             `validate:"listen_host"`
		NestedField []testStructNested `validate:"required,dive"`
	}

	stc := &testStruct{
		Host: "",
		NestedField: []testStructNested{
			{
				Name: "first",
				Children: []testStructNested{
					{
						Name:     "",
						Children: []testStructNested{},
					},
				},
			},
		},
	}
	val := NewValidator()
	err := val.Struct(stc)
	require.Error(t, err)

	vErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, vErrs, 2)

	assert.Equal(t, "host", getFieldName(vErrs[0]))
	assert.Equal(t, "children[0].name", getFieldName(vErrs[1]))
}

func TestLCFist(t *testing.T) {
	got := lcFirst("Address")
	assert.Equal(t, "address", got)
	got = lcFirst("PublicKey")
	assert.Equal(t, "publicKey", got)
	got = lcFirst("A")
	assert.Equal(t, "a", got)
	got = lcFirst("")
	assert.Equal(t, "", got)
}
