package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSuite(t *testing.T) {
	suite := Default()
	require.Equal(t, []string{"add", "multiply"}, suite.Names())

	expected := map[string][]string{
		"add":      {"add(2, 3) should equal 5", "add(-1, 1) should equal 0"},
		"multiply": {"multiply(2, 3) should equal 6", "multiply(5, 0) should equal 0"},
	}

	for _, group := range suite {
		var messages []string
		for _, c := range group.Cases {
			messages = append(messages, c.Message)
			assert.Equal(t, c.Expected, c.Eval(), c.Message)
		}
		assert.Equal(t, expected[group.Name], messages)
	}
}

func TestDefaultReturnsFreshSuite(t *testing.T) {
	first := Default()
	first[0].Cases[0].Expected = 42

	second := Default()
	assert.Equal(t, float64(5), second[0].Cases[0].Expected)
}

func TestSelect(t *testing.T) {
	testCases := []struct {
		name        string
		input       []string
		expected    []string
		expectedErr string
	}{
		{"no names selects all", nil, []string{"add", "multiply"}, ""},
		{"single group", []string{"multiply"}, []string{"multiply"}, ""},
		{"keeps suite order", []string{"multiply", "add"}, []string{"add", "multiply"}, ""},
		{"duplicate names", []string{"add", "add"}, []string{"add"}, ""},
		{"unknown group", []string{"subtract"}, nil, "Unknown check group \"subtract\""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			selected, err := Default().Select(tc.input)
			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				assert.IsType(t, UnknownGroup{}, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, selected.Names())
		})
	}
}
