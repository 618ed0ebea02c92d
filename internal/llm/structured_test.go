package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleOutput struct {
	Summary  string   `json:"summary"`
	Missions []string `json:"missions"`
}

func TestExtractJSON_BareObject(t *testing.T) {
	out, err := ExtractJSON[sampleOutput](`{"summary":"s","missions":["a","b"]}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "s", out.Summary)
	assert.Equal(t, []string{"a", "b"}, out.Missions)
}

func TestExtractJSON_CodeFenced(t *testing.T) {
	raw := "```json\n{\"summary\":\"s\",\"missions\":[]}\n```"
	out, err := ExtractJSON[sampleOutput](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "s", out.Summary)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Here is the result: {"summary":"s","missions":["x"]} hope that helps!`
	out, err := ExtractJSON[sampleOutput](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, out.Missions)
}

func TestExtractJSON_NestedBracesInsideStrings(t *testing.T) {
	raw := `{"summary":"use { and } freely","missions":["say \"hi\""]}`
	out, err := ExtractJSON[sampleOutput](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "use { and } freely", out.Summary)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[sampleOutput]("no json here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_WrongFieldType(t *testing.T) {
	_, err := ExtractJSON[sampleOutput](`{"summary":"s","missions":[1,2]}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(o sampleOutput) error {
		if o.Summary == "" {
			return fmt.Errorf("summary required")
		}
		return nil
	}
	_, err := ExtractJSON[sampleOutput](`{"missions":[]}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
