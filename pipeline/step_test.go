package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse_PreservesParameterOrder(t *testing.T) {
	data := []byte(`
pipeline:
  - processor: GaussianFilter
    context_keyword: blurred
    parameters:
      zeta: last
      alpha: first
      mid: between
`)

	steps, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, steps, 1)

	step := steps[0]
	assert.Equal(t, "GaussianFilter", step.Processor)
	assert.Equal(t, "blurred", step.ContextKeyword)

	require.NotNil(t, step.Parameters)
	assert.Equal(t, []Pair{
		{Key: "zeta", Value: "last"},
		{Key: "alpha", Value: "first"},
		{Key: "mid", Value: "between"},
	}, step.Parameters.Pairs())
}

func TestParse_AbsentParameters(t *testing.T) {
	steps, err := Parse([]byte("pipeline:\n  - processor: ImageLoader\n"))
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Nil(t, steps[0].Parameters)
	assert.False(t, steps[0].HasMalformedParams())
}

func TestParse_NonMappingParametersMarkedMalformed(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "scalar",
			yaml: "pipeline:\n  - processor: X\n    parameters: not-a-mapping\n",
		},
		{
			name: "sequence",
			yaml: "pipeline:\n  - processor: X\n    parameters:\n      - a\n      - b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			require.Len(t, steps, 1)
			assert.True(t, steps[0].HasMalformedParams())
		})
	}
}

func TestParse_NonScalarParameterValueRendersAsYAML(t *testing.T) {
	data := []byte(`
pipeline:
  - processor: X
    parameters:
      window: [3, 3]
`)

	steps, err := Parse(data)
	require.NoError(t, err)
	require.NotNil(t, steps[0].Parameters)

	pairs := steps[0].Parameters.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, "window", pairs[0].Key)
	assert.Equal(t, "[3, 3]", pairs[0].Value)
}

func TestStep_String(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want string
	}{
		{
			name: "processor only",
			step: Step{Processor: "ImageLoader"},
			want: "{processor: ImageLoader}",
		},
		{
			name: "missing processor keeps remaining fields visible",
			step: Step{ContextKeyword: "blurred"},
			want: "{context_keyword: blurred}",
		},
		{
			name: "with parameters",
			step: Step{
				Processor:  "GaussianFilter",
				Parameters: NewParams(Pair{Key: "sigma", Value: "2.0"}),
			},
			want: "{processor: GaussianFilter, parameters: {sigma: 2.0}}",
		},
		{
			name: "malformed parameters",
			step: Step{Processor: "X", Parameters: MalformedParams()},
			want: "{processor: X, parameters: <not a mapping>}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.step.String())
		})
	}
}

func TestParams_MarshalRoundTrip(t *testing.T) {
	params := NewParams(
		Pair{Key: "b", Value: "two"},
		Pair{Key: "a", Value: "one"},
	)

	data, err := yaml.Marshal(params)
	require.NoError(t, err)

	var decoded Params
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, params.Pairs(), decoded.Pairs())
}
