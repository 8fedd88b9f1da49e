package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAzureOptionsMissingEnumeratesEveryKey(t *testing.T) {
	o := &AzureOptions{}

	missing := o.Missing()
	assert.Equal(t, []string{
		EnvAzureEndpoint,
		EnvAzureAPIKey,
		EnvAzureDeployment,
	}, missing)
}

func TestAzureOptionsMissingPartial(t *testing.T) {
	o := &AzureOptions{
		Endpoint:   "https://example.openai.azure.com",
		Deployment: "gpt-4o",
	}

	assert.Equal(t, []string{EnvAzureAPIKey}, o.Missing())
}

func TestAzureOptionsValidateReportsAllErrors(t *testing.T) {
	o := &AzureOptions{}

	errs := o.Validate()
	require.Len(t, errs, 3)
	assert.ErrorContains(t, errs[0], EnvAzureEndpoint)
	assert.ErrorContains(t, errs[1], EnvAzureAPIKey)
	assert.ErrorContains(t, errs[2], EnvAzureDeployment)
}

func TestAzureOptionsComplete(t *testing.T) {
	o := &AzureOptions{
		Endpoint:   "https://example.openai.azure.com",
		APIKey:     "key",
		Deployment: "gpt-4o",
		APIVersion: DefaultAPIVersion,
	}

	assert.Empty(t, o.Missing())
	assert.Empty(t, o.Validate())
}

func TestNewOptionsDefaults(t *testing.T) {
	o := NewOptions()

	assert.Equal(t, DefaultMCPCommand, o.MCPOptions.Command)
	assert.Equal(t, 8000, o.ServingOptions.BindPort)
}

func TestMCPOptionsValidate(t *testing.T) {
	o := &MCPOptions{}

	errs := o.Validate()
	assert.Len(t, errs, 2)
}
