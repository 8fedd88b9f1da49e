package options

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment variable names for the Azure OpenAI deployment. Presence of
// these is the only validation performed; formats are not checked.
const (
	EnvAzureEndpoint   = "AZURE_OPENAI_ENDPOINT"
	EnvAzureAPIKey     = "AZURE_OPENAI_API_KEY"
	EnvAzureDeployment = "AZURE_OPENAI_DEPLOYMENT_NAME"
	EnvAzureAPIVersion = "AZURE_OPENAI_API_VERSION"
)

// DefaultAPIVersion is used when AZURE_OPENAI_API_VERSION is not set.
const DefaultAPIVersion = "2024-02-15-preview"

// AzureOptions holds the connection settings for the Azure OpenAI deployment
// that serves the agent's model calls.
type AzureOptions struct {
	Endpoint   string `json:"endpoint"    mapstructure:"endpoint"`
	APIKey     string `json:"-"           mapstructure:"api-key"`
	Deployment string `json:"deployment"  mapstructure:"deployment"`
	APIVersion string `json:"api-version" mapstructure:"api-version"`
}

// NewAzureOptions creates an AzureOptions instance sourced from the
// environment.
func NewAzureOptions(v *viper.Viper) *AzureOptions {
	_ = v.BindEnv("azure.endpoint", EnvAzureEndpoint)
	_ = v.BindEnv("azure.api-key", EnvAzureAPIKey)
	_ = v.BindEnv("azure.deployment", EnvAzureDeployment)
	_ = v.BindEnv("azure.api-version", EnvAzureAPIVersion)
	v.SetDefault("azure.api-version", DefaultAPIVersion)

	return &AzureOptions{
		Endpoint:   v.GetString("azure.endpoint"),
		APIKey:     v.GetString("azure.api-key"),
		Deployment: v.GetString("azure.deployment"),
		APIVersion: v.GetString("azure.api-version"),
	}
}

// Missing returns the environment variable names of every required value that
// is absent. API version is not required because it has a default.
func (o *AzureOptions) Missing() []string {
	var missing []string
	if o.Endpoint == "" {
		missing = append(missing, EnvAzureEndpoint)
	}
	if o.APIKey == "" {
		missing = append(missing, EnvAzureAPIKey)
	}
	if o.Deployment == "" {
		missing = append(missing, EnvAzureDeployment)
	}
	return missing
}

// Validate checks the AzureOptions, returning one error per missing value.
func (o *AzureOptions) Validate() []error {
	var errs []error
	for _, key := range o.Missing() {
		errs = append(errs, fmt.Errorf("%s is not set", key))
	}
	return errs
}

// AddFlags adds the AzureOptions flags to the given flag set. Flags override
// environment values.
func (o *AzureOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Endpoint, "azure.endpoint", o.Endpoint, "Base URL of the Azure OpenAI resource.")
	fs.StringVar(&o.APIKey, "azure.api-key", o.APIKey, "API key attached to every model request.")
	fs.StringVar(&o.Deployment, "azure.deployment", o.Deployment, "Azure OpenAI deployment (model) name.")
	fs.StringVar(&o.APIVersion, "azure.api-version", o.APIVersion, "API version query parameter for model requests.")
}
