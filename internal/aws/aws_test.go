package aws

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
)

func env(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func applyOptions(t *testing.T, options []func(*config.LoadOptions) error) config.LoadOptions {
	t.Helper()
	var lo config.LoadOptions
	for _, o := range options {
		assert.NoError(t, o(&lo))
	}
	return lo
}

func Test_CredentialSource(t *testing.T) {
	t.Run("shared profile outside kubernetes", func(t *testing.T) {
		src := credentialSource{
			tokenPath: filepath.Join(t.TempDir(), "missing"),
			getenv:    env(map[string]string{"AWS_PROFILE": "bridge-operator"}),
		}
		assert.False(t, src.inKubernetes())

		lo := applyOptions(t, src.loadOptions("us-east-2"))
		assert.Equal(t, "bridge-operator", lo.SharedConfigProfile)
		assert.Equal(t, "us-east-2", lo.Region)
	})

	t.Run("default profile", func(t *testing.T) {
		src := credentialSource{tokenPath: filepath.Join(t.TempDir(), "missing"), getenv: env(nil)}
		assert.Equal(t, defaultProfile, src.profile())

		lo := applyOptions(t, src.loadOptions(""))
		assert.Equal(t, defaultProfile, lo.SharedConfigProfile)
		assert.Empty(t, lo.Region)
	})

	t.Run("service account token skips the profile", func(t *testing.T) {
		token := filepath.Join(t.TempDir(), "token")
		assert.NoError(t, os.WriteFile(token, []byte("jwt"), 0o600))
		src := credentialSource{
			tokenPath: token,
			getenv:    env(map[string]string{"AWS_PROFILE": "ignored"}),
		}
		assert.True(t, src.inKubernetes())

		lo := applyOptions(t, src.loadOptions("eu-west-1"))
		assert.Empty(t, lo.SharedConfigProfile)
		assert.Equal(t, "eu-west-1", lo.Region)
	})
}
