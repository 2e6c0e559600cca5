package util

import (
	"os"
	"strings"
)

// GetEnvironmentVariables returns the variables starting with prefix, keyed
// by the remainder of their name. BART_API_KEY with prefix "BART_" becomes
// API_KEY.
func GetEnvironmentVariables(prefix string) map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		name, value, found := strings.Cut(variable, "=")
		if !found || !strings.HasPrefix(name, prefix) {
			continue
		}

		environmentVariables[strings.TrimPrefix(name, prefix)] = value
	}

	return environmentVariables
}
