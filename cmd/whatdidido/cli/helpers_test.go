package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSensitiveKey(t *testing.T) {
	assert.True(t, isSensitiveKey("JIRA_API_KEY"))
	assert.True(t, isSensitiveKey("GITHUB_TOKEN"))
	assert.True(t, isSensitiveKey("db_password"))
	assert.False(t, isSensitiveKey("JIRA_URL"))
	assert.False(t, isSensitiveKey("JIRA_USERNAME"))
}

func TestRedactValue(t *testing.T) {
	assert.Equal(t, "", redactValue(""))
	assert.Equal(t, "****", redactValue("short"))
	assert.Equal(t, "****", redactValue("12345678"))
	assert.Equal(t, "ghp_...wxyz", redactValue("ghp_abcdefghijklmnopqrstuvwxyz"))
}
