package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("TEST_TIMEZONE", "Australia/Sydney")
	t.Setenv("TEST_DBENGINE", "sqlite3")
	t.Setenv("TEST_ADMINEMAIL", " Head@School.test ")

	conf := NewConfig()

	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.Equal(t, "Australia/Sydney", conf.Calendar.Timezone)
	assert.Equal(t, "sqlite3", conf.Database.Engine)
	assert.Equal(t, "head@school.test", conf.AdminEmail)

	// defaults
	assert.Equal(t, ":8000", conf.Server.Address)
	assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
	assert.Equal(t, "localhost:5432", conf.Database.Address())
	assert.Equal(t, "House Points", conf.Mail.DefaultFrom.Name)
}

func TestNewConfig_DefaultTimezone(t *testing.T) {
	t.Setenv("ENV", "")

	conf := NewConfig()

	assert.Equal(t, "DEV", conf.Env)
	assert.False(t, conf.TestMode)
	assert.Equal(t, "Europe/London", conf.Calendar.Timezone)
}
