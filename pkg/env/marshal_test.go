package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flag bool

type sample struct {
	URL      string        `env:"MESSAGES_API_URL"`
	Timeout  time.Duration `env:"MESSAGES_TIMEOUT"`
	Retries  int           `env:"MESSAGES_RETRIES"`
	Enabled  flag          `env:"USE_LLM"`
	Key      string        `env:"OPENAI_API_KEY,required"`
	Untagged string
	hidden   string `env:"HIDDEN"`
}

func TestMarshalEnv(t *testing.T) {
	c := &sample{
		URL:      "http://localhost:9000/messages/",
		Timeout:  10 * time.Second,
		Retries:  2,
		Enabled:  true,
		Untagged: "ignored",
		hidden:   "ignored",
	}

	got, err := MarshalEnv(c)

	require.NoError(t, err)
	assert.Equal(t, "MESSAGES_API_URL=http://localhost:9000/messages/\nMESSAGES_TIMEOUT=10s\nMESSAGES_RETRIES=2\nUSE_LLM=true\n", got)
}

func TestMarshalEnv_Empty(t *testing.T) {
	got, err := MarshalEnv(&sample{})

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestMarshalEnv_RequiresStructPointer(t *testing.T) {
	_, err := MarshalEnv(sample{})
	assert.Error(t, err)
}
