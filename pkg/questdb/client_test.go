package questdb

import (
	"context"
	"testing"

	"github.com/muhammadchandra19/quantstream/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_InvalidConfig(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     -1,
		Database: "qdb",
		Username: "admin",
		Password: "quest",
	}

	client, err := NewClient(context.Background(), cfg)

	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, errors.ErrorCodeEquals(err, errors.QuestDBConnectionError))
}
