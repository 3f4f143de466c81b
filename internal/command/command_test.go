package command

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithLongFlag(t *testing.T) {
	var out, errOut bytes.Buffer

	err := Run(context.Background(), []string{"message-processor", "--message", "hi"}, &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, "The received message is: 'hi'\n", out.String())
}

func TestRunWithShortFlag(t *testing.T) {
	var out, errOut bytes.Buffer

	err := Run(context.Background(), []string{"message-processor", "-m", "it's \"quoted\""}, &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, "The received message is: 'it's \"quoted\"'\n", out.String())
}

func TestRunWithEmptyMessage(t *testing.T) {
	var out, errOut bytes.Buffer

	err := Run(context.Background(), []string{"message-processor", "--message="}, &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, "The received message is: ''\n", out.String())
}

func TestRunWithoutMessageFails(t *testing.T) {
	var out, errOut bytes.Buffer

	err := Run(context.Background(), []string{"message-processor"}, &out, &errOut)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "message")
	assert.NotContains(t, out.String(), "The received message is")
}
