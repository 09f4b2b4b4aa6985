package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/lessonpad/internal/types"
)

func TestStatusCmds(t *testing.T) {
	tests := []struct {
		name     string
		cmd      func(string, ...any) any
		wantType types.MessageType
	}{
		{"error", func(f string, a ...any) any { return ErrorCmd(f, a...)() }, types.MessageTypeError},
		{"success", func(f string, a ...any) any { return SuccessCmd(f, a...)() }, types.MessageTypeSuccess},
		{"info", func(f string, a ...any) any { return InfoCmd(f, a...)() }, types.MessageTypeInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := tt.cmd("copied %d blocks", 3).(types.StatusMsg)
			assert.True(t, ok)
			assert.Equal(t, "copied 3 blocks", msg.Message)
			assert.Equal(t, tt.wantType, msg.Type)
		})
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")
	err := WrapError(base, "insert at %d", 4)

	assert.EqualError(t, err, "insert at 4: boom")
	assert.ErrorIs(t, err, base)
}
