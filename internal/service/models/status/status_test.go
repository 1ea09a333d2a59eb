package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollosrrj/pos/internal/service/models/status"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []status.Status{status.StatusActive, status.StatusDelivered, status.StatusCredit} {
		got, err := status.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := status.ParseStatus("PAGADO")
	assert.ErrorIs(t, err, status.ErrInvalidStatus)
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    status.Status
		to      status.Status
		wantErr bool
	}{
		{"active to delivered", status.StatusActive, status.StatusDelivered, false},
		{"active to credit", status.StatusActive, status.StatusCredit, false},
		{"credit to delivered", status.StatusCredit, status.StatusDelivered, false},
		{"delivered is terminal", status.StatusDelivered, status.StatusCredit, true},
		{"delivered cannot reopen", status.StatusDelivered, status.StatusActive, true},
		{"credit cannot reopen", status.StatusCredit, status.StatusActive, true},
		{"no self transition", status.StatusActive, status.StatusActive, true},
		{"credit to credit rejected", status.StatusCredit, status.StatusCredit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := status.Transition(tt.from, tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, status.ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
