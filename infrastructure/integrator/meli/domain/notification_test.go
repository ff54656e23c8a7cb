package melidomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotification(t *testing.T) {
	tests := []struct {
		name            string
		payload         string
		expectedOrderID int64
		expectedUserID  int64
		isOrder         bool
	}{
		{
			name:            "Id numérico no payload",
			payload:         `{"topic":"orders","id":123,"user_id":999}`,
			expectedOrderID: 123,
			expectedUserID:  999,
			isOrder:         true,
		},
		{
			name:            "Id em texto no payload",
			payload:         `{"topic":"orders","id":"456","user_id":"999"}`,
			expectedOrderID: 456,
			expectedUserID:  999,
			isOrder:         true,
		},
		{
			name:            "Id extraído do resource",
			payload:         `{"topic":"orders","resource":"/orders/2000003456","user_id":1}`,
			expectedOrderID: 2000003456,
			expectedUserID:  1,
			isOrder:         true,
		},
		{
			name:            "Id zero usa o resource",
			payload:         `{"topic":"orders","id":0,"resource":"/orders/77/"}`,
			expectedOrderID: 77,
			isOrder:         true,
		},
		{
			name:            "Resource sem número",
			payload:         `{"topic":"orders","resource":"/orders/abc"}`,
			expectedOrderID: 0,
			isOrder:         true,
		},
		{
			name:            "Outro tópico",
			payload:         `{"topic":"items","resource":"/items/MLA1"}`,
			expectedOrderID: 0,
			isOrder:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notification, err := ParseNotification([]byte(tt.payload))
			require.NoError(t, err)

			assert.Equal(t, tt.expectedOrderID, notification.OrderID())
			assert.Equal(t, tt.expectedUserID, notification.UserID)
			assert.Equal(t, tt.isOrder, notification.IsOrder())
		})
	}
}

func TestParseNotification_InvalidJSON(t *testing.T) {
	_, err := ParseNotification([]byte(`{topic:`))
	assert.Error(t, err)
}
