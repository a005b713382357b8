package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTaskRequest_UserAssigned(t *testing.T) {
	tests := []struct {
		body    string
		wantSet bool
		wantID  *int64
	}{
		{`{"title":"x"}`, false, nil},
		{`{"user_assigned":null}`, true, nil},
		{`{"user_assigned":7}`, true, func() *int64 { id := int64(7); return &id }()},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req UpdateTaskRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.wantSet, req.UserAssigned.Set)
			assert.Equal(t, tt.wantID, req.UserAssigned.ID)
		})
	}

	var req UpdateTaskRequest
	assert.Error(t, json.Unmarshal([]byte(`{"user_assigned":"seven"}`), &req))
}
