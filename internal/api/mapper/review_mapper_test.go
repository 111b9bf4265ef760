package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjbconsultora/website/internal/service"
)

func TestToReviewResponses(t *testing.T) {
	got := ToReviewResponses([]service.Review{{Name: "María", Date: "2024-03-01", Rating: 5, Text: "Excelente"}})
	require.Len(t, got, 1)
	assert.Equal(t, "María", got[0].Name)
	assert.Equal(t, 5, got[0].Rating)

	empty, err := json.Marshal(ToReviewResponses(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))
}
