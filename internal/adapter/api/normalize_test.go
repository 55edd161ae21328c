package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/cineticket/internal/adapter/api"
)

func TestNormalizeBookingID(t *testing.T) {
	cases := map[string]string{
		"top-level _id":      `{"_id":"b1","seats":["A1"]}`,
		"data._id":           `{"success":true,"data":{"_id":"b1"}}`,
		"data.id":            `{"data":{"id":"b1"}}`,
		"booking._id":        `{"booking":{"_id":"b1"}}`,
		"booking.id":         `{"message":"ok","booking":{"id":"b1"}}`,
		"top-level id":       `{"id":"b1"}`,
		"data.booking._id":   `{"data":{"booking":{"_id":"b1"}}}`,
		"_id wins over data": `{"_id":"b1","data":{"_id":"other"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			id, err := api.NormalizeBookingID([]byte(body))
			require.NoError(t, err)
			assert.Equal(t, "b1", id)
		})
	}
}

func TestNormalizeBookingID_Missing(t *testing.T) {
	for _, body := range []string{`{}`, `{"data":null}`, `{"data":"b1"}`, `{"_id":42}`} {
		_, err := api.NormalizeBookingID([]byte(body))
		assert.Error(t, err, body)
	}
	_, err := api.NormalizeBookingID([]byte(`not json`))
	assert.Error(t, err)
}
