package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatient_MarshalJSON_DateOfBirth(t *testing.T) {
	dateOfBirth, err := time.Parse(DateOfBirthLayout, "1984-03-12")
	require.NoError(t, err)

	patient := Patient{
		ID:          uuid.New(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: dateOfBirth,
		DoctorID:    uuid.New(),
	}

	raw, err := json.Marshal(patient)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// The stored date round-trips as a plain calendar date, no time component.
	assert.Equal(t, "1984-03-12", decoded["date_of_birth"])
	assert.Equal(t, "Ada", decoded["first_name"])
}

func TestPatient_MarshalJSON_NeverExposesHashFields(t *testing.T) {
	raw, err := json.Marshal(Patient{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for key := range decoded {
		assert.NotContains(t, key, "password")
		assert.NotContains(t, key, "hash")
	}
}
