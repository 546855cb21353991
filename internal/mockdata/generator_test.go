package mockdata

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *Dataset {
	return Generate(rand.New(rand.NewSource(7)), []byte("hash"))
}

func TestGenerateSeedsFourUsers(t *testing.T) {
	data := testDataset()

	require.Len(t, data.Users, 4)
	assert.Equal(t, "admin@example.com", data.Users[0].Email)
	for _, user := range data.Users {
		assert.NotEmpty(t, user.Phone)
		assert.NotEmpty(t, user.Address)
		assert.Equal(t, []byte("hash"), user.PasswordHash)
	}

	// List ordering relies on distinct creation times.
	for i := 1; i < len(data.Users); i++ {
		assert.True(t, data.Users[i].CreatedAt.After(data.Users[i-1].CreatedAt))
	}
}

func TestGenerateVolumes(t *testing.T) {
	data := testDataset()

	assert.Len(t, data.CallLogs["2"], 25)
	assert.Len(t, data.CallLogs["3"], 15)
	assert.Empty(t, data.CallLogs["4"])

	assert.Len(t, data.ErrorLogs["2"], 5)
	assert.Len(t, data.MessageLogs["2"], 18)
	assert.Len(t, data.CallRecordings["2"], 8)
}

func TestGenerateDatesDescending(t *testing.T) {
	data := testDataset()

	logs := data.CallLogs["2"]
	for i := 1; i < len(logs); i++ {
		assert.True(t, logs[i].Date.Before(logs[i-1].Date))
	}
}

func TestGenerateFieldFormats(t *testing.T) {
	data := testDataset()

	phone := regexp.MustCompile(`^\+1555\d{7}$`)
	for _, l := range data.CallLogs["2"] {
		assert.Regexp(t, phone, l.From)
		assert.Regexp(t, phone, l.To)
		assert.Equal(t, "2", l.UserID)
	}

	sid := regexp.MustCompile(`^CA[0-9a-f]{32}$`)
	for _, r := range data.CallRecordings["2"] {
		assert.Regexp(t, sid, r.CallSID)
	}
}
