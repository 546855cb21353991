// Package mockdata builds the in-memory dataset served by cmd/mockapi. The
// shape mirrors the production schema closely enough that a frontend cannot
// tell the two backends apart: one heavy user, one medium user, one with no
// activity at all.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/supportclint/call-logs-backend/internal/models"
)

// DevPassword is the password every seeded user logs in with.
const DevPassword = "password"

type Dataset struct {
	Users          []models.User
	CallLogs       map[string][]models.CallLog
	ErrorLogs      map[string][]models.ErrorLog
	MessageLogs    map[string][]models.MessageLog
	CallRecordings map[string][]models.CallRecording
}

// Generate seeds the dataset once per process. passwordHash is shared by all
// seeded users so callers can hash DevPassword a single time.
func Generate(rng *rand.Rand, passwordHash []byte) *Dataset {
	now := time.Now().UTC()

	users := []models.User{
		seedUser("1", "Admin User", "admin@example.com", models.UserRoleAdmin, "123-456-7890", "123 Admin St, City, Country", now.Add(-96*time.Hour), passwordHash),
		seedUser("2", "Alice Johnson", "alice@example.com", models.UserRoleUser, "234-567-8901", "456 User Ave, City, Country", now.Add(-72*time.Hour), passwordHash),
		seedUser("3", "Bob Smith", "bob@example.com", models.UserRoleUser, "345-678-9012", "789 Member Rd, City, Country", now.Add(-48*time.Hour), passwordHash),
		seedUser("4", "Charlie Brown", "charlie@example.com", models.UserRoleUser, "456-789-0123", "101 Guest Ln, City, Country", now.Add(-24*time.Hour), passwordHash),
	}

	return &Dataset{
		Users: users,
		CallLogs: map[string][]models.CallLog{
			"2": callLogs(rng, "cl", "2", 25, 24*time.Hour, now),
			"3": callLogs(rng, "cl_bob_", "3", 15, 12*time.Hour, now),
			"4": {},
		},
		ErrorLogs: map[string][]models.ErrorLog{
			"2": errorLogs("2", 5, now),
			"3": {},
			"4": {},
		},
		MessageLogs: map[string][]models.MessageLog{
			"2": messageLogs(rng, "2", 18, now),
			"3": {},
			"4": {},
		},
		CallRecordings: map[string][]models.CallRecording{
			"2": callRecordings(rng, "2", 8, now),
			"3": {},
			"4": {},
		},
	}
}

func seedUser(id, name, email string, role models.UserRole, phone, address string, createdAt time.Time, passwordHash []byte) models.User {
	return models.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Phone:        phone,
		Address:      address,
		CreatedAt:    createdAt,
	}
}

func callLogs(rng *rand.Rand, prefix, userID string, n int, step time.Duration, now time.Time) []models.CallLog {
	statuses := []models.CallStatus{
		models.CallStatusCompleted,
		models.CallStatusBusy,
		models.CallStatusNoAnswer,
		models.CallStatusFailed,
	}
	directions := []string{"outbound", "inbound"}

	logs := make([]models.CallLog, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, models.CallLog{
			ID:        fmt.Sprintf("%s%d", prefix, i),
			UserID:    userID,
			Date:      now.Add(-time.Duration(i) * step),
			From:      phoneNumber(rng),
			To:        phoneNumber(rng),
			Duration:  rng.Intn(300),
			Status:    statuses[i%len(statuses)],
			Cost:      rng.Float64() * 2,
			Direction: directions[i%len(directions)],
			CallType:  "voice",
		})
	}
	return logs
}

func errorLogs(userID string, n int, now time.Time) []models.ErrorLog {
	logs := make([]models.ErrorLog, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, models.ErrorLog{
			ID:      fmt.Sprintf("el%d", i),
			UserID:  userID,
			Date:    now.Add(-time.Duration(i) * 48 * time.Hour),
			Code:    fmt.Sprintf("E%d", 400+i),
			Message: fmt.Sprintf("Error message number %d", i),
		})
	}
	return logs
}

func messageLogs(rng *rand.Rand, userID string, n int, now time.Time) []models.MessageLog {
	directions := []models.MessageDirection{models.MessageInbound, models.MessageOutbound}
	statuses := []models.MessageStatus{
		models.MessageStatusSent,
		models.MessageStatusDelivered,
		models.MessageStatusReceived,
		models.MessageStatusFailed,
	}

	logs := make([]models.MessageLog, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, models.MessageLog{
			ID:        fmt.Sprintf("ml%d", i),
			UserID:    userID,
			Date:      now.Add(-time.Duration(i) * 30 * time.Minute),
			Direction: directions[i%len(directions)],
			From:      phoneNumber(rng),
			To:        phoneNumber(rng),
			Body:      fmt.Sprintf("This is a sample message %d.", i),
			Status:    statuses[i%len(statuses)],
		})
	}
	return logs
}

func callRecordings(rng *rand.Rand, userID string, n int, now time.Time) []models.CallRecording {
	recordings := make([]models.CallRecording, 0, n)
	for i := 0; i < n; i++ {
		recordings = append(recordings, models.CallRecording{
			ID:       fmt.Sprintf("cr%d", i),
			UserID:   userID,
			CallSID:  callSID(rng),
			Date:     now.Add(-time.Duration(i) * 72 * time.Hour),
			Duration: rng.Intn(120),
			URL:      "#",
		})
	}
	return recordings
}

func phoneNumber(rng *rand.Rand) string {
	return fmt.Sprintf("+1555%d", 1000000+rng.Intn(9000000))
}

func callSID(rng *rand.Rand) string {
	const hex = "0123456789abcdef"
	b := make([]byte, 32)
	for i := range b {
		b[i] = hex[rng.Intn(len(hex))]
	}
	return "CA" + string(b)
}
