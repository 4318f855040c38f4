package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindrep/internal/service"
	"github.com/limbo/mindrep/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	userID  = uuid.New()
	otherID = uuid.New()
)

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func ptr[T any](v T) *T {
	return &v
}

func user(aiConsent, wearableConsent bool) *entity.User {
	return &entity.User{
		ID:              userID,
		Name:            "test_name",
		PasswordHash:    "pass_hash",
		AIConsent:       aiConsent,
		WearableConsent: wearableConsent,
	}
}
