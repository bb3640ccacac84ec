package utils

import (
	"fmt"
	"mentor-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateMentorObjectName builds the bucket object name for a mentor upload,
// e.g. "mentors/42/avatar-<uuid>.png".
func GenerateMentorObjectName(mentorID, kind, extension string) string {
	return fmt.Sprintf(constvars.MinioMentorObjectPathFormat, mentorID, kind, uuid.NewString(), extension)
}
