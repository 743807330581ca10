package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Lagam and task ids embed a creation timestamp used only for the
// default sort order; the suffix is never parsed back.

func NewLagamID() string {
	return fmt.Sprintf("LGM-%d", time.Now().UnixMilli())
}

func NewTaskID() string {
	return fmt.Sprintf("TSK-%d", time.Now().UnixMilli())
}

func NewUserID() string {
	return uuid.NewString()
}

func NewTeamID() string {
	return uuid.NewString()
}
