package command

import (
	"time"

	"github.com/google/uuid"
)

// Command is an inbound command together with its metadata.
// Payload is the command value itself; Name identifies its handler.
type Command struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Payload    any       `json:"payload"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewCommand creates a new Command with auto-generated ID and timestamp.
// The command name is derived from the payload type.
//
// Example:
//
//	cmd := command.NewCommand(CreateUser{Email: "user@example.com"})
//	// cmd.Name == "CreateUser"
func NewCommand(payload any) Command {
	return Command{
		ID:         uuid.New().String(),
		Name:       NameOf(payload),
		Payload:    payload,
		ReceivedAt: time.Now(),
	}
}
