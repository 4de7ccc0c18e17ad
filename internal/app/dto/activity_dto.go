package dto

type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Activities is keyed by activity name.
type Activities map[string]Activity

type Message struct {
	Message string `json:"message"`
}

type Health struct {
	Status     string `json:"status"`
	Activities int    `json:"activities"`
}
