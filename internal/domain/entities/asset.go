package entities

// Asset represents a piece of equipment or machinery that procedures are
// written for. Assets live in the registry for the duration of a session;
// documents reference them by ID without owning them.
type Asset struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}
