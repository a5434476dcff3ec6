package entities

// ServiceCategory is static catalog reference data, read-only to the lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - guided diagnostic questions embedded as a list attribute
type ServiceCategory struct {
	ID        string               `json:"id"`
	Slug      string               `json:"slug"`
	Name      string               `json:"name"`
	Questions []DiagnosticQuestion `json:"questions,omitempty"`
}

// DiagnosticQuestion guides the rider toward a useful problem description.
type DiagnosticQuestion struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}
