package alerter

// GenericAlertPayload универсальный алерт в свободной форме
type GenericAlertPayload struct {
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
}
