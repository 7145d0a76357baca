package entity

// MessageKind is the discriminator of a message variant.
type MessageKind string

const (
	KindSetGlobalDarkMode   MessageKind = "setGlobalDarkMode"
	KindToggleDarkMode      MessageKind = "toggleDarkMode"
	KindSettingsUpdated     MessageKind = "settingsUpdated"
	KindContentScriptLoaded MessageKind = "contentScriptLoaded"
)

// Message is one of the variants exchanged between surfaces.
type Message interface {
	Kind() MessageKind
}

// SetGlobalDarkMode asks the background to persist and broadcast a new global state.
// An empty Intensity means DefaultIntensity.
type SetGlobalDarkMode struct {
	Enabled   bool      `json:"enabled"`
	Intensity Intensity `json:"intensity,omitempty"`
}

func (SetGlobalDarkMode) Kind() MessageKind { return KindSetGlobalDarkMode }

// ToggleDarkMode tells a page to apply or remove its dark style.
type ToggleDarkMode struct {
	Enabled bool `json:"enabled"`
}

func (ToggleDarkMode) Kind() MessageKind { return KindToggleDarkMode }

// SettingsUpdated notifies the background that the options page saved settings.
type SettingsUpdated struct {
	Settings map[SettingKey]any `json:"settings"`
}

func (SettingsUpdated) Kind() MessageKind { return KindSettingsUpdated }

// ContentScriptLoaded is sent by a page agent once it is attached.
type ContentScriptLoaded struct {
	URL string `json:"url"`
}

func (ContentScriptLoaded) Kind() MessageKind { return KindContentScriptLoaded }

// Response is the reply to a request/response message.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK builds a successful response.
func OK(message string) *Response {
	return &Response{Success: true, Message: message}
}

// Fail builds a failed response.
func Fail(reason string) *Response {
	return &Response{Success: false, Error: reason}
}
