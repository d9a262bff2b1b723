package types

// Assistant is a voice assistant record in the directory
type Assistant struct {
	UUID         string   `json:"uuid"`
	Name         string   `json:"name"`
	SystemPrompt string   `json:"system_prompt"`
	VoiceID      *string  `json:"voice_id"`
	EnabledTools []string `json:"enabled_tools"`
}

// NormalizeTools makes sure EnabledTools serializes as [] rather than null
func (a *Assistant) NormalizeTools() {
	if a.EnabledTools == nil {
		a.EnabledTools = []string{}
	}
}
