package model

// FieldMap names the JSON keys the extractor reads from each entry. The CCP
// export format is externally controlled and has drifted across releases, so
// the keys are configuration, not literals baked into the extraction logic.
type FieldMap struct {
	Time            string `mapstructure:"time"`
	Level           string `mapstructure:"level"`
	Component       string `mapstructure:"component"`
	Text            string `mapstructure:"text"`
	Line            string `mapstructure:"line"`
	ClientTimestamp string `mapstructure:"client_timestamp"`
	ServerTimestamp string `mapstructure:"server_timestamp"`
}

// DefaultFieldMap returns the key names used by current CCP log exports.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		Time:            "time",
		Level:           "level",
		Component:       "component",
		Text:            "text",
		Line:            "line",
		ClientTimestamp: "clientTimestamp",
		ServerTimestamp: "serverTimestamp",
	}
}
