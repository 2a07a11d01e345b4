package fixture

// ConfigurationError reports input a generator cannot work with, such as an
// airport table with no entries.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}
