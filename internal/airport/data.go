package airport

import _ "embed"

//go:embed airports.json
var defaultData []byte

// Default returns the table bundled with the binary.
func Default() (Table, error) {
	return Parse(defaultData)
}
