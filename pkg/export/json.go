package export

import (
	"encoding/json"
	"fmt"
)

// JSONBytes renders the fleet report as an indented JSON document.
func (r FleetReport) JSONBytes() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal fleet report: %w", err)
	}
	return data, nil
}
