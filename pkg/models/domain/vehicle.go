package domain

import "fmt"

type Vehicle struct {
	ID        string
	RegNumber string
	Make      string
	Model     string
	Year      int
}

// DisplayName is the label used for a vehicle across reports and exports.
func (v Vehicle) DisplayName() string {
	return fmt.Sprintf("%s (%s %s)", v.RegNumber, v.Make, v.Model)
}
