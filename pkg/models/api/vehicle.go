package api

type Vehicle struct {
	ID        string `json:"id"`
	RegNumber string `json:"regNumber"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
}

type CreateVehicleRequest struct {
	RegNumber string `json:"regNumber"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
}
