package model

// Notification is a message addressed to one user. CreatedAt is preformatted by the database.
type Notification struct {
	ID        string           `json:"id"`
	ToUser    string           `json:"to_user"`
	CreatedAt string           `json:"created_at"`
	Data      NotificationData `json:"data"`
}

type NotificationData struct {
	Owner       string `json:"owner"`
	CarName     string `json:"car_name"`
	TankSize    string `json:"tank_size"`
	Consumption string `json:"consumption"`
}
