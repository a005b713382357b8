package model

// Room is a bookable hotel room
type Room struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	SquareMeters  float64  `json:"square_meters"`
	PricePerNight float64  `json:"price_per_night"`
	ImagesList    []string `json:"images_list"`
}

type CreateRoomRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	SquareMeters  float64  `json:"square_meters" binding:"required"`
	PricePerNight float64  `json:"price_per_night" binding:"required"`
	ImagesList    []string `json:"images_list"`
}

type UpdateRoomRequest struct {
	Name          *string   `json:"name,omitempty"` // Pointers to allow partial updates
	Description   *string   `json:"description,omitempty"`
	SquareMeters  *float64  `json:"square_meters,omitempty"`
	PricePerNight *float64  `json:"price_per_night,omitempty"`
	ImagesList    *[]string `json:"images_list,omitempty"`
}
