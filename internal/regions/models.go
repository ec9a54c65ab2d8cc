package regions

import (
	"time"

	"github.com/google/uuid"
)

// District groups cities for the region picker
type District struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// City is a bookable location; shows are scoped to a city
type City struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	DistrictID uuid.UUID `json:"district_id" gorm:"type:uuid;not null;index"`
	Name       string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_district_city"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	District *District `json:"district,omitempty" gorm:"foreignKey:DistrictID"`
}

func (District) TableName() string {
	return "districts"
}

func (City) TableName() string {
	return "cities"
}

// CityResponse is the public listing shape
type CityResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	District string `json:"district"`
}

func (c *City) ToResponse() CityResponse {
	resp := CityResponse{
		ID:   c.ID.String(),
		Name: c.Name,
	}
	if c.District != nil {
		resp.District = c.District.Name
	}
	return resp
}
