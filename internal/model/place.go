package model

// Place is a rental listed by a User in a City.
//
// AmenityIDs mirrors the place_amenity link table of the relational backend;
// the file backend stores it inline. It is serialized as "amenities".
type Place struct {
	BaseModel
	CityID         string   `json:"city_id" db:"city_id"`
	UserID         string   `json:"user_id" db:"user_id"`
	Name           string   `json:"name" db:"name"`
	Description    string   `json:"description" db:"description"`
	NumberRooms    int      `json:"number_rooms" db:"number_rooms"`
	NumberBathroom int      `json:"number_bathrooms" db:"number_bathrooms"`
	MaxGuest       int      `json:"max_guest" db:"max_guest"`
	PriceByNight   int      `json:"price_by_night" db:"price_by_night"`
	Latitude       float64  `json:"latitude" db:"latitude"`
	Longitude      float64  `json:"longitude" db:"longitude"`
	AmenityIDs     []string `json:"amenities" db:"-"`
}

func (p *Place) Kind() Kind { return KindPlace }

func (p *Place) References() []Ref {
	return []Ref{
		{Kind: KindCity, ID: p.CityID},
		{Kind: KindUser, ID: p.UserID},
	}
}

func (p *Place) SetField(key string, value any) (err error) {
	switch key {
	case "city_id":
		p.CityID, err = stringValue(key, value)
	case "user_id":
		p.UserID, err = stringValue(key, value)
	case "name":
		p.Name, err = stringValue(key, value)
	case "description":
		p.Description, err = stringValue(key, value)
	case "number_rooms":
		p.NumberRooms, err = intValue(key, value)
	case "number_bathrooms":
		p.NumberBathroom, err = intValue(key, value)
	case "max_guest":
		p.MaxGuest, err = intValue(key, value)
	case "price_by_night":
		p.PriceByNight, err = intValue(key, value)
	case "latitude":
		p.Latitude, err = floatValue(key, value)
	case "longitude":
		p.Longitude, err = floatValue(key, value)
	default:
		err = unknownField(key)
	}
	return err
}

// HasAmenity reports whether the amenity is linked to the place.
func (p *Place) HasAmenity(amenityID string) bool {
	for _, id := range p.AmenityIDs {
		if id == amenityID {
			return true
		}
	}
	return false
}

// AddAmenity links the amenity. It returns false if it was already linked.
func (p *Place) AddAmenity(amenityID string) bool {
	if p.HasAmenity(amenityID) {
		return false
	}
	p.AmenityIDs = append(p.AmenityIDs, amenityID)
	return true
}

// RemoveAmenity unlinks the amenity. It returns false if it was not linked.
func (p *Place) RemoveAmenity(amenityID string) bool {
	for i, id := range p.AmenityIDs {
		if id == amenityID {
			p.AmenityIDs = append(p.AmenityIDs[:i:i], p.AmenityIDs[i+1:]...)
			return true
		}
	}
	return false
}
