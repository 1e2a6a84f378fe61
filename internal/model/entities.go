package model

// State is a top-level region. Cities belong to it.
type State struct {
	BaseModel
	Name string `json:"name" db:"name"`
}

func (s *State) Kind() Kind { return KindState }

func (s *State) References() []Ref { return nil }

func (s *State) SetField(key string, value any) (err error) {
	switch key {
	case "name":
		s.Name, err = stringValue(key, value)
	default:
		err = unknownField(key)
	}
	return err
}

// City belongs to a State.
type City struct {
	BaseModel
	Name    string `json:"name" db:"name"`
	StateID string `json:"state_id" db:"state_id"`
}

func (c *City) Kind() Kind { return KindCity }

func (c *City) References() []Ref {
	return []Ref{{Kind: KindState, ID: c.StateID}}
}

func (c *City) SetField(key string, value any) (err error) {
	switch key {
	case "name":
		c.Name, err = stringValue(key, value)
	case "state_id":
		c.StateID, err = stringValue(key, value)
	default:
		err = unknownField(key)
	}
	return err
}

// Amenity is a feature a Place can offer (wifi, pool...).
type Amenity struct {
	BaseModel
	Name string `json:"name" db:"name"`
}

func (a *Amenity) Kind() Kind { return KindAmenity }

func (a *Amenity) References() []Ref { return nil }

func (a *Amenity) SetField(key string, value any) (err error) {
	switch key {
	case "name":
		a.Name, err = stringValue(key, value)
	default:
		err = unknownField(key)
	}
	return err
}

// Review is a user's text about a place.
type Review struct {
	BaseModel
	PlaceID string `json:"place_id" db:"place_id"`
	UserID  string `json:"user_id" db:"user_id"`
	Text    string `json:"text" db:"text"`
}

func (r *Review) Kind() Kind { return KindReview }

func (r *Review) References() []Ref {
	return []Ref{
		{Kind: KindPlace, ID: r.PlaceID},
		{Kind: KindUser, ID: r.UserID},
	}
}

func (r *Review) SetField(key string, value any) (err error) {
	switch key {
	case "text":
		r.Text, err = stringValue(key, value)
	case "place_id":
		r.PlaceID, err = stringValue(key, value)
	case "user_id":
		r.UserID, err = stringValue(key, value)
	default:
		err = unknownField(key)
	}
	return err
}
