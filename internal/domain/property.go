package domain

// PropertyType is a closed enumeration. Wire values keep the original
// Japanese labels for catalog compatibility.
type PropertyType string

const (
	TypeHotel   PropertyType = "ホテル"
	TypeMinpaku PropertyType = "民泊"
)

func (t PropertyType) Valid() bool {
	return t == TypeHotel || t == TypeMinpaku
}

type Amenity string

const (
	AmenityWifi               Amenity = "wifi"
	AmenityParking            Amenity = "parking"
	AmenityNoSmoking          Amenity = "no_smoking"
	AmenitySeparateBathToilet Amenity = "separate_bath_toilet"
)

func (a Amenity) Valid() bool {
	switch a {
	case AmenityWifi, AmenityParking, AmenityNoSmoking, AmenitySeparateBathToilet:
		return true
	}
	return false
}

type Tag string

const (
	TagFamily       Tag = "family"
	TagNearStation  Tag = "near_station"
	TagWithKitchen  Tag = "with_kitchen"
	TagCouple       Tag = "couple"
	TagLargeGroup   Tag = "large_group"
	TagOceanView    Tag = "ocean_view"
	TagMountainView Tag = "mountain_view"
	TagWorkation    Tag = "workation"
)

func (t Tag) Valid() bool {
	switch t {
	case TagFamily, TagNearStation, TagWithKitchen, TagCouple,
		TagLargeGroup, TagOceanView, TagMountainView, TagWorkation:
		return true
	}
	return false
}

// Property is the full catalog document. Rating is derived from Reviews
// and never written independently; ViewCount only ever increases.
// Owner credentials are demo-grade plaintext stored on the document;
// login is a string-equality check, not real authentication.
type Property struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            PropertyType   `json:"type"`
	Description     string         `json:"description"`
	Address         string         `json:"address"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	Price           int64          `json:"price"`
	Rating          float64        `json:"rating"`
	Photos          []string       `json:"photos"`
	Amenities       []Amenity      `json:"amenities"`
	Tags            []Tag          `json:"tags,omitempty"`
	Reviews         []Review       `json:"reviews"`
	Announcements   []Announcement `json:"announcements"`
	PhoneNumber     string         `json:"phoneNumber"`
	LineOfficialURL string         `json:"lineOfficialUrl,omitempty"`
	CheckinTime     string         `json:"checkinTime"`
	CheckoutTime    string         `json:"checkoutTime"`
	OwnerUsername   string         `json:"ownerUsername"`
	OwnerPassword   string         `json:"ownerPassword"`
	ViewCount       int64          `json:"viewCount"`
}

// Validate enforces the write-time invariants: required fields plus
// closed-enum membership.
func (p Property) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.OwnerUsername == "" {
		return &ValidationError{Field: "ownerUsername", Reason: "must not be empty"}
	}
	if !p.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "unknown property type"}
	}
	for _, a := range p.Amenities {
		if !a.Valid() {
			return &ValidationError{Field: "amenities", Reason: "unknown amenity " + string(a)}
		}
	}
	for _, t := range p.Tags {
		if !t.Valid() {
			return &ValidationError{Field: "tags", Reason: "unknown tag " + string(t)}
		}
	}
	return nil
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SearchCriteria carries at most one effective criterion; when several
// are set only the highest-precedence one fires (location, region,
// area, tag). Zero value means "return everything".
type SearchCriteria struct {
	Area     string    `json:"area,omitempty"`
	Region   string    `json:"region,omitempty"`
	Tag      Tag       `json:"tag,omitempty"`
	Location *GeoPoint `json:"location,omitempty"`
}
