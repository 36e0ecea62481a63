package models

// PropertyType enumerates the kinds of rentable stays on the platform.
type PropertyType string

const (
	PropertyTypeHostel PropertyType = "Hostel"
	PropertyTypeFlat   PropertyType = "Flat"
	PropertyTypeRoom   PropertyType = "Room"
	PropertyTypeStay   PropertyType = "Stay"
	PropertyTypePG     PropertyType = "PG"
)

// BookingCycle enumerates the pricing cycles a stay can be booked for.
type BookingCycle string

const (
	CycleDay   BookingCycle = "Day"
	CycleWeek  BookingCycle = "Week"
	CycleMonth BookingCycle = "Month"
	CycleYear  BookingCycle = "Year"
)

// Property represents a rentable listing (PG/Hostel/Room/Flat/Stay).
// OwnerID is a stable reference to the session user who created the listing;
// OwnerName is display data only and carries no ownership semantics.
type Property struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Type          PropertyType `json:"type"`
	Location      string       `json:"location"`
	City          string       `json:"city"`
	Price         PriceTable   `json:"price"`
	Description   string       `json:"description"`
	Amenities     []string     `json:"amenities"`
	OwnerID       string       `json:"ownerId"`
	OwnerName     string       `json:"ownerName"`
	OwnerWhatsApp string       `json:"ownerWhatsApp"`
	UpiID         string       `json:"upiId"`
	Images        []string     `json:"images"`
	VideoURL      string       `json:"videoUrl,omitempty"`
	Lat           float64      `json:"lat"`
	Lng           float64      `json:"lng"`
	IsAvailable   bool         `json:"isAvailable"`
	Rating        float64      `json:"rating"`
	ReviewsCount  int          `json:"reviewsCount"`
	NearbyHubs    []string     `json:"nearbyHubs"`
}

// Cities selectable when listing or filtering stays.
var Cities = []string{
	"Delhi", "Patna", "Kota", "Mumbai", "Bangalore",
	"Hyderabad", "Pune", "Chandigarh", "Lucknow", "Jaipur",
}

// Amenities recognised by the platform (also the vocabulary the photo
// analysis capability detects against).
var Amenities = []string{
	"WiFi", "AC", "Power Backup", "Laundry", "Attached Washroom",
	"Geyser", "Security", "CCTV", "RO Water", "Parking", "Gym", "Meals Included",
}
