package models

// SeedProperties returns the default dataset used when the store holds no
// (or unreadable) property collection. Owner ids are fixed so owner-scoped
// views stay coherent across restarts.
func SeedProperties() []Property {
	return []Property{
		{
			ID:          "1",
			Title:       "Comfortable Student PG near Allen Samarth",
			Type:        PropertyTypePG,
			Location:    "Indra Vihar, Kota",
			City:        "Kota",
			Price:       PriceTable{Day: 500, Week: 3000, Month: 8500, Year: 95000},
			Description: "Perfect for students preparing for JEE/NEET. Walking distance from Allen. Calm environment with 24/7 library access.",
			Amenities:   []string{"WiFi", "Power Backup", "Security", "Meals Included", "RO Water"},
			OwnerID:     "seed-owner-1",
			OwnerName:   "Rajesh Sharma",
			OwnerWhatsApp: "919876543210",
			UpiID:       "rajesh@okaxis",
			Images: []string{
				"https://images.unsplash.com/photo-1555854817-5b2260d15050?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1595526114035-0d45ed16cfbf?auto=format&fit=crop&q=80&w=800",
			},
			VideoURL:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Lat:          25.1388,
			Lng:          75.8362,
			IsAvailable:  true,
			Rating:       4.8,
			ReviewsCount: 124,
			NearbyHubs:   []string{"Allen Samarth", "Resonance", "Bansal Classes"},
		},
		{
			ID:          "2",
			Title:       "Luxury 2BHK Flat for Professionals",
			Type:        PropertyTypeFlat,
			Location:    "Boring Road, Patna",
			City:        "Patna",
			Price:       PriceTable{Day: 2500, Week: 12000, Month: 25000, Year: 280000},
			Description: "Fully furnished luxury flat in the heart of Patna. Ideal for job seekers and working professionals.",
			Amenities:   []string{"AC", "Gym", "Parking", "WiFi", "Laundry"},
			OwnerID:     "seed-owner-2",
			OwnerName:   "Amit Singh",
			OwnerWhatsApp: "919999988888",
			UpiID:       "amitsingh@ybl",
			Images: []string{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?auto=format&fit=crop&q=80&w=800",
			},
			Lat:          25.6174,
			Lng:          85.1228,
			IsAvailable:  true,
			Rating:       4.5,
			ReviewsCount: 45,
			NearbyHubs:   []string{"Patna Women's College", "AN College", "Maurya Lok"},
		},
		{
			ID:          "3",
			Title:       "Budget Friendly Hostel near North Campus",
			Type:        PropertyTypeHostel,
			Location:    "Vijay Nagar, Delhi",
			City:        "Delhi",
			Price:       PriceTable{Day: 400, Week: 2500, Month: 7000, Year: 80000},
			Description: "Cheap and best hostel for DU students. Clean rooms and great connectivity to Metro.",
			Amenities:   []string{"WiFi", "Security", "Attached Washroom", "RO Water"},
			OwnerID:     "seed-owner-3",
			OwnerName:   "Suman Lata",
			OwnerWhatsApp: "918888877777",
			UpiID:       "sumanlata@paytm",
			Images: []string{
				"https://images.unsplash.com/photo-1595526114035-0d45ed16cfbf?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1555854817-5b2260d15050?auto=format&fit=crop&q=80&w=800",
			},
			VideoURL:     "https://www.youtube.com/embed/jNQXAC9IVRw",
			Lat:          28.6946,
			Lng:          77.2033,
			IsAvailable:  true,
			Rating:       4.2,
			ReviewsCount: 210,
			NearbyHubs:   []string{"Delhi University North Campus", "Hansraj College", "Miranda House"},
		},
	}
}
