package seed

import "github.com/rogerio-castellano/catalog-manager/internal/models"

// DefaultCatalog returns the products a new session starts with.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "iPhone 15 Pro", Price: 999, Category: "Electronics", Stock: 45, Description: "Apple's latest flagship phone with titanium body and A17 chip."},
		{ID: 2, Name: "Noise Cancelling Headphones", Price: 349, Category: "Electronics", Stock: 20, Description: "Premium ANC headphones ideal for travel and focus time."},
		{ID: 3, Name: "Ergonomic Office Chair", Price: 259, Category: "Home", Stock: 15, Description: "Mesh back, adjustable lumbar support, and 4D armrests."},
		{ID: 4, Name: "Running Shoes", Price: 139, Category: "Sports", Stock: 80, Description: "Responsive cushioning designed for long distance runs."},
		{ID: 5, Name: "Smart Watch", Price: 299, Category: "Electronics", Stock: 60, Description: "Track workouts, sleep, temperature, and irregular heartbeats."},
		{ID: 6, Name: "Espresso Machine", Price: 499, Category: "Home", Stock: 18, Description: "Barista-grade espresso machine with automatic milk frother."},
		{ID: 7, Name: "4K Monitor", Price: 429, Category: "Electronics", Stock: 32, Description: "27-inch IPS display with HDR10 support and USB-C hub."},
		{ID: 8, Name: "Yoga Mat Pro", Price: 79, Category: "Sports", Stock: 120, Description: "Extra thick mat with anti-slip grip for all workouts."},
		{ID: 9, Name: "Desk Lamp", Price: 69, Category: "Home", Stock: 55, Description: "Adjustable brightness and color temperature with USB port."},
		{ID: 10, Name: "Travel Backpack", Price: 159, Category: "Fashion", Stock: 70, Description: "45L carry-on compliant backpack with modular compartments."},
		{ID: 11, Name: "Bluetooth Speaker", Price: 119, Category: "Electronics", Stock: 110, Description: "Portable waterproof speaker with 20-hour battery life."},
		{ID: 12, Name: "Mechanical Keyboard", Price: 189, Category: "Electronics", Stock: 40, Description: "Hot-swappable switches, per-key RGB, and aluminum body."},
		{ID: 13, Name: "Air Purifier", Price: 249, Category: "Home", Stock: 22, Description: "HEPA filtration removes 99.9% of airborne particles."},
		{ID: 14, Name: "Graphic Tablet", Price: 329, Category: "Electronics", Stock: 25, Description: "Pen display with laminated screen and tilt recognition."},
		{ID: 15, Name: "Camping Tent", Price: 289, Category: "Sports", Stock: 35, Description: "Four-season tent with quick setup system for 4 people."},
		{ID: 16, Name: "Portable Projector", Price: 379, Category: "Electronics", Stock: 27, Description: "Compact projector with 1080p resolution and built-in speakers."},
		{ID: 17, Name: "Electric Toothbrush", Price: 99, Category: "Home", Stock: 95, Description: "Pressure sensor, multiple modes, and wireless charging base."},
		{ID: 18, Name: "Smart Thermostat", Price: 249, Category: "Home", Stock: 30, Description: "Learns your schedule and reduces energy consumption."},
		{ID: 19, Name: "Gaming Mouse", Price: 129, Category: "Electronics", Stock: 65, Description: "High DPI wireless mouse with adjustable weights."},
		{ID: 20, Name: "Wireless Charger", Price: 59, Category: "Electronics", Stock: 150, Description: "3-in-1 charger for phone, earbuds, and smartwatch."},
		{ID: 21, Name: "Standing Desk", Price: 499, Category: "Home", Stock: 19, Description: "Electric height-adjustable desk with memory presets."},
		{ID: 22, Name: "Compact Drone", Price: 899, Category: "Electronics", Stock: 10, Description: "4K aerial footage with obstacle avoidance sensors."},
		{ID: 23, Name: "Leather Wallet", Price: 79, Category: "Fashion", Stock: 90, Description: "RFID blocking slim wallet with quick access slots."},
		{ID: 24, Name: "Cookware Set", Price: 369, Category: "Home", Stock: 28, Description: "Tri-ply stainless steel set compatible with induction."},
	}
}
