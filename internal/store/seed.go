// internal/store/seed.go
package store

import "github.com/novamart/storefront-api/internal/models"

func fptr(v float64) *float64 { return &v }

// SeedProducts is the static catalog the storefront ships with.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Premium Wireless Headphones",
			Price:         299.99,
			OriginalPrice: fptr(399.99),
			Image:         "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/3587478/pexels-photo-3587478.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Electronics",
			Stock:       15,
			Description: "Experience premium sound quality with our latest wireless headphones featuring active noise cancellation and 30-hour battery life.",
			Features: []string{
				"Active Noise Cancellation",
				"30-hour battery life",
				"Premium sound quality",
				"Comfortable over-ear design",
				"Quick charge technology",
			},
			Specifications: models.Specifications{
				{Key: "Driver Size", Value: "40mm"},
				{Key: "Frequency Response", Value: "20Hz - 20kHz"},
				{Key: "Battery Life", Value: "30 hours"},
				{Key: "Charging Time", Value: "2 hours"},
				{Key: "Weight", Value: "250g"},
			},
			Rating:  4.8,
			Reviews: 1247,
			Brand:   "AudioTech",
			Variants: []models.ProductVariant{
				{ID: "1", Name: "Color", Value: "Black"},
				{ID: "2", Name: "Color", Value: "White"},
				{ID: "3", Name: "Color", Value: "Blue"},
			},
		},
		{
			ID:            "2",
			Name:          "Elegant Smart Watch",
			Price:         449.99,
			OriginalPrice: fptr(549.99),
			Image:         "https://images.pexels.com/photos/190819/pexels-photo-190819.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/190819/pexels-photo-190819.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1697214/pexels-photo-1697214.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1034063/pexels-photo-1034063.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Accessories",
			Stock:       8,
			Description: "Stylish smartwatch with health monitoring, GPS tracking, and seamless smartphone integration.",
			Features: []string{
				"Health monitoring",
				"GPS tracking",
				"Water resistant",
				"Long battery life",
				"Smartphone integration",
			},
			Specifications: models.Specifications{
				{Key: "Display", Value: "1.4\" AMOLED"},
				{Key: "Battery Life", Value: "7 days"},
				{Key: "Water Resistance", Value: "5ATM"},
				{Key: "Connectivity", Value: "Bluetooth 5.0"},
				{Key: "Sensors", Value: "Heart rate, GPS, Accelerometer"},
			},
			Rating:  4.6,
			Reviews: 892,
			Brand:   "TechTime",
			Variants: []models.ProductVariant{
				{ID: "4", Name: "Size", Value: "38mm"},
				{ID: "5", Name: "Size", Value: "42mm"},
			},
		},
		{
			ID:            "3",
			Name:          "Latest Smartphone Pro",
			Price:         899.99,
			OriginalPrice: fptr(999.99),
			Image:         "https://images.pexels.com/photos/699122/pexels-photo-699122.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/699122/pexels-photo-699122.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1092644/pexels-photo-1092644.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1440727/pexels-photo-1440727.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Electronics",
			Stock:       12,
			Description: "Latest flagship smartphone with advanced camera system, powerful processor, and all-day battery life.",
			Features: []string{
				"Triple camera system",
				"A15 Bionic chip",
				"All-day battery",
				"5G connectivity",
				"Face ID security",
			},
			Specifications: models.Specifications{
				{Key: "Display", Value: "6.1\" Super Retina XDR"},
				{Key: "Processor", Value: "A15 Bionic"},
				{Key: "Storage", Value: "128GB/256GB/512GB"},
				{Key: "Camera", Value: "12MP Triple system"},
				{Key: "Battery", Value: "3095mAh"},
			},
			Rating:  4.9,
			Reviews: 2156,
			Brand:   "TechPhone",
			Variants: []models.ProductVariant{
				{ID: "6", Name: "Storage", Value: "128GB"},
				{ID: "7", Name: "Storage", Value: "256GB"},
				{ID: "8", Name: "Storage", Value: "512GB"},
			},
		},
		{
			ID:            "4",
			Name:          "Premium Leather Backpack",
			Price:         189.99,
			OriginalPrice: fptr(249.99),
			Image:         "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1545558/pexels-photo-1545558.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Accessories",
			Stock:       20,
			Description: "Handcrafted leather backpack perfect for work, travel, and everyday use with multiple compartments.",
			Features: []string{
				"Genuine leather construction",
				"Multiple compartments",
				"Laptop compartment",
				"Water resistant",
				"Comfortable straps",
			},
			Specifications: models.Specifications{
				{Key: "Material", Value: "Genuine Leather"},
				{Key: "Dimensions", Value: "45 x 30 x 15 cm"},
				{Key: "Laptop Size", Value: "Up to 15\""},
				{Key: "Weight", Value: "1.2kg"},
				{Key: "Warranty", Value: "2 years"},
			},
			Rating:  4.7,
			Reviews: 634,
			Brand:   "LeatherCraft",
			Variants: []models.ProductVariant{
				{ID: "9", Name: "Color", Value: "Brown"},
				{ID: "10", Name: "Color", Value: "Black"},
			},
		},
		{
			ID:            "5",
			Name:          "Advanced Fitness Tracker",
			Price:         129.99,
			OriginalPrice: fptr(179.99),
			Image:         "https://images.pexels.com/photos/267394/pexels-photo-267394.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/267394/pexels-photo-267394.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/4498362/pexels-photo-4498362.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/6975474/pexels-photo-6975474.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Electronics",
			Stock:       25,
			Description: "Track your fitness goals with advanced health monitoring, sleep tracking, and workout analysis.",
			Features: []string{
				"Heart rate monitoring",
				"Sleep tracking",
				"Workout analysis",
				"Water resistant",
				"10-day battery life",
			},
			Specifications: models.Specifications{
				{Key: "Display", Value: "1.1\" Color AMOLED"},
				{Key: "Battery Life", Value: "10 days"},
				{Key: "Water Resistance", Value: "5ATM"},
				{Key: "Sensors", Value: "Heart rate, SpO2, Accelerometer"},
				{Key: "Compatibility", Value: "iOS & Android"},
			},
			Rating:  4.5,
			Reviews: 1089,
			Brand:   "FitTech",
			Variants: []models.ProductVariant{
				{ID: "11", Name: "Color", Value: "Black"},
				{ID: "12", Name: "Color", Value: "Blue"},
				{ID: "13", Name: "Color", Value: "Pink"},
			},
		},
		{
			ID:            "6",
			Name:          "Smart Coffee Maker",
			Price:         159.99,
			OriginalPrice: fptr(199.99),
			Image:         "https://images.pexels.com/photos/324028/pexels-photo-324028.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/324028/pexels-photo-324028.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1251175/pexels-photo-1251175.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Home",
			Stock:       10,
			Description: "Smart coffee maker with app control, programmable brewing, and perfect temperature control.",
			Features: []string{
				"App control",
				"Programmable brewing",
				"Temperature control",
				"Auto shut-off",
				"Easy cleaning",
			},
			Specifications: models.Specifications{
				{Key: "Capacity", Value: "12 cups"},
				{Key: "Power", Value: "1200W"},
				{Key: "Material", Value: "Stainless Steel"},
				{Key: "Connectivity", Value: "WiFi"},
				{Key: "Warranty", Value: "2 years"},
			},
			Rating:  4.4,
			Reviews: 456,
			Brand:   "BrewMaster",
			Variants: []models.ProductVariant{
				{ID: "14", Name: "Size", Value: "12-cup"},
				{ID: "15", Name: "Size", Value: "10-cup"},
			},
		},
		{
			ID:            "7",
			Name:          "Gaming Mechanical Keyboard",
			Price:         149.99,
			OriginalPrice: fptr(199.99),
			Image:         "https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1194713/pexels-photo-1194713.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Electronics",
			Stock:       18,
			Description: "Professional gaming keyboard with RGB backlighting, mechanical switches, and programmable keys.",
			Features: []string{
				"RGB backlighting",
				"Mechanical switches",
				"Programmable keys",
				"Anti-ghosting",
				"Durable construction",
			},
			Specifications: models.Specifications{
				{Key: "Switch Type", Value: "Cherry MX Blue"},
				{Key: "Backlighting", Value: "RGB"},
				{Key: "Layout", Value: "Full size"},
				{Key: "Connection", Value: "USB-C"},
				{Key: "Key Life", Value: "50 million clicks"},
			},
			Rating:  4.6,
			Reviews: 789,
			Brand:   "GameTech",
			Variants: []models.ProductVariant{
				{ID: "16", Name: "Switch", Value: "Blue"},
				{ID: "17", Name: "Switch", Value: "Red"},
				{ID: "18", Name: "Switch", Value: "Brown"},
			},
		},
		{
			ID:            "8",
			Name:          "Wireless Charging Pad",
			Price:         49.99,
			OriginalPrice: fptr(69.99),
			Image:         "https://images.pexels.com/photos/4526943/pexels-photo-4526943.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/4526943/pexels-photo-4526943.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/4526946/pexels-photo-4526946.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/7974/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Electronics",
			Stock:       30,
			Description: "Fast wireless charging pad compatible with all Qi-enabled devices with LED indicator.",
			Features: []string{
				"Fast wireless charging",
				"Qi-compatible",
				"LED indicator",
				"Non-slip surface",
				"Overcharge protection",
			},
			Specifications: models.Specifications{
				{Key: "Output", Value: "15W max"},
				{Key: "Input", Value: "USB-C"},
				{Key: "Compatibility", Value: "Qi-enabled devices"},
				{Key: "Material", Value: "Aluminum"},
				{Key: "Dimensions", Value: "10 x 10 x 0.8 cm"},
			},
			Rating:  4.3,
			Reviews: 567,
			Brand:   "ChargeTech",
			Variants: []models.ProductVariant{
				{ID: "19", Name: "Color", Value: "Black"},
				{ID: "20", Name: "Color", Value: "White"},
			},
		},
		{
			ID:            "9",
			Name:          "Bluetooth Speaker Pro",
			Price:         89.99,
			OriginalPrice: fptr(119.99),
			Image:         "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/3587478/pexels-photo-3587478.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1034063/pexels-photo-1034063.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Electronics",
			Stock:       22,
			Description: "Portable Bluetooth speaker with 360-degree sound, waterproof design, and 20-hour battery.",
			Features: []string{
				"360-degree sound",
				"Waterproof design",
				"20-hour battery",
				"Voice assistant",
				"Portable design",
			},
			Specifications: models.Specifications{
				{Key: "Power", Value: "20W"},
				{Key: "Battery Life", Value: "20 hours"},
				{Key: "Water Rating", Value: "IPX7"},
				{Key: "Bluetooth", Value: "5.0"},
				{Key: "Range", Value: "30 meters"},
			},
			Rating:  4.7,
			Reviews: 923,
			Brand:   "SoundWave",
			Variants: []models.ProductVariant{
				{ID: "21", Name: "Color", Value: "Black"},
				{ID: "22", Name: "Color", Value: "Blue"},
				{ID: "23", Name: "Color", Value: "Red"},
			},
		},
		{
			ID:            "10",
			Name:          "Smart Home Hub",
			Price:         199.99,
			OriginalPrice: fptr(249.99),
			Image:         "https://images.pexels.com/photos/4526946/pexels-photo-4526946.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/4526946/pexels-photo-4526946.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/4526943/pexels-photo-4526943.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/7974/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Home",
			Stock:       14,
			Description: "Central smart home hub to control all your connected devices with voice commands and app.",
			Features: []string{
				"Voice control",
				"App integration",
				"Device compatibility",
				"Security features",
				"Easy setup",
			},
			Specifications: models.Specifications{
				{Key: "Connectivity", Value: "WiFi, Zigbee, Z-Wave"},
				{Key: "Voice Assistant", Value: "Alexa, Google"},
				{Key: "Compatibility", Value: "1000+ devices"},
				{Key: "Processor", Value: "Quad-core ARM"},
				{Key: "Storage", Value: "8GB"},
			},
			Rating:  4.5,
			Reviews: 445,
			Brand:   "SmartHome",
			Variants: []models.ProductVariant{
				{ID: "24", Name: "Color", Value: "White"},
				{ID: "25", Name: "Color", Value: "Black"},
			},
		},
		{
			ID:            "11",
			Name:          "Professional Camera Lens",
			Price:         599.99,
			OriginalPrice: fptr(749.99),
			Image:         "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/51383/photo-camera-subject-photographer-51383.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/279906/pexels-photo-279906.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Electronics",
			Stock:       7,
			Description: "Professional 85mm portrait lens with fast aperture and exceptional image quality.",
			Features: []string{
				"Fast f/1.4 aperture",
				"Professional quality",
				"Portrait optimized",
				"Weather sealed",
				"Image stabilization",
			},
			Specifications: models.Specifications{
				{Key: "Focal Length", Value: "85mm"},
				{Key: "Aperture", Value: "f/1.4"},
				{Key: "Mount", Value: "Canon EF"},
				{Key: "Weight", Value: "950g"},
				{Key: "Filter Size", Value: "77mm"},
			},
			Rating:  4.9,
			Reviews: 234,
			Brand:   "LensMaster",
			Variants: []models.ProductVariant{
				{ID: "26", Name: "Mount", Value: "Canon EF"},
				{ID: "27", Name: "Mount", Value: "Nikon F"},
			},
		},
		{
			ID:            "12",
			Name:          "Ergonomic Office Chair",
			Price:         349.99,
			OriginalPrice: fptr(449.99),
			Image:         "https://images.pexels.com/photos/1957477/pexels-photo-1957477.jpeg?auto=compress&cs=tinysrgb&w=500",
			Images: []string{
				"https://images.pexels.com/photos/1957477/pexels-photo-1957477.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1181406/pexels-photo-1181406.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1181316/pexels-photo-1181316.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Home",
			Stock:       16,
			Description: "Ergonomic office chair with lumbar support, adjustable height, and premium materials.",
			Features: []string{
				"Lumbar support",
				"Adjustable height",
				"Premium materials",
				"360-degree swivel",
				"Breathable mesh",
			},
			Specifications: models.Specifications{
				{Key: "Material", Value: "Mesh & Leather"},
				{Key: "Weight Capacity", Value: "150kg"},
				{Key: "Height Range", Value: "42-52cm"},
				{Key: "Base", Value: "Aluminum"},
				{Key: "Warranty", Value: "5 years"},
			},
			Rating:  4.6,
			Reviews: 678,
			Brand:   "ComfortSeating",
			Variants: []models.ProductVariant{
				{ID: "28", Name: "Color", Value: "Black"},
				{ID: "29", Name: "Color", Value: "Gray"},
			},
		},
	}
}
