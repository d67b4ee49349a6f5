package adapters

import "nethra_backend/internal/feature/equipment/domain/entity"

// SeedEquipment は初期投入する機材一覧をID順で返します。
func SeedEquipment() []entity.Equipment {
	return []entity.Equipment{
		{
			ID:          1,
			Name:        "Mahindra 575 DI Tractor",
			Category:    entity.CategoryTractors,
			Description: "45 HP tractor with power steering ideal for ploughing, harrowing, and transportation.",
			RentPrice:   1800,
			BuyPrice:    650000,
			ListingType: entity.ListingBoth,
			Location:    "Pune, Maharashtra",
			Owner:       "Rajesh Patil",
			Rating:      4.8,
			Reviews:     24,
			Available:   true,
			Featured:    true,
			HP:          "45 HP",
			FuelType:    "Diesel",
			Year:        2022,
			Images:      4,
			Specs: []entity.Spec{
				{Label: "Engine", Value: "3-Cylinder, 2730cc"},
				{Label: "Transmission", Value: "8F + 2R"},
				{Label: "PTO", Value: "540 RPM"},
				{Label: "Hydraulics", Value: "1500 kg lift"},
			},
		},
		{
			ID:          2,
			Name:        "Swaraj 744 FE Tractor",
			Category:    entity.CategoryTractors,
			Description: "48 HP tractor with advanced hydraulics for paddy and sugarcane farming.",
			RentPrice:   2200,
			BuyPrice:    720000,
			ListingType: entity.ListingBoth,
			Location:    "Nashik, Maharashtra",
			Owner:       "Suresh Kumar",
			Rating:      4.6,
			Reviews:     18,
			Available:   true,
			Featured:    false,
			HP:          "48 HP",
			FuelType:    "Diesel",
			Year:        2023,
			Images:      3,
			Specs: []entity.Spec{
				{Label: "Engine", Value: "3-Cylinder, 2980cc"},
				{Label: "Transmission", Value: "8F + 2R"},
				{Label: "PTO", Value: "540 RPM"},
				{Label: "Hydraulics", Value: "1800 kg lift"},
			},
		},
		{
			ID:          3,
			Name:        "Mini Combine Harvester",
			Category:    entity.CategoryHarvesters,
			Description: "Compact combine harvester for wheat and rice with 7ft cutting width.",
			RentPrice:   5500,
			BuyPrice:    1450000,
			ListingType: entity.ListingRent,
			Location:    "Ludhiana, Punjab",
			Owner:       "Gurpreet Singh",
			Rating:      4.9,
			Reviews:     31,
			Available:   true,
			Featured:    true,
			HP:          "65 HP",
			FuelType:    "Diesel",
			Year:        2023,
			Images:      5,
			Specs: []entity.Spec{
				{Label: "Cutting Width", Value: "7 ft"},
				{Label: "Grain Tank", Value: "1200 liters"},
				{Label: "Threshing", Value: "Axial Flow"},
				{Label: "Cleaning", Value: "Multi-fan sieve"},
			},
		},
		{
			ID:          4,
			Name:        "Rotavator 5ft",
			Category:    entity.CategoryTillers,
			Description: "Heavy-duty rotavator for seed bed preparation. 42 blades.",
			RentPrice:   900,
			BuyPrice:    85000,
			ListingType: entity.ListingBoth,
			Location:    "Nagpur, Maharashtra",
			Owner:       "Anil Deshmukh",
			Rating:      4.5,
			Reviews:     12,
			Available:   true,
			Featured:    false,
			FuelType:    "PTO Driven",
			Year:        2023,
			Images:      2,
			Specs: []entity.Spec{
				{Label: "Width", Value: "5 ft"},
				{Label: "Blades", Value: "42 L-Type"},
				{Label: "Depth", Value: "Up to 9 in"},
				{Label: "Required HP", Value: "35+ HP"},
			},
		},
		{
			ID:          5,
			Name:        "Solar Irrigation Pump 5HP",
			Category:    entity.CategoryIrrigation,
			Description: "Solar-powered submersible pump with controller. No fuel cost.",
			RentPrice:   700,
			BuyPrice:    180000,
			ListingType: entity.ListingBuy,
			Location:    "Jaipur, Rajasthan",
			Owner:       "Vikram Sharma",
			Rating:      4.7,
			Reviews:     42,
			Available:   true,
			Featured:    true,
			HP:          "5 HP",
			FuelType:    "Solar",
			Year:        2024,
			Images:      3,
			Specs: []entity.Spec{
				{Label: "Flow Rate", Value: "120 LPM"},
				{Label: "Head", Value: "50 meters"},
				{Label: "Panel", Value: "6 x 335W"},
				{Label: "Coverage", Value: "5 acres"},
			},
		},
		{
			ID:          6,
			Name:        "Bolero Pickup Truck",
			Category:    entity.CategoryVehicles,
			Description: "Sturdy pickup for transporting crops, fertilizers, and equipment. 1.7 ton.",
			RentPrice:   1500,
			BuyPrice:    890000,
			ListingType: entity.ListingRent,
			Location:    "Indore, MP",
			Owner:       "Mohan Yadav",
			Rating:      4.4,
			Reviews:     15,
			Available:   false,
			Featured:    false,
			FuelType:    "Diesel",
			Year:        2021,
			Images:      3,
			Specs: []entity.Spec{
				{Label: "Payload", Value: "1.7 ton"},
				{Label: "Engine", Value: "1493cc CRDe"},
				{Label: "Mileage", Value: "16 km/l"},
				{Label: "Drive", Value: "4x2"},
			},
		},
		{
			ID:          7,
			Name:        "Knapsack Sprayer 16L",
			Category:    entity.CategorySprayers,
			Description: "Battery-operated backpack sprayer for pesticide and fertilizer application.",
			RentPrice:   150,
			BuyPrice:    3500,
			ListingType: entity.ListingBoth,
			Location:    "Hyderabad, Telangana",
			Owner:       "Krishna Reddy",
			Rating:      4.3,
			Reviews:     56,
			Available:   true,
			Featured:    false,
			FuelType:    "Battery",
			Year:        2024,
			Images:      2,
			Specs: []entity.Spec{
				{Label: "Tank", Value: "16 liters"},
				{Label: "Battery", Value: "12V 8Ah"},
				{Label: "Pressure", Value: "2-4 bar"},
				{Label: "Spray Range", Value: "2-4 m"},
			},
		},
		{
			ID:          8,
			Name:        "Seed Drill Machine",
			Category:    entity.CategoryTools,
			Description: "9-row seed drill for precision sowing. Reduces seed wastage by 20%.",
			RentPrice:   800,
			BuyPrice:    45000,
			ListingType: entity.ListingBoth,
			Location:    "Kanpur, UP",
			Owner:       "Ram Prasad",
			Rating:      4.6,
			Reviews:     9,
			Available:   true,
			Featured:    false,
			FuelType:    "PTO Driven",
			Year:        2023,
			Images:      2,
			Specs: []entity.Spec{
				{Label: "Rows", Value: "9"},
				{Label: "Row Spacing", Value: "Adjustable"},
				{Label: "Seed Box", Value: "45 kg"},
				{Label: "Required HP", Value: "35+ HP"},
			},
		},
		{
			ID:          9,
			Name:        "Boom Sprayer 500L",
			Category:    entity.CategorySprayers,
			Description: "Tractor-mounted boom sprayer with 12m spray width.",
			RentPrice:   1200,
			BuyPrice:    120000,
			ListingType: entity.ListingRent,
			Location:    "Amravati, Maharashtra",
			Owner:       "Ganesh Wagh",
			Rating:      4.8,
			Reviews:     21,
			Available:   true,
			Featured:    true,
			FuelType:    "PTO Driven",
			Year:        2023,
			Images:      3,
			Specs: []entity.Spec{
				{Label: "Tank", Value: "500 liters"},
				{Label: "Boom Width", Value: "12 m"},
				{Label: "Nozzles", Value: "24 flat-fan"},
				{Label: "Required HP", Value: "35+ HP"},
			},
		},
		{
			ID:          10,
			Name:        "Power Weeder",
			Category:    entity.CategoryTools,
			Description: "Petrol-powered inter-cultivation weeder for removing weeds between rows.",
			RentPrice:   500,
			BuyPrice:    32000,
			ListingType: entity.ListingBoth,
			Location:    "Coimbatore, TN",
			Owner:       "Murugan S",
			Rating:      4.2,
			Reviews:     17,
			Available:   true,
			Featured:    false,
			HP:          "3.5 HP",
			FuelType:    "Petrol",
			Year:        2024,
			Images:      2,
			Specs: []entity.Spec{
				{Label: "Engine", Value: "3.5 HP 4-stroke"},
				{Label: "Working Width", Value: "600mm"},
				{Label: "Depth", Value: "5 in"},
				{Label: "Weight", Value: "38 kg"},
			},
		},
		{
			ID:          11,
			Name:        "Drip Irrigation Kit",
			Category:    entity.CategoryIrrigation,
			Description: "Complete drip irrigation system for 1 acre covering row crops.",
			RentPrice:   400,
			BuyPrice:    25000,
			ListingType: entity.ListingBuy,
			Location:    "Sangli, Maharashtra",
			Owner:       "Manoj Kulkarni",
			Rating:      4.5,
			Reviews:     33,
			Available:   true,
			Featured:    false,
			FuelType:    "N/A",
			Year:        2024,
			Images:      2,
			Specs: []entity.Spec{
				{Label: "Coverage", Value: "1 acre"},
				{Label: "Drippers", Value: "2 LPH inline"},
				{Label: "Lateral", Value: "16mm LLDPE"},
				{Label: "Filter", Value: "Screen filter"},
			},
		},
		{
			ID:          12,
			Name:        "Brush Cutter",
			Category:    entity.CategoryTools,
			Description: "43cc petrol brush cutter for grass, weeds, and small shrub clearing.",
			RentPrice:   250,
			BuyPrice:    8500,
			ListingType: entity.ListingBoth,
			Location:    "Mysuru, Karnataka",
			Owner:       "Praveen Gowda",
			Rating:      4.4,
			Reviews:     28,
			Available:   true,
			Featured:    false,
			HP:          "2 HP",
			FuelType:    "Petrol",
			Year:        2024,
			Images:      2,
			Specs: []entity.Spec{
				{Label: "Engine", Value: "43cc 2-stroke"},
				{Label: "Cutting Dia", Value: "255mm"},
				{Label: "Shaft", Value: "Split shaft"},
				{Label: "Weight", Value: "7.5 kg"},
			},
		},
	}
}
