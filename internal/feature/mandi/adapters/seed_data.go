package adapters

import "nethra_backend/internal/feature/mandi/domain/entity"

// SeedMandiPrices は初期投入するマンディ価格を表示順で返します。
func SeedMandiPrices() []entity.MandiPrice {
	const unit = "₹/quintal"
	return []entity.MandiPrice{
		{Crop: "Wheat", Variety: "Lokwan", Mandi: "Azadpur", State: "Delhi", MinPrice: 2100, MaxPrice: 2380, ModalPrice: 2240, Unit: unit, Trend: entity.TrendUp, Change: 2.3, LastUpdated: "2h ago"},
		{Crop: "Rice", Variety: "Basmati", Mandi: "Karnal", State: "Haryana", MinPrice: 3200, MaxPrice: 3800, ModalPrice: 3550, Unit: unit, Trend: entity.TrendUp, Change: 1.5, LastUpdated: "1h ago"},
		{Crop: "Maize", Variety: "Hybrid", Mandi: "Davangere", State: "Karnataka", MinPrice: 1480, MaxPrice: 1760, ModalPrice: 1620, Unit: unit, Trend: entity.TrendDown, Change: -0.8, LastUpdated: "3h ago"},
		{Crop: "Cotton", Variety: "Long Staple", Mandi: "Rajkot", State: "Gujarat", MinPrice: 6200, MaxPrice: 6950, ModalPrice: 6600, Unit: unit, Trend: entity.TrendStable, Change: 0.1, LastUpdated: "2h ago"},
		{Crop: "Soybean", Variety: "Yellow", Mandi: "Indore", State: "Madhya Pradesh", MinPrice: 3900, MaxPrice: 4350, ModalPrice: 4100, Unit: unit, Trend: entity.TrendUp, Change: 3.1, LastUpdated: "1h ago"},
		{Crop: "Groundnut", Variety: "Bold", Mandi: "Junagadh", State: "Gujarat", MinPrice: 5100, MaxPrice: 5680, ModalPrice: 5400, Unit: unit, Trend: entity.TrendDown, Change: -1.2, LastUpdated: "4h ago"},
		{Crop: "Mustard", Variety: "Yellow", Mandi: "Alwar", State: "Rajasthan", MinPrice: 4800, MaxPrice: 5350, ModalPrice: 5100, Unit: unit, Trend: entity.TrendUp, Change: 0.9, LastUpdated: "2h ago"},
		{Crop: "Chickpea", Variety: "Desi", Mandi: "Gulbarga", State: "Karnataka", MinPrice: 4200, MaxPrice: 4900, ModalPrice: 4550, Unit: unit, Trend: entity.TrendStable, Change: 0.0, LastUpdated: "5h ago"},
		{Crop: "Sugarcane", Variety: "CO-86032", Mandi: "Meerut", State: "Uttar Pradesh", MinPrice: 290, MaxPrice: 340, ModalPrice: 315, Unit: unit, Trend: entity.TrendStable, Change: 0.0, LastUpdated: "6h ago"},
		{Crop: "Tomato", Variety: "Hybrid", Mandi: "Kolar", State: "Karnataka", MinPrice: 800, MaxPrice: 1600, ModalPrice: 1200, Unit: unit, Trend: entity.TrendUp, Change: 18.5, LastUpdated: "30m ago"},
		{Crop: "Onion", Variety: "Red", Mandi: "Lasalgaon", State: "Maharashtra", MinPrice: 550, MaxPrice: 950, ModalPrice: 750, Unit: unit, Trend: entity.TrendDown, Change: -5.2, LastUpdated: "1h ago"},
		{Crop: "Potato", Variety: "Kufri Jyoti", Mandi: "Agra", State: "Uttar Pradesh", MinPrice: 600, MaxPrice: 950, ModalPrice: 780, Unit: unit, Trend: entity.TrendDown, Change: -2.1, LastUpdated: "2h ago"},
		{Crop: "Barley", Variety: "Six Row", Mandi: "Jaipur", State: "Rajasthan", MinPrice: 1600, MaxPrice: 1900, ModalPrice: 1750, Unit: unit, Trend: entity.TrendUp, Change: 1.1, LastUpdated: "3h ago"},
		{Crop: "Turmeric", Variety: "Erode", Mandi: "Erode", State: "Tamil Nadu", MinPrice: 7200, MaxPrice: 8500, ModalPrice: 7900, Unit: unit, Trend: entity.TrendUp, Change: 4.3, LastUpdated: "1h ago"},
		{Crop: "Chilli", Variety: "Teja", Mandi: "Guntur", State: "Andhra Pradesh", MinPrice: 8000, MaxPrice: 12000, ModalPrice: 10000, Unit: unit, Trend: entity.TrendUp, Change: 6.8, LastUpdated: "2h ago"},
	}
}
