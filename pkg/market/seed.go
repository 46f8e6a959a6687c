package market

import "cropwise/entities"

const SourceSeed = "seed"

// SeedPrices are KES per kg.
func SeedPrices() []entities.MarketPrice {
	p := func(crop, variety string, kes float64) entities.MarketPrice {
		return entities.MarketPrice{Crop: crop, Variety: variety, PricePerKg: kes, Source: SourceSeed}
	}
	return []entities.MarketPrice{
		p("cabbage", "green", 350),
		p("cabbage", "red", 448),
		p("cabbage", "savoy", 532),
		p("kale", "sukuma", 120),
		p("kale", "curly", 250),
		p("kale", "lacinato", 400),
	}
}

func SeedTrends() []entities.PriceTrend {
	return []entities.PriceTrend{
		{Period: "week", Percent: 5.2},
		{Period: "month", Percent: 12.8},
		{Period: "season", Percent: -3.5},
	}
}
