package pricing

func testConfiguration() Configuration {
	return Configuration{
		Tariffs: Tariffs{
			Flyer: map[Side][]RateTier{
				SideRecto:      {{Qty: 100, Price: 40}, {Qty: 500, Price: 70}, {Qty: 1000, Price: 100}},
				SideRectoVerso: {{Qty: 100, Price: 60}, {Qty: 500, Price: 100}, {Qty: 1000, Price: 150}},
			},
			Card: map[CardFinish][]RateTier{
				FinishPlain:     {{Qty: 100, Price: 30}, {Qty: 500, Price: 60}},
				FinishLaminated: {{Qty: 100, Price: 45}, {Qty: 500, Price: 90}},
			},
			Leaflet:    []RateTier{{Qty: 100, Price: 80}, {Qty: 1000, Price: 300}},
			Letterhead: []RateTier{{Qty: 100, Price: 35}, {Qty: 500, Price: 90}},
			Poster:     []RateTier{{Qty: 1, Price: 12}, {Qty: 10, Price: 10}, {Qty: 50, Price: 8}},
		},
		BookCovers: DefaultBookCovers(),
		Fixed:      DefaultFixedCosts,
	}
}

func paperPtr(code string) *Paper {
	p := ParsePaper(code)
	return &p
}
