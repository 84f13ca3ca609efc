package catalog

// Examples are curated placeholder value-sets for quick-start loading.
var Examples = []Example{
	{
		ID:         "ex-smartwatch",
		Name:       "Smartwatch Crate Opening",
		TemplateID: "crate-opening",
		Values: map[string]string{
			"BRAND_NAME":              "Aura",
			"PRODUCT_NAME":            "Aura-Band Pro",
			"PRODUCT_ELEMENTS":        "glossy black watch face, titanium alloy casing, woven nylon strap",
			"SUPPORTING_VISUAL_PROPS": "geometric light patterns, soft energy waves",
		},
	},
	{
		ID:         "ex-dior-perfume",
		Name:       "Dior-Style Perfume Ad",
		TemplateID: "dior-perfume",
		Values: map[string]string{
			"BRAND_NAME":   "Dior",
			"PRODUCT_NAME": "J'adore",
		},
	},
	{
		ID:         "ex-iphone-unboxing",
		Name:       "Apple-Style iPhone Unboxing",
		TemplateID: "tech-unboxing",
		Values: map[string]string{
			"BRAND_NAME":   "Apple",
			"PRODUCT_NAME": "iPhone 15 Pro",
			"KEY_FEATURES": "A17 Pro Chip, Dynamic Island, Titanium Frame",
		},
	},
	{
		ID:         "ex-burger-ad",
		Name:       "Gourmet Burger Ad",
		TemplateID: "food-ad",
		Values: map[string]string{
			"MAIN_INGREDIENT": "a thick, juicy beef patty",
			"DISH_NAME":       "The Ultimate Bacon Cheeseburger",
			"FRESH_GARNISHES": "crispy lettuce, ripe tomatoes, melted cheddar cheese",
		},
	},
	{
		ID:         "ex-relic-reveal",
		Name:       "Fantasy Relic Reveal",
		TemplateID: "fantasy-epic",
		Values: map[string]string{
			"PRODUCT_NAME": "The Chronos Sphere",
		},
	},
	{
		ID:         "ex-cyber-headset",
		Name:       "Cyberpunk Headset Thriller",
		TemplateID: "action-thriller",
		Values: map[string]string{
			"PRODUCT_NAME": "Neuralink X-1 Headset",
		},
	},
}

// VisualStyles is the fixed aesthetic-direction enumeration.
var VisualStyles = []VisualStyle{
	{ID: "cyberpunk", Name: "Cyberpunk"},
	{ID: "art-deco", Name: "Art Deco"},
	{ID: "film-noir", Name: "Film Noir"},
	{ID: "impressionism", Name: "Impressionism"},
	{ID: "minimalist", Name: "Minimalist"},
	{ID: "steampunk", Name: "Steampunk"},
	{ID: "dreamy", Name: "Dreamy"},
	{ID: "gritty", Name: "Gritty"},
	{ID: "retro-futuristic", Name: "Retro Futuristic"},
}

// ShowcaseVideos is the inspiration reel. Each entry points at the example
// that can be loaded to reproduce it.
var ShowcaseVideos = []ShowcaseVideo{
	{
		ID:          "vid1",
		VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
		Title:       "Aura Smartwatch",
		Description: "A futuristic crate-opening sequence revealing a sleek new smartwatch.",
		ExampleID:   "ex-smartwatch",
	},
	{
		ID:          "vid2",
		VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
		Title:       "Fantasy Relic: The Chronos Sphere",
		Description: "An epic, world-changing reveal of a mythical artifact in a fantasy setting.",
		ExampleID:   "ex-relic-reveal",
	},
	{
		ID:          "vid3",
		VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		Title:       "Neuralink Headset",
		Description: "A high-octane chase through a neon-drenched city to deliver a classified piece of tech.",
		ExampleID:   "ex-cyber-headset",
	},
	{
		ID:          "vid4",
		VideoURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		Title:       "Ultimate Cheeseburger",
		Description: "A delicious, slow-motion look at the creation of a gourmet burger.",
		ExampleID:   "ex-burger-ad",
	},
}
