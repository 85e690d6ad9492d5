package catalog

// The demo store stocks twelve products across four categories.

var defaultProducts = []Product{
	{
		ID:          1,
		Name:        "Minimalist Leather Tote",
		Category:    "Accessories",
		PriceCents:  18900,
		Rating:      4.8,
		ReviewCount: 124,
		Badges:      []string{"Bestseller"},
		Colors:      []string{"Black", "Cognac", "Slate"},
		Sizes:       []string{"One Size"},
		Description: "Premium full-grain leather tote with minimalist design. Spacious interior with magnetic closure and interior pockets. Perfect for daily use or travel.",
		Features:    []string{"Full-grain leather", "Magnetic closure", "Interior pockets", "15\" laptop compatible"},
	},
	{
		ID:          2,
		Name:        "Cashmere Blend Sweater",
		Category:    "Clothing",
		PriceCents:  14500,
		Rating:      4.9,
		ReviewCount: 89,
		Badges:      []string{"New"},
		Colors:      []string{"Cream", "Navy", "Charcoal"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Description: "Luxuriously soft cashmere blend sweater with a timeless crew neck design. Perfect weight for layering or wearing solo.",
		Features:    []string{"70% cashmere, 30% wool", "Dry clean only", "Ribbed cuffs", "Classic fit"},
	},
	{
		ID:          3,
		Name:        "Wireless Minimalist Earbuds",
		Category:    "Tech",
		PriceCents:  12900,
		Rating:      4.6,
		ReviewCount: 267,
		Badges:      []string{"Bestseller"},
		Colors:      []string{"White", "Black"},
		Sizes:       []string{"One Size"},
		Description: "Premium wireless earbuds with active noise cancellation and 24-hour battery life. Sleek minimalist design meets superior sound quality.",
		Features:    []string{"Active noise cancellation", "24hr battery", "IPX4 water resistant", "USB-C charging"},
	},
	{
		ID:          4,
		Name:        "Organic Cotton Duvet Cover",
		Category:    "Home",
		PriceCents:  16800,
		Rating:      4.7,
		ReviewCount: 156,
		Badges:      []string{"New"},
		Colors:      []string{"White", "Sage", "Slate"},
		Sizes:       []string{"Queen", "King"},
		Description: "Ultra-soft organic cotton duvet cover with clean, minimal design. Breathable and gets softer with every wash.",
		Features:    []string{"100% organic cotton", "OEKO-TEX certified", "Hidden button closure", "Machine washable"},
	},
	{
		ID:          5,
		Name:        "Ceramic Coffee Mug Set",
		Category:    "Home",
		PriceCents:  5800,
		Rating:      4.9,
		ReviewCount: 201,
		Badges:      []string{"Bestseller"},
		Colors:      []string{"Natural", "Midnight Blue"},
		Sizes:       []string{"Set of 4"},
		Description: "Handcrafted ceramic mugs with smooth matte finish. Perfect weight and balance for your morning ritual.",
		Features:    []string{"Handcrafted ceramic", "Microwave safe", "Dishwasher safe", "12oz capacity"},
	},
	{
		ID:          6,
		Name:        "Merino Wool Beanie",
		Category:    "Accessories",
		PriceCents:  4500,
		Rating:      4.8,
		ReviewCount: 143,
		Colors:      []string{"Charcoal", "Oatmeal", "Forest"},
		Sizes:       []string{"One Size"},
		Description: "Soft merino wool beanie with classic ribbed knit. Temperature-regulating and naturally odor-resistant.",
		Features:    []string{"100% merino wool", "Ribbed knit", "Temperature regulating", "One size fits most"},
	},
	{
		ID:          7,
		Name:        "Slim-Fit Oxford Shirt",
		Category:    "Clothing",
		PriceCents:  9800,
		Rating:      4.7,
		ReviewCount: 178,
		Colors:      []string{"White", "Light Blue", "Pink"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Description: "Premium cotton oxford with a modern slim fit. Versatile enough for office or weekend wear.",
		Features:    []string{"100% cotton oxford", "Mother of pearl buttons", "Machine washable", "Wrinkle resistant"},
	},
	{
		ID:          8,
		Name:        "Smart Desk Lamp",
		Category:    "Tech",
		PriceCents:  17900,
		Rating:      4.8,
		ReviewCount: 94,
		Badges:      []string{"New"},
		Colors:      []string{"Silver", "Black"},
		Sizes:       []string{"One Size"},
		Description: "Sleek LED desk lamp with adjustable brightness and color temperature. USB-C charging port and minimalist touch controls.",
		Features:    []string{"Adjustable brightness", "Color temperature control", "USB-C charging port", "Touch controls"},
	},
	{
		ID:          9,
		Name:        "Linen Throw Pillow",
		Category:    "Home",
		PriceCents:  5200,
		Rating:      4.6,
		ReviewCount: 112,
		Colors:      []string{"Natural", "Charcoal", "Rust"},
		Sizes:       []string{"18x18", "20x20"},
		Description: "Pure linen throw pillow with hidden zipper. Soft, breathable, and naturally textured for effortless style.",
		Features:    []string{"100% linen", "Hidden zipper", "Removable cover", "Feather insert included"},
	},
	{
		ID:          10,
		Name:        "Leather Card Wallet",
		Category:    "Accessories",
		PriceCents:  6800,
		Rating:      4.9,
		ReviewCount: 289,
		Badges:      []string{"Bestseller"},
		Colors:      []string{"Black", "Tan", "Navy"},
		Sizes:       []string{"One Size"},
		Description: "Slim leather card wallet with RFID protection. Holds 4-6 cards plus cash. Ages beautifully with use.",
		Features:    []string{"Full-grain leather", "RFID protection", "Holds 4-6 cards", "Slim profile"},
	},
	{
		ID:          11,
		Name:        "Wide-Leg Trousers",
		Category:    "Clothing",
		PriceCents:  13500,
		Rating:      4.7,
		ReviewCount: 167,
		Badges:      []string{"New"},
		Colors:      []string{"Black", "Navy", "Cream"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Description: "High-waisted wide-leg trousers in premium twill. Effortlessly elegant with a relaxed, flowing silhouette.",
		Features:    []string{"Premium twill fabric", "High waisted", "Side zip closure", "Dry clean recommended"},
	},
	{
		ID:          12,
		Name:        "Portable Bluetooth Speaker",
		Category:    "Tech",
		PriceCents:  14900,
		Rating:      4.8,
		ReviewCount: 203,
		Colors:      []string{"Charcoal", "Sand"},
		Sizes:       []string{"One Size"},
		Description: "Premium portable speaker with 360° sound and 12-hour battery. Waterproof design perfect for any adventure.",
		Features:    []string{"360° sound", "12hr battery", "IPX7 waterproof", "Bluetooth 5.0"},
	},
}

var defaultCategories = []Category{
	{ID: "all", Name: "All Products", Icon: "grid"},
	{ID: "Accessories", Name: "Accessories", Icon: "bag"},
	{ID: "Clothing", Name: "Clothing", Icon: "shirt"},
	{ID: "Tech", Name: "Tech", Icon: "device"},
	{ID: "Home", Name: "Home", Icon: "home"},
}

var defaultPriceRanges = []PriceRange{
	{ID: "all", Label: "All Prices", MinCents: 0, MaxCents: NoUpperBound},
	{ID: "under-50", Label: "Under $50", MinCents: 0, MaxCents: 5000},
	{ID: "50-100", Label: "$50 - $100", MinCents: 5000, MaxCents: 10000},
	{ID: "100-150", Label: "$100 - $150", MinCents: 10000, MaxCents: 15000},
	{ID: "over-150", Label: "Over $150", MinCents: 15000, MaxCents: NoUpperBound},
}

var defaultFeaturedIDs = []int{1, 3, 5, 10}
