// Package seed holds the fixed sample data the store boots from. All
// state is volatile; the process starts from these collections and loses
// everything on restart.
package seed

import (
	"time"

	"aurum-store/internal/models"
)

// Pincodes lists the initially serviceable areas: Pune (411xxx) and
// Kolhapur (416xxx).
func Pincodes() []string {
	return []string{
		"411001", "411004", "411007", "411038", "411045",
		"416001", "416002", "416003", "416012", "416229",
	}
}

// Categories returns the initial category taxonomy
func Categories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Watches"},
		{ID: "2", Name: "Fragrance"},
		{ID: "3", Name: "Accessories"},
		{ID: "4", Name: "Apparel"},
		{ID: "5", Name: "Jewelry"},
		{ID: "6", Name: "Footwear"},
		{ID: "7", Name: "Alcoholic"},
		{ID: "8", Name: "Non-Alcoholic"},
		{ID: "9", Name: "Limited Time"},
		{ID: "10", Name: "Seasonal"},
	}
}

// Products returns the initial catalog
func Products() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Royal Chronograph",
			Description: "A masterpiece of timekeeping in 18k gold plating.",
			Price:       12500,
			Category:    "Watches",
			Stock:       5,
			Image:       "https://picsum.photos/400/400?random=1",
		},
		{
			ID:          2,
			Name:        "Obsidian Essence",
			Description: "Rare oud and amber fragrance for the discerning soul.",
			Price:       4500,
			Category:    "Fragrance",
			Stock:       12,
			Image:       "https://picsum.photos/400/400?random=2",
		},
		{
			ID:          3,
			Name:        "Golden Weave Clutch",
			Description: "Hand-stitched silk clutch with golden thread embroidery.",
			Price:       8900,
			Category:    "Accessories",
			Stock:       3,
			Image:       "https://picsum.photos/400/400?random=3",
		},
		{
			ID:          4,
			Name:        "Heritage Silk Scarf",
			Description: "100% pure silk scarf with ancient royal patterns.",
			Price:       2100,
			Category:    "Apparel",
			Stock:       20,
			Image:       "https://picsum.photos/400/400?random=4",
		},
		{
			ID:          5,
			Name:        "Aurum Cufflinks",
			Description: "Minimalist design, maximum impact. Solid brass core.",
			Price:       1500,
			Category:    "Jewelry",
			Stock:       15,
			Image:       "https://picsum.photos/400/400?random=5",
		},
		{
			ID:          6,
			Name:        "Midnight Velvet Loafers",
			Description: "Italian velvet loafers with gold-plated bits.",
			Price:       6700,
			Category:    "Footwear",
			Stock:       8,
			Image:       "https://picsum.photos/400/400?random=6",
		},
		{
			ID:          7,
			Name:        "Vintage Reserve Merlot",
			Description: "Aged 12 years, notes of oak and blackberry.",
			Price:       3200,
			Category:    "Alcoholic",
			Stock:       25,
			Image:       "https://picsum.photos/400/400?random=7",
		},
		{
			ID:          8,
			Name:        "Blue Mountain Estate Coffee",
			Description: "Single-origin beans roasted to perfection, distinct floral notes.",
			Price:       4100,
			Category:    "Non-Alcoholic",
			Stock:       10,
			Image:       "https://picsum.photos/400/400?random=8",
		},
		{
			ID:          9,
			Name:        "Himalayan Crystal Water",
			Description: "Bottled at the source in glass decanters. Limited edition.",
			Price:       800,
			Category:    "Non-Alcoholic",
			Stock:       50,
			Image:       "https://picsum.photos/400/400?random=9",
		},
		{
			ID:          10,
			Name:        "Classic Cola",
			Description: "Refreshing carbonated beverage served in crystal glass.",
			Price:       150,
			Category:    "Non-Alcoholic",
			Stock:       100,
			Image:       "https://picsum.photos/400/400?random=10",
		},
		{
			ID:          11,
			Name:        "Thumbs Up",
			Description: "Strong, spicy, fizzy cola. The taste of thunder.",
			Price:       150,
			Category:    "Non-Alcoholic",
			Stock:       100,
			Image:       "https://picsum.photos/400/400?random=11",
		},
		{
			ID:          12,
			Name:        "Artisan Lemonade",
			Description: "Freshly squeezed lemons with a hint of mint and ginger.",
			Price:       250,
			Category:    "Seasonal",
			Stock:       40,
			Image:       "https://picsum.photos/400/400?random=12",
		},
		{
			ID:          13,
			Name:        "Gold Flake Champagne",
			Description: "Sparkling wine infused with edible 24k gold flakes.",
			Price:       15000,
			Category:    "Limited Time",
			Stock:       5,
			Image:       "https://picsum.photos/400/400?random=13",
		},
	}
}

// Orders returns the initial order history, most recent first
func Orders() []models.Order {
	products := Products()
	now := time.Now()

	return []models.Order{
		{
			ID:           "ORD-7829-XJ",
			CustomerName: "Vikram Rathore",
			Phone:        "9876543210",
			Address:      "Villa 45, Koregaon Park, Pune",
			Items: []models.CartItem{
				{Product: products[0], Quantity: 1},
				{Product: products[6], Quantity: 2},
			},
			TotalAmount:   18900,
			PaymentMethod: models.PaymentMethodOnline,
			Status:        models.OrderStatusPending,
			Date:          now.Add(-30 * time.Minute),
		},
		{
			ID:           "ORD-9921-MC",
			CustomerName: "Ananya Desai",
			Phone:        "9988776655",
			Address:      "Flat 1202, The Royal Gardens, Kolhapur",
			Items: []models.CartItem{
				{Product: products[3], Quantity: 1},
			},
			TotalAmount:   2100,
			PaymentMethod: models.PaymentMethodCOD,
			Status:        models.OrderStatusConfirmed,
			Date:          now.Add(-2 * time.Hour),
		},
		{
			ID:           "ORD-1122-PL",
			CustomerName: "Rohan Kulkarni",
			Phone:        "9123456789",
			Address:      "Plot 88, Viman Nagar, Pune",
			Items: []models.CartItem{
				{Product: products[7], Quantity: 1},
				{Product: products[1], Quantity: 1},
			},
			TotalAmount:   8600,
			PaymentMethod: models.PaymentMethodOnline,
			Status:        models.OrderStatusDelivered,
			Date:          now.Add(-48 * time.Hour),
		},
		{
			ID:           "ORD-3344-GQ",
			CustomerName: "Priya Sharma",
			Phone:        "9000011111",
			Address:      "Penthouse 1, Baner, Pune",
			Items: []models.CartItem{
				{Product: products[12], Quantity: 1},
			},
			TotalAmount:   15000,
			PaymentMethod: models.PaymentMethodCOD,
			Status:        models.OrderStatusDelivered,
			Date:          now.Add(-5 * 24 * time.Hour),
		},
		{
			ID:           "ORD-5566-AB",
			CustomerName: "Siddharth Malhotra",
			Phone:        "9822098220",
			Address:      "Bungalow 7, Kalyani Nagar, Pune",
			Items: []models.CartItem{
				{Product: products[2], Quantity: 1},
				{Product: products[5], Quantity: 1},
			},
			TotalAmount:   15600,
			PaymentMethod: models.PaymentMethodOnline,
			Status:        models.OrderStatusPending,
			Date:          now.Add(-5 * time.Minute),
		},
	}
}
