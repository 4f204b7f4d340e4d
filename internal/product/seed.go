package product

func strptr(s string) *string { return &s }

// SeedCatalog returns the luxury collection loaded by the administrative
// seed operation. The catalog is replaced wholesale each time.
func SeedCatalog() []Product {
	return []Product{
		{
			Name:        "Noir Tailored Wool Coat",
			Brand:       "Balenciaga",
			Price:       2850.00,
			Image:       "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?auto=format&fit=crop&w=800&q=80",
			Category:    "Outerwear",
			Gender:      strptr("Women"),
			Description: strptr("An elegant, long, tailored black wool coat featuring a structured silhouette and dramatic lapels. Perfect for a high-fashion editorial look."),
		},
		{
			Name:        "Oversized Puffer Jacket",
			Brand:       "Vetements",
			Price:       1950.00,
			Image:       "/puffer-jacket.avif",
			Category:    "Outerwear",
			Gender:      strptr("Men"),
			Description: strptr("A massive, oversized padded puffer jacket in matte black. Features a high collar and dropped shoulders for a modern luxury street style aesthetic."),
		},
		{
			Name:        "Monolith Leather Boots",
			Brand:       "Prada",
			Price:       1450.00,
			Image:       "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?auto=format&fit=crop&w=800&q=80",
			Category:    "Shoes",
			Gender:      strptr("Women"),
			Description: strptr("Chunky, combat-inspired leather boots with a polished finish. These boots add a tough, utilitarian edge to any sophisticated outfit."),
		},
		{
			Name:        "Sleek Leather Tote",
			Brand:       "Saint Laurent",
			Price:       2250.00,
			Image:       "https://images.unsplash.com/photo-1591561954557-26941169b49e?auto=format&fit=crop&w=800&q=80",
			Category:    "Accessories",
			Gender:      strptr("Unisex"),
			Description: strptr("A minimalist black leather tote bag with clean lines and subtle branding. The ultimate luxury accessory for the modern professional."),
		},
		{
			Name:        "Quilted Leather Biker",
			Brand:       "Burberry",
			Price:       3200.00,
			Image:       "https://images.unsplash.com/photo-1520975954732-35dd22299614?auto=format&fit=crop&w=800&q=80",
			Category:    "Outerwear",
			Gender:      strptr("Women"),
			Description: strptr("A classic biker jacket reimagined with intricate quilting and premium lambskin leather. Features silver hardware and a cropped fit."),
		},
		{
			Name:        "Cashmere Overcoat",
			Brand:       "The Row",
			Price:       4500.00,
			Image:       "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?auto=format&fit=crop&w=800&q=80",
			Category:    "Outerwear",
			Gender:      strptr("Men"),
			Description: strptr("Pure cashmere overcoat in a deep charcoal black. Unstructured yet refined, offering unparalleled softness and warmth."),
		},
		{
			Name:        "Combat Chelsea Boots",
			Brand:       "Bottega Veneta",
			Price:       1150.00,
			Image:       "https://images.unsplash.com/photo-1605733160314-4fc7dac4bb16?auto=format&fit=crop&w=800&q=80",
			Category:    "Shoes",
			Gender:      strptr("Men"),
			Description: strptr("A modern hybrid of the classic Chelsea boot and a rugged combat boot. Features elastic side panels and a heavy lug sole."),
		},
		{
			Name:        "Nappa Leather Gloves",
			Brand:       "Gucci",
			Price:       450.00,
			Image:       "https://images.unsplash.com/photo-1516961642265-531546e84af2?auto=format&fit=crop&w=800&q=80",
			Category:    "Accessories",
			Gender:      strptr("Unisex"),
			Description: strptr("Silk-lined nappa leather gloves. A timeless essential that provides both warmth and a touch of sophisticated elegance."),
		},
	}
}
