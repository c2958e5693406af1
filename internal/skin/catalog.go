package skin

import "fmt"

// Product is a recommended product for a skin type.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"` // file name relative to the configured image directory
}

// Profile holds all display content for one skin type.
type Profile struct {
	Type           SkinType  `json:"type"`
	Summary        string    `json:"summary"` // one-paragraph text shown next to the selector
	Description    string    `json:"description"`
	Products       []Product `json:"products"`
	Schedule       string    `json:"schedule"`
	Tips           string    `json:"tips"`
	BestTimeToWash string    `json:"best_time_to_wash"`
}

var profiles = map[SkinType]Profile{
	Dry: {
		Type:    Dry,
		Summary: "Dry skin lacks moisture and often feels tight and rough.\nProper hydration, gentle cleansers, and nourishing moisturizers are essential for a healthy, radiant complexion.",
		Description: "Dry skin often feels tight and rough, lacking proper moisture and natural oils. It may appear dull, flaky, or even itchy. " +
			"Proper hydration, gentle cleansers, and nourishing moisturizers are essential to restore its natural balance and achieve a healthy, radiant complexion.",
		Products: []Product{
			{
				Name:        "CeraVe Moisturizing Cream",
				Description: "A popular and effective product specifically formulated for dry skin. It contains essential ceramides and hyaluronic acid, which help to restore and retain the skin's natural moisture barrier. The non-greasy formula provides long-lasting hydration, making it suitable for both the face and body.",
				Image:       "dry_product01.jpg",
			},
			{
				Name:        "Neutrogena Hydro Boost Water Gel",
				Description: "A lightweight, gel-based moisturizer that instantly hydrates the skin. It is formulated with hyaluronic acid, which attracts and locks in moisture, leaving the skin smooth and supple without feeling greasy.",
				Image:       "dry_product2.jpg",
			},
			{
				Name:        "La Roche-Posay Lipikar Balm AP+",
				Description: "An ultra-nourishing balm designed to soothe and replenish dry, uncomfortable skin. It contains shea butter and niacinamide, which help to repair the skin's natural barrier and provide long-lasting hydration.",
				Image:       "dry_product03.jpg",
			},
		},
		Schedule: "Morning Routine for Dry Skin:\n" +
			"1. Cleanse your face with a mild, hydrating cleanser.\n" +
			"2. Apply a nourishing moisturizer with hyaluronic acid.\n" +
			"3. Use a sunscreen with SPF 30 or higher.\n\n" +
			"Evening Routine for Dry Skin:\n" +
			"1. Double cleanse with an oil-based cleanser followed by a creamy cleanser.\n" +
			"2. Apply a hydrating toner to balance the skin's pH.\n" +
			"3. Use a serum with ingredients like vitamin E and C to combat dryness.\n" +
			"4. Apply a thicker moisturizer to lock in hydration.\n" +
			"5. Optional: Use a facial oil for added nourishment.\n",
		Tips: "Tips for Dry Skin:\n" +
			"1. Drink plenty of water to keep your skin hydrated.\n" +
			"2. Avoid using harsh, alcohol-based products that can dry out your skin.\n" +
			"3. Consider adding a weekly hydrating mask to your routine.\n",
		BestTimeToWash: "Best time to wash your face is once a day, preferably in the evening.",
	},
	Oily: {
		Type:    Oily,
		Summary: "Oily skin produces excess sebum, resulting in a shiny, greasy appearance.\nBalancing oil production and using non-comedogenic products can help control shine and maintain a clearer complexion.",
		Description: "Oily skin tends to produce excess sebum, resulting in a shiny, greasy appearance. It is more prone to acne and clogged pores. " +
			"Using oil-free, non-comedogenic products and maintaining a consistent skincare routine can help balance and control oil production.",
		Products: []Product{
			{
				Name:        "Cetaphil Pro Oil Removing Foam Wash",
				Description: "A foaming facial cleanser specially formulated for oily and acne-prone skin. It effectively removes excess oil, dirt, and impurities without over-drying the skin, leaving it clean and refreshed.",
				Image:       "oily_product1.jpg",
			},
			{
				Name:        "Paula's Choice Skin Perfecting 2% BHA Liquid Exfoliant",
				Description: "A leave-on exfoliant with 2% salicylic acid (BHA) that helps to unclog pores, reduce blackheads, and smooth the skin's texture. It also contains green tea extract for added antioxidant benefits.",
				Image:       "oily_product2.jpg",
			},
			{
				Name:        "Neutrogena Oil-Free Moisture Broad Spectrum SPF 35",
				Description: "An oil-free, non-comedogenic moisturizer with SPF 35 sun protection. It provides lightweight hydration and helps to protect the skin from harmful UV rays without clogging pores or causing breakouts.",
				Image:       "oily_product3.jpg",
			},
		},
		Schedule: "Morning Routine for Oily Skin:\n" +
			"1. Cleanse your face with a gel-based or foaming cleanser.\n" +
			"2. Use a lightweight, oil-free moisturizer.\n" +
			"3. Apply a sunscreen with SPF 30 or higher.\n\n" +
			"Evening Routine for Oily Skin:\n" +
			"1. Double cleanse with a gentle cleanser to remove makeup and oil.\n" +
			"2. Use a toner with ingredients like witch hazel to control excess oil.\n" +
			"3. Apply a light gel-based moisturizer.\n" +
			"4. Use a spot treatment for acne-prone areas.\n" +
			"5. Optional: Use an oil-absorbing sheet during the day.\n",
		Tips: "Tips for Oily Skin:\n" +
			"1. Avoid heavy, pore-clogging products.\n" +
			"2. Use oil-absorbing sheets during the day to control shine.\n" +
			"3. Don't over-wash your face as it can lead to more oil production.\n",
		BestTimeToWash: "Best time to wash your face is twice a day, once in the morning and once before bed.",
	},
	Combination: {
		Type:    Combination,
		Summary: "Combination skin has both oily and dry areas.\nA skincare routine addressing both types is essential for a balanced complexion.",
		Description: "Combination skin is characterized by having both oily and dry areas on the face. The T-zone (forehead, nose, and chin) tends to be oilier, while the cheeks are drier. " +
			"A balanced skincare routine is crucial, using products suitable for both skin types to maintain a healthy complexion.",
		Products: []Product{
			{
				Name:        "CeraVe Foaming Facial Cleanser",
				Description: "A gentle foaming cleanser suitable for both oily and dry areas. It effectively removes impurities and excess oil while maintaining the skin's natural moisture balance.",
				Image:       "combo_product1.jpg",
			},
			{
				Name:        "The Ordinary Niacinamide 10% + Zinc 1%",
				Description: "A lightweight serum containing niacinamide and zinc that helps to regulate sebum production, minimize pores, and improve overall skin texture. It is suitable for combination and oily skin types.",
				Image:       "combo_product2.jpg",
			},
			{
				Name:        "Clinique Dramatically Different Moisturizing Gel",
				Description: "A lightweight, oil-free gel moisturizer that provides hydration to the skin without leaving a greasy residue. It is formulated to balance moisture levels for both dry and oily areas.",
				Image:       "combo_product3.jpg",
			},
		},
		Schedule: "Morning Routine for Combination Skin:\n" +
			"1. Cleanse your face with a gentle cleanser.\n" +
			"2. Apply a lightweight moisturizer on the dry areas.\n" +
			"3. Use an oil-free moisturizer on the oily areas.\n" +
			"4. Apply a sunscreen with SPF 30 or higher.\n\n" +
			"Evening Routine for Combination Skin:\n" +
			"1. Double cleanse with a cleanser suitable for both dry and oily areas.\n" +
			"2. Use a toner to balance the skin's pH.\n" +
			"3. Apply a lightweight moisturizer on the dry areas.\n" +
			"4. Use an oil-free moisturizer on the oily areas.\n" +
			"5. Optional: Use a spot treatment for acne-prone areas.\n",
		Tips: "Tips for Combination Skin:\n" +
			"1. Pay attention to the different needs of your T-zone and cheeks.\n" +
			"2. Consider using a weekly exfoliating treatment to prevent clogged pores.\n" +
			"3. Use oil-absorbing sheets on the T-zone during the day.\n",
		BestTimeToWash: "Best time to wash your face is twice a day, once in the morning and once before bed.",
	},
	Sensitive: {
		Type:    Sensitive,
		Summary: "Sensitive skin is easily irritated and reactive to various factors.\nUsing gentle, hypoallergenic products can help soothe and protect sensitive skin.",
		Description: "Sensitive skin is easily irritated and reactive to various factors, such as environmental triggers, fragrances, or certain skincare ingredients. " +
			"It requires gentle and hypoallergenic products that soothe and protect the skin's barrier.",
		Products: []Product{
			{
				Name:        "Vanicream Gentle Facial Cleanser",
				Description: "A gentle and non-comedogenic cleanser suitable for sensitive and reactive skin. It effectively removes impurities without causing irritation or dryness.",
				Image:       "sen_product1.jpg",
			},
			{
				Name:        "Avene Thermal Spring Water",
				Description: "A soothing and calming mist that provides instant relief to sensitive and irritated skin. It is enriched with minerals to help restore the skin's natural balance.",
				Image:       "sen_product2.jpg",
			},
			{
				Name:        "Cetaphil Daily Hydrating Lotion",
				Description: "A lightweight, hydrating lotion that is non-greasy and ideal for sensitive skin. It provides long-lasting moisture and helps to protect the skin's barrier.",
				Image:       "sen_product3.jpg",
			},
		},
		Schedule: "Morning Routine for Sensitive Skin:\n" +
			"1. Cleanse your face with a mild, fragrance-free cleanser.\n" +
			"2. Apply a lightweight, hypoallergenic moisturizer.\n" +
			"3. Use a sunscreen with SPF 30 or higher.\n\n" +
			"Evening Routine for Sensitive Skin:\n" +
			"1. Double cleanse with a gentle cleanser to remove makeup and impurities.\n" +
			"2. Use a calming toner with ingredients like chamomile or aloe vera.\n" +
			"3. Apply a soothing serum with hyaluronic acid.\n" +
			"4. Use a fragrance-free moisturizer.\n" +
			"5. Optional: Apply a nourishing facial oil for added hydration.\n",
		Tips: "Tips for Sensitive Skin:\n" +
			"1. Avoid products with harsh chemicals and fragrances.\n" +
			"2. Perform patch tests when trying new products.\n" +
			"3. Keep your skincare routine simple and avoid over-exfoliating.\n",
		BestTimeToWash: "Best time to wash your face is twice a day, once in the morning and once before bed.",
	},
}

// Lookup returns the profile for t. The returned value shares no memory with
// the catalog.
func Lookup(t SkinType) (Profile, error) {
	p, ok := profiles[t]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownSkinType, string(t))
	}
	return p.clone(), nil
}

// Catalog returns every profile in display order.
func Catalog() []Profile {
	out := make([]Profile, 0, len(allTypes))
	for _, t := range allTypes {
		out = append(out, profiles[t].clone())
	}
	return out
}

func (p Profile) clone() Profile {
	p.Products = append([]Product(nil), p.Products...)
	return p
}

// Instructions is the "how to pick your skin type" guide shown on request.
func Instructions() string {
	return "Welcome to N'Kahoots Skin Type Selector!\n\n" +
		"Please read the descriptions of each skin type below and select the one that best " +
		"matches your skin characteristics. Once you choose your skin type, you will see " +
		"the recommended products and skincare schedule.\n\n" +
		"Dry Skin: Lacks moisture and often feels tight and rough. Proper hydration, gentle cleansers, and nourishing moisturizers are essential for a healthy, radiant complexion.\n\n" +
		"Oily Skin: Produces excess sebum, resulting in a shiny, greasy appearance. Balancing oil production and using non-comedogenic products can help control shine and maintain a clearer complexion.\n\n" +
		"Combination Skin: Characterized by both oily and dry areas. A skincare routine addressing both types is essential for a balanced complexion.\n\n" +
		"Sensitive Skin: Easily irritated and reactive to various factors. Using gentle, hypoallergenic products can help soothe and protect sensitive skin.\n\n" +
		"Reminder: After selecting your skin type and viewing the recommended products and skincare schedule, you have the option to set a daily reminder for your skincare routine. " +
		"Use /remind to choose a date and time for your reminder. If the chosen time has already passed, you will be asked whether to set it for the following day.\n\n" +
		"Consistency is key for achieving healthy, glowing skin! Your reminder will help you stay on track with your skincare routine and work towards improving your skin's health and appearance.\n"
}
