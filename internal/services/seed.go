package services

import "github.com/waibhq/waib/internal/models"

// seedTemplates is the starter catalog inserted on first boot.
func seedTemplates() []models.Template {
	seed := []struct {
		title    string
		price    int
		category string
		img      string
		features []string
	}{
		{
			title:    "SaaS Spark",
			price:    99,
			category: "Business",
			img:      "https://colorlib.com/wp/wp-content/uploads/sites/2/endgam-free-template.jpg",
			features: []string{"Hero + Pricing", "Blog", "Bootstrap 5", "SEO-ready"},
		},
		{
			title:    "Cafe Cozy",
			price:    49,
			category: "Hospitality",
			img:      "https://colorlib.com/wp/wp-content/uploads/sites/2/hostza-free-template.jpg",
			features: []string{"Menu grid", "Booking form", "Sticky navbar"},
		},
		{
			title:    "Portfolio Pro",
			price:    79,
			category: "Portfolio",
			img:      "https://uicookies.com/wp-content/uploads/2018/06/interior-free-web-design-templates.jpg",
			features: []string{"Masonry gallery", "Case studies", "Contact form"},
		},
		{
			title:    "Edu Learn",
			price:    129,
			category: "Education",
			img:      "https://colorlib.com/wp/wp-content/uploads/sites/2/videograph-free-template.jpg",
			features: []string{"Course cards", "FAQ", "Newsletter"},
		},
		{
			title:    "Event Vibe",
			price:    59,
			category: "Events",
			img:      "https://uicookies.com/wp-content/uploads/2018/06/dorne-free-magazine-website-templates.jpg",
			features: []string{"Agenda", "Speakers", "Ticket CTA"},
		},
		{
			title:    "Startup Hub",
			price:    109,
			category: "Business",
			img:      "https://uicookies.com/wp-content/uploads/2018/08/tough-free-industrial-website-templates.jpg",
			features: []string{"Hero section", "Testimonials", "Contact form"},
		},
	}

	out := make([]models.Template, 0, len(seed))
	for _, s := range seed {
		t := models.Template{Title: s.title, Price: s.price, Category: s.category, Img: s.img}
		t.SetFeatures(s.features)
		out = append(out, t)
	}
	return out
}
