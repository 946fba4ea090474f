// Package seed holds the fixed record set loaded once at process start. It
// stands in for a real persistent catalog; the store is never re-seeded while
// the process lives.
package seed

import (
	"time"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
)

func Load(s *infra.Store) {
	for _, d := range Destinations() {
		s.Destinations.Put(d.ID, d)
	}
	for _, t := range Tours() {
		s.Tours.Put(t.ID, t)
	}
	for _, i := range Itineraries() {
		s.Itineraries.Put(i.ID, i)
	}
	for _, g := range Guides() {
		s.Guides.Put(g.ID, g)
	}
	for _, t := range Testimonials() {
		s.Testimonials.Put(t.ID, t)
	}
	for _, b := range BlogPosts() {
		s.BlogPosts.Put(b.ID, b)
	}
	for _, m := range TeamMembers() {
		s.TeamMembers.Put(m.ID, m)
	}
	for _, f := range Faqs() {
		s.Faqs.Put(f.ID, f)
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Destinations() []domain_models.Destination {
	return []domain_models.Destination{
		{ID: "1", Name: "Bali", Country: "Indonesia", Continent: domain_models.ContinentAsia, Description: "Experience the magical island of Bali with its stunning temples, rice terraces, and pristine beaches.", ShortDescription: "Tropical paradise with temples and beaches", ImageURL: "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800", Rating: 4.9, ReviewCount: 2847, PriceFrom: 899, Featured: true, Trending: true, Popular: true},
		{ID: "2", Name: "Santorini", Country: "Greece", Continent: domain_models.ContinentEurope, Description: "Explore the iconic white-washed buildings and blue domes of Santorini.", ShortDescription: "Iconic Greek island with stunning sunsets", ImageURL: "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800", Rating: 4.8, ReviewCount: 3156, PriceFrom: 1299, Featured: true, Popular: true},
		{ID: "3", Name: "Maldives", Country: "Maldives", Continent: domain_models.ContinentAsia, Description: "Indulge in the ultimate luxury escape in the Maldives.", ShortDescription: "Luxury overwater villas in crystal waters", ImageURL: "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?w=800", Rating: 4.9, ReviewCount: 1923, PriceFrom: 2499, Featured: true, Trending: true, Popular: true},
		{ID: "4", Name: "Swiss Alps", Country: "Switzerland", Continent: domain_models.ContinentEurope, Description: "Discover the majestic Swiss Alps with breathtaking mountain scenery.", ShortDescription: "Majestic mountains and alpine villages", ImageURL: "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?w=800", Rating: 4.7, ReviewCount: 2134, PriceFrom: 1799, Popular: true, IsNew: true},
		{ID: "5", Name: "Tokyo", Country: "Japan", Continent: domain_models.ContinentAsia, Description: "Immerse yourself in the fascinating blend of ultra-modern and traditional Japan.", ShortDescription: "Ancient traditions meet futuristic innovation", ImageURL: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800", Rating: 4.8, ReviewCount: 4521, PriceFrom: 1599, Featured: true, Trending: true, Popular: true},
		{ID: "6", Name: "Machu Picchu", Country: "Peru", Continent: domain_models.ContinentSouthAmerica, Description: "Trek to the ancient Incan citadel of Machu Picchu.", ShortDescription: "Ancient Incan citadel in the clouds", ImageURL: "https://images.unsplash.com/photo-1526392060635-9d6019884377?w=800", Rating: 4.9, ReviewCount: 2876, PriceFrom: 1899, Featured: true, Popular: true},
		{ID: "7", Name: "Safari Kenya", Country: "Kenya", Continent: domain_models.ContinentAfrica, Description: "Witness the incredible wildlife of Kenya on an unforgettable safari adventure.", ShortDescription: "Wildlife safari and the great migration", ImageURL: "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=800", Rating: 4.8, ReviewCount: 1654, PriceFrom: 2199, Trending: true, IsNew: true},
		{ID: "8", Name: "Dubai", Country: "UAE", Continent: domain_models.ContinentAsia, Description: "Experience the glamour and innovation of Dubai.", ShortDescription: "Luxury, innovation, and desert adventures", ImageURL: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800", Rating: 4.7, ReviewCount: 3892, PriceFrom: 1399, Trending: true, Popular: true},
		{ID: "9", Name: "New Zealand", Country: "New Zealand", Continent: domain_models.ContinentOceania, Description: "Explore the stunning landscapes of New Zealand.", ShortDescription: "Epic landscapes and adventure sports", ImageURL: "https://images.unsplash.com/photo-1469521669194-babb45599def?w=800", Rating: 4.9, ReviewCount: 1876, PriceFrom: 2299, Popular: true, IsNew: true},
	}
}

func Tours() []domain_models.Tour {
	return []domain_models.Tour{
		{ID: "1", Title: "Bali Bliss: Temples & Beaches", DestinationID: "1", Description: "Embark on an unforgettable journey through Bali's most iconic destinations.", ShortDescription: "7-day cultural and beach experience in Bali", Duration: "7 Days / 6 Nights", Price: 1299, OriginalPrice: intPtr(1599), Rating: 4.9, ReviewCount: 847, MaxGroupSize: 12, SpotsLeft: 4, Category: domain_models.CategoryAdventure, ImageURL: "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800", GalleryImages: []string{"https://images.unsplash.com/photo-1555400038-63f5ba517a47?w=800"}, Inclusions: []string{"Airport transfers", "6 nights accommodation", "Daily breakfast", "Professional guide"}, Exclusions: []string{"International flights", "Travel insurance", "Personal expenses"}, Highlights: []string{"Watch sunrise at Mount Batur", "Explore Ubud's art markets"}, Featured: true},
		{ID: "2", Title: "Santorini Romantic Escape", DestinationID: "2", Description: "Experience the romance of Santorini with this carefully curated getaway.", ShortDescription: "5-day romantic getaway in the Greek Islands", Duration: "5 Days / 4 Nights", Price: 1899, OriginalPrice: intPtr(2299), Rating: 4.8, ReviewCount: 623, MaxGroupSize: 8, SpotsLeft: 2, Category: domain_models.CategoryHoneymoon, ImageURL: "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800", GalleryImages: []string{"https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e?w=800"}, Inclusions: []string{"Luxury cave hotel", "Private transfers", "Wine tasting", "Sunset cruise"}, Exclusions: []string{"Flights", "Travel insurance"}, Highlights: []string{"Private sunset dinner in Oia", "Catamaran cruise"}, Featured: true},
		{ID: "3", Title: "Maldives Luxury Retreat", DestinationID: "3", Description: "Indulge in the ultimate luxury at an exclusive Maldives resort.", ShortDescription: "6-day all-inclusive luxury beach escape", Duration: "6 Days / 5 Nights", Price: 3999, OriginalPrice: intPtr(4799), Rating: 4.9, ReviewCount: 412, MaxGroupSize: 6, SpotsLeft: 3, Category: domain_models.CategoryLuxury, ImageURL: "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?w=800", GalleryImages: []string{"https://images.unsplash.com/photo-1573843981267-be1999ff37cd?w=800"}, Inclusions: []string{"Overwater villa", "All meals", "Snorkeling equipment", "Sunset cruise"}, Exclusions: []string{"Flights", "Spa treatments"}, Highlights: []string{"Stay in overwater bungalow", "Swim with manta rays"}, Featured: true},
		{ID: "4", Title: "Japan Cultural Discovery", DestinationID: "5", Description: "Journey through Japan's rich cultural heritage and modern marvels.", ShortDescription: "10-day journey through ancient and modern Japan", Duration: "10 Days / 9 Nights", Price: 2799, OriginalPrice: intPtr(3299), Rating: 4.8, ReviewCount: 892, MaxGroupSize: 14, SpotsLeft: 6, Category: domain_models.CategoryCultural, ImageURL: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800", GalleryImages: []string{"https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=800"}, Inclusions: []string{"JR Pass", "Traditional ryokan stay", "Tea ceremony"}, Exclusions: []string{"Flights", "Lunch and dinner"}, Highlights: []string{"Visit Fushimi Inari shrine", "Bullet train adventure"}, Featured: true},
		{ID: "5", Title: "African Safari Adventure", DestinationID: "7", Description: "Witness the raw beauty of African wildlife on this unforgettable safari.", ShortDescription: "8-day wildlife safari in Kenya", Duration: "8 Days / 7 Nights", Price: 3499, OriginalPrice: intPtr(3999), Rating: 4.9, ReviewCount: 567, MaxGroupSize: 8, SpotsLeft: 5, Category: domain_models.CategoryWildlife, ImageURL: "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=800", GalleryImages: []string{"https://images.unsplash.com/photo-1547471080-7cc2caa01a7e?w=800"}, Inclusions: []string{"Luxury tented camp", "All game drives", "Park entrance fees"}, Exclusions: []string{"Flights", "Visa fees"}, Highlights: []string{"Big Five game viewing", "Maasai cultural experience"}, Featured: true},
		{ID: "6", Title: "Machu Picchu Trek", DestinationID: "6", Description: "Embark on the classic Inca Trail to Machu Picchu.", ShortDescription: "5-day Inca Trail adventure to the lost city", Duration: "5 Days / 4 Nights", Price: 1699, OriginalPrice: intPtr(1999), Rating: 4.9, ReviewCount: 734, MaxGroupSize: 10, SpotsLeft: 3, Category: domain_models.CategoryAdventure, ImageURL: "https://images.unsplash.com/photo-1526392060635-9d6019884377?w=800", GalleryImages: []string{"https://images.unsplash.com/photo-1587595431973-160d0d94add1?w=800"}, Inclusions: []string{"Inca Trail permit", "Professional guide", "Camping equipment"}, Exclusions: []string{"Flights to Cusco", "Sleeping bag"}, Highlights: []string{"Trek the famous Inca Trail", "Sunrise at Sun Gate"}},
	}
}

func Itineraries() []domain_models.TourItinerary {
	return []domain_models.TourItinerary{
		{ID: "1", TourID: "1", Day: 1, Title: "Arrival in Bali", Description: "Welcome to Bali! Upon arrival, you'll be transferred to your hotel.", Activities: []string{"Airport pickup", "Hotel check-in", "Welcome dinner"}},
		{ID: "2", TourID: "1", Day: 2, Title: "Uluwatu Temple & Beaches", Description: "Explore the stunning clifftop Uluwatu Temple.", Activities: []string{"Visit Uluwatu Temple", "Kecak dance performance", "Beach time"}},
		{ID: "3", TourID: "1", Day: 3, Title: "Ubud Art & Culture", Description: "Journey to the cultural heart of Bali.", Activities: []string{"Monkey Forest visit", "Art market exploration", "Rice terrace trek"}},
		{ID: "4", TourID: "1", Day: 4, Title: "Mount Batur Sunrise", Description: "Wake early for a magical sunrise trek to Mount Batur.", Activities: []string{"Sunrise trek", "Volcanic breakfast", "Hot springs relaxation"}},
	}
}

func Guides() []domain_models.TourGuide {
	return []domain_models.TourGuide{
		{ID: "1", Name: "Made Wijaya", Title: "Senior Cultural Guide", Bio: "With over 15 years of experience guiding visitors through Bali's sacred sites.", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400", Languages: []string{"English", "Indonesian", "Japanese"}, Experience: 15, Rating: 4.9},
		{ID: "2", Name: "Elena Papadopoulos", Title: "Greece Specialist", Bio: "Born and raised in Santorini, Elena shares her love for Greek history.", ImageURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400", Languages: []string{"English", "Greek", "Italian"}, Experience: 10, Rating: 4.8},
	}
}

func Testimonials() []domain_models.Testimonial {
	return []domain_models.Testimonial{
		{ID: "1", Name: "Sarah Mitchell", Location: "New York, USA", ImageURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200", Rating: 5, Review: "Our Bali trip exceeded all expectations! The guides were incredibly knowledgeable.", TourID: "1", DestinationName: "Bali", Featured: true},
		{ID: "2", Name: "James & Emma Wilson", Location: "London, UK", ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200", Rating: 5, Review: "The Santorini honeymoon package was pure romance.", TourID: "2", DestinationName: "Santorini", Featured: true},
		{ID: "3", Name: "Raj Patel", Location: "Mumbai, India", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200", Rating: 5, Review: "The African safari was a dream come true.", TourID: "5", DestinationName: "Kenya", Featured: true},
		{ID: "4", Name: "Yuki Tanaka", Location: "Tokyo, Japan", ImageURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=200", Rating: 5, Review: "I traveled solo to Machu Picchu and felt completely safe.", TourID: "6", DestinationName: "Peru", Featured: true},
		{ID: "5", Name: "Michael & Lisa Brown", Location: "Sydney, Australia", ImageURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200", Rating: 5, Review: "The Maldives exceeded our wildest dreams.", TourID: "3", DestinationName: "Maldives", Featured: true},
	}
}

func BlogPosts() []domain_models.BlogPost {
	return []domain_models.BlogPost{
		{ID: "1", Title: "10 Hidden Gems in Bali You Need to Visit", Slug: "hidden-gems-bali", Excerpt: "Discover the secret spots that most tourists miss.", Content: "Full article content here...", ImageURL: "https://images.unsplash.com/photo-1555400038-63f5ba517a47?w=800", Category: "Destinations", Author: "Emma Thompson", AuthorImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100", ReadTime: 8, PublishedAt: date(2024, time.January, 15), Featured: true},
		{ID: "2", Title: "Ultimate Packing Guide for Adventure Travel", Slug: "adventure-packing-guide", Excerpt: "Pack smart, travel light.", Content: "Full article content here...", ImageURL: "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800", Category: "Travel Tips", Author: "David Chen", AuthorImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100", ReadTime: 6, PublishedAt: date(2024, time.January, 10)},
		{ID: "3", Title: "Best Time to Visit Each Continent", Slug: "best-time-to-visit", Excerpt: "Plan your trips perfectly with our seasonal guide.", Content: "Full article content here...", ImageURL: "https://images.unsplash.com/photo-1526778548025-fa2f459cd5c1?w=800", Category: "Planning", Author: "Sophie Anderson", AuthorImage: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100", ReadTime: 10, PublishedAt: date(2024, time.January, 5)},
	}
}

func TeamMembers() []domain_models.TeamMember {
	return []domain_models.TeamMember{
		{ID: "1", Name: "Alexandra Chen", Role: "Founder & CEO", Bio: "With 20+ years in the travel industry, Alex founded Wanderlust Tours.", ImageURL: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=400", LinkedIn: "https://linkedin.com", Twitter: strPtr("https://twitter.com")},
		{ID: "2", Name: "Marcus Johnson", Role: "Head of Operations", Bio: "Marcus ensures every trip runs smoothly.", ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400", LinkedIn: "https://linkedin.com"},
		{ID: "3", Name: "Priya Sharma", Role: "Lead Travel Designer", Bio: "Priya crafts bespoke itineraries.", ImageURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400", LinkedIn: "https://linkedin.com", Twitter: strPtr("https://twitter.com")},
		{ID: "4", Name: "Tom Williams", Role: "Customer Experience Manager", Bio: "Tom leads our 24/7 support team.", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400", LinkedIn: "https://linkedin.com"},
	}
}

func Faqs() []domain_models.Faq {
	return []domain_models.Faq{
		{ID: "1", Question: "How far in advance should I book my tour?", Answer: "We recommend booking at least 3-6 months in advance for popular destinations, especially during peak seasons.", Category: "general"},
		{ID: "2", Question: "What is your cancellation policy?", Answer: "Full refund for cancellations made 60+ days before departure. 50% refund for 30-59 days. No refund for less than 30 days.", Category: "general"},
		{ID: "3", Question: "Do you offer travel insurance?", Answer: "We strongly recommend travel insurance and can help you find the right coverage for your trip.", Category: "general"},
		{ID: "4", Question: "Are your tours suitable for families with children?", Answer: "Many of our tours are family-friendly! We have specific family-oriented packages designed for all ages.", Category: "general"},
		{ID: "5", Question: "What payment methods do you accept?", Answer: "We accept all major credit cards, PayPal, and bank transfers. We also offer flexible payment plans for bookings.", Category: "general"},
	}
}
