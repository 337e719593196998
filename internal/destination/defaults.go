package destination

// Defaults is the built-in destination table, used when no database is
// configured. Zones: 1 Jakarta, 2 Jabodetabek ring, 3 Jawa Barat/Tengah,
// 4 Jawa Timur/Bali, 5 luar Jawa.
func Defaults() []Destination {
	return []Destination{
		{Slug: "jakarta-pusat", Name: "Jakarta Pusat", Zone: 1, DistanceKm: 5},
		{Slug: "jakarta-barat", Name: "Jakarta Barat", Zone: 1, DistanceKm: 10},
		{Slug: "jakarta-selatan", Name: "Jakarta Selatan", Zone: 1, DistanceKm: 12},
		{Slug: "jakarta-utara", Name: "Jakarta Utara", Zone: 1, DistanceKm: 14},
		{Slug: "jakarta-timur", Name: "Jakarta Timur", Zone: 1, DistanceKm: 15},
		{Slug: "bekasi", Name: "Bekasi", Zone: 2, DistanceKm: 22},
		{Slug: "depok", Name: "Depok", Zone: 2, DistanceKm: 25},
		{Slug: "tangerang", Name: "Tangerang", Zone: 2, DistanceKm: 28},
		{Slug: "tangerang-selatan", Name: "Tangerang Selatan", Zone: 2, DistanceKm: 30},
		{Slug: "bogor", Name: "Bogor", Zone: 2, DistanceKm: 45},
		{Slug: "bandung", Name: "Bandung", Zone: 3, DistanceKm: 150},
		{Slug: "cirebon", Name: "Cirebon", Zone: 3, DistanceKm: 220},
		{Slug: "semarang", Name: "Semarang", Zone: 3, DistanceKm: 450},
		{Slug: "yogyakarta", Name: "Yogyakarta", Zone: 3, DistanceKm: 560},
		{Slug: "surabaya", Name: "Surabaya", Zone: 4, DistanceKm: 780},
		{Slug: "malang", Name: "Malang", Zone: 4, DistanceKm: 850},
		{Slug: "denpasar", Name: "Denpasar", Zone: 4, DistanceKm: 1150},
		{Slug: "balikpapan", Name: "Balikpapan", Zone: 5, DistanceKm: 1230},
		{Slug: "makassar", Name: "Makassar", Zone: 5, DistanceKm: 1600},
		{Slug: "medan", Name: "Medan", Zone: 5, DistanceKm: 1900},
	}
}
