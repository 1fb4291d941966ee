// Package seed holds the catalog shipped with the site. The lists are never
// written; every accessor hands out a fresh copy.
package seed

import (
	"slices"

	"omoro/internal/domain"
)

var products = []domain.Product{
	{ID: 1, Slug: "legero-cob-spot-7w", Title: "LEGERO COB Spot 7W", Brand: "LEGERO", Category: "indoor-lighting",
		ModelNumber: "LG-CS-07", MRP: "1450", Size: "75mm cut-out", LampType: "COB LED", Power: "7W",
		BodyColor: "White", Material: "Die-cast aluminium", Warranty: "2 years",
		Description: "Anti-glare COB spotlight with deep reflector for living rooms and corridors.",
		Image:       "/static/img/products/cob-spot.svg", Images: []string{"/static/img/products/cob-spot.svg"}, Location: "New"},
	{ID: 2, Slug: "legero-slim-panel-15w", Title: "LEGERO Slim Panel 15W", Brand: "LEGERO", Category: "indoor-lighting",
		ModelNumber: "LG-SP-15", MRP: "980", Size: "6 inch", LampType: "SMD LED", Power: "15W",
		BodyColor: "White", Material: "Aluminium + PC diffuser", Warranty: "2 years",
		Description: "Edge-lit recessed panel with uniform glow and flicker-free driver.",
		Image:       "/static/img/products/slim-panel.svg", Images: []string{"/static/img/products/slim-panel.svg"}, Location: "New"},
	{ID: 3, Slug: "legero-linear-profile-4ft", Title: "LEGERO Linear Profile 4FT", Brand: "LEGERO", Category: "architectural-lighting",
		ModelNumber: "LG-LP-40", MRP: "3200", Size: "1200 x 35 x 35mm", LampType: "LED strip", Power: "36W",
		BodyColor: "Black", Material: "Extruded aluminium", Warranty: "3 years",
		Description: "Seamless linear profile for coves, ceilings and feature walls.",
		Image:       "/static/img/products/linear-profile.svg", Images: []string{"/static/img/products/linear-profile.svg"}, Location: "New"},
	{ID: 4, Slug: "legero-wall-washer-24w", Title: "LEGERO Wall Washer 24W", Brand: "LEGERO", Category: "architectural-lighting",
		ModelNumber: "LG-WW-24", MRP: "4100", Size: "500mm", LampType: "SMD LED", Power: "24W",
		BodyColor: "Grey", Material: "Aluminium", Warranty: "3 years",
		Description: "Narrow-beam wall washer for facades and textured surfaces.",
		Image:       "/static/img/products/wall-washer.svg", Images: []string{"/static/img/products/wall-washer.svg"}, Location: "New"},
	{ID: 5, Slug: "legero-high-bay-100w", Title: "LEGERO High Bay 100W", Brand: "LEGERO", Category: "industrial-lighting",
		ModelNumber: "LG-HB-100", MRP: "7800", Size: "300mm", LampType: "SMD LED", Power: "100W",
		BodyColor: "Black", Material: "Die-cast aluminium", Warranty: "3 years",
		Description: "UFO high bay for warehouses and workshops with IP65 housing.",
		Image:       "/static/img/products/high-bay.svg", Images: []string{"/static/img/products/high-bay.svg"}, Location: "New"},
	{ID: 6, Slug: "legero-batten-40w", Title: "LEGERO Batten 40W", Brand: "LEGERO", Category: "industrial-lighting",
		ModelNumber: "LG-BT-40", MRP: "850", Size: "4FT", LampType: "LED tube", Power: "40W",
		BodyColor: "White", Material: "PC", Warranty: "2 years",
		Description: "Integrated batten for factories, parking and utility spaces.",
		Image:       "/static/img/products/batten.svg", Images: []string{"/static/img/products/batten.svg"}, Location: "New"},
	{ID: 7, Slug: "legero-garden-bollard", Title: "LEGERO Garden Bollard", Brand: "LEGERO", Category: "outdoor-lighting",
		ModelNumber: "LG-GB-12", MRP: "5600", Size: "600mm", LampType: "COB LED", Power: "12W",
		BodyColor: "Dark grey", Material: "Aluminium", Warranty: "2 years",
		Description: "Weatherproof bollard for pathways and landscape edges.",
		Image:       "/static/img/products/bollard.svg", Images: []string{"/static/img/products/bollard.svg"}, Location: "New"},
	{ID: 8, Slug: "legero-flood-light-50w", Title: "LEGERO Flood Light 50W", Brand: "LEGERO", Category: "outdoor-lighting",
		ModelNumber: "LG-FL-50", MRP: "2400", Size: "220 x 180mm", LampType: "SMD LED", Power: "50W",
		BodyColor: "Black", Material: "Die-cast aluminium", Warranty: "2 years",
		Description: "IP66 flood light for elevations, signage and open yards.",
		Image:       "/static/img/products/flood-light.svg", Images: []string{"/static/img/products/flood-light.svg"}, Location: "New"},
}

var projects = []domain.Project{
	{ID: 1, Slug: "residential-series-project", Title: "Residential Series", Location: "KUDUKKIL",
		Category: "Interior Residential", Client: "Mr. John Doe",
		Description: "Premium residential lighting solution featuring modern LED fixtures and smart control systems.",
		Image:       "/static/img/PRO-1.svg", Images: []string{"/static/img/PRO-1.svg", "/static/img/PRO-2.svg", "/static/img/PRO-3.svg"}},
	{ID: 2, Slug: "commercial-logic-project", Title: "Commercial Logic", Location: "KOOLIMAD",
		Category: "Interior Commercial", Client: "Tech Solutions Ltd",
		Description: "Energy-efficient commercial lighting design for office spaces and retail showrooms.",
		Image:       "/static/img/PRO-2.svg", Images: []string{"/static/img/PRO-2.svg", "/static/img/PRO-1.svg", "/static/img/PRO-3.svg"}},
	{ID: 3, Slug: "aero-electric-project", Title: "Aero-Electric", Location: "KODENCHERY",
		Category: "Architectural Commercial & Residential", Client: "Aero Dynamics",
		Description: "Specialized industrial lighting implementation focusing on durability and high performance.",
		Image:       "/static/img/PRO-3.svg", Images: []string{"/static/img/PRO-3.svg", "/static/img/PRO-1.svg", "/static/img/PRO-2.svg"}},
	{ID: 4, Slug: "urban-flow-project", Title: "Urban Flow", Location: "KALARIKANDY",
		Category: "Interior Hospitality", Client: "City Planning Corp",
		Description: "Architectural outdoor lighting that enhances urban landscapes and public spaces.",
		Image:       "/static/img/PRO-4.svg", Images: []string{"/static/img/PRO-4.svg", "/static/img/PRO-1.svg", "/static/img/PRO-2.svg"}},
}

var gallery = []domain.GalleryImage{
	{ID: 1, Src: "/static/img/PRO-1.svg", Alt: "Architectural Light Design 1", Category: "Interior"},
	{ID: 2, Src: "/static/img/PRO-2.svg", Alt: "Modern Ceiling Light", Category: "Ceiling"},
	{ID: 3, Src: "/static/img/PRO-3.svg", Alt: "Linear Lighting System", Category: "Commercial"},
	{ID: 4, Src: "/static/img/PRO-4.svg", Alt: "Ambient Room Lighting", Category: "Interior"},
	{ID: 5, Src: "/static/img/PRO-2.svg", Alt: "Office Lighting Setup", Category: "Office"},
	{ID: 6, Src: "/static/img/PRO-1.svg", Alt: "Luxury Home Lighting", Category: "Residential"},
}

func Products() []domain.Product {
	out := slices.Clone(products)
	for i := range out {
		out[i].Images = slices.Clone(out[i].Images)
	}
	return out
}

func Projects() []domain.Project {
	out := slices.Clone(projects)
	for i := range out {
		out[i].Images = slices.Clone(out[i].Images)
	}
	return out
}

func Gallery() []domain.GalleryImage { return slices.Clone(gallery) }
