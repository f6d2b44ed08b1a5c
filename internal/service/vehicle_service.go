package service

import (
	"strings"

	"github.com/automotiveconsulting/site-api/internal/api/dto/v1/vehicle"
)

// VehicleService serves the marketplace catalog. The catalog is loaded
// once at construction and is read-only, so concurrent access needs no
// locking.
type VehicleService struct {
	catalog []vehicle.Vehicle
}

func NewVehicleService() *VehicleService {
	return &VehicleService{catalog: defaultCatalog}
}

// List returns the listings matching the given filters. An empty brand
// matches every brand; a nil available matches sold and unsold alike.
func (s *VehicleService) List(brand string, available *bool) []vehicle.Vehicle {
	result := make([]vehicle.Vehicle, 0, len(s.catalog))
	for _, v := range s.catalog {
		if brand != "" && !strings.EqualFold(v.Brand, brand) {
			continue
		}
		if available != nil && v.Available != *available {
			continue
		}
		result = append(result, v)
	}
	return result
}

// GetByID returns the listing with the given id.
func (s *VehicleService) GetByID(id int) (*vehicle.Vehicle, bool) {
	for _, v := range s.catalog {
		if v.ID == id {
			return &v, true
		}
	}
	return nil, false
}

var defaultCatalog = []vehicle.Vehicle{
	{
		ID:           1,
		Name:         "Toyota RAV4 2.0 XLE",
		Price:        "18990000",
		Location:     "Santiago",
		Miles:        42500,
		FuelType:     "Bencina",
		Transmission: "Automático",
		ImageURL:     "/images/vehiculos/rav4-xle/portada.jpg",
		Available:    true,
		Description:  "Un propietario, mantenciones al día en concesionario oficial.",
		Brand:        "Toyota",
		Label:        "Destacado",
		ImageGallery: []vehicle.Image{
			{ImageURL: "/images/vehiculos/rav4-xle/frontal.jpg"},
			{ImageURL: "/images/vehiculos/rav4-xle/interior.jpg"},
		},
		Seller: vehicle.Seller{
			ID:     1,
			Name:   "Solange Roco",
			Email:  "roco.solange@automotiveconsulting.cl",
			Phone:  "+56 9 7712 4589",
			Branch: "Las Condes",
		},
	},
	{
		ID:           2,
		Name:         "Hyundai Tucson 2.0 CRDi",
		Price:        "15490000",
		Location:     "Viña del Mar",
		Miles:        68200,
		FuelType:     "Diesel",
		Transmission: "Manual",
		ImageURL:     "/images/vehiculos/tucson-crdi/portada.jpg",
		Available:    true,
		Description:  "Motor diésel, ideal para carretera. Neumáticos nuevos.",
		Brand:        "Hyundai",
		Label:        "",
		ImageGallery: []vehicle.Image{
			{ImageURL: "/images/vehiculos/tucson-crdi/frontal.jpg"},
		},
		Seller: vehicle.Seller{
			ID:     2,
			Name:   "Marcela Aravena",
			Email:  "maravena@eserp.cl",
			Phone:  "+56 9 6630 0217",
			Branch: "Viña del Mar",
		},
	},
	{
		ID:           3,
		Name:         "Suzuki Swift 1.2 GLX",
		Price:        "8990000",
		Location:     "Santiago",
		Miles:        91800,
		FuelType:     "Bencina",
		Transmission: "Mecánico",
		ImageURL:     "/images/vehiculos/swift-glx/portada.jpg",
		Available:    false,
		Description:  "Económico y en excelente estado. Vendido en consignación.",
		Brand:        "Suzuki",
		Label:        "Vendido",
		ImageGallery: []vehicle.Image{
			{ImageURL: "/images/vehiculos/swift-glx/frontal.jpg"},
		},
		Seller: vehicle.Seller{
			ID:     1,
			Name:   "Solange Roco",
			Email:  "roco.solange@automotiveconsulting.cl",
			Phone:  "+56 9 7712 4589",
			Branch: "Las Condes",
		},
	},
}
