package vehicle

// Vehicle is one marketplace listing. The JSON shape matches what the
// site front end consumes.
type Vehicle struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        string  `json:"price"`
	Location     string  `json:"location"`
	Miles        int     `json:"miles"`
	FuelType     string  `json:"fuelType"`
	Transmission string  `json:"transmission"`
	ImageURL     string  `json:"imageUrl"`
	Available    bool    `json:"available"`
	Description  string  `json:"description"`
	Brand        string  `json:"brand"`
	Label        string  `json:"label"`
	ImageGallery []Image `json:"imageGallery"`
	Seller       Seller  `json:"vendedor"`
}

// Image is one gallery entry.
type Image struct {
	ImageURL string `json:"imageUrl"`
}

// Seller identifies the branch contact for a listing.
type Seller struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Branch string `json:"sucursal"`
}
