package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ProductStatus represents the sale status of a product.
// Membership in a cart is tracked separately through the cart link.
type ProductStatus string

const (
	StatusForSale ProductStatus = "for_sale"
	StatusSold    ProductStatus = "sold"
)

// Creation limits, counted in characters.
const (
	MinTitleLength       = 2
	MaxTitleLength       = 20
	MinDescriptionLength = 2
	MaxDescriptionLength = 250
)

// Product is a listing as stored.
type Product struct {
	ID          int64
	Title       string
	Description string
	Price       int64
	Photos      []string
	Status      ProductStatus
	OwnerID     int64
	CategoryID  int64
	Room        string
	Material    string
	Condition   string
	Info        string
	CreatedAt   time.Time
	CartID      *int64
}

// InCart reports whether the product is reserved by a cart.
func (p *Product) InCart() bool {
	return p.CartID != nil
}

// Listed reports whether the product may appear in the public catalog.
func (p *Product) Listed() bool {
	return p.Status == StatusForSale && !p.InCart()
}

// Seller holds the owner fields joined into product reads.
type Seller struct {
	Pseudo string
	Photo  string
	Rating float64
}

// ProductView is a product joined with its seller's display fields.
type ProductView struct {
	Product
	Seller Seller
}

// SellerContact holds the owner fields shown on a product detail page.
type SellerContact struct {
	Pseudo  string
	Address string
	Email   string
	Phone   string
	Rating  float64
}

// Category is the display part of a category item.
type Category struct {
	Title string
	Logo  string
}

// ProductDetail is a product joined with its category and seller contact.
type ProductDetail struct {
	Product
	Category Category
	Seller   SellerContact
}

// NewProductInput is the untrusted submission of a new listing.
type NewProductInput struct {
	Title       string
	Description string
	Price       int64
	Photos      []string
	OwnerID     int64
	CategoryID  int64
	Room        string
	Material    string
	Condition   string
	Info        string
}

// NewProduct validates a submission and returns a for-sale product
// without a cart link. The ID is assigned by the store.
func NewProduct(in NewProductInput, now time.Time) (*Product, error) {
	verr := &ValidationError{}

	title := strings.TrimSpace(in.Title)
	if n := utf8.RuneCountInString(title); n < MinTitleLength || n > MaxTitleLength {
		verr.add("title", ErrInvalidTitle)
	}

	description := strings.TrimSpace(in.Description)
	if n := utf8.RuneCountInString(description); n < MinDescriptionLength || n > MaxDescriptionLength {
		verr.add("description", ErrInvalidDescription)
	}

	if in.Price <= 0 {
		verr.add("price", ErrInvalidPrice)
	}

	if in.OwnerID <= 0 {
		verr.add("owner", ErrMissingOwner)
	}

	if in.CategoryID <= 0 {
		verr.add("category", ErrMissingAttribute)
	}

	for field, value := range map[string]string{
		"room":      in.Room,
		"material":  in.Material,
		"condition": in.Condition,
		"info":      in.Info,
	} {
		if strings.TrimSpace(value) == "" {
			verr.add(field, ErrMissingAttribute)
		}
	}

	photos := make([]string, 0, len(in.Photos))
	for _, photo := range in.Photos {
		if photo = strings.TrimSpace(photo); photo != "" {
			photos = append(photos, photo)
		}
	}
	if len(photos) == 0 {
		verr.add("photo", ErrMissingPhoto)
	}

	if !verr.empty() {
		return nil, verr
	}

	return &Product{
		Title:       title,
		Description: description,
		Price:       in.Price,
		Photos:      photos,
		Status:      StatusForSale,
		OwnerID:     in.OwnerID,
		CategoryID:  in.CategoryID,
		Room:        strings.TrimSpace(in.Room),
		Material:    strings.TrimSpace(in.Material),
		Condition:   strings.TrimSpace(in.Condition),
		Info:        strings.TrimSpace(in.Info),
		CreatedAt:   now,
	}, nil
}
