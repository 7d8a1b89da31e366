package http

import (
	"time"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/app/product/usecases/create_product"
)

// ProductResponse is a product with its seller's display fields.
type ProductResponse struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       int64          `json:"price"`
	Photos      []string       `json:"photos"`
	Status      string         `json:"status"`
	OwnerID     int64          `json:"owner_id"`
	CategoryID  int64          `json:"category_id"`
	Room        string         `json:"room"`
	Material    string         `json:"material"`
	Condition   string         `json:"condition"`
	Info        string         `json:"info"`
	CreatedAt   time.Time      `json:"created_at"`
	CartID      *int64         `json:"cart_id,omitempty"`
	Seller      SellerResponse `json:"seller"`
}

// SellerResponse holds the seller fields of a listing.
type SellerResponse struct {
	Pseudo string  `json:"pseudo"`
	Photo  string  `json:"photo,omitempty"`
	Rating float64 `json:"rating"`
}

// CatalogResponse is one catalog page.
type CatalogResponse struct {
	Products    []ProductResponse `json:"products"`
	CurrentPage int               `json:"current_page"`
	PagesCount  int               `json:"pages_count"`
}

// DetailResponse is the product show page.
type DetailResponse struct {
	ProductResponse
	Category CategoryResponse `json:"category"`
	Contact  ContactResponse  `json:"contact"`
}

// CategoryResponse holds category display fields.
type CategoryResponse struct {
	Title string `json:"title"`
	Logo  string `json:"logo,omitempty"`
}

// ContactResponse holds the seller contact fields shown on the detail page.
type ContactResponse struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Photos      []string `json:"photos"`
	OwnerID     int64    `json:"owner_id"`
	CategoryID  int64    `json:"category_id"`
	Room        string   `json:"room"`
	Material    string   `json:"material"`
	Condition   string   `json:"condition"`
	Info        string   `json:"info"`
}

// CreateProductResponse carries the id of a new listing.
type CreateProductResponse struct {
	ID int64 `json:"id"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (r *CreateProductRequest) toUseCase() *create_product.Request {
	return &create_product.Request{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Photos:      r.Photos,
		OwnerID:     r.OwnerID,
		CategoryID:  r.CategoryID,
		Room:        r.Room,
		Material:    r.Material,
		Condition:   r.Condition,
		Info:        r.Info,
	}
}

func toProductResponse(view *domain.ProductView) ProductResponse {
	resp := productFields(&view.Product)
	resp.Seller = SellerResponse{
		Pseudo: view.Seller.Pseudo,
		Photo:  view.Seller.Photo,
		Rating: view.Seller.Rating,
	}
	return resp
}

func toProductResponses(views []*domain.ProductView) []ProductResponse {
	out := make([]ProductResponse, 0, len(views))
	for _, view := range views {
		out = append(out, toProductResponse(view))
	}
	return out
}

func toCatalogResponse(page *contracts.CatalogPage) CatalogResponse {
	return CatalogResponse{
		Products:    toProductResponses(page.Products),
		CurrentPage: page.CurrentPage,
		PagesCount:  page.PagesCount,
	}
}

func toDetailResponse(detail *domain.ProductDetail) DetailResponse {
	resp := DetailResponse{
		ProductResponse: productFields(&detail.Product),
		Category: CategoryResponse{
			Title: detail.Category.Title,
			Logo:  detail.Category.Logo,
		},
		Contact: ContactResponse{
			Address: detail.Seller.Address,
			Email:   detail.Seller.Email,
			Phone:   detail.Seller.Phone,
		},
	}
	resp.Seller = SellerResponse{
		Pseudo: detail.Seller.Pseudo,
		Rating: detail.Seller.Rating,
	}
	return resp
}

func productFields(p *domain.Product) ProductResponse {
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Photos:      photos,
		Status:      string(p.Status),
		OwnerID:     p.OwnerID,
		CategoryID:  p.CategoryID,
		Room:        p.Room,
		Material:    p.Material,
		Condition:   p.Condition,
		Info:        p.Info,
		CreatedAt:   p.CreatedAt,
		CartID:      p.CartID,
	}
}
