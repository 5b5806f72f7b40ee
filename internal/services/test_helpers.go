package services

import (
	"time"

	"storefront-service/internal/domain"
)

func CreateTestProduct(id uint64, name string, price int64, category string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Price:       price,
		ImageURL:    "/images/placeholder-food.jpg",
		Category:    category,
		Stock:       10,
		CreatedAt:   time.Now(),
	}
}

func CreateTestOrder(id uint64, email string, total int64) *domain.Order {
	return &domain.Order{
		ID:              id,
		CustomerEmail:   email,
		CustomerName:    TestCustomerName,
		ShippingAddress: TestShippingAddress,
		TotalAmount:     total,
		Status:          domain.StatusPending,
		CreatedAt:       time.Now(),
	}
}

const (
	TestCustomerEmail   = "a@b.com"
	TestCustomerName    = "Test Customer"
	TestShippingAddress = "Jl. Sudirman No. 1, Jakarta"
)
