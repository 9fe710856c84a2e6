package services

import (
	"catalog/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Testify mocks for the persistence and queue ports used across the
// service tests.

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(id models.ProductID) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySKU(sku string) (*models.Product, error) {
	args := m.Called(sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id models.ProductID) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockVariantRepository struct {
	mock.Mock
}

func (m *MockVariantRepository) Create(variant *models.ProductVariant) error {
	args := m.Called(variant)
	return args.Error(0)
}

func (m *MockVariantRepository) GetByID(id models.VariantID) (*models.ProductVariant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) GetByProductID(productID models.ProductID) ([]models.ProductVariant, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) Update(variant *models.ProductVariant) error {
	args := m.Called(variant)
	return args.Error(0)
}

func (m *MockVariantRepository) Delete(id models.VariantID) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) Create(record *models.StockRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockStockRepository) GetByVariantID(variantID models.VariantID) ([]models.StockRecord, error) {
	args := m.Called(variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StockRecord), args.Error(1)
}

func (m *MockStockRepository) GetByVariantAndPartner(variantID models.VariantID, partnerID models.PartnerID) (*models.StockRecord, error) {
	args := m.Called(variantID, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockRecord), args.Error(1)
}

func (m *MockStockRepository) Update(record *models.StockRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockStockRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockProductStockRepository struct {
	mock.Mock
}

func (m *MockProductStockRepository) Create(stock *models.Stock) error {
	args := m.Called(stock)
	return args.Error(0)
}

func (m *MockProductStockRepository) GetByProductID(productID models.ProductID) (*models.Stock, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stock), args.Error(1)
}

func (m *MockProductStockRepository) Update(stock *models.Stock) error {
	args := m.Called(stock)
	return args.Error(0)
}

type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) Create(price *models.PriceTable) error {
	args := m.Called(price)
	return args.Error(0)
}

func (m *MockPriceRepository) GetByProductID(productID models.ProductID) (*models.PriceTable, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PriceTable), args.Error(1)
}

func (m *MockPriceRepository) Update(price *models.PriceTable) error {
	args := m.Called(price)
	return args.Error(0)
}

func (m *MockPriceRepository) Delete(productID models.ProductID) error {
	args := m.Called(productID)
	return args.Error(0)
}

type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) Create(partner *models.Partner) error {
	args := m.Called(partner)
	return args.Error(0)
}

func (m *MockPartnerRepository) GetByID(id models.PartnerID) (*models.Partner, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetByCode(code string) (*models.Partner, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetAll() ([]models.Partner, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Partner), args.Error(1)
}

func (m *MockPartnerRepository) Update(partner *models.Partner) error {
	args := m.Called(partner)
	return args.Error(0)
}

func (m *MockPartnerRepository) Delete(id models.PartnerID) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockAnalysisQueue struct {
	mock.Mock
}

func (m *MockAnalysisQueue) PublishAnalysisJob(job models.ProductAnalysisJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockAnalysisQueue) PublishProcessingJob(job models.ProcessingJob) error {
	args := m.Called(job)
	return args.Error(0)
}
