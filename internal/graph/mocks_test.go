package graph

import (
	"context"

	"eshop-be/internal/cart"
	"eshop-be/internal/category"
	"eshop-be/internal/order"
	"eshop-be/internal/product"
	"eshop-be/internal/productdetail"

	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) page(args mock.Arguments) (*product.Page, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Page), args.Error(1)
}

func (m *MockProductService) GetAll(ctx context.Context, page int) (*product.Page, error) {
	return m.page(m.Called(ctx, page))
}

func (m *MockProductService) GetByCategory(ctx context.Context, categoryID int64, page int) (*product.Page, error) {
	return m.page(m.Called(ctx, categoryID, page))
}

func (m *MockProductService) Search(ctx context.Context, text string, page int) (*product.Page, error) {
	return m.page(m.Called(ctx, text, page))
}

func (m *MockProductService) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) GetByName(ctx context.Context, name string) (*product.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) GetShowByID(ctx context.Context, id int64) (*product.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Show), args.Error(1)
}

func (m *MockProductService) GetEditByID(ctx context.Context, id int64) (*product.Edit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Edit), args.Error(1)
}

func (m *MockProductService) FilteredByIDs(ctx context.Context, ids []int64) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, input product.Input) (*product.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Edit(ctx context.Context, input product.Input) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockProductService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetAll(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *MockCategoryService) FindByID(ctx context.Context, id int64) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryService) Add(ctx context.Context, name string) (*category.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, c category.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockDetailService struct {
	mock.Mock
}

func (m *MockDetailService) AddBulk(ctx context.Context, details []productdetail.Detail) ([]productdetail.Detail, error) {
	args := m.Called(ctx, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]productdetail.Detail), args.Error(1)
}

func (m *MockDetailService) ListByProduct(ctx context.Context, productID int64) ([]*productdetail.Detail, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*productdetail.Detail), args.Error(1)
}

func (m *MockDetailService) Edit(ctx context.Context, d productdetail.Detail) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDetailService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddOrIncrement(ctx context.Context, sessionID string, productID, unitPrice int64, productName string) error {
	return m.Called(ctx, sessionID, productID, unitPrice, productName).Error(0)
}

func (m *MockCartService) DecrementOrRemove(ctx context.Context, sessionID string, productID int64) error {
	return m.Called(ctx, sessionID, productID).Error(0)
}

func (m *MockCartService) ReadAll(ctx context.Context, sessionID string) ([]cart.Item, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.Item), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockCartService) Assemble(ctx context.Context, sessionID string) (*cart.View, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.View), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, sessionID string) (*order.Preview, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Preview), args.Error(1)
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, userID, sessionID string, form order.ShippingForm) (int64, error) {
	args := m.Called(ctx, userID, sessionID, form)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderService) EditOrder(ctx context.Context, in order.EditInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id int64, includeItems bool) (*order.Order, error) {
	args := m.Called(ctx, id, includeItems)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListOrdersForUser(ctx context.Context, userID string, loadAll bool) ([]*order.Order, error) {
	args := m.Called(ctx, userID, loadAll)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, loadAll bool) ([]*order.Order, error) {
	args := m.Called(ctx, loadAll)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
