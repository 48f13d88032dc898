package app

import (
	"context"
	"fmt"

	"warehouse-inventory/internal/core"

	"golang.org/x/crypto/bcrypt"
)

type appService struct {
	shipmentService  core.ShipmentService
	orderService     core.OrderService
	productService   core.ProductService
	warehouseService core.WarehouseService
	supplierService  core.SupplierService
	userService      core.UserService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	shipmentService core.ShipmentService,
	orderService core.OrderService,
	productService core.ProductService,
	warehouseService core.WarehouseService,
	supplierService core.SupplierService,
	userService core.UserService,
) ApplicationService {
	return &appService{
		shipmentService:  shipmentService,
		orderService:     orderService,
		productService:   productService,
		warehouseService: warehouseService,
		supplierService:  supplierService,
		userService:      userService,
	}
}

// AuthenticateUser verifies the password against the stored bcrypt hash.
// Lookup and comparison failures return the same error shape so callers
// cannot distinguish unknown users from wrong passwords.
func (s *appService) AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error) {
	user, err := s.userService.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return &UserSession{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

func (s *appService) GetUser(ctx context.Context, userID int) (*core.User, error) {
	return s.userService.GetByID(ctx, userID)
}

func (s *appService) CreateShipment(ctx context.Context, req CreateShipmentRequest) (int, error) {
	items := make([]core.ShipmentLineInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = core.ShipmentLineInput{
			ProductID:   it.ProductID,
			Name:        it.Name,
			SKU:         it.SKU,
			SupplierID:  it.SupplierID,
			AcquireCost: it.AcquireCost,
			Price:       it.Price,
			Qty:         it.Qty,
		}
	}
	return s.shipmentService.CreateShipment(ctx, core.ShipmentInput{
		Type: req.ShipmentType,
		Warehouse: core.WarehouseRef{
			ID:       req.WarehouseID,
			Name:     req.WarehouseName,
			Location: req.WarehouseLocation,
		},
		Reference: req.Reference,
		Items:     items,
	})
}

func (s *appService) ListShipments(ctx context.Context) (*ShipmentListResult, error) {
	shipments, err := s.shipmentService.GetShipments(ctx)
	if err != nil {
		return nil, err
	}
	return &ShipmentListResult{Shipments: shipments}, nil
}

func (s *appService) CreateOrder(ctx context.Context, req CreateOrderRequest) (int, error) {
	items := make([]core.OrderItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = core.OrderItemInput{ProductID: it.ProductID, Qty: it.Qty}
	}
	return s.orderService.CreateOrder(ctx, core.OrderInput{
		OrderNumber:  req.OrderNumber,
		CustomerName: req.CustomerName,
		Items:        items,
	})
}

func (s *appService) GetOrder(ctx context.Context, id int) (*core.OrderDetail, error) {
	return s.orderService.GetOrder(ctx, id)
}

func (s *appService) ListOrders(ctx context.Context) (*OrderListResult, error) {
	orders, err := s.orderService.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	return &OrderListResult{Orders: orders}, nil
}

func (s *appService) DeleteOrder(ctx context.Context, id int) error {
	return s.orderService.DeleteOrder(ctx, id)
}

func (s *appService) NewOrderNumber() string {
	return s.orderService.NewOrderNumber()
}

func (s *appService) ListProducts(ctx context.Context) (*ProductListResult, error) {
	products, err := s.productService.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductListResult{Products: products}, nil
}

func (s *appService) GetProduct(ctx context.Context, id int) (*core.ProductDetail, error) {
	return s.productService.GetProduct(ctx, id)
}

func (s *appService) CreateProduct(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error) {
	productID, warehouseID, err := s.productService.CreateProduct(ctx, core.ProductCreateInput{
		SKU:               req.SKU,
		Name:              req.Name,
		Description:       req.Description,
		SupplierID:        req.SupplierID,
		AcquireCost:       req.AcquireCost,
		Price:             req.Price,
		WarehouseName:     req.WarehouseName,
		WarehouseLocation: req.WarehouseLocation,
		Quantity:          req.Quantity,
	})
	if err != nil {
		return nil, err
	}
	return &CreateProductResult{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (s *appService) UpdateProduct(ctx context.Context, id int, req UpdateProductRequest) error {
	return s.productService.UpdateProduct(ctx, id, core.ProductUpdateInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		SupplierID:  req.SupplierID,
		AcquireCost: req.AcquireCost,
		Price:       req.Price,
		WarehouseID: req.WarehouseID,
		Quantity:    req.Quantity,
	})
}

func (s *appService) DeleteProduct(ctx context.Context, id int) error {
	return s.productService.DeleteProduct(ctx, id)
}

func (s *appService) ListWarehouses(ctx context.Context) (*WarehouseListResult, error) {
	warehouses, err := s.warehouseService.GetWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	return &WarehouseListResult{Warehouses: warehouses}, nil
}

func (s *appService) ListSuppliers(ctx context.Context) (*SupplierListResult, error) {
	suppliers, err := s.supplierService.GetSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	return &SupplierListResult{Suppliers: suppliers}, nil
}

func (s *appService) CreateSupplier(ctx context.Context, name string) (int, error) {
	return s.supplierService.CreateSupplier(ctx, name)
}
